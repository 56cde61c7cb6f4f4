/*
Package disjointset provides a weighted union-find structure over integer
labeled elements.

Sets are merged by size, and every Find flattens the path it walked so that
repeated queries stay close to constant time.
*/
package disjointset

import (
	"errors"
)

var (
	// ErrInvalidSize is returned by New for a non-positive element count.
	ErrInvalidSize = errors.New("disjoint set size must be positive")
	// ErrIndexOutOfRange is returned for elements outside [0, n).
	ErrIndexOutOfRange = errors.New("disjoint set index out of range")
)

// node is a single element. A node is a root when parent points at itself;
// size is only maintained for roots.
type node struct {
	parent int // Index of the parent node, or the node's own index for a root.
	size   int // Number of elements in the set rooted here.
}

// WeightedUnionFind tracks a partition of [0, n) into disjoint sets.
type WeightedUnionFind struct {
	nodes    []node
	setCount int
}

// New returns a WeightedUnionFind holding n singleton sets.
func New(n int) (*WeightedUnionFind, error) {
	if n <= 0 {
		return nil, ErrInvalidSize
	}

	nodes := make([]node, n)
	for i := range nodes {
		nodes[i] = node{parent: i, size: 1}
	}

	return &WeightedUnionFind{
		nodes:    nodes,
		setCount: n,
	}, nil
}

// Len returns the number of elements.
func (uf *WeightedUnionFind) Len() int {
	return len(uf.nodes)
}

// SetCount returns the current number of disjoint sets.
func (uf *WeightedUnionFind) SetCount() int {
	return uf.setCount
}

// Find returns the root of the set containing x. Every node on the walked
// path is relinked directly to the root.
func (uf *WeightedUnionFind) Find(x int) (int, error) {
	if !uf.inRange(x) {
		return -1, ErrIndexOutOfRange
	}

	root := x
	for uf.nodes[root].parent != root {
		root = uf.nodes[root].parent
	}

	for x != root {
		x, uf.nodes[x].parent = uf.nodes[x].parent, root
	}
	return root, nil
}

// SameSet reports whether a and b belong to the same set.
func (uf *WeightedUnionFind) SameSet(a, b int) (bool, error) {
	rootA, err := uf.Find(a)
	if err != nil {
		return false, err
	}
	rootB, err := uf.Find(b)
	if err != nil {
		return false, err
	}
	return rootA == rootB, nil
}

// Union merges the sets containing a and b and reports whether a merge
// happened. Calling it on two members of the same set is a no-op.
//
// The root of the smaller-or-equal set is attached under the other root, so
// on a tie b's root goes under a's.
func (uf *WeightedUnionFind) Union(a, b int) (bool, error) {
	rootA, err := uf.Find(a)
	if err != nil {
		return false, err
	}
	rootB, err := uf.Find(b)
	if err != nil {
		return false, err
	}
	if rootA == rootB {
		return false, nil
	}

	if uf.nodes[rootA].size < uf.nodes[rootB].size {
		rootA, rootB = rootB, rootA
	}
	uf.nodes[rootB].parent = rootA
	uf.nodes[rootA].size += uf.nodes[rootB].size
	uf.setCount--

	return true, nil
}

// Size returns the number of elements in the set containing x.
func (uf *WeightedUnionFind) Size(x int) (int, error) {
	root, err := uf.Find(x)
	if err != nil {
		return 0, err
	}
	return uf.nodes[root].size, nil
}

func (uf *WeightedUnionFind) inRange(x int) bool {
	return x >= 0 && x < len(uf.nodes)
}
