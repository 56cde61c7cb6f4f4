package main

import (
	"fmt"
	"io"
	"log"
	"math/rand"
	"os"
	"time"

	"github.com/beka-birhanu/vinom-maze/config"
	"github.com/beka-birhanu/vinom-maze/maze"
	"github.com/dustin/go-humanize"
)

// Global variables for dependencies
var (
	appLogger  *log.Logger
	errLogger  *log.Logger
	mazeLogger *log.Logger
	rng        *rand.Rand
	seed       int64
	exitSide   maze.ExitSide
	graph      *maze.Graph
	deadEnds   *maze.DeadEndPool
)

func newLogger(w io.Writer, name, color string) *log.Logger {
	return log.New(w, fmt.Sprintf("%s[%s]%s ", color, name, config.ColorReset), log.LstdFlags)
}

func initRandom() {
	seed = config.Envs.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng = rand.New(rand.NewSource(seed))
	appLogger.Printf("[INFO] Random source seeded with %d", seed)
}

func initExitSide() {
	var err error
	exitSide, err = maze.ParseExitSide(config.Envs.ExitSide)
	if err != nil {
		errLogger.Printf("[ERROR] Parsing exit side: %v", err)
		os.Exit(1)
	}
}

func initMaze() {
	start := time.Now()

	var err error
	graph, err = maze.Build(config.Envs.Columns, config.Envs.Rows, rng,
		maze.WithLogger(mazeLogger),
		maze.WithExitSide(exitSide),
	)
	if err != nil {
		errLogger.Printf("[ERROR] Building maze: %v", err)
		os.Exit(1)
	}

	cells := int64(graph.RowSize() * graph.ColSize())
	appLogger.Printf("[INFO] Maze %s generated: %s cells, %s passages, %d dead ends in %s",
		graph.ID(), humanize.Comma(cells), humanize.Comma(int64(len(graph.Passages()))),
		len(graph.DeadEnds()), time.Since(start))
}

func initDeadEndPool() {
	var err error
	deadEnds, err = maze.NewDeadEndPool(graph, rng)
	if err != nil {
		errLogger.Printf("[ERROR] Creating dead-end pool: %v", err)
		os.Exit(1)
	}
}

func placeLetters(n int) {
	for i := 0; i < n; i++ {
		cell, letter, err := deadEnds.Claim()
		if err != nil {
			appLogger.Printf("[INFO] Placed %d of %d letters: %v", i, n, err)
			return
		}

		path, err := graph.PathToExit(cell)
		if err != nil {
			errLogger.Printf("[ERROR] Solving from (%d, %d): %v", cell.Col(), cell.Row(), err)
			os.Exit(1)
		}
		appLogger.Printf("[INFO] Letter %q at (%d, %d), %s steps from the exit",
			letter, cell.Col(), cell.Row(), humanize.Comma(int64(len(path)-1)))
	}
}

func main() {
	appLogger = newLogger(os.Stdout, "APP", config.ColorGreen)
	errLogger = newLogger(os.Stderr, "APP", config.LogErrorColor)
	mazeLogger = newLogger(os.Stdout, "MAZE", config.ColorCyan)

	initRandom()
	initExitSide()
	initMaze()
	initDeadEndPool()
	placeLetters(config.Envs.Letters)

	fmt.Print(graph)
}
