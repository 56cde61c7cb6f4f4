package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/beka-birhanu/vinom-maze/config"
	"github.com/stretchr/testify/assert"
)

func TestNewLogger(t *testing.T) {
	tests := []struct {
		name   string
		color  string
		tag    string
		prefix string
	}{
		{name: "Error lines are red", color: config.LogErrorColor, tag: "APP", prefix: "\033[31m[APP]\033[0m "},
		{name: "Info lines are green", color: config.ColorGreen, tag: "APP", prefix: "\033[32m[APP]\033[0m "},
		{name: "Maze lines are cyan", color: config.ColorCyan, tag: "MAZE", prefix: "\033[36m[MAZE]\033[0m "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			newLogger(&buf, tt.tag, tt.color).Printf("[ERROR] Building maze: %v", "boom")

			out := buf.String()
			assert.True(t, strings.HasPrefix(out, tt.prefix), "got %q", out)
			assert.Contains(t, out, "[ERROR] Building maze: boom\n")
		})
	}
}
