package main

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/khollbach/minesweeper/internal/mines"
)

func TestParseMoveQuit(t *testing.T) {
	for _, line := range []string{
		"quit",
		"exit",
		"  quit ",
		"exit...",
		"quit!",
		"QUIT",
	} {
		cmd, ok := parseMove(line)
		assert.True(t, ok, "line %q", line)
		assert.True(t, cmd.quit, "line %q", line)
	}
}

func TestParseMovePoint(t *testing.T) {
	want := mines.Point{Row: 6, Col: 0}

	for _, line := range []string{
		"6 0",
		"(6, 0)",
		"6*00",
		"-006-00-",
	} {
		cmd, ok := parseMove(line)
		assert.True(t, ok, "line %q", line)
		assert.False(t, cmd.quit, "line %q", line)
		assert.Equal(t, want, cmd.point, "line %q", line)
	}
}

func TestParseMoveMalformed(t *testing.T) {
	for _, line := range []string{
		"",
		"asdf",
		" exit quit",
		"6 and 0",
		"7",
		"1 2 3",
	} {
		_, ok := parseMove(line)
		assert.False(t, ok, "line %q", line)
	}
}
