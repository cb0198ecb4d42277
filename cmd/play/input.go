package main

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/khollbach/minesweeper/internal/mines"
)

// Move parsing is forgiving about separators: any line containing
// exactly two numbers is a coordinate pair, and "quit" or "exit" ends
// the game. The matchers are compiled once at startup and never
// mutated afterwards.
var (
	alphaNum   = regexp.MustCompile(`[\d\p{L}]`)
	alphabetic = regexp.MustCompile(`\p{L}`)
	quitOrExit = regexp.MustCompile(`(?i)^(quit|exit)$`)
	number     = regexp.MustCompile(`\d+`)
)

// command is one parsed line of user input: a point to reveal, or a
// request to quit.
type command struct {
	point mines.Point
	quit  bool
}

// parseMove interprets a line of input. ok is false on malformed
// input, in which case the caller should re-prompt.
func parseMove(line string) (cmd command, ok bool) {
	// Trim down to just the alpha-numeric characters (and anything
	// between them). E.g.: "(2, 2)" => "2, 2", "  quit. " => "quit".
	trimmed := strings.TrimFunc(line, func(r rune) bool {
		return !alphaNum.MatchString(string(r))
	})

	if quitOrExit.MatchString(trimmed) {
		return command{quit: true}, true
	}

	// Letters mean this is not a coordinate pair; "6 and 0" is invalid.
	if alphabetic.MatchString(trimmed) {
		return command{}, false
	}

	// Exactly two numbers; whatever separates them is fine.
	nums := number.FindAllString(trimmed, 3)
	if len(nums) != 2 {
		return command{}, false
	}
	row, err := strconv.Atoi(nums[0])
	if err != nil {
		return command{}, false
	}
	col, err := strconv.Atoi(nums[1])
	if err != nil {
		return command{}, false
	}

	return command{point: mines.Point{Row: row, Col: col}}, true
}
