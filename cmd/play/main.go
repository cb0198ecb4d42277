package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/snowzach/rotatefilehook"

	"github.com/khollbach/minesweeper/internal/mines"
)

var log = logrus.New()

var (
	inputPath string
	logPath   string
)

func init() {
	flag.StringVar(&inputPath, "input", "examples/small.txt", "path to a field description file")
	flag.StringVar(&logPath, "log", "", "append logs to this file instead of stderr")
}

// setupLogging routes log output to a rotating file when requested, so
// diagnostics never interleave with the rendered board.
func setupLogging() error {
	log.SetFormatter(&logrus.TextFormatter{ForceColors: true})
	if logPath == "" {
		return nil
	}

	hook, err := rotatefilehook.NewRotateFileHook(rotatefilehook.RotateFileConfig{
		Filename:   logPath,
		MaxSize:    10, // MB
		MaxBackups: 3,
		MaxAge:     28, // days
		Level:      logrus.DebugLevel,
		Formatter:  &logrus.JSONFormatter{},
	})
	if err != nil {
		return err
	}
	log.AddHook(hook)
	log.SetOutput(io.Discard)
	return nil
}

func main() {
	flag.Parse()

	if err := setupLogging(); err != nil {
		fmt.Fprintln(os.Stderr, "unable to set up logging:", err)
		os.Exit(1)
	}

	f, err := os.Open(inputPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, "unable to open field file:", err)
		os.Exit(1)
	}

	game, err := mines.NewGame(f)
	f.Close()
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid field file %s: %v\n", inputPath, err)
		os.Exit(1)
	}

	height, width := game.Dimensions()
	log.WithFields(logrus.Fields{
		"input":  inputPath,
		"height": height,
		"width":  width,
		"bombs":  game.NumBombs(),
	}).Info("game start")

	run(game)
}

func run(game *mines.Game) {
	scanner := bufio.NewScanner(os.Stdin)

	for {
		clearScreen()
		fmt.Println(game.Render())

		p, quit := promptMove(scanner, game)
		if quit {
			log.Info("player quit")
			return
		}

		game.Reveal(p)
		log.WithFields(logrus.Fields{
			"row": p.Row, "col": p.Col, "revealed": game.NumRevealed(),
		}).Debug("revealed tile")

		if outcome, over := game.Outcome(); over {
			game.RevealAll()
			clearScreen()
			fmt.Println(game.Render())

			log.WithField("outcome", outcome.String()).Info("game over")
			switch outcome {
			case mines.Win:
				fmt.Println("Yay! You win!")
			case mines.Loss:
				fmt.Println("Aww... you lost :(")
			}
			return
		}
	}
}

// promptMove reads moves until it gets a legal one: in bounds and
// hidden. Everything else re-prompts, keeping the engine's reveal
// contract intact.
func promptMove(scanner *bufio.Scanner, game *mines.Game) (mines.Point, bool) {
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			// Input stream closed (i.e. ctrl-d at the command line).
			return mines.Point{}, true
		}

		cmd, ok := parseMove(scanner.Text())
		if !ok {
			fmt.Println("Valid moves consist of two numbers: row, col")
			continue
		}
		if cmd.quit {
			return mines.Point{}, true
		}

		tile, inBounds := game.At(cmd.point)
		switch {
		case !inBounds:
			height, width := game.Dimensions()
			fmt.Printf(
				"Coordinates out of bounds: %v. Max tile is: (%d, %d).\n",
				cmd.point, height-1, width-1,
			)
		case tile.Visibility == mines.Revealed:
			fmt.Printf("Already revealed: %v\n", cmd.point)
		case tile.Visibility == mines.Flagged:
			fmt.Printf("Tile is flagged: %v. Unflag before proceeding.\n", cmd.point)
		default:
			return cmd.point, false
		}
	}
}

func clearScreen() {
	fmt.Print("\x1b[2J\x1b[H")
}
