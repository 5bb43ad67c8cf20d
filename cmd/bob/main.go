package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/cbodonnell/hex/pkg/board"
	"github.com/cbodonnell/hex/pkg/game"
	"github.com/cbodonnell/hex/pkg/log"
	"github.com/cbodonnell/hex/pkg/players"
	"github.com/cbodonnell/hex/pkg/render"
	"github.com/cbodonnell/hex/pkg/savefile"
)

const (
	exitWin            = 0
	exitUsage          = 1
	exitInvalidType    = 2
	exitDimensions     = 3
	exitSaveFileOpen   = 4
	exitSaveFileFormat = 5
	exitEOF            = 6
)

const usage = "Usage: bob p1type p2type [height width | filename]"

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// run plays one game and returns the process exit status.
func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	flags := flag.NewFlagSet("bob", flag.ContinueOnError)
	flags.SetOutput(io.Discard)
	logLevel := flags.String("log-level", "error", "Log level")
	if err := flags.Parse(args); err != nil {
		return fail(stderr, usage, exitUsage)
	}
	parsedLogLevel, err := log.ParseLogLevel(*logLevel)
	if err != nil {
		return fail(stderr, usage, exitUsage)
	}
	log.SetDefaultLogger(log.New(stderr, "", log.DefaultLoggerFlag, parsedLogLevel))

	positional := flags.Args()
	if len(positional) != 3 && len(positional) != 4 {
		return fail(stderr, usage, exitUsage)
	}

	var kinds [2]players.Kind
	for i, player := range board.Players {
		kind, err := players.ParseKind(positional[i])
		if err != nil {
			return fail(stderr, "Invalid type", exitInvalidType)
		}
		kinds[player] = kind
	}

	var s *game.Session
	if len(positional) == 4 {
		height, errHeight := strconv.Atoi(positional[2])
		width, errWidth := strconv.Atoi(positional[3])
		if errHeight != nil || errWidth != nil || !board.ValidDimensions(height, width) {
			return fail(stderr, "Sensible board dimensions please!", exitDimensions)
		}
		if s, err = game.New(height, width); err != nil {
			return fail(stderr, "Sensible board dimensions please!", exitDimensions)
		}
	} else {
		s, err = savefile.Load(positional[2])
		if err != nil {
			log.Debug("Failed to load %s: %v", positional[2], err)
			if errors.Is(err, savefile.ErrOpen) {
				return fail(stderr, "Could not start reading from savefile", exitSaveFileOpen)
			}
			return fail(stderr, "Incorrect file contents", exitSaveFileFormat)
		}
	}
	log.Info("Starting %dx%d game, %v to move", s.Board().Height(), s.Board().Width(), s.Turn())

	// both manual players share one reader over stdin
	manual := players.NewManualMover(players.NewManualMoverOptions{
		In:     stdin,
		Out:    stdout,
		ErrOut: stderr,
		Save:   savefile.Save,
	})
	var movers [2]players.Mover
	for _, player := range board.Players {
		if kinds[player] == players.KindAuto {
			movers[player] = players.NewAutoMover()
		} else {
			movers[player] = manual
		}
	}

	render.Render(stdout, s.Board())
	for {
		player := s.Turn()
		p, err := movers[player].NextMove(s, player)
		if err != nil {
			if errors.Is(err, players.ErrEOF) {
				return fail(stderr, "EOF from user", exitEOF)
			}
			log.Error("Failed to choose a move for %v: %v", player, err)
			return fail(stderr, err.Error(), exitUsage)
		}
		if kinds[player] == players.KindAuto {
			fmt.Fprintf(stdout, "Player %v => %v\n", player, p)
		}

		result, err := s.Play(player, p)
		if err != nil {
			log.Error("Failed to play %v for %v: %v", p, player, err)
			return fail(stderr, err.Error(), exitUsage)
		}
		render.Render(stdout, s.Board())
		if result == game.ResultWin {
			fmt.Fprintf(stdout, "Player %v wins\n", player)
			return exitWin
		}
	}
}

func fail(stderr io.Writer, message string, status int) int {
	fmt.Fprintln(stderr, message)
	return status
}
