package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/cbodonnell/hex/pkg/board"
	"github.com/cbodonnell/hex/pkg/client"
	"github.com/cbodonnell/hex/pkg/log"
	"github.com/cbodonnell/hex/pkg/messages"
	"github.com/cbodonnell/hex/pkg/render"
	"github.com/cbodonnell/hex/pkg/version"
)

func main() {
	serverURL := flag.String("server", "ws://localhost:9090", "hex server url")
	gameID := flag.String("game", "", "id of the game to watch")
	logLevel := flag.String("log-level", "info", "Log level")
	flag.Parse()

	parsedLogLevel, err := log.ParseLogLevel(*logLevel)
	if err != nil {
		panic(fmt.Sprintf("Failed to parse log level: %v", err))
	}
	log.SetDefaultLogger(log.New(os.Stderr, "", log.DefaultLoggerFlag, parsedLogLevel))

	if *gameID == "" {
		fmt.Fprintln(os.Stderr, "Usage: watch -game <id> [-server url]")
		os.Exit(1)
	}

	log.Info("Starting hex watch client version %s", version.Get())
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	updateChan := make(chan *messages.GameUpdate, 16)
	c := client.NewWatchClient(fmt.Sprintf("%s/games/%s/watch", strings.TrimSuffix(*serverURL, "/"), *gameID), updateChan)
	if err := c.Connect(ctx); err != nil {
		panic(fmt.Sprintf("Failed to connect: %v", err))
	}

	errChan := make(chan error, 1)
	go func() {
		errChan <- c.HandleMessages(ctx)
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	for {
		select {
		case update := <-updateChan:
			if err := printUpdate(os.Stdout, update); err != nil {
				log.Error("Failed to print update: %v", err)
			}
			if update.Winner != nil {
				return
			}
		case err := <-errChan:
			if err != nil {
				log.Error("Watch ended: %v", err)
				os.Exit(1)
			}
			return
		case <-stop:
			log.Info("Received signal, stopping")
			return
		}
	}
}

func printUpdate(w io.Writer, update *messages.GameUpdate) error {
	b, err := board.FromRows(update.Rows())
	if err != nil {
		return fmt.Errorf("invalid board in update: %v", err)
	}
	if update.Move != nil {
		fmt.Fprintf(w, "Player %s => %d %d\n", update.Player, update.Move.Row, update.Move.Column)
	} else {
		fmt.Fprintf(w, "Player %s to move\n", update.Player)
	}
	if err := render.Render(w, b); err != nil {
		return err
	}
	if update.Winner != nil {
		fmt.Fprintf(w, "Player %s wins\n", *update.Winner)
	}
	return nil
}
