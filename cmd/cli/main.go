package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/fw/askline/internal/app"
	"github.com/fw/askline/internal/cli"
)

// main is the entrypoint for the askline form runner.
func main() {
	// Use a minimal logger until the configured one takes over.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})))

	if err := run(os.Stdin, os.Stdout, os.Stderr, os.Args[1:]); err != nil {
		if exitErr, ok := err.(*cli.ExitError); ok {
			fmt.Fprintln(os.Stderr, exitErr.Message)
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run encapsulates the application logic so tests can drive it with
// scripted streams.
func run(in io.Reader, outW, errW io.Writer, args []string) error {
	appConfig, shouldExit, err := cli.Parse(args, outW)
	if err != nil {
		return err
	}
	if shouldExit {
		return nil
	}

	application, err := app.New(in, outW, errW, appConfig)
	if err != nil {
		return err
	}
	return application.Run(context.Background())
}
