package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/katalvlaran/roadmap/cli"
	"github.com/katalvlaran/roadmap/config"
	"github.com/katalvlaran/roadmap/ctxlog"
	"github.com/katalvlaran/roadmap/logging"
)

// main is the entrypoint for the roadmap command.
func main() {
	// Use a minimal logger until the configured one is built.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})))

	if err := run(context.Background(), os.Stdout, os.Stderr, os.Args[1:]); err != nil {
		var exitErr *cli.ExitError
		if errors.As(err, &exitErr) {
			fmt.Fprintln(os.Stderr, exitErr.Message)
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run encapsulates the command logic for easier testing and error handling.
func run(ctx context.Context, outW, errW io.Writer, args []string) error {
	base, err := config.Load()
	if err != nil {
		return &cli.ExitError{Code: 2, Message: err.Error(), Err: err}
	}

	req, shouldExit, err := cli.Parse(args, base, errW)
	if err != nil {
		return err
	}
	if shouldExit {
		return nil
	}

	logger := logging.New(req.Config.Logging, errW)
	ctx = ctxlog.WithLogger(ctx, logger)

	return cli.Run(ctx, req, outW)
}
