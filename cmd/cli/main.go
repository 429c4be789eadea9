package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/vk/samudra/internal/app"
	"github.com/vk/samudra/internal/cli"
	"github.com/vk/samudra/internal/hcl"
)

// main is the entrypoint for the samudra application.
func main() {
	// Use a minimal logger until the full one is configured.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// The real main function handles errors and exit codes.
	if err := run(ctx, os.Stdin, os.Stdout, os.Stderr, os.Args[1:]); err != nil {
		stop()
		if exitErr, ok := err.(*cli.ExitError); ok {
			fmt.Fprintln(os.Stderr, exitErr.Message)
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run encapsulates the main application logic for easier testing and error handling.
func run(ctx context.Context, inR io.Reader, outW, logW io.Writer, args []string) (err error) {
	appConfig, text, shouldExit, err := cli.Parse(args, outW)
	if err != nil {
		return err
	}
	if shouldExit {
		return nil
	}

	// Turn a panic anywhere below into a plain error so the process still
	// exits with a message and a non-zero code.
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("application panicked | %v", r)
		}
	}()

	samudraApp, err := app.NewApp(outW, logW, appConfig, hcl.NewLoader())
	if err != nil {
		return fmt.Errorf("startup failed: %w", err)
	}

	return samudraApp.Run(ctx, inR, text)
}
