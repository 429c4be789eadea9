package app

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/vk/samudra/internal/ctxlog"
)

// maxLineBytes bounds one stdin line.
const maxLineBytes = 1 << 20

// Run executes the main application logic based on the provided
// configuration. With a serve port it blocks serving HTTP until ctx is
// done. Otherwise args, joined by spaces, form one input; without args
// every non-blank line of inR is an input. Inputs are processed by a
// worker pool and each produces one JSON document on the output writer,
// in input order.
func (a *App) Run(ctx context.Context, inR io.Reader, args []string) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")

	if a.config.ServePort > 0 {
		return a.serve(ctx)
	}

	var inputs []string
	if len(args) > 0 {
		inputs = []string{strings.Join(args, " ")}
	} else {
		scanner := bufio.NewScanner(inR)
		scanner.Buffer(make([]byte, 0, 64*1024), maxLineBytes)
		for scanner.Scan() {
			if line := scanner.Text(); strings.TrimSpace(line) != "" {
				inputs = append(inputs, line)
			}
		}
		if err := scanner.Err(); err != nil {
			return fmt.Errorf("failed to read input: %w", err)
		}
	}
	if len(inputs) == 0 {
		a.logger.Warn("No input given, nothing to parse.")
		return nil
	}

	results := a.processAll(ctx, a.config.Lemma, inputs, a.config.WorkerCount)

	enc := json.NewEncoder(a.outW)
	var firstErr error
	failed := 0
	for i, res := range results {
		if res.err != nil {
			failed++
			if firstErr == nil {
				firstErr = res.err
			}
			if err := enc.Encode(newErrorPayload(res.err)); err != nil {
				return fmt.Errorf("failed to write output: %w", err)
			}
			a.logger.Error("Input could not be parsed.", "input", i+1, "error", res.err)
			continue
		}
		if err := enc.Encode(res.value); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	}

	a.logger.Debug("App.Run method finished.", "inputs", len(inputs), "failed", failed)
	if firstErr != nil {
		return fmt.Errorf("%d of %d inputs failed: %w", failed, len(inputs), firstErr)
	}
	return nil
}
