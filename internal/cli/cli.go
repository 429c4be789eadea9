package cli

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/vk/samudra/internal/app"
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// Parse processes command-line arguments. It returns a populated Config,
// the positional arguments forming the input text, a boolean indicating if
// the program should exit cleanly, or an ExitError.
func Parse(args []string, output io.Writer) (*app.Config, []string, bool, error) {
	slog.Debug("CLI parser started.")
	flagSet := flag.NewFlagSet("samudra", flag.ContinueOnError)
	flagSet.SetOutput(output)

	flagSet.Usage = func() {
		fmt.Fprint(output, `
Samudra - parse annotated dictionary text into content, tags and fields.

Usage:
  samudra [options] [TEXT...]

Arguments:
  TEXT
    Annotated text, e.g. 'Ini konsep #tag {lang.en:concept} {meta.gol:NAMA}'.
    Multiple arguments are joined with spaces. Without TEXT every non-blank
    line of stdin is parsed on its own.

Options:
`)
		flagSet.PrintDefaults()
	}

	configFlag := flagSet.String("config", "", "Path to an .hcl config file or directory.")
	cFlag := flagSet.String("c", "", "Path to an .hcl config file or directory (shorthand).")
	lemmaFlag := flagSet.String("lemma", "", "Draft each input as a konsep of this lemma.")
	strictFlag := flagSet.Bool("strict", false, "Reject characters the grammar does not recognize.")
	servePortFlag := flagSet.Int("serve-port", 0, "Port for the HTTP API. 0 parses the input once and exits.")
	logFormatFlag := flagSet.String("log-format", "text", "Log output format. Options: 'text' or 'json'.")
	workersFlag := flagSet.Int("workers", 10, "Number of concurrent workers parsing stdin lines.")
	logLevelFlag := flagSet.String("log-level", "info", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, nil, true, nil
		}
		return nil, nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	slog.Debug("Arguments parsed successfully.")

	path := *configFlag
	if path == "" {
		path = *cFlag
	}
	if path != "" {
		if _, err := os.Stat(path); err != nil {
			return nil, nil, false, &ExitError{Code: 2, Message: fmt.Sprintf("invalid config path: %v", err)}
		}
	}
	slog.Debug("Config path determined.", "path", path)

	logFormat := strings.ToLower(*logFormatFlag)
	if logFormat != "text" && logFormat != "json" {
		return nil, nil, false, &ExitError{Code: 2, Message: "invalid log-format: must be 'text' or 'json'"}
	}

	logLevel := strings.ToLower(*logLevelFlag)
	switch logLevel {
	case "debug", "info", "warn", "error":
		// valid
	default:
		return nil, nil, false, &ExitError{Code: 2, Message: "invalid log-level: must be 'debug', 'info', 'warn', or 'error'"}
	}

	if *servePortFlag > 0 && flagSet.NArg() > 0 {
		return nil, nil, false, &ExitError{Code: 2, Message: "TEXT arguments cannot be combined with -serve-port"}
	}
	slog.Debug("CLI parameter validation complete.")

	config, err := app.NewConfig(app.Config{
		ConfigPath:  path,
		Lemma:       *lemmaFlag,
		Strict:      *strictFlag,
		ServePort:   *servePortFlag,
		WorkerCount: *workersFlag,
		LogFormat:   logFormat,
		LogLevel:    logLevel,
	})
	if err != nil {
		return nil, nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	slog.Debug("CLI parser finished successfully.", "config", config)
	return config, flagSet.Args(), false, nil
}
