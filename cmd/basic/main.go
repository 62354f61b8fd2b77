// Command basic demonstrates the goargs parsing pipeline: typed options
// with bounds, a choice-constrained option, a flag with a short alias, and
// an environment fallback.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/fatih/color"
	"github.com/specialistvlad/goargs"
	"github.com/specialistvlad/goargs/internal/ctxlog"
)

// main is the entrypoint; run carries the logic so tests and error handling
// stay in one place.
func main() {
	if err := run(os.Stdout, os.Args); err != nil {
		if errors.Is(err, goargs.ErrHelp) {
			os.Exit(0)
		}
		color.New(color.FgRed).Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func run(outW io.Writer, argv []string) error {
	logger := newLogger(os.Getenv("BASIC_LOG_LEVEL"), os.Stderr)
	ctx := ctxlog.WithLogger(context.Background(), logger)

	parser := goargs.New("basic", goargs.WithOutput(outW))

	parser.AddArgument("color").
		TypeString().
		Help("Color to use").
		Choices("RED", "GREEN", "BLUE").
		DefaultString("RED").
		AddAlias("c")

	parser.AddArgument("count").
		TypeInt().
		Help("Number of times to repeat").
		Required().
		MinValue(1).
		MaxValue(10)

	parser.AddArgument("debug").
		TypeBool().
		Help("Enable debug mode").
		Flag(true).
		AddAlias("d")

	parser.AddArgument("api-key").
		TypeString().
		Help("API key, falls back to the API_KEY environment variable").
		Env("API_KEY")

	vals, err := parser.Parse(ctx, argv)
	if err != nil {
		return err
	}

	colorName, err := vals.GetString("color")
	if err != nil {
		return err
	}
	count, err := vals.GetInt("count")
	if err != nil {
		return err
	}
	debug, err := vals.GetBool("debug")
	if err != nil {
		return err
	}

	if debug {
		logger.Info("Debug mode enabled.", "color", colorName, "count", count)
	}
	for i := 0; i < count; i++ {
		fmt.Fprintf(outW, "Hello in %s!\n", colorName)
	}
	return nil
}

// newLogger configures a text slog handler on the given writer, with the
// level taken from an environment switch.
func newLogger(levelStr string, outW io.Writer) *slog.Logger {
	var level slog.Level
	switch levelStr {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}
	return slog.New(slog.NewTextHandler(outW, &slog.HandlerOptions{Level: level}))
}
