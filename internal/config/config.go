package config

import (
	"flag"
	"fmt"
	"io"
)

// Config holds the application configuration
type Config struct {
	ForceASCII bool
	Mute       bool
	Debug      bool
}

// ParseArgs parses command line arguments and returns a Config. Errors
// are returned, not printed; the caller owns all usage output.
func ParseArgs(args []string) (*Config, error) {
	fs := flag.NewFlagSet("pong-term", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	ascii := fs.Bool("ascii", false, "force ASCII glyphs even on UTF-8 terminals")
	mute := fs.Bool("mute", false, "disable sound effects")
	debug := fs.Bool("debug", false, "write a debug log to logs/pong-term.log")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	// The game takes no positional arguments
	if fs.NArg() > 0 {
		return nil, fmt.Errorf("unexpected argument: %s", fs.Arg(0))
	}

	cfg := &Config{
		ForceASCII: *ascii,
		Mute:       *mute,
		Debug:      *debug,
	}

	return cfg, nil
}
