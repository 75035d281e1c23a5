package log

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"

	"bytesize/internal/config"
)

// FromConfig builds the CLI logger. Output goes to w, normally os.Stderr,
// so it never mixes with command results on stdout.
func FromConfig(conf config.Log, w io.Writer) (zerolog.Logger, error) {
	level, err := zerolog.ParseLevel(conf.Level)
	if err != nil {
		return zerolog.Nop(), fmt.Errorf("invalid logging level %q: %v", conf.Level, err)
	}

	switch strings.ToLower(conf.Format) {
	case "json":
		return zerolog.
			New(w).
			With().
			Timestamp().
			Logger().
			Level(level), nil
	case "pretty":
		return zerolog.
			New(zerolog.ConsoleWriter{ //nolint:exhaustruct
				Out:          w,
				NoColor:      !isTerminal(w),
				TimeFormat:   time.RFC3339,
				TimeLocation: time.UTC,
			}).
			With().
			Timestamp().
			Logger().
			Level(level), nil
	default:
		return zerolog.Nop(), fmt.Errorf("invalid logging format %q", conf.Format)
	}
}

// NewDefault returns the logger used before configuration is loaded.
func NewDefault() zerolog.Logger {
	return zerolog.
		New(zerolog.ConsoleWriter{ //nolint:exhaustruct
			Out:          os.Stderr,
			NoColor:      !isTerminal(os.Stderr),
			TimeFormat:   time.RFC3339,
			TimeLocation: time.UTC,
		}).
		With().
		Timestamp().
		Logger().
		Level(zerolog.WarnLevel)
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
