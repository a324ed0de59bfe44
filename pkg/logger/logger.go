// Package logger builds the zerolog logger the server runs with.
//
// main calls Init once and hands the result to every component, each tagged
// through Component. Get exists for code that cannot take a logger
// argument.
package logger

import (
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// Options for Init. The zero value logs JSON at info level to stdout.
type Options struct {
	// Level is one of trace, debug, info, warn (or warning), error.
	// Anything else means info.
	Level string
	// Pretty switches to zerolog's console writer for local runs.
	Pretty bool
	Output io.Writer
	// Service, when set, is stamped on every entry as "service".
	Service string
}

var (
	mu   sync.Mutex
	root *zerolog.Logger
)

// Init builds the process logger on its first call and returns it. Later
// calls ignore opts and return the same logger.
func Init(opts Options) zerolog.Logger {
	mu.Lock()
	defer mu.Unlock()
	if root != nil {
		return *root
	}

	zerolog.TimeFieldFormat = time.RFC3339Nano

	out := opts.Output
	if out == nil {
		out = os.Stdout
	}
	if opts.Pretty {
		out = zerolog.ConsoleWriter{Out: out, TimeFormat: time.Kitchen}
	}

	lvl := parseLevel(opts.Level)
	zerolog.SetGlobalLevel(lvl)

	ctx := zerolog.New(out).Level(lvl).With().Timestamp().Caller()
	if opts.Service != "" {
		ctx = ctx.Str("service", opts.Service)
	}
	l := ctx.Logger()
	root = &l
	return l
}

// Get returns the logger built by Init. It panics before Init.
func Get() zerolog.Logger {
	mu.Lock()
	defer mu.Unlock()
	if root == nil {
		panic("logger: Get() called before Init()")
	}
	return *root
}

// Component derives a child logger tagged with the owning component.
func Component(log zerolog.Logger, name string) zerolog.Logger {
	return log.With().Str("component", name).Logger()
}

// Reset forgets the logger built by Init. Tests only.
func Reset() {
	mu.Lock()
	defer mu.Unlock()
	root = nil
}

func parseLevel(s string) zerolog.Level {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "warning" {
		s = "warn"
	}
	lvl, err := zerolog.ParseLevel(s)
	if err != nil || lvl == zerolog.NoLevel {
		return zerolog.InfoLevel
	}
	return lvl
}
