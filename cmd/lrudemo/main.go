// Command lrudemo exercises an LRU cache with a fixed
// sequence of operations, logging every cache event.
package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/djdv/go-lru"
	"github.com/djdv/go-lru/internal/logging"
	"github.com/djdv/go-lru/lruslog"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

type options struct {
	logFile  string
	stream   bool
	capacity int
}

type step struct {
	op         string
	key, value string
}

// Replayed in order by run.
var demoSteps = []step{
	{"set", "k1", "val1"},
	{"set", "k2", "val2"},
	{"get", "k3", ""},
	{"get", "k2", ""},
	{"get", "k1", ""},
	{"set", "k3", "val3"},
	{"get", "k3", ""},
	{"get", "k2", ""},
	{"get", "k1", ""},
}

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	opts := options{
		logFile:  "cache.log",
		capacity: 2,
	}
	cmd := &cobra.Command{
		Use:          "lrudemo",
		Short:        "Run a fixed set of operations against an LRU cache",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd.OutOrStdout(), cmd.ErrOrStderr(), opts)
		},
	}
	bindFlags(cmd.Flags(), &opts)
	return cmd
}

func bindFlags(flags *pflag.FlagSet, opts *options) {
	flags.BoolVarP(&opts.stream, "stream", "s", opts.stream, "output log to console")
	flags.StringVar(&opts.logFile, "log-file", opts.logFile, "file that receives info and above")
	flags.IntVarP(&opts.capacity, "capacity", "c", opts.capacity, "maximum number of cache entries")
}

func run(stdout, stderr io.Writer, opts options) (err error) {
	file, err := os.OpenFile(opts.logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return err
	}
	defer func() { err = errors.Join(err, file.Close()) }()

	cache, err := lru.NewObserved(opts.capacity,
		lruslog.New[string, string](newLogger(file, stderr, opts.stream)))
	if err != nil {
		return err
	}
	for _, s := range demoSteps {
		switch s.op {
		case "set":
			cache.Set(s.key, s.value)
		case "get":
			if value, ok := cache.Get(s.key); ok {
				fmt.Fprintf(stdout, "get %s: %s\n", s.key, value)
			} else {
				fmt.Fprintf(stdout, "get %s: <absent>\n", s.key)
			}
		}
	}
	return nil
}

// newLogger always writes info and above to the file;
// with stream set, debug and above also go to console.
func newLogger(file, console io.Writer, stream bool) *slog.Logger {
	fileHandler := logging.NewTabHandler(file, logging.TabOptions{
		Level: slog.LevelInfo,
	})
	if !stream {
		return slog.New(fileHandler)
	}
	consoleHandler := logging.NewTabHandler(console, logging.TabOptions{
		Level:  slog.LevelDebug,
		Prefix: "|| ",
		Name:   "total",
	})
	return slog.New(logging.Fanout(fileHandler, consoleHandler))
}
