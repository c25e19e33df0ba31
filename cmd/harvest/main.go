package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	harvest "github.com/harvestkit/harvest-go"
)

const usage = "usage: harvest <status|whoami|clients|projects|tasks|contacts|today|day <date>|entry <id>> [-since date] [-client id]"

// exitFunc is the function called to exit the program. Tests replace it.
var exitFunc = os.Exit

// Config holds the I/O streams used by the commands.
type Config struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// DefaultConfig returns a Config bound to the process streams.
func DefaultConfig() *Config {
	return &Config{
		Stdin:  os.Stdin,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
	}
}

// ClientInterface is the subset of *harvest.Client the commands use.
type ClientInterface interface {
	Status(ctx context.Context) map[string]any
	WhoAmI(ctx context.Context) (any, error)
	Clients(ctx context.Context, opts ...harvest.ListOption) (any, error)
	Projects(ctx context.Context, opts ...harvest.ListOption) (any, error)
	Tasks(ctx context.Context, opts ...harvest.ListOption) (any, error)
	Contacts(ctx context.Context, opts ...harvest.ListOption) (any, error)
	Today(ctx context.Context) (any, error)
	GetDay(ctx context.Context, date any) (any, error)
	GetEntry(ctx context.Context, entryID int64) (any, error)
}

// clientFactory builds the client from HARVEST_* variables, loading a
// .env file first when one exists.
var clientFactory = func() (ClientInterface, error) {
	_ = godotenv.Load()

	cfg, err := harvest.LoadConfig()
	if err != nil {
		return nil, err
	}

	logger := newLogger(os.Stderr, os.Getenv("HARVEST_LOG_LEVEL"))
	return harvest.NewFromConfig(cfg, harvest.WithLogger(logger))
}

// newLogger returns a console logger writing to w at the named level.
func newLogger(w io.Writer, level string) zerolog.Logger {
	return zerolog.New(zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339}).
		Level(parseLevel(level)).
		With().
		Timestamp().
		Logger()
}

func parseLevel(level string) zerolog.Level {
	switch level {
	case "trace":
		return zerolog.TraceLevel
	case "debug":
		return zerolog.DebugLevel
	case "info":
		return zerolog.InfoLevel
	case "error":
		return zerolog.ErrorLevel
	case "disabled":
		return zerolog.Disabled
	default:
		return zerolog.WarnLevel
	}
}

func run(args []string, cfg *Config) error {
	if len(args) < 2 {
		return errors.New(usage)
	}

	command := args[1]
	switch command {
	case "status", "whoami", "clients", "projects", "tasks", "contacts", "today", "day", "entry":
	default:
		return fmt.Errorf("unknown command: %s", command)
	}

	fs := flag.NewFlagSet(command, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	since := fs.String("since", "", "only records updated since this date")
	clientID := fs.Int64("client", 0, "only projects or tasks of this client")
	if err := fs.Parse(args[2:]); err != nil {
		return fmt.Errorf("%s: %w", usage, err)
	}

	var opts []harvest.ListOption
	if *since != "" {
		opts = append(opts, harvest.UpdatedSince(*since))
	}
	if *clientID != 0 {
		opts = append(opts, harvest.ForClient(*clientID))
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	if command == "status" {
		if client, err := clientFactory(); err == nil {
			return writeJSON(cfg.Stdout, client.Status(ctx))
		}
		return writeJSON(cfg.Stdout, harvest.Status(ctx))
	}

	if (command == "day" || command == "entry") && fs.NArg() < 1 {
		return errors.New(usage)
	}

	client, err := clientFactory()
	if err != nil {
		return fmt.Errorf("create client: %w", err)
	}

	switch command {
	case "whoami":
		return runQuery(cfg, "who am i", func() (any, error) { return client.WhoAmI(ctx) })
	case "clients":
		return runQuery(cfg, "list clients", func() (any, error) { return client.Clients(ctx, opts...) })
	case "projects":
		return runQuery(cfg, "list projects", func() (any, error) { return client.Projects(ctx, opts...) })
	case "tasks":
		return runQuery(cfg, "list tasks", func() (any, error) { return client.Tasks(ctx, opts...) })
	case "contacts":
		return runQuery(cfg, "list contacts", func() (any, error) { return client.Contacts(ctx, opts...) })
	case "today":
		return runQuery(cfg, "today", func() (any, error) { return client.Today(ctx) })
	case "day":
		return runQuery(cfg, "get day", func() (any, error) { return client.GetDay(ctx, fs.Arg(0)) })
	default:
		id, err := strconv.ParseInt(fs.Arg(0), 10, 64)
		if err != nil {
			return fmt.Errorf("invalid entry id %q: %w", fs.Arg(0), err)
		}
		return runQuery(cfg, "get entry", func() (any, error) { return client.GetEntry(ctx, id) })
	}
}

func runQuery(cfg *Config, action string, query func() (any, error)) error {
	result, err := query()
	if err != nil {
		return fmt.Errorf("%s: %w", action, err)
	}
	return writeJSON(cfg.Stdout, result)
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode output: %w", err)
	}
	return nil
}

func fatal(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	exitFunc(1)
}
