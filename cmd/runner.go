package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/urfave/cli/v3"

	"github.com/desertthunder/farewell/internal/shared"
	"github.com/desertthunder/farewell/internal/store"
)

// Runner holds all dependencies for CLI commands and provides methods for each command action.
type Runner struct {
	config *shared.Config
	store  store.Storage
	logger *log.Logger
	output io.Writer
}

// RunnerOpts contains configuration options for creating a Runner.
type RunnerOpts struct {
	Config *shared.Config
	Store  store.Storage
	Logger *log.Logger
	Output io.Writer
}

// NewRunner creates a new Runner with the provided configuration
func NewRunner(opts RunnerOpts) *Runner {
	if opts.Config == nil {
		opts.Config = shared.DefaultConfig()
	}
	if opts.Logger == nil {
		opts.Logger = shared.NewLogger(nil)
	}
	if opts.Output == nil {
		opts.Output = os.Stdout
	}

	return &Runner{
		config: opts.Config,
		store:  opts.Store,
		logger: opts.Logger,
		output: opts.Output,
	}
}

func (r *Runner) register() []*cli.Command {
	commands := []*cli.Command{}
	for _, fn := range [](func(*Runner) *cli.Command){
		serveCommand, setupCommand, personsCommand,
	} {
		commands = append(commands, fn(r))
	}

	return commands
}

// loadConfig refreshes the runner's config from the --config flag when the
// file exists, keeping the defaults otherwise.
func (r *Runner) loadConfig(cmd *cli.Command) {
	configPath := cmd.String("config")
	if _, err := os.Stat(configPath); err != nil {
		return
	}
	config, err := shared.LoadConfig(configPath)
	if err != nil {
		r.logger.Warn("failed to load config, keeping current settings", "path", configPath, "error", err)
		return
	}
	r.config = config
}

// openStore builds the configured storage backend and seeds the demo fixture.
// The returned cleanup closes the database connection for the sqlite driver
// and is a no-op for the in-memory store.
func (r *Runner) openStore() (store.Storage, func(), error) {
	if r.store != nil {
		return r.store, func() {}, nil
	}

	switch r.config.Database.Driver {
	case "", "memory":
		s := store.NewMemStore()
		if err := store.Seed(s, r.config.Admin.Username, r.config.Admin.Password); err != nil {
			return nil, nil, fmt.Errorf("failed to seed store: %w", err)
		}
		return s, func() {}, nil

	case "sqlite":
		db, err := shared.NewDatabase(r.config.Database.Path)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open database: %w", err)
		}
		shared.ConfigureDatabase(db, r.config.Database.MaxOpenConns, r.config.Database.MaxIdleConns)

		if err := shared.RunMigrations(db); err != nil {
			db.Close()
			return nil, nil, fmt.Errorf("failed to run migrations: %w", err)
		}

		s := store.NewSQLiteStore(db)
		if err := store.Seed(s, r.config.Admin.Username, r.config.Admin.Password); err != nil {
			db.Close()
			return nil, nil, fmt.Errorf("failed to seed store: %w", err)
		}
		return s, func() { db.Close() }, nil

	default:
		return nil, nil, fmt.Errorf("%w: %q", shared.ErrUnknownDriver, r.config.Database.Driver)
	}
}

func (r *Runner) writeJSON(data any, pretty bool) error {
	var output []byte
	var err error

	if pretty {
		output, err = json.MarshalIndent(data, "", "  ")
	} else {
		output, err = json.Marshal(data)
	}

	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}

	if _, err := r.output.Write(output); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	if _, err := r.output.Write([]byte("\n")); err != nil {
		return fmt.Errorf("failed to write newline: %w", err)
	}

	return nil
}

func (r *Runner) writePlain(format string, args ...any) error {
	text := fmt.Sprintf(format, args...)
	if _, err := r.output.Write([]byte(text)); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}
