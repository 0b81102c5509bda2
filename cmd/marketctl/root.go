package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"github.com/jsamuelsen11/marketplace-core/internal/adapters/events"
	"github.com/jsamuelsen11/marketplace-core/internal/adapters/store/sqlite"
	"github.com/jsamuelsen11/marketplace-core/internal/app"
	"github.com/jsamuelsen11/marketplace-core/internal/app/lifecycle"
	"github.com/jsamuelsen11/marketplace-core/internal/domain/policy"
	"github.com/jsamuelsen11/marketplace-core/internal/platform/clock"
	"github.com/jsamuelsen11/marketplace-core/internal/platform/config"
	"github.com/jsamuelsen11/marketplace-core/internal/platform/logging"
)

const (
	defaultDBPath      = "marketplace.db"
	defaultBusyTimeout = 5 * time.Second
)

// options holds the persistent flags shared by every command.
type options struct {
	profile     string
	configDir   string
	configFiles []string
	dbPath      string
	busyTimeout time.Duration
	logLevel    string
	jsonOut     bool

	out    io.Writer
	errOut io.Writer
}

// env is the wiring a command runs against. It owns the store.
type env struct {
	store     *sqlite.Store
	journal   *sqlite.EventLog
	lifecycle *app.LifecycleService
	sweeper   *app.SweepService
	logger    *slog.Logger
}

func newRootCmd(out, errOut io.Writer) *cobra.Command {
	opts := &options{out: out, errOut: errOut}

	root := &cobra.Command{
		Use:   "marketctl",
		Short: "Inspect and operate a marketplace store",
		Long: `marketctl works directly against the sqlite database used by the
marketplace service. Reads never change state. sweep and transition go
through the same lifecycle rules as the HTTP API and append to the event
journal.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return opts.applyProfile(cmd)
		},
	}
	root.SetOut(out)
	root.SetErr(errOut)

	flags := root.PersistentFlags()
	flags.StringVar(&opts.profile, "profile", "", "config profile to read store settings from (e.g. local, prod)")
	flags.StringVar(&opts.configDir, "config-dir", "configs", "directory holding the profile YAML files")
	flags.StringArrayVar(&opts.configFiles, "config-file", nil, "extra YAML layered over the profile (repeatable)")
	flags.StringVar(&opts.dbPath, "db", defaultDBPath, "path to the sqlite database")
	flags.DurationVar(&opts.busyTimeout, "busy-timeout", defaultBusyTimeout, "sqlite busy timeout")
	flags.StringVar(&opts.logLevel, "log-level", "warn", "log level (debug, info, warn, error)")
	flags.BoolVar(&opts.jsonOut, "json", false, "output JSON")

	root.AddCommand(
		getCmd(opts),
		listCmd(opts),
		eventsCmd(opts),
		sweepCmd(opts),
		transitionCmd(opts),
	)
	return root
}

// applyProfile fills store and log settings from a config profile. Flags the
// user set explicitly are passed as overrides so they win over the profile
// and the environment, and are validated with it.
func (o *options) applyProfile(cmd *cobra.Command) error {
	if o.profile == "" {
		if len(o.configFiles) > 0 {
			return errors.New("--config-file needs --profile")
		}
		return nil
	}

	flags := cmd.Flags()
	overrides := make(map[string]any)
	if flags.Changed("db") {
		overrides["store.path"] = o.dbPath
	}
	if flags.Changed("busy-timeout") {
		overrides["store.busy_timeout"] = o.busyTimeout
	}
	if flags.Changed("log-level") {
		overrides["log.level"] = o.logLevel
	}

	loadOpts := []config.Option{config.WithConfigDir(o.configDir), config.WithOverrides(overrides)}
	for _, f := range o.configFiles {
		loadOpts = append(loadOpts, config.WithFile(f))
	}
	cfg, err := config.Load(o.profile, loadOpts...)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	if cfg.Store.Driver != config.DriverSQLite {
		return fmt.Errorf("profile %q uses the %s store; marketctl needs sqlite", o.profile, cfg.Store.Driver)
	}

	o.dbPath = cfg.Store.Path
	o.busyTimeout = cfg.Store.BusyTimeout
	o.logLevel = cfg.Log.Level
	return nil
}

// withEnv opens the store, wires the lifecycle core over it and runs fn.
// The store is closed when fn returns.
func (o *options) withEnv(ctx context.Context, fn func(context.Context, *env) error) error {
	store, err := sqlite.Open(ctx, o.dbPath, o.busyTimeout)
	if err != nil {
		return fmt.Errorf("opening %s: %w", o.dbPath, err)
	}
	defer func() { _ = store.Close() }()

	logger := logging.New(o.logLevel, "text", o.errOut)
	journal := sqlite.NewEventLog(store.DB())

	machine := lifecycle.NewMachine(store, clock.System{},
		lifecycle.WithEvents(events.Multi{events.NewLogPublisher(logger), journal}),
	)
	core := app.NewCore(machine, policy.NewGate(), nil)

	e := &env{
		store:     store,
		journal:   journal,
		lifecycle: app.NewLifecycleService(core, logger),
		sweeper:   app.NewSweepService(machine, app.DefaultSweepWorkers, nil, logger),
		logger:    logger,
	}
	return fn(logging.WithLogger(ctx, logger), e)
}
