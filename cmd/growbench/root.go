package main

import (
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/huynhanx03/go-collections/pkg/logger"
	"github.com/huynhanx03/go-collections/pkg/settings"
)

type options struct {
	configPath string
	elements   int
	workers    int
	logLevel   string
	scenarios  []string
}

func newRootCmd() *cobra.Command {
	opts := &options{}
	cmd := &cobra.Command{
		Use:           "growbench",
		Short:         "Run growable buffer scenarios and report the results",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := opts.config(cmd)
			if err != nil {
				return err
			}
			return run(cmd, cfg)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&opts.configPath, "config", "c", "", "path to a YAML config file")
	flags.IntVarP(&opts.elements, "elements", "n", 0, "elements appended per append scenario")
	flags.IntVarP(&opts.workers, "workers", "w", 0, "scenarios run concurrently")
	flags.StringVar(&opts.logLevel, "log-level", "", "log level (debug, info, warn, error)")
	flags.StringSliceVarP(&opts.scenarios, "scenario", "s", nil, "scenarios to run (append, mixed, combat)")
	return cmd
}

// config loads the file and applies explicitly set flags on top.
func (o *options) config(cmd *cobra.Command) (*settings.Config, error) {
	cfg, err := settings.Load(o.configPath)
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("elements") {
		cfg.Bench.Elements = o.elements
	}
	if flags.Changed("workers") {
		cfg.Bench.Workers = o.workers
	}
	if flags.Changed("log-level") {
		cfg.Logger.LogLevel = o.logLevel
	}
	if flags.Changed("scenario") {
		cfg.Bench.Scenarios = o.scenarios
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid flags")
	}
	return cfg, nil
}

func run(cmd *cobra.Command, cfg *settings.Config) (err error) {
	log, closeLog, err := logger.New(cfg.Logger)
	if err != nil {
		return err
	}
	defer func() {
		err = multierr.Append(err, closeLog())
	}()

	reports, err := runScenarios(cmd.Context(), cfg, log)
	for _, r := range reports {
		log.Info("scenario finished",
			zap.String("scenario", r.Name),
			zap.Int("size", r.Size),
			zap.Int("capacity", r.Capacity),
			zap.Int("grows", r.Grows),
			zap.Duration("elapsed", r.Elapsed),
		)
	}
	return err
}
