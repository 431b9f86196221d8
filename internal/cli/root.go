// Package cli wires the flyweight demo commands.
package cli

import (
	"fmt"
	"io"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/goforj/flyweight"
	"github.com/goforj/flyweight/config"
	"github.com/goforj/flyweight/logger"
	"github.com/goforj/flyweight/metrics"
)

type options struct {
	cfgPath  string
	logLevel string
}

// Execute runs the CLI.
func Execute() error { return NewRootCommand().Execute() }

// NewRootCommand builds a fresh command tree.
func NewRootCommand() *cobra.Command {
	opts := &options{}
	root := &cobra.Command{
		Use:          "flyweight",
		Short:        "Shared-instance cache and dispatching factory demos",
		SilenceUsage: true,
	}
	root.PersistentFlags().StringVarP(&opts.cfgPath, "config", "c", "", "configuration file (yaml or json)")
	root.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "override logging.level")
	root.AddCommand(newCirclesCommand(opts), newPersonsCommand(opts))
	return root
}

// env is the per-invocation wiring shared by commands.
type env struct {
	cfg      *config.Config
	log      logger.Logger
	registry *prometheus.Registry
	observer flyweight.Observer
}

func (o *options) setup(cmd *cobra.Command, component string) (*env, error) {
	cfg, err := config.Load(o.cfgPath)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if o.logLevel != "" {
		cfg.Logging.Level = o.logLevel
		if err := cfg.Logging.Validate(); err != nil {
			return nil, err
		}
	}
	level, err := logger.ParseLevel(cfg.Logging.Level)
	if err != nil {
		return nil, err
	}
	e := &env{
		cfg: cfg,
		log: logger.NewWithWriter(cmd.ErrOrStderr(), component, level),
	}
	e.observer = logger.Observer(e.log)
	if cfg.Metrics.Enabled {
		e.registry = prometheus.NewRegistry()
		prom, err := metrics.NewPromObserver(e.registry)
		if err != nil {
			return nil, fmt.Errorf("metrics: %w", err)
		}
		e.observer = flyweight.MultiObserver(e.observer, prom)
	}
	return e, nil
}

func (e *env) finish(w io.Writer) error {
	if e.registry == nil {
		return nil
	}
	return metrics.WriteSummary(w, e.registry)
}
