package main

import (
	"encoding/json"
	"io"
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
	"github.com/spf13/cobra"

	"github.com/vango-dev/reconcile/internal/config"
	"github.com/vango-dev/reconcile/internal/errors"
	"github.com/vango-dev/reconcile/pkg/metrics"
	"github.com/vango-dev/reconcile/pkg/vango"
)

// app holds state shared by every command of one invocation.
type app struct {
	configDir string

	cfg      *config.Config
	logger   *slog.Logger
	registry *prometheus.Registry
}

// setup loads configuration, then wires logging, debug flags and metrics.
func (a *app) setup(cmd *cobra.Command) error {
	v := config.NewViper(a.configDir)
	flags := cmd.Flags()
	for key, flag := range map[string]string{
		"debug.hookOrder":    "debug",
		"debug.logRecompute": "debug",
		"metrics.enabled":    "metrics",
		"output.compact":     "compact",
	} {
		if f := flags.Lookup(flag); f != nil {
			if err := v.BindPFlag(key, f); err != nil {
				return errors.New("E020").Wrap(err)
			}
		}
	}

	cfg, err := config.Decode(v, a.configDir)
	if err != nil {
		return err
	}
	a.cfg = cfg

	level := slog.LevelInfo
	if debug, _ := flags.GetBool("debug"); debug {
		level = slog.LevelDebug
	}
	a.logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))

	vango.DebugMode = cfg.Debug.HookOrder
	vango.Debug = vango.DebugConfig{
		LogRecompute: cfg.Debug.LogRecompute,
		Logger:       a.logger,
	}

	if cfg.Metrics.Enabled {
		a.registry = prometheus.NewRegistry()
		metrics.New(
			metrics.WithRegistry(a.registry),
			metrics.WithNamespace(cfg.Metrics.Namespace),
			metrics.WithSubsystem(cfg.Metrics.Subsystem),
		).Install()
	}

	a.logger.Debug("configuration loaded",
		"dir", cfg.Dir(),
		"file", config.Exists(a.configDir),
		"metrics", cfg.Metrics.Enabled)
	return nil
}

// teardown prints collected metrics and removes the observers.
func (a *app) teardown(cmd *cobra.Command) error {
	if a.registry == nil {
		return nil
	}
	registry := a.registry
	a.registry = nil
	defer metrics.Uninstall()

	families, err := registry.Gather()
	if err != nil {
		return err
	}
	out := cmd.ErrOrStderr()
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(out, mf); err != nil {
			return err
		}
	}
	return nil
}

// guard wraps a command's RunE so metrics are still printed and observers
// removed when it fails; cobra skips post-run hooks after an error.
func (a *app) guard(run func(*cobra.Command, []string) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		err := run(cmd, args)
		if err != nil {
			if terr := a.teardown(cmd); terr != nil {
				a.logger.Warn("metrics output failed", "error", terr)
			}
		}
		return err
	}
}

// writeJSON prints v using the configured indentation.
func (a *app) writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	if a.cfg == nil || !a.cfg.Output.Compact {
		indent := config.DefaultIndent
		if a.cfg != nil {
			indent = a.cfg.Output.Indent
		}
		enc.SetIndent("", indent)
	}
	return enc.Encode(v)
}
