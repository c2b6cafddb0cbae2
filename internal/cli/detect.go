// SPDX-License-Identifier: MIT

package cli

import (
	"context"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/radar/config"
	"github.com/katalvlaran/radar/matrix"
	"github.com/katalvlaran/radar/metrics"
	"github.com/katalvlaran/radar/radar"
)

type detectOpts struct {
	configPath  string
	top         int
	backend     string
	format      string
	metricsFile string
}

func newDetectCmd() *cobra.Command {
	var opts detectOpts

	cmd := &cobra.Command{
		Use:   "detect",
		Short: "Rank the anomalous nodes of a graph described by a run file",
		Long: `Load attributes and graph from a YAML or TOML run file, solve for the
residual matrix and print the most anomalous nodes.

Flags override the corresponding keys of the run file.`,
		Example: `  radar detect --config run.yaml
  radar detect --config run.toml --top 10 --backend gonum --format json
  radar detect --config run.yaml --metrics-file /var/lib/node_exporter/radar.prom`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(opts.configPath)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("top") {
				cfg.Top = opts.top
			}
			if cmd.Flags().Changed("backend") {
				cfg.Backend = opts.backend
			}
			if err := cfg.Validate(); err != nil {
				return err
			}
			return runDetect(cmd, cfg, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.configPath, "config", "c", "", "run file (.yaml, .yml or .toml)")
	cmd.Flags().IntVarP(&opts.top, "top", "n", config.DefaultTop, "number of nodes to report")
	cmd.Flags().StringVarP(&opts.backend, "backend", "b", "", "linear algebra backend: native or gonum")
	cmd.Flags().StringVarP(&opts.format, "format", "f", formatTable, "output format: table or json")
	cmd.Flags().StringVar(&opts.metricsFile, "metrics-file", "", "write Prometheus metrics to this file")
	_ = cmd.MarkFlagRequired("config")

	return cmd
}

func runDetect(cmd *cobra.Command, cfg config.Config, opts detectOpts) error {
	if err := validateFormat(opts.format); err != nil {
		return err
	}
	X, A, err := cfg.Matrices()
	if err != nil {
		return err
	}
	solverOpts, err := cfg.Options()
	if err != nil {
		return err
	}

	return execute(cmd.Context(), cmd, run{
		X:           X,
		A:           A,
		opts:        solverOpts,
		top:         cfg.Top,
		format:      opts.format,
		metricsFile: opts.metricsFile,
		source:      opts.configPath,
	})
}

// run is one scoring run shared by detect and demo.
type run struct {
	X, A        *matrix.Dense
	opts        radar.Options
	top         int
	format      string
	metricsFile string
	source      string
}

// execute scores the run, prints the result and writes metrics if requested.
func execute(ctx context.Context, cmd *cobra.Command, r run) error {
	runID := uuid.NewString()
	logger := loggerFromContext(ctx).With("run", runID[:8])
	logger.Debug("loaded graph", "source", r.source, "nodes", r.X.Rows(), "attributes", r.X.Cols())

	var reg *prometheus.Registry
	if r.metricsFile != "" {
		reg = prometheus.NewRegistry()
		r.opts.Observer = metrics.New(reg)
	}
	r.opts.Logger = logger

	p := newProgress(logger)
	rep, err := radar.Detect(ctx, r.X, r.A, r.opts, r.top)
	if err != nil {
		return err
	}
	p.done(fmt.Sprintf("Scored %d nodes", len(rep.Scores)))
	if logger.GetLevel() <= log.DebugLevel {
		logger.Debug("residual matrix\n" + fmt.Sprint(rep.Result.R))
	}

	if reg != nil {
		if err := metrics.WriteTextfile(r.metricsFile, reg); err != nil {
			return fmt.Errorf("write metrics: %w", err)
		}
		logger.Info("Wrote metrics", "file", r.metricsFile)
	}

	return writeOutput(cmd.OutOrStdout(), r.format, newRunOutput(runID, r.opts.Backend.Name(), rep))
}
