package main

import (
	"context"
	"fmt"
	"io"
	"vendors/internal/config"
	"vendors/internal/fleet"
	"vendors/internal/scenario"
	"vendors/pkg/logger"
	"vendors/pkg/metrics"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"go.opentelemetry.io/otel/metric/noop"
	"go.uber.org/zap"
)

// setupMetrics returns the observer centers are reported to, and a function
// flushing the gauges to the configured textfile. Without a metrics file the
// gauges are discarded.
func setupMetrics(ctx context.Context, cfg *config.Config) (metrics.Observer, func(ctx context.Context) error, error) {
	if cfg.Report.MetricsFile == "" {
		observer, err := metrics.NewFleet(noop.NewMeterProvider())
		if err != nil {
			return nil, nil, fmt.Errorf("could not create metrics: %w", err)
		}

		return observer, func(context.Context) error { return nil }, nil
	}

	reg := prometheus.NewRegistry()
	provider, err := metrics.NewPrometheusProvider(reg)
	if err != nil {
		return nil, nil, fmt.Errorf("could not create metrics provider: %w", err)
	}
	observer, err := metrics.NewFleet(provider)
	if err != nil {
		return nil, nil, fmt.Errorf("could not create metrics: %w", err)
	}

	return observer, func(ctx context.Context) error {
		defer func() {
			if err := provider.Shutdown(ctx); err != nil {
				logger.Warn(ctx, "could not shutdown metrics provider", zap.Error(err))
			}
		}()
		if err := metrics.WriteTextfile(reg, cfg.Report.MetricsFile); err != nil {
			return fmt.Errorf("could not write metrics: %w", err)
		}
		logger.Info(ctx, "metrics written", zap.String("path", cfg.Report.MetricsFile))

		return nil
	}, nil
}

// report analyzes every center of s and writes the reports to w.
func report(ctx context.Context, cfg *config.Config, s *scenario.Scenario, w io.Writer) error {
	observer, flush, err := setupMetrics(ctx, cfg)
	if err != nil {
		return err
	}

	analyzer := fleet.New(observer, fleet.Options{Concurrency: cfg.Report.Concurrency})
	reports, err := analyzer.AnalyzeAll(ctx, s.Centers())
	if err != nil {
		return fmt.Errorf("could not analyze centers: %w", err)
	}

	switch cfg.Report.Format {
	case config.FormatJSON:
		_, err = w.Write(append(fleet.EncodeJSON(reports), '\n'))
	default:
		err = fleet.WriteText(w, reports)
	}
	if err != nil {
		return fmt.Errorf("could not write report: %w", err)
	}

	return flush(ctx)
}

func reportCommand(ctx context.Context, cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Reports star, generic and firm vendors and robustness of every center",
		RunE: func(cmd *cobra.Command, args []string) error {
			if format, _ := cmd.Flags().GetString("format"); format != "" {
				cfg.Report.Format = format
				if err := cfg.Validate(); err != nil {
					return err
				}
			}

			return report(ctx, cfg, loadScenario(ctx, cfg), cmd.OutOrStdout())
		},
	}
	cmd.Flags().StringP("format", "f", "", "Output format (text or json), overrides the config")

	return cmd
}
