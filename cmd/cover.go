package main

import (
	"context"
	"fmt"
	"io"
	"vendors/internal/config"
	"vendors/internal/fleet"
	"vendors/internal/scenario"
	"vendors/pkg/metrics"

	"github.com/spf13/cobra"
	"go.opentelemetry.io/otel/metric/noop"
)

// cover answers whether the named center can cover the named city.
func cover(ctx context.Context, cfg *config.Config, s *scenario.Scenario, centerName, cityName string, w io.Writer) error {
	center, err := s.Center(centerName)
	if err != nil {
		return err
	}
	city, err := s.City(cityName)
	if err != nil {
		return err
	}

	observer, err := metrics.NewFleet(noop.NewMeterProvider())
	if err != nil {
		return fmt.Errorf("could not create metrics: %w", err)
	}
	coverage, err := fleet.New(observer, fleet.Options{}).Coverage(ctx, center, city)
	if err != nil {
		return fmt.Errorf("could not check coverage: %w", err)
	}

	if cfg.Report.Format == config.FormatJSON {
		_, err = w.Write(append(fleet.EncodeCoverageJSON(*coverage), '\n'))

		return err
	}

	return fleet.WriteCoverageText(w, *coverage)
}

func coverCommand(ctx context.Context, cfg *config.Config) *cobra.Command {
	var centerName, cityName string

	cmd := &cobra.Command{
		Use:   "cover",
		Short: "Checks whether a center can cover a city and lists the vendors operating there",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cover(ctx, cfg, loadScenario(ctx, cfg), centerName, cityName, cmd.OutOrStdout())
		},
	}
	cmd.Flags().StringVar(&centerName, "center", "", "Center name")
	cmd.Flags().StringVar(&cityName, "city", "", "City name")
	_ = cmd.MarkFlagRequired("center")
	_ = cmd.MarkFlagRequired("city")

	return cmd
}
