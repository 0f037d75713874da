// Package metrics publishes fleet-level figures of distribution centers as
// OpenTelemetry gauges. The CLI backs them with the OpenTelemetry Prometheus
// exporter and dumps the registry in the node-exporter textfile format.
//
//go:generate mockgen -package mockmetrics -source=metrics.go -destination=mock/mockmetrics.go *
package metrics

import (
	"context"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/otel/attribute"
	otelprom "go.opentelemetry.io/otel/exporters/prometheus"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
)

// meterName is the instrumentation scope of every instrument in this package.
const meterName = "vendors/fleet"

// CenterSnapshot is what gets recorded for one analyzed center.
type CenterSnapshot struct {
	// Center is the center name, used as the "center" attribute.
	Center string
	// Vendors is the number of vendors held.
	Vendors int
	// FirmVendors is the number of vendors scoring at least the firm threshold.
	FirmVendors int
	// GenericVendors is the number of vendors with a non-product certification.
	GenericVendors int
	// StarScore is the score of the star vendor, 0 for an empty center.
	StarScore int
	// Robust mirrors DistributionCenter.IsRobust.
	Robust bool
}

// Observer receives center snapshots.
type Observer interface {
	RecordCenter(ctx context.Context, snapshot CenterSnapshot)
}

// Fleet is the Observer backed by OpenTelemetry gauges.
type Fleet struct {
	vendors        metric.Int64Gauge
	firmVendors    metric.Int64Gauge
	genericVendors metric.Int64Gauge
	starScore      metric.Int64Gauge
	robust         metric.Int64Gauge
}

var _ Observer = (*Fleet)(nil)

// NewFleet creates the fleet gauges on the given provider.
func NewFleet(provider metric.MeterProvider) (*Fleet, error) {
	meter := provider.Meter(meterName)

	f := &Fleet{}
	gauges := []struct {
		dst  *metric.Int64Gauge
		name string
		desc string
	}{
		{dst: &f.vendors, name: "vendors_center_vendors", desc: "Vendors registered in the distribution center"},
		{dst: &f.firmVendors, name: "vendors_center_firm_vendors", desc: "Vendors of the center whose score reaches the firm threshold"},
		{dst: &f.genericVendors, name: "vendors_center_generic_vendors", desc: "Vendors of the center holding a non-product certification"},
		{dst: &f.starScore, name: "vendors_center_star_score", desc: "Score of the center's star vendor"},
		{dst: &f.robust, name: "vendors_center_robust", desc: "1 when the center is robust, 0 otherwise"},
	}

	for _, g := range gauges {
		gauge, err := meter.Int64Gauge(g.name, metric.WithDescription(g.desc))
		if err != nil {
			return nil, fmt.Errorf("could not create gauge %s: %w", g.name, err)
		}
		*g.dst = gauge
	}

	return f, nil
}

// RecordCenter sets every gauge for the snapshot's center.
func (f *Fleet) RecordCenter(ctx context.Context, snapshot CenterSnapshot) {
	attrs := metric.WithAttributes(attribute.String("center", snapshot.Center))

	var robust int64
	if snapshot.Robust {
		robust = 1
	}

	f.vendors.Record(ctx, int64(snapshot.Vendors), attrs)
	f.firmVendors.Record(ctx, int64(snapshot.FirmVendors), attrs)
	f.genericVendors.Record(ctx, int64(snapshot.GenericVendors), attrs)
	f.starScore.Record(ctx, int64(snapshot.StarScore), attrs)
	f.robust.Record(ctx, robust, attrs)
}

// NewPrometheusProvider returns a meter provider whose instruments are
// exported into reg.
func NewPrometheusProvider(reg prometheus.Registerer) (*sdkmetric.MeterProvider, error) {
	exp, err := otelprom.New(otelprom.WithRegisterer(reg))
	if err != nil {
		return nil, fmt.Errorf("could not create otel exporter: %w", err)
	}

	return sdkmetric.NewMeterProvider(sdkmetric.WithReader(exp)), nil
}

// WriteTextfile gathers g and writes it to path in the Prometheus text
// format, replacing the file atomically.
func WriteTextfile(g prometheus.Gatherer, path string) error {
	if err := prometheus.WriteToTextfile(path, g); err != nil {
		return fmt.Errorf("could not write metrics textfile: %w", err)
	}

	return nil
}
