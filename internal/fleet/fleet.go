package fleet

import (
	"context"
	"fmt"
	"vendors/pkg/domain"
	"vendors/pkg/logger"
	"vendors/pkg/metrics"
	"vendors/pkg/serrors"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Options configure how a fleet is analyzed.
type Options struct {
	// Concurrency bounds how many centers AnalyzeAll evaluates at once.
	// Zero or less means no limit.
	Concurrency int
}

// analyzer is the concrete implementation of the Analyzer interface.
type analyzer struct {
	options Options
	// observer receives a snapshot of every analyzed center.
	observer metrics.Observer
}

// Analyze evaluates every query of center. An empty center is not an error:
// its report simply carries no star vendor.
func (a analyzer) Analyze(ctx context.Context, center *domain.DistributionCenter) (*CenterReport, error) {
	if center == nil {
		return nil, serrors.With(serrors.ErrBadRequest, "center is required")
	}
	ctx = logger.WithFields(logger.Named(ctx, "fleet"), zap.String("center", center.Name()))

	vendors := center.Vendors()
	report := &CenterReport{
		Center:      center.Name(),
		HomeCity:    cityName(center.HomeCity()),
		HomeCovered: center.CanCover(center.HomeCity()),
		Vendors:     make([]VendorSummary, 0, len(vendors)),
		Firm:        names(center.FirmVendors()),
		Generic:     names(center.GenericVendors()),
		Robust:      center.IsRobust(),
	}
	for _, v := range vendors {
		report.Vendors = append(report.Vendors, summarize(v))
	}

	star, err := center.StarVendor()
	switch {
	case err == nil:
		summary := summarize(star)
		report.Star = &summary
	case serrors.KindOf(err) == domain.ErrEmptyCollection:
		logger.Warn(ctx, "center has no vendors, no star vendor")
	default:
		return nil, fmt.Errorf("could not get star vendor: %w", err)
	}

	a.observer.RecordCenter(ctx, snapshot(report))
	logger.Debug(ctx, "center analyzed",
		zap.Int("vendors", len(report.Vendors)),
		zap.Int("firm", len(report.Firm)),
		zap.Bool("robust", report.Robust))

	return report, nil
}

// AnalyzeAll analyzes centers concurrently. Reports keep the order of centers
// and the first failure cancels the remaining work.
func (a analyzer) AnalyzeAll(ctx context.Context, centers []*domain.DistributionCenter) ([]CenterReport, error) {
	reports := make([]CenterReport, len(centers))

	g, ctx := errgroup.WithContext(ctx)
	if a.options.Concurrency > 0 {
		g.SetLimit(a.options.Concurrency)
	}
	for i, center := range centers {
		i, center := i, center
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			report, err := a.Analyze(ctx, center)
			if err != nil {
				return fmt.Errorf("could not analyze center #%d: %w", i, err)
			}
			reports[i] = *report

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return reports, nil
}

// Coverage reports whether center can cover city and which of its vendors
// operate there, in registration order.
func (a analyzer) Coverage(ctx context.Context, center *domain.DistributionCenter, city *domain.City) (*CityCoverage, error) {
	if center == nil || city == nil {
		return nil, serrors.With(serrors.ErrBadRequest, "center and city are required")
	}

	operators := center.OperatorsIn(city)
	coverage := &CityCoverage{
		Center:    center.Name(),
		City:      city.Name(),
		Covered:   len(operators) > 0,
		Operators: names(operators),
	}
	if p := city.Province(); p != nil {
		coverage.Province = p.Name()
	}

	logger.Debug(logger.Named(ctx, "fleet"), "coverage checked",
		zap.String("center", coverage.Center),
		zap.String("city", coverage.City),
		zap.Bool("covered", coverage.Covered))

	return coverage, nil
}

func summarize(v domain.Vendor) VendorSummary {
	return VendorSummary{
		Name:        v.Name(),
		Kind:        v.Kind(),
		Score:       v.Score(),
		Versatile:   v.IsVersatile(),
		Firm:        v.IsFirm(),
		Generic:     v.IsGeneric(),
		Influential: v.IsInfluential(),
	}
}

func snapshot(r *CenterReport) metrics.CenterSnapshot {
	s := metrics.CenterSnapshot{
		Center:         r.Center,
		Vendors:        len(r.Vendors),
		FirmVendors:    len(r.Firm),
		GenericVendors: len(r.Generic),
		Robust:         r.Robust,
	}
	if r.Star != nil {
		s.StarScore = r.Star.Score
	}

	return s
}

func names(vendors []domain.Vendor) []string {
	out := make([]string, 0, len(vendors))
	for _, v := range vendors {
		out = append(out, v.Name())
	}

	return out
}

func cityName(c *domain.City) string {
	if c == nil {
		return ""
	}

	return c.Name()
}

// New creates an Analyzer reporting every analyzed center to observer.
func New(observer metrics.Observer, options Options) Analyzer {
	return &analyzer{
		options:  options,
		observer: observer,
	}
}
