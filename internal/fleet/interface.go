package fleet

import (
	"context"
	"vendors/pkg/domain"
)

// Analyzer evaluates distribution centers into reports.
type Analyzer interface {
	Analyze(ctx context.Context, center *domain.DistributionCenter) (*CenterReport, error)
	AnalyzeAll(ctx context.Context, centers []*domain.DistributionCenter) ([]CenterReport, error)
	Coverage(ctx context.Context, center *domain.DistributionCenter, city *domain.City) (*CityCoverage, error)
}

// VendorSummary is the evaluated view of a single vendor.
type VendorSummary struct {
	Name        string
	Kind        domain.VendorKind
	Score       int
	Versatile   bool
	Firm        bool
	Generic     bool
	Influential bool
}

// CenterReport gathers every query a center answers.
type CenterReport struct {
	Center   string
	HomeCity string
	// HomeCovered tells whether some vendor can operate in the home city.
	HomeCovered bool
	Vendors     []VendorSummary
	// Star is nil when the center has no vendors.
	Star    *VendorSummary
	Firm    []string
	Generic []string
	Robust  bool
}

// CityCoverage answers whether a center can serve a city and through whom.
type CityCoverage struct {
	Center    string
	City      string
	Province  string
	Covered   bool
	Operators []string
}
