package domain

import (
	"sync"
	"vendors/pkg/serrors"

	"github.com/google/uuid"
)

// RobustMinFirmVendors is how many firm vendors make a center robust.
const RobustMinFirmVendors = 3

// CenterID identifies a distribution center in reports and logs.
type CenterID uuid.UUID

// String returns the canonical UUID text.
func (id CenterID) String() string { return uuid.UUID(id).String() }

// DistributionCenter groups vendors around a home city and answers
// fleet-level questions about them.
//
// Invariants:
//   - a vendor value appears at most once in the collection
//   - the collection keeps insertion order, which decides StarVendor ties and
//     the order of GenericVendors
//   - vendors are only ever appended, through AddVendor
//
// A center is safe for concurrent use.
type DistributionCenter struct {
	id       CenterID
	name     string
	homeCity *City

	// mu guards vendors.
	mu      sync.RWMutex
	vendors []Vendor
}

// NewDistributionCenter creates a center holding vendors. Repeated vendors
// keep only their first occurrence and nil entries are skipped.
func NewDistributionCenter(name string, homeCity *City, vendors []Vendor) *DistributionCenter {
	return &DistributionCenter{
		id:       CenterID(uuid.New()),
		name:     name,
		homeCity: homeCity,
		vendors:  uniq(vendors),
	}
}

func (c *DistributionCenter) ID() CenterID    { return c.id }
func (c *DistributionCenter) Name() string    { return c.name }
func (c *DistributionCenter) HomeCity() *City { return c.homeCity }

// Vendors returns a copy of the collection in stored order.
func (c *DistributionCenter) Vendors() []Vendor {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return append([]Vendor(nil), c.vendors...)
}

// Len returns the number of vendors held.
func (c *DistributionCenter) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return len(c.vendors)
}

// Contains reports whether this exact vendor is registered.
func (c *DistributionCenter) Contains(v Vendor) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.indexOf(v) >= 0
}

func (c *DistributionCenter) indexOf(v Vendor) int {
	for i, held := range c.vendors {
		if held == v {
			return i
		}
	}

	return -1
}

// AddVendor appends v to the collection. Registering the same vendor twice
// fails with ErrDuplicateVendor.
func (c *DistributionCenter) AddVendor(v Vendor) error {
	if v == nil {
		return serrors.With(serrors.ErrBadRequest, "vendor is required")
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.indexOf(v) >= 0 {
		return serrors.With(ErrDuplicateVendor, "vendor %q is already registered in center %q", v.Name(), c.name)
	}
	c.vendors = append(c.vendors, v)

	return nil
}

// StarVendor returns the vendor with the highest score. On a tie the vendor
// registered first wins. An empty center yields ErrEmptyCollection.
func (c *DistributionCenter) StarVendor() (Vendor, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if len(c.vendors) == 0 {
		return nil, serrors.With(ErrEmptyCollection, "center %q has no vendors", c.name)
	}

	star, best := c.vendors[0], c.vendors[0].Score()
	for _, v := range c.vendors[1:] {
		if score := v.Score(); score > best {
			star, best = v, score
		}
	}

	return star, nil
}

// CanCover reports whether at least one vendor can operate in city.
func (c *DistributionCenter) CanCover(city *City) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()

	for _, v := range c.vendors {
		if v.CanOperateIn(city) {
			return true
		}
	}

	return false
}

// OperatorsIn returns, in stored order, the vendors that can operate in city.
func (c *DistributionCenter) OperatorsIn(city *City) []Vendor {
	return c.filter(func(v Vendor) bool { return v.CanOperateIn(city) })
}

// GenericVendors returns, in stored order, the vendors holding at least one
// non-product certification.
func (c *DistributionCenter) GenericVendors() []Vendor {
	return c.filter(Vendor.IsGeneric)
}

// FirmVendors returns, in stored order, the vendors that are firm.
func (c *DistributionCenter) FirmVendors() []Vendor {
	return c.filter(Vendor.IsFirm)
}

// IsRobust reports whether at least RobustMinFirmVendors vendors are firm.
func (c *DistributionCenter) IsRobust() bool {
	return len(c.FirmVendors()) >= RobustMinFirmVendors
}

func (c *DistributionCenter) filter(keep func(Vendor) bool) []Vendor {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]Vendor, 0, len(c.vendors))
	for _, v := range c.vendors {
		if keep(v) {
			out = append(out, v)
		}
	}

	return out
}
