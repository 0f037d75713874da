package domain

// FixedVendor works only in the city where they live.
type FixedVendor struct {
	profile

	homeCity *City
}

var _ Vendor = (*FixedVendor)(nil)

// NewFixedVendor creates a vendor living in homeCity. The certifications
// slice is copied.
func NewFixedVendor(name string, homeCity *City, certifications []Certification) *FixedVendor {
	return &FixedVendor{
		profile:  newProfile(name, certifications),
		homeCity: homeCity,
	}
}

func (v *FixedVendor) Kind() VendorKind { return VendorKindFixed }

// HomeCity returns the city the vendor lives in.
func (v *FixedVendor) HomeCity() *City { return v.homeCity }

// CanOperateIn is true only for the home city itself; other cities of the
// same province do not count.
func (v *FixedVendor) CanOperateIn(city *City) bool {
	return city != nil && city == v.homeCity
}

// IsInfluential is always false for fixed vendors.
func (v *FixedVendor) IsInfluential() bool { return false }
