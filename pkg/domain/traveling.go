package domain

// TravelingVendor works in any city of the provinces they serve.
type TravelingVendor struct {
	profile

	provinces []*Province
}

var _ Vendor = (*TravelingVendor)(nil)

// NewTravelingVendor creates a vendor serving provinces. Provinces form a
// set: repetitions and nil entries are dropped.
func NewTravelingVendor(name string, provinces []*Province, certifications []Certification) *TravelingVendor {
	return &TravelingVendor{
		profile:   newProfile(name, certifications),
		provinces: uniq(provinces),
	}
}

func (v *TravelingVendor) Kind() VendorKind { return VendorKindTraveling }

// Provinces returns a copy of the distinct provinces served.
func (v *TravelingVendor) Provinces() []*Province {
	return append([]*Province(nil), v.provinces...)
}

// CanOperateIn is true when the city lies in one of the served provinces.
func (v *TravelingVendor) CanOperateIn(city *City) bool {
	if city == nil || city.province == nil {
		return false
	}
	for _, p := range v.provinces {
		if p == city.province {
			return true
		}
	}

	return false
}

// ServedPopulation sums the population of the provinces served, each
// province counted once.
func (v *TravelingVendor) ServedPopulation() uint64 {
	var total uint64
	for _, p := range v.provinces {
		total += p.population
	}

	return total
}

// IsInfluential is true when the served population reaches
// InfluentialMinPopulation.
func (v *TravelingVendor) IsInfluential() bool {
	return v.ServedPopulation() >= InfluentialMinPopulation
}
