package domain

// CorrespondentBusiness operates through branch offices and works only in
// the cities where it has one.
type CorrespondentBusiness struct {
	profile

	branches []*City
}

var _ Vendor = (*CorrespondentBusiness)(nil)

// NewCorrespondentBusiness creates a business with branches in the given
// cities. A city hosts at most one branch: repetitions and nil entries are
// dropped.
func NewCorrespondentBusiness(name string, branches []*City, certifications []Certification) *CorrespondentBusiness {
	return &CorrespondentBusiness{
		profile:  newProfile(name, certifications),
		branches: uniq(branches),
	}
}

func (v *CorrespondentBusiness) Kind() VendorKind { return VendorKindCorrespondent }

// Branches returns a copy of the branch cities.
func (v *CorrespondentBusiness) Branches() []*City {
	return append([]*City(nil), v.branches...)
}

// CanOperateIn is true for cities hosting a branch.
func (v *CorrespondentBusiness) CanOperateIn(city *City) bool {
	if city == nil {
		return false
	}
	for _, b := range v.branches {
		if b == city {
			return true
		}
	}

	return false
}

// BranchProvinces returns the distinct provinces reached through branches.
func (v *CorrespondentBusiness) BranchProvinces() []*Province {
	return distinctProvinces(v.branches)
}

// IsInfluential is true with at least InfluentialMinBranches branches, or
// with branches spread over at least InfluentialMinProvinces provinces.
func (v *CorrespondentBusiness) IsInfluential() bool {
	if len(v.branches) >= InfluentialMinBranches {
		return true
	}

	return len(v.BranchProvinces()) >= InfluentialMinProvinces
}
