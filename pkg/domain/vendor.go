package domain

import "github.com/google/uuid"

// Thresholds used by the vendor and center rules.
const (
	// VersatileMinCertifications is the least number of certifications a
	// versatile vendor holds.
	VersatileMinCertifications = 3
	// FirmMinScore is the score from which a vendor is considered firm.
	FirmMinScore = 30
	// InfluentialMinPopulation is the population a traveling vendor must
	// serve, across distinct provinces, to be influential.
	InfluentialMinPopulation uint64 = 10_000_000
	// InfluentialMinBranches is the branch count that makes a correspondent
	// business influential on its own.
	InfluentialMinBranches = 5
	// InfluentialMinProvinces is the number of distinct provinces covered by
	// branches that makes a correspondent business influential.
	InfluentialMinProvinces = 3
)

// VendorID identifies a vendor in reports and logs. Centers never compare
// vendors by ID; they compare the Vendor values themselves.
type VendorID uuid.UUID

// String returns the canonical UUID text.
func (id VendorID) String() string { return uuid.UUID(id).String() }

// VendorKind tags the concrete vendor variant.
type VendorKind string

const (
	// VendorKindFixed is a vendor bound to the city they live in.
	VendorKindFixed VendorKind = "FIXED"
	// VendorKindTraveling is a vendor working across whole provinces.
	VendorKindTraveling VendorKind = "TRAVELING"
	// VendorKindCorrespondent is a business operating through branch offices.
	VendorKindCorrespondent VendorKind = "CORRESPONDENT"
)

// Vendor is implemented by *FixedVendor, *TravelingVendor and
// *CorrespondentBusiness. Every method is a pure query; none of them fails.
type Vendor interface {
	ID() VendorID
	Name() string
	Kind() VendorKind
	// Certifications returns a copy of the certifications held.
	Certifications() []Certification

	// Score is the sum of the certification scores.
	Score() int
	// IsVersatile reports at least VersatileMinCertifications certifications
	// mixing product and non-product ones.
	IsVersatile() bool
	// IsFirm reports Score() >= FirmMinScore.
	IsFirm() bool
	// IsGeneric reports at least one non-product certification.
	IsGeneric() bool

	// CanOperateIn reports whether the vendor may work in city.
	CanOperateIn(city *City) bool
	// IsInfluential applies the variant's reach threshold.
	IsInfluential() bool
}

// profile holds what every variant shares and implements the rules that only
// depend on certifications.
type profile struct {
	id             VendorID
	name           string
	certifications []Certification
}

func newProfile(name string, certifications []Certification) profile {
	return profile{
		id:             VendorID(uuid.New()),
		name:           name,
		certifications: append([]Certification(nil), certifications...),
	}
}

func (p *profile) ID() VendorID { return p.id }
func (p *profile) Name() string { return p.name }

func (p *profile) Certifications() []Certification {
	return append([]Certification(nil), p.certifications...)
}

func (p *profile) Score() int {
	total := 0
	for _, c := range p.certifications {
		total += c.Score
	}

	return total
}

func (p *profile) IsVersatile() bool {
	if len(p.certifications) < VersatileMinCertifications {
		return false
	}

	var products, others bool
	for _, c := range p.certifications {
		if c.AboutProducts {
			products = true
		} else {
			others = true
		}
	}

	return products && others
}

func (p *profile) IsFirm() bool {
	return p.Score() >= FirmMinScore
}

func (p *profile) IsGeneric() bool {
	for _, c := range p.certifications {
		if !c.AboutProducts {
			return true
		}
	}

	return false
}
