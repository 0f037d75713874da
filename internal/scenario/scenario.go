package scenario

import (
	"strings"
	"vendors/pkg/domain"
	"vendors/pkg/serrors"

	"github.com/go-faster/errors"
)

// Scenario is the object graph built from a Document.
type Scenario struct {
	provinces      map[string]*domain.Province
	cities         map[string]*domain.City
	certifications map[string]domain.Certification
	vendors        map[string]domain.Vendor
	centers        map[string]*domain.DistributionCenter

	// centerOrder keeps centers in document order.
	centerOrder []*domain.DistributionCenter
}

// Build resolves every reference in doc and creates the domain entities.
// Reference and validation problems are reported with serrors.ErrBadRequest;
// a name declared twice in the same section with serrors.ErrConflict.
func Build(doc *Document) (*Scenario, error) {
	s := &Scenario{
		provinces:      make(map[string]*domain.Province, len(doc.Provinces)),
		cities:         make(map[string]*domain.City, len(doc.Cities)),
		certifications: make(map[string]domain.Certification, len(doc.Certifications)),
		vendors:        make(map[string]domain.Vendor, len(doc.Vendors)),
		centers:        make(map[string]*domain.DistributionCenter, len(doc.Centers)),
	}

	for _, p := range doc.Provinces {
		key, err := declare(s.provinces, "province", p.Name)
		if err != nil {
			return nil, err
		}
		s.provinces[key] = domain.NewProvince(strings.TrimSpace(p.Name), p.Population)
	}

	for _, c := range doc.Cities {
		key, err := declare(s.cities, "city", c.Name)
		if err != nil {
			return nil, err
		}
		province, err := resolve(s.provinces, "province", c.Province)
		if err != nil {
			return nil, errors.Wrapf(err, "city %q", c.Name)
		}
		s.cities[key] = domain.NewCity(strings.TrimSpace(c.Name), province)
	}

	for _, c := range doc.Certifications {
		key, err := declare(s.certifications, "certification", c.Name)
		if err != nil {
			return nil, err
		}
		s.certifications[key] = domain.NewCertification(c.AboutProducts, c.Score)
	}

	for _, v := range doc.Vendors {
		key, err := declare(s.vendors, "vendor", v.Name)
		if err != nil {
			return nil, err
		}
		vendor, err := s.buildVendor(v)
		if err != nil {
			return nil, errors.Wrapf(err, "vendor %q", v.Name)
		}
		s.vendors[key] = vendor
	}

	for _, c := range doc.Centers {
		key, err := declare(s.centers, "center", c.Name)
		if err != nil {
			return nil, err
		}
		center, err := s.buildCenter(c)
		if err != nil {
			return nil, errors.Wrapf(err, "center %q", c.Name)
		}
		s.centers[key] = center
		s.centerOrder = append(s.centerOrder, center)
	}

	return s, nil
}

func (s *Scenario) buildVendor(spec VendorSpec) (domain.Vendor, error) {
	certifications, err := resolveAll(s.certifications, "certification", spec.Certifications)
	if err != nil {
		return nil, err
	}
	name := strings.TrimSpace(spec.Name)

	switch kind, _ := NormalizeName(spec.Kind); kind {
	case KindFixed:
		if len(spec.Provinces) > 0 || len(spec.Branches) > 0 {
			return nil, serrors.With(serrors.ErrBadRequest, "fixed vendors only take a city")
		}
		city, err := resolve(s.cities, "city", spec.City)
		if err != nil {
			return nil, err
		}

		return domain.NewFixedVendor(name, city, certifications), nil
	case KindTraveling:
		if spec.City != "" || len(spec.Branches) > 0 {
			return nil, serrors.With(serrors.ErrBadRequest, "traveling vendors only take provinces")
		}
		provinces, err := resolveAll(s.provinces, "province", spec.Provinces)
		if err != nil {
			return nil, err
		}

		return domain.NewTravelingVendor(name, provinces, certifications), nil
	case KindCorrespondent:
		if spec.City != "" || len(spec.Provinces) > 0 {
			return nil, serrors.With(serrors.ErrBadRequest, "correspondent businesses only take branches")
		}
		branches, err := resolveAll(s.cities, "city", spec.Branches)
		if err != nil {
			return nil, err
		}

		return domain.NewCorrespondentBusiness(name, branches, certifications), nil
	default:
		return nil, serrors.With(serrors.ErrBadRequest, "unknown vendor kind %q", spec.Kind)
	}
}

func (s *Scenario) buildCenter(spec CenterSpec) (*domain.DistributionCenter, error) {
	city, err := resolve(s.cities, "city", spec.City)
	if err != nil {
		return nil, err
	}
	// repeated names resolve to the same vendor, which the center deduplicates
	vendors, err := resolveAll(s.vendors, "vendor", spec.Vendors)
	if err != nil {
		return nil, err
	}

	return domain.NewDistributionCenter(strings.TrimSpace(spec.Name), city, vendors), nil
}

// Centers returns the centers in document order.
func (s *Scenario) Centers() []*domain.DistributionCenter {
	return append([]*domain.DistributionCenter(nil), s.centerOrder...)
}

// Center looks a center up by name.
func (s *Scenario) Center(name string) (*domain.DistributionCenter, error) {
	return lookup(s.centers, "center", name)
}

// City looks a city up by name.
func (s *Scenario) City(name string) (*domain.City, error) {
	return lookup(s.cities, "city", name)
}

// Province looks a province up by name.
func (s *Scenario) Province(name string) (*domain.Province, error) {
	return lookup(s.provinces, "province", name)
}

// Vendor looks a vendor up by name.
func (s *Scenario) Vendor(name string) (domain.Vendor, error) {
	return lookup(s.vendors, "vendor", name)
}

// declare normalizes name and makes sure it is not taken yet.
func declare[T any](registry map[string]T, what, name string) (string, error) {
	key, err := NormalizeName(name)
	if err != nil {
		return "", errors.Wrapf(err, "invalid %s name", what)
	}
	if _, ok := registry[key]; ok {
		return "", serrors.With(serrors.ErrConflict, "%s %q is declared more than once", what, name)
	}

	return key, nil
}

// resolve finds a reference made from inside the document.
func resolve[T any](registry map[string]T, what, name string) (T, error) {
	var zero T
	key, err := NormalizeName(name)
	if err != nil {
		return zero, errors.Wrapf(err, "invalid %s reference", what)
	}
	v, ok := registry[key]
	if !ok {
		return zero, serrors.With(serrors.ErrBadRequest, "unknown %s %q", what, name)
	}

	return v, nil
}

func resolveAll[T any](registry map[string]T, what string, names []string) ([]T, error) {
	out := make([]T, 0, len(names))
	for _, name := range names {
		v, err := resolve(registry, what, name)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}

	return out, nil
}

// lookup finds an entity on behalf of a caller outside the document, where
// a missing name is a not-found rather than a malformed document.
func lookup[T any](registry map[string]T, what, name string) (T, error) {
	var zero T
	key, err := NormalizeName(name)
	if err != nil {
		return zero, errors.Wrapf(err, "invalid %s name", what)
	}
	v, ok := registry[key]
	if !ok {
		return zero, serrors.With(serrors.ErrNotFound, "%s %q not found", what, name)
	}

	return v, nil
}
