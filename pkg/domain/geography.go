package domain

import "github.com/google/uuid"

// ProvinceID identifies a province in reports and logs.
type ProvinceID uuid.UUID

// String returns the canonical UUID text.
func (id ProvinceID) String() string { return uuid.UUID(id).String() }

// CityID identifies a city in reports and logs.
type CityID uuid.UUID

// String returns the canonical UUID text.
func (id CityID) String() string { return uuid.UUID(id).String() }

// Province is the top level of the geography. Two provinces with the same
// population are still different provinces.
type Province struct {
	id         ProvinceID
	name       string
	population uint64
}

// NewProvince creates a province with the given inhabitant count.
func NewProvince(name string, population uint64) *Province {
	return &Province{
		id:         ProvinceID(uuid.New()),
		name:       name,
		population: population,
	}
}

func (p *Province) ID() ProvinceID     { return p.id }
func (p *Province) Name() string       { return p.name }
func (p *Province) Population() uint64 { return p.population }

// City belongs to exactly one province. The province is shared, not owned:
// many cities usually point at the same *Province.
type City struct {
	id       CityID
	name     string
	province *Province
}

// NewCity creates a city located in province.
func NewCity(name string, province *Province) *City {
	return &City{
		id:       CityID(uuid.New()),
		name:     name,
		province: province,
	}
}

func (c *City) ID() CityID          { return c.id }
func (c *City) Name() string        { return c.name }
func (c *City) Province() *Province { return c.province }

// distinctProvinces returns the provinces of cities without repetitions,
// keeping the order in which they were first seen.
func distinctProvinces(cities []*City) []*Province {
	provinces := make([]*Province, 0, len(cities))
	for _, c := range cities {
		provinces = append(provinces, c.province)
	}

	return uniq(provinces)
}

// uniq drops zero values and repeated elements, keeping first occurrences in
// order. For pointers and interfaces holding pointers this is identity-based.
func uniq[T comparable](items []T) []T {
	var zero T
	seen := make(map[T]struct{}, len(items))
	out := make([]T, 0, len(items))
	for _, it := range items {
		if it == zero {
			continue
		}
		if _, ok := seen[it]; ok {
			continue
		}
		seen[it] = struct{}{}
		out = append(out, it)
	}

	return out
}
