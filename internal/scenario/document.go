// Package scenario decodes scenario documents and builds the domain object
// graph they describe. A document names every province, city, certification,
// vendor and center; references between them are by (normalized) name.
package scenario

import (
	"github.com/go-faster/errors"
	"github.com/ilyakaznacheev/cleanenv"
)

// Vendor kinds accepted in documents.
const (
	KindFixed         = "fixed"
	KindTraveling     = "traveling"
	KindCorrespondent = "correspondent"
)

// Document is the decoded form of a scenario file.
type Document struct {
	Provinces      []ProvinceSpec      `yaml:"provinces" json:"provinces" toml:"provinces"`
	Cities         []CitySpec          `yaml:"cities" json:"cities" toml:"cities"`
	Certifications []CertificationSpec `yaml:"certifications" json:"certifications" toml:"certifications"`
	Vendors        []VendorSpec        `yaml:"vendors" json:"vendors" toml:"vendors"`
	Centers        []CenterSpec        `yaml:"centers" json:"centers" toml:"centers"`
}

// ProvinceSpec declares a province.
type ProvinceSpec struct {
	Name       string `yaml:"name" json:"name" toml:"name"`
	Population uint64 `yaml:"population" json:"population" toml:"population"`
}

// CitySpec declares a city and the province it belongs to.
type CitySpec struct {
	Name     string `yaml:"name" json:"name" toml:"name"`
	Province string `yaml:"province" json:"province" toml:"province"`
}

// CertificationSpec declares a reusable certification.
type CertificationSpec struct {
	Name          string `yaml:"name" json:"name" toml:"name"`
	AboutProducts bool   `yaml:"aboutProducts" json:"aboutProducts" toml:"aboutProducts"`
	Score         int    `yaml:"score" json:"score" toml:"score"`
}

// VendorSpec declares a vendor. Which geography field applies depends on
// Kind: City for fixed vendors, Provinces for traveling vendors and Branches
// for correspondent businesses.
type VendorSpec struct {
	Name           string   `yaml:"name" json:"name" toml:"name"`
	Kind           string   `yaml:"kind" json:"kind" toml:"kind"`
	City           string   `yaml:"city,omitempty" json:"city,omitempty" toml:"city"`
	Provinces      []string `yaml:"provinces,omitempty" json:"provinces,omitempty" toml:"provinces"`
	Branches       []string `yaml:"branches,omitempty" json:"branches,omitempty" toml:"branches"`
	Certifications []string `yaml:"certifications" json:"certifications" toml:"certifications"`
}

// CenterSpec declares a distribution center with its home city and the
// vendors registered at creation.
type CenterSpec struct {
	Name    string   `yaml:"name" json:"name" toml:"name"`
	City    string   `yaml:"city" json:"city" toml:"city"`
	Vendors []string `yaml:"vendors" json:"vendors" toml:"vendors"`
}

// Load decodes the scenario file at path. The decoder is chosen from the file
// extension: .yml/.yaml, .json, .toml or .edn.
func Load(path string) (*Document, error) {
	var doc Document
	if err := cleanenv.ReadConfig(path, &doc); err != nil {
		return nil, errors.Wrapf(err, "could not read scenario %s", path)
	}

	return &doc, nil
}
