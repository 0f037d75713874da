package domain_test

import (
	"testing"
	"vendors/pkg/domain"

	"github.com/stretchr/testify/require"
)

// world is the reference geography shared by the domain tests.
type world struct {
	buenosAires, tucuman, santaFe                       *domain.Province
	sierra, tafiDelValle, rosario, laPlata, marDelPlata *domain.City

	noProd10, prod15, prod20, prod50 domain.Certification
}

func newWorld() world {
	w := world{
		buenosAires: domain.NewProvince("Buenos Aires", 16_660_000),
		tucuman:     domain.NewProvince("Tucumán", 1_593_000),
		santaFe:     domain.NewProvince("Santa Fe", 3_369_000),

		noProd10: domain.NewCertification(false, 10),
		prod15:   domain.NewCertification(true, 15),
		prod20:   domain.NewCertification(true, 20),
		prod50:   domain.NewCertification(true, 50),
	}
	w.sierra = domain.NewCity("Sierra de la Ventana", w.buenosAires)
	w.tafiDelValle = domain.NewCity("Tafí del Valle", w.tucuman)
	w.rosario = domain.NewCity("Rosario", w.santaFe)
	w.laPlata = domain.NewCity("La Plata", w.buenosAires)
	w.marDelPlata = domain.NewCity("Mar del Plata", w.buenosAires)

	return w
}

func certs(cs ...domain.Certification) []domain.Certification { return cs }

func TestFixedVendor_CanOperateIn(t *testing.T) {
	w := newWorld()
	v := domain.NewFixedVendor("fixed", w.sierra, certs(w.noProd10))

	require.Equal(t, domain.VendorKindFixed, v.Kind())
	require.Same(t, w.sierra, v.HomeCity())
	require.True(t, v.CanOperateIn(w.sierra), "home city")
	require.False(t, v.CanOperateIn(w.tafiDelValle), "other province")
	require.False(t, v.CanOperateIn(w.laPlata), "same province, different city")
	require.False(t, v.CanOperateIn(nil))

	lookalike := domain.NewCity("Sierra de la Ventana", w.buenosAires)
	require.False(t, v.CanOperateIn(lookalike), "cities are compared by identity")
}

func TestTravelingVendor_CanOperateIn(t *testing.T) {
	w := newWorld()
	v := domain.NewTravelingVendor("traveler", []*domain.Province{w.tucuman}, certs(w.prod15, w.prod20, w.prod50))

	require.Equal(t, domain.VendorKindTraveling, v.Kind())
	require.True(t, v.CanOperateIn(w.tafiDelValle))
	require.False(t, v.CanOperateIn(w.sierra))
	require.False(t, v.CanOperateIn(nil))

	twin := domain.NewProvince("Tucumán", 1_593_000)
	require.False(t, v.CanOperateIn(domain.NewCity("Elsewhere", twin)), "provinces are compared by identity")

	empty := domain.NewProvince("Empty", 0)
	require.True(t,
		domain.NewTravelingVendor("t", []*domain.Province{empty}, nil).CanOperateIn(domain.NewCity("c", empty)),
		"population is irrelevant to operating")
}

func TestCorrespondentBusiness_CanOperateIn(t *testing.T) {
	w := newWorld()
	v := domain.NewCorrespondentBusiness("corr", []*domain.City{w.sierra, w.tafiDelValle}, certs(w.noProd10, w.prod20, w.prod15))

	require.Equal(t, domain.VendorKindCorrespondent, v.Kind())
	require.True(t, v.CanOperateIn(w.sierra))
	require.True(t, v.CanOperateIn(w.tafiDelValle))
	require.False(t, v.CanOperateIn(w.rosario))
	require.False(t, v.CanOperateIn(w.laPlata), "same province as a branch is not enough")
	require.False(t, v.CanOperateIn(nil))
}

func TestEmptyGeography(t *testing.T) {
	w := newWorld()
	vendors := []domain.Vendor{
		domain.NewFixedVendor("fixed", nil, nil),
		domain.NewTravelingVendor("traveler", nil, nil),
		domain.NewCorrespondentBusiness("corr", nil, nil),
	}

	for _, v := range vendors {
		t.Run(string(v.Kind()), func(t *testing.T) {
			require.False(t, v.CanOperateIn(w.sierra))
			require.False(t, v.IsInfluential())
			require.Zero(t, v.Score())
			require.False(t, v.IsVersatile())
			require.False(t, v.IsFirm())
			require.False(t, v.IsGeneric())
		})
	}
}

func TestScore(t *testing.T) {
	w := newWorld()

	tests := []struct {
		name  string
		certs []domain.Certification
		want  int
	}{
		{name: "no certifications", certs: nil, want: 0},
		{name: "single", certs: certs(w.noProd10), want: 10},
		{name: "sum", certs: certs(w.prod15, w.prod20, w.prod50), want: 85},
		{name: "negative scores count", certs: certs(w.prod20, domain.NewCertification(false, -5)), want: 15},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := domain.NewFixedVendor("v", w.sierra, tt.certs)
			require.Equal(t, tt.want, v.Score())
		})
	}
}

func TestIsVersatile(t *testing.T) {
	w := newWorld()

	tests := []struct {
		name  string
		certs []domain.Certification
		want  bool
	}{
		{name: "fewer than three", certs: certs(w.noProd10), want: false},
		{name: "two mixed", certs: certs(w.noProd10, w.prod20), want: false},
		{name: "three all products", certs: certs(w.prod15, w.prod20, w.prod50), want: false},
		{name: "four all generic", certs: certs(w.noProd10, w.noProd10, w.noProd10, w.noProd10), want: false},
		{name: "three mixed", certs: certs(w.noProd10, w.prod20, w.prod15), want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := domain.NewCorrespondentBusiness("v", nil, tt.certs)
			require.Equal(t, tt.want, v.IsVersatile())
		})
	}
}

func TestIsFirm(t *testing.T) {
	tests := []struct {
		score int
		want  bool
	}{
		{score: 10, want: false},
		{score: 29, want: false},
		{score: 30, want: true},
		{score: 85, want: true},
	}

	for _, tt := range tests {
		v := domain.NewTravelingVendor("v", nil, certs(domain.NewCertification(true, tt.score)))
		require.Equal(t, tt.want, v.IsFirm(), "score %d", tt.score)
	}
}

func TestCertificationsAreCopied(t *testing.T) {
	w := newWorld()
	in := certs(w.noProd10, w.prod20)
	v := domain.NewFixedVendor("v", w.sierra, in)

	in[0] = w.prod50
	require.Equal(t, 30, v.Score(), "mutating the input must not affect the vendor")

	out := v.Certifications()
	out[1] = w.prod50
	require.Equal(t, 30, v.Score(), "mutating the returned copy must not affect the vendor")
}

func TestFixedVendor_IsNeverInfluential(t *testing.T) {
	w := newWorld()
	v := domain.NewFixedVendor("v", w.sierra, certs(w.prod50, w.prod50, w.noProd10))

	require.False(t, v.IsInfluential())
}

func TestTravelingVendor_IsInfluential(t *testing.T) {
	w := newWorld()

	tests := []struct {
		name      string
		provinces []*domain.Province
		want      bool
	}{
		{name: "below threshold", provinces: []*domain.Province{w.tucuman}, want: false},
		{name: "above threshold", provinces: []*domain.Province{w.tucuman, w.buenosAires}, want: true},
		{name: "exactly at threshold", provinces: []*domain.Province{domain.NewProvince("p", 10_000_000)}, want: true},
		{name: "one below threshold", provinces: []*domain.Province{domain.NewProvince("p", 9_999_999)}, want: false},
		{
			name:      "repeated province counted once",
			provinces: []*domain.Province{w.santaFe, w.santaFe, w.santaFe},
			want:      false,
		},
		{
			name: "split over distinct provinces",
			provinces: []*domain.Province{
				domain.NewProvince("a", 5_000_000),
				domain.NewProvince("b", 5_000_000),
			},
			want: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := domain.NewTravelingVendor("v", tt.provinces, nil)
			require.Equal(t, tt.want, v.IsInfluential())
		})
	}
}

func TestTravelingVendor_ProvincesAreASet(t *testing.T) {
	w := newWorld()
	v := domain.NewTravelingVendor("v", []*domain.Province{w.santaFe, nil, w.santaFe, w.tucuman}, nil)

	require.Equal(t, []*domain.Province{w.santaFe, w.tucuman}, v.Provinces())
	require.Equal(t, uint64(3_369_000+1_593_000), v.ServedPopulation())
}

func TestCorrespondentBusiness_IsInfluential(t *testing.T) {
	w := newWorld()
	otherBA := domain.NewCity("Bahía Blanca", w.buenosAires)

	tests := []struct {
		name     string
		branches []*domain.City
		want     bool
	}{
		{
			name:     "two cities two provinces",
			branches: []*domain.City{w.sierra, w.tafiDelValle},
			want:     false,
		},
		{
			name:     "five cities",
			branches: []*domain.City{w.sierra, w.tafiDelValle, w.marDelPlata, w.laPlata, w.rosario},
			want:     true,
		},
		{
			name:     "five cities in one province",
			branches: []*domain.City{w.sierra, w.marDelPlata, w.laPlata, otherBA, domain.NewCity("Tandil", w.buenosAires)},
			want:     true,
		},
		{
			name:     "three cities three provinces",
			branches: []*domain.City{w.sierra, w.tafiDelValle, w.rosario},
			want:     true,
		},
		{
			name:     "four cities two provinces",
			branches: []*domain.City{w.sierra, w.laPlata, w.marDelPlata, w.tafiDelValle},
			want:     false,
		},
		{
			name:     "repeated branch counted once",
			branches: []*domain.City{w.sierra, w.sierra, w.sierra, w.laPlata, w.laPlata},
			want:     false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := domain.NewCorrespondentBusiness("v", tt.branches, nil)
			require.Equal(t, tt.want, v.IsInfluential())
		})
	}
}

func TestCorrespondentBusiness_BranchProvinces(t *testing.T) {
	w := newWorld()
	v := domain.NewCorrespondentBusiness("v", []*domain.City{w.sierra, w.rosario, w.laPlata, w.sierra}, nil)

	require.Equal(t, []*domain.City{w.sierra, w.rosario, w.laPlata}, v.Branches())
	require.Equal(t, []*domain.Province{w.buenosAires, w.santaFe}, v.BranchProvinces())
}

func TestIDsAreUnique(t *testing.T) {
	w := newWorld()
	a := domain.NewFixedVendor("same", w.sierra, nil)
	b := domain.NewFixedVendor("same", w.sierra, nil)

	require.NotEqual(t, a.ID(), b.ID())
	require.NotEqual(t, w.laPlata.ID(), w.marDelPlata.ID())
	require.NotEqual(t, w.tucuman.ID().String(), w.santaFe.ID().String())
}
