package domain

// Certification is a scored credential held by a vendor. AboutProducts tells
// product certifications apart from generic ones.
type Certification struct {
	AboutProducts bool
	Score         int
}

// NewCertification is a convenience constructor mirroring the field order.
func NewCertification(aboutProducts bool, score int) Certification {
	return Certification{AboutProducts: aboutProducts, Score: score}
}
