package domain

import "vendors/pkg/serrors"

var (
	// ErrDuplicateVendor is returned by AddVendor when the vendor is already
	// registered in the center. The center is left unchanged.
	ErrDuplicateVendor = serrors.NewKind("DUPLICATE_VENDOR")
	// ErrEmptyCollection is returned by queries that need at least one
	// vendor, such as StarVendor.
	ErrEmptyCollection = serrors.NewKind("EMPTY_COLLECTION")
)
