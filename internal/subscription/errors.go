package subscription

import "github.com/pkg/errors"

var (
	// ErrSellerNotFound is returned when the referenced seller id does not exist.
	ErrSellerNotFound = errors.New("seller not found")

	// ErrInvalidRenewal is returned for a renewal timestamp that is zero or
	// not in the future.
	ErrInvalidRenewal = errors.New("renewal end date must be in the future")
)
