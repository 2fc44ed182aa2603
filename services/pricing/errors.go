package pricing

import (
	"errors"
	"fmt"

	"overture/models"
)

// ErrInvalidRequest reports a pricing request that cannot be quoted:
// non-positive day count or an end time at or before the start.
var ErrInvalidRequest = errors.New("invalid pricing request")

// RateLookupError wraps a failure to resolve rates from the rate source.
// It propagates to the caller; the engine never defaults a missing rate
// to zero.
type RateLookupError struct {
	Category models.RoomCategory
	Room     string
	Date     string
	Err      error
}

func (e *RateLookupError) Error() string {
	if e.Room != "" {
		return fmt.Sprintf("rate lookup failed for room %q: %v", e.Room, e.Err)
	}
	return fmt.Sprintf("rate lookup failed for %s on %s: %v", e.Category, e.Date, e.Err)
}

func (e *RateLookupError) Unwrap() error {
	return e.Err
}
