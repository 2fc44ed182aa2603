package booking

import "errors"

// ErrInvalidInput reports a booking form that fails validation: bad date
// or clock strings, a span outside the diary grid, or a bad day count.
var ErrInvalidInput = errors.New("invalid booking input")

// ErrRoomUnavailable reports a clash with an existing confirmed booking
// for the same room.
var ErrRoomUnavailable = errors.New("room already booked for that time")
