package booking

import "errors"

var (
	// ErrInvalidSeatCount rejects non-positive seat counts on Initialize
	// and AddSeats.
	ErrInvalidSeatCount = errors.New("invalid seat count")
	// ErrInvalidUserRange rejects ReleaseSeats calls where the lower
	// bound exceeds the upper bound.
	ErrInvalidUserRange = errors.New("invalid user range")

	ErrNoReservation = errors.New("user has no reservation")
	ErrSeatMismatch  = errors.New("reservation is for a different seat")
	ErrNotInWaitlist = errors.New("user is not in the waitlist")
)
