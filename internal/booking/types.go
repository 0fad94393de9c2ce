package booking

// Assignment records a waiting user being seated during a cancellation,
// seat addition or range release.
type Assignment struct {
	UserID int `json:"user_id"`
	SeatID int `json:"seat_id"`
}

// Reservation is an active seat-to-user pairing, reported seat-first.
type Reservation struct {
	SeatID int `json:"seat_id"`
	UserID int `json:"user_id"`
}

type InitializeOutput struct {
	SeatCount int `json:"seat_count"`
}

type AvailabilityOutput struct {
	AvailableSeats int `json:"available_seats"`
	WaitlistLength int `json:"waitlist_length"`
}

// ReserveOutput reports either an assigned seat or that the user was
// placed on the waitlist.
type ReserveOutput struct {
	UserID     int  `json:"user_id"`
	SeatID     int  `json:"seat_id,omitempty"`
	Waitlisted bool `json:"waitlisted"`
}

// CancelOutput reports the cancelled reservation and, when the waitlist
// was non-empty, the reassignment of the freed seat.
type CancelOutput struct {
	UserID     int         `json:"user_id"`
	SeatID     int         `json:"seat_id"`
	Reassigned *Assignment `json:"reassigned,omitempty"`
}

type AddSeatsOutput struct {
	Count       int          `json:"count"`
	Assignments []Assignment `json:"assignments,omitempty"`
}

type ExitWaitlistOutput struct {
	UserID int `json:"user_id"`
}

type UpdatePriorityOutput struct {
	UserID   int `json:"user_id"`
	Priority int `json:"priority"`
}

// ReleaseSeatsOutput reports a range release. Released is false when no
// user in the range held a reservation or waitlist entry.
type ReleaseSeatsOutput struct {
	From        int          `json:"from"`
	To          int          `json:"to"`
	Released    bool         `json:"released"`
	Assignments []Assignment `json:"assignments,omitempty"`
}
