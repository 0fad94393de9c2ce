package cli

import (
	"errors"
	"fmt"

	"github.com/KrishnaVbs1001/Gator-Ticket-Master/internal/booking"
)

// The render functions turn a service outcome into output lines. Failure
// branches the system reports as regular output (invalid input, missing
// reservations, waitlist misses) are mapped here; anything else is an
// unexpected error and propagates.

const invalidSeatCountMsg = "Invalid input. Please provide a valid number of seats."

func renderInitialize(out *booking.InitializeOutput, err error) ([]string, error) {
	if errors.Is(err, booking.ErrInvalidSeatCount) {
		return []string{invalidSeatCountMsg}, nil
	}
	if err != nil {
		return nil, err
	}
	return []string{fmt.Sprintf("%d Seats are made available for reservation", out.SeatCount)}, nil
}

func renderAvailable(out *booking.AvailabilityOutput, err error) ([]string, error) {
	if err != nil {
		return nil, err
	}
	return []string{fmt.Sprintf("Total Seats Available : %d, Waitlist : %d",
		out.AvailableSeats, out.WaitlistLength)}, nil
}

func renderReserve(out *booking.ReserveOutput, err error) ([]string, error) {
	if err != nil {
		return nil, err
	}
	if out.Waitlisted {
		return []string{fmt.Sprintf("User %d is added to the waiting list", out.UserID)}, nil
	}
	return []string{fmt.Sprintf("User %d reserved seat %d", out.UserID, out.SeatID)}, nil
}

func renderCancel(seatID, userID int, out *booking.CancelOutput, err error) ([]string, error) {
	switch {
	case errors.Is(err, booking.ErrNoReservation):
		return []string{fmt.Sprintf("User %d has no reservation to cancel", userID)}, nil
	case errors.Is(err, booking.ErrSeatMismatch):
		return []string{fmt.Sprintf("User %d has no reservation for seat %d to cancel", userID, seatID)}, nil
	case err != nil:
		return nil, err
	}

	lines := []string{fmt.Sprintf("User %d canceled their reservation", out.UserID)}
	if out.Reassigned != nil {
		lines = append(lines, fmt.Sprintf("User %d reserved seat %d",
			out.Reassigned.UserID, out.Reassigned.SeatID))
	}
	return lines, nil
}

func renderExitWaitlist(userID int, out *booking.ExitWaitlistOutput, err error) ([]string, error) {
	if errors.Is(err, booking.ErrNotInWaitlist) {
		return []string{fmt.Sprintf("User %d is not in waitlist", userID)}, nil
	}
	if err != nil {
		return nil, err
	}
	return []string{fmt.Sprintf("User %d is removed from the waiting list", out.UserID)}, nil
}

func renderUpdatePriority(userID int, out *booking.UpdatePriorityOutput, err error) ([]string, error) {
	if errors.Is(err, booking.ErrNotInWaitlist) {
		return []string{fmt.Sprintf("User %d priority is not updated", userID)}, nil
	}
	if err != nil {
		return nil, err
	}
	return []string{fmt.Sprintf("User %d priority has been updated to %d", out.UserID, out.Priority)}, nil
}

func renderAddSeats(out *booking.AddSeatsOutput, err error) ([]string, error) {
	if errors.Is(err, booking.ErrInvalidSeatCount) {
		return []string{invalidSeatCountMsg}, nil
	}
	if err != nil {
		return nil, err
	}

	lines := []string{fmt.Sprintf("Additional %d Seats are made available for reservation", out.Count)}
	for _, a := range out.Assignments {
		lines = append(lines, fmt.Sprintf("User %d reserved seat %d", a.UserID, a.SeatID))
	}
	return lines, nil
}

func renderReleaseSeats(out *booking.ReleaseSeatsOutput, err error) ([]string, error) {
	if errors.Is(err, booking.ErrInvalidUserRange) {
		return []string{"Invalid input. Please provide a valid range of users."}, nil
	}
	if err != nil {
		return nil, err
	}

	if !out.Released {
		return []string{fmt.Sprintf(
			"Reservations/waitlist of the users in the range [%d, %d] have been released",
			out.From, out.To)}, nil
	}

	lines := []string{fmt.Sprintf(
		"Reservations of the Users in the range [%d, %d] are released", out.From, out.To)}
	for _, a := range out.Assignments {
		lines = append(lines, fmt.Sprintf("User %d reserved seat %d", a.UserID, a.SeatID))
	}
	return lines, nil
}

func renderReservations(rsvs []booking.Reservation, err error) ([]string, error) {
	if err != nil {
		return nil, err
	}
	lines := make([]string, 0, len(rsvs))
	for _, r := range rsvs {
		lines = append(lines, fmt.Sprintf("Seat %d, User %d", r.SeatID, r.UserID))
	}
	return lines, nil
}
