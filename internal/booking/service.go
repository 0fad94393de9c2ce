// Package booking orchestrates the three core structures of the ticket
// system: the reservation index (red-black tree keyed by user), the
// priority waitlist and the pool of free seats. Every operation leaves
// the three mutually consistent: a seat is always either reserved or
// free, and a user is never reserved and waiting at the same time.
package booking

import (
	"context"
	"sort"

	"github.com/KrishnaVbs1001/Gator-Ticket-Master/internal/rbtree"
	"github.com/KrishnaVbs1001/Gator-Ticket-Master/internal/seatpool"
	"github.com/KrishnaVbs1001/Gator-Ticket-Master/internal/waitlist"
	pkgLog "github.com/KrishnaVbs1001/Gator-Ticket-Master/pkg/logger"
)

type Service interface {
	Initialize(ctx context.Context, seatCount int) (*InitializeOutput, error)
	Available(ctx context.Context) (*AvailabilityOutput, error)
	Reserve(ctx context.Context, userID, priority int) (*ReserveOutput, error)
	Cancel(ctx context.Context, seatID, userID int) (*CancelOutput, error)
	AddSeats(ctx context.Context, count int) (*AddSeatsOutput, error)
	ExitWaitlist(ctx context.Context, userID int) (*ExitWaitlistOutput, error)
	UpdatePriority(ctx context.Context, userID, priority int) (*UpdatePriorityOutput, error)
	ReleaseSeats(ctx context.Context, userID1, userID2 int) (*ReleaseSeatsOutput, error)
	Reservations(ctx context.Context) ([]Reservation, error)
}

type bookingService struct {
	reservations *rbtree.Tree
	waitlist     *waitlist.Queue
	seats        *seatpool.Pool
	totalSeats   int
	l            pkgLog.Logger
}

func NewService(l pkgLog.Logger) Service {
	return &bookingService{
		reservations: rbtree.New(),
		waitlist:     waitlist.New(),
		seats:        seatpool.New(),
		l:            l,
	}
}

// Initialize resets all state and fills the pool with seats 1..seatCount.
func (s *bookingService) Initialize(ctx context.Context, seatCount int) (*InitializeOutput, error) {
	if seatCount <= 0 {
		s.l.Warnf(ctx, "service.bookingService.Initialize: rejected seat count %d", seatCount)
		return nil, ErrInvalidSeatCount
	}

	s.totalSeats = seatCount
	s.reservations = rbtree.New()
	s.waitlist = waitlist.New()
	s.seats = seatpool.New()
	for seat := 1; seat <= seatCount; seat++ {
		s.seats.Insert(seat)
	}

	s.l.Infof(ctx, "initialized booking system with %d seats", seatCount)
	return &InitializeOutput{SeatCount: seatCount}, nil
}

func (s *bookingService) Available(ctx context.Context) (*AvailabilityOutput, error) {
	return &AvailabilityOutput{
		AvailableSeats: s.seats.Len(),
		WaitlistLength: s.waitlist.Len(),
	}, nil
}

// Reserve assigns the lowest free seat, or waitlists the user when none
// is free. The caller ensures the user holds no reservation or waitlist
// entry already.
func (s *bookingService) Reserve(ctx context.Context, userID, priority int) (*ReserveOutput, error) {
	if seat, ok := s.seats.ExtractMin(); ok {
		s.reservations.Insert(userID, seat)
		s.l.Debugf(ctx, "user %d reserved seat %d", userID, seat)
		return &ReserveOutput{UserID: userID, SeatID: seat}, nil
	}

	s.waitlist.Insert(userID, priority)
	s.l.Debugf(ctx, "user %d waitlisted with priority %d", userID, priority)
	return &ReserveOutput{UserID: userID, Waitlisted: true}, nil
}

// Cancel releases the user's reservation for exactly seatID. The freed
// seat goes to the highest-priority waiter if any, otherwise back to the
// pool.
func (s *bookingService) Cancel(ctx context.Context, seatID, userID int) (*CancelOutput, error) {
	held, ok := s.reservations.Search(userID)
	if !ok {
		return nil, ErrNoReservation
	}
	if held != seatID {
		return nil, ErrSeatMismatch
	}

	s.reservations.Delete(userID)
	out := &CancelOutput{UserID: userID, SeatID: seatID}

	if next, ok := s.waitlist.ExtractTop(); ok {
		s.reservations.Insert(next.UserID, seatID)
		out.Reassigned = &Assignment{UserID: next.UserID, SeatID: seatID}
		s.l.Debugf(ctx, "seat %d reassigned from user %d to user %d", seatID, userID, next.UserID)
	} else {
		s.seats.Insert(seatID)
		s.l.Debugf(ctx, "seat %d returned to the pool by user %d", seatID, userID)
	}

	return out, nil
}

// AddSeats grows the seat range by count. New seats are handed to the
// highest-priority waiters first, in ascending seat order; any seats left
// after the waitlist drains go to the pool.
func (s *bookingService) AddSeats(ctx context.Context, count int) (*AddSeatsOutput, error) {
	if count <= 0 {
		s.l.Warnf(ctx, "service.bookingService.AddSeats: rejected seat count %d", count)
		return nil, ErrInvalidSeatCount
	}

	start := s.totalSeats + 1
	s.totalSeats += count

	out := &AddSeatsOutput{Count: count}
	for seat := start; seat <= s.totalSeats; seat++ {
		next, ok := s.waitlist.ExtractTop()
		if !ok {
			s.seats.Insert(seat)
			continue
		}
		s.reservations.Insert(next.UserID, seat)
		out.Assignments = append(out.Assignments, Assignment{UserID: next.UserID, SeatID: seat})
	}

	s.l.Infof(ctx, "added %d seats, %d assigned from the waitlist", count, len(out.Assignments))
	return out, nil
}

func (s *bookingService) ExitWaitlist(ctx context.Context, userID int) (*ExitWaitlistOutput, error) {
	if !s.waitlist.Contains(userID) {
		return nil, ErrNotInWaitlist
	}
	s.waitlist.Remove(userID)
	s.l.Debugf(ctx, "user %d left the waitlist", userID)
	return &ExitWaitlistOutput{UserID: userID}, nil
}

// UpdatePriority re-keys a waiting user. The user keeps their arrival
// order among others holding the same new priority.
func (s *bookingService) UpdatePriority(ctx context.Context, userID, priority int) (*UpdatePriorityOutput, error) {
	if !s.waitlist.Contains(userID) {
		return nil, ErrNotInWaitlist
	}
	s.waitlist.UpdatePriority(userID, priority)
	s.l.Debugf(ctx, "user %d priority updated to %d", userID, priority)
	return &UpdatePriorityOutput{UserID: userID, Priority: priority}, nil
}

// ReleaseSeats evicts every user in [userID1, userID2] from both the
// reservation index and the waitlist, then pairs the freed seats, lowest
// first, with the remaining waiters in queue order. Leftover seats go to
// the pool.
func (s *bookingService) ReleaseSeats(ctx context.Context, userID1, userID2 int) (*ReleaseSeatsOutput, error) {
	if userID1 > userID2 {
		s.l.Warnf(ctx, "service.bookingService.ReleaseSeats: rejected range [%d, %d]", userID1, userID2)
		return nil, ErrInvalidUserRange
	}

	out := &ReleaseSeatsOutput{From: userID1, To: userID2}

	var freed []int
	for userID := userID1; userID <= userID2; userID++ {
		if seat, ok := s.reservations.Search(userID); ok {
			s.reservations.Delete(userID)
			freed = append(freed, seat)
			out.Released = true
		}
		if s.waitlist.Contains(userID) {
			s.waitlist.Remove(userID)
			out.Released = true
		}
	}

	if !out.Released {
		s.l.Debugf(ctx, "no reservations or waitlist entries in range [%d, %d]", userID1, userID2)
		return out, nil
	}

	// Lowest freed seat to the highest-priority remaining waiter, a
	// two-pointer sweep until either side runs out.
	sort.Ints(freed)
	i := 0
	for ; i < len(freed); i++ {
		next, ok := s.waitlist.ExtractTop()
		if !ok {
			break
		}
		s.reservations.Insert(next.UserID, freed[i])
		out.Assignments = append(out.Assignments, Assignment{UserID: next.UserID, SeatID: freed[i]})
	}
	for ; i < len(freed); i++ {
		s.seats.Insert(freed[i])
	}

	s.l.Infof(ctx, "released range [%d, %d], reassigned %d seats", userID1, userID2, len(out.Assignments))
	return out, nil
}

// Reservations lists all active reservations ordered by seat number.
func (s *bookingService) Reservations(ctx context.Context) ([]Reservation, error) {
	entries := s.reservations.Entries()
	out := make([]Reservation, 0, len(entries))
	for _, e := range entries {
		out = append(out, Reservation{SeatID: e.SeatID, UserID: e.UserID})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].SeatID < out[j].SeatID })
	return out, nil
}
