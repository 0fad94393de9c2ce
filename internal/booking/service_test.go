package booking

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	pkgLog "github.com/KrishnaVbs1001/Gator-Ticket-Master/pkg/logger"
)

func newTestService(t *testing.T) Service {
	t.Helper()
	return NewService(pkgLog.InitializeTestZapLogger())
}

// requireConsistent checks that every seat in [1, totalSeats] is accounted
// for exactly once across the reservation index and the free pool.
func requireConsistent(t *testing.T, svc Service, totalSeats int) {
	t.Helper()
	ctx := context.Background()

	avail, err := svc.Available(ctx)
	require.NoError(t, err)
	rsvs, err := svc.Reservations(ctx)
	require.NoError(t, err)

	require.Equal(t, totalSeats, avail.AvailableSeats+len(rsvs),
		"reserved + free must cover all seats")

	seen := make(map[int]bool)
	for _, r := range rsvs {
		require.GreaterOrEqual(t, r.SeatID, 1)
		require.LessOrEqual(t, r.SeatID, totalSeats)
		require.False(t, seen[r.SeatID], "seat %d reserved twice", r.SeatID)
		seen[r.SeatID] = true
	}
}

func TestService_Initialize(t *testing.T) {
	ctx := context.Background()

	t.Run("fills the pool with the requested seats", func(t *testing.T) {
		svc := newTestService(t)

		out, err := svc.Initialize(ctx, 5)
		require.NoError(t, err)
		require.Equal(t, 5, out.SeatCount)

		avail, err := svc.Available(ctx)
		require.NoError(t, err)
		require.Equal(t, 5, avail.AvailableSeats)
		require.Equal(t, 0, avail.WaitlistLength)
	})

	t.Run("rejects a non-positive count without touching state", func(t *testing.T) {
		svc := newTestService(t)
		_, err := svc.Initialize(ctx, 3)
		require.NoError(t, err)

		_, err = svc.Initialize(ctx, 0)
		require.ErrorIs(t, err, ErrInvalidSeatCount)
		_, err = svc.Initialize(ctx, -2)
		require.ErrorIs(t, err, ErrInvalidSeatCount)

		avail, err := svc.Available(ctx)
		require.NoError(t, err)
		require.Equal(t, 3, avail.AvailableSeats)
	})

	t.Run("re-initialization discards reservations and waitlist", func(t *testing.T) {
		svc := newTestService(t)
		_, err := svc.Initialize(ctx, 1)
		require.NoError(t, err)
		_, err = svc.Reserve(ctx, 1, 1)
		require.NoError(t, err)
		_, err = svc.Reserve(ctx, 2, 1)
		require.NoError(t, err)

		_, err = svc.Initialize(ctx, 2)
		require.NoError(t, err)

		avail, err := svc.Available(ctx)
		require.NoError(t, err)
		require.Equal(t, 2, avail.AvailableSeats)
		require.Equal(t, 0, avail.WaitlistLength)
		rsvs, err := svc.Reservations(ctx)
		require.NoError(t, err)
		require.Empty(t, rsvs)
	})
}

func TestService_Reserve(t *testing.T) {
	ctx := context.Background()

	t.Run("assigns the lowest free seat", func(t *testing.T) {
		svc := newTestService(t)
		_, err := svc.Initialize(ctx, 3)
		require.NoError(t, err)

		out, err := svc.Reserve(ctx, 10, 1)
		require.NoError(t, err)
		require.False(t, out.Waitlisted)
		require.Equal(t, 1, out.SeatID)

		out, err = svc.Reserve(ctx, 11, 1)
		require.NoError(t, err)
		require.Equal(t, 2, out.SeatID)

		requireConsistent(t, svc, 3)
	})

	t.Run("waitlists when sold out", func(t *testing.T) {
		svc := newTestService(t)
		_, err := svc.Initialize(ctx, 1)
		require.NoError(t, err)

		_, err = svc.Reserve(ctx, 1, 1)
		require.NoError(t, err)

		out, err := svc.Reserve(ctx, 2, 5)
		require.NoError(t, err)
		require.True(t, out.Waitlisted)
		require.Zero(t, out.SeatID)

		avail, err := svc.Available(ctx)
		require.NoError(t, err)
		require.Equal(t, 1, avail.WaitlistLength)
	})
}

func TestService_Cancel(t *testing.T) {
	ctx := context.Background()

	t.Run("round-trip returns the seat to the pool", func(t *testing.T) {
		svc := newTestService(t)
		_, err := svc.Initialize(ctx, 2)
		require.NoError(t, err)

		out, err := svc.Reserve(ctx, 7, 1)
		require.NoError(t, err)

		cOut, err := svc.Cancel(ctx, out.SeatID, 7)
		require.NoError(t, err)
		require.Equal(t, 7, cOut.UserID)
		require.Nil(t, cOut.Reassigned)

		avail, err := svc.Available(ctx)
		require.NoError(t, err)
		require.Equal(t, 2, avail.AvailableSeats)
		rsvs, err := svc.Reservations(ctx)
		require.NoError(t, err)
		require.Empty(t, rsvs)
	})

	t.Run("freed seat goes to the highest-priority waiter", func(t *testing.T) {
		svc := newTestService(t)
		_, err := svc.Initialize(ctx, 2)
		require.NoError(t, err)

		for _, u := range []int{1, 2} {
			_, err = svc.Reserve(ctx, u, 1)
			require.NoError(t, err)
		}
		_, err = svc.Reserve(ctx, 3, 5)
		require.NoError(t, err)

		out, err := svc.Cancel(ctx, 1, 1)
		require.NoError(t, err)
		require.NotNil(t, out.Reassigned)
		require.Equal(t, 3, out.Reassigned.UserID)
		require.Equal(t, 1, out.Reassigned.SeatID)

		avail, err := svc.Available(ctx)
		require.NoError(t, err)
		require.Equal(t, 0, avail.AvailableSeats)
		require.Equal(t, 0, avail.WaitlistLength)
		requireConsistent(t, svc, 2)
	})

	t.Run("unknown user is rejected", func(t *testing.T) {
		svc := newTestService(t)
		_, err := svc.Initialize(ctx, 1)
		require.NoError(t, err)

		_, err = svc.Cancel(ctx, 1, 99)
		require.ErrorIs(t, err, ErrNoReservation)
	})

	t.Run("wrong seat is rejected and state unchanged", func(t *testing.T) {
		svc := newTestService(t)
		_, err := svc.Initialize(ctx, 2)
		require.NoError(t, err)
		_, err = svc.Reserve(ctx, 1, 1)
		require.NoError(t, err)

		_, err = svc.Cancel(ctx, 2, 1)
		require.ErrorIs(t, err, ErrSeatMismatch)

		rsvs, err := svc.Reservations(ctx)
		require.NoError(t, err)
		require.Equal(t, []Reservation{{SeatID: 1, UserID: 1}}, rsvs)
	})
}

func TestService_AddSeats(t *testing.T) {
	ctx := context.Background()

	t.Run("new seats serve the waitlist by priority", func(t *testing.T) {
		svc := newTestService(t)
		_, err := svc.Initialize(ctx, 1)
		require.NoError(t, err)

		_, err = svc.Reserve(ctx, 1, 1)
		require.NoError(t, err)
		_, err = svc.Reserve(ctx, 2, 3)
		require.NoError(t, err)
		_, err = svc.Reserve(ctx, 3, 9)
		require.NoError(t, err)

		out, err := svc.AddSeats(ctx, 1)
		require.NoError(t, err)
		require.Equal(t, []Assignment{{UserID: 3, SeatID: 2}}, out.Assignments)

		avail, err := svc.Available(ctx)
		require.NoError(t, err)
		require.Equal(t, 0, avail.AvailableSeats)
		require.Equal(t, 1, avail.WaitlistLength) // user 2 still waiting
		requireConsistent(t, svc, 2)
	})

	t.Run("leftover seats go to the pool", func(t *testing.T) {
		svc := newTestService(t)
		_, err := svc.Initialize(ctx, 1)
		require.NoError(t, err)
		_, err = svc.Reserve(ctx, 1, 1)
		require.NoError(t, err)
		_, err = svc.Reserve(ctx, 2, 4)
		require.NoError(t, err)

		out, err := svc.AddSeats(ctx, 3)
		require.NoError(t, err)
		require.Equal(t, []Assignment{{UserID: 2, SeatID: 2}}, out.Assignments)

		avail, err := svc.Available(ctx)
		require.NoError(t, err)
		require.Equal(t, 2, avail.AvailableSeats)
		requireConsistent(t, svc, 4)
	})

	t.Run("highest priority gets the lowest new seat", func(t *testing.T) {
		svc := newTestService(t)
		_, err := svc.Initialize(ctx, 1)
		require.NoError(t, err)
		_, err = svc.Reserve(ctx, 1, 1)
		require.NoError(t, err)
		_, err = svc.Reserve(ctx, 2, 2)
		require.NoError(t, err)
		_, err = svc.Reserve(ctx, 3, 8)
		require.NoError(t, err)
		_, err = svc.Reserve(ctx, 4, 5)
		require.NoError(t, err)

		out, err := svc.AddSeats(ctx, 3)
		require.NoError(t, err)
		require.Equal(t, []Assignment{
			{UserID: 3, SeatID: 2},
			{UserID: 4, SeatID: 3},
			{UserID: 2, SeatID: 4},
		}, out.Assignments)
	})

	t.Run("rejects a non-positive count", func(t *testing.T) {
		svc := newTestService(t)
		_, err := svc.Initialize(ctx, 1)
		require.NoError(t, err)

		_, err = svc.AddSeats(ctx, 0)
		require.ErrorIs(t, err, ErrInvalidSeatCount)

		avail, err := svc.Available(ctx)
		require.NoError(t, err)
		require.Equal(t, 1, avail.AvailableSeats)
	})
}

func TestService_Waitlist(t *testing.T) {
	ctx := context.Background()

	t.Run("exit removes the user", func(t *testing.T) {
		svc := newTestService(t)
		_, err := svc.Initialize(ctx, 1)
		require.NoError(t, err)
		_, err = svc.Reserve(ctx, 1, 1)
		require.NoError(t, err)
		_, err = svc.Reserve(ctx, 2, 1)
		require.NoError(t, err)

		out, err := svc.ExitWaitlist(ctx, 2)
		require.NoError(t, err)
		require.Equal(t, 2, out.UserID)

		avail, err := svc.Available(ctx)
		require.NoError(t, err)
		require.Equal(t, 0, avail.WaitlistLength)
	})

	t.Run("exit of an absent user is rejected and state untouched", func(t *testing.T) {
		svc := newTestService(t)
		_, err := svc.Initialize(ctx, 1)
		require.NoError(t, err)
		_, err = svc.Reserve(ctx, 1, 1)
		require.NoError(t, err)
		_, err = svc.Reserve(ctx, 2, 1)
		require.NoError(t, err)

		before, err := svc.Available(ctx)
		require.NoError(t, err)

		_, err = svc.ExitWaitlist(ctx, 42)
		require.ErrorIs(t, err, ErrNotInWaitlist)

		after, err := svc.Available(ctx)
		require.NoError(t, err)
		require.Equal(t, before, after)
	})

	t.Run("priority update changes the service order", func(t *testing.T) {
		svc := newTestService(t)
		_, err := svc.Initialize(ctx, 1)
		require.NoError(t, err)
		_, err = svc.Reserve(ctx, 1, 1)
		require.NoError(t, err)
		_, err = svc.Reserve(ctx, 2, 2)
		require.NoError(t, err)
		_, err = svc.Reserve(ctx, 3, 5)
		require.NoError(t, err)

		out, err := svc.UpdatePriority(ctx, 2, 9)
		require.NoError(t, err)
		require.Equal(t, 9, out.Priority)

		// User 2 now outranks user 3 for the next freed seat.
		cOut, err := svc.Cancel(ctx, 1, 1)
		require.NoError(t, err)
		require.Equal(t, 2, cOut.Reassigned.UserID)
	})

	t.Run("priority update for an absent user is rejected", func(t *testing.T) {
		svc := newTestService(t)
		_, err := svc.Initialize(ctx, 1)
		require.NoError(t, err)

		_, err = svc.UpdatePriority(ctx, 7, 3)
		require.ErrorIs(t, err, ErrNotInWaitlist)
	})
}

func TestService_ReleaseSeats(t *testing.T) {
	ctx := context.Background()

	t.Run("rejects an inverted range", func(t *testing.T) {
		svc := newTestService(t)
		_, err := svc.Initialize(ctx, 1)
		require.NoError(t, err)

		_, err = svc.ReleaseSeats(ctx, 5, 2)
		require.ErrorIs(t, err, ErrInvalidUserRange)
	})

	t.Run("empty range reports nothing released", func(t *testing.T) {
		svc := newTestService(t)
		_, err := svc.Initialize(ctx, 2)
		require.NoError(t, err)
		_, err = svc.Reserve(ctx, 1, 1)
		require.NoError(t, err)

		out, err := svc.ReleaseSeats(ctx, 50, 60)
		require.NoError(t, err)
		require.False(t, out.Released)
		require.Empty(t, out.Assignments)

		rsvs, err := svc.Reservations(ctx)
		require.NoError(t, err)
		require.Len(t, rsvs, 1)
	})

	t.Run("freed seats are paired with remaining waiters", func(t *testing.T) {
		svc := newTestService(t)
		_, err := svc.Initialize(ctx, 2)
		require.NoError(t, err)

		// Users 1 and 2 hold seats 1 and 2; 3, 4, 5 wait.
		for _, u := range []int{1, 2} {
			_, err = svc.Reserve(ctx, u, 1)
			require.NoError(t, err)
		}
		_, err = svc.Reserve(ctx, 3, 2)
		require.NoError(t, err)
		_, err = svc.Reserve(ctx, 4, 8)
		require.NoError(t, err)
		_, err = svc.Reserve(ctx, 5, 6)
		require.NoError(t, err)

		// Releasing [1, 3] frees seats 1 and 2, and evicts waiter 3.
		out, err := svc.ReleaseSeats(ctx, 1, 3)
		require.NoError(t, err)
		require.True(t, out.Released)
		require.Equal(t, []Assignment{
			{UserID: 4, SeatID: 1}, // highest priority, lowest seat
			{UserID: 5, SeatID: 2},
		}, out.Assignments)

		avail, err := svc.Available(ctx)
		require.NoError(t, err)
		require.Equal(t, 0, avail.WaitlistLength)
		requireConsistent(t, svc, 2)
	})

	t.Run("leftover freed seats return to the pool", func(t *testing.T) {
		svc := newTestService(t)
		_, err := svc.Initialize(ctx, 3)
		require.NoError(t, err)

		for _, u := range []int{1, 2, 3} {
			_, err = svc.Reserve(ctx, u, 1)
			require.NoError(t, err)
		}

		out, err := svc.ReleaseSeats(ctx, 1, 2)
		require.NoError(t, err)
		require.True(t, out.Released)
		require.Empty(t, out.Assignments)

		avail, err := svc.Available(ctx)
		require.NoError(t, err)
		require.Equal(t, 2, avail.AvailableSeats)
		requireConsistent(t, svc, 3)

		// The lowest freed seat comes back first.
		rOut, err := svc.Reserve(ctx, 9, 1)
		require.NoError(t, err)
		require.Equal(t, 1, rOut.SeatID)
	})

	t.Run("waiter outside the released range gets the freed seat", func(t *testing.T) {
		svc := newTestService(t)
		_, err := svc.Initialize(ctx, 1)
		require.NoError(t, err)

		_, err = svc.Reserve(ctx, 5, 1)
		require.NoError(t, err)
		_, err = svc.Reserve(ctx, 6, 2)
		require.NoError(t, err)
		_, err = svc.Reserve(ctx, 20, 9)
		require.NoError(t, err)

		// Range covers the holder (5) and waiter 6, not waiter 20.
		out, err := svc.ReleaseSeats(ctx, 1, 10)
		require.NoError(t, err)
		require.Equal(t, []Assignment{{UserID: 20, SeatID: 1}}, out.Assignments)

		avail, err := svc.Available(ctx)
		require.NoError(t, err)
		require.Equal(t, 0, avail.WaitlistLength)
	})
}

func TestService_Reservations(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	_, err := svc.Initialize(ctx, 3)
	require.NoError(t, err)

	// Insert users out of seat order: user 30 gets seat 1, 10 gets 2, 20 gets 3.
	for _, u := range []int{30, 10, 20} {
		_, err = svc.Reserve(ctx, u, 1)
		require.NoError(t, err)
	}

	rsvs, err := svc.Reservations(ctx)
	require.NoError(t, err)
	require.Equal(t, []Reservation{
		{SeatID: 1, UserID: 30},
		{SeatID: 2, UserID: 10},
		{SeatID: 3, UserID: 20},
	}, rsvs)
}
