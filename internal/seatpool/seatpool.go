// Package seatpool manages the pool of unassigned seats as a binary
// min-heap keyed by seat number, so the lowest-numbered free seat is
// always handed out first.
package seatpool

// Pool holds the free seat numbers. The zero value is not usable; call New.
type Pool struct {
	seats []int
}

// New returns an empty seat pool.
func New() *Pool {
	return &Pool{seats: make([]int, 0)}
}

// Insert returns a seat to the pool in O(log n).
func (p *Pool) Insert(seatID int) {
	p.seats = append(p.seats, seatID)
	p.siftUp(len(p.seats) - 1)
}

// ExtractMin removes and returns the lowest-numbered free seat.
// The second return value is false when the pool is empty.
func (p *Pool) ExtractMin() (int, bool) {
	if len(p.seats) == 0 {
		return 0, false
	}

	min := p.seats[0]
	last := len(p.seats) - 1
	p.seats[0] = p.seats[last]
	p.seats = p.seats[:last]
	if len(p.seats) > 0 {
		p.siftDown(0)
	}

	return min, true
}

// Len returns the number of free seats.
func (p *Pool) Len() int {
	return len(p.seats)
}

// IsEmpty reports whether any seat is free.
func (p *Pool) IsEmpty() bool {
	return len(p.seats) == 0
}

func (p *Pool) siftUp(i int) {
	for i > 0 {
		parent := (i - 1) / 2
		if p.seats[i] >= p.seats[parent] {
			break
		}
		p.seats[i], p.seats[parent] = p.seats[parent], p.seats[i]
		i = parent
	}
}

func (p *Pool) siftDown(i int) {
	n := len(p.seats)
	for {
		smallest := i
		left := 2*i + 1
		right := 2*i + 2

		if left < n && p.seats[left] < p.seats[smallest] {
			smallest = left
		}
		if right < n && p.seats[right] < p.seats[smallest] {
			smallest = right
		}
		if smallest == i {
			return
		}

		p.seats[i], p.seats[smallest] = p.seats[smallest], p.seats[i]
		i = smallest
	}
}
