// Package waitlist implements the queue of users waiting for a seat.
//
// The queue is a binary heap ordered by priority (higher first), with a
// monotonically increasing sequence number breaking ties so that users of
// equal priority are served in arrival order. Removal and re-prioritization
// of an arbitrary user locate the entry with a linear scan and then repair
// the heap in O(log n); at the sizes this system handles that trade-off is
// fine.
package waitlist

// Entry is a single waiting user.
type Entry struct {
	UserID   int
	Priority int

	// seq is assigned at insertion and never changes, even when the
	// priority is re-keyed. Lower seq wins priority ties.
	seq uint64
}

// Queue orders waiting users by (priority desc, sequence asc).
// The zero value is not usable; call New.
type Queue struct {
	entries []Entry
	nextSeq uint64
}

// New returns an empty waitlist queue.
func New() *Queue {
	return &Queue{entries: make([]Entry, 0)}
}

// Insert adds a user with the given priority, assigning the next sequence
// number. The caller ensures the user is not already queued.
func (q *Queue) Insert(userID, priority int) {
	q.entries = append(q.entries, Entry{
		UserID:   userID,
		Priority: priority,
		seq:      q.nextSeq,
	})
	q.nextSeq++
	q.siftUp(len(q.entries) - 1)
}

// ExtractTop removes and returns the entry served next: highest priority,
// earliest arrival among equals. The second return value is false when the
// queue is empty.
func (q *Queue) ExtractTop() (Entry, bool) {
	if len(q.entries) == 0 {
		return Entry{}, false
	}

	top := q.entries[0]
	last := len(q.entries) - 1
	q.entries[0] = q.entries[last]
	q.entries = q.entries[:last]
	if len(q.entries) > 0 {
		q.siftDown(0)
	}

	return top, true
}

// Remove deletes the entry for userID. Absent users are a silent no-op;
// callers that need to report "not found" use Contains first.
func (q *Queue) Remove(userID int) {
	i := q.indexOf(userID)
	if i == -1 {
		return
	}

	last := len(q.entries) - 1
	q.entries[i] = q.entries[last]
	q.entries = q.entries[:last]
	if i < len(q.entries) {
		// The moved entry may violate heap order in either direction;
		// at most one of the two sifts has any effect.
		q.siftUp(i)
		q.siftDown(i)
	}
}

// UpdatePriority re-keys the entry for userID, keeping its original
// sequence number so the user does not jump ahead of earlier arrivals at
// the same new priority. Absent users are a silent no-op.
func (q *Queue) UpdatePriority(userID, newPriority int) {
	i := q.indexOf(userID)
	if i == -1 {
		return
	}

	q.entries[i].Priority = newPriority
	q.siftUp(i)
	q.siftDown(i)
}

// Contains reports whether userID is waiting.
func (q *Queue) Contains(userID int) bool {
	return q.indexOf(userID) != -1
}

// Len returns the number of waiting users.
func (q *Queue) Len() int {
	return len(q.entries)
}

// IsEmpty reports whether no user is waiting.
func (q *Queue) IsEmpty() bool {
	return len(q.entries) == 0
}

func (q *Queue) indexOf(userID int) int {
	for i := range q.entries {
		if q.entries[i].UserID == userID {
			return i
		}
	}
	return -1
}

// hasHigherPriority is the sole comparator used by the heap: higher
// priority first, earlier sequence breaking ties.
func hasHigherPriority(a, b Entry) bool {
	if a.Priority != b.Priority {
		return a.Priority > b.Priority
	}
	return a.seq < b.seq
}

func (q *Queue) siftUp(i int) {
	for i > 0 {
		parent := (i - 1) / 2
		if !hasHigherPriority(q.entries[i], q.entries[parent]) {
			break
		}
		q.entries[i], q.entries[parent] = q.entries[parent], q.entries[i]
		i = parent
	}
}

func (q *Queue) siftDown(i int) {
	n := len(q.entries)
	for {
		highest := i
		left := 2*i + 1
		right := 2*i + 2

		if left < n && hasHigherPriority(q.entries[left], q.entries[highest]) {
			highest = left
		}
		if right < n && hasHigherPriority(q.entries[right], q.entries[highest]) {
			highest = right
		}
		if highest == i {
			return
		}

		q.entries[i], q.entries[highest] = q.entries[highest], q.entries[i]
		i = highest
	}
}
