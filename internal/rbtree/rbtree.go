// Package rbtree implements the reservation index: an ordered map from
// user ID to seat ID backed by a red-black tree, giving O(log n) search,
// insert and delete plus an in-order traversal sorted by user ID.
package rbtree

// Entry is one reservation held in the tree.
type Entry struct {
	UserID int
	SeatID int
}

type node struct {
	userID int
	seatID int
	red    bool
	left   *node
	right  *node
	parent *node
}

// Tree maps user IDs to seat IDs. The zero value is not usable; call New.
type Tree struct {
	root *node
	size int
}

// New returns an empty reservation index.
func New() *Tree {
	return &Tree{}
}

// Insert adds a reservation for userID. The caller ensures userID is not
// already present; the orchestrator guarantees a user holds at most one
// reservation.
func (t *Tree) Insert(userID, seatID int) {
	n := &node{userID: userID, seatID: seatID, red: true}
	t.size++

	if t.root == nil {
		n.red = false
		t.root = n
		return
	}

	current := t.root
	var parent *node
	for current != nil {
		parent = current
		if userID < current.userID {
			current = current.left
		} else {
			current = current.right
		}
	}

	n.parent = parent
	if userID < parent.userID {
		parent.left = n
	} else {
		parent.right = n
	}

	t.fixInsert(n)
}

// Search returns the seat reserved by userID. The second return value is
// false when the user holds no reservation.
func (t *Tree) Search(userID int) (int, bool) {
	current := t.root
	for current != nil {
		if userID == current.userID {
			return current.seatID, true
		}
		if userID < current.userID {
			current = current.left
		} else {
			current = current.right
		}
	}
	return 0, false
}

// Delete removes the reservation for userID, reporting whether an entry
// was removed.
func (t *Tree) Delete(userID int) bool {
	z := t.find(userID)
	if z == nil {
		return false
	}
	t.delete(z)
	t.size--
	return true
}

// Entries returns all reservations in user-ID order.
func (t *Tree) Entries() []Entry {
	entries := make([]Entry, 0, t.size)
	var walk func(n *node)
	walk = func(n *node) {
		if n == nil {
			return
		}
		walk(n.left)
		entries = append(entries, Entry{UserID: n.userID, SeatID: n.seatID})
		walk(n.right)
	}
	walk(t.root)
	return entries
}

// Len returns the number of reservations.
func (t *Tree) Len() int {
	return t.size
}

func (t *Tree) find(userID int) *node {
	current := t.root
	for current != nil {
		if userID == current.userID {
			return current
		}
		if userID < current.userID {
			current = current.left
		} else {
			current = current.right
		}
	}
	return nil
}

func (t *Tree) leftRotate(x *node) {
	y := x.right
	x.right = y.left
	if y.left != nil {
		y.left.parent = x
	}
	y.parent = x.parent
	if x.parent == nil {
		t.root = y
	} else if x == x.parent.left {
		x.parent.left = y
	} else {
		x.parent.right = y
	}
	y.left = x
	x.parent = y
}

func (t *Tree) rightRotate(y *node) {
	x := y.left
	y.left = x.right
	if x.right != nil {
		x.right.parent = y
	}
	x.parent = y.parent
	if y.parent == nil {
		t.root = x
	} else if y == y.parent.right {
		y.parent.right = x
	} else {
		y.parent.left = x
	}
	x.right = y
	y.parent = x
}

// fixInsert restores the red-black invariants after inserting n as a red
// leaf: a red uncle is recolored and the violation moves up, a black uncle
// is resolved with one or two rotations and a recolor.
func (t *Tree) fixInsert(n *node) {
	for n != t.root && n.red && n.parent.red {
		parent := n.parent
		grandparent := parent.parent

		if parent == grandparent.left {
			uncle := grandparent.right
			if uncle != nil && uncle.red {
				grandparent.red = true
				parent.red = false
				uncle.red = false
				n = grandparent
			} else {
				if n == parent.right {
					t.leftRotate(parent)
					n = parent
					parent = n.parent
				}
				t.rightRotate(grandparent)
				parent.red, grandparent.red = grandparent.red, parent.red
				n = parent
			}
		} else {
			uncle := grandparent.left
			if uncle != nil && uncle.red {
				grandparent.red = true
				parent.red = false
				uncle.red = false
				n = grandparent
			} else {
				if n == parent.left {
					t.rightRotate(parent)
					n = parent
					parent = n.parent
				}
				t.leftRotate(grandparent)
				parent.red, grandparent.red = grandparent.red, parent.red
				n = parent
			}
		}
	}
	t.root.red = false
}

// transplant replaces the subtree rooted at u with the one rooted at v.
func (t *Tree) transplant(u, v *node) {
	if u.parent == nil {
		t.root = v
	} else if u == u.parent.left {
		u.parent.left = v
	} else {
		u.parent.right = v
	}
	if v != nil {
		v.parent = u.parent
	}
}

// successor returns the leftmost node of z's right subtree.
func successor(z *node) *node {
	s := z.right
	for s.left != nil {
		s = s.left
	}
	return s
}

func (t *Tree) delete(z *node) {
	var x, parent *node
	wasRed := z.red

	switch {
	case z.left == nil:
		x = z.right
		parent = z.parent
		t.transplant(z, z.right)
	case z.right == nil:
		x = z.left
		parent = z.parent
		t.transplant(z, z.left)
	default:
		// Two children: splice in the in-order successor and run the
		// fix-up from the point of physical removal.
		y := successor(z)
		wasRed = y.red
		x = y.right

		if y.parent == z {
			parent = y
		} else {
			parent = y.parent
			t.transplant(y, y.right)
			y.right = z.right
			if y.right != nil {
				y.right.parent = y
			}
		}

		t.transplant(z, y)
		y.left = z.left
		y.left.parent = y
		y.red = z.red
	}

	// Removing a black node shortens a black path; repair it.
	if !wasRed {
		t.fixDelete(x, parent)
	}
}

func isRed(n *node) bool {
	return n != nil && n.red
}

// fixDelete rebalances after the physical removal of a black node. x is
// the node occupying the removed position (possibly nil), parent its
// parent. The canonical sibling case analysis: a red sibling rotates into
// a black one; a black sibling with black children recolors and moves the
// deficit up; a black sibling with a red child rotates and terminates.
func (t *Tree) fixDelete(x, parent *node) {
	for x != t.root && !isRed(x) {
		if parent == nil {
			break
		}
		if x == parent.left {
			w := parent.right
			if isRed(w) {
				w.red = false
				parent.red = true
				t.leftRotate(parent)
				w = parent.right
			}

			if !isRed(w.left) && !isRed(w.right) {
				w.red = true
				x = parent
				parent = x.parent
			} else {
				if !isRed(w.right) {
					if w.left != nil {
						w.left.red = false
					}
					w.red = true
					t.rightRotate(w)
					w = parent.right
				}
				w.red = parent.red
				parent.red = false
				if w.right != nil {
					w.right.red = false
				}
				t.leftRotate(parent)
				x = t.root
				parent = nil
			}
		} else {
			w := parent.left
			if isRed(w) {
				w.red = false
				parent.red = true
				t.rightRotate(parent)
				w = parent.left
			}

			if !isRed(w.right) && !isRed(w.left) {
				w.red = true
				x = parent
				parent = x.parent
			} else {
				if !isRed(w.left) {
					if w.right != nil {
						w.right.red = false
					}
					w.red = true
					t.leftRotate(w)
					w = parent.left
				}
				w.red = parent.red
				parent.red = false
				if w.left != nil {
					w.left.red = false
				}
				t.rightRotate(parent)
				x = t.root
				parent = nil
			}
		}
	}
	if x != nil {
		x.red = false
	}
}
