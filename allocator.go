package emojigen

// Allocator hands out fresh codepoints from the private-use range in
// ascending order, skipping every value already present in an imported
// mapping. Each codepoint is returned at most once; the pool is never
// refilled.
//
// The allocator is plain state with a single mutation point ([Allocator.Next]),
// so codepoint assignment is deterministic for a deterministic input order.
// It is not safe for concurrent use.
type Allocator struct {
	next     Codepoint
	max      Codepoint
	reserved map[Codepoint]bool
}

// NewAllocator returns an allocator over [PrivateUseMin, PrivateUseMax] with
// the values of imported reserved. Reservations outside the range are
// harmless; they can never be produced anyway.
func NewAllocator(imported Mapping) *Allocator {
	reserved := make(map[Codepoint]bool, len(imported))
	for _, cp := range imported {
		reserved[cp] = true
	}
	return &Allocator{
		next:     PrivateUseMin,
		max:      PrivateUseMax,
		reserved: reserved,
	}
}

// Next returns the lowest unreserved codepoint not yet handed out and
// advances the cursor past it. It returns [ErrExhausted] once the range is
// drained; every later call fails the same way.
func (a *Allocator) Next() (Codepoint, error) {
	for ; a.next <= a.max; a.next++ {
		if a.reserved[a.next] {
			continue
		}
		cp := a.next
		a.next++
		return cp, nil
	}
	return 0, ErrExhausted
}
