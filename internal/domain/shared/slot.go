package shared

// Slot is one equipment or crew position. It holds an index into a static
// table or roster, or Empty.
type Slot int

// Empty marks an unoccupied slot
const Empty Slot = -1

// Occupied returns a slot holding index
func Occupied(index int) Slot {
	return Slot(index)
}

func (s Slot) IsEmpty() bool {
	return s < 0
}

// Index returns the slot content and whether the slot is occupied
func (s Slot) Index() (int, bool) {
	if s < 0 {
		return 0, false
	}
	return int(s), true
}

// Contiguous returns the occupied prefix of slots, stopping at the first
// empty one. Weapon, shield and crew traversal uses this.
func Contiguous(slots []Slot) []int {
	out := make([]int, 0, len(slots))
	for _, s := range slots {
		idx, ok := s.Index()
		if !ok {
			break
		}
		out = append(out, idx)
	}
	return out
}

// Contains reports whether any occupied slot holds index. Empty slots are
// skipped, not treated as terminators.
func Contains(slots []Slot, index int) bool {
	for _, s := range slots {
		if idx, ok := s.Index(); ok && idx == index {
			return true
		}
	}
	return false
}

// FirstEmpty returns the position of the first empty slot among the first
// capacity entries, or -1.
func FirstEmpty(slots []Slot, capacity int) int {
	for i := 0; i < capacity && i < len(slots); i++ {
		if slots[i].IsEmpty() {
			return i
		}
	}
	return -1
}

// CountOccupied returns how many slots hold an index
func CountOccupied(slots []Slot) int {
	n := 0
	for _, s := range slots {
		if !s.IsEmpty() {
			n++
		}
	}
	return n
}
