package build

// ToolSwap remembers the slot the player held before build mode switched to
// a better tool. At most one revert is pending at a time.
type ToolSwap struct {
	original int
	pending  bool
}

// Pending reports whether a revert is outstanding.
func (t *ToolSwap) Pending() bool {
	return t.pending
}

// Original returns the slot a revert would restore.
func (t *ToolSwap) Original() (int, bool) {
	return t.original, t.pending
}

// SwapTo selects slot, remembering the current slot unless a revert is
// already pending.
func (t *ToolSwap) SwapTo(p Player, slot int) {
	if slot == p.SelectedSlot() {
		return
	}
	if !t.pending {
		t.original, t.pending = p.SelectedSlot(), true
	}
	p.SelectSlot(slot)
}

// Revert restores the remembered slot. Reverting without a pending swap is a
// no-op. Returns whether anything changed.
func (t *ToolSwap) Revert(p Player) bool {
	if !t.pending {
		return false
	}
	t.pending = false
	if p.SelectedSlot() == t.original {
		return false
	}
	p.SelectSlot(t.original)
	return true
}

// BestAxe returns the inventory slot holding the highest axe power.
func BestAxe(inv []Item) (int, bool) {
	best, power := -1, 0
	for i, it := range inv {
		if !it.Empty() && it.AxePower > power {
			best, power = i, it.AxePower
		}
	}
	return best, best >= 0
}
