package logic

// MoveDown advances index by one unless it is already at the last entry.
// It never wraps; with an empty list the index is returned unchanged.
func MoveDown(index, length int) int {
	if index < length-1 {
		return index + 1
	}
	return index
}

// MoveUp moves index back by one while it is above zero.
// Both 0 and -1 are returned unchanged.
func MoveUp(index int) int {
	if index > 0 {
		return index - 1
	}
	return index
}

// InRange reports whether index addresses an entry of a list of length
func InRange(index, length int) bool {
	return index >= 0 && index < length
}

// Viewport keeps a highlighted row visible inside a fixed-height window
type Viewport struct {
	offset int
	height int
}

// NewViewport creates a viewport showing height rows
func NewViewport(height int) *Viewport {
	if height < 1 {
		height = 1
	}
	return &Viewport{height: height}
}

// SetHeight changes the number of visible rows
func (v *Viewport) SetHeight(height int) {
	if height < 1 {
		height = 1
	}
	v.height = height
}

// Height returns the number of visible rows
func (v *Viewport) Height() int {
	return v.height
}

// Offset returns the index of the first visible row
func (v *Viewport) Offset() int {
	return v.offset
}

// Follow scrolls so that highlighted is visible and the window never runs
// past the end of a list of total rows. A highlighted value of -1 only
// clamps the offset.
func (v *Viewport) Follow(highlighted, total int) (start, end int) {
	if highlighted >= 0 {
		if highlighted < v.offset {
			v.offset = highlighted
		}
		if highlighted >= v.offset+v.height {
			v.offset = highlighted - v.height + 1
		}
	}

	maxOffset := total - v.height
	if maxOffset < 0 {
		maxOffset = 0
	}
	if v.offset > maxOffset {
		v.offset = maxOffset
	}
	if v.offset < 0 {
		v.offset = 0
	}

	end = v.offset + v.height
	if end > total {
		end = total
	}
	return v.offset, end
}
