package logic

// Navigator tracks a cursor over a list of count items rendered in a
// window of viewportHeight rows
type Navigator struct {
	selectedIndex  int
	viewportOffset int
	viewportHeight int
	count          int
}

// NewNavigator creates a navigator showing viewportHeight rows at a time
func NewNavigator(viewportHeight int) *Navigator {
	if viewportHeight < 1 {
		viewportHeight = 1
	}
	return &Navigator{viewportHeight: viewportHeight}
}

// SetCount updates the number of items, clamping the cursor
func (n *Navigator) SetCount(count int) {
	if count < 0 {
		count = 0
	}
	n.count = count
	n.SetSelectedIndex(n.selectedIndex)
}

// Count returns the number of items
func (n *Navigator) Count() int {
	return n.count
}

// SetViewportHeight changes the window size
func (n *Navigator) SetViewportHeight(height int) {
	if height < 1 {
		height = 1
	}
	n.viewportHeight = height
	n.ensureSelectedVisible()
}

// SelectedIndex returns the cursor position; -1 when there are no items
func (n *Navigator) SelectedIndex() int {
	if n.count == 0 {
		return -1
	}
	return n.selectedIndex
}

// ViewportOffset returns the index of the first visible item
func (n *Navigator) ViewportOffset() int {
	return n.viewportOffset
}

// ViewportHeight returns the window size
func (n *Navigator) ViewportHeight() int {
	return n.viewportHeight
}

// SetSelectedIndex moves the cursor to index, clamped to the list
func (n *Navigator) SetSelectedIndex(index int) {
	if index >= n.count {
		index = n.count - 1
	}
	if index < 0 {
		index = 0
	}
	n.selectedIndex = index
	n.ensureSelectedVisible()
}

// MoveUp moves the cursor one item up
func (n *Navigator) MoveUp() {
	n.SetSelectedIndex(n.selectedIndex - 1)
}

// MoveDown moves the cursor one item down
func (n *Navigator) MoveDown() {
	n.SetSelectedIndex(n.selectedIndex + 1)
}

// Reset moves the cursor back to the first item
func (n *Navigator) Reset() {
	n.selectedIndex = 0
	n.viewportOffset = 0
}

// VisibleRange returns the half-open range of visible item indexes
func (n *Navigator) VisibleRange() (int, int) {
	end := n.viewportOffset + n.viewportHeight
	if end > n.count {
		end = n.count
	}
	return n.viewportOffset, end
}

// ensureSelectedVisible adjusts the viewport to keep the selected item visible
func (n *Navigator) ensureSelectedVisible() {
	if n.selectedIndex < n.viewportOffset {
		n.viewportOffset = n.selectedIndex
	} else if n.selectedIndex >= n.viewportOffset+n.viewportHeight {
		n.viewportOffset = n.selectedIndex - n.viewportHeight + 1
	}

	maxOffset := n.count - n.viewportHeight
	if maxOffset < 0 {
		maxOffset = 0
	}
	if n.viewportOffset > maxOffset {
		n.viewportOffset = maxOffset
	}
	if n.viewportOffset < 0 {
		n.viewportOffset = 0
	}
}
