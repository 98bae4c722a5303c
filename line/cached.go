package line

// cachedState tracks the lifecycle of a cache cell.
type cachedState int

const (
	cachedEmpty cachedState = iota
	cachedUnused
	cachedUsed
)

// Cached holds a computed value through a three state lifecycle.
// Empty cells hold nothing. Used cells hold a current value.
// Unused cells retain a stale value whose backing storage the next
// computation may reclaim through TakeUnused.
type Cached[T any] struct {
	state cachedState
	value T
}

// IsUsed reports whether the cell holds a current value.
func (c *Cached[T]) IsUsed() bool {
	return c.state == cachedUsed
}

// IsUnused reports whether the cell holds no current value. Both the
// empty and the stale retained states qualify.
func (c *Cached[T]) IsUnused() bool {
	return c.state != cachedUsed
}

// Get returns the current value when the cell is used.
func (c *Cached[T]) Get() (T, bool) {
	if c.state != cachedUsed {
		var zero T
		return zero, false
	}
	return c.value, true
}

// Set stores a fresh value and marks the cell used.
func (c *Cached[T]) Set(value T) {
	c.state = cachedUsed
	c.value = value
}

// SetUnused demotes a used cell to the stale retained state. An empty
// cell stays empty.
func (c *Cached[T]) SetUnused() {
	if c.state == cachedUsed {
		c.state = cachedUnused
	}
}

// TakeUnused removes and returns the retained stale value so its
// storage can seed the next computation. The cell becomes empty.
func (c *Cached[T]) TakeUnused() (T, bool) {
	if c.state != cachedUnused {
		var zero T
		return zero, false
	}
	value := c.value
	var zero T
	c.value = zero
	c.state = cachedEmpty
	return value, true
}
