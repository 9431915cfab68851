package hashing

// PositionCounter counts how often each position key was seen.
type PositionCounter struct {
	counts map[uint64]int
}

// NewPositionCounter creates an empty counter.
func NewPositionCounter() *PositionCounter {
	return &PositionCounter{counts: make(map[uint64]int)}
}

// Add records one occurrence of key and returns how often it has now been
// seen.
func (c *PositionCounter) Add(key uint64) int {
	c.counts[key]++
	return c.counts[key]
}

// Count returns how often key has been seen.
func (c *PositionCounter) Count(key uint64) int {
	return c.counts[key]
}
