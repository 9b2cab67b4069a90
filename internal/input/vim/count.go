package vim

import "math"

// maxCount caps counts so that multiplication cannot overflow.
const maxCount = math.MaxInt32

// CountState tracks count prefix accumulation during parsing.
type CountState struct {
	// Value is the accumulated count value.
	Value int

	// Active indicates if a count is being accumulated.
	Active bool
}

// Reset clears the count state.
func (c *CountState) Reset() {
	c.Value = 0
	c.Active = false
}

// AccumulateDigit adds a digit to the count. It returns false for a
// non-digit, and for '0' when no count has started (0 is a motion then).
func (c *CountState) AccumulateDigit(r rune) bool {
	if r < '0' || r > '9' {
		return false
	}
	digit := int(r - '0')
	if !c.Active && digit == 0 {
		return false
	}

	c.Active = true
	if c.Value > (maxCount-digit)/10 {
		c.Value = maxCount
		return true
	}
	c.Value = c.Value*10 + digit
	return true
}

// Get returns the effective count (1 if no count was specified).
func (c *CountState) Get() int {
	if c.Value <= 0 {
		return 1
	}
	return c.Value
}

// IsCountStart returns true if the character could start a count.
// '0' cannot start a count (it's a motion to line start).
func IsCountStart(r rune) bool {
	return r >= '1' && r <= '9'
}

// CombineCounts multiplies counts together, treating non-positive values as
// 1 and capping the result. "2d3w" = delete (2*3=6) words.
func CombineCounts(counts ...int) int {
	total := 1
	for _, c := range counts {
		if c <= 0 {
			c = 1
		}
		if total > maxCount/c {
			return maxCount
		}
		total *= c
	}
	return total
}
