package value

import "time"

// Latest returns the later of a and b. A nil argument counts as earlier than
// any time; the result is nil only when both are nil.
func Latest(a, b *time.Time) *time.Time {
	switch {
	case a == nil:
		return b
	case b == nil:
		return a
	case b.After(*a):
		return b
	default:
		return a
	}
}
