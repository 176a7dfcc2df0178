package domain

// Intent is the requested quantity change for one (product, color) pair.
// It is either Absolute (set to N) or Delta (a function of the current
// quantity, 0 when the pair is absent). The set of variants is closed.
type Intent interface {
	resolve(current int) int
}

// Absolute sets the quantity to a fixed value. Zero or less removes the line.
type Absolute int

func (a Absolute) resolve(int) int { return int(a) }

// Delta computes the new quantity from the current one.
type Delta func(current int) int

func (d Delta) resolve(current int) int {
	if d == nil {
		return current
	}
	return d(current)
}

// Add returns a Delta that increases the current quantity by n.
func Add(n int) Intent {
	return Delta(func(current int) int { return current + n })
}

// AddUpTo returns a Delta that increases the current quantity by n without
// going above limit. A current quantity already above limit is left as is.
func AddUpTo(n, limit int) Intent {
	return Delta(func(current int) int {
		if current >= limit {
			return current
		}
		return min(current+n, limit)
	})
}

// Resolve applies intent to current. A nil intent keeps the current quantity.
func Resolve(intent Intent, current int) int {
	if intent == nil {
		return current
	}
	return intent.resolve(current)
}
