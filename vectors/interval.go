package vectors

// Interval is a closed interval [Lo, Hi] over the reals.
type Interval struct {
	Lo, Hi float64
}

// NewInterval builds the interval spanning a and b. The arguments may come in
// either order; the result always satisfies Lo <= Hi.
func NewInterval(a, b float64) Interval {
	if a > b {
		a, b = b, a
	}
	return Interval{Lo: a, Hi: b}
}

// Intersect returns the overlap of i and o. The second return value is false
// when the intervals do not overlap.
func (i Interval) Intersect(o Interval) (Interval, bool) {
	lo, hi := i.Lo, i.Hi
	if o.Lo > lo {
		lo = o.Lo
	}
	if o.Hi < hi {
		hi = o.Hi
	}
	if lo > hi {
		return Interval{}, false
	}
	return Interval{Lo: lo, Hi: hi}, true
}

// Contains reports whether x lies in [Lo, Hi].
func (i Interval) Contains(x float64) bool {
	return x >= i.Lo && x <= i.Hi
}
