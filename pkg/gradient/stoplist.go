// Package gradient maintains position-keyed color stops and interpolates
// between them.
// This file implements the sorted stop container and its search and
// mutation algorithms.
package gradient

import "slices"

// Stop anchors a color at a position along the gradient axis.
type Stop struct {
	Position float64 // normalized coordinate in [0, 1]
	Color    Color
}

// StopList is an ordered set of stops, sorted ascending by position,
// with at most one stop per position. Every operation preserves that
// invariant; failing operations leave the list untouched. The zero
// value is an empty list ready to use.
//
// A StopList is not safe for concurrent use.
type StopList struct {
	stops []Stop
}

// Len returns the number of stops.
func (l *StopList) Len() int {
	return len(l.stops)
}

// Get returns the stop at the given zero-based structural index, which
// must be in [0, Len()-1]; out-of-bounds indices panic. Use Index or
// IndexPair to obtain valid indices.
func (l *StopList) Get(index int) Stop {
	return l.stops[index]
}

// Stops returns a copy of the stops in ascending position order.
// Mutating the returned slice does not affect the list.
func (l *StopList) Stops() []Stop {
	result := make([]Stop, len(l.stops))
	copy(result, l.stops)
	return result
}

// Add inserts a new stop at the given position, keeping the list
// sorted. It fails if position is outside [0, 1] or a stop already
// exists exactly at position. The color's channels are copied in; the
// caller's value is not referenced afterwards.
func (l *StopList) Add(position float64, c Color) error {
	if !inRange(position) {
		return errOutOfRange(position)
	}
	if len(l.stops) == 0 {
		l.stops = append(l.stops, Stop{Position: position, Color: c})
		return nil
	}
	lower, upper := l.IndexPair(position)
	if lower == upper {
		return errOccupied(position)
	}
	at := upper
	if at < 0 {
		// Above every existing stop: append.
		at = len(l.stops)
	}
	l.stops = slices.Insert(l.stops, at, Stop{Position: position, Color: c})
	return nil
}

// Replace overwrites the color of the stop exactly at position, leaving
// its position and the list order unchanged. It fails if position is
// outside [0, 1] or no stop exists there.
func (l *StopList) Replace(position float64, c Color) error {
	if !inRange(position) {
		return errOutOfRange(position)
	}
	i := l.Index(position)
	if i < 0 {
		return errNoStop(position)
	}
	l.stops[i].Color = c
	return nil
}

// Move relocates the stop at position to the target position to. It
// fails if either position is outside [0, 1], if no stop exists at
// position, or if a stop already exists at to; in every failure case
// the list is left exactly as it was before the call.
func (l *StopList) Move(position, to float64) error {
	if !inRange(position) {
		return errOutOfRange(position)
	}
	i := l.Index(position)
	if i < 0 {
		return errNoStop(position)
	}
	if !inRange(to) {
		return errOutOfRange(to)
	}
	moved := l.stops[i]
	l.stops = slices.Delete(l.stops, i, i+1)
	if err := l.Add(to, moved.Color); err != nil {
		// Target occupied: restore the stop at its original index.
		l.stops = slices.Insert(l.stops, i, moved)
		return err
	}
	return nil
}

// Remove deletes the stop exactly at position. It fails if position is
// outside [0, 1] or no stop exists there.
func (l *StopList) Remove(position float64) error {
	if !inRange(position) {
		return errOutOfRange(position)
	}
	i := l.Index(position)
	if i < 0 {
		return errNoStop(position)
	}
	l.stops = slices.Delete(l.stops, i, i+1)
	return nil
}

// Index returns the structural index of the stop whose position exactly
// equals position, or -1 if position is outside [0, 1], the list is
// empty, or no stop matches exactly. O(log n).
func (l *StopList) Index(position float64) int {
	if len(l.stops) == 0 || !inRange(position) {
		return -1
	}
	lower, upper := l.IndexPair(position)
	if lower == upper {
		return lower
	}
	return -1
}

// IndexPair returns the structural indices of the stops bracketing
// position, -1 standing for "no stop on that side":
//
//   - empty list: (-1, -1)
//   - position < 0: (-1, 0)
//   - position > 1: (Len()-1, -1)
//   - exactly on a stop: that index twice
//   - below the first stop: (-1, 0)
//   - above the last stop: (Len()-1, -1)
//   - between two stops: the indices immediately below and above
//
// The in-range cases run a single binary search over the sorted backing
// sequence, O(log n).
func (l *StopList) IndexPair(position float64) (lower, upper int) {
	if len(l.stops) == 0 {
		return -1, -1
	}
	if position < 0 {
		return -1, 0
	}
	if position > 1 {
		return len(l.stops) - 1, -1
	}

	lo, hi := 0, len(l.stops)-1
	for lo <= hi {
		mid := int(uint(lo+hi) >> 1)
		switch p := l.stops[mid].Position; {
		case position == p:
			return mid, mid
		case position < p:
			hi = mid - 1
		default:
			lo = mid + 1
		}
	}

	// No exact hit: the search collapsed with lo as the first index
	// above position and lo-1 as the last index below it.
	lower, upper = lo-1, lo
	if upper == len(l.stops) {
		upper = -1
	}
	return lower, upper
}

// inRange reports whether p is a valid stop position. Written so that
// NaN is rejected along with out-of-range values.
func inRange(p float64) bool {
	return p >= 0 && p <= 1
}
