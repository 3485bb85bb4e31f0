package ages

import (
	"fmt"
	"math"

	"github.com/lmoretti/vaxweek/pkg/core/model"
)

// NoUpperBound marks the open upper end of the last interval.
const NoUpperBound = math.MaxInt

// Interval is a closed-open age interval [Lower, Upper).
type Interval struct {
	Lower int
	Upper int
}

// Contains returns true if the age falls inside the interval.
func (iv Interval) Contains(age int) bool {
	return iv.Lower <= age && age < iv.Upper
}

// Label formats the interval as "[lower,upper)", using "+" when the upper
// bound is unbounded, e.g. "[40,60)" or "[60,+)".
func (iv Interval) Label() string {
	if iv.Upper == NoUpperBound {
		return fmt.Sprintf("[%d,+)", iv.Lower)
	}
	return fmt.Sprintf("[%d,%d)", iv.Lower, iv.Upper)
}

// Partition is an ordered sequence of closed-open intervals covering
// [0, +inf) with no gaps or overlaps: every non-negative age matches
// exactly one interval.
type Partition struct {
	intervals []Interval
}

// NewPartition builds a partition from strictly ascending positive
// breakpoints. N breakpoints produce N+1 intervals: the first starts at 0
// and the last is unbounded above. For example NewPartition(40, 60) yields
// [0,40), [40,60), [60,+).
func NewPartition(breakpoints ...int) (*Partition, error) {
	if len(breakpoints) == 0 {
		return nil, fmt.Errorf("%w: at least one age breakpoint required", model.ErrInvalidConfiguration)
	}

	prev := 0
	for i, b := range breakpoints {
		if b <= prev {
			return nil, fmt.Errorf("%w: breakpoints must be positive and strictly ascending, got %d at position %d",
				model.ErrInvalidConfiguration, b, i)
		}
		prev = b
	}

	intervals := make([]Interval, 0, len(breakpoints)+1)
	lower := 0
	for _, b := range breakpoints {
		intervals = append(intervals, Interval{Lower: lower, Upper: b})
		lower = b
	}
	intervals = append(intervals, Interval{Lower: lower, Upper: NoUpperBound})

	return &Partition{intervals: intervals}, nil
}

// Len returns the number of intervals.
func (p *Partition) Len() int {
	return len(p.intervals)
}

// Intervals returns the intervals in ascending age order.
func (p *Partition) Intervals() []Interval {
	out := make([]Interval, len(p.intervals))
	copy(out, p.intervals)
	return out
}

// OldestFirst returns the intervals from the highest age bracket down to
// [0, ...). This is the iteration order of the allocation engine.
func (p *Partition) OldestFirst() []Interval {
	out := make([]Interval, len(p.intervals))
	for i, iv := range p.intervals {
		out[len(p.intervals)-1-i] = iv
	}
	return out
}

// Labels returns the interval labels in ascending age order.
func (p *Partition) Labels() []string {
	labels := make([]string, len(p.intervals))
	for i, iv := range p.intervals {
		labels[i] = iv.Label()
	}
	return labels
}

// IndexOf returns the index of the unique interval containing the age.
func (p *Partition) IndexOf(age int) (int, error) {
	if age < 0 {
		return 0, fmt.Errorf("%w: age must be non-negative, got %d", model.ErrInvalidArgument, age)
	}
	for i, iv := range p.intervals {
		if iv.Contains(age) {
			return i, nil
		}
	}
	// Unreachable: the last interval is unbounded above.
	return 0, fmt.Errorf("%w: no interval for age %d", model.ErrInvalidArgument, age)
}
