package domain

import "time"

// Flight is one scheduled leg between two airports. Flights are built once by
// the loader and never modified afterwards; airports reference them by pointer.
type Flight struct {
	Source      string
	Destination string
	Departure   time.Time
	Arrival     time.Time
	Number      string
	Price       float64
	BagsAllowed int
	BagPrice    float64
}

// Duration returns the in-air time of the leg, excluding ground time.
func (f *Flight) Duration() time.Duration {
	return f.Arrival.Sub(f.Departure)
}

// Segment is the unordered pair of airports spanned by one leg, used to detect
// route repetition inside a single itinerary regardless of direction.
type Segment struct {
	A, B string
}

// NewSegment normalizes endpoint order so that X->Y and Y->X map to the same segment.
func NewSegment(x, y string) Segment {
	if x > y {
		x, y = y, x
	}
	return Segment{A: x, B: y}
}

// SegmentOf returns the segment covered by a flight.
func SegmentOf(f *Flight) Segment {
	return NewSegment(f.Source, f.Destination)
}
