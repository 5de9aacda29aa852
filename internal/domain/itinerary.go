package domain

import "time"

// Stop is one intermediate airport of an itinerary together with the ground
// time spent there between the arriving and departing legs.
type Stop struct {
	Airport  string
	WaitTime time.Duration
}

// Itinerary is an immutable snapshot of a chain of legs. Extending an
// itinerary always produces a new value; existing snapshots on the search
// stack are never touched.
type Itinerary struct {
	Price               float64
	BagsAllowed         int
	BagPrice            float64
	TotalFlightDuration time.Duration
	TotalWaitTime       time.Duration
	FlightsTaken        []*Flight
	SegmentsSeen        map[Segment]struct{}
}

// NewItinerary builds the one-leg snapshot used to seed the search. Seeds are
// internal starting points and are not reported as results themselves.
func NewItinerary(f *Flight) Itinerary {
	return Itinerary{
		Price:               f.Price,
		BagsAllowed:         f.BagsAllowed,
		BagPrice:            f.BagPrice,
		TotalFlightDuration: f.Duration(),
		FlightsTaken:        []*Flight{f},
		SegmentsSeen:        map[Segment]struct{}{SegmentOf(f): {}},
	}
}

// Extend returns a new itinerary with next appended: price and bag price add
// up, the bag allowance drops to the smallest leg, durations accumulate and
// the wait before next counts toward total wait time. The receiver is left
// unchanged.
func (i Itinerary) Extend(next *Flight) Itinerary {
	last := i.LastFlight()

	flights := make([]*Flight, len(i.FlightsTaken), len(i.FlightsTaken)+1)
	copy(flights, i.FlightsTaken)
	flights = append(flights, next)

	seen := make(map[Segment]struct{}, len(i.SegmentsSeen)+1)
	for s := range i.SegmentsSeen {
		seen[s] = struct{}{}
	}
	seen[SegmentOf(next)] = struct{}{}

	bags := i.BagsAllowed
	if next.BagsAllowed < bags {
		bags = next.BagsAllowed
	}

	return Itinerary{
		Price:               i.Price + next.Price,
		BagsAllowed:         bags,
		BagPrice:            i.BagPrice + next.BagPrice,
		TotalFlightDuration: i.TotalFlightDuration + next.Duration(),
		TotalWaitTime:       i.TotalWaitTime + next.Departure.Sub(last.Arrival),
		FlightsTaken:        flights,
		SegmentsSeen:        seen,
	}
}

// HasSegment reports whether the itinerary already covered the given airport pair.
func (i Itinerary) HasSegment(s Segment) bool {
	_, ok := i.SegmentsSeen[s]
	return ok
}

func (i Itinerary) LastFlight() *Flight {
	return i.FlightsTaken[len(i.FlightsTaken)-1]
}

func (i Itinerary) Legs() int {
	return len(i.FlightsTaken)
}

// Source is the departure airport of the first leg.
func (i Itinerary) Source() string {
	return i.FlightsTaken[0].Source
}

// Destination is the arrival airport of the final leg.
func (i Itinerary) Destination() string {
	return i.LastFlight().Destination
}

// Stops lists the intermediate airports with the wait incurred at each, i.e.
// the gap between one leg's arrival and the next leg's departure.
func (i Itinerary) Stops() []Stop {
	stops := make([]Stop, 0, len(i.FlightsTaken)-1)
	for idx := 0; idx < len(i.FlightsTaken)-1; idx++ {
		cur, next := i.FlightsTaken[idx], i.FlightsTaken[idx+1]
		stops = append(stops, Stop{
			Airport:  cur.Destination,
			WaitTime: next.Departure.Sub(cur.Arrival),
		})
	}
	return stops
}

// FlightNumbers returns the leg identifiers in travel order.
func (i Itinerary) FlightNumbers() []string {
	numbers := make([]string, len(i.FlightsTaken))
	for idx, f := range i.FlightsTaken {
		numbers[idx] = f.Number
	}
	return numbers
}
