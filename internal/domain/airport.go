package domain

import "fmt"

// Airport is a graph node: a unique code plus the flights touching it, split
// into departures and arrivals. Both lists keep insertion order, which later
// fixes the traversal order of the itinerary search.
type Airport struct {
	Code       string
	Departures []*Flight
	Arrivals   []*Flight
}

func NewAirport(code string) *Airport {
	return &Airport{Code: code}
}

// RegisterFlight files the flight under departures or arrivals depending on
// which endpoint matches this airport. A self-loop flight is rejected outright,
// and a flight touching neither endpoint is a caller error.
func (a *Airport) RegisterFlight(f *Flight) error {
	if f.Source == f.Destination {
		return fmt.Errorf("flight %s: %w", f.Number, ErrSelfLoop)
	}

	switch a.Code {
	case f.Source:
		a.Departures = append(a.Departures, f)
	case f.Destination:
		a.Arrivals = append(a.Arrivals, f)
	default:
		return fmt.Errorf("flight %s on airport %s: %w", f.Number, a.Code, ErrUnrelatedFlight)
	}
	return nil
}
