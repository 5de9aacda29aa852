// Package search enumerates every valid multi-leg itinerary over a loaded
// flight graph. The walk is an explicit LIFO work stack rather than recursion,
// so itinerary length never runs into call-depth limits.
package search

import (
	"time"

	"github.com/Domenick1991/flightroutes/internal/domain"
	"github.com/Domenick1991/flightroutes/internal/registry"
)

// Reference bounds for the ground time between two connecting legs: long
// enough to deplane and make the connection, short enough to still count as
// one itinerary rather than an overnight layover.
const (
	DefaultMinWait = time.Hour
	DefaultMaxWait = 4 * time.Hour
)

// Option tweaks engine limits.
type Option func(*Engine)

// WithMaxLegs caps itinerary length; 0 means unlimited.
func WithMaxLegs(n int) Option {
	return func(e *Engine) { e.maxLegs = n }
}

// WithMaxResults caps the total number of emitted itineraries; 0 means unlimited.
func WithMaxResults(n int) Option {
	return func(e *Engine) { e.maxResults = n }
}

// Engine drives the itinerary enumeration. It is stateless between runs and
// has no fallible operation: a well-formed graph cannot make it fail.
type Engine struct {
	minWait    time.Duration
	maxWait    time.Duration
	maxLegs    int
	maxResults int
}

func NewEngine(minWait, maxWait time.Duration, opts ...Option) *Engine {
	e := &Engine{minWait: minWait, maxWait: maxWait}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// ComputeItineraries walks the graph and returns every itinerary of two or
// more legs whose connections fit the wait window and never reuse an airport
// pair. One-leg seeds are starting points only and are not reported. The
// result order is fully determined by airport creation order and departure
// insertion order, so identical input yields an identical result list.
func (e *Engine) ComputeItineraries(airports *registry.AirportRegistry) []domain.Itinerary {
	stack := e.seedStack(airports)

	var itineraries []domain.Itinerary
	for len(stack) > 0 {
		item := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		last := item.LastFlight()
		hub, err := airports.Get(last.Destination)
		if err != nil {
			// Cannot happen on a loader-built graph: both endpoints of every
			// flight are registered.
			continue
		}

		for _, next := range hub.Departures {
			if !e.insideWaitWindow(last, next) {
				continue
			}
			if item.HasSegment(domain.SegmentOf(next)) {
				continue
			}
			if e.maxLegs > 0 && item.Legs() >= e.maxLegs {
				continue
			}

			extended := item.Extend(next)
			itineraries = append(itineraries, extended)
			if e.maxResults > 0 && len(itineraries) >= e.maxResults {
				return itineraries
			}
			stack = append(stack, extended)
		}
	}

	return itineraries
}

// seedStack builds the initial frontier: one single-leg itinerary per
// departure, following airport creation order and departure insertion order.
func (e *Engine) seedStack(airports *registry.AirportRegistry) []domain.Itinerary {
	var stack []domain.Itinerary
	for _, airport := range airports.Airports() {
		for _, departure := range airport.Departures {
			stack = append(stack, domain.NewItinerary(departure))
		}
	}
	return stack
}

// insideWaitWindow checks the connection gap between the arrival of prev and
// the departure of next. Zero or negative gaps are never feasible.
func (e *Engine) insideWaitWindow(prev, next *domain.Flight) bool {
	wait := next.Departure.Sub(prev.Arrival)
	return e.minWait <= wait && wait <= e.maxWait
}
