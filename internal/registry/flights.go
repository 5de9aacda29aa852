package registry

import (
	"errors"
	"fmt"

	"github.com/Domenick1991/flightroutes/internal/domain"
)

var (
	ErrFlightNotFound  = errors.New("flight not found")
	ErrDuplicateFlight = errors.New("flight number already registered")
)

// FlightRegistry owns every flight of one dataset, indexed by flight number
// and kept in input order.
type FlightRegistry struct {
	flights  []*domain.Flight
	byNumber map[string]*domain.Flight
}

func NewFlightRegistry() *FlightRegistry {
	return &FlightRegistry{byNumber: make(map[string]*domain.Flight)}
}

// Register adds a flight. Flight numbers are unique per registry.
func (r *FlightRegistry) Register(flight *domain.Flight) error {
	if _, ok := r.byNumber[flight.Number]; ok {
		return fmt.Errorf("flight %s: %w", flight.Number, ErrDuplicateFlight)
	}
	r.flights = append(r.flights, flight)
	r.byNumber[flight.Number] = flight
	return nil
}

// Get returns the flight with the given number or ErrFlightNotFound.
func (r *FlightRegistry) Get(number string) (*domain.Flight, error) {
	flight, ok := r.byNumber[number]
	if !ok {
		return nil, fmt.Errorf("flight %s: %w", number, ErrFlightNotFound)
	}
	return flight, nil
}

// Flights returns all flights in input order.
func (r *FlightRegistry) Flights() []*domain.Flight {
	return r.flights
}

func (r *FlightRegistry) Len() int {
	return len(r.flights)
}
