package registry

import (
	"errors"
	"fmt"

	"github.com/Domenick1991/flightroutes/internal/domain"
)

var (
	ErrAirportNotFound  = errors.New("airport not found")
	ErrDuplicateAirport = errors.New("airport code already registered")
)

// AirportRegistry owns every airport of one dataset. It keeps both a code
// index and the creation order: the order decides where the itinerary search
// starts, so it has to be stable.
type AirportRegistry struct {
	airports []*domain.Airport
	byCode   map[string]*domain.Airport
}

func NewAirportRegistry() *AirportRegistry {
	return &AirportRegistry{byCode: make(map[string]*domain.Airport)}
}

// Register adds a pre-built airport. Codes are unique per registry.
func (r *AirportRegistry) Register(airport *domain.Airport) error {
	if _, ok := r.byCode[airport.Code]; ok {
		return fmt.Errorf("airport %s: %w", airport.Code, ErrDuplicateAirport)
	}
	r.airports = append(r.airports, airport)
	r.byCode[airport.Code] = airport
	return nil
}

// Get returns the airport for code or ErrAirportNotFound.
func (r *AirportRegistry) Get(code string) (*domain.Airport, error) {
	airport, ok := r.byCode[code]
	if !ok {
		return nil, fmt.Errorf("airport %s: %w", code, ErrAirportNotFound)
	}
	return airport, nil
}

// GetOrCreate returns the airport for code, creating and registering an empty
// one if it does not exist yet.
func (r *AirportRegistry) GetOrCreate(code string) *domain.Airport {
	if airport, ok := r.byCode[code]; ok {
		return airport
	}
	airport := domain.NewAirport(code)
	r.airports = append(r.airports, airport)
	r.byCode[code] = airport
	return airport
}

// Airports returns all airports in creation order.
func (r *AirportRegistry) Airports() []*domain.Airport {
	return r.airports
}

func (r *AirportRegistry) Len() int {
	return len(r.airports)
}
