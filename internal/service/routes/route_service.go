package routes

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"

	"github.com/Domenick1991/flightroutes/internal/domain"
	"github.com/Domenick1991/flightroutes/internal/export"
	"github.com/Domenick1991/flightroutes/internal/loader"
	"github.com/Domenick1991/flightroutes/internal/search"
	"github.com/google/uuid"
)

var ErrDatasetNotFound = errors.New("dataset not found")

type RouteUseCase interface {
	LoadDataset(ctx context.Context, r io.Reader, hasHeader bool) (*DatasetSummary, error)
	Itineraries(ctx context.Context, datasetID string) ([]export.ItineraryRecord, error)
	Flights(ctx context.Context, datasetID string) ([]export.FlightRecord, error)
	Airports(ctx context.Context, datasetID string) ([]export.AirportRecord, error)
	Airport(ctx context.Context, datasetID, code string) (*export.AirportRecord, error)
}

type Cache interface {
	GetItineraries(ctx context.Context, datasetID string) ([]export.ItineraryRecord, error)
	SetItineraries(ctx context.Context, datasetID string, records []export.ItineraryRecord) error
}

type DatasetSummary struct {
	ID             string `json:"id"`
	FlightCount    int    `json:"flight_count"`
	AirportCount   int    `json:"airport_count"`
	ItineraryCount int    `json:"itinerary_count"`
}

type dataset struct {
	data        *loader.Dataset
	itineraries []domain.Itinerary
}

// RouteService loads flight datasets and serves their computed itineraries.
// Each dataset is immutable once loaded; the map only guards concurrent HTTP
// access, the search itself stays single-threaded.
type RouteService struct {
	engine *search.Engine
	cache  Cache

	mu       sync.RWMutex
	datasets map[string]*dataset
}

func NewRouteService(engine *search.Engine, cache Cache) *RouteService {
	return &RouteService{
		engine:   engine,
		cache:    cache,
		datasets: make(map[string]*dataset),
	}
}

// LoadDataset parses CSV legs from r, builds the graph and computes every
// itinerary up front. Any malformed row aborts the load and nothing is stored.
func (s *RouteService) LoadDataset(ctx context.Context, r io.Reader, hasHeader bool) (*DatasetSummary, error) {
	data, err := loader.Load(r, hasHeader)
	if err != nil {
		return nil, fmt.Errorf("load dataset: %w", err)
	}

	itineraries := s.engine.ComputeItineraries(data.Airports)

	id := uuid.NewString()
	s.mu.Lock()
	s.datasets[id] = &dataset{data: data, itineraries: itineraries}
	s.mu.Unlock()

	return &DatasetSummary{
		ID:             id,
		FlightCount:    data.Flights.Len(),
		AirportCount:   data.Airports.Len(),
		ItineraryCount: len(itineraries),
	}, nil
}

func (s *RouteService) Itineraries(ctx context.Context, datasetID string) ([]export.ItineraryRecord, error) {
	if s.cache != nil {
		if cached, err := s.cache.GetItineraries(ctx, datasetID); err == nil && cached != nil {
			return cached, nil
		}
	}

	ds, err := s.dataset(datasetID)
	if err != nil {
		return nil, err
	}

	records := export.ItineraryRecords(ds.itineraries)
	if s.cache != nil {
		_ = s.cache.SetItineraries(ctx, datasetID, records)
	}
	return records, nil
}

func (s *RouteService) Flights(ctx context.Context, datasetID string) ([]export.FlightRecord, error) {
	ds, err := s.dataset(datasetID)
	if err != nil {
		return nil, err
	}
	return export.FlightRecords(ds.data.Flights.Flights()), nil
}

func (s *RouteService) Airports(ctx context.Context, datasetID string) ([]export.AirportRecord, error) {
	ds, err := s.dataset(datasetID)
	if err != nil {
		return nil, err
	}
	return export.AirportRecords(ds.data.Airports.Airports()), nil
}

func (s *RouteService) Airport(ctx context.Context, datasetID, code string) (*export.AirportRecord, error) {
	ds, err := s.dataset(datasetID)
	if err != nil {
		return nil, err
	}

	airport, err := ds.data.Airports.Get(code)
	if err != nil {
		return nil, err
	}

	record := export.NewAirportRecord(airport)
	return &record, nil
}

func (s *RouteService) dataset(id string) (*dataset, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ds, ok := s.datasets[id]
	if !ok {
		return nil, fmt.Errorf("dataset %s: %w", id, ErrDatasetNotFound)
	}
	return ds, nil
}

var _ RouteUseCase = (*RouteService)(nil)
