package loader

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/Domenick1991/flightroutes/internal/domain"
	"github.com/Domenick1991/flightroutes/internal/registry"
)

// Input column layout:
// source,destination,departure,arrival,flight_number,price,bags_allowed,bag_price
const (
	idxSource = iota
	idxDestination
	idxDeparture
	idxArrival
	idxFlightNumber
	idxPrice
	idxBagsAllowed
	idxBagPrice
	fieldCount
)

// TimeLayout is the timestamp format used by flight CSV files.
const TimeLayout = "2006-01-02T15:04:05"

var (
	ErrDepartureNotBeforeArrival = errors.New("departure is not before arrival")
	ErrNegativeValue             = errors.New("negative value")
)

// Dataset is the in-memory graph built from one CSV input: both registries,
// read-only once loading finished.
type Dataset struct {
	Airports *registry.AirportRegistry
	Flights  *registry.FlightRegistry
}

// Load parses flight legs from r and builds the dataset. Any malformed row or
// integrity violation (duplicate flight number, self-loop) aborts the whole
// load; no partial dataset is ever returned.
func Load(r io.Reader, hasHeader bool) (*Dataset, error) {
	dataset := &Dataset{
		Airports: registry.NewAirportRegistry(),
		Flights:  registry.NewFlightRegistry(),
	}

	reader := csv.NewReader(r)
	reader.FieldsPerRecord = fieldCount

	line := 0
	if hasHeader {
		line++
		if _, err := reader.Read(); err != nil {
			if err == io.EOF {
				return dataset, nil
			}
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
	}

	for {
		record, err := reader.Read()
		if err == io.EOF {
			return dataset, nil
		}
		line++
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		if err := loadRecord(dataset, record); err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
	}
}

func loadRecord(dataset *Dataset, record []string) error {
	departure, err := time.Parse(TimeLayout, record[idxDeparture])
	if err != nil {
		return fmt.Errorf("departure time %q is not valid: %w", record[idxDeparture], err)
	}

	arrival, err := time.Parse(TimeLayout, record[idxArrival])
	if err != nil {
		return fmt.Errorf("arrival time %q is not valid: %w", record[idxArrival], err)
	}

	if !departure.Before(arrival) {
		return fmt.Errorf("flight %s: %w", record[idxFlightNumber], ErrDepartureNotBeforeArrival)
	}

	price, err := parsePrice("price", record[idxPrice])
	if err != nil {
		return err
	}

	bagPrice, err := parsePrice("bag_price", record[idxBagPrice])
	if err != nil {
		return err
	}

	bagsAllowed, err := strconv.Atoi(record[idxBagsAllowed])
	if err != nil {
		return fmt.Errorf("bags_allowed %q is not valid: %w", record[idxBagsAllowed], err)
	}
	if bagsAllowed < 0 {
		return fmt.Errorf("bags_allowed %d: %w", bagsAllowed, ErrNegativeValue)
	}

	flight := &domain.Flight{
		Source:      record[idxSource],
		Destination: record[idxDestination],
		Departure:   departure,
		Arrival:     arrival,
		Number:      record[idxFlightNumber],
		Price:       price,
		BagsAllowed: bagsAllowed,
		BagPrice:    bagPrice,
	}

	source := dataset.Airports.GetOrCreate(flight.Source)
	destination := dataset.Airports.GetOrCreate(flight.Destination)

	if err := dataset.Flights.Register(flight); err != nil {
		return err
	}
	if err := destination.RegisterFlight(flight); err != nil {
		return err
	}
	if err := source.RegisterFlight(flight); err != nil {
		return err
	}
	return nil
}

func parsePrice(field, value string) (float64, error) {
	price, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, fmt.Errorf("%s %q is not valid: %w", field, value, err)
	}
	if price < 0 {
		return 0, fmt.Errorf("%s %v: %w", field, price, ErrNegativeValue)
	}
	return price, nil
}
