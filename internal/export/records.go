// Package export renders datasets and computed itineraries into the JSON and
// CSV documents handed to callers.
package export

import (
	"fmt"
	"time"

	"github.com/Domenick1991/flightroutes/internal/domain"
)

// TimeLayout is the timestamp format used in all serialized documents.
const TimeLayout = "2006-01-02T15:04:05"

type StopRecord struct {
	Airport  string `json:"airport"`
	WaitTime string `json:"wait_time"`
}

type ItineraryRecord struct {
	Price               float64      `json:"price"`
	BagsAllowed         int          `json:"bags_allowed"`
	BagPrice            float64      `json:"bag_price"`
	TotalFlightDuration string       `json:"total_flight_duration"`
	TotalWaitTime       string       `json:"total_wait_time"`
	FlightsTaken        []string     `json:"flights_taken"`
	Source              string       `json:"source"`
	Destination         string       `json:"destination"`
	Stops               []StopRecord `json:"stops"`
}

type FlightRecord struct {
	Source       string  `json:"source"`
	Destination  string  `json:"destination"`
	Departure    string  `json:"departure"`
	Arrival      string  `json:"arrival"`
	FlightNumber string  `json:"flight_number"`
	Price        float64 `json:"price"`
	BagsAllowed  int     `json:"bags_allowed"`
	BagPrice     float64 `json:"bag_price"`
}

type AirportRecord struct {
	Airport    string         `json:"airport"`
	Departures []FlightRecord `json:"departures"`
	Arrivals   []FlightRecord `json:"arrivals"`
}

// FormatDuration renders a duration as H:MM:SS with an unpadded hour count.
func FormatDuration(d time.Duration) string {
	seconds := int64(d / time.Second)
	return fmt.Sprintf("%d:%02d:%02d", seconds/3600, seconds/60%60, seconds%60)
}

func NewStopRecord(s domain.Stop) StopRecord {
	return StopRecord{Airport: s.Airport, WaitTime: FormatDuration(s.WaitTime)}
}

func NewItineraryRecord(it domain.Itinerary) ItineraryRecord {
	stops := make([]StopRecord, 0, len(it.FlightsTaken)-1)
	for _, s := range it.Stops() {
		stops = append(stops, NewStopRecord(s))
	}

	return ItineraryRecord{
		Price:               it.Price,
		BagsAllowed:         it.BagsAllowed,
		BagPrice:            it.BagPrice,
		TotalFlightDuration: FormatDuration(it.TotalFlightDuration),
		TotalWaitTime:       FormatDuration(it.TotalWaitTime),
		FlightsTaken:        it.FlightNumbers(),
		Source:              it.Source(),
		Destination:         it.Destination(),
		Stops:               stops,
	}
}

func NewFlightRecord(f *domain.Flight) FlightRecord {
	return FlightRecord{
		Source:       f.Source,
		Destination:  f.Destination,
		Departure:    f.Departure.Format(TimeLayout),
		Arrival:      f.Arrival.Format(TimeLayout),
		FlightNumber: f.Number,
		Price:        f.Price,
		BagsAllowed:  f.BagsAllowed,
		BagPrice:     f.BagPrice,
	}
}

func NewAirportRecord(a *domain.Airport) AirportRecord {
	departures := make([]FlightRecord, 0, len(a.Departures))
	for _, f := range a.Departures {
		departures = append(departures, NewFlightRecord(f))
	}
	arrivals := make([]FlightRecord, 0, len(a.Arrivals))
	for _, f := range a.Arrivals {
		arrivals = append(arrivals, NewFlightRecord(f))
	}
	return AirportRecord{Airport: a.Code, Departures: departures, Arrivals: arrivals}
}

func ItineraryRecords(itineraries []domain.Itinerary) []ItineraryRecord {
	records := make([]ItineraryRecord, 0, len(itineraries))
	for _, it := range itineraries {
		records = append(records, NewItineraryRecord(it))
	}
	return records
}

func FlightRecords(flights []*domain.Flight) []FlightRecord {
	records := make([]FlightRecord, 0, len(flights))
	for _, f := range flights {
		records = append(records, NewFlightRecord(f))
	}
	return records
}

func AirportRecords(airports []*domain.Airport) []AirportRecord {
	records := make([]AirportRecord, 0, len(airports))
	for _, a := range airports {
		records = append(records, NewAirportRecord(a))
	}
	return records
}
