package export

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"strconv"
	"strings"
)

// ItinerariesDocument wraps the itinerary list the way callers receive it.
type ItinerariesDocument struct {
	Itineraries []ItineraryRecord `json:"itineraries"`
}

type FlightsDocument struct {
	Flights []FlightRecord `json:"flights"`
}

type AirportsDocument struct {
	Airports []AirportRecord `json:"airports"`
}

func ItinerariesJSON(records []ItineraryRecord) ([]byte, error) {
	return marshalPretty(ItinerariesDocument{Itineraries: records})
}

func FlightsJSON(records []FlightRecord) ([]byte, error) {
	return marshalPretty(FlightsDocument{Flights: records})
}

func AirportsJSON(records []AirportRecord) ([]byte, error) {
	return marshalPretty(AirportsDocument{Airports: records})
}

func marshalPretty(v interface{}) ([]byte, error) {
	return json.MarshalIndent(v, "", "  ")
}

// ItinerariesCSV flattens itinerary records to CSV. Flight numbers and stops
// are packed into single columns, stops as airport:wait pairs.
func ItinerariesCSV(records []ItineraryRecord) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	header := []string{
		"source", "destination", "flights_taken", "price", "bags_allowed",
		"bag_price", "total_flight_duration", "total_wait_time", "stops",
	}
	if err := w.Write(header); err != nil {
		return nil, err
	}

	for _, r := range records {
		stops := make([]string, 0, len(r.Stops))
		for _, s := range r.Stops {
			stops = append(stops, s.Airport+":"+s.WaitTime)
		}
		row := []string{
			r.Source,
			r.Destination,
			strings.Join(r.FlightsTaken, "|"),
			formatAmount(r.Price),
			strconv.Itoa(r.BagsAllowed),
			formatAmount(r.BagPrice),
			r.TotalFlightDuration,
			r.TotalWaitTime,
			strings.Join(stops, "|"),
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}

	w.Flush()
	return buf.Bytes(), w.Error()
}

// FlightsCSV writes flights in the same column layout the loader reads.
func FlightsCSV(records []FlightRecord) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	header := []string{
		"source", "destination", "departure", "arrival", "flight_number",
		"price", "bags_allowed", "bag_price",
	}
	if err := w.Write(header); err != nil {
		return nil, err
	}

	for _, r := range records {
		row := []string{
			r.Source,
			r.Destination,
			r.Departure,
			r.Arrival,
			r.FlightNumber,
			formatAmount(r.Price),
			strconv.Itoa(r.BagsAllowed),
			formatAmount(r.BagPrice),
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}

	w.Flush()
	return buf.Bytes(), w.Error()
}

func formatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
