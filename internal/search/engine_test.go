package search

import (
	"strings"
	"testing"
	"time"

	"github.com/Domenick1991/flightroutes/internal/domain"
	"github.com/Domenick1991/flightroutes/internal/loader"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// loadGraph builds a dataset from raw CSV rows (no header).
func loadGraph(t *testing.T, rows ...string) *loader.Dataset {
	t.Helper()
	dataset, err := loader.Load(strings.NewReader(strings.Join(rows, "\n")+"\n"), false)
	require.NoError(t, err)
	return dataset
}

func numbers(itineraries []domain.Itinerary) [][]string {
	out := make([][]string, len(itineraries))
	for i, it := range itineraries {
		out[i] = it.FlightNumbers()
	}
	return out
}

func TestComputeItineraries_TwoLegConnection(t *testing.T) {
	dataset := loadGraph(t,
		"AAA,BBB,2017-02-11T10:00:00,2017-02-11T11:00:00,PV1,100,2,20",
		"BBB,CCC,2017-02-11T12:30:00,2017-02-11T13:30:00,PV2,50,1,10",
	)
	engine := NewEngine(DefaultMinWait, DefaultMaxWait)

	itineraries := engine.ComputeItineraries(dataset.Airports)

	require.Len(t, itineraries, 1)
	it := itineraries[0]
	assert.Equal(t, []string{"PV1", "PV2"}, it.FlightNumbers())
	assert.Equal(t, "AAA", it.Source())
	assert.Equal(t, "CCC", it.Destination())
	assert.Equal(t, 150.0, it.Price)
	assert.Equal(t, 1, it.BagsAllowed)
	assert.Equal(t, 30.0, it.BagPrice)
	assert.Equal(t, 2*time.Hour, it.TotalFlightDuration)
	assert.Equal(t, 90*time.Minute, it.TotalWaitTime)
	assert.Equal(t, []domain.Stop{{Airport: "BBB", WaitTime: 90 * time.Minute}}, it.Stops())
}

func TestComputeItineraries_WaitBelowMinimum(t *testing.T) {
	dataset := loadGraph(t,
		"AAA,BBB,2017-02-11T10:00:00,2017-02-11T11:00:00,PV1,100,2,20",
		"BBB,CCC,2017-02-11T11:10:00,2017-02-11T12:10:00,PV2,50,1,10",
	)
	engine := NewEngine(DefaultMinWait, DefaultMaxWait)

	itineraries := engine.ComputeItineraries(dataset.Airports)

	assert.Empty(t, itineraries)
}

func TestComputeItineraries_WaitWindowBoundaries(t *testing.T) {
	cases := []struct {
		name      string
		departure string
		connects  bool
	}{
		{"exactly min wait", "2017-02-11T12:00:00", true},
		{"exactly max wait", "2017-02-11T15:00:00", true},
		{"just above max wait", "2017-02-11T15:01:00", false},
		{"zero wait", "2017-02-11T11:00:00", false},
		{"negative wait", "2017-02-11T10:30:00", false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			dataset := loadGraph(t,
				"AAA,BBB,2017-02-11T10:00:00,2017-02-11T11:00:00,PV1,100,2,20",
				"BBB,CCC,"+tc.departure+",2017-02-11T18:00:00,PV2,50,1,10",
			)
			engine := NewEngine(DefaultMinWait, DefaultMaxWait)

			itineraries := engine.ComputeItineraries(dataset.Airports)

			if tc.connects {
				assert.Len(t, itineraries, 1)
			} else {
				assert.Empty(t, itineraries)
			}
		})
	}
}

func TestComputeItineraries_RoundTripBlocked(t *testing.T) {
	// AAA->BBB->AAA reuses the {AAA,BBB} pair and must not be emitted even
	// though the return flight fits the wait window.
	dataset := loadGraph(t,
		"AAA,BBB,2017-02-11T10:00:00,2017-02-11T11:00:00,PV1,100,2,20",
		"BBB,AAA,2017-02-11T12:30:00,2017-02-11T13:30:00,PV2,50,1,10",
	)
	engine := NewEngine(DefaultMinWait, DefaultMaxWait)

	itineraries := engine.ComputeItineraries(dataset.Airports)

	assert.Empty(t, itineraries)
}

func TestComputeItineraries_AirportRevisitThroughDifferentPairAllowed(t *testing.T) {
	// Triangle AAA->BBB->CCC->AAA: every leg covers a distinct pair, so the
	// full loop is a valid itinerary even though AAA appears twice.
	dataset := loadGraph(t,
		"AAA,BBB,2017-02-11T08:00:00,2017-02-11T09:00:00,PV1,100,2,20",
		"BBB,CCC,2017-02-11T10:30:00,2017-02-11T11:30:00,PV2,50,1,10",
		"CCC,AAA,2017-02-11T13:00:00,2017-02-11T14:00:00,PV3,60,3,15",
	)
	engine := NewEngine(DefaultMinWait, DefaultMaxWait)

	itineraries := engine.ComputeItineraries(dataset.Airports)

	assert.Contains(t, numbers(itineraries), []string{"PV1", "PV2", "PV3"})
}

func TestComputeItineraries_SingleLegNotEmitted(t *testing.T) {
	dataset := loadGraph(t,
		"AAA,BBB,2017-02-11T10:00:00,2017-02-11T11:00:00,PV1,100,2,20",
	)
	engine := NewEngine(DefaultMinWait, DefaultMaxWait)

	itineraries := engine.ComputeItineraries(dataset.Airports)

	assert.Empty(t, itineraries)
}

func TestComputeItineraries_ChainEmissionOrder(t *testing.T) {
	// Seeds are pushed in airport creation order and popped LIFO, so the walk
	// starts from the last departure and the order below is fixed.
	dataset := loadGraph(t,
		"AAA,BBB,2017-02-11T08:00:00,2017-02-11T09:00:00,PV1,100,2,20",
		"BBB,CCC,2017-02-11T10:30:00,2017-02-11T11:30:00,PV2,50,1,10",
		"CCC,DDD,2017-02-11T13:00:00,2017-02-11T14:00:00,PV3,60,3,15",
	)
	engine := NewEngine(DefaultMinWait, DefaultMaxWait)

	itineraries := engine.ComputeItineraries(dataset.Airports)

	assert.Equal(t, [][]string{
		{"PV2", "PV3"},
		{"PV1", "PV2"},
		{"PV1", "PV2", "PV3"},
	}, numbers(itineraries))
}

func TestComputeItineraries_ThreeLegAggregates(t *testing.T) {
	dataset := loadGraph(t,
		"AAA,BBB,2017-02-11T08:00:00,2017-02-11T09:00:00,PV1,100,2,20",
		"BBB,CCC,2017-02-11T10:30:00,2017-02-11T11:30:00,PV2,50,1,10",
		"CCC,DDD,2017-02-11T13:00:00,2017-02-11T14:00:00,PV3,60,3,15",
	)
	engine := NewEngine(DefaultMinWait, DefaultMaxWait)

	itineraries := engine.ComputeItineraries(dataset.Airports)

	var full domain.Itinerary
	found := false
	for _, it := range itineraries {
		if it.Legs() == 3 {
			full, found = it, true
		}
	}
	require.True(t, found)

	assert.Equal(t, 210.0, full.Price)
	assert.Equal(t, 1, full.BagsAllowed)
	assert.Equal(t, 45.0, full.BagPrice)
	assert.Equal(t, 3*time.Hour, full.TotalFlightDuration)
	assert.Equal(t, 3*time.Hour, full.TotalWaitTime)
	assert.Equal(t, []domain.Stop{
		{Airport: "BBB", WaitTime: 90 * time.Minute},
		{Airport: "CCC", WaitTime: 90 * time.Minute},
	}, full.Stops())
}

func TestComputeItineraries_Deterministic(t *testing.T) {
	rows := []string{
		"AAA,BBB,2017-02-11T08:00:00,2017-02-11T09:00:00,PV1,100,2,20",
		"BBB,CCC,2017-02-11T10:30:00,2017-02-11T11:30:00,PV2,50,1,10",
		"BBB,DDD,2017-02-11T10:45:00,2017-02-11T12:00:00,PV3,60,3,15",
		"CCC,AAA,2017-02-11T13:00:00,2017-02-11T14:00:00,PV4,70,2,20",
	}
	engine := NewEngine(DefaultMinWait, DefaultMaxWait)

	first := engine.ComputeItineraries(loadGraph(t, rows...).Airports)
	second := engine.ComputeItineraries(loadGraph(t, rows...).Airports)

	assert.Equal(t, numbers(first), numbers(second))
}

func TestComputeItineraries_NoDuplicateSegments(t *testing.T) {
	dataset := loadGraph(t,
		"AAA,BBB,2017-02-11T08:00:00,2017-02-11T09:00:00,PV1,100,2,20",
		"BBB,AAA,2017-02-11T10:30:00,2017-02-11T11:30:00,PV2,50,1,10",
		"BBB,CCC,2017-02-11T10:45:00,2017-02-11T12:00:00,PV3,60,3,15",
		"CCC,BBB,2017-02-11T13:30:00,2017-02-11T14:30:00,PV4,70,2,20",
	)
	engine := NewEngine(DefaultMinWait, DefaultMaxWait)

	for _, it := range engine.ComputeItineraries(dataset.Airports) {
		seen := make(map[domain.Segment]int)
		for _, f := range it.FlightsTaken {
			seen[domain.SegmentOf(f)]++
		}
		for segment, count := range seen {
			assert.Equal(t, 1, count, "segment %v used more than once in %v", segment, it.FlightNumbers())
		}
	}
}

func TestComputeItineraries_MaxLegs(t *testing.T) {
	dataset := loadGraph(t,
		"AAA,BBB,2017-02-11T08:00:00,2017-02-11T09:00:00,PV1,100,2,20",
		"BBB,CCC,2017-02-11T10:30:00,2017-02-11T11:30:00,PV2,50,1,10",
		"CCC,DDD,2017-02-11T13:00:00,2017-02-11T14:00:00,PV3,60,3,15",
	)
	engine := NewEngine(DefaultMinWait, DefaultMaxWait, WithMaxLegs(2))

	for _, it := range engine.ComputeItineraries(dataset.Airports) {
		assert.LessOrEqual(t, it.Legs(), 2)
	}
}

func TestComputeItineraries_MaxResults(t *testing.T) {
	dataset := loadGraph(t,
		"AAA,BBB,2017-02-11T08:00:00,2017-02-11T09:00:00,PV1,100,2,20",
		"BBB,CCC,2017-02-11T10:30:00,2017-02-11T11:30:00,PV2,50,1,10",
		"CCC,DDD,2017-02-11T13:00:00,2017-02-11T14:00:00,PV3,60,3,15",
	)
	engine := NewEngine(DefaultMinWait, DefaultMaxWait, WithMaxResults(1))

	itineraries := engine.ComputeItineraries(dataset.Airports)

	assert.Len(t, itineraries, 1)
}

func TestComputeItineraries_EveryResultIsExtensionOfShorterPath(t *testing.T) {
	dataset := loadGraph(t,
		"AAA,BBB,2017-02-11T08:00:00,2017-02-11T09:00:00,PV1,100,2,20",
		"BBB,CCC,2017-02-11T10:30:00,2017-02-11T11:30:00,PV2,50,1,10",
		"BBB,DDD,2017-02-11T10:45:00,2017-02-11T12:00:00,PV3,60,3,15",
		"CCC,DDD,2017-02-11T13:00:00,2017-02-11T14:00:00,PV4,70,2,20",
	)
	engine := NewEngine(DefaultMinWait, DefaultMaxWait)

	itineraries := engine.ComputeItineraries(dataset.Airports)
	require.NotEmpty(t, itineraries)

	emitted := make(map[string]bool)
	for _, it := range itineraries {
		emitted[strings.Join(it.FlightNumbers(), ",")] = true
	}

	for _, it := range itineraries {
		if it.Legs() == 2 {
			continue // parent is a one-leg seed, not emitted
		}
		parent := strings.Join(it.FlightNumbers()[:it.Legs()-1], ",")
		assert.True(t, emitted[parent], "missing parent %s of %v", parent, it.FlightNumbers())
	}
}
