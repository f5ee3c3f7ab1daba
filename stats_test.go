package bicimad

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

var (
	fixtureDay1 = time.Date(2022, time.November, 1, 0, 0, 0, 0, time.UTC)
	fixtureDay2 = time.Date(2022, time.November, 2, 0, 0, 0, 0, time.UTC)
)

func TestSummary(t *testing.T) {
	dataset := newFixtureDataset(t)
	summary := dataset.Summary()

	assert.Equal(t, 22, summary.Year)
	assert.Equal(t, 11, summary.Month)
	assert.Equal(t, 6, summary.TotalUses)
	assert.InDelta(t, 0.708333, summary.TotalHours, 0.0001)
	assert.Equal(t, map[string]struct{}{
		"Calle Manuel Silvela": {},
		"Calle Alcala":         {},
	}, summary.MostPopularStations)
	assert.Equal(t, 4, summary.UsesFromMostPopular)

	// The summary is derived from the same cleaned table the accessors use.
	assert.Equal(t, len(dataset.Trips()), summary.TotalUses)
	assert.Equal(t, dataset.RowsFromMostPopularStations(), summary.UsesFromMostPopular)
}

func TestMostPopularUnlockStations(t *testing.T) {
	dataset := newFixtureDataset(t)

	assert.Equal(t, map[string]struct{}{
		"Calle Manuel Silvela": {},
		"Calle Alcala":         {},
	}, dataset.MostPopularUnlockStations())
}

func TestRowsFromMostPopularStations(t *testing.T) {
	dataset := newFixtureDataset(t)
	assert.Equal(t, 4, dataset.RowsFromMostPopularStations())
}

func TestMostPopularUnlockStationsEmptyDataset(t *testing.T) {
	dataset := NewDataset(zap.NewNop(), 11, 22)

	assert.Equal(t, map[string]struct{}{}, dataset.MostPopularUnlockStations())
	assert.Equal(t, 0, dataset.RowsFromMostPopularStations())
}

func TestHoursPerDay(t *testing.T) {
	dataset := newFixtureDataset(t)
	hours := dataset.HoursPerDay()

	assert.Len(t, hours, 2)
	assert.InDelta(t, 0.7, hours[fixtureDay1], 0.0001)
	assert.InDelta(t, 0.008333, hours[fixtureDay2], 0.0001)

	total := 0.0
	for _, h := range hours {
		total += h
	}
	assert.InDelta(t, dataset.Summary().TotalHours, total, 0.0001)
}

func TestHoursPerWeekday(t *testing.T) {
	dataset := newFixtureDataset(t)
	hours := dataset.HoursPerWeekday()

	// 2022-11-01 is a Tuesday, 2022-11-02 a Wednesday.
	assert.Len(t, hours, 2)
	assert.InDelta(t, 0.7, hours["M"], 0.0001)
	assert.InDelta(t, 0.008333, hours["X"], 0.0001)
}

func TestTripsPerDay(t *testing.T) {
	dataset := newFixtureDataset(t)

	assert.Equal(t, map[time.Time]int{
		fixtureDay1: 5,
		fixtureDay2: 1,
	}, dataset.TripsPerDay())
}

func TestTripsPerDayAndStation(t *testing.T) {
	dataset := newFixtureDataset(t)

	expected := []*DayStationCount{
		{Day: fixtureDay1, StationUnlock: "1", Count: 2},
		{Day: fixtureDay1, StationUnlock: "2", Count: 1},
		{Day: fixtureDay1, StationUnlock: "3", Count: 1},
		{Day: fixtureDay1, StationUnlock: "4", Count: 1},
		{Day: fixtureDay2, StationUnlock: "3", Count: 1},
	}
	assert.Equal(t, expected, dataset.TripsPerDayAndStation())
}
