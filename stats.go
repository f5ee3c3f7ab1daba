package bicimad

import (
	"sort"
	"time"
)

// weekdayCodes maps weekdays to the one-letter Spanish abbreviations used in
// reports. Wednesday is X by convention.
var weekdayCodes = map[time.Weekday]string{
	time.Monday:    "L",
	time.Tuesday:   "M",
	time.Wednesday: "X",
	time.Thursday:  "J",
	time.Friday:    "V",
	time.Saturday:  "S",
	time.Sunday:    "D",
}

// Summary captures the month's headline usage statistics.
type Summary struct {
	Year                int
	Month               int
	TotalUses           int
	TotalHours          float64
	MostPopularStations map[string]struct{}
	UsesFromMostPopular int
}

// Summary computes the headline statistics for the month.
func (d *Dataset) Summary() *Summary {
	totalHours := 0.0
	for _, trip := range d.trips {
		totalHours += trip.TripMinutes.Hours()
	}

	return &Summary{
		Year:                d.year,
		Month:               d.month,
		TotalUses:           len(d.trips),
		TotalHours:          totalHours,
		MostPopularStations: d.MostPopularUnlockStations(),
		UsesFromMostPopular: d.RowsFromMostPopularStations(),
	}
}

// MostPopularUnlockStations returns the unlock addresses of the stations with
// the highest trip count. Stations tied at the maximum are all included.
func (d *Dataset) MostPopularUnlockStations() map[string]struct{} {
	counts := map[CSVID]int{}
	for _, trip := range d.trips {
		counts[trip.StationUnlock]++
	}

	maxCount := 0
	for _, count := range counts {
		if count > maxCount {
			maxCount = count
		}
	}

	addresses := map[string]struct{}{}
	for _, trip := range d.trips {
		if counts[trip.StationUnlock] == maxCount {
			addresses[trip.AddressUnlock] = struct{}{}
		}
	}

	return addresses
}

// RowsFromMostPopularStations counts the trips unlocked at the addresses
// returned by MostPopularUnlockStations.
func (d *Dataset) RowsFromMostPopularStations() int {
	addresses := d.MostPopularUnlockStations()

	count := 0
	for _, trip := range d.trips {
		if _, ok := addresses[trip.AddressUnlock]; ok {
			count++
		}
	}

	return count
}

// HoursPerDay sums trip hours per calendar day.
func (d *Dataset) HoursPerDay() map[time.Time]float64 {
	hours := map[time.Time]float64{}
	for _, trip := range d.trips {
		hours[trip.day()] += trip.TripMinutes.Hours()
	}
	return hours
}

// HoursPerWeekday sums trip hours per weekday, keyed by the one-letter codes.
func (d *Dataset) HoursPerWeekday() map[string]float64 {
	hours := map[string]float64{}
	for _, trip := range d.trips {
		hours[weekdayCodes[trip.Fecha.Weekday()]] += trip.TripMinutes.Hours()
	}
	return hours
}

// TripsPerDay counts trips per calendar day.
func (d *Dataset) TripsPerDay() map[time.Time]int {
	counts := map[time.Time]int{}
	for _, trip := range d.trips {
		counts[trip.day()]++
	}
	return counts
}

// DayStationCount is one row of the per-day, per-unlock-station trip tally.
type DayStationCount struct {
	Day           time.Time
	StationUnlock string
	Count         int
}

// TripsPerDayAndStation counts trips per (calendar day, unlock station) pair.
// Rows are ordered by day and then station identifier.
func (d *Dataset) TripsPerDayAndStation() []*DayStationCount {
	type dayStation struct {
		day     time.Time
		station CSVID
	}

	counts := map[dayStation]int{}
	for _, trip := range d.trips {
		counts[dayStation{day: trip.day(), station: trip.StationUnlock}]++
	}

	rows := make([]*DayStationCount, 0, len(counts))
	for key, count := range counts {
		rows = append(rows, &DayStationCount{
			Day:           key.day,
			StationUnlock: string(key.station),
			Count:         count,
		})
	}

	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Day.Equal(rows[j].Day) {
			return rows[i].StationUnlock < rows[j].StationUnlock
		}
		return rows[i].Day.Before(rows[j].Day)
	})

	return rows
}
