package bicimad

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Trip timestamps are day-first, matching the portal's CSV export.
const (
	tripDateTimeFormat = "02/01/2006 15:04:05"
	tripDateFormat     = "02/01/2006"
)

// CSVDateTime is a day-first timestamp parsed from CSV. Empty fields parse to
// the zero time.
type CSVDateTime struct {
	time.Time
}

// MarshalCSV marshals the value into a string format.
func (d *CSVDateTime) MarshalCSV() (string, error) {
	if d.IsZero() {
		return "", nil
	}
	return d.Format(tripDateTimeFormat), nil
}

// UnmarshalCSV takes the string representation from a CSV file and attempts to convert it to a timestamp.
func (d *CSVDateTime) UnmarshalCSV(csv string) error {
	csv = strings.TrimSpace(csv)
	if len(csv) < 1 {
		d.Time = time.Time{}
		return nil
	}

	t, err := time.Parse(tripDateTimeFormat, csv)
	if err != nil {
		t, err = time.Parse(tripDateFormat, csv)
	}
	if err != nil {
		return err
	}

	d.Time = t
	return nil
}

// CSVMinutes is a trip duration in minutes. Empty fields parse to zero.
type CSVMinutes float64

// MarshalCSV marshals the value into a string format.
func (m CSVMinutes) MarshalCSV() (string, error) {
	return fmt.Sprintf("%f", m), nil
}

// UnmarshalCSV takes the string representation from a CSV file and attempts to convert it to a float64.
func (m *CSVMinutes) UnmarshalCSV(csv string) error {
	csv = strings.TrimSpace(csv)
	if len(csv) < 1 {
		*m = 0
		return nil
	}

	val, err := strconv.ParseFloat(csv, 64)
	if err != nil {
		return err
	}

	*m = CSVMinutes(val)
	return nil
}

// Hours returns the duration converted to hours.
func (m CSVMinutes) Hours() float64 {
	return float64(m) / 60
}

// CSVID is a numeric identifier carried as text. The portal export renders
// these as floats, so a trailing ".0" is stripped.
type CSVID string

// MarshalCSV marshals the value into a string format.
func (i *CSVID) MarshalCSV() (string, error) {
	return string(*i), nil
}

// UnmarshalCSV takes the string representation from a CSV file and normalizes it.
func (i *CSVID) UnmarshalCSV(csv string) error {
	*i = CSVID(strings.TrimSuffix(strings.TrimSpace(csv), ".0"))
	return nil
}

// Trip is one bicycle rental event from a monthly portal export. The raw file
// also carries dock_unlock and dock_lock columns which are not consumed.
type Trip struct {
	Fecha             CSVDateTime `csv:"fecha"`
	IDBike            CSVID       `csv:"idBike"`
	Fleet             CSVID       `csv:"fleet"`
	TripMinutes       CSVMinutes  `csv:"trip_minutes"`
	GeolocationUnlock string      `csv:"geolocation_unlock"`
	AddressUnlock     string      `csv:"address_unlock"`
	UnlockDate        CSVDateTime `csv:"unlock_date"`
	LockType          string      `csv:"locktype"`
	UnlockType        string      `csv:"unlocktype"`
	GeolocationLock   string      `csv:"geolocation_lock"`
	AddressLock       string      `csv:"address_lock"`
	LockDate          CSVDateTime `csv:"lock_date"`
	StationUnlock     CSVID       `csv:"station_unlock"`
	UnlockStationName string      `csv:"unlock_station_name"`
	StationLock       CSVID       `csv:"station_lock"`
	LockStationName   string      `csv:"lock_station_name"`
}

// empty reports whether every consumed field of the row is blank.
func (t *Trip) empty() bool {
	return t.Fecha.IsZero() &&
		len(t.IDBike) < 1 &&
		len(t.Fleet) < 1 &&
		t.TripMinutes == 0 &&
		len(t.GeolocationUnlock) < 1 &&
		len(t.AddressUnlock) < 1 &&
		t.UnlockDate.IsZero() &&
		len(t.LockType) < 1 &&
		len(t.UnlockType) < 1 &&
		len(t.GeolocationLock) < 1 &&
		len(t.AddressLock) < 1 &&
		t.LockDate.IsZero() &&
		len(t.StationUnlock) < 1 &&
		len(t.UnlockStationName) < 1 &&
		len(t.StationLock) < 1 &&
		len(t.LockStationName) < 1
}

// day returns the calendar day of the trip's unlock timestamp.
func (t *Trip) day() time.Time {
	return time.Date(t.Fecha.Year(), t.Fecha.Month(), t.Fecha.Day(), 0, 0, 0, 0, t.Fecha.Location())
}
