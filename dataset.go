package bicimad

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"

	"github.com/gocarina/gocsv"
	"github.com/rmrobinson/bicimad/emt"
	"go.uber.org/zap"
)

// Dataset holds the cleaned trip table for a single month. It is read-only
// once loaded; independent instances share no state, so callers wanting
// several months in flight simply build one dataset per month.
type Dataset struct {
	logger *zap.Logger

	month int
	year  int

	trips []*Trip
}

// NewDataset creates an empty dataset bound to the supplied month and year.
func NewDataset(logger *zap.Logger, month int, year int) *Dataset {
	gocsv.SetCSVReader(tripCSVReader)
	return &Dataset{
		logger: logger,
		month:  month,
		year:   year,
	}
}

// LoadFromCatalog retrieves the month's trip CSV through the catalog and loads it.
func (d *Dataset) LoadFromCatalog(ctx context.Context, catalog *emt.Catalog) error {
	contents, err := catalog.FetchCSV(ctx, d.month, d.year)
	if err != nil {
		return err
	}

	return d.LoadFromReader(contents)
}

// LoadFromReader parses the supplied semicolon-delimited CSV stream and cleans it.
func (d *Dataset) LoadFromReader(contents io.Reader) error {
	var trips []*Trip
	if err := gocsv.Unmarshal(contents, &trips); err != nil {
		return err
	}

	d.trips = clean(trips)

	d.logger.Debug("loaded dataset",
		zap.Int("month", d.month),
		zap.Int("year", d.year),
		zap.Int("raw_rows", len(trips)),
		zap.Int("rows", len(d.trips)),
	)

	return nil
}

// clean drops rows where every consumed field is blank. Identifier formatting
// happens while unmarshaling; see CSVID.
func clean(trips []*Trip) []*Trip {
	cleaned := make([]*Trip, 0, len(trips))
	for _, trip := range trips {
		if trip.empty() {
			continue
		}
		cleaned = append(cleaned, trip)
	}
	return cleaned
}

// Trips returns the cleaned rows loaded into this dataset.
func (d *Dataset) Trips() []*Trip {
	return d.trips
}

// Month returns the month this dataset is bound to.
func (d *Dataset) Month() int {
	return d.month
}

// Year returns the year this dataset is bound to.
func (d *Dataset) Year() int {
	return d.year
}

// String presents the caller with a human readable version of this dataset.
func (d *Dataset) String() string {
	return fmt.Sprintf("Month: %d, Year: %d", d.month, d.year)
}

// The portal export is semicolon delimited and rows may carry fewer columns
// than the header row. We do not error on that, for better or worse.
func tripCSVReader(in io.Reader) gocsv.CSVReader {
	csvReader := csv.NewReader(in)
	csvReader.Comma = ';'
	csvReader.FieldsPerRecord = -1
	return csvReader
}
