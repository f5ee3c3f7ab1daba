package emt

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidMonth is returned if a requested month falls outside 1 through 12.
	ErrInvalidMonth = errors.New("month must be between 1 and 12")
	// ErrInvalidYear is returned if a requested year is not one of the published years.
	ErrInvalidYear = errors.New("year must be 21, 22 or 23")
)

// LinkNotFoundError is returned if the catalog holds no link for the requested month and year.
type LinkNotFoundError struct {
	Month int
	Year  int
}

func (e *LinkNotFoundError) Error() string {
	return fmt.Sprintf("no valid link for month %d of year %d", e.Month, e.Year)
}

// ConnectionError is returned if the portal answers a request with a non-OK status code.
type ConnectionError struct {
	URL        string
	StatusCode int
}

func (e *ConnectionError) Error() string {
	return fmt.Sprintf("failed to connect to %s, status code: %d", e.URL, e.StatusCode)
}
