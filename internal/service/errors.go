package service

import "fmt"

type CityNotFoundError struct {
	City string
	Err  error
}

func (e *CityNotFoundError) Error() string {
	return fmt.Sprintf("city '%s' not found", e.City)
}

func (e *CityNotFoundError) Unwrap() error {
	return e.Err
}

type ForecastFailureKind int

const (
	// ForecastTransport covers timeouts, connection errors and non-success statuses.
	ForecastTransport ForecastFailureKind = iota
	// ForecastMalformed covers payloads that could not be interpreted.
	ForecastMalformed
)

type ForecastError struct {
	Kind ForecastFailureKind
	Err  error
}

func (e *ForecastError) Error() string {
	if e.Kind == ForecastMalformed {
		return fmt.Sprintf("failed to retrieve weather: %v", e.Err)
	}
	return fmt.Sprintf("forecast request failed: %v", e.Err)
}

func (e *ForecastError) Unwrap() error {
	return e.Err
}
