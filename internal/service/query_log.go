package service

import (
	"context"
	"errors"

	"github.com/rs/zerolog/log"
	"ulascansenturk/weather-agent/internal/db/weatherquery"
)

const (
	ReasonNotFound          = "not_found"
	ReasonForecastTransport = "forecast_transport"
	ReasonForecastMalformed = "forecast_malformed"
)

type loggingWeatherService struct {
	next WeatherService
	repo weatherquery.Repository
}

// NewLoggingWeatherService records every lookup made through next. Repository
// failures are logged and never change the lookup result.
func NewLoggingWeatherService(next WeatherService, repo weatherquery.Repository) WeatherService {
	return &loggingWeatherService{
		next: next,
		repo: repo,
	}
}

func (s *loggingWeatherService) GetWeather(ctx context.Context, city string) LookupResult {
	result := s.next.GetWeather(ctx, city)

	if err := s.repo.LogWeatherQuery(ctx, NewQueryRecord(city, result)); err != nil {
		log.Error().Err(err).Str("city", city).Msg("failed to log weather query")
	}

	return result
}

func NewQueryRecord(city string, result LookupResult) *weatherquery.WeatherQuery {
	query := &weatherquery.WeatherQuery{City: city}

	switch r := result.(type) {
	case Success:
		temperature, code := r.Temperature, r.WeatherCode
		query.Status = StatusSuccess
		query.Report = r.Report
		query.Temperature = &temperature
		query.WeatherCode = &code
	case Failure:
		query.Status = StatusError
		query.ErrorMessage = r.Message()
		query.FailureReason = FailureReason(r.Err)
	}

	return query
}

// FailureReason classifies a lookup error for storage.
func FailureReason(err error) string {
	var notFound *CityNotFoundError
	if errors.As(err, &notFound) {
		return ReasonNotFound
	}

	var forecastErr *ForecastError
	if errors.As(err, &forecastErr) {
		if forecastErr.Kind == ForecastMalformed {
			return ReasonForecastMalformed
		}
		return ReasonForecastTransport
	}

	return ""
}
