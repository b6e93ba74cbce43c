package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"
	"ulascansenturk/weather-agent/internal/providers"
	"ulascansenturk/weather-agent/internal/weathercode"
)

type WeatherService interface {
	GetWeather(ctx context.Context, city string) LookupResult
}

type weatherService struct {
	geocoder   providers.GeocodingProvider
	forecaster providers.ForecastProvider
}

func NewWeatherService(geocoder providers.GeocodingProvider, forecaster providers.ForecastProvider) WeatherService {
	return &weatherService{
		geocoder:   geocoder,
		forecaster: forecaster,
	}
}

// GetWeather resolves city to coordinates and then to current conditions. The
// forecast is only requested once geocoding has succeeded. Every failure comes
// back as a Failure; nothing is returned as a Go error.
func (s *weatherService) GetWeather(ctx context.Context, city string) LookupResult {
	coord, err := s.geocoder.Geocode(ctx, city)
	if err != nil {
		log.Debug().Err(err).Str("city", city).Msg("geocoding failed")
		return Failure{Err: &CityNotFoundError{City: city, Err: err}}
	}

	current, err := s.forecaster.CurrentWeather(ctx, coord)
	if err != nil {
		kind := ForecastTransport
		if errors.Is(err, providers.ErrMalformedResponse) {
			kind = ForecastMalformed
		}
		log.Debug().Err(err).Str("city", city).Msg("forecast failed")
		return Failure{Err: &ForecastError{Kind: kind, Err: err}}
	}

	return Success{
		Report:      FormatReport(current),
		Temperature: current.Temperature,
		WeatherCode: current.WeatherCode,
	}
}

// FormatReport composes the report sentence. The temperature keeps whatever
// precision the forecast service returned, with at least one decimal place.
func FormatReport(current providers.CurrentWeather) string {
	desc := weathercode.Describe(weathercode.Code(current.WeatherCode))

	return fmt.Sprintf("Current weather is %q with a temperature of %s°C.", desc, formatTemperature(current.Temperature))
}

func formatTemperature(t float64) string {
	s := strconv.FormatFloat(t, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}
