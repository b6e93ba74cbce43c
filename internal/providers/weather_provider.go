package providers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"net"
	"net/http"
	"net/url"
	"os"
	"strconv"
	"time"
)

const (
	DefaultGeocodingBaseURL = "https://geocoding-api.open-meteo.com/v1/search"
	DefaultForecastBaseURL  = "https://api.open-meteo.com/v1/forecast"
	DefaultTimezone         = "Asia/Tokyo"
	DefaultTimeout          = 5 * time.Second
)

var (
	// ErrLocationNotFound is returned when the geocoding service has no candidates.
	ErrLocationNotFound = errors.New("location not found")
	// ErrMalformedResponse wraps failures to interpret an upstream payload.
	ErrMalformedResponse = errors.New("malformed response")
)

// StatusError reports a non-success HTTP status from an upstream service.
type StatusError struct {
	Service    string
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s returned status code: %d", e.Service, e.StatusCode)
}

type Coordinate struct {
	Latitude  float64
	Longitude float64
}

type CurrentWeather struct {
	Temperature float64
	WeatherCode int
}

type GeocodingProvider interface {
	Geocode(ctx context.Context, city string) (Coordinate, error)
}

type ForecastProvider interface {
	CurrentWeather(ctx context.Context, coord Coordinate) (CurrentWeather, error)
}

type GeocodingResponse struct {
	Results []struct {
		Name      string   `json:"name"`
		Latitude  *float64 `json:"latitude"`
		Longitude *float64 `json:"longitude"`
		Country   string   `json:"country"`
	} `json:"results"`
}

type ForecastResponse struct {
	CurrentWeather *struct {
		Temperature *float64     `json:"temperature"`
		WeatherCode *json.Number `json:"weathercode"`
	} `json:"current_weather"`
}

// OpenMeteoGeocoder resolves city names with the Open-Meteo geocoding API.
type OpenMeteoGeocoder struct {
	baseURL string
	client  *http.Client
}

func NewOpenMeteoGeocoder(baseURL string, timeout time.Duration) *OpenMeteoGeocoder {
	if baseURL == "" {
		baseURL = DefaultGeocodingBaseURL
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &OpenMeteoGeocoder{
		baseURL: baseURL,
		client: &http.Client{
			Timeout: timeout,
		},
	}
}

// Geocode resolves city to the coordinates of the first candidate the service
// returns. No ranking is applied.
func (g *OpenMeteoGeocoder) Geocode(ctx context.Context, city string) (Coordinate, error) {
	values := url.Values{}
	values.Set("name", city)

	resp, err := get(ctx, g.client, g.baseURL+"?"+values.Encode())
	if err != nil {
		return Coordinate{}, fmt.Errorf("geocoding request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return Coordinate{}, &StatusError{Service: "geocoding", StatusCode: resp.StatusCode}
	}

	var apiResp GeocodingResponse
	if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		return Coordinate{}, fmt.Errorf("%w: geocoding: %v", ErrMalformedResponse, err)
	}

	if len(apiResp.Results) == 0 {
		return Coordinate{}, ErrLocationNotFound
	}

	first := apiResp.Results[0]
	if first.Latitude == nil || first.Longitude == nil {
		return Coordinate{}, fmt.Errorf("%w: geocoding: missing coordinates", ErrMalformedResponse)
	}

	return Coordinate{Latitude: *first.Latitude, Longitude: *first.Longitude}, nil
}

func (g *OpenMeteoGeocoder) GetHTTPClient() *http.Client {
	return g.client
}

// OpenMeteoForecaster reads current conditions from the Open-Meteo forecast API.
type OpenMeteoForecaster struct {
	baseURL  string
	timezone string
	client   *http.Client
}

func NewOpenMeteoForecaster(baseURL, timezone string, timeout time.Duration) *OpenMeteoForecaster {
	if baseURL == "" {
		baseURL = DefaultForecastBaseURL
	}
	if timezone == "" {
		timezone = DefaultTimezone
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &OpenMeteoForecaster{
		baseURL:  baseURL,
		timezone: timezone,
		client: &http.Client{
			Timeout: timeout,
		},
	}
}

// CurrentWeather fetches the current conditions at coord. Transport failures and
// non-success statuses are returned as is; anything wrong with the payload is
// wrapped in ErrMalformedResponse.
func (f *OpenMeteoForecaster) CurrentWeather(ctx context.Context, coord Coordinate) (CurrentWeather, error) {
	values := url.Values{}
	values.Set("latitude", strconv.FormatFloat(coord.Latitude, 'f', -1, 64))
	values.Set("longitude", strconv.FormatFloat(coord.Longitude, 'f', -1, 64))
	values.Set("current_weather", "true")
	values.Set("timezone", f.timezone)

	resp, err := get(ctx, f.client, f.baseURL+"?"+values.Encode())
	if err != nil {
		return CurrentWeather{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return CurrentWeather{}, &StatusError{Service: "forecast", StatusCode: resp.StatusCode}
	}

	var apiResp ForecastResponse
	if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		// The client timeout also covers reading the body.
		if isTransportError(err) {
			return CurrentWeather{}, err
		}
		return CurrentWeather{}, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}

	current := apiResp.CurrentWeather
	switch {
	case current == nil:
		return CurrentWeather{}, fmt.Errorf("%w: missing current_weather", ErrMalformedResponse)
	case current.Temperature == nil:
		return CurrentWeather{}, fmt.Errorf("%w: missing current_weather.temperature", ErrMalformedResponse)
	case current.WeatherCode == nil:
		return CurrentWeather{}, fmt.Errorf("%w: missing current_weather.weathercode", ErrMalformedResponse)
	}

	code, err := parseWeatherCode(*current.WeatherCode)
	if err != nil {
		return CurrentWeather{}, err
	}

	return CurrentWeather{
		Temperature: *current.Temperature,
		WeatherCode: code,
	}, nil
}

// parseWeatherCode accepts integers and whole-valued floats such as 1.0.
func parseWeatherCode(n json.Number) (int, error) {
	if code, err := n.Int64(); err == nil {
		return int(code), nil
	}

	f, err := n.Float64()
	if err != nil || f != math.Trunc(f) || math.Abs(f) > math.MaxInt32 {
		return 0, fmt.Errorf("%w: weathercode %q is not an integer", ErrMalformedResponse, n.String())
	}

	return int(f), nil
}

func isTransportError(err error) bool {
	var netErr net.Error
	return errors.As(err, &netErr) ||
		errors.Is(err, context.DeadlineExceeded) ||
		errors.Is(err, context.Canceled) ||
		errors.Is(err, os.ErrDeadlineExceeded)
}

func (f *OpenMeteoForecaster) GetHTTPClient() *http.Client {
	return f.client
}

func get(ctx context.Context, client *http.Client, rawURL string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	return client.Do(req)
}
