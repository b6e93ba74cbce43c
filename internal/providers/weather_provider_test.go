package providers_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
	"ulascansenturk/weather-agent/internal/providers"

	"github.com/stretchr/testify/suite"
)

type OpenMeteoTestSuite struct {
	suite.Suite
	geocodingServer *httptest.Server
	forecastServer  *httptest.Server
	geocoder        *providers.OpenMeteoGeocoder
	forecaster      *providers.OpenMeteoForecaster
	lastForecastReq *http.Request
	ctx             context.Context
}

func (s *OpenMeteoTestSuite) SetupTest() {
	s.geocodingServer = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Query().Get("name") {
		case "tokyo":
			json.NewEncoder(w).Encode(map[string]interface{}{
				"results": []map[string]interface{}{
					{"name": "Tokyo", "latitude": 35.68, "longitude": 139.69},
					{"name": "Tokyo Station", "latitude": 35.0, "longitude": 139.0},
				},
			})
		case "São Paulo":
			json.NewEncoder(w).Encode(map[string]interface{}{
				"results": []map[string]interface{}{
					{"name": "São Paulo", "latitude": -23.55, "longitude": -46.63},
				},
			})
		case "doesnotexist123":
			json.NewEncoder(w).Encode(map[string]interface{}{"results": []interface{}{}})
		case "noresultsfield":
			json.NewEncoder(w).Encode(map[string]interface{}{"generationtime_ms": 0.5})
		case "nocoordinates":
			w.Write([]byte(`{"results":[{"name":"Tokyo"}]}`))
		case "nolongitude":
			w.Write([]byte(`{"results":[{"name":"Tokyo","latitude":35.68}]}`))
		case "MalformedJSON":
			w.Write([]byte("{malformed json"))
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
	}))

	s.forecastServer = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.lastForecastReq = r
		switch r.URL.Query().Get("latitude") {
		case "35.68":
			json.NewEncoder(w).Encode(map[string]interface{}{
				"current_weather": map[string]interface{}{
					"temperature": 21.5,
					"weathercode": 1,
				},
			})
		case "1":
			json.NewEncoder(w).Encode(map[string]interface{}{})
		case "2":
			json.NewEncoder(w).Encode(map[string]interface{}{
				"current_weather": map[string]interface{}{"weathercode": 3},
			})
		case "3":
			json.NewEncoder(w).Encode(map[string]interface{}{
				"current_weather": map[string]interface{}{"temperature": 10.0},
			})
		case "4":
			json.NewEncoder(w).Encode(map[string]interface{}{
				"current_weather": map[string]interface{}{"temperature": 10.0, "weathercode": 1.5},
			})
		case "5":
			w.Write([]byte("{malformed json"))
		case "6":
			time.Sleep(200 * time.Millisecond)
			w.WriteHeader(http.StatusOK)
		case "7":
			w.Write([]byte(`{"current_weather":{"temperature":27.0,"weathercode":1.0}}`))
		case "8":
			w.WriteHeader(http.StatusOK)
			w.Write([]byte(`{"current_weather":{"temperature":`))
			w.(http.Flusher).Flush()
			time.Sleep(200 * time.Millisecond)
			w.Write([]byte(`21.5,"weathercode":1}}`))
		default:
			w.WriteHeader(http.StatusBadGateway)
		}
	}))

	s.geocoder = providers.NewOpenMeteoGeocoder(s.geocodingServer.URL, time.Second)
	s.forecaster = providers.NewOpenMeteoForecaster(s.forecastServer.URL, "", 50*time.Millisecond)
	s.ctx = context.Background()
}

func (s *OpenMeteoTestSuite) TearDownTest() {
	s.geocodingServer.Close()
	s.forecastServer.Close()
}

func (s *OpenMeteoTestSuite) TestGeocodeTakesFirstResult() {
	coord, err := s.geocoder.Geocode(s.ctx, "tokyo")
	s.NoError(err)
	s.Equal(providers.Coordinate{Latitude: 35.68, Longitude: 139.69}, coord)
}

func (s *OpenMeteoTestSuite) TestGeocodeEncodesCityName() {
	coord, err := s.geocoder.Geocode(s.ctx, "São Paulo")
	s.NoError(err)
	s.Equal(-23.55, coord.Latitude)
}

func (s *OpenMeteoTestSuite) TestGeocodeEmptyResults() {
	_, err := s.geocoder.Geocode(s.ctx, "doesnotexist123")
	s.ErrorIs(err, providers.ErrLocationNotFound)

	_, err = s.geocoder.Geocode(s.ctx, "noresultsfield")
	s.ErrorIs(err, providers.ErrLocationNotFound)
}

func (s *OpenMeteoTestSuite) TestGeocodeServerError() {
	_, err := s.geocoder.Geocode(s.ctx, "ServerError")
	s.Error(err)

	var statusErr *providers.StatusError
	s.Require().True(errors.As(err, &statusErr))
	s.Equal(http.StatusInternalServerError, statusErr.StatusCode)
	s.Contains(err.Error(), "status code")
}

func (s *OpenMeteoTestSuite) TestGeocodeMissingCoordinates() {
	for _, city := range []string{"nocoordinates", "nolongitude"} {
		coord, err := s.geocoder.Geocode(s.ctx, city)
		s.ErrorIs(err, providers.ErrMalformedResponse, city)
		s.Contains(err.Error(), "missing coordinates")
		s.Equal(providers.Coordinate{}, coord)
	}
}

func (s *OpenMeteoTestSuite) TestGeocodeMalformedJSON() {
	_, err := s.geocoder.Geocode(s.ctx, "MalformedJSON")
	s.ErrorIs(err, providers.ErrMalformedResponse)
}

func (s *OpenMeteoTestSuite) TestCurrentWeatherSuccess() {
	current, err := s.forecaster.CurrentWeather(s.ctx, providers.Coordinate{Latitude: 35.68, Longitude: 139.69})
	s.NoError(err)
	s.Equal(21.5, current.Temperature)
	s.Equal(1, current.WeatherCode)

	query := s.lastForecastReq.URL.Query()
	s.Equal("139.69", query.Get("longitude"))
	s.Equal("true", query.Get("current_weather"))
	s.Equal(providers.DefaultTimezone, query.Get("timezone"))
}

func (s *OpenMeteoTestSuite) TestCurrentWeatherMalformedPayloads() {
	cases := map[string]float64{
		"missing current_weather": 1,
		"missing temperature":     2,
		"missing weathercode":     3,
		"fractional weathercode":  4,
		"invalid json":            5,
	}

	for name, latitude := range cases {
		s.Run(name, func() {
			_, err := s.forecaster.CurrentWeather(s.ctx, providers.Coordinate{Latitude: latitude})
			s.ErrorIs(err, providers.ErrMalformedResponse)
		})
	}
}

func (s *OpenMeteoTestSuite) TestCurrentWeatherServerError() {
	_, err := s.forecaster.CurrentWeather(s.ctx, providers.Coordinate{Latitude: 99})
	s.Error(err)
	s.NotErrorIs(err, providers.ErrMalformedResponse)

	var statusErr *providers.StatusError
	s.Require().True(errors.As(err, &statusErr))
	s.Equal(http.StatusBadGateway, statusErr.StatusCode)
}

func (s *OpenMeteoTestSuite) TestCurrentWeatherTimeout() {
	_, err := s.forecaster.CurrentWeather(s.ctx, providers.Coordinate{Latitude: 6})
	s.Error(err)
	s.NotErrorIs(err, providers.ErrMalformedResponse)
	s.Contains(err.Error(), "Client.Timeout exceeded")
}

func (s *OpenMeteoTestSuite) TestCurrentWeatherBodyTimeout() {
	_, err := s.forecaster.CurrentWeather(s.ctx, providers.Coordinate{Latitude: 8})
	s.Error(err)
	s.NotErrorIs(err, providers.ErrMalformedResponse)
	s.Contains(err.Error(), "Client.Timeout")
}

func (s *OpenMeteoTestSuite) TestCurrentWeatherWholeFloatCode() {
	current, err := s.forecaster.CurrentWeather(s.ctx, providers.Coordinate{Latitude: 7})
	s.NoError(err)
	s.Equal(1, current.WeatherCode)
	s.Equal(27.0, current.Temperature)
}

func (s *OpenMeteoTestSuite) TestDefaults() {
	geocoder := providers.NewOpenMeteoGeocoder("", 0)
	s.Equal(providers.DefaultTimeout, geocoder.GetHTTPClient().Timeout)

	forecaster := providers.NewOpenMeteoForecaster("", "", 0)
	s.Equal(providers.DefaultTimeout, forecaster.GetHTTPClient().Timeout)
}

func TestOpenMeteoSuite(t *testing.T) {
	suite.Run(t, new(OpenMeteoTestSuite))
}
