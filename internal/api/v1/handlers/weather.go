package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
	"ulascansenturk/weather-agent/internal/agents"
	"ulascansenturk/weather-agent/internal/db/weatherquery"
	"ulascansenturk/weather-agent/internal/service"
)

// DefaultLookupTimeout bounds a lookup when no positive timeout is configured.
const DefaultLookupTimeout = 15 * time.Second

type WeatherHandler struct {
	weatherService service.WeatherService
	queryRepo      weatherquery.Repository
	rootAgent      agents.Agent
	validate       *validator.Validate
	timeout        time.Duration
	router         *mux.Router
}

// NewWeatherHandler wires the HTTP routes. queryRepo may be nil, in which case
// the query log endpoint reports the log as disabled.
func NewWeatherHandler(
	weatherService service.WeatherService,
	queryRepo weatherquery.Repository,
	rootAgent agents.Agent,
	timeout time.Duration,
) *WeatherHandler {
	if timeout <= 0 {
		timeout = DefaultLookupTimeout
	}

	h := &WeatherHandler{
		weatherService: weatherService,
		queryRepo:      queryRepo,
		rootAgent:      rootAgent,
		validate:       validator.New(validator.WithRequiredStructEnabled()),
		timeout:        timeout,
	}

	router := mux.NewRouter()
	router.HandleFunc("/weather", h.GetWeather).Methods(http.MethodGet)
	router.HandleFunc("/tools/{name}", h.InvokeTool).Methods(http.MethodPost)
	router.HandleFunc("/agents", h.GetAgents).Methods(http.MethodGet)
	router.HandleFunc("/queries/latest", h.GetLatestQuery).Methods(http.MethodGet)
	router.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		respondWithError(w, http.StatusNotFound, "not found")
	})
	router.MethodNotAllowedHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		respondWithError(w, http.StatusMethodNotAllowed, "method not allowed")
	})
	h.router = router

	return h
}

func (h *WeatherHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.router.ServeHTTP(w, r)
}

// GetWeather answers with the tool response for the city query parameter. The
// lookup outcome travels in the body's status field, so both outcomes are 200.
func (h *WeatherHandler) GetWeather(w http.ResponseWriter, r *http.Request) {
	city := r.URL.Query().Get("city")
	if city == "" {
		respondWithError(w, http.StatusBadRequest, "city parameter is required")
		return
	}

	respondWithJSON(w, http.StatusOK, h.lookup(r.Context(), city))
}

func (h *WeatherHandler) InvokeTool(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["name"]
	if name != agents.GetWeatherToolName || !agents.HasTool(h.rootAgent, name) {
		respondWithError(w, http.StatusNotFound, "unknown tool: "+name)
		return
	}

	var input agents.GetWeatherInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	if err := h.validate.Struct(input); err != nil {
		respondWithError(w, http.StatusBadRequest, "city is required")
		return
	}

	respondWithJSON(w, http.StatusOK, h.lookup(r.Context(), input.City))
}

func (h *WeatherHandler) GetAgents(w http.ResponseWriter, r *http.Request) {
	respondWithJSON(w, http.StatusOK, h.rootAgent)
}

func (h *WeatherHandler) GetLatestQuery(w http.ResponseWriter, r *http.Request) {
	if h.queryRepo == nil {
		respondWithError(w, http.StatusServiceUnavailable, "query log is disabled")
		return
	}

	city := r.URL.Query().Get("city")
	if city == "" {
		respondWithError(w, http.StatusBadRequest, "city parameter is required")
		return
	}

	query, err := h.queryRepo.GetRecentWeatherQuery(r.Context(), city)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		respondWithError(w, http.StatusNotFound, "no queries logged for "+city)
		return
	}
	if err != nil {
		log.Error().Err(err).Str("city", city).Msg("failed to read query log")
		respondWithError(w, http.StatusInternalServerError, "failed to read query log")
		return
	}

	respondWithJSON(w, http.StatusOK, query)
}

func (h *WeatherHandler) lookup(ctx context.Context, city string) service.ToolResponse {
	ctx, cancel := context.WithTimeout(ctx, h.timeout)
	defer cancel()

	resp := h.weatherService.GetWeather(ctx, city).ToolResponse()
	if resp.Status == service.StatusError {
		log.Warn().Str("city", city).Str("error_message", resp.ErrorMessage).Msg("weather lookup failed")
	}

	return resp
}
