package handlers

import (
	"encoding/json"
	"github.com/rs/zerolog/log"
	"net/http"
)

var errorCodes = map[int]string{
	http.StatusBadRequest:         "BAD_REQUEST",
	http.StatusNotFound:           "NOT_FOUND",
	http.StatusMethodNotAllowed:   "METHOD_NOT_ALLOWED",
	http.StatusServiceUnavailable: "SERVICE_UNAVAILABLE",
}

func respondWithError(w http.ResponseWriter, status int, message string) {
	errorCode, ok := errorCodes[status]
	if !ok {
		errorCode = "INTERNAL_ERROR"
		status = http.StatusInternalServerError
	}

	respondWithJSON(w, status, ErrorResponse{
		Errors: []Error{
			{
				Code:   errorCode,
				Detail: message,
				Status: status,
				Title:  http.StatusText(status),
			},
		},
	})
}

func respondWithJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Error().Err(err).Msg("failed to encode response")
	}
}
