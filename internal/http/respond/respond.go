package respond

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog"
)

// ErrorBody is the JSON shape of every failed response.
type ErrorBody struct {
	Error string `json:"error"`
}

// JSON writes payload as a JSON response with the given status.
func JSON(w http.ResponseWriter, r *http.Request, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		zerolog.Ctx(r.Context()).Error().Err(err).Msg("respond: encode payload failed")
	}
}

// Error writes {"error": message} with the given status.
func Error(w http.ResponseWriter, r *http.Request, status int, message string) {
	JSON(w, r, status, ErrorBody{Error: message})
}
