// Package respond writes the API's JSON wire shapes: plain payloads for
// success and {"error": "<message>"} bodies for failures.
package respond

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog"
)

type errorBody struct {
	Error string `json:"error"`
}

func JSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

// Error writes an error body and logs it: 5xx at error level, 4xx at
// warn. For 5xx responses the underlying error text is exposed only
// outside production; the message is used as-is otherwise.
func Error(w http.ResponseWriter, r *http.Request, status int, message string, err error, env string) {
	if status >= 500 {
		if err != nil && env != "production" {
			message = err.Error()
		}
		logger := zerolog.Ctx(r.Context())
		logger.Error().
			Err(err).
			Int("status", status).
			Str("path", r.URL.Path).
			Str("method", r.Method).
			Msg(message)
	} else {
		logger := zerolog.Ctx(r.Context())
		logger.Warn().
			Err(err).
			Int("status", status).
			Str("path", r.URL.Path).
			Str("method", r.Method).
			Msg(message)
	}

	JSON(w, status, errorBody{Error: message})
}
