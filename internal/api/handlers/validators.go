package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// decodeBody parses the JSON body into dst and checks its validate tags.
// Callers translate the returned error into their route's 400 message.
func decodeBody(r *http.Request, dst any) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return err
	}
	return validate.Struct(dst)
}

// pathID parses an integer path segment such as {id} or {service_id}.
func pathID(r *http.Request, name string) (int64, error) {
	return strconv.ParseInt(r.PathValue(name), 10, 64)
}

type successResponse struct {
	Success bool `json:"success"`
}

var success = successResponse{Success: true}
