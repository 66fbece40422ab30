// Package handlers implements the HTTP endpoints over the domain packages.
package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/byestunting/byestunting/pkg/errors"
)

// ErrorResponse is the standard error body. Details carries the accumulated
// validation messages when present.
type ErrorResponse struct {
	Error   string   `json:"error"`
	Code    string   `json:"code,omitempty"`
	Details []string `json:"details,omitempty"`
}

// writeJSON writes data as a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, statusCode int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if data != nil {
		_ = json.NewEncoder(w).Encode(data)
	}
}

// writeAppError maps an application error onto its HTTP status. Unexpected
// error kinds are masked as a generic 500.
func writeAppError(w http.ResponseWriter, err error) {
	var appErr *errors.AppError
	if !errors.As(err, &appErr) {
		writeJSON(w, http.StatusInternalServerError, ErrorResponse{
			Error: "terjadi kesalahan saat memproses permintaan",
			Code:  string(errors.CodeInternal),
		})
		return
	}

	status := errors.HTTPStatus(appErr.Code)
	if status == http.StatusInternalServerError {
		writeJSON(w, status, ErrorResponse{
			Error: "terjadi kesalahan saat memproses permintaan",
			Code:  string(errors.CodeInternal),
		})
		return
	}

	writeJSON(w, status, ErrorResponse{
		Error:   appErr.Message,
		Code:    string(appErr.Code),
		Details: appErr.Details,
	})
}

// decodeJSON decodes the request body into v, rejecting unknown fields.
func decodeJSON(r *http.Request, v interface{}) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return errors.InvalidParam("body permintaan tidak valid").WithCause(err)
	}
	return nil
}

// intParam parses a numeric chi URL parameter.
func intParam(r *http.Request, name string) (int, error) {
	value, err := strconv.Atoi(chi.URLParam(r, name))
	if err != nil {
		return 0, errors.InvalidParam("parameter " + name + " harus berupa angka")
	}
	return value, nil
}

// queryInt parses an optional integer query parameter, returning 0 when
// absent or unparseable.
func queryInt(r *http.Request, name string) int {
	value, err := strconv.Atoi(r.URL.Query().Get(name))
	if err != nil {
		return 0
	}
	return value
}
