package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"droscher.com/Foodgram/pkg/service"
)

var ErrBadRequest = errors.New("malformed request")

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func writeDetail(w http.ResponseWriter, status int, detail string) {
	writeJSON(w, status, map[string]string{"detail": detail})
}

// writeError maps the service error taxonomy onto HTTP responses.
func writeError(w http.ResponseWriter, logger *zap.Logger, err error) {
	switch {
	case errors.Is(err, ErrBadRequest):
		writeDetail(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, service.ErrValidation):
		writeJSON(w, http.StatusBadRequest, service.FieldErrors(err))
	case errors.Is(err, service.ErrAuthenticationRequired):
		writeDetail(w, http.StatusUnauthorized, "Authentication credentials were not provided.")
	case errors.Is(err, service.ErrPermissionDenied):
		writeDetail(w, http.StatusForbidden, "You do not have permission to perform this action.")
	case errors.Is(err, service.ErrNotFound):
		writeDetail(w, http.StatusNotFound, "Not found.")
	case errors.Is(err, service.ErrConflict):
		writeJSON(w, http.StatusBadRequest, map[string]string{"errors": err.Error()})
	default:
		logger.Error("request failed", zap.Error(err))
		writeDetail(w, http.StatusInternalServerError, "internal error")
	}
}

// decodeJSON reads the request body into dst, rejecting unknown fields.
func decodeJSON(r *http.Request, dst any) error {
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()

	if err := decoder.Decode(dst); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) && typeErr.Field != "" {
			return fieldTypeError(typeErr)
		}

		return fmt.Errorf("%w: %s", ErrBadRequest, err.Error())
	}

	return nil
}

// fieldTypeError reports a wrongly typed body value against the request field
// it was meant for. Nested ingredient keys other than amount belong to the
// ingredients list as a whole.
func fieldTypeError(typeErr *json.UnmarshalTypeError) *service.ValidationError {
	field := typeErr.Field

	switch {
	case strings.HasSuffix(field, "."+service.FieldAmount):
		field = service.FieldAmount
	case strings.Contains(field, "."):
		field, _, _ = strings.Cut(field, ".")
	}

	reason := "has the wrong type"

	switch typeErr.Type.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		reason = "must be a positive integer"
	case reflect.String:
		reason = "must be a string"
	case reflect.Slice:
		reason = "must be a list"
	}

	return &service.ValidationError{Field: field, Reason: reason}
}

// pathID parses a numeric path parameter. Anything else cannot name a row.
func pathID(r *http.Request, name string) (uint, error) {
	id, err := strconv.ParseUint(chi.URLParam(r, name), 10, 64)
	if err != nil || id == 0 {
		return 0, service.ErrNotFound
	}

	return uint(id), nil
}

// queryInt reads an optional integer query parameter.
func queryInt(r *http.Request, name string) (*int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil, nil //nolint:nilnil // absent parameter
	}

	value, err := strconv.Atoi(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %s must be an integer", ErrBadRequest, name)
	}

	return &value, nil
}

// queryBool reads an optional boolean query parameter such as 1, 0, true or false.
func queryBool(r *http.Request, name string) (bool, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return false, nil
	}

	value, err := strconv.ParseBool(raw)
	if err != nil {
		return false, fmt.Errorf("%w: %s must be a boolean", ErrBadRequest, name)
	}

	return value, nil
}
