package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"inventory-tracker/internal/middleware"
	"inventory-tracker/internal/model"

	"github.com/rs/zerolog"
)

// MessageResponse is the body of update and delete responses.
type MessageResponse struct {
	Message string `json:"message"`
}

// CreatedResponse is the body of a successful create.
type CreatedResponse struct {
	Message string `json:"message"`
	ID      int64  `json:"id"`
}

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		// Headers are already sent; nothing useful left to tell the client
		return
	}
}

// writeError writes a standardised error body tagged with the request's correlation id.
func writeError(w http.ResponseWriter, r *http.Request, status int, code, message string, logger zerolog.Logger) {
	correlationID := middleware.RequestIDFromContext(r.Context())

	event := logger.Warn()
	if status >= http.StatusInternalServerError {
		event = logger.Error()
	}
	event.Str("code", code).
		Str("error", message).
		Int("status", status).
		Str("request_id", correlationID).
		Msg("handler error")

	writeJSON(w, status, model.ErrorResponse{
		Error:         code,
		Message:       message,
		CorrelationID: correlationID,
	})
}

// respondError renders err. Domain errors keep their code and message;
// anything else is logged and hidden behind a 500.
func respondError(w http.ResponseWriter, r *http.Request, err error, logger zerolog.Logger) {
	de, ok := model.AsDomainError(err)
	if !ok {
		logger.Error().Err(err).Str("path", r.URL.Path).Msg("unexpected error")
		writeError(w, r, http.StatusInternalServerError, model.ErrCodeInternalError, "internal server error", logger)
		return
	}
	writeError(w, r, statusFor(de.Code), de.Code, de.Message, logger)
}

func statusFor(code string) int {
	switch code {
	case model.ErrCodeInvalidJSON,
		model.ErrCodeUnknownField,
		model.ErrCodeMissingField,
		model.ErrCodeInvalidDate,
		model.ErrCodeInvalidID,
		model.ErrCodeInvalidReference:
		return http.StatusBadRequest
	case model.ErrCodeNotFound:
		return http.StatusNotFound
	case model.ErrCodeConflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// decodeJSON decodes a single JSON object from the request body into dst,
// rejecting keys dst does not declare.
func decodeJSON(r *http.Request, dst interface{}) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()

	if err := dec.Decode(dst); err != nil {
		return decodeError(err)
	}
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return model.NewDomainError(model.ErrCodeInvalidJSON, "request body must contain a single JSON object")
	}
	return nil
}

func decodeError(err error) error {
	if de, ok := model.AsDomainError(err); ok {
		return de
	}

	var syntaxErr *json.SyntaxError
	var typeErr *json.UnmarshalTypeError

	switch {
	case errors.Is(err, io.EOF):
		return model.NewDomainError(model.ErrCodeInvalidJSON, "request body is required")
	case errors.As(err, &syntaxErr):
		return model.NewDomainError(model.ErrCodeInvalidJSON,
			fmt.Sprintf("malformed JSON at offset %d", syntaxErr.Offset))
	case errors.As(err, &typeErr):
		if typeErr.Field == "" {
			return model.NewDomainError(model.ErrCodeInvalidJSON, "request body must be a JSON object")
		}
		return model.NewDomainError(model.ErrCodeInvalidJSON,
			fmt.Sprintf("invalid type for field %s: expected %s", typeErr.Field, typeErr.Type))
	case strings.HasPrefix(err.Error(), "json: unknown field "):
		field := strings.TrimPrefix(err.Error(), "json: unknown field ")
		return model.NewDomainError(model.ErrCodeUnknownField, fmt.Sprintf("unknown field %s", field))
	default:
		return model.NewDomainError(model.ErrCodeInvalidJSON, err.Error())
	}
}

// parseID reads the {id} path segment as a base-10 int64.
func parseID(r *http.Request) (int64, error) {
	raw := r.PathValue("id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, model.NewDomainError(model.ErrCodeInvalidID, fmt.Sprintf("invalid id %q", raw))
	}
	return id, nil
}
