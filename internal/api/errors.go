package api

import (
	"encoding/json"
	"net/http"

	apperrors "github.com/matzehuels/bricklayer/pkg/errors"
)

// errorResponse is the body of every failed request.
type errorResponse struct {
	Code    apperrors.Code `json:"code"`
	Message string         `json:"message"`
}

func errNotFound(path string) error {
	return apperrors.New(apperrors.ErrCodeNotFound, "no route for %s", path)
}

// statusFor maps an error code to an HTTP status.
func statusFor(code apperrors.Code) int {
	switch code {
	case apperrors.ErrCodeInvalidInput, apperrors.ErrCodeInvalidDimensions,
		apperrors.ErrCodeInvalidPattern, apperrors.ErrCodeInvalidStrategy,
		apperrors.ErrCodeInvalidFormat:
		return http.StatusBadRequest
	case apperrors.ErrCodeInvalidLayout, apperrors.ErrCodeUnknownBrick,
		apperrors.ErrCodeGenerationFailed, apperrors.ErrCodeSearchExhausted:
		return http.StatusUnprocessableEntity
	case apperrors.ErrCodeNotFound:
		return http.StatusNotFound
	case apperrors.ErrCodeTimeout:
		return http.StatusGatewayTimeout
	}
	return http.StatusInternalServerError
}

// errorBody converts err to the wire form. Errors without a code are
// reported as internal.
func errorBody(err error) errorResponse {
	code := apperrors.GetCode(err)
	if code == "" {
		code = apperrors.ErrCodeInternal
	}
	return errorResponse{Code: code, Message: apperrors.UserMessage(err)}
}

func writeError(w http.ResponseWriter, err error) {
	body := errorBody(err)
	writeJSON(w, statusFor(body.Code), body)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
