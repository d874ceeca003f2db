package api

import (
	"net/http"

	apperrors "github.com/shopworks/storefront-admin/src/internal/errors"
	"github.com/shopworks/storefront-admin/src/internal/log"
)

// ErrorCode represents standard API error codes.
type ErrorCode string

const (
	// ErrCodeInvalidRequest indicates malformed or invalid request data.
	ErrCodeInvalidRequest ErrorCode = "invalid_request"

	// ErrCodeNotFound indicates the requested resource was not found.
	ErrCodeNotFound ErrorCode = "not_found"

	// ErrCodeConflict indicates a resource conflict (e.g., duplicate product id).
	ErrCodeConflict ErrorCode = "conflict"

	// ErrCodeForbidden indicates the admin gate rejected the caller.
	ErrCodeForbidden ErrorCode = "forbidden"

	// ErrCodeMethodNotAllowed indicates the route exists but not for this method.
	ErrCodeMethodNotAllowed ErrorCode = "method_not_allowed"

	// ErrCodeInternalError indicates an internal server error.
	ErrCodeInternalError ErrorCode = "internal_error"
)

// ErrorResponse is the body of every error response.
type ErrorResponse struct {
	Error string    `json:"error"`
	Code  ErrorCode `json:"code"`
	// IP is the resolved caller address, set on admin gate rejections.
	IP string `json:"ip,omitempty"`
}

// WriteError writes an error response to the HTTP response writer.
func WriteError(w http.ResponseWriter, statusCode int, resp ErrorResponse) {
	writeJSON(w, statusCode, resp)
}

// WriteInvalidRequest writes a 400 Bad Request error.
func WriteInvalidRequest(w http.ResponseWriter, message string) {
	WriteError(w, http.StatusBadRequest, ErrorResponse{Error: message, Code: ErrCodeInvalidRequest})
}

// WriteNotFound writes a 404 Not Found error.
func WriteNotFound(w http.ResponseWriter, message string) {
	WriteError(w, http.StatusNotFound, ErrorResponse{Error: message, Code: ErrCodeNotFound})
}

// WriteConflict writes a 409 Conflict error.
func WriteConflict(w http.ResponseWriter, message string) {
	WriteError(w, http.StatusConflict, ErrorResponse{Error: message, Code: ErrCodeConflict})
}

// WriteForbidden writes a 403 Forbidden error carrying the caller address.
func WriteForbidden(w http.ResponseWriter, ip string) {
	WriteError(w, http.StatusForbidden, ErrorResponse{Error: "Access denied", Code: ErrCodeForbidden, IP: ip})
}

// WriteInternalError writes a 500 Internal Server Error.
func WriteInternalError(w http.ResponseWriter, message string) {
	WriteError(w, http.StatusInternalServerError, ErrorResponse{Error: message, Code: ErrCodeInternalError})
}

// writeDomainError maps a domain error to a response. Client errors keep their
// message; storage and internal failures are logged and answered with
// fallback only.
func writeDomainError(w http.ResponseWriter, r *http.Request, err error, fallback string) {
	switch apperrors.CodeOf(err) {
	case apperrors.ErrCodeBadRequest:
		WriteInvalidRequest(w, apperrors.MessageOf(err))
	case apperrors.ErrCodeNotFound:
		WriteNotFound(w, apperrors.MessageOf(err))
	case apperrors.ErrCodeConflict:
		WriteConflict(w, apperrors.MessageOf(err))
	case apperrors.ErrCodeForbidden:
		WriteForbidden(w, callerFromContext(r.Context()))
	default:
		log.Errorf("[%s] %s %s: %v", requestIDFromContext(r.Context()), r.Method, r.URL.Path, err)
		WriteInternalError(w, fallback)
	}
}
