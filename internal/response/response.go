// Package response defines the JSON envelopes every endpoint answers with.
package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Error codes
const (
	ErrCodeNotFound      = "NOT_FOUND"
	ErrCodeValidation    = "VALIDATION_ERROR"
	ErrCodeUnauthorized  = "UNAUTHORIZED"
	ErrCodeForbidden     = "FORBIDDEN"
	ErrCodeInternal      = "INTERNAL_ERROR"
	ErrCodeRemoteRead    = "REMOTE_READ_ERROR"
	ErrCodeRemoteWrite   = "REMOTE_WRITE_ERROR"
	ErrCodeMalformedData = "MALFORMED_DATA"
)

// AppError is an error carrying an API error code
type AppError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}

func (e *AppError) Error() string {
	if e.Details != "" {
		return e.Code + ": " + e.Message + " (" + e.Details + ")"
	}
	return e.Code + ": " + e.Message
}

// NewAppError creates an AppError
func NewAppError(code, message, details string) *AppError {
	return &AppError{Code: code, Message: message, Details: details}
}

// NewValidationError creates a VALIDATION_ERROR AppError
func NewValidationError(message, details string) *AppError {
	return NewAppError(ErrCodeValidation, message, details)
}

// ErrorBody is the error object inside ErrorResponse
type ErrorBody struct {
	Code    string            `json:"code"`
	Message string            `json:"message"`
	Fields  map[string]string `json:"fields,omitempty"`
}

// ErrorResponse is the failure envelope. Message is the notice shown to the user.
type ErrorResponse struct {
	Success bool      `json:"success"`
	Error   ErrorBody `json:"error"`
	Message string    `json:"message"`
}

// SuccessResponse is the success envelope
type SuccessResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
}

// Notices shown to the user for each error code
var notices = map[string]string{
	ErrCodeNotFound:      "El registro no existe o fue eliminado",
	ErrCodeValidation:    "Revisa los campos del formulario",
	ErrCodeUnauthorized:  "Tu sesión expiró, vuelve a iniciar sesión",
	ErrCodeForbidden:     "No tienes permiso para realizar esta acción",
	ErrCodeInternal:      "Ocurrió un error inesperado",
	ErrCodeRemoteRead:    "Error al cargar los datos",
	ErrCodeRemoteWrite:   "Error al guardar los cambios",
	ErrCodeMalformedData: "Algunos registros tienen un estado desconocido",
}

// Notice returns the user-facing message for code
func Notice(code string) string {
	if n, ok := notices[code]; ok {
		return n
	}
	return notices[ErrCodeInternal]
}

// SendSuccess writes a success envelope
func SendSuccess(c *gin.Context, status int, data interface{}) {
	c.JSON(status, SuccessResponse{Success: true, Data: data})
}

// SendError writes a failure envelope
func SendError(c *gin.Context, status int, code, message string) {
	SendFieldErrors(c, status, code, message, nil)
}

// SendFieldErrors writes a failure envelope with per-field messages
func SendFieldErrors(c *gin.Context, status int, code, message string, fields map[string]string) {
	c.JSON(status, ErrorResponse{
		Success: false,
		Error:   ErrorBody{Code: code, Message: message, Fields: fields},
		Message: Notice(code),
	})
}

// SendNoContent answers 204
func SendNoContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}
