package response

import "github.com/gin-gonic/gin"

// Error codes returned in API responses and carried by AppError.
const (
	ErrCodeValidation           = "VALIDATION_ERROR"
	ErrCodeNotFound             = "NOT_FOUND"
	ErrCodeAlreadyExists        = "ALREADY_EXISTS"
	ErrCodeUnauthorized         = "UNAUTHORIZED"
	ErrCodeForbidden            = "FORBIDDEN"
	ErrCodeInternal             = "INTERNAL_ERROR"
	ErrCodeInvalidRole          = "INVALID_ROLE"
	ErrCodeUnknownRole          = "UNKNOWN_ROLE"
	ErrCodeInvalidTrigger       = "INVALID_TRIGGER"
	ErrCodeMalformedTrigger     = "MALFORMED_TRIGGER"
	ErrCodeInvalidAction        = "INVALID_ACTION"
	ErrCodeIncompleteMailAction = "INCOMPLETE_MAIL_ACTION"
	ErrCodeTargetNotFound       = "TARGET_NOT_FOUND"
)

// AppError is the error type carried across the service layer. Handlers map
// its code to an HTTP status.
type AppError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}

// Error implements the error interface
func (e *AppError) Error() string {
	if e.Details != "" {
		return e.Code + ": " + e.Message + " (" + e.Details + ")"
	}
	return e.Code + ": " + e.Message
}

// NewAppError creates a new AppError
func NewAppError(code, message, details string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Details: details,
	}
}

// ErrorDetail represents error details in an API response
type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ErrorResponse represents an error response body
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// SuccessResponse represents a success response body
type SuccessResponse struct {
	Data interface{} `json:"data,omitempty"`
}

// SendError writes a JSON error response
func SendError(c *gin.Context, status int, code, message string) {
	c.JSON(status, ErrorResponse{
		Error: ErrorDetail{
			Code:    code,
			Message: message,
		},
	})
}

// SendSuccess writes a JSON success response
func SendSuccess(c *gin.Context, status int, data interface{}) {
	c.JSON(status, SuccessResponse{Data: data})
}
