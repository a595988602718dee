package ctrf

import "errors"

type ErrorType string

const (
	ErrorTypeValidation ErrorType = "validation"
	ErrorTypeAPI        ErrorType = "api"
	ErrorTypeNetwork    ErrorType = "network"
	ErrorTypeProcessing ErrorType = "processing"
	ErrorTypeExecution  ErrorType = "execution"
	ErrorTypeUnknown    ErrorType = "unknown"
)

// Error is the typed envelope every stage failure travels in. It replaces
// the loose `{"error": ...}` payloads of the upstream data sources so that
// each stage's contract is enforced by the compiler.
type Error struct {
	Type    ErrorType `json:"error_type" groups:"basic"`
	Message string    `json:"error_message" groups:"basic"`
}

func (e *Error) Error() string {
	return e.Message
}

func NewError(errorType ErrorType, message string) *Error {
	return &Error{Type: errorType, Message: message}
}

// ErrorTypeOf classifies any error into the pipeline taxonomy. Errors that
// did not originate from a stage come back as unknown.
func ErrorTypeOf(err error) ErrorType {
	var stageError *Error
	if errors.As(err, &stageError) {
		return stageError.Type
	}

	return ErrorTypeUnknown
}
