package errors

// ErrorCode represents a machine-readable error code.
type ErrorCode string

// Pipeline construction and execution errors
const (
	// ErrCodeAlreadyLinked indicates a stage already has a downstream stage.
	ErrCodeAlreadyLinked ErrorCode = "ALREADY_LINKED"
	// ErrCodeUnsupportedOperation indicates an operation the stage cannot perform,
	// such as pushing into a source.
	ErrCodeUnsupportedOperation ErrorCode = "UNSUPPORTED_OPERATION"
	// ErrCodeInvalidState indicates the pipeline is not in a state that allows the operation.
	ErrCodeInvalidState ErrorCode = "INVALID_STATE"
)

// Validation errors
const (
	// ErrCodeInvalidInput indicates the input is invalid.
	ErrCodeInvalidInput ErrorCode = "INVALID_INPUT"
)

// Internal errors
const (
	// ErrCodeInternal indicates an unexpected internal failure.
	ErrCodeInternal ErrorCode = "INTERNAL_ERROR"
)

// Sentinel values for use with errors.Is. Matching is done on the code only.
var (
	ErrAlreadyLinked        = &AppError{Code: ErrCodeAlreadyLinked}
	ErrUnsupportedOperation = &AppError{Code: ErrCodeUnsupportedOperation}
	ErrInvalidState         = &AppError{Code: ErrCodeInvalidState}
	ErrInvalidInput         = &AppError{Code: ErrCodeInvalidInput}
)
