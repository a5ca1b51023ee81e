package errs

import "fmt"

// Kind categorizes application errors for rendering and metrics.
type Kind int

const (
	// Unknown represents an unclassified error.
	Unknown Kind = iota
	// InvalidInput indicates the user input cannot be submitted as is.
	InvalidInput
	// Unreachable indicates the lint API could not be reached.
	Unreachable
	// Timeout indicates the lint API took too long to respond.
	Timeout
	// ParsingFailed indicates the lint API response could not be decoded.
	ParsingFailed
	// Rejected indicates the lint API answered with a non-2xx status.
	Rejected
	// Canceled indicates the caller gave up on the request, e.g. a
	// superseded browser submission.
	Canceled
)

// String returns a short lowercase label, suitable for log and metric values.
func (k Kind) String() string {
	switch k {
	case InvalidInput:
		return "invalid_input"
	case Unreachable:
		return "unreachable"
	case Timeout:
		return "timeout"
	case ParsingFailed:
		return "parsing_failed"
	case Rejected:
		return "rejected"
	case Canceled:
		return "canceled"
	default:
		return "unknown"
	}
}

// AppError carries a category, user message, and original cause.
type AppError struct {
	Kind           Kind
	UpstreamStatus int // HTTP status code returned by the lint API
	Message        string
	Cause          error
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Cause
}
