package errors

import (
	stderrors "errors"
	"net/http"
)

// Kind classifies a failure for logging. Every kind is handled the same way:
// log, skip the unit of work, carry on.
type Kind string

const (
	// KindRemote covers network and service errors from the identity provider or the record store.
	KindRemote Kind = "remote_call_failed"
	// KindMalformed covers events missing required identifiers or attributes.
	KindMalformed Kind = "malformed_input"
	// KindUnknown is reported for errors that were never classified.
	KindUnknown Kind = "unknown"
)

// Error wraps an underlying error with its Kind and the operation that failed.
type Error struct {
	Kind Kind
	Op   string
	Err  error
}

func (e *Error) Error() string {
	if e.Err == nil {
		return e.Op
	}
	return e.Op + ": " + e.Err.Error()
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Remote marks err as a failed remote call performed by op.
func Remote(op string, err error) error {
	if err == nil {
		return nil
	}
	return &Error{Kind: KindRemote, Op: op, Err: err}
}

// Malformed marks err as an input validation failure detected by op.
func Malformed(op string, err error) error {
	if err == nil {
		return nil
	}
	return &Error{Kind: KindMalformed, Op: op, Err: err}
}

// KindOf returns the Kind of the first classified error in err's chain.
func KindOf(err error) Kind {
	var classified *Error
	if stderrors.As(err, &classified) {
		return classified.Kind
	}
	return KindUnknown
}

// ErrorResponse represents the error envelope returned by the local invoke endpoint.
type ErrorResponse struct {
	Code      string `json:"code"`
	Message   string `json:"message"`
	RequestID string `json:"requestId,omitempty"`
}

// ToStatusCode maps an error code to an HTTP status for default responses.
func ToStatusCode(code string) int {
	switch code {
	case "not_found":
		return http.StatusNotFound
	case "bad_request":
		return http.StatusBadRequest
	case "method_not_allowed":
		return http.StatusMethodNotAllowed
	default:
		return http.StatusInternalServerError
	}
}
