package publisher

import (
	"errors"
	"fmt"
)

// ErrorKind represents the category of a failed submission.
type ErrorKind int

const (
	// KindTransport covers request construction, connection and body read failures.
	KindTransport ErrorKind = iota
	// KindDecode indicates the response body was not valid JSON.
	KindDecode
	// KindMissingID indicates valid JSON without a truthy "id".
	KindMissingID
)

// String returns a human-readable name for the error kind
func (k ErrorKind) String() string {
	switch k {
	case KindTransport:
		return "transport"
	case KindDecode:
		return "decode"
	case KindMissingID:
		return "missing id"
	default:
		return fmt.Sprintf("ErrorKind(%d)", int(k))
	}
}

// SubmitError describes why a submission was classified as a failure.
type SubmitError struct {
	Kind   ErrorKind
	Status int // HTTP status, 0 when no response was received
	Err    error
}

func (e *SubmitError) Error() string {
	msg := "submit post: " + e.Kind.String()
	if e.Status != 0 {
		msg += fmt.Sprintf(" (status %d)", e.Status)
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *SubmitError) Unwrap() error {
	return e.Err
}

// errNoID is wrapped by KindMissingID errors.
var errNoID = errors.New("response has no id")

// KindOf returns the kind of a submission error and whether err is one.
func KindOf(err error) (ErrorKind, bool) {
	var se *SubmitError
	if errors.As(err, &se) {
		return se.Kind, true
	}
	return 0, false
}
