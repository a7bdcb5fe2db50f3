package bytecodec

import (
	"errors"
	"fmt"
)

// ErrorKind represents the category of a codec failure
type ErrorKind int

const (
	// KindOutOfBoundary indicates a value or buffer range outside the documented bounds
	KindOutOfBoundary ErrorKind = iota
	// KindMalformedHex indicates odd-length input or a non-hex digit
	KindMalformedHex
	// KindMalformedBssid indicates a BSSID that is not six hex octets
	KindMalformedBssid
	// KindInvalidLength indicates a hex array that is not exactly four elements
	KindInvalidLength
	// KindOutOfRange indicates a character outside the Latin-1 range
	KindOutOfRange
	// KindUnsupportedCharset indicates a charset other than UTF-8
	KindUnsupportedCharset
)

// Sentinel errors, one per kind. Every *Error matches its kind's sentinel
// through errors.Is.
var (
	ErrOutOfBoundary      = errors.New("out of boundary")
	ErrMalformedHex       = errors.New("malformed hex")
	ErrMalformedBssid     = errors.New("malformed bssid")
	ErrInvalidLength      = errors.New("invalid length")
	ErrOutOfRange         = errors.New("out of range")
	ErrUnsupportedCharset = errors.New("unsupported charset")
)

// String returns a human-readable name for the error kind
func (k ErrorKind) String() string {
	switch k {
	case KindOutOfBoundary:
		return "OutOfBoundary"
	case KindMalformedHex:
		return "MalformedHex"
	case KindMalformedBssid:
		return "MalformedBssid"
	case KindInvalidLength:
		return "InvalidLength"
	case KindOutOfRange:
		return "OutOfRange"
	case KindUnsupportedCharset:
		return "UnsupportedCharset"
	default:
		return fmt.Sprintf("ErrorKind(%d)", k)
	}
}

func (k ErrorKind) sentinel() error {
	switch k {
	case KindOutOfBoundary:
		return ErrOutOfBoundary
	case KindMalformedHex:
		return ErrMalformedHex
	case KindMalformedBssid:
		return ErrMalformedBssid
	case KindInvalidLength:
		return ErrInvalidLength
	case KindOutOfRange:
		return ErrOutOfRange
	case KindUnsupportedCharset:
		return ErrUnsupportedCharset
	default:
		return nil
	}
}

// Error is the failure returned by every fallible codec operation
type Error struct {
	Kind    ErrorKind // Category of failure
	Op      string    // Operation that failed (e.g. "HexToBytes")
	Message string    // Human-readable detail
	Err     error     // Underlying error (if any)
}

// Error implements the error interface
func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %s (caused by: %v)", e.Op, e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s: %s", e.Op, e.Kind, e.Message)
}

// Unwrap returns the underlying error for error chain inspection
func (e *Error) Unwrap() error {
	return e.Err
}

// Is reports whether target is the sentinel for this error's kind
func (e *Error) Is(target error) bool {
	s := e.Kind.sentinel()
	return s != nil && target == s
}

func newError(kind ErrorKind, op, format string, args ...any) *Error {
	return &Error{
		Kind:    kind,
		Op:      op,
		Message: fmt.Sprintf(format, args...),
	}
}

func wrapError(kind ErrorKind, op string, err error, format string, args ...any) *Error {
	e := newError(kind, op, format, args...)
	e.Err = err
	return e
}

// KindOf extracts the ErrorKind from err, if err is (or wraps) a codec error
func KindOf(err error) (ErrorKind, bool) {
	var ce *Error
	if errors.As(err, &ce) {
		return ce.Kind, true
	}
	return 0, false
}
