package domain

import "errors"

// Kind is a stable category for programmatic error handling.
// Callers should branch on Kind rather than matching error strings.
type Kind string

const (
	KindCapacity        Kind = "Capacity"
	KindKeyGeneration   Kind = "KeyGeneration"
	KindMessageTooLarge Kind = "MessageTooLarge"
	KindMalformedKey    Kind = "MalformedKey"
	KindFrameCorruption Kind = "FrameCorruption"
	KindInvalidArgument Kind = "InvalidArgument"
)

// Error is the structured error type returned by the core packages.
//
// Op names the operation that failed (e.g. "bits.Pack", "stego.Hide").
// Message is intended for humans; do not match on it.
type Error struct {
	Kind    Kind
	Op      string
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	msg := e.Message
	if e.Op != "" {
		msg = e.Op + ": " + msg
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Cause
}

// NewError returns a structured error without a cause.
func NewError(kind Kind, op, msg string) error {
	return &Error{Kind: kind, Op: op, Message: msg}
}

// WrapError returns a structured error carrying cause.
func WrapError(kind Kind, op, msg string, cause error) error {
	return &Error{Kind: kind, Op: op, Message: msg, Cause: cause}
}

// IsKind reports whether err is (or wraps) an *Error with the given Kind.
func IsKind(err error, kind Kind) bool {
	var e *Error
	if !errors.As(err, &e) {
		return false
	}
	return e.Kind == kind
}

// KindOf returns the Kind of a structured error, or "" if err is not one.
func KindOf(err error) Kind {
	var e *Error
	if !errors.As(err, &e) {
		return ""
	}
	return e.Kind
}
