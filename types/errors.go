package types

import (
	"errors"
	"fmt"
)

// PaykitError is the error type returned by every paykit operation.
type PaykitError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (e *PaykitError) Error() string {
	if e.Code == ErrTransport {
		return "transport error: " + e.Message
	}
	return e.Message
}

// Error codes
const (
	// ErrUnimplemented marks an operation the current configuration cannot
	// perform, e.g. a write on a read-only client.
	ErrUnimplemented = "unimplemented"

	// ErrTransport wraps any failure of the underlying network/storage
	// collaborator. Most user-facing failures carry this code.
	ErrTransport = "transport"
)

// TransportError wraps a lower-level failure message in a PaykitError with
// the transport code.
func TransportError(msg string) *PaykitError {
	return &PaykitError{Code: ErrTransport, Message: msg}
}

// TransportErrorf is TransportError with fmt-style formatting.
func TransportErrorf(format string, args ...any) *PaykitError {
	return TransportError(fmt.Sprintf(format, args...))
}

// UnimplementedError reports that the named operation is not available.
func UnimplementedError(op string) *PaykitError {
	return &PaykitError{Code: ErrUnimplemented, Message: op + " is not implemented"}
}

// IsTransport reports whether err is a paykit transport error.
func IsTransport(err error) bool {
	var pe *PaykitError
	return errors.As(err, &pe) && pe.Code == ErrTransport
}

// PrefixError prepends an operation label to a transport error's message
// without changing its code, keeping the call chain traceable. Other paykit
// errors pass through untouched; non-paykit errors are wrapped as transport
// errors first.
func PrefixError(op string, err error) error {
	if err == nil {
		return nil
	}
	var pe *PaykitError
	if !errors.As(err, &pe) {
		return &PaykitError{Code: ErrTransport, Message: op + ": " + err.Error()}
	}
	if pe.Code != ErrTransport {
		return pe
	}
	return &PaykitError{Code: ErrTransport, Message: op + ": " + pe.Message}
}
