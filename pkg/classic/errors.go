// Package classic provides classical ciphers behind a uniform byte contract.
package classic

import (
	"errors"
	"fmt"
)

// Error is a cipher error with a structured error code.
type Error struct {
	Code    string // Error code (e.g., "CK-ARG-1001")
	Message string // Human-readable message
	Details string // Optional additional details
	Cause   error  // Underlying error (if any)
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("[%s] %s: %s", e.Code, e.Message, e.Details)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap returns the underlying error for errors.Unwrap() support.
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is implements errors.Is() support. Two errors match when their codes match.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

// NewError creates a new Error with the given code and message.
func NewError(code, message string) *Error {
	return &Error{
		Code:    code,
		Message: message,
	}
}

// WithDetails returns a copy of the error with additional details.
func (e *Error) WithDetails(details string) *Error {
	return &Error{
		Code:    e.Code,
		Message: e.Message,
		Details: details,
		Cause:   e.Cause,
	}
}

// WithCause returns a copy of the error wrapping the given cause.
func (e *Error) WithCause(cause error) *Error {
	return &Error{
		Code:    e.Code,
		Message: e.Message,
		Details: e.Details,
		Cause:   cause,
	}
}

// ErrorCode extracts the error code from err if it is an *Error.
func ErrorCode(err error) string {
	var ce *Error
	if errors.As(err, &ce) {
		return ce.Code
	}
	return ""
}

// ============================================================================
// Argument Errors (ARG)
// ============================================================================

var (
	// ErrEmptyKeyword indicates a Vigenère keyword without any letters.
	ErrEmptyKeyword = NewError("CK-ARG-1001", "keyword must contain at least one letter")

	// ErrEmptyKey indicates a zero-length XOR key.
	ErrEmptyKey = NewError("CK-ARG-1002", "key must not be empty")

	// ErrInvalidAffineKey indicates an affine multiplier that is not coprime with 26.
	ErrInvalidAffineKey = NewError("CK-ARG-1003", "affine multiplier must be coprime with 26")

	// ErrInvalidAlphabet indicates a Polybius alphabet that is not 25 unique letters.
	ErrInvalidAlphabet = NewError("CK-ARG-1004", "alphabet must be 25 unique letters")

	// ErrUnknownCipher indicates an unrecognised cipher type.
	ErrUnknownCipher = NewError("CK-ARG-1005", "unknown cipher type")

	// ErrUnknownPlanet indicates an unrecognised planetary square name.
	ErrUnknownPlanet = NewError("CK-ARG-1006", "unknown planet")

	// ErrEmptyChain indicates a chain built without ciphers.
	ErrEmptyChain = NewError("CK-ARG-1007", "chain must contain at least one cipher")
)

// ============================================================================
// Text Errors (TXT)
// ============================================================================

var (
	// ErrInvalidText indicates decrypted bytes that are not valid UTF-8.
	ErrInvalidText = NewError("CK-TXT-4001", "decrypted bytes are not valid utf-8 text")
)
