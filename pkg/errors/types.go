// Package errors defines the error taxonomy shared by all sdkui packages:
// configuration errors, transport and server errors from the remote catalog,
// per-candidate scan errors from the local installation tree, and the typed
// exit errors used by the CLI layer.
package errors

import (
	"errors"
	"fmt"
)

// Exit codes for scripting integration.
// These codes allow scripts to distinguish between different failure modes.
const (
	// ExitSuccess indicates all operations completed successfully.
	ExitSuccess = 0

	// ExitPartialFailure indicates some candidate subtrees failed during the
	// local scan but results for the remaining candidates were produced.
	ExitPartialFailure = 1

	// ExitFailure indicates the operation failed entirely.
	// This includes transport failures, server errors, and scan failures.
	ExitFailure = 2

	// ExitConfigError indicates a required configuration value was missing
	// or invalid. The command could not proceed.
	ExitConfigError = 3
)

// ExitError represents a command termination with a specific exit code.
//
// Fields:
//   - Code: Exit code (use ExitSuccess, ExitPartialFailure, ExitFailure, ExitConfigError)
//   - Message: Human-readable error message
//   - Err: Underlying error that caused this exit, may be nil
type ExitError struct {
	// Code is the exit code for the command.
	Code int

	// Message is a human-readable description of why the command failed.
	Message string

	// Err is the underlying error that caused this exit.
	// May be nil if no underlying error exists.
	Err error
}

// Error implements the error interface.
//
// Returns the Message field if set, otherwise returns the underlying error's
// message, or a default message with the exit code.
func (e *ExitError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return fmt.Sprintf("exit code %d", e.Code)
}

// Unwrap returns the underlying error for errors.Is/As support.
func (e *ExitError) Unwrap() error {
	return e.Err
}

// NewExitError creates an ExitError with the given code and underlying error.
//
// Parameters:
//   - code: Exit code (use ExitSuccess, ExitPartialFailure, ExitFailure, ExitConfigError)
//   - err: Underlying error, may be nil
//
// Returns:
//   - *ExitError: New exit error
func NewExitError(code int, err error) *ExitError {
	return &ExitError{Code: code, Err: err}
}

// GetExitCode extracts the exit code from an error.
//
// If err is nil, returns ExitSuccess. If err is (or wraps) an ExitError,
// returns its code. A ConfigError maps to ExitConfigError. Any other error
// maps to ExitFailure.
//
// Parameters:
//   - err: The error to extract code from
//
// Returns:
//   - int: Exit code
func GetExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}

	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}

	var cfgErr *ConfigError
	if errors.As(err, &cfgErr) {
		return ExitConfigError
	}

	return ExitFailure
}

// ConfigError indicates a required configuration value is missing or invalid.
//
// The operation requesting the value cannot proceed and the error is
// reported to the caller without retrying.
//
// Fields:
//   - Key: The configuration key or environment variable that was required
//   - Hint: Optional guidance on how to supply the value
type ConfigError struct {
	// Key is the configuration key or environment variable name.
	Key string

	// Hint optionally explains how to provide the missing value.
	Hint string
}

// Error implements the error interface.
func (e *ConfigError) Error() string {
	if e.Hint != "" {
		return fmt.Sprintf("missing configuration value %s (%s)", e.Key, e.Hint)
	}
	return fmt.Sprintf("missing configuration value %s", e.Key)
}

// IsConfigError checks if err is a ConfigError and returns it.
//
// Parameters:
//   - err: The error to check
//
// Returns:
//   - *ConfigError: The ConfigError if err is one, nil otherwise
//   - bool: true if err is a ConfigError
func IsConfigError(err error) (*ConfigError, bool) {
	var cfgErr *ConfigError
	if errors.As(err, &cfgErr) {
		return cfgErr, true
	}
	return nil, false
}

// TransportError indicates a network-level failure while talking to the
// remote catalog: connection refused, DNS failure, timeout, or a broken
// response body. The caller decides whether to retry; the error is never
// silently swallowed.
//
// Fields:
//   - URL: The request URL that failed
//   - Err: The underlying network error
type TransportError struct {
	// URL is the request URL that failed.
	URL string

	// Err is the underlying network error.
	Err error
}

// Error implements the error interface.
func (e *TransportError) Error() string {
	return fmt.Sprintf("request to %s failed: %v", e.URL, e.Err)
}

// Unwrap returns the underlying error for errors.Is/As support.
func (e *TransportError) Unwrap() error {
	return e.Err
}

// IsTransportError checks if err is a TransportError and returns it.
//
// Parameters:
//   - err: The error to check
//
// Returns:
//   - *TransportError: The TransportError if err is one, nil otherwise
//   - bool: true if err is a TransportError
func IsTransportError(err error) (*TransportError, bool) {
	var tErr *TransportError
	if errors.As(err, &tErr) {
		return tErr, true
	}
	return nil, false
}

// ServerError indicates the remote catalog answered with a non-success
// status code. It is terminal for the request that produced it.
//
// Fields:
//   - URL: The request URL
//   - Status: The numeric HTTP status code
type ServerError struct {
	// URL is the request URL.
	URL string

	// Status is the HTTP status code returned by the server.
	Status int
}

// Error implements the error interface.
func (e *ServerError) Error() string {
	return fmt.Sprintf("server error %d from %s", e.Status, e.URL)
}

// IsServerError checks if err is a ServerError and returns it.
//
// Parameters:
//   - err: The error to check
//
// Returns:
//   - *ServerError: The ServerError if err is one, nil otherwise
//   - bool: true if err is a ServerError
func IsServerError(err error) (*ServerError, bool) {
	var sErr *ServerError
	if errors.As(err, &sErr) {
		return sErr, true
	}
	return nil, false
}

// ScanError indicates a filesystem read failure inside one candidate
// subtree of the local installation directory. Scan errors are isolated
// per candidate: the aggregate scan still returns results for the
// remaining candidates alongside the collected ScanErrors.
//
// Fields:
//   - Candidate: The binary id of the candidate subtree that failed
//   - Err: The underlying filesystem error
type ScanError struct {
	// Candidate is the binary id of the candidate directory that failed.
	Candidate string

	// Err is the underlying filesystem error.
	Err error
}

// Error implements the error interface.
func (e *ScanError) Error() string {
	return fmt.Sprintf("scanning candidate %s: %v", e.Candidate, e.Err)
}

// Unwrap returns the underlying error for errors.Is/As support.
func (e *ScanError) Unwrap() error {
	return e.Err
}

// IsScanError checks if err is a ScanError and returns it.
//
// Parameters:
//   - err: The error to check
//
// Returns:
//   - *ScanError: The ScanError if err is one, nil otherwise
//   - bool: true if err is a ScanError
func IsScanError(err error) (*ScanError, bool) {
	var scErr *ScanError
	if errors.As(err, &scErr) {
		return scErr, true
	}
	return nil, false
}
