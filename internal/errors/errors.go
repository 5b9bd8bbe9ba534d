package errors

import (
	"errors"
	"fmt"
)

// Exit codes for rzo
const (
	ExitSuccess       = 0
	ExitGeneralError  = 1
	ExitReadError     = 2
	ExitParseError    = 3
	ExitDuplicatePort = 4
	ExitDuplicateIP   = 5
	ExitConfigError   = 6
)

// RizzoError is the base error type for rzo
type RizzoError struct {
	Code    int
	Message string
	Cause   error
}

func (e *RizzoError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *RizzoError) Unwrap() error {
	return e.Cause
}

// ExitCode returns the exit code for this error
func (e *RizzoError) ExitCode() int {
	return e.Code
}

// New creates a new RizzoError
func New(code int, message string) *RizzoError {
	return &RizzoError{
		Code:    code,
		Message: message,
	}
}

// Wrap wraps an existing error with a RizzoError
func Wrap(code int, message string, cause error) *RizzoError {
	return &RizzoError{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// Common error constructors

// ReadError returns an error for a config file that is not a readable regular file
func ReadError(path string, cause error) *RizzoError {
	return Wrap(ExitReadError, fmt.Sprintf("cannot read config file %s", path), cause)
}

// ParseError returns an error for a config file holding malformed JSON
func ParseError(path string, cause error) *RizzoError {
	return Wrap(ExitParseError, fmt.Sprintf("could not parse rizzo config %s", path), cause)
}

// DuplicatePort returns an error for a forwarded host port claimed twice
func DuplicatePort(port, node string) *RizzoError {
	return New(ExitDuplicatePort, fmt.Sprintf("host port %s on node %s is a duplicate. "+
		"Ports must be unique. Check .rizzo.json files in each control repository "+
		"for duplicate forwarded_ports entries", port, node))
}

// DuplicateIP returns an error for an ip address assigned to two nodes
func DuplicateIP(ip, node string) *RizzoError {
	return New(ExitDuplicateIP, fmt.Sprintf("host ip %s on node %s is a duplicate. "+
		"IP addresses must be unique. Check .rizzo.json files in each control repository "+
		"for duplicate ip entries", ip, node))
}

// ConfigError returns an error for configuration issues
func ConfigError(message string, cause error) *RizzoError {
	return Wrap(ExitConfigError, message, cause)
}

// GetExitCode extracts the exit code from an error
func GetExitCode(err error) int {
	var rizzoErr *RizzoError
	if errors.As(err, &rizzoErr) {
		return rizzoErr.ExitCode()
	}
	return ExitGeneralError
}

// HasCode reports whether err carries a RizzoError with the given exit code
func HasCode(err error, code int) bool {
	var rizzoErr *RizzoError
	return errors.As(err, &rizzoErr) && rizzoErr.Code == code
}

// Is checks if an error is of a specific type
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target
func As(err error, target any) bool {
	return errors.As(err, target)
}
