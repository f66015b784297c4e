package errors

import (
	"errors"
	"fmt"
)

// Exit codes for osbuild-cfg
const (
	ExitSuccess       = 0
	ExitGeneralError  = 1
	ExitParseError    = 2
	ExitPolicyError   = 3
	ExitIOError       = 4
	ExitCommandFailed = 5
)

// CfgError is the base error type for osbuild-cfg
type CfgError struct {
	Code    int
	Message string
	Cause   error
}

func (e *CfgError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *CfgError) Unwrap() error {
	return e.Cause
}

// ExitCode returns the exit code for this error
func (e *CfgError) ExitCode() int {
	return e.Code
}

// New creates a new CfgError
func New(code int, message string) *CfgError {
	return &CfgError{
		Code:    code,
		Message: message,
	}
}

// Wrap wraps an existing error with a CfgError
func Wrap(code int, message string, cause error) *CfgError {
	return &CfgError{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// Parse errors

// ParseError returns an error for a malformed or schema-violating blueprint
func ParseError(path string, cause error) *CfgError {
	return Wrap(ExitParseError, fmt.Sprintf("parsing %s", path), cause)
}

// Policy errors

// UnsupportedUser returns an error for an ssh key targeting a user other than root
func UnsupportedUser(user string) *CfgError {
	return New(ExitPolicyError, fmt.Sprintf("configuring ssh key for non-root user %q is not currently supported", user))
}

// UnsupportedOS returns an error when os-release does not name the expected family
func UnsupportedOS(id, family string) *CfgError {
	return New(ExitPolicyError, fmt.Sprintf("ID/ID_LIKE does not contain %s, unsupported OS %q", family, id))
}

// NotPrivileged returns an error when a real run is attempted without root
func NotPrivileged() *CfgError {
	return New(ExitPolicyError, "this command must be run as root (or use --dry-run-dir)")
}

// DryRunTargetNotEmpty returns an error for a dry-run directory that already has contents
func DryRunTargetNotEmpty(dir string) *CfgError {
	return New(ExitPolicyError, fmt.Sprintf("dry-run directory %s exists and is not empty", dir))
}

// I/O errors

// IOError returns an error for a failed filesystem operation
func IOError(op string, cause error) *CfgError {
	return Wrap(ExitIOError, op, cause)
}

// Execution errors

// CommandFailed returns an error for a queued command that exited unsuccessfully
func CommandFailed(program string, cause error) *CfgError {
	return Wrap(ExitCommandFailed, fmt.Sprintf("running %s failed", program), cause)
}

// GetExitCode extracts the exit code from an error
func GetExitCode(err error) int {
	var cfgErr *CfgError
	if errors.As(err, &cfgErr) {
		return cfgErr.ExitCode()
	}
	return ExitGeneralError
}

// Is checks if an error is of a specific type
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target
func As(err error, target any) bool {
	return errors.As(err, target)
}
