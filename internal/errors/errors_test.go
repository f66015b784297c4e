package errors

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestCfgError_Error(t *testing.T) {
	tests := []struct {
		name    string
		err     *CfgError
		wantMsg string
	}{
		{
			name:    "without cause",
			err:     New(ExitGeneralError, "something went wrong"),
			wantMsg: "something went wrong",
		},
		{
			name:    "with cause",
			err:     Wrap(ExitGeneralError, "operation failed", fmt.Errorf("underlying error")),
			wantMsg: "operation failed: underlying error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.wantMsg {
				t.Errorf("Error() = %q, want %q", got, tt.wantMsg)
			}
		})
	}
}

func TestCfgError_Unwrap(t *testing.T) {
	cause := fmt.Errorf("root cause")
	err := Wrap(ExitGeneralError, "wrapped", cause)

	if unwrapped := err.Unwrap(); unwrapped != cause {
		t.Errorf("Unwrap() = %v, want %v", unwrapped, cause)
	}

	errNoCause := New(ExitGeneralError, "no cause")
	if unwrapped := errNoCause.Unwrap(); unwrapped != nil {
		t.Errorf("Unwrap() = %v, want nil", unwrapped)
	}
}

func TestConstructors(t *testing.T) {
	cause := fmt.Errorf("boom")

	tests := []struct {
		name     string
		err      *CfgError
		wantCode int
		wantMsg  string
	}{
		{"parse", ParseError("bp.toml", cause), ExitParseError, "parsing bp.toml: boom"},
		{"unsupported user", UnsupportedUser("alice"), ExitPolicyError, `configuring ssh key for non-root user "alice" is not currently supported`},
		{"unsupported os", UnsupportedOS("debian", "fedora"), ExitPolicyError, `ID/ID_LIKE does not contain fedora, unsupported OS "debian"`},
		{"not privileged", NotPrivileged(), ExitPolicyError, "this command must be run as root (or use --dry-run-dir)"},
		{"dry run target", DryRunTargetNotEmpty("/tmp/out"), ExitPolicyError, "dry-run directory /tmp/out exists and is not empty"},
		{"io", IOError("reading os-release", cause), ExitIOError, "reading os-release: boom"},
		{"command", CommandFailed("dnf", cause), ExitCommandFailed, "running dnf failed: boom"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.err.Code != tt.wantCode {
				t.Errorf("Code = %d, want %d", tt.err.Code, tt.wantCode)
			}
			if got := tt.err.Error(); got != tt.wantMsg {
				t.Errorf("Error() = %q, want %q", got, tt.wantMsg)
			}
		})
	}
}

func TestCommandFailed_KeepsCause(t *testing.T) {
	cause := fmt.Errorf("exit status 1")
	err := CommandFailed("dnf", cause)

	if err.Cause != cause {
		t.Errorf("Cause = %v, want %v", err.Cause, cause)
	}
	if !strings.Contains(err.Error(), "dnf") {
		t.Errorf("Error() = %q, should name the program", err.Error())
	}
}

func TestGetExitCode(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
	}{
		{
			name:     "CfgError",
			err:      NotPrivileged(),
			wantCode: ExitPolicyError,
		},
		{
			name:     "wrapped CfgError",
			err:      fmt.Errorf("outer: %w", CommandFailed("dnf", nil)),
			wantCode: ExitCommandFailed,
		},
		{
			name:     "regular error",
			err:      fmt.Errorf("some error"),
			wantCode: ExitGeneralError,
		},
		{
			name:     "nil error",
			err:      nil,
			wantCode: ExitGeneralError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := GetExitCode(tt.err); got != tt.wantCode {
				t.Errorf("GetExitCode() = %d, want %d", got, tt.wantCode)
			}
		})
	}
}

func TestIs(t *testing.T) {
	target := fmt.Errorf("target error")
	wrapped := fmt.Errorf("wrapped: %w", target)

	if !Is(wrapped, target) {
		t.Error("Is() should return true for wrapped error")
	}

	other := fmt.Errorf("other error")
	if Is(wrapped, other) {
		t.Error("Is() should return false for different error")
	}
}

func TestErrorChaining(t *testing.T) {
	root := fmt.Errorf("root cause")
	middle := IOError("writing snippet", root)
	outer := fmt.Errorf("rendering blueprint: %w", middle)

	if !errors.Is(outer, root) {
		t.Error("errors.Is should find root cause")
	}

	var cfgErr *CfgError
	if !As(outer, &cfgErr) {
		t.Fatal("As should find CfgError")
	}
	if cfgErr.Code != ExitIOError {
		t.Errorf("Code = %d, want %d", cfgErr.Code, ExitIOError)
	}
}
