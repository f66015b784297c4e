// Package errors provides typed errors with exit codes for osbuild-cfg.
//
// # Error Types
//
// CfgError is the base error type that wraps an error with an exit code:
//
//	type CfgError struct {
//	    Code    int    // Exit code
//	    Message string // User-facing message
//	    Cause   error  // Wrapped error
//	}
//
// # Exit Codes
//
// Each error category maps to its own exit code:
//
//	ExitSuccess       = 0  // Success
//	ExitGeneralError  = 1  // General/unknown errors
//	ExitParseError    = 2  // Malformed or schema-violating blueprint
//	ExitPolicyError   = 3  // Unsupported user/OS, missing privilege, dirty dry-run dir
//	ExitIOError       = 4  // Filesystem operation failed
//	ExitCommandFailed = 5  // A queued command exited non-zero
//
// Policy errors are always raised before anything is mutated.
//
// # Error Constructors
//
//	errors.ParseError("blueprint.toml", err)
//	errors.UnsupportedUser("alice")
//	errors.IOError("reading /usr/lib/os-release", err)
//	errors.CommandFailed("dnf", err)
//
// # Extracting Exit Codes
//
//	if err != nil {
//	    os.Exit(errors.GetExitCode(err))
//	}
package errors
