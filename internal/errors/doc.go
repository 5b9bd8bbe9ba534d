// Package errors provides typed errors with exit codes for rzo.
//
// # Error Types
//
// RizzoError is the base error type that wraps an error with an exit code:
//
//	type RizzoError struct {
//	    Code    int    // Exit code
//	    Message string // User-facing message
//	    Cause   error  // Wrapped error
//	}
//
// # Exit Codes
//
// Each error kind of the resolution pipeline has its own exit code:
//
//	ExitSuccess       = 0 // Success
//	ExitGeneralError  = 1 // General/unknown errors
//	ExitReadError     = 2 // Config file missing or unreadable
//	ExitParseError    = 3 // Config file is not valid JSON
//	ExitDuplicatePort = 4 // Forwarded host port used twice
//	ExitDuplicateIP   = 5 // Node ip used twice
//	ExitConfigError   = 6 // Personal config or CLI settings invalid
//
// # Error Constructors
//
//	errors.ReadError("/home/me/.rizzo.json", err)
//	errors.ParseError("/src/control/.rizzo.json", err)
//	errors.DuplicatePort("8080", "web")
//	errors.DuplicateIP("10.0.0.5", "db")
//
// # Extracting Exit Codes
//
//	if err != nil {
//	    os.Exit(errors.GetExitCode(err))
//	}
package errors
