package errors

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestRizzoError_Error(t *testing.T) {
	tests := []struct {
		name    string
		err     *RizzoError
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

func TestRizzoError_Unwrap(t *testing.T) {
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

func TestReadError(t *testing.T) {
	cause := fmt.Errorf("permission denied")
	err := ReadError("/home/me/.rizzo.json", cause)

	if err.Code != ExitReadError {
		t.Errorf("Code = %d, want %d", err.Code, ExitReadError)
	}
	if err.Message != "cannot read config file /home/me/.rizzo.json" {
		t.Errorf("Message = %q", err.Message)
	}
	if err.Cause != cause {
		t.Errorf("Cause = %v, want %v", err.Cause, cause)
	}
}

func TestParseError(t *testing.T) {
	cause := fmt.Errorf("unexpected end of JSON input")
	err := ParseError("/src/control/.rizzo.json", cause)

	if err.Code != ExitParseError {
		t.Errorf("Code = %d, want %d", err.Code, ExitParseError)
	}
	want := "could not parse rizzo config /src/control/.rizzo.json: unexpected end of JSON input"
	if got := err.Error(); got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}

func TestDuplicatePort(t *testing.T) {
	err := DuplicatePort("8080", "web")

	if err.Code != ExitDuplicatePort {
		t.Errorf("Code = %d, want %d", err.Code, ExitDuplicatePort)
	}
	if !strings.HasPrefix(err.Message, "host port 8080 on node web is a duplicate.") {
		t.Errorf("Message = %q", err.Message)
	}
	if !strings.Contains(err.Message, "forwarded_ports") {
		t.Errorf("Message should point at forwarded_ports, got %q", err.Message)
	}
}

func TestDuplicateIP(t *testing.T) {
	err := DuplicateIP("10.0.0.5", "db")

	if err.Code != ExitDuplicateIP {
		t.Errorf("Code = %d, want %d", err.Code, ExitDuplicateIP)
	}
	if !strings.HasPrefix(err.Message, "host ip 10.0.0.5 on node db is a duplicate.") {
		t.Errorf("Message = %q", err.Message)
	}
}

func TestConfigError(t *testing.T) {
	cause := fmt.Errorf("not a list")
	err := ConfigError("invalid control_repos", cause)

	if err.Code != ExitConfigError {
		t.Errorf("Code = %d, want %d", err.Code, ExitConfigError)
	}
	if err.Cause != cause {
		t.Errorf("Cause = %v, want %v", err.Cause, cause)
	}
}

func TestGetExitCode(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
	}{
		{
			name:     "RizzoError",
			err:      DuplicatePort("80", "n2"),
			wantCode: ExitDuplicatePort,
		},
		{
			name:     "wrapped RizzoError",
			err:      fmt.Errorf("outer: %w", ParseError("/x", fmt.Errorf("bad"))),
			wantCode: ExitParseError,
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

func TestHasCode(t *testing.T) {
	err := fmt.Errorf("resolve: %w", DuplicateIP("10.0.0.1", "b"))

	if !HasCode(err, ExitDuplicateIP) {
		t.Error("HasCode() should find the wrapped duplicate ip code")
	}
	if HasCode(err, ExitDuplicatePort) {
		t.Error("HasCode() should not match a different code")
	}
	if HasCode(fmt.Errorf("plain"), ExitGeneralError) {
		t.Error("HasCode() should be false for errors without a RizzoError")
	}
}

func TestAs(t *testing.T) {
	rizzoErr := ReadError("/missing", nil)
	wrapped := fmt.Errorf("wrapped: %w", rizzoErr)

	var target *RizzoError
	if !As(wrapped, &target) {
		t.Fatal("As() should return true for wrapped RizzoError")
	}
	if target.Code != ExitReadError {
		t.Errorf("target.Code = %d, want %d", target.Code, ExitReadError)
	}

	if As(fmt.Errorf("regular error"), &target) {
		t.Error("As() should return false for non-RizzoError")
	}
}

func TestErrorChaining(t *testing.T) {
	root := fmt.Errorf("root cause")
	middle := Wrap(ExitConfigError, "config error", root)
	outer := fmt.Errorf("operation failed: %w", middle)

	if !errors.Is(outer, root) {
		t.Error("errors.Is should find root cause")
	}
	if !Is(outer, root) {
		t.Error("Is should find root cause")
	}

	var rizzoErr *RizzoError
	if !errors.As(outer, &rizzoErr) {
		t.Fatal("errors.As should find RizzoError")
	}
	if rizzoErr.Code != ExitConfigError {
		t.Errorf("Code = %d, want %d", rizzoErr.Code, ExitConfigError)
	}
}
