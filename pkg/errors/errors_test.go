// pkg/errors/errors_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: None
// PURPOSE: Test error creation, wrapping, and utility functions

package errors_test

import (
	stderrors "errors"
	"testing"

	"github.com/arthur-debert/typofix/pkg/errors"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		code    errors.ErrorCode
		message string
		wantStr string
	}{
		{
			name:    "not_found_error",
			code:    errors.ErrNotFound,
			message: "rule not found",
			wantStr: "[NOT_FOUND] rule not found",
		},
		{
			name:    "invalid_input_error",
			code:    errors.ErrInvalidInput,
			message: "invalid configuration",
			wantStr: "[INVALID_INPUT] invalid configuration",
		},
		{
			name:    "batch_aborted_error",
			code:    errors.ErrBatchAborted,
			message: "batch rolled back",
			wantStr: "[BATCH_ABORTED] batch rolled back",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := errors.New(tt.code, tt.message)

			if err.Code != tt.code {
				t.Errorf("New() code = %v, want %v", err.Code, tt.code)
			}

			if err.Message != tt.message {
				t.Errorf("New() message = %q, want %q", err.Message, tt.message)
			}

			if err.Details == nil {
				t.Error("New() details should be initialized")
			}

			if got := err.Error(); got != tt.wantStr {
				t.Errorf("Error() = %q, want %q", got, tt.wantStr)
			}
		})
	}
}

func TestWrap(t *testing.T) {
	inner := stderrors.New("permission denied")
	err := errors.Wrap(inner, errors.ErrConfigLoad, "failed to read config")

	if got := err.Error(); got != "[CONFIG_LOAD] failed to read config: permission denied" {
		t.Errorf("Error() = %q", got)
	}

	if !stderrors.Is(err, inner) {
		t.Error("wrapped error should satisfy errors.Is for the inner error")
	}

	if errors.Wrap(nil, errors.ErrConfigLoad, "nope") != nil {
		t.Error("Wrap(nil) should return nil")
	}
}

func TestIsByCode(t *testing.T) {
	err := errors.Newf(errors.ErrRuleInvalid, "rule %q has no pattern", "custom")

	if !stderrors.Is(err, errors.New(errors.ErrRuleInvalid, "anything")) {
		t.Error("errors with the same code should satisfy errors.Is")
	}

	if stderrors.Is(err, errors.New(errors.ErrNotFound, "anything")) {
		t.Error("errors with different codes should not satisfy errors.Is")
	}
}

func TestIsErrorCode(t *testing.T) {
	err := errors.New(errors.ErrConfigParse, "bad toml")
	wrapped := errors.Wrap(err, errors.ErrConfigLoad, "loading failed")

	if !errors.IsErrorCode(wrapped, errors.ErrConfigLoad) {
		t.Error("IsErrorCode should match the outermost code")
	}

	if errors.IsErrorCode(stderrors.New("plain"), errors.ErrConfigLoad) {
		t.Error("IsErrorCode should be false for plain errors")
	}
}

func TestGetErrorCode(t *testing.T) {
	if got := errors.GetErrorCode(errors.New(errors.ErrBatchAborted, "x")); got != errors.ErrBatchAborted {
		t.Errorf("GetErrorCode() = %v, want %v", got, errors.ErrBatchAborted)
	}

	if got := errors.GetErrorCode(stderrors.New("plain")); got != errors.ErrUnknown {
		t.Errorf("GetErrorCode(plain) = %v, want %v", got, errors.ErrUnknown)
	}
}

func TestWithDetail(t *testing.T) {
	err := errors.New(errors.ErrRuleInvalid, "bad rule").
		WithDetail("rule", "en_dash").
		WithDetail("pattern", "--")

	details := errors.GetErrorDetails(err)
	if details["rule"] != "en_dash" || details["pattern"] != "--" {
		t.Errorf("details = %v", details)
	}
}
