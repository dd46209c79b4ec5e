package errors

import (
	stderrors "errors"
	"fmt"
	"testing"
)

func TestErrorFormatting(t *testing.T) {
	plain := New(ErrCodeInvalidGeometry, "mounting height must be positive, got %g", -0.5)
	want := "INVALID_GEOMETRY: mounting height must be positive, got -0.5"
	if plain.Error() != want {
		t.Errorf("Error() = %q, want %q", plain.Error(), want)
	}

	wrapped := Wrap(ErrCodeMalformedTable, stderrors.New("eof"), "reading table")
	if got := wrapped.Error(); got != "MALFORMED_TABLE: reading table: eof" {
		t.Errorf("wrapped Error() = %q", got)
	}
}

func TestIsAndGetCode(t *testing.T) {
	err := New(ErrCodeOutOfRange, "cavity index outside table")

	if !Is(err, ErrCodeOutOfRange) {
		t.Error("Is should match the error's own code")
	}
	if Is(err, ErrCodeInvalidInput) {
		t.Error("Is should not match a different code")
	}
	if Is(stderrors.New("plain"), ErrCodeOutOfRange) {
		t.Error("Is should not match a non-structured error")
	}

	// Code survives wrapping with %w.
	outer := fmt.Errorf("calculate: %w", err)
	if !Is(outer, ErrCodeOutOfRange) {
		t.Error("Is should unwrap fmt-wrapped errors")
	}
	if GetCode(outer) != ErrCodeOutOfRange {
		t.Errorf("GetCode = %q, want OUT_OF_RANGE", GetCode(outer))
	}

	if GetCode(stderrors.New("plain")) != "" {
		t.Error("GetCode on plain error should be empty")
	}
}

func TestUserMessage(t *testing.T) {
	err := New(ErrCodeInvalidPhotometry, "luminous flux must be greater than 0")
	if got := UserMessage(err); got != "luminous flux must be greater than 0" {
		t.Errorf("UserMessage = %q", got)
	}
	if got := UserMessage(stderrors.New("boom")); got != "boom" {
		t.Errorf("UserMessage fallback = %q", got)
	}
}

func TestValidationHelpers(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		wantErr bool
	}{
		{"positive ok", ValidatePositive("room length", 12.5), false},
		{"positive zero", ValidatePositive("room length", 0), true},
		{"non-negative ok", ValidateNonNegative("suspension distance", 0), false},
		{"non-negative fails", ValidateNonNegative("suspension distance", -1), true},
		{"range ok", ValidateRange("ceiling reflectance", 50, 0, 100), false},
		{"range low", ValidateRange("ceiling reflectance", -3, 0, 100), true},
		{"range high", ValidateRange("ceiling reflectance", 101, 0, 100), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if (tt.err != nil) != tt.wantErr {
				t.Errorf("got err=%v, wantErr=%v", tt.err, tt.wantErr)
			}
			if tt.err != nil && !Is(tt.err, ErrCodeInvalidInput) {
				t.Errorf("validation error should carry INVALID_INPUT, got %q", GetCode(tt.err))
			}
		})
	}
}
