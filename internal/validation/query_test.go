package validation_test

import (
	"strings"
	"testing"
	"time"

	"meetpulse/internal/config"
	"meetpulse/internal/validation"
)

func newValidator() *validation.QueryValidator {
	return validation.NewQueryValidator(&config.ValidationConfig{
		MinWindow:          time.Minute,
		MaxWindow:          24 * time.Hour,
		DefaultTopLimit:    10,
		MaxTopLimit:        100,
		MaxComponentLength: 16,
	})
}

func TestQueryValidator_ParseWindow(t *testing.T) {
	v := newValidator()

	tests := []struct {
		name    string
		raw     string
		want    time.Duration
		wantErr error
	}{
		{"empty defaults to an hour", "", time.Hour, nil},
		{"duration syntax", "15m", 15 * time.Minute, nil},
		{"compound duration", "1h30m", 90 * time.Minute, nil},
		{"bare minutes", "30", 30 * time.Minute, nil},
		{"lower bound", "1m", time.Minute, nil},
		{"upper bound", "24h", 24 * time.Hour, nil},
		{"below minimum", "30s", 0, validation.ErrWindowOutOfRange},
		{"above maximum", "25h", 0, validation.ErrWindowOutOfRange},
		{"negative", "-5m", 0, validation.ErrWindowOutOfRange},
		{"zero minutes", "0", 0, validation.ErrWindowOutOfRange},
		{"garbage", "soon", 0, validation.ErrInvalidWindow},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := v.ParseWindow(tt.raw)
			if err != tt.wantErr {
				t.Fatalf("ParseWindow(%q) error = %v, want %v", tt.raw, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseWindow(%q) = %v, want %v", tt.raw, got, tt.want)
			}
		})
	}
}

func TestQueryValidator_ValidateComponent(t *testing.T) {
	v := newValidator()

	tests := []struct {
		name    string
		raw     string
		want    string
		wantErr error
	}{
		{"plain", "AUDIO_CAPTURE", "AUDIO_CAPTURE", nil},
		{"trimmed", "  AI  ", "AI", nil},
		{"dots and dashes", "ai.gpt-4", "ai.gpt-4", nil},
		{"empty", "", "", validation.ErrEmptyComponent},
		{"whitespace", "   ", "", validation.ErrEmptyComponent},
		{"too long", strings.Repeat("A", 17), "", validation.ErrComponentTooLong},
		{"slash", "audio/capture", "", validation.ErrInvalidComponent},
		{"space inside", "AUDIO CAPTURE", "", validation.ErrInvalidComponent},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := v.ValidateComponent(tt.raw)
			if err != tt.wantErr {
				t.Fatalf("ValidateComponent(%q) error = %v, want %v", tt.raw, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ValidateComponent(%q) = %q, want %q", tt.raw, got, tt.want)
			}
		})
	}
}

func TestQueryValidator_ParseLimit(t *testing.T) {
	v := newValidator()

	tests := []struct {
		raw     string
		want    int
		wantErr error
	}{
		{"", 10, nil},
		{"5", 5, nil},
		{"100", 100, nil},
		{"101", 0, validation.ErrLimitTooLarge},
		{"0", 0, validation.ErrInvalidLimit},
		{"-3", 0, validation.ErrInvalidLimit},
		{"ten", 0, validation.ErrInvalidLimit},
	}

	for _, tt := range tests {
		got, err := v.ParseLimit(tt.raw)
		if err != tt.wantErr || got != tt.want {
			t.Errorf("ParseLimit(%q) = %d, %v; want %d, %v", tt.raw, got, err, tt.want, tt.wantErr)
		}
	}
}

func TestQueryValidator_ParseOrder(t *testing.T) {
	v := newValidator()

	tests := []struct {
		raw     string
		want    validation.Order
		wantErr error
	}{
		{"", validation.OrderFrequent, nil},
		{"frequent", validation.OrderFrequent, nil},
		{"RECENT", validation.OrderRecent, nil},
		{"oldest", "", validation.ErrUnknownOrder},
	}

	for _, tt := range tests {
		got, err := v.ParseOrder(tt.raw)
		if err != tt.wantErr || got != tt.want {
			t.Errorf("ParseOrder(%q) = %q, %v; want %q, %v", tt.raw, got, err, tt.want, tt.wantErr)
		}
	}
}
