package validation

import (
	"strconv"
	"strings"
	"time"

	"meetpulse/internal/config"
)

type Order string

const (
	OrderFrequent Order = "frequent"
	OrderRecent   Order = "recent"
)

const defaultWindow = time.Hour

// QueryValidator checks query parameters of the read-only telemetry API.
type QueryValidator struct {
	minWindow          time.Duration
	maxWindow          time.Duration
	defaultLimit       int
	maxLimit           int
	maxComponentLength int
}

func NewQueryValidator(cfg *config.ValidationConfig) *QueryValidator {
	return &QueryValidator{
		minWindow:          cfg.MinWindow,
		maxWindow:          cfg.MaxWindow,
		defaultLimit:       cfg.DefaultTopLimit,
		maxLimit:           cfg.MaxTopLimit,
		maxComponentLength: cfg.MaxComponentLength,
	}
}

// ParseWindow accepts Go duration syntax ("15m", "1h30m") or a bare number
// of minutes. An empty value yields one hour.
func (v *QueryValidator) ParseWindow(raw string) (time.Duration, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return defaultWindow, nil
	}

	var window time.Duration
	if minutes, err := strconv.Atoi(raw); err == nil {
		window = time.Duration(minutes) * time.Minute
	} else {
		d, err := time.ParseDuration(raw)
		if err != nil {
			return 0, ErrInvalidWindow
		}
		window = d
	}

	if window < v.minWindow || window > v.maxWindow || window <= 0 {
		return 0, ErrWindowOutOfRange
	}
	return window, nil
}

// ValidateComponent returns the trimmed component name.
func (v *QueryValidator) ValidateComponent(raw string) (string, error) {
	name := strings.TrimSpace(raw)
	if name == "" {
		return "", ErrEmptyComponent
	}
	if len(name) > v.maxComponentLength {
		return "", ErrComponentTooLong
	}
	for _, r := range name {
		if !isComponentRune(r) {
			return "", ErrInvalidComponent
		}
	}
	return name, nil
}

func isComponentRune(r rune) bool {
	switch {
	case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		return true
	case r == '_', r == '-', r == '.':
		return true
	}
	return false
}

func (v *QueryValidator) ParseLimit(raw string) (int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return v.defaultLimit, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n <= 0 {
		return 0, ErrInvalidLimit
	}
	if n > v.maxLimit {
		return 0, ErrLimitTooLarge
	}
	return n, nil
}

func (v *QueryValidator) ParseOrder(raw string) (Order, error) {
	switch Order(strings.ToLower(strings.TrimSpace(raw))) {
	case "", OrderFrequent:
		return OrderFrequent, nil
	case OrderRecent:
		return OrderRecent, nil
	}
	return "", ErrUnknownOrder
}
