package metrics

import "time"

// Category groups related operations for averaging.
type Category string

const (
	CategoryAudio         Category = "AUDIO"
	CategoryTranscription Category = "TRANSCRIPTION"
	CategoryAIService     Category = "AI_SERVICE"
	CategoryWebSocket     Category = "WEBSOCKET"
	CategoryDatabase      Category = "DATABASE"
	CategoryHTTP          Category = "HTTP"
	CategorySystem        Category = "SYSTEM"
)

// ComponentMetrics is a point-in-time copy of one category's counters.
type ComponentMetrics struct {
	Category        Category      `json:"category"`
	Count           int64         `json:"count"`
	TotalDuration   time.Duration `json:"total_duration"`
	AverageDuration time.Duration `json:"average_duration"`
	MaxDuration     time.Duration `json:"max_duration"`
}

// AverageMillis is the average duration in milliseconds, 0 when nothing was recorded.
func (m ComponentMetrics) AverageMillis() float64 {
	return float64(m.AverageDuration.Microseconds()) / 1000.0
}

type ErrorKey struct {
	Component string `json:"component"`
	ErrorType string `json:"error_type"`
}

func (k ErrorKey) String() string {
	return k.Component + ":" + k.ErrorType
}
