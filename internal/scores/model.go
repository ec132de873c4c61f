package scores

import (
	"encoding/json"
	"errors"
	"time"
)

// Score kinds.
const (
	KindATS       = "ats"
	KindInterview = "interview"
)

var (
	ErrNotFound     = errors.New("score not found")
	ErrInvalidInput = errors.New("invalid input")
)

// Record is one persisted scoring result. Detail carries the full
// engine output as raw JSON so past reports survive format changes.
type Record struct {
	ID        string          `json:"id"`
	Kind      string          `json:"kind"`
	Score     float64         `json:"score"`
	Detail    json.RawMessage `json:"detail,omitempty"`
	CreatedAt time.Time       `json:"created_at"`
}

func validKind(kind string) bool {
	return kind == KindATS || kind == KindInterview
}
