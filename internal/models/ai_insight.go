package models

import (
	"encoding/json"
	"fmt"
	"time"
)

// InsightResult is the validated payload stored in AIInsight.Result.
type InsightResult struct {
	Score  int    `json:"score"`
	Reason string `json:"reason"`
}

// AIInsight holds the compatibility score and rationale produced for one
// join request. At most one insight exists per request (unique index);
// absence is tolerated when scoring failed.
type AIInsight struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	JoinRequestID uint      `gorm:"uniqueIndex;not null" json:"join_request_id"`
	Score         int       `gorm:"not null" json:"score"` // 0-100
	Result        string    `gorm:"type:text" json:"-"`    // JSON-encoded InsightResult
	Fallback      bool      `gorm:"default:false" json:"fallback"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func (AIInsight) TableName() string { return "ai_insights" }

// SetResult validates and serializes the result payload.
func (i *AIInsight) SetResult(r InsightResult) error {
	if r.Score < 0 || r.Score > 100 {
		return fmt.Errorf("insight score %d out of range [0,100]", r.Score)
	}
	data, err := json.Marshal(r)
	if err != nil {
		return err
	}
	i.Score = r.Score
	i.Result = string(data)
	return nil
}

// ParseResult decodes and validates the stored payload.
func (i *AIInsight) ParseResult() (InsightResult, error) {
	var r InsightResult
	if err := json.Unmarshal([]byte(i.Result), &r); err != nil {
		return r, fmt.Errorf("malformed insight result: %w", err)
	}
	if r.Score < 0 || r.Score > 100 {
		return r, fmt.Errorf("insight score %d out of range [0,100]", r.Score)
	}
	return r, nil
}

// MarshalJSON exposes the parsed result instead of the raw column.
func (i AIInsight) MarshalJSON() ([]byte, error) {
	type alias AIInsight
	out := struct {
		alias
		Result *InsightResult `json:"result,omitempty"`
	}{alias: alias(i)}
	if r, err := i.ParseResult(); err == nil {
		out.Result = &r
	}
	return json.Marshal(out)
}
