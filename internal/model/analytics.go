package model

import (
	"time"

	"github.com/google/uuid"
)

// AnalyticsSnapshot is one chart point: a metric label (viewers, likes,
// comments), its numeric value and a display bucket (time or day).
type AnalyticsSnapshot struct {
	ID        string    `bson:"_id" json:"id"`
	UserID    string    `bson:"userId" json:"userId"`
	Metric    string    `bson:"metric" json:"metric"`
	Value     float64   `bson:"value" json:"value"`
	Label     string    `bson:"label" json:"label"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
}

type InsertAnalytics struct {
	UserID string  `json:"userId" validate:"required"`
	Metric string  `json:"metric" validate:"required"`
	Value  float64 `json:"value"`
	Label  string  `json:"label" validate:"required"`
}

func NewAnalytics(ins *InsertAnalytics) *AnalyticsSnapshot {
	return &AnalyticsSnapshot{
		ID:        uuid.NewString(),
		UserID:    ins.UserID,
		Metric:    ins.Metric,
		Value:     ins.Value,
		Label:     ins.Label,
		CreatedAt: time.Now().UTC(),
	}
}
