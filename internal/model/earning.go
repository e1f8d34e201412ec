package model

import (
	"time"

	"github.com/google/uuid"
)

// Earning is a single revenue event. Type is an open vocabulary:
// subscription, tip, ad, merch.
type Earning struct {
	ID          string    `bson:"_id" json:"id"`
	UserID      string    `bson:"userId" json:"userId"`
	Type        string    `bson:"type" json:"type"`
	Amount      float64   `bson:"amount" json:"amount"`
	Source      string    `bson:"source" json:"source"`
	Description string    `bson:"description" json:"description"`
	CreatedAt   time.Time `bson:"createdAt" json:"createdAt"`
}

type InsertEarning struct {
	UserID      string  `json:"userId" validate:"required"`
	Type        string  `json:"type" validate:"required"`
	Amount      float64 `json:"amount"`
	Source      string  `json:"source" validate:"required"`
	Description string  `json:"description"`
}

func NewEarning(ins *InsertEarning) *Earning {
	return &Earning{
		ID:          uuid.NewString(),
		UserID:      ins.UserID,
		Type:        ins.Type,
		Amount:      ins.Amount,
		Source:      ins.Source,
		Description: ins.Description,
		CreatedAt:   time.Now().UTC(),
	}
}
