package model

import (
	"github.com/google/uuid"
)

// SubscriptionTier is a paid membership level with an ordered perk list.
type SubscriptionTier struct {
	ID              string   `bson:"_id" json:"id"`
	UserID          string   `bson:"userId" json:"userId"`
	Name            string   `bson:"name" json:"name"`
	Price           float64  `bson:"price" json:"price"`
	Perks           []string `bson:"perks" json:"perks"`
	IsPopular       bool     `bson:"isPopular" json:"isPopular"`
	SubscriberCount int      `bson:"subscriberCount" json:"subscriberCount"`
}

type InsertTier struct {
	UserID          string   `json:"userId" validate:"required"`
	Name            string   `json:"name" validate:"required"`
	Price           float64  `json:"price" validate:"gte=0"`
	Perks           []string `json:"perks"`
	IsPopular       bool     `json:"isPopular"`
	SubscriberCount int      `json:"subscriberCount"`
}

func NewTier(ins *InsertTier) *SubscriptionTier {
	perks := ins.Perks
	if perks == nil {
		perks = []string{}
	}

	return &SubscriptionTier{
		ID:              uuid.NewString(),
		UserID:          ins.UserID,
		Name:            ins.Name,
		Price:           ins.Price,
		Perks:           perks,
		IsPopular:       ins.IsPopular,
		SubscriberCount: ins.SubscriberCount,
	}
}

type TierPatch struct {
	Name            *string   `json:"name"`
	Price           *float64  `json:"price"`
	Perks           *[]string `json:"perks"`
	IsPopular       *bool     `json:"isPopular"`
	SubscriberCount *int      `json:"subscriberCount"`
}

func (p *TierPatch) Apply(t *SubscriptionTier) {
	if p.Name != nil {
		t.Name = *p.Name
	}
	if p.Price != nil {
		t.Price = *p.Price
	}
	if p.Perks != nil {
		t.Perks = *p.Perks
	}
	if p.IsPopular != nil {
		t.IsPopular = *p.IsPopular
	}
	if p.SubscriberCount != nil {
		t.SubscriberCount = *p.SubscriberCount
	}
}
