package model

import (
	"github.com/google/uuid"
)

// User is the creator profile. Password is stored as-is by the storage
// layer and redacted once, at the HTTP boundary (dto.UserView).
type User struct {
	ID               string `bson:"_id" json:"id"`
	Username         string `bson:"username" json:"username"`
	Password         string `bson:"password" json:"password"`
	DisplayName      string `bson:"displayName" json:"displayName"`
	Bio              string `bson:"bio" json:"bio"`
	AvatarURL        string `bson:"avatarUrl" json:"avatarUrl"`
	Level            int    `bson:"level" json:"level"`
	DragonPoints     int    `bson:"dragonPoints" json:"dragonPoints"`
	PointsTier       string `bson:"pointsTier" json:"pointsTier"`
	HeidiAutonomy    int    `bson:"heidiAutonomy" json:"heidiAutonomy"`
	HeidiPersonality string `bson:"heidiPersonality" json:"heidiPersonality"`
	HeidiVoice       string `bson:"heidiVoice" json:"heidiVoice"`
	AutoClip         bool   `bson:"autoClip" json:"autoClip"`
	AutoComment      bool   `bson:"autoComment" json:"autoComment"`
	StripeConnected  bool   `bson:"stripeConnected" json:"stripeConnected"`
	PaypalConnected  bool   `bson:"paypalConnected" json:"paypalConnected"`
}

// InsertUser is the caller-supplied subset at creation time.
type InsertUser struct {
	Username    string `json:"username" validate:"required"`
	Password    string `json:"password" validate:"required"`
	DisplayName string `json:"displayName"`
}

// NewUser assigns a fresh identity and the documented defaults.
func NewUser(ins *InsertUser) *User {
	displayName := ins.DisplayName
	if displayName == "" {
		displayName = "Creator"
	}

	return &User{
		ID:               uuid.NewString(),
		Username:         ins.Username,
		Password:         ins.Password,
		DisplayName:      displayName,
		Bio:              "",
		AvatarURL:        "",
		Level:            1,
		DragonPoints:     0,
		PointsTier:       "Bronze",
		HeidiAutonomy:    60,
		HeidiPersonality: "professional",
		HeidiVoice:       "v2",
		AutoClip:         true,
		AutoComment:      false,
		StripeConnected:  false,
		PaypalConnected:  false,
	}
}

// UserPatch is a partial-field merge. Omitted fields stay unchanged; a field
// can only be overridden, never deleted. Identity is not patchable.
type UserPatch struct {
	Username         *string `json:"username"`
	Password         *string `json:"password"`
	DisplayName      *string `json:"displayName"`
	Bio              *string `json:"bio"`
	AvatarURL        *string `json:"avatarUrl"`
	Level            *int    `json:"level"`
	DragonPoints     *int    `json:"dragonPoints"`
	PointsTier       *string `json:"pointsTier"`
	HeidiAutonomy    *int    `json:"heidiAutonomy"`
	HeidiPersonality *string `json:"heidiPersonality"`
	HeidiVoice       *string `json:"heidiVoice"`
	AutoClip         *bool   `json:"autoClip"`
	AutoComment      *bool   `json:"autoComment"`
	StripeConnected  *bool   `json:"stripeConnected"`
	PaypalConnected  *bool   `json:"paypalConnected"`
}

func (p *UserPatch) Apply(u *User) {
	if p.Username != nil {
		u.Username = *p.Username
	}
	if p.Password != nil {
		u.Password = *p.Password
	}
	if p.DisplayName != nil {
		u.DisplayName = *p.DisplayName
	}
	if p.Bio != nil {
		u.Bio = *p.Bio
	}
	if p.AvatarURL != nil {
		u.AvatarURL = *p.AvatarURL
	}
	if p.Level != nil {
		u.Level = *p.Level
	}
	if p.DragonPoints != nil {
		u.DragonPoints = *p.DragonPoints
	}
	if p.PointsTier != nil {
		u.PointsTier = *p.PointsTier
	}
	if p.HeidiAutonomy != nil {
		u.HeidiAutonomy = *p.HeidiAutonomy
	}
	if p.HeidiPersonality != nil {
		u.HeidiPersonality = *p.HeidiPersonality
	}
	if p.HeidiVoice != nil {
		u.HeidiVoice = *p.HeidiVoice
	}
	if p.AutoClip != nil {
		u.AutoClip = *p.AutoClip
	}
	if p.AutoComment != nil {
		u.AutoComment = *p.AutoComment
	}
	if p.StripeConnected != nil {
		u.StripeConnected = *p.StripeConnected
	}
	if p.PaypalConnected != nil {
		u.PaypalConnected = *p.PaypalConnected
	}
}
