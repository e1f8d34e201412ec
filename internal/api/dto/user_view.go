package dto

import (
	"HeidiCore/internal/model"

	"github.com/jinzhu/copier"
)

// UserView is the profile as the API exposes it. Same shape as model.User
// minus the password, which never leaves the server.
type UserView struct {
	ID               string `json:"id"`
	Username         string `json:"username"`
	DisplayName      string `json:"displayName"`
	Bio              string `json:"bio"`
	AvatarURL        string `json:"avatarUrl"`
	Level            int    `json:"level"`
	DragonPoints     int    `json:"dragonPoints"`
	PointsTier       string `json:"pointsTier"`
	HeidiAutonomy    int    `json:"heidiAutonomy"`
	HeidiPersonality string `json:"heidiPersonality"`
	HeidiVoice       string `json:"heidiVoice"`
	AutoClip         bool   `json:"autoClip"`
	AutoComment      bool   `json:"autoComment"`
	StripeConnected  bool   `json:"stripeConnected"`
	PaypalConnected  bool   `json:"paypalConnected"`
}

func NewUserView(user *model.User) *UserView {
	view := &UserView{}
	_ = copier.Copy(view, user)
	return view
}
