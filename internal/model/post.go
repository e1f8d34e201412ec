package model

import (
	"time"

	"github.com/google/uuid"
)

// CommunityPost is a fan post on the creator's community hub. Likes only
// ever grow, one at a time, through the like operation.
type CommunityPost struct {
	ID           string    `bson:"_id" json:"id"`
	UserID       string    `bson:"userId" json:"userId"`
	AuthorName   string    `bson:"authorName" json:"authorName"`
	AuthorAvatar string    `bson:"authorAvatar" json:"authorAvatar"`
	AuthorTier   string    `bson:"authorTier" json:"authorTier"`
	Content      string    `bson:"content" json:"content"`
	Likes        int       `bson:"likes" json:"likes"`
	Replies      int       `bson:"replies" json:"replies"`
	CreatedAt    time.Time `bson:"createdAt" json:"createdAt"`
}

type InsertPost struct {
	UserID       string `json:"userId" validate:"required"`
	AuthorName   string `json:"authorName" validate:"required"`
	AuthorAvatar string `json:"authorAvatar"`
	AuthorTier   string `json:"authorTier"`
	Content      string `json:"content" validate:"required"`
	Likes        int    `json:"likes"`
	Replies      int    `json:"replies"`
}

func NewPost(ins *InsertPost) *CommunityPost {
	authorTier := ins.AuthorTier
	if authorTier == "" {
		authorTier = "Free"
	}

	return &CommunityPost{
		ID:           uuid.NewString(),
		UserID:       ins.UserID,
		AuthorName:   ins.AuthorName,
		AuthorAvatar: ins.AuthorAvatar,
		AuthorTier:   authorTier,
		Content:      ins.Content,
		Likes:        ins.Likes,
		Replies:      ins.Replies,
		CreatedAt:    time.Now().UTC(),
	}
}
