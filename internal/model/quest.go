package model

import (
	"github.com/google/uuid"
)

// Quest statuses. Progress reaching the target never auto-claims; claiming
// is always an explicit status update.
const (
	QuestStatusActive  = "active"
	QuestStatusClaimed = "claimed"
)

// DragonQuest is a gamified creator goal with progress in [0, target].
type DragonQuest struct {
	ID       string `bson:"_id" json:"id"`
	UserID   string `bson:"userId" json:"userId"`
	Title    string `bson:"title" json:"title"`
	Reward   int    `bson:"reward" json:"reward"`
	Progress int    `bson:"progress" json:"progress"`
	Target   int    `bson:"target" json:"target"`
	Status   string `bson:"status" json:"status"`
}

// InsertQuest defaults progress 0, target 100, status "active". Target is a
// pointer so an explicit zero is kept.
type InsertQuest struct {
	UserID   string `json:"userId" validate:"required"`
	Title    string `json:"title" validate:"required"`
	Reward   int    `json:"reward"`
	Progress int    `json:"progress"`
	Target   *int   `json:"target"`
	Status   string `json:"status"`
}

func NewQuest(ins *InsertQuest) *DragonQuest {
	target := 100
	if ins.Target != nil {
		target = *ins.Target
	}
	status := ins.Status
	if status == "" {
		status = QuestStatusActive
	}

	return &DragonQuest{
		ID:       uuid.NewString(),
		UserID:   ins.UserID,
		Title:    ins.Title,
		Reward:   ins.Reward,
		Progress: ins.Progress,
		Target:   target,
		Status:   status,
	}
}

type QuestPatch struct {
	Title    *string `json:"title"`
	Reward   *int    `json:"reward"`
	Progress *int    `json:"progress"`
	Target   *int    `json:"target"`
	Status   *string `json:"status"`
}

func (p *QuestPatch) Apply(q *DragonQuest) {
	if p.Title != nil {
		q.Title = *p.Title
	}
	if p.Reward != nil {
		q.Reward = *p.Reward
	}
	if p.Progress != nil {
		q.Progress = *p.Progress
	}
	if p.Target != nil {
		q.Target = *p.Target
	}
	if p.Status != nil {
		q.Status = *p.Status
	}
}
