package repository

import (
	"HeidiCore/internal/model"
	"HeidiCore/internal/pkg/consts"
	"context"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// QuestRepo is the storage port for dragon quests.
type QuestRepo interface {
	GetQuests(ctx context.Context, userID string) ([]*model.DragonQuest, error)
	CreateQuest(ctx context.Context, ins *model.InsertQuest) (*model.DragonQuest, error)
	UpdateQuest(ctx context.Context, id string, patch *model.QuestPatch) (*model.DragonQuest, error)
}

type QuestRepoImpl struct {
	col *mongo.Collection
}

func NewQuestRepo(db *mongo.Database) QuestRepo {
	return &QuestRepoImpl{col: db.Collection(consts.QuestsCollection)}
}

func (s *QuestRepoImpl) GetQuests(ctx context.Context, userID string) ([]*model.DragonQuest, error) {
	cursor, err := s.col.Find(ctx, bson.M{"userId": userID})
	if err != nil {
		return nil, errors.Wrap(err, "query quests")
	}
	defer func() {
		_ = cursor.Close(ctx)
	}()

	quests := make([]*model.DragonQuest, 0)
	if err := cursor.All(ctx, &quests); err != nil {
		return nil, errors.Wrap(err, "decode quests")
	}
	return quests, nil
}

func (s *QuestRepoImpl) CreateQuest(ctx context.Context, ins *model.InsertQuest) (*model.DragonQuest, error) {
	quest := model.NewQuest(ins)

	opts := options.Replace().SetUpsert(true)
	filter := bson.M{"_id": quest.ID, "userId": quest.UserID}
	if _, err := s.col.ReplaceOne(ctx, filter, quest, opts); err != nil {
		return nil, errors.Wrap(err, "upsert quest")
	}
	return quest, nil
}

// UpdateQuest is a cross-partition query-then-replace, same as UpdateTier.
// Progress reaching the target does not touch status; claiming is always an
// explicit status field in the patch.
func (s *QuestRepoImpl) UpdateQuest(ctx context.Context, id string, patch *model.QuestPatch) (*model.DragonQuest, error) {
	quest := &model.DragonQuest{}
	err := s.col.FindOne(ctx, bson.M{"_id": id}).Decode(quest)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, errors.Wrap(err, "query quest by id")
	}

	patch.Apply(quest)

	opts := options.Replace().SetUpsert(true)
	filter := bson.M{"_id": quest.ID, "userId": quest.UserID}
	if _, err := s.col.ReplaceOne(ctx, filter, quest, opts); err != nil {
		return nil, errors.Wrap(err, "upsert quest")
	}
	return quest, nil
}
