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

// EarningRepo is the storage port for revenue events.
type EarningRepo interface {
	GetEarnings(ctx context.Context, userID string) ([]*model.Earning, error)
	CreateEarning(ctx context.Context, ins *model.InsertEarning) (*model.Earning, error)
}

type EarningRepoImpl struct {
	col *mongo.Collection
}

func NewEarningRepo(db *mongo.Database) EarningRepo {
	return &EarningRepoImpl{col: db.Collection(consts.EarningsCollection)}
}

// GetEarnings scans one owner partition, newest first.
func (s *EarningRepoImpl) GetEarnings(ctx context.Context, userID string) ([]*model.Earning, error) {
	findOptions := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}})

	cursor, err := s.col.Find(ctx, bson.M{"userId": userID}, findOptions)
	if err != nil {
		return nil, errors.Wrap(err, "query earnings")
	}
	defer func() {
		_ = cursor.Close(ctx)
	}()

	earnings := make([]*model.Earning, 0)
	if err := cursor.All(ctx, &earnings); err != nil {
		return nil, errors.Wrap(err, "decode earnings")
	}
	return earnings, nil
}

func (s *EarningRepoImpl) CreateEarning(ctx context.Context, ins *model.InsertEarning) (*model.Earning, error) {
	earning := model.NewEarning(ins)

	opts := options.Replace().SetUpsert(true)
	filter := bson.M{"_id": earning.ID, "userId": earning.UserID}
	if _, err := s.col.ReplaceOne(ctx, filter, earning, opts); err != nil {
		return nil, errors.Wrap(err, "upsert earning")
	}
	return earning, nil
}
