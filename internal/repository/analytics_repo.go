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

// AnalyticsRepo is the storage port for chart snapshots.
type AnalyticsRepo interface {
	// GetAnalytics lists one owner's snapshots, newest first. A non-empty
	// metric narrows the result to rows whose metric field matches.
	GetAnalytics(ctx context.Context, userID string, metric string) ([]*model.AnalyticsSnapshot, error)
	CreateAnalytics(ctx context.Context, ins *model.InsertAnalytics) (*model.AnalyticsSnapshot, error)
}

type AnalyticsRepoImpl struct {
	col *mongo.Collection
}

func NewAnalyticsRepo(db *mongo.Database) AnalyticsRepo {
	return &AnalyticsRepoImpl{col: db.Collection(consts.AnalyticsCollection)}
}

func (s *AnalyticsRepoImpl) GetAnalytics(ctx context.Context, userID string, metric string) ([]*model.AnalyticsSnapshot, error) {
	filter := bson.M{"userId": userID}
	if metric != "" {
		filter["metric"] = metric
	}

	findOptions := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}})

	cursor, err := s.col.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, errors.Wrap(err, "query analytics")
	}
	defer func() {
		_ = cursor.Close(ctx)
	}()

	snapshots := make([]*model.AnalyticsSnapshot, 0)
	if err := cursor.All(ctx, &snapshots); err != nil {
		return nil, errors.Wrap(err, "decode analytics")
	}
	return snapshots, nil
}

func (s *AnalyticsRepoImpl) CreateAnalytics(ctx context.Context, ins *model.InsertAnalytics) (*model.AnalyticsSnapshot, error) {
	snapshot := model.NewAnalytics(ins)

	opts := options.Replace().SetUpsert(true)
	filter := bson.M{"_id": snapshot.ID, "userId": snapshot.UserID}
	if _, err := s.col.ReplaceOne(ctx, filter, snapshot, opts); err != nil {
		return nil, errors.Wrap(err, "upsert analytics snapshot")
	}
	return snapshot, nil
}
