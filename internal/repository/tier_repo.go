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

// TierRepo is the storage port for subscription tiers.
type TierRepo interface {
	GetTiers(ctx context.Context, userID string) ([]*model.SubscriptionTier, error)
	CreateTier(ctx context.Context, ins *model.InsertTier) (*model.SubscriptionTier, error)
	UpdateTier(ctx context.Context, id string, patch *model.TierPatch) (*model.SubscriptionTier, error)
}

type TierRepoImpl struct {
	col *mongo.Collection
}

func NewTierRepo(db *mongo.Database) TierRepo {
	return &TierRepoImpl{col: db.Collection(consts.TiersCollection)}
}

func (s *TierRepoImpl) GetTiers(ctx context.Context, userID string) ([]*model.SubscriptionTier, error) {
	cursor, err := s.col.Find(ctx, bson.M{"userId": userID})
	if err != nil {
		return nil, errors.Wrap(err, "query tiers")
	}
	defer func() {
		_ = cursor.Close(ctx)
	}()

	tiers := make([]*model.SubscriptionTier, 0)
	if err := cursor.All(ctx, &tiers); err != nil {
		return nil, errors.Wrap(err, "decode tiers")
	}
	return tiers, nil
}

func (s *TierRepoImpl) CreateTier(ctx context.Context, ins *model.InsertTier) (*model.SubscriptionTier, error) {
	tier := model.NewTier(ins)

	opts := options.Replace().SetUpsert(true)
	filter := bson.M{"_id": tier.ID, "userId": tier.UserID}
	if _, err := s.col.ReplaceOne(ctx, filter, tier, opts); err != nil {
		return nil, errors.Wrap(err, "upsert tier")
	}
	return tier, nil
}

// UpdateTier only knows the tier id, not the owner partition, so the lookup
// is a cross-partition query followed by a full replacement. No secondary
// index by bare id is assumed.
func (s *TierRepoImpl) UpdateTier(ctx context.Context, id string, patch *model.TierPatch) (*model.SubscriptionTier, error) {
	tier := &model.SubscriptionTier{}
	err := s.col.FindOne(ctx, bson.M{"_id": id}).Decode(tier)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, errors.Wrap(err, "query tier by id")
	}

	patch.Apply(tier)

	opts := options.Replace().SetUpsert(true)
	filter := bson.M{"_id": tier.ID, "userId": tier.UserID}
	if _, err := s.col.ReplaceOne(ctx, filter, tier, opts); err != nil {
		return nil, errors.Wrap(err, "upsert tier")
	}
	return tier, nil
}
