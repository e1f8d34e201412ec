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

// UserRepo is the storage port for creator profiles. Absence is (nil, nil),
// never an error; only genuine store faults come back as errors.
type UserRepo interface {
	GetUser(ctx context.Context, id string) (*model.User, error)
	GetUserByUsername(ctx context.Context, username string) (*model.User, error)
	CreateUser(ctx context.Context, ins *model.InsertUser) (*model.User, error)
	UpdateUser(ctx context.Context, id string, patch *model.UserPatch) (*model.User, error)
}

type UserRepoImpl struct {
	col *mongo.Collection
}

func NewUserRepo(db *mongo.Database) UserRepo {
	return &UserRepoImpl{col: db.Collection(consts.UsersCollection)}
}

// GetUser is a point read: users are partitioned by their own id.
func (s *UserRepoImpl) GetUser(ctx context.Context, id string) (*model.User, error) {
	user := &model.User{}
	err := s.col.FindOne(ctx, bson.M{"_id": id}).Decode(user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, errors.Wrap(err, "point-read user")
	}
	return user, nil
}

func (s *UserRepoImpl) GetUserByUsername(ctx context.Context, username string) (*model.User, error) {
	user := &model.User{}
	err := s.col.FindOne(ctx, bson.M{"username": username}).Decode(user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, errors.Wrap(err, "query user by username")
	}
	return user, nil
}

func (s *UserRepoImpl) CreateUser(ctx context.Context, ins *model.InsertUser) (*model.User, error) {
	user := model.NewUser(ins)

	opts := options.Replace().SetUpsert(true)
	if _, err := s.col.ReplaceOne(ctx, bson.M{"_id": user.ID}, user, opts); err != nil {
		return nil, errors.Wrap(err, "upsert user")
	}
	return user, nil
}

// UpdateUser reads the full document, merges the supplied fields over it and
// writes the full replacement back. Id and username partition stay intact.
func (s *UserRepoImpl) UpdateUser(ctx context.Context, id string, patch *model.UserPatch) (*model.User, error) {
	user, err := s.GetUser(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, nil
	}

	patch.Apply(user)

	opts := options.Replace().SetUpsert(true)
	if _, err := s.col.ReplaceOne(ctx, bson.M{"_id": user.ID}, user, opts); err != nil {
		return nil, errors.Wrap(err, "upsert user")
	}
	return user, nil
}
