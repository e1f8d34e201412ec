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

// PostRepo is the storage port for community posts.
type PostRepo interface {
	GetPosts(ctx context.Context, userID string) ([]*model.CommunityPost, error)
	CreatePost(ctx context.Context, ins *model.InsertPost) (*model.CommunityPost, error)
	LikePost(ctx context.Context, id string) (*model.CommunityPost, error)
}

type PostRepoImpl struct {
	col *mongo.Collection
}

func NewPostRepo(db *mongo.Database) PostRepo {
	return &PostRepoImpl{col: db.Collection(consts.PostsCollection)}
}

// GetPosts scans one owner partition, newest first.
func (s *PostRepoImpl) GetPosts(ctx context.Context, userID string) ([]*model.CommunityPost, error) {
	findOptions := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}})

	cursor, err := s.col.Find(ctx, bson.M{"userId": userID}, findOptions)
	if err != nil {
		return nil, errors.Wrap(err, "query posts")
	}
	defer func() {
		_ = cursor.Close(ctx)
	}()

	posts := make([]*model.CommunityPost, 0)
	if err := cursor.All(ctx, &posts); err != nil {
		return nil, errors.Wrap(err, "decode posts")
	}
	return posts, nil
}

func (s *PostRepoImpl) CreatePost(ctx context.Context, ins *model.InsertPost) (*model.CommunityPost, error) {
	post := model.NewPost(ins)

	opts := options.Replace().SetUpsert(true)
	filter := bson.M{"_id": post.ID, "userId": post.UserID}
	if _, err := s.col.ReplaceOne(ctx, filter, post, opts); err != nil {
		return nil, errors.Wrap(err, "upsert post")
	}
	return post, nil
}

// LikePost increments likes by exactly 1 via cross-partition
// query-then-replace. Not a generic counter-add; the step is fixed.
func (s *PostRepoImpl) LikePost(ctx context.Context, id string) (*model.CommunityPost, error) {
	post := &model.CommunityPost{}
	err := s.col.FindOne(ctx, bson.M{"_id": id}).Decode(post)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, errors.Wrap(err, "query post by id")
	}

	post.Likes++

	opts := options.Replace().SetUpsert(true)
	filter := bson.M{"_id": post.ID, "userId": post.UserID}
	if _, err := s.col.ReplaceOne(ctx, filter, post, opts); err != nil {
		return nil, errors.Wrap(err, "upsert post")
	}
	return post, nil
}
