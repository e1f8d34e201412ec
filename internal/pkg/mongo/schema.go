package mongo

import (
	"HeidiCore/internal/pkg/consts"
	"context"
	log "log/slog"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ownerPartitioned lists the collections keyed by userId. The users
// collection is keyed by its own id and only needs the username constraint.
var ownerPartitioned = []string{
	consts.EarningsCollection,
	consts.TiersCollection,
	consts.QuestsCollection,
	consts.PostsCollection,
	consts.AnalyticsCollection,
}

// EnsureSchema creates the per-entity collections and their indexes:
// a unique username index on users, and userId + createdAt indexes on the
// owner-partitioned collections so per-owner scans stay on one partition.
func EnsureSchema(ctx context.Context, db *mongo.Database) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	usernameIdx := mongo.IndexModel{
		Keys:    bson.D{{Key: "username", Value: 1}},
		Options: options.Index().SetUnique(true),
	}
	if _, err := db.Collection(consts.UsersCollection).Indexes().CreateOne(ctx, usernameIdx); err != nil {
		return err
	}

	ownerIdx := mongo.IndexModel{
		Keys: bson.D{{Key: "userId", Value: 1}, {Key: "createdAt", Value: -1}},
	}
	for _, name := range ownerPartitioned {
		if _, err := db.Collection(name).Indexes().CreateOne(ctx, ownerIdx); err != nil {
			return err
		}
	}

	log.Info("Document store schema ensured", "collections", len(ownerPartitioned)+1)
	return nil
}
