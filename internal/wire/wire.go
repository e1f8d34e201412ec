package wire

import (
	"HeidiCore/internal/api"
	"HeidiCore/internal/api/config"
	"HeidiCore/internal/api/handler"
	"HeidiCore/internal/pkg/cache"
	"HeidiCore/internal/pkg/llm"
	"HeidiCore/internal/pkg/redis"
	"HeidiCore/internal/repository"
	"HeidiCore/internal/service"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"
)

// ApplicationContainer holds the top-level components the entrypoint manages.
type ApplicationContainer struct {
	Router *gin.Engine
}

func BuildApplication(db *mongo.Database, rdb *redis.Client, gen *llm.Client, registrar *cache.Registrar, cfg *config.Config) (*ApplicationContainer, error) {
	userRepo := repository.NewUserRepo(db)
	earningRepo := repository.NewEarningRepo(db)
	tierRepo := repository.NewTierRepo(db)
	questRepo := repository.NewQuestRepo(db)
	postRepo := repository.NewPostRepo(db)
	analyticsRepo := repository.NewAnalyticsRepo(db)

	heidiService := service.NewHeidiService(gen)
	seedService := service.NewSeedService(userRepo, earningRepo, tierRepo, questRepo, postRepo, analyticsRepo, rdb, registrar)

	handlers := &api.HandlersGroup{
		UserHandler:      handler.NewUserHandler(userRepo),
		EarningHandler:   handler.NewEarningHandler(earningRepo),
		TierHandler:      handler.NewTierHandler(tierRepo),
		QuestHandler:     handler.NewQuestHandler(questRepo),
		PostHandler:      handler.NewPostHandler(postRepo),
		AnalyticsHandler: handler.NewAnalyticsHandler(analyticsRepo),
		HeidiHandler:     handler.NewHeidiHandler(heidiService),
		SeedHandler:      handler.NewSeedHandler(seedService),
	}

	router := api.SetupRouter(handlers, cfg.JWT.Secret, rdb)

	return &ApplicationContainer{Router: router}, nil
}
