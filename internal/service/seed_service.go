package service

import (
	"HeidiCore/internal/model"
	"HeidiCore/internal/pkg/consts"
	"HeidiCore/internal/pkg/security"
	"HeidiCore/internal/repository"
	"context"
	"log/slog"
	"math/rand"
	"time"

	"github.com/google/uuid"
)

// Locker guards the seed route against concurrent bootstrap runs.
type Locker interface {
	TryLock(ctx context.Context, key string, value interface{}, expiration time.Duration, retryTimes int) (bool, error)
	Unlock(ctx context.Context, key string, value interface{})
}

// Registrar announces a new creator to the cross-system de-dupe cache.
type Registrar interface {
	Register(ctx context.Context, email, creatorID string) error
}

type SeedResult struct {
	Message string
	User    *model.User
	Created bool
}

type SeedService interface {
	Seed(ctx context.Context) (*SeedResult, error)
}

type SeedServiceImpl struct {
	userRepo      repository.UserRepo
	earningRepo   repository.EarningRepo
	tierRepo      repository.TierRepo
	questRepo     repository.QuestRepo
	postRepo      repository.PostRepo
	analyticsRepo repository.AnalyticsRepo
	locker        Locker
	registrar     Registrar
}

func NewSeedService(
	userRepo repository.UserRepo,
	earningRepo repository.EarningRepo,
	tierRepo repository.TierRepo,
	questRepo repository.QuestRepo,
	postRepo repository.PostRepo,
	analyticsRepo repository.AnalyticsRepo,
	locker Locker,
	registrar Registrar,
) SeedService {
	return &SeedServiceImpl{
		userRepo:      userRepo,
		earningRepo:   earningRepo,
		tierRepo:      tierRepo,
		questRepo:     questRepo,
		postRepo:      postRepo,
		analyticsRepo: analyticsRepo,
		locker:        locker,
		registrar:     registrar,
	}
}

// Seed bootstraps the demo creator and their dashboard data. Running it again
// is a no-op once the creator exists; upserts make a partially failed run safe
// to retry.
func (s *SeedServiceImpl) Seed(ctx context.Context) (*SeedResult, error) {
	lockValue := uuid.NewString()
	locked, err := s.locker.TryLock(ctx, consts.SeedLockKey, lockValue, 30*time.Second, 1)
	if err != nil {
		return nil, err
	}
	if !locked {
		return nil, ErrSeedInProgress
	}
	defer s.locker.Unlock(ctx, consts.SeedLockKey, lockValue)

	user, err := s.userRepo.GetUserByUsername(ctx, "commander_john")
	if err != nil {
		return nil, err
	}
	if user != nil {
		return &SeedResult{Message: "Already seeded", User: user, Created: false}, nil
	}

	passwordHash, err := security.HashPassword("dragon2026")
	if err != nil {
		return nil, err
	}
	user, err = s.userRepo.CreateUser(ctx, &model.InsertUser{
		Username:    "commander_john",
		Password:    passwordHash,
		DisplayName: "Commander John",
	})
	if err != nil {
		return nil, err
	}

	// Fire-and-forget: the de-dupe cache is best effort and must not delay
	// or fail the seed response.
	go func(creatorID string) {
		regCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 10*time.Second)
		defer cancel()
		if err := s.registrar.Register(regCtx, "commander_john@dragonclantv.ai", creatorID); err != nil {
			slog.Warn("de-dupe cache registration failed", "creator_id", creatorID, "error", err)
		}
	}(user.ID)

	user, err = s.userRepo.UpdateUser(ctx, user.ID, demoProfilePatch())
	if err != nil {
		return nil, err
	}

	for _, ins := range demoEarnings(user.ID) {
		if _, err := s.earningRepo.CreateEarning(ctx, ins); err != nil {
			return nil, err
		}
	}
	for _, ins := range demoTiers(user.ID) {
		if _, err := s.tierRepo.CreateTier(ctx, ins); err != nil {
			return nil, err
		}
	}
	for _, ins := range demoQuests(user.ID) {
		if _, err := s.questRepo.CreateQuest(ctx, ins); err != nil {
			return nil, err
		}
	}
	for _, ins := range demoPosts(user.ID) {
		if _, err := s.postRepo.CreatePost(ctx, ins); err != nil {
			return nil, err
		}
	}
	for _, ins := range demoAnalytics(user.ID) {
		if _, err := s.analyticsRepo.CreateAnalytics(ctx, ins); err != nil {
			return nil, err
		}
	}

	return &SeedResult{Message: "Seeded successfully", User: user, Created: true}, nil
}

func demoProfilePatch() *model.UserPatch {
	level := 42
	dragonPoints := 45200
	pointsTier := "Gold"
	bio := "Building the next generation of content. Powered by Heidi AI."
	avatarURL := "https://i.pravatar.cc/150?u=a042581f4e29026704d"
	stripeConnected := true
	return &model.UserPatch{
		Level:           &level,
		DragonPoints:    &dragonPoints,
		PointsTier:      &pointsTier,
		Bio:             &bio,
		AvatarURL:       &avatarURL,
		StripeConnected: &stripeConnected,
	}
}

func demoEarnings(userID string) []*model.InsertEarning {
	return []*model.InsertEarning{
		{UserID: userID, Type: "subscription", Amount: 19.99, Source: "CryptoKing99", Description: "Tier 2 Sub"},
		{UserID: userID, Type: "tip", Amount: 50.00, Source: "Sarah_Gamer", Description: "Thank you tip"},
		{UserID: userID, Type: "ad", Amount: 12.50, Source: "Pre-roll Placement", Description: "Ad revenue"},
		{UserID: userID, Type: "subscription", Amount: 4.99, Source: "TechNinja", Description: "Tier 1 Sub"},
		{UserID: userID, Type: "merch", Amount: 34.99, Source: "PixelArtist", Description: "Dragon T-Shirt"},
		{UserID: userID, Type: "tip", Amount: 10.00, Source: "SpeedRunnerX", Description: "Quick tip"},
		{UserID: userID, Type: "subscription", Amount: 9.99, Source: "AIEnthusiast", Description: "Tier 2 Sub"},
		{UserID: userID, Type: "ad", Amount: 25.00, Source: "Mid-roll Placement", Description: "Ad revenue"},
	}
}

func demoTiers(userID string) []*model.InsertTier {
	return []*model.InsertTier{
		{UserID: userID, Name: "Supporter", Price: 1.99, Perks: []string{"Ad-free viewing", "Supporter Badge"}, IsPopular: false, SubscriberCount: 520},
		{UserID: userID, Name: "Super Fan", Price: 4.99, Perks: []string{"All Supporter perks", "Exclusive Discord Role", "Early Access to VODs"}, IsPopular: true, SubscriberCount: 340},
		{UserID: userID, Name: "Inner Circle", Price: 19.99, Perks: []string{"All Super Fan perks", "Monthly Q&A Call", "Merch Discounts", "Private Chat"}, IsPopular: false, SubscriberCount: 80},
	}
}

func demoQuests(userID string) []*model.InsertQuest {
	target := 100
	return []*model.InsertQuest{
		{UserID: userID, Title: "Stream for 2 hours", Reward: 500, Progress: 100, Target: &target, Status: model.QuestStatusClaimed},
		{UserID: userID, Title: "Clip 3 viral moments", Reward: 300, Progress: 66, Target: &target, Status: model.QuestStatusActive},
		{UserID: userID, Title: "Refer a creator", Reward: 1000, Progress: 0, Target: &target, Status: model.QuestStatusActive},
		{UserID: userID, Title: "Sell 5 merch items", Reward: 750, Progress: 20, Target: &target, Status: model.QuestStatusActive},
	}
}

func demoPosts(userID string) []*model.InsertPost {
	authors := []struct {
		name   string
		avatar string
		tier   string
	}{
		{"SuperFan_1", "https://i.pravatar.cc/150?u=1", "Tier 3 Sub"},
		{"DragonSlayer", "https://i.pravatar.cc/150?u=2", "Tier 2 Sub"},
		{"NightOwl_X", "https://i.pravatar.cc/150?u=3", "Tier 1 Sub"},
	}
	contents := []string{
		"This latest episode was absolutely insane! The AI clone voice is getting so realistic I can hardly tell the difference anymore. @DragonClan forever!",
		"Just signed up for the Inner Circle tier and the Q&A session was worth every penny. Commander John really knows how to engage with the community.",
		"Anyone else think the Heidi AI merch designs are getting better every week? Just ordered two t-shirts and a poster. The dragon scale one is fire!",
	}

	posts := make([]*model.InsertPost, 0, len(authors))
	for i, author := range authors {
		posts = append(posts, &model.InsertPost{
			UserID:       userID,
			AuthorName:   author.name,
			AuthorAvatar: author.avatar,
			AuthorTier:   author.tier,
			Content:      contents[i],
			Likes:        rand.Intn(300) + 50,
			Replies:      rand.Intn(20),
		})
	}
	return posts
}

func demoAnalytics(userID string) []*model.InsertAnalytics {
	viewerLabels := []string{"00:00", "04:00", "08:00", "12:00", "16:00", "20:00", "23:59"}
	viewerValues := []float64{1200, 800, 2400, 4500, 6800, 9200, 3400}

	days := []string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}
	likesValues := []float64{4000, 3000, 2000, 2780, 1890, 2390, 3490}
	commentsValues := []float64{2400, 1398, 9800, 3908, 4800, 3800, 4300}

	rows := make([]*model.InsertAnalytics, 0, len(viewerLabels)+2*len(days))
	for i, label := range viewerLabels {
		rows = append(rows, &model.InsertAnalytics{UserID: userID, Metric: "viewers", Value: viewerValues[i], Label: label})
	}
	for i, day := range days {
		rows = append(rows, &model.InsertAnalytics{UserID: userID, Metric: "likes", Value: likesValues[i], Label: day})
		rows = append(rows, &model.InsertAnalytics{UserID: userID, Metric: "comments", Value: commentsValues[i], Label: day})
	}
	return rows
}
