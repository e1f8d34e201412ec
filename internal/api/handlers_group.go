package api

import "HeidiCore/internal/api/handler"

// HandlersGroup bundles every initialized handler for the router.
type HandlersGroup struct {
	UserHandler      *handler.UserHandler
	EarningHandler   *handler.EarningHandler
	TierHandler      *handler.TierHandler
	QuestHandler     *handler.QuestHandler
	PostHandler      *handler.PostHandler
	AnalyticsHandler *handler.AnalyticsHandler
	HeidiHandler     *handler.HeidiHandler
	SeedHandler      *handler.SeedHandler
}
