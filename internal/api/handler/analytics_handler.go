package handler

import (
	"HeidiCore/internal/pkg/response"
	"HeidiCore/internal/repository"

	"github.com/gin-gonic/gin"
)

type AnalyticsHandler struct {
	analyticsRepo repository.AnalyticsRepo
}

func NewAnalyticsHandler(analyticsRepo repository.AnalyticsRepo) *AnalyticsHandler {
	return &AnalyticsHandler{analyticsRepo: analyticsRepo}
}

// GetAnalytics lists snapshots for a creator, optionally narrowed by the
// metric query parameter.
func (s *AnalyticsHandler) GetAnalytics(c *gin.Context) {
	snapshots, err := s.analyticsRepo.GetAnalytics(c.Request.Context(), c.Param("userId"), c.Query("metric"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, snapshots)
}
