package handler

import (
	"HeidiCore/internal/api/dto"
	"HeidiCore/internal/pkg/response"
	"HeidiCore/internal/service"

	"github.com/gin-gonic/gin"
)

type SeedHandler struct {
	seedSvc service.SeedService
}

func NewSeedHandler(seedSvc service.SeedService) *SeedHandler {
	return &SeedHandler{seedSvc: seedSvc}
}

// Seed bootstraps the demo creator. 201 on first run, 200 when the data is
// already in place.
func (s *SeedHandler) Seed(c *gin.Context) {
	result, err := s.seedSvc.Seed(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	body := gin.H{
		"message": result.Message,
		"user":    dto.NewUserView(result.User),
	}
	if result.Created {
		response.Created(c, body)
		return
	}
	response.Success(c, body)
}
