package handler

import (
	"HeidiCore/internal/model"
	"HeidiCore/internal/pkg/response"
	"HeidiCore/internal/pkg/util"
	"HeidiCore/internal/repository"
	"HeidiCore/internal/service"

	"github.com/gin-gonic/gin"
)

type TierHandler struct {
	tierRepo repository.TierRepo
}

func NewTierHandler(tierRepo repository.TierRepo) *TierHandler {
	return &TierHandler{tierRepo: tierRepo}
}

func (s *TierHandler) GetTiers(c *gin.Context) {
	tiers, err := s.tierRepo.GetTiers(c.Request.Context(), c.Param("userId"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, tiers)
}

func (s *TierHandler) CreateTier(c *gin.Context) {
	var ins model.InsertTier
	if err := c.ShouldBind(&ins); err != nil {
		response.Error(c, err)
		return
	}
	if err := util.ValidateDTO(&ins); err != nil {
		response.Error(c, err)
		return
	}
	tier, err := s.tierRepo.CreateTier(c.Request.Context(), &ins)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, tier)
}

func (s *TierHandler) UpdateTier(c *gin.Context) {
	var patch model.TierPatch
	if err := c.ShouldBind(&patch); err != nil {
		response.Error(c, err)
		return
	}
	tier, err := s.tierRepo.UpdateTier(c.Request.Context(), c.Param("id"), &patch)
	if err != nil {
		response.Error(c, err)
		return
	}
	if tier == nil {
		response.Error(c, service.ErrTierNotFound)
		return
	}
	response.Success(c, tier)
}
