package handler

import (
	"HeidiCore/internal/model"
	"HeidiCore/internal/pkg/response"
	"HeidiCore/internal/pkg/util"
	"HeidiCore/internal/repository"

	"github.com/gin-gonic/gin"
)

type EarningHandler struct {
	earningRepo repository.EarningRepo
}

func NewEarningHandler(earningRepo repository.EarningRepo) *EarningHandler {
	return &EarningHandler{earningRepo: earningRepo}
}

func (s *EarningHandler) GetEarnings(c *gin.Context) {
	earnings, err := s.earningRepo.GetEarnings(c.Request.Context(), c.Param("userId"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, earnings)
}

func (s *EarningHandler) CreateEarning(c *gin.Context) {
	var ins model.InsertEarning
	if err := c.ShouldBind(&ins); err != nil {
		response.Error(c, err)
		return
	}
	if err := util.ValidateDTO(&ins); err != nil {
		response.Error(c, err)
		return
	}
	earning, err := s.earningRepo.CreateEarning(c.Request.Context(), &ins)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, earning)
}
