package handler

import (
	"HeidiCore/internal/api/dto"
	"HeidiCore/internal/model"
	"HeidiCore/internal/pkg/response"
	"HeidiCore/internal/repository"
	"HeidiCore/internal/service"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	userRepo repository.UserRepo
}

func NewUserHandler(userRepo repository.UserRepo) *UserHandler {
	return &UserHandler{userRepo: userRepo}
}

func (s *UserHandler) GetUser(c *gin.Context) {
	user, err := s.userRepo.GetUser(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	if user == nil {
		response.Error(c, service.ErrUserNotFound)
		return
	}
	response.Success(c, dto.NewUserView(user))
}

func (s *UserHandler) UpdateUser(c *gin.Context) {
	var patch model.UserPatch
	if err := c.ShouldBind(&patch); err != nil {
		response.Error(c, err)
		return
	}
	user, err := s.userRepo.UpdateUser(c.Request.Context(), c.Param("id"), &patch)
	if err != nil {
		response.Error(c, err)
		return
	}
	if user == nil {
		response.Error(c, service.ErrUserNotFound)
		return
	}
	response.Success(c, dto.NewUserView(user))
}
