package handler

import (
	"HeidiCore/internal/model"
	"HeidiCore/internal/pkg/response"
	"HeidiCore/internal/pkg/util"
	"HeidiCore/internal/repository"
	"HeidiCore/internal/service"

	"github.com/gin-gonic/gin"
)

type PostHandler struct {
	postRepo repository.PostRepo
}

func NewPostHandler(postRepo repository.PostRepo) *PostHandler {
	return &PostHandler{postRepo: postRepo}
}

func (s *PostHandler) GetPosts(c *gin.Context) {
	posts, err := s.postRepo.GetPosts(c.Request.Context(), c.Param("userId"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, posts)
}

func (s *PostHandler) CreatePost(c *gin.Context) {
	var ins model.InsertPost
	if err := c.ShouldBind(&ins); err != nil {
		response.Error(c, err)
		return
	}
	if err := util.ValidateDTO(&ins); err != nil {
		response.Error(c, err)
		return
	}
	post, err := s.postRepo.CreatePost(c.Request.Context(), &ins)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, post)
}

func (s *PostHandler) LikePost(c *gin.Context) {
	post, err := s.postRepo.LikePost(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	if post == nil {
		response.Error(c, service.ErrPostNotFound)
		return
	}
	response.Success(c, post)
}
