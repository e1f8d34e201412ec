package handler

import (
	"HeidiCore/internal/api/dto"
	"HeidiCore/internal/pkg/response"
	"HeidiCore/internal/pkg/util"
	"HeidiCore/internal/service"

	"github.com/gin-gonic/gin"
)

type HeidiHandler struct {
	heidiSvc service.HeidiService
}

func NewHeidiHandler(heidiSvc service.HeidiService) *HeidiHandler {
	return &HeidiHandler{heidiSvc: heidiSvc}
}

// Status reports whether the generation backend has credentials. Always 200;
// the body carries the verdict.
func (s *HeidiHandler) Status(c *gin.Context) {
	configured, message := s.heidiSvc.Status()
	response.Success(c, gin.H{
		"configured": configured,
		"message":    message,
	})
}

func (s *HeidiHandler) Chat(c *gin.Context) {
	var req dto.ChatDTO
	if err := bindAndValidate(c, &req); err != nil {
		response.Error(c, err)
		return
	}
	reply, err := s.heidiSvc.Chat(c.Request.Context(), req.Prompt, req.Personality)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, gin.H{"reply": reply})
}

func (s *HeidiHandler) AdRead(c *gin.Context) {
	var req dto.AdReadDTO
	if err := bindAndValidate(c, &req); err != nil {
		response.Error(c, err)
		return
	}
	script, err := s.heidiSvc.AdRead(c.Request.Context(), req.SponsorName, req.SponsorDescription, req.Personality)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, gin.H{"script": script})
}

func (s *HeidiHandler) Reply(c *gin.Context) {
	var req dto.ReplyDTO
	if err := bindAndValidate(c, &req); err != nil {
		response.Error(c, err)
		return
	}
	reply, err := s.heidiSvc.CommentReply(c.Request.Context(), req.Comment, req.Personality)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, gin.H{"reply": reply})
}

func (s *HeidiHandler) ClipPost(c *gin.Context) {
	var req dto.ClipPostDTO
	if err := bindAndValidate(c, &req); err != nil {
		response.Error(c, err)
		return
	}
	post, err := s.heidiSvc.ClipPost(c.Request.Context(), req.ClipDescription, req.Platform)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, gin.H{"post": post})
}

func (s *HeidiHandler) SponsorMatch(c *gin.Context) {
	var req dto.SponsorMatchDTO
	if err := bindAndValidate(c, &req); err != nil {
		response.Error(c, err)
		return
	}
	analysis, err := s.heidiSvc.SponsorMatch(c.Request.Context(), req.CreatorBio, req.AudienceData)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, gin.H{"analysis": analysis})
}

func (s *HeidiHandler) CourseOutline(c *gin.Context) {
	var req dto.CourseOutlineDTO
	if err := bindAndValidate(c, &req); err != nil {
		response.Error(c, err)
		return
	}
	outline, err := s.heidiSvc.CourseOutline(c.Request.Context(), req.Topic, req.Expertise)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, gin.H{"outline": outline})
}

func bindAndValidate(c *gin.Context, req interface{}) error {
	if err := c.ShouldBind(req); err != nil {
		return err
	}
	return util.ValidateDTO(req)
}
