package handler

import (
	"HeidiCore/internal/model"
	"HeidiCore/internal/pkg/response"
	"HeidiCore/internal/pkg/util"
	"HeidiCore/internal/repository"
	"HeidiCore/internal/service"

	"github.com/gin-gonic/gin"
)

type QuestHandler struct {
	questRepo repository.QuestRepo
}

func NewQuestHandler(questRepo repository.QuestRepo) *QuestHandler {
	return &QuestHandler{questRepo: questRepo}
}

func (s *QuestHandler) GetQuests(c *gin.Context) {
	quests, err := s.questRepo.GetQuests(c.Request.Context(), c.Param("userId"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, quests)
}

func (s *QuestHandler) CreateQuest(c *gin.Context) {
	var ins model.InsertQuest
	if err := c.ShouldBind(&ins); err != nil {
		response.Error(c, err)
		return
	}
	if err := util.ValidateDTO(&ins); err != nil {
		response.Error(c, err)
		return
	}
	quest, err := s.questRepo.CreateQuest(c.Request.Context(), &ins)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, quest)
}

func (s *QuestHandler) UpdateQuest(c *gin.Context) {
	var patch model.QuestPatch
	if err := c.ShouldBind(&patch); err != nil {
		response.Error(c, err)
		return
	}
	quest, err := s.questRepo.UpdateQuest(c.Request.Context(), c.Param("id"), &patch)
	if err != nil {
		response.Error(c, err)
		return
	}
	if quest == nil {
		response.Error(c, service.ErrQuestNotFound)
		return
	}
	response.Success(c, quest)
}
