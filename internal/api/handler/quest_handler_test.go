package handler

import (
	"HeidiCore/internal/model"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupQuestRouter(repo *fakeQuestRepo) *gin.Engine {
	h := NewQuestHandler(repo)
	r := gin.New()
	r.GET("/api/quests/:userId", h.GetQuests)
	r.POST("/api/quests", h.CreateQuest)
	r.PATCH("/api/quests/:id", h.UpdateQuest)
	return r
}

func TestCreateQuest(t *testing.T) {
	r := setupQuestRouter(&fakeQuestRepo{})

	t.Run("defaults target 100 and status active", func(t *testing.T) {
		w := performRequest(r, http.MethodPost, "/api/quests", gin.H{
			"userId": "u1",
			"title":  "Stream for 2 hours",
			"reward": 500,
		})
		require.Equal(t, http.StatusCreated, w.Code)

		body := decodeBody(w)
		assert.EqualValues(t, 100, body["target"])
		assert.Equal(t, "active", body["status"])
	})

	t.Run("explicit zero target is preserved", func(t *testing.T) {
		w := performRequest(r, http.MethodPost, "/api/quests", gin.H{
			"userId": "u1",
			"title":  "instant quest",
			"target": 0,
		})
		require.Equal(t, http.StatusCreated, w.Code)
		assert.EqualValues(t, 0, decodeBody(w)["target"])
	})

	t.Run("missing title is 400", func(t *testing.T) {
		w := performRequest(r, http.MethodPost, "/api/quests", gin.H{"userId": "u1"})
		require.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "title is required", decodeBody(w)["message"])
	})
}

func TestUpdateQuest(t *testing.T) {
	repo := &fakeQuestRepo{}
	quest, _ := repo.CreateQuest(nil, &model.InsertQuest{UserID: "u1", Title: "Clip 3 viral moments", Reward: 300, Progress: 66})
	r := setupQuestRouter(repo)

	t.Run("claiming sets status without touching progress", func(t *testing.T) {
		w := performRequest(r, http.MethodPatch, "/api/quests/"+quest.ID, gin.H{"status": "claimed"})
		require.Equal(t, http.StatusOK, w.Code)

		body := decodeBody(w)
		assert.Equal(t, "claimed", body["status"])
		assert.EqualValues(t, 66, body["progress"])
	})

	t.Run("unknown quest is 404", func(t *testing.T) {
		w := performRequest(r, http.MethodPatch, "/api/quests/nope", gin.H{"progress": 10})
		require.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, "Quest not found", decodeBody(w)["message"])
	})
}
