package handler

import (
	"HeidiCore/internal/model"
	"HeidiCore/internal/service"
	"context"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubSeedService struct {
	result *service.SeedResult
	err    error
}

func (s *stubSeedService) Seed(_ context.Context) (*service.SeedResult, error) {
	return s.result, s.err
}

func setupSeedRouter(svc service.SeedService) *gin.Engine {
	h := NewSeedHandler(svc)
	r := gin.New()
	r.POST("/api/seed", h.Seed)
	return r
}

func TestSeedEndpoint(t *testing.T) {
	user := model.NewUser(&model.InsertUser{Username: "commander_john", Password: "hash", DisplayName: "Commander John"})

	t.Run("first run is 201 without the password", func(t *testing.T) {
		r := setupSeedRouter(&stubSeedService{result: &service.SeedResult{
			Message: "Seeded successfully",
			User:    user,
			Created: true,
		}})

		w := performRequest(r, http.MethodPost, "/api/seed", nil)
		require.Equal(t, http.StatusCreated, w.Code)

		body := decodeBody(w)
		assert.Equal(t, "Seeded successfully", body["message"])
		assert.NotContains(t, w.Body.String(), "hash")
	})

	t.Run("repeat run is 200", func(t *testing.T) {
		r := setupSeedRouter(&stubSeedService{result: &service.SeedResult{
			Message: "Already seeded",
			User:    user,
			Created: false,
		}})

		w := performRequest(r, http.MethodPost, "/api/seed", nil)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "Already seeded", decodeBody(w)["message"])
	})

	t.Run("concurrent run is 409", func(t *testing.T) {
		r := setupSeedRouter(&stubSeedService{err: service.ErrSeedInProgress})

		w := performRequest(r, http.MethodPost, "/api/seed", nil)
		require.Equal(t, http.StatusConflict, w.Code)
	})
}
