package handler

import (
	"HeidiCore/internal/model"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupUserRouter(repo *fakeUserRepo) *gin.Engine {
	h := NewUserHandler(repo)
	r := gin.New()
	r.GET("/api/user/:id", h.GetUser)
	r.PATCH("/api/user/:id", h.UpdateUser)
	return r
}

func TestGetUser(t *testing.T) {
	user := model.NewUser(&model.InsertUser{Username: "commander_john", Password: "secret-hash"})
	r := setupUserRouter(newFakeUserRepo(user))

	t.Run("returns the profile without the password", func(t *testing.T) {
		w := performRequest(r, http.MethodGet, "/api/user/"+user.ID, nil)
		require.Equal(t, http.StatusOK, w.Code)

		body := decodeBody(w)
		assert.Equal(t, user.ID, body["id"])
		assert.Equal(t, "commander_john", body["username"])
		assert.NotContains(t, body, "password")
		assert.NotContains(t, w.Body.String(), "secret-hash")
	})

	t.Run("unknown id is 404", func(t *testing.T) {
		w := performRequest(r, http.MethodGet, "/api/user/nope", nil)
		require.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, "User not found", decodeBody(w)["message"])
	})
}

func TestUpdateUser(t *testing.T) {
	t.Run("merges only the supplied fields", func(t *testing.T) {
		user := model.NewUser(&model.InsertUser{Username: "commander_john", Password: "hash"})
		r := setupUserRouter(newFakeUserRepo(user))

		w := performRequest(r, http.MethodPatch, "/api/user/"+user.ID, gin.H{
			"level":      42,
			"pointsTier": "Gold",
		})
		require.Equal(t, http.StatusOK, w.Code)

		body := decodeBody(w)
		assert.EqualValues(t, 42, body["level"])
		assert.Equal(t, "Gold", body["pointsTier"])
		assert.Equal(t, "commander_john", body["username"])
		assert.NotContains(t, body, "password")
	})

	t.Run("toggling a setting off works", func(t *testing.T) {
		user := model.NewUser(&model.InsertUser{Username: "commander_john", Password: "hash"})
		r := setupUserRouter(newFakeUserRepo(user))

		w := performRequest(r, http.MethodPatch, "/api/user/"+user.ID, gin.H{"autoClip": false})
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, false, decodeBody(w)["autoClip"])
	})

	t.Run("unknown id is 404", func(t *testing.T) {
		r := setupUserRouter(newFakeUserRepo())
		w := performRequest(r, http.MethodPatch, "/api/user/nope", gin.H{"level": 2})
		require.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, "User not found", decodeBody(w)["message"])
	})

	t.Run("malformed field type is 400", func(t *testing.T) {
		user := model.NewUser(&model.InsertUser{Username: "commander_john", Password: "hash"})
		r := setupUserRouter(newFakeUserRepo(user))

		w := performRaw(r, http.MethodPatch, "/api/user/"+user.ID, `{"level": "forty-two"}`)
		require.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "invalid request body", decodeBody(w)["message"])
	})
}
