package handler

import (
	"HeidiCore/internal/pkg/llm"
	"HeidiCore/internal/service"
	"context"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubGenerator struct {
	configured bool
	reply      string
}

func (s *stubGenerator) Configured() bool { return s.configured }

func (s *stubGenerator) Chat(_ context.Context, _, _ string, _ float64) (string, error) {
	if !s.configured {
		return "", llm.ErrNotConfigured
	}
	return s.reply, nil
}

func setupHeidiRouter(gen service.Generator) *gin.Engine {
	h := NewHeidiHandler(service.NewHeidiService(gen))
	r := gin.New()
	r.GET("/api/azure/status", h.Status)
	r.POST("/api/ai/chat", h.Chat)
	r.POST("/api/ai/ad-read", h.AdRead)
	r.POST("/api/ai/reply", h.Reply)
	r.POST("/api/ai/clip-post", h.ClipPost)
	r.POST("/api/ai/sponsor-match", h.SponsorMatch)
	r.POST("/api/ai/course-outline", h.CourseOutline)
	return r
}

func TestAzureStatus(t *testing.T) {
	t.Run("configured backend reports ready", func(t *testing.T) {
		r := setupHeidiRouter(&stubGenerator{configured: true})
		w := performRequest(r, http.MethodGet, "/api/azure/status", nil)
		require.Equal(t, http.StatusOK, w.Code)

		body := decodeBody(w)
		assert.Equal(t, true, body["configured"])
		assert.Equal(t, "Azure OpenAI is connected and ready.", body["message"])
	})

	t.Run("unconfigured backend is still a 200", func(t *testing.T) {
		r := setupHeidiRouter(&stubGenerator{configured: false})
		w := performRequest(r, http.MethodGet, "/api/azure/status", nil)
		require.Equal(t, http.StatusOK, w.Code)

		body := decodeBody(w)
		assert.Equal(t, false, body["configured"])
		assert.Contains(t, body["message"], "NOT configured")
	})
}

func TestChatEndpoint(t *testing.T) {
	t.Run("returns the generated reply", func(t *testing.T) {
		r := setupHeidiRouter(&stubGenerator{configured: true, reply: "Here is a plan."})
		w := performRequest(r, http.MethodPost, "/api/ai/chat", gin.H{"prompt": "help me grow"})
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "Here is a plan.", decodeBody(w)["reply"])
	})

	t.Run("missing prompt is 400", func(t *testing.T) {
		r := setupHeidiRouter(&stubGenerator{configured: true})
		w := performRequest(r, http.MethodPost, "/api/ai/chat", gin.H{"personality": "zen"})
		require.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "prompt is required", decodeBody(w)["message"])
	})

	t.Run("unconfigured backend is 500 with the setup hint", func(t *testing.T) {
		r := setupHeidiRouter(&stubGenerator{configured: false})
		w := performRequest(r, http.MethodPost, "/api/ai/chat", gin.H{"prompt": "hi"})
		require.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Contains(t, decodeBody(w)["message"], "AZURE_OPENAI_API_KEY")
	})
}

func TestAdReadEndpoint(t *testing.T) {
	t.Run("returns a script", func(t *testing.T) {
		r := setupHeidiRouter(&stubGenerator{configured: true, reply: "Today's episode is brought to you by..."})
		w := performRequest(r, http.MethodPost, "/api/ai/ad-read", gin.H{"sponsorName": "NordVPN"})
		require.Equal(t, http.StatusOK, w.Code)
		assert.NotEmpty(t, decodeBody(w)["script"])
	})

	t.Run("missing sponsor name is 400", func(t *testing.T) {
		r := setupHeidiRouter(&stubGenerator{configured: true})
		w := performRequest(r, http.MethodPost, "/api/ai/ad-read", gin.H{"sponsorDescription": "a VPN"})
		require.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "sponsorName is required", decodeBody(w)["message"])
	})
}

func TestRemainingGenerationEndpoints(t *testing.T) {
	r := setupHeidiRouter(&stubGenerator{configured: true, reply: "generated"})

	cases := []struct {
		path     string
		body     gin.H
		key      string
		missing  gin.H
		required string
	}{
		{"/api/ai/reply", gin.H{"comment": "love it"}, "reply", gin.H{}, "comment is required"},
		{"/api/ai/clip-post", gin.H{"clipDescription": "clutch"}, "post", gin.H{"platform": "tiktok"}, "clipDescription is required"},
		{"/api/ai/sponsor-match", gin.H{"creatorBio": "streamer"}, "analysis", gin.H{}, "creatorBio is required"},
		{"/api/ai/course-outline", gin.H{"topic": "Streaming 101"}, "outline", gin.H{}, "topic is required"},
	}

	for _, tc := range cases {
		t.Run(tc.path, func(t *testing.T) {
			w := performRequest(r, http.MethodPost, tc.path, tc.body)
			require.Equal(t, http.StatusOK, w.Code)
			assert.Equal(t, "generated", decodeBody(w)[tc.key])

			w = performRequest(r, http.MethodPost, tc.path, tc.missing)
			require.Equal(t, http.StatusBadRequest, w.Code)
			assert.Equal(t, tc.required, decodeBody(w)["message"])
		})
	}
}
