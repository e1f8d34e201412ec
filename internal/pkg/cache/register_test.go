package cache

import (
	"HeidiCore/internal/api/config"
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegister(t *testing.T) {
	t.Run("posts email, creatorId and system", func(t *testing.T) {
		var got map[string]string
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			body, _ := io.ReadAll(r.Body)
			_ = json.Unmarshal(body, &got)
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"systems":["dcm","crm"]}`))
		}))
		defer srv.Close()

		registrar := NewRegistrar(config.CacheConfig{RegisterURL: srv.URL})
		err := registrar.Register(context.Background(), "commander_john@dragonclantv.ai", "creator-1")
		require.NoError(t, err)

		assert.Equal(t, "commander_john@dragonclantv.ai", got["email"])
		assert.Equal(t, "creator-1", got["creatorId"])
		assert.Equal(t, "dcm", got["system"])
	})

	t.Run("non-2xx status is an error", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
		}))
		defer srv.Close()

		registrar := NewRegistrar(config.CacheConfig{RegisterURL: srv.URL})
		err := registrar.Register(context.Background(), "a@b.c", "creator-1")
		assert.ErrorContains(t, err, "502")
	})

	t.Run("missing url is an error", func(t *testing.T) {
		registrar := NewRegistrar(config.CacheConfig{})
		err := registrar.Register(context.Background(), "a@b.c", "creator-1")
		assert.Error(t, err)
	})
}
