package cache

import (
	"HeidiCore/internal/api/config"
	"HeidiCore/internal/pkg/consts"
	"context"
	"fmt"
	log "log/slog"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/goccy/go-json"
)

// Registrar registers new creator emails with the cross-system de-dupe
// cache. Callers treat registration as best-effort: failures are logged by
// the caller, never awaited for correctness.
type Registrar struct {
	client *resty.Client
	url    string
}

func NewRegistrar(cfg config.CacheConfig) *Registrar {
	client := resty.New().
		SetTimeout(10 * time.Second).
		SetHeader("Content-Type", "application/json")

	return &Registrar{
		client: client,
		url:    cfg.RegisterURL,
	}
}

type registerResult struct {
	Systems []string `json:"systems"`
}

// Register posts the email to the de-dupe cache endpoint.
func (r *Registrar) Register(ctx context.Context, email string, creatorID string) error {
	if r.url == "" {
		return fmt.Errorf("de-dupe cache register url not configured")
	}

	resp, err := r.client.R().
		SetContext(ctx).
		SetBody(map[string]string{
			"email":     email,
			"creatorId": creatorID,
			"system":    consts.DedupeSystem,
		}).
		Post(r.url)
	if err != nil {
		return err
	}
	if resp.IsError() {
		return fmt.Errorf("de-dupe cache returned status %d", resp.StatusCode())
	}

	var result registerResult
	_ = json.Unmarshal(resp.Body(), &result)

	log.InfoContext(ctx, "Registered with de-dupe cache",
		"email", email,
		"status", resp.StatusCode(),
		"systems", result.Systems,
	)
	return nil
}
