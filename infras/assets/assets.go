package assets

//go:generate go run go.uber.org/mock/mockgen -source=./assets.go -destination=./mocks/assets_mock.go -package=mocks

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"biletado/config"
	"biletado/infras/otel"
	"biletado/shared/constant"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// Assets queries the external asset-management service that owns room
// identities. It is read-only: the reservations backend never mutates rooms.
type Assets interface {
	// RoomExists reports whether the room exists and is not itself deleted.
	// A non-200 response or an unparseable body means the room is invalid;
	// a transport error is returned so the caller can decide how
	// conservatively to treat it.
	RoomExists(ctx context.Context, roomID uuid.UUID) (bool, error)

	// Ready probes the registry's own readiness endpoint. Every failure is
	// converted to false; probes never raise.
	Ready(ctx context.Context) bool
}

type room struct {
	ID        uuid.UUID  `json:"id"`
	DeletedAt *time.Time `json:"deleted_at"`
}

type readiness struct {
	Ready bool `json:"ready"`
}

type clientImpl struct {
	cfg    *config.Config
	client *http.Client
	otel   otel.Otel
}

func New(cfg *config.Config, otl otel.Otel) Assets {
	return &clientImpl{
		cfg: cfg,
		client: &http.Client{
			Timeout: time.Duration(cfg.External.Assets.TimeoutSeconds) * time.Second,
		},
		otel: otl,
	}
}

func (c *clientImpl) RoomExists(ctx context.Context, roomID uuid.UUID) (exists bool, err error) {
	ctx, scope := c.otel.NewScope(ctx, constant.OtelExternalScopeName, constant.OtelExternalScopeName+".assets.RoomExists")
	defer scope.End()
	defer scope.TraceIfError(err)

	url := c.cfg.External.Assets.BaseURL + c.cfg.External.Assets.RoomPath + "/" + roomID.String()
	scope.SetAttribute("http.url", url)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return false, fmt.Errorf("failed to build room request: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		log.Error().Err(err).Str("roomId", roomID.String()).Msg("failed to reach assets service")

		return false, fmt.Errorf("failed to query assets service: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		log.Debug().Int("status", resp.StatusCode).Str("roomId", roomID.String()).Msg("assets service reports room invalid")

		return false, nil
	}

	var body room
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		log.Warn().Err(err).Str("roomId", roomID.String()).Msg("failed to decode room payload, treating room as invalid")

		return false, nil
	}

	return body.DeletedAt == nil, nil
}

func (c *clientImpl) Ready(ctx context.Context) bool {
	ctx, scope := c.otel.NewScope(ctx, constant.OtelExternalScopeName, constant.OtelExternalScopeName+".assets.Ready")
	defer scope.End()

	url := c.cfg.External.Assets.BaseURL + c.cfg.External.Assets.ReadyPath
	scope.SetAttribute("http.url", url)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		scope.TraceError(err)

		return false
	}

	resp, err := c.client.Do(req)
	if err != nil {
		scope.TraceError(err)
		log.Warn().Err(err).Msg("assets readiness probe failed")

		return false
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		log.Warn().Int("status", resp.StatusCode).Msg("assets readiness probe returned non-200")

		return false
	}

	var body readiness
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		scope.TraceError(err)
		log.Warn().Err(err).Msg("failed to decode assets readiness payload")

		return false
	}

	return body.Ready
}
