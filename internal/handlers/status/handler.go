package status

import (
	"net/http"

	"biletado/infras/otel"
	"biletado/internal/domains/status/service"
	"biletado/shared/constant"
	"biletado/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Status
	otel    otel.Otel
}

func New(service service.Status, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Get("/status", handler.GetStatus)

	router.Route("/health", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetHealth)
		routerGroup.Get("/live", handler.GetLive)
		routerGroup.Get("/ready", handler.GetReady)
	})
}

// GetStatus reports the service identity.
// @Summary Service identity
// @Tags Status
// @Produce json
// @Success 200 {object} dto.StatusResponse
// @Router /api/v3/reservations/status [get]
func (handler *Handler) GetStatus(w http.ResponseWriter, r *http.Request) {
	_, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetStatus")
	defer scope.End()

	response.WithJSON(w, http.StatusOK, handler.service.Info())
}

// GetHealth aggregates liveness and readiness.
// @Summary Combined health report
// @Tags Status
// @Produce json
// @Success 200 {object} dto.HealthResponse
// @Router /api/v3/reservations/health [get]
func (handler *Handler) GetHealth(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetHealth")
	defer scope.End()

	response.WithJSON(w, http.StatusOK, handler.service.Health(ctx))
}

// GetLive is the liveness probe.
// @Summary Liveness probe
// @Tags Status
// @Produce json
// @Success 200 {object} dto.LiveResponse
// @Router /api/v3/reservations/health/live [get]
func (handler *Handler) GetLive(w http.ResponseWriter, r *http.Request) {
	_, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetLive")
	defer scope.End()

	response.WithJSON(w, http.StatusOK, handler.service.Live())
}

// GetReady is the readiness probe. Unreachable dependencies surface as a 503
// with one failure per dependency.
// @Summary Readiness probe
// @Tags Status
// @Produce json
// @Success 200 {object} dto.ReadyResponse
// @Failure 503 {object} response.Errors
// @Router /api/v3/reservations/health/ready [get]
func (handler *Handler) GetReady(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetReady")
	defer scope.End()

	res, err := handler.service.Ready(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Warn().Err(err).Msg("readiness probe failed")

		response.WithErrorCode(w, r, http.StatusServiceUnavailable, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}
