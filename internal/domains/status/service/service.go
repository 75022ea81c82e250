package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"

	"biletado/infras/assets"
	"biletado/infras/otel"
	"biletado/internal/domains/status/model/dto"
	"biletado/shared/constant"
	"biletado/shared/failure"

	"github.com/rs/zerolog/log"
)

// StorePinger probes the reservation store. Implemented by the postgres
// connection pair.
type StorePinger interface {
	Ping(ctx context.Context) error
}

// Status serves the identity and health endpoints. Probes never panic or
// raise: a failed dependency turns into a dependency_unreachable failure
// naming the dependency, nothing else.
type Status interface {
	Info() dto.StatusResponse
	Live() dto.LiveResponse
	Ready(ctx context.Context) (dto.ReadyResponse, error)
	Health(ctx context.Context) dto.HealthResponse
}

type serviceImpl struct {
	assets assets.Assets
	store  StorePinger
	otel   otel.Otel
}

func New(assets assets.Assets, store StorePinger, otel otel.Otel) Status {
	return &serviceImpl{
		assets: assets,
		store:  store,
		otel:   otel,
	}
}

func (s *serviceImpl) Info() dto.StatusResponse {
	return dto.StatusResponse{
		Authors:    constant.Authors,
		APIVersion: constant.APIVersion,
	}
}

func (s *serviceImpl) Live() dto.LiveResponse {
	return dto.LiveResponse{Live: true}
}

// Ready probes every dependency and accumulates one failure per unreachable
// one, so operators see the full picture instead of the first hit.
func (s *serviceImpl) Ready(ctx context.Context) (res dto.ReadyResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Ready")
	defer scope.End()

	var errs failure.List

	if pingErr := s.store.Ping(ctx); pingErr != nil {
		log.Warn().Err(pingErr).Msg("reservations store failed readiness probe")
		errs.Add(failure.DependencyUnreachable("reservations store is unreachable", "postgres"))
	}

	if !s.assets.Ready(ctx) {
		log.Warn().Msg("assets service failed readiness probe")
		errs.Add(failure.DependencyUnreachable("assets service is not ready", "assets"))
	}

	if err = errs.AsError(); err != nil {
		return res, err //nolint:wrapcheck
	}

	res.Ready = true

	return res, nil
}

func (s *serviceImpl) Health(ctx context.Context) dto.HealthResponse {
	_, err := s.Ready(ctx)

	return dto.HealthResponse{
		Live:  true,
		Ready: err == nil,
	}
}
