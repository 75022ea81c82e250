package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"
	"time"

	"biletado/config"
	"biletado/infras/assets"
	"biletado/infras/otel"
	"biletado/internal/domains/reservation/model"
	"biletado/internal/domains/reservation/model/dto"
	"biletado/internal/domains/reservation/repository"
	"biletado/shared"
	"biletado/shared/cache"
	"biletado/shared/constant"
	gDto "biletado/shared/dto"
	"biletado/shared/failure"
	"biletado/shared/timezone"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const (
	cacheGetReservation    = "reservation:get"
	cacheGetAllReservation = "reservation:gets"
)

// Reservation orchestrates the reservation lifecycle. Every mutation is
// gated by the same validation pass: the request must parse, the room must
// exist in the asset registry, and the interval must be free of conflicting
// active reservations. Validation failures accumulate so the caller sees
// every violation at once.
type Reservation interface {
	Create(ctx context.Context, req dto.UpsertReservationRequest) (dto.ReservationResponse, error)
	Upsert(ctx context.Context, id uuid.UUID, req dto.UpsertReservationRequest) (dto.UpsertReservationResponse, error)
	Get(ctx context.Context, id uuid.UUID) (dto.ReservationResponse, error)
	GetAll(ctx context.Context, filter gDto.FilterGroup) (dto.ReservationListResponse, error)
	Delete(ctx context.Context, id uuid.UUID, permanent bool) error
	IsRoomFree(ctx context.Context, roomID uuid.UUID, from, to time.Time, excludeID *uuid.UUID) (bool, error)
}

type serviceImpl struct {
	repo   repository.Reservation
	assets assets.Assets
	cfg    *config.Config
	cache  cache.RedisCache
	otel   otel.Otel
}

func New(repo repository.Reservation, assets assets.Assets, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Reservation {
	return &serviceImpl{
		repo:   repo,
		assets: assets,
		cfg:    cfg,
		cache:  cache,
		otel:   otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.UpsertReservationRequest) (res dto.ReservationResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	booking, errs := s.validate(ctx, req, nil)
	if err = ctx.Err(); err != nil {
		return res, err //nolint:wrapcheck
	}

	if err = errs.AsError(); err != nil {
		return res, err //nolint:wrapcheck
	}

	reservation := model.Reservation{
		ID:     uuid.New(),
		RoomID: booking.RoomID,
		From:   booking.From,
		To:     booking.To,
	}

	if err = s.repo.Insert(ctx, reservation); err != nil {
		log.Error().Err(err).Msg("failed to create reservation")

		return res, err //nolint:wrapcheck
	}

	res.FromModel(reservation)
	s.invalidateCaches(ctx, nil)

	return res, nil
}

func (s *serviceImpl) Upsert(ctx context.Context, id uuid.UUID, req dto.UpsertReservationRequest) (res dto.UpsertReservationResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Upsert")
	defer scope.End()
	defer scope.TraceIfError(err)

	// Excluding our own id from the conflict scan keeps an unchanged
	// resubmission from conflicting with itself.
	booking, errs := s.validate(ctx, req, &id)
	if err = ctx.Err(); err != nil {
		return res, err //nolint:wrapcheck
	}

	if err = errs.AsError(); err != nil {
		return res, err //nolint:wrapcheck
	}

	// The lookup bypasses the soft-delete filter: an upsert onto a
	// soft-deleted id overwrites and resurrects the record.
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		log.Error().Err(err).Msg("failed to look up reservation for upsert")

		return res, fmt.Errorf("failed to look up reservation: %w", err)
	}

	reservation := model.Reservation{
		ID:     id,
		RoomID: booking.RoomID,
		From:   booking.From,
		To:     booking.To,
	}

	if existing.IsZero() {
		if err = s.repo.Insert(ctx, reservation); err != nil {
			log.Error().Err(err).Msg("failed to insert reservation on upsert")

			return res, err //nolint:wrapcheck
		}

		res.Created = true
	} else {
		fields := map[string]any{
			model.FieldRoomID:    booking.RoomID,
			model.FieldFrom:      booking.From,
			model.FieldTo:        booking.To,
			model.FieldDeletedAt: nil,
		}

		if err = s.repo.Update(ctx, fields, id); err != nil {
			log.Error().Err(err).Msg("failed to overwrite reservation on upsert")

			return res, err //nolint:wrapcheck
		}
	}

	res.Reservation.FromModel(reservation)
	s.invalidateCaches(ctx, &id)

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id uuid.UUID) (res dto.ReservationResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()

	cacheKey := shared.BuildCacheKey(cacheGetReservation, id.String())

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		return res, nil
	}

	// Soft-deleted reservations stay retrievable by id.
	reservation, err := s.repo.GetByID(ctx, id)
	if err != nil {
		log.Error().Err(err).Msg("failed to get reservation")

		return res, fmt.Errorf("failed to get reservation: %w", err)
	}

	if reservation.IsZero() {
		return res, failure.ReservationNotFound("reservation not found") //nolint:wrapcheck
	}

	res.FromModel(reservation)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save reservation to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, filter gDto.FilterGroup) (res dto.ReservationListResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithFilter(cacheGetAllReservation, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		return res, nil
	}

	reservations, err := s.repo.GetAll(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get reservations")

		return res, fmt.Errorf("failed to get reservations: %w", err)
	}

	res.FromModels(reservations)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save reservations to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Delete(ctx context.Context, id uuid.UUID, permanent bool) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer scope.TraceIfError(err)

	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		log.Error().Err(err).Msg("failed to look up reservation for delete")

		return fmt.Errorf("failed to look up reservation: %w", err)
	}

	if existing.IsZero() {
		return failure.ReservationNotFound("reservation not found") //nolint:wrapcheck
	}

	if permanent {
		if err = s.repo.Delete(ctx, id); err != nil {
			log.Error().Err(err).Msg("failed to delete reservation")

			return fmt.Errorf("failed to delete reservation: %w", err)
		}

		s.invalidateCaches(ctx, &id)

		return nil
	}

	if existing.IsDeleted() {
		return failure.ReservationAlreadyDeleted("reservation is already deleted") //nolint:wrapcheck
	}

	if err = s.repo.Update(ctx, map[string]any{model.FieldDeletedAt: timezone.Now()}, id); err != nil {
		log.Error().Err(err).Msg("failed to soft-delete reservation")

		return fmt.Errorf("failed to soft-delete reservation: %w", err)
	}

	s.invalidateCaches(ctx, &id)

	return nil
}

// IsRoomFree reports whether [from, to) is free of conflicting active
// reservations for the room. Soft-deleted records never conflict, and
// excludeID exempts a reservation from conflicting with its own prior
// state during an upsert. Pure read: no side effects.
func (s *serviceImpl) IsRoomFree(ctx context.Context, roomID uuid.UUID, from, to time.Time, excludeID *uuid.UUID) (bool, error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".IsRoomFree")
	defer scope.End()

	reservations, err := s.repo.GetAllByRoom(ctx, roomID)
	if err != nil {
		log.Error().Err(err).Msg("failed to scan reservations for availability check")

		return false, fmt.Errorf("failed to scan reservations: %w", err)
	}

	for _, r := range reservations {
		if r.IsDeleted() {
			continue
		}

		if excludeID != nil && r.ID == *excludeID {
			continue
		}

		if r.Overlaps(from, to) {
			return false, nil
		}
	}

	return true, nil
}

// validate runs every admission check and accumulates the violations:
// parse failures, empty room id, inverted range, unknown room, occupied
// interval. Checks whose inputs did not parse are skipped; everything else
// runs so the caller sees the full list. Remote and store probe failures
// degrade to their conservative validation outcome unless the context was
// cancelled, which the callers detect via ctx.Err().
func (s *serviceImpl) validate(ctx context.Context, req dto.UpsertReservationRequest, excludeID *uuid.UUID) (dto.Booking, *failure.List) {
	booking, parseErrs := req.Parse()
	errs := &failure.List{Failures: parseErrs}

	// The nil uuid parses cleanly, so it has to be rejected here alongside
	// the empty string or it would slip past both remote checks below.
	if req.RoomID == constant.Empty || (booking.RoomIDParsed && booking.RoomID == uuid.Nil) {
		errs.Add(failure.BadRequestFromString("room_id must not be empty"))
	}

	roomValid := booking.RoomIDParsed && booking.RoomID != uuid.Nil

	// Parse flags rather than IsZero: "0001-01-01" is a valid date that
	// happens to be Go's zero time.
	datesValid := booking.FromParsed && booking.ToParsed

	if datesValid && booking.From.After(booking.To) {
		errs.Add(failure.BadRequestFromString("from must not be after to"))
	}

	if roomValid {
		exists, err := s.assets.RoomExists(ctx, booking.RoomID)

		switch {
		case err != nil && ctx.Err() != nil:
			return booking, errs
		case err != nil:
			log.Error().Err(err).Msg("room registry unreachable, treating room as invalid")
			errs.Add(failure.RoomNotFound("room could not be verified against the asset registry"))
		case !exists:
			errs.Add(failure.RoomNotFound("room_id refers to a non-existing or deleted room"))
		}
	}

	if roomValid && datesValid && !booking.From.After(booking.To) {
		free, err := s.IsRoomFree(ctx, booking.RoomID, booking.From, booking.To, excludeID)

		switch {
		case err != nil && ctx.Err() != nil:
			return booking, errs
		case err != nil:
			errs.Add(failure.RoomNotFree("room availability could not be verified"))
		case !free:
			errs.Add(failure.RoomNotFree("room is already reserved for the given date range"))
		}
	}

	return booking, errs
}

func (s *serviceImpl) invalidateCaches(ctx context.Context, id *uuid.UUID) {
	go func() {
		c := context.WithoutCancel(ctx)

		if id != nil {
			if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetReservation, id.String())); err != nil {
				log.Error().Err(err).Msg("failed to delete reservation from cache")
			}
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllReservation)
	}()
}
