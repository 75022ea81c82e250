package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"

	"biletado/infras/otel"
	"biletado/infras/postgres"
	"biletado/internal/domains/reservation/model"
	"biletado/shared"
	"biletado/shared/constant"
	gDto "biletado/shared/dto"
	"biletado/shared/failure"
	gRepo "biletado/shared/repository"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// Reservation is the durable store for reservation records. Lookups by id
// always bypass the soft-delete filter; scans take an explicit filter so
// callers choose between active-only and include-deleted modes.
type Reservation interface {
	Insert(ctx context.Context, model model.Reservation) error
	GetByID(ctx context.Context, id uuid.UUID) (model.Reservation, error)
	GetAll(ctx context.Context, filter gDto.FilterGroup) ([]model.Reservation, error)
	GetAllByRoom(ctx context.Context, roomID uuid.UUID) ([]model.Reservation, error)
	Update(ctx context.Context, fields map[string]any, id uuid.UUID) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type repositoryImpl struct {
	gRepo.Repository[model.Reservation]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Reservation {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Reservation](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

func (repo *repositoryImpl) Insert(ctx context.Context, m model.Reservation) error {
	if err := repo.Repository.Insert(ctx, m); err != nil {
		return mapConflict(err)
	}

	return nil
}

func (repo *repositoryImpl) GetByID(ctx context.Context, id uuid.UUID) (model.Reservation, error) {
	return repo.Repository.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName)) //nolint:wrapcheck
}

func (repo *repositoryImpl) GetAllByRoom(ctx context.Context, roomID uuid.UUID) ([]model.Reservation, error) {
	filter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldRoomID,
				Operator: gDto.FilterOperatorEq,
				Value:    roomID,
				Table:    model.TableName,
			},
		},
	}

	return repo.Repository.GetAll(ctx, filter) //nolint:wrapcheck
}

func (repo *repositoryImpl) Update(ctx context.Context, fields map[string]any, id uuid.UUID) error {
	if err := repo.Repository.Update(ctx, fields, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		return mapConflict(err)
	}

	return nil
}

func (repo *repositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return repo.Repository.Delete(ctx, shared.FilterByID(id, model.FieldID, model.TableName)) //nolint:wrapcheck
}

// mapConflict translates the storage-level no-overlap gate (the exclusion
// constraint on (room_id, daterange(from, to)) plus the primary key) into
// the room_not_free error kind. The in-process availability check is only
// an early reject; under concurrent writers this is the authoritative one.
func mapConflict(err error) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch string(pqErr.Code) {
		case constant.PqErrorCodeExclusionViolation:
			return failure.RoomNotFree("room is already reserved for an overlapping date range")
		case constant.PqErrorCodeUniqueViolation:
			return failure.RoomNotFree("a reservation with conflicting identity already exists")
		}
	}

	return fmt.Errorf("reservation store write failed: %w", err)
}
