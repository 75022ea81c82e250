package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"

	"biletado/infras/otel"
	"biletado/infras/postgres"
	"biletado/internal/domains/user/model"
	"biletado/shared"
	gDto "biletado/shared/dto"
	gRepo "biletado/shared/repository"

	"github.com/google/uuid"
)

type User interface {
	Insert(ctx context.Context, model model.User) error
	GetByID(ctx context.Context, id uuid.UUID) (model.User, error)
	GetByEmail(ctx context.Context, email string) (model.User, error)
	ExistByEmail(ctx context.Context, email string) (bool, error)
	Update(ctx context.Context, fields map[string]any, id uuid.UUID) error
}

type repositoryImpl struct {
	gRepo.Repository[model.User]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) User {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.User](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

func (repo *repositoryImpl) GetByID(ctx context.Context, id uuid.UUID) (model.User, error) {
	return repo.Repository.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName)) //nolint:wrapcheck
}

func (repo *repositoryImpl) GetByEmail(ctx context.Context, email string) (model.User, error) {
	return repo.Repository.Get(ctx, emailFilter(email)) //nolint:wrapcheck
}

func (repo *repositoryImpl) ExistByEmail(ctx context.Context, email string) (bool, error) {
	return repo.Repository.Exist(ctx, emailFilter(email)) //nolint:wrapcheck
}

func (repo *repositoryImpl) Update(ctx context.Context, fields map[string]any, id uuid.UUID) error {
	return repo.Repository.Update(ctx, fields, shared.FilterByID(id, model.FieldID, model.TableName)) //nolint:wrapcheck
}

func emailFilter(email string) gDto.FilterGroup {
	return gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldEmail,
				Operator: gDto.FilterOperatorEq,
				Value:    email,
				Table:    model.TableName,
			},
		},
	}
}
