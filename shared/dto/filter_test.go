package dto_test

import (
	"testing"

	"biletado/shared/dto"

	"github.com/stretchr/testify/assert"
)

func TestFilterGetWhereClause(t *testing.T) {
	type testCase struct {
		name      string
		filter    dto.Filter
		wantWhere string
		wantArgs  map[string]any
	}

	cases := []testCase{
		{
			name: "equality",
			filter: dto.Filter{
				Field:    "room_id",
				Value:    "c0f1ad7e-1f4a-4f62-9b44-1f8e9e1fb0aa",
				Operator: dto.FilterOperatorEq,
			},
			wantWhere: `"room_id" = :room_id`,
			wantArgs:  map[string]any{"room_id": "c0f1ad7e-1f4a-4f62-9b44-1f8e9e1fb0aa"},
		},
		{
			name: "reserved word column is quoted",
			filter: dto.Filter{
				ArgName:  "before",
				Field:    "to",
				Value:    "2026-04-01",
				Operator: dto.FilterOperatorLessEq,
			},
			wantWhere: `"to" <= :before`,
			wantArgs:  map[string]any{"before": "2026-04-01"},
		},
		{
			name: "greater or equal with arg name",
			filter: dto.Filter{
				ArgName:  "after",
				Field:    "from",
				Value:    "2026-03-01",
				Operator: dto.FilterOperatorGreaterEq,
			},
			wantWhere: `"from" >= :after`,
			wantArgs:  map[string]any{"after": "2026-03-01"},
		},
		{
			name: "is null carries no args",
			filter: dto.Filter{
				Field:    "deleted_at",
				Operator: dto.FilterIsNull,
			},
			wantWhere: `"deleted_at" IS NULL`,
			wantArgs:  map[string]any{},
		},
		{
			name: "is not null",
			filter: dto.Filter{
				Field:    "deleted_at",
				Operator: dto.FilterIsNotNull,
			},
			wantWhere: `"deleted_at" IS NOT NULL`,
			wantArgs:  map[string]any{},
		},
		{
			name: "table qualified column",
			filter: dto.Filter{
				Field:    "id",
				Value:    "x",
				Operator: dto.FilterOperatorNotEq,
				Table:    "reservations",
			},
			wantWhere: `reservations."id" != :id`,
			wantArgs:  map[string]any{"id": "x"},
		},
		{
			name: "in expands slice values",
			filter: dto.Filter{
				Field:    "id",
				Value:    []string{"a", "b"},
				Operator: dto.FilterOperatorIn,
			},
			wantWhere: `"id" IN (:id_0, :id_1)`,
			wantArgs:  map[string]any{"id_0": "a", "id_1": "b"},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			where, args := tc.filter.GetWhereClause()

			assert.Equal(t, tc.wantWhere, where)
			assert.Equal(t, tc.wantArgs, args)
		})
	}
}

func TestFilterGroupGetWhereClause(t *testing.T) {
	group := dto.FilterGroup{
		Operator: dto.FilterGroupOperatorAnd,
		Filters: []any{
			dto.Filter{
				Field:    "room_id",
				Value:    "r1",
				Operator: dto.FilterOperatorEq,
			},
			dto.Filter{
				ArgName:  "before",
				Field:    "to",
				Value:    "2026-04-01",
				Operator: dto.FilterOperatorLessEq,
			},
			dto.Filter{
				Field:    "deleted_at",
				Operator: dto.FilterIsNull,
			},
		},
	}

	where, args := group.GetWhereClause()

	assert.Equal(t, `("room_id" = :room_id AND "to" <= :before AND "deleted_at" IS NULL)`, where)
	assert.Equal(t, map[string]any{"room_id": "r1", "before": "2026-04-01"}, args)
}

func TestFilterGroupNested(t *testing.T) {
	group := dto.FilterGroup{
		Operator: dto.FilterGroupOperatorAnd,
		Filters: []any{
			dto.Filter{
				Field:    "room_id",
				Value:    "r1",
				Operator: dto.FilterOperatorEq,
			},
			dto.FilterGroup{
				Operator: dto.FilterGroupOperatorOr,
				Filters: []any{
					dto.Filter{
						Field:    "deleted_at",
						Operator: dto.FilterIsNull,
					},
					dto.Filter{
						Field:    "deleted_at",
						Operator: dto.FilterIsNotNull,
					},
				},
			},
		},
	}

	where, args := group.GetWhereClause()

	assert.Equal(t, `("room_id" = :room_id AND ("deleted_at" IS NULL OR "deleted_at" IS NOT NULL))`, where)
	assert.Equal(t, map[string]any{"room_id": "r1"}, args)
}

func TestFilterGroupEmpty(t *testing.T) {
	group := dto.FilterGroup{}

	where, args := group.GetWhereClause()

	assert.Empty(t, where)
	assert.Empty(t, args)
}
