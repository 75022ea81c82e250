package shared_test

import (
	"testing"

	"biletado/shared"
	"biletado/shared/dto"

	"github.com/stretchr/testify/assert"
)

func TestBuildCacheKey(t *testing.T) {
	assert.Equal(t, "reservation:get", shared.BuildCacheKey("reservation:get"))
	assert.Equal(t, "reservation:get:abc", shared.BuildCacheKey("reservation:get", "abc"))
	assert.Equal(t, "reservation:get:a:b", shared.BuildCacheKey("reservation:get", "a", "b"))
}

func TestBuildCacheKeyWithFilterIsStable(t *testing.T) {
	filter := dto.FilterGroup{
		Operator: dto.FilterGroupOperatorAnd,
		Filters: []any{
			dto.Filter{
				Field:    "room_id",
				Value:    "r1",
				Operator: dto.FilterOperatorEq,
			},
		},
	}

	first := shared.BuildCacheKeyWithFilter("reservation:gets", filter)
	second := shared.BuildCacheKeyWithFilter("reservation:gets", filter)

	assert.Equal(t, first, second)
	assert.Contains(t, first, "reservation:gets:")
}

func TestBuildCacheKeyWithFilterDiffersPerFilter(t *testing.T) {
	base := dto.FilterGroup{
		Filters: []any{
			dto.Filter{
				Field:    "room_id",
				Value:    "r1",
				Operator: dto.FilterOperatorEq,
			},
		},
	}
	other := dto.FilterGroup{
		Filters: []any{
			dto.Filter{
				Field:    "room_id",
				Value:    "r2",
				Operator: dto.FilterOperatorEq,
			},
		},
	}

	assert.NotEqual(t,
		shared.BuildCacheKeyWithFilter("reservation:gets", base),
		shared.BuildCacheKeyWithFilter("reservation:gets", other),
	)
}

func TestFilterByID(t *testing.T) {
	group := shared.FilterByID("some-id", "id", "reservations")

	where, args := group.GetWhereClause()

	assert.Equal(t, `(reservations."id" = :id)`, where)
	assert.Equal(t, map[string]any{"id": "some-id"}, args)
}
