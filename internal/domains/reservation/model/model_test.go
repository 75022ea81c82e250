package model_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"biletado/internal/domains/reservation/model"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestReservationOverlaps(t *testing.T) {
	reservation := model.Reservation{
		ID:     uuid.New(),
		RoomID: uuid.New(),
		From:   date(2026, 3, 10),
		To:     date(2026, 3, 15),
	}

	tests := []struct {
		name string
		from time.Time
		to   time.Time
		want bool
	}{
		{
			name: "identical interval overlaps",
			from: date(2026, 3, 10),
			to:   date(2026, 3, 15),
			want: true,
		},
		{
			name: "contained interval overlaps",
			from: date(2026, 3, 11),
			to:   date(2026, 3, 14),
			want: true,
		},
		{
			name: "containing interval overlaps",
			from: date(2026, 3, 1),
			to:   date(2026, 3, 31),
			want: true,
		},
		{
			name: "partial overlap at the start",
			from: date(2026, 3, 8),
			to:   date(2026, 3, 11),
			want: true,
		},
		{
			name: "partial overlap at the end",
			from: date(2026, 3, 14),
			to:   date(2026, 3, 20),
			want: true,
		},
		{
			name: "interval starting at the other's end does not overlap",
			from: date(2026, 3, 15),
			to:   date(2026, 3, 20),
			want: false,
		},
		{
			name: "interval ending at the other's start does not overlap",
			from: date(2026, 3, 5),
			to:   date(2026, 3, 10),
			want: false,
		},
		{
			name: "disjoint earlier interval does not overlap",
			from: date(2026, 2, 1),
			to:   date(2026, 2, 5),
			want: false,
		},
		{
			name: "disjoint later interval does not overlap",
			from: date(2026, 4, 1),
			to:   date(2026, 4, 5),
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, reservation.Overlaps(tt.from, tt.to))
		})
	}
}

func TestReservationOverlapsIsSymmetric(t *testing.T) {
	a := model.Reservation{From: date(2026, 3, 10), To: date(2026, 3, 15)}
	b := model.Reservation{From: date(2026, 3, 14), To: date(2026, 3, 20)}

	assert.Equal(t, a.Overlaps(b.From, b.To), b.Overlaps(a.From, a.To))

	c := model.Reservation{From: date(2026, 3, 15), To: date(2026, 3, 20)}

	assert.Equal(t, a.Overlaps(c.From, c.To), c.Overlaps(a.From, a.To))
	assert.False(t, a.Overlaps(c.From, c.To))
}

func TestReservationIsZero(t *testing.T) {
	assert.True(t, model.Reservation{}.IsZero())
	assert.False(t, model.Reservation{ID: uuid.New()}.IsZero())
}

func TestReservationIsDeleted(t *testing.T) {
	deletedAt := time.Now()

	assert.False(t, model.Reservation{ID: uuid.New()}.IsDeleted())
	assert.True(t, model.Reservation{ID: uuid.New(), DeletedAt: &deletedAt}.IsDeleted())
}
