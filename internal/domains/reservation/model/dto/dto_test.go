package dto_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"biletado/internal/domains/reservation/model"
	"biletado/internal/domains/reservation/model/dto"
	"biletado/shared/failure"
)

func TestUpsertReservationRequestParse(t *testing.T) {
	roomID := uuid.New()

	tests := []struct {
		name      string
		req       dto.UpsertReservationRequest
		wantCodes []string
	}{
		{
			name: "valid request parses without failures",
			req: dto.UpsertReservationRequest{
				RoomID: roomID.String(),
				From:   "2026-03-10",
				To:     "2026-03-15",
			},
			wantCodes: nil,
		},
		{
			name: "malformed room id",
			req: dto.UpsertReservationRequest{
				RoomID: "not-a-uuid",
				From:   "2026-03-10",
				To:     "2026-03-15",
			},
			wantCodes: []string{failure.CodeBadRequest},
		},
		{
			name: "missing dates are both reported",
			req: dto.UpsertReservationRequest{
				RoomID: roomID.String(),
			},
			wantCodes: []string{failure.CodeBadRequest, failure.CodeBadRequest},
		},
		{
			name: "every malformed field is reported",
			req: dto.UpsertReservationRequest{
				RoomID: "not-a-uuid",
				From:   "10.03.2026",
				To:     "tomorrow",
			},
			wantCodes: []string{failure.CodeBadRequest, failure.CodeBadRequest, failure.CodeBadRequest},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, errs := tt.req.Parse()

			assert.Len(t, errs, len(tt.wantCodes))

			for i, code := range tt.wantCodes {
				assert.Equal(t, code, errs[i].Code)
			}
		})
	}
}

func TestUpsertReservationRequestParsePartialBooking(t *testing.T) {
	roomID := uuid.New()

	req := dto.UpsertReservationRequest{
		RoomID: roomID.String(),
		From:   "2026-03-10",
		To:     "garbage",
	}

	booking, errs := req.Parse()

	assert.Len(t, errs, 1)
	assert.Equal(t, roomID, booking.RoomID)
	assert.Equal(t, time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC), booking.From)
	assert.True(t, booking.To.IsZero())

	assert.True(t, booking.RoomIDParsed)
	assert.True(t, booking.FromParsed)
	assert.False(t, booking.ToParsed)
}

func TestUpsertReservationRequestParseZeroValues(t *testing.T) {
	// The nil uuid and year one dates parse to Go zero values. The flags are
	// the only way callers can tell them apart from an absent field.
	req := dto.UpsertReservationRequest{
		RoomID: "00000000-0000-0000-0000-000000000000",
		From:   "0001-01-01",
		To:     "0001-01-05",
	}

	booking, errs := req.Parse()

	assert.Empty(t, errs)
	assert.Equal(t, uuid.Nil, booking.RoomID)
	assert.True(t, booking.RoomIDParsed)
	assert.True(t, booking.FromParsed)
	assert.True(t, booking.ToParsed)
	assert.True(t, booking.From.IsZero())
	assert.Equal(t, time.Date(1, 1, 5, 0, 0, 0, 0, time.UTC), booking.To)
}

func TestReservationResponseFromModel(t *testing.T) {
	m := model.Reservation{
		ID:     uuid.New(),
		RoomID: uuid.New(),
		From:   time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC),
		To:     time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC),
	}

	var res dto.ReservationResponse
	res.FromModel(m)

	assert.Equal(t, m.ID.String(), res.ID)
	assert.Equal(t, m.RoomID.String(), res.RoomID)
	assert.Equal(t, "2026-03-10", res.From)
	assert.Equal(t, "2026-03-15", res.To)
	assert.Nil(t, res.DeletedAt)

	deletedAt := time.Date(2026, 3, 12, 9, 30, 0, 0, time.UTC)
	m.DeletedAt = &deletedAt

	res = dto.ReservationResponse{}
	res.FromModel(m)

	assert.NotNil(t, res.DeletedAt)
	assert.Equal(t, "2026-03-12T09:30:00Z", *res.DeletedAt)
}

func TestReservationListResponseFromModels(t *testing.T) {
	var res dto.ReservationListResponse

	res.FromModels(nil)
	assert.NotNil(t, res.Reservations)
	assert.Empty(t, res.Reservations)

	res.FromModels([]model.Reservation{
		{ID: uuid.New(), RoomID: uuid.New()},
		{ID: uuid.New(), RoomID: uuid.New()},
	})
	assert.Len(t, res.Reservations, 2)
}
