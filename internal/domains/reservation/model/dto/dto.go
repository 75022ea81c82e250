package dto

import (
	"time"

	"biletado/internal/domains/reservation/model"
	"biletado/shared/constant"
	"biletado/shared/failure"

	"github.com/google/uuid"
)

// UpsertReservationRequest is the body of POST and PUT requests. Dates use
// the YYYY-MM-DD wire format and denote the half-open interval [from, to).
// Fields are deliberately loose here: the service accumulates every
// violation instead of rejecting on the first malformed field.
type UpsertReservationRequest struct {
	RoomID string `json:"room_id"`
	From   string `json:"from"`
	To     string `json:"to"`
}

// Booking is the parsed form of an upsert request. The parsed flags
// distinguish an absent or malformed field from one that legitimately
// parsed to a zero value: the nil uuid and year-one dates are valid wire
// input and still need their own validation.
type Booking struct {
	RoomID uuid.UUID
	From   time.Time
	To     time.Time

	RoomIDParsed bool
	FromParsed   bool
	ToParsed     bool
}

// Parse converts the wire request into a Booking, collecting one failure per
// malformed field. A partially parsed Booking is still returned so the
// remaining validations can run on whatever parsed cleanly.
func (r *UpsertReservationRequest) Parse() (Booking, []*failure.Failure) {
	var (
		booking Booking
		errs    []*failure.Failure
	)

	add := func(err error) {
		errs = append(errs, failure.GetFailures(err)...)
	}

	if r.RoomID != constant.Empty {
		roomID, err := uuid.Parse(r.RoomID)
		if err != nil {
			add(failure.BadRequestFromString("room_id must be a valid UUID"))
		} else {
			booking.RoomID = roomID
			booking.RoomIDParsed = true
		}
	}

	if r.From == constant.Empty {
		add(failure.BadRequestFromString("from is required"))
	} else {
		from, err := time.Parse(constant.DateFormat, r.From)
		if err != nil {
			add(failure.BadRequestFromString("from must be a date formatted as YYYY-MM-DD"))
		} else {
			booking.From = from
			booking.FromParsed = true
		}
	}

	if r.To == constant.Empty {
		add(failure.BadRequestFromString("to is required"))
	} else {
		to, err := time.Parse(constant.DateFormat, r.To)
		if err != nil {
			add(failure.BadRequestFromString("to must be a date formatted as YYYY-MM-DD"))
		} else {
			booking.To = to
			booking.ToParsed = true
		}
	}

	return booking, errs
}

// ReservationResponse mirrors the original wire shape: date-only from/to,
// deleted_at omitted while the reservation is active.
type ReservationResponse struct {
	ID        string  `json:"id"`
	RoomID    string  `json:"room_id"`
	From      string  `json:"from"`
	To        string  `json:"to"`
	DeletedAt *string `json:"deleted_at,omitempty"`
}

func (r *ReservationResponse) FromModel(m model.Reservation) {
	r.ID = m.ID.String()
	r.RoomID = m.RoomID.String()
	r.From = m.From.Format(constant.DateFormat)
	r.To = m.To.Format(constant.DateFormat)

	if m.DeletedAt != nil {
		deletedAt := m.DeletedAt.Format(constant.TimestampFormat)
		r.DeletedAt = &deletedAt
	}
}

type ReservationListResponse struct {
	Reservations []ReservationResponse `json:"reservations"`
}

func (r *ReservationListResponse) FromModels(models []model.Reservation) {
	r.Reservations = make([]ReservationResponse, 0, len(models))

	for _, m := range models {
		var res ReservationResponse
		res.FromModel(m)
		r.Reservations = append(r.Reservations, res)
	}
}

// UpsertReservationResponse reports whether a replace-or-create call
// created a new record or overwrote an existing one.
type UpsertReservationResponse struct {
	Created     bool                `json:"created"`
	Reservation ReservationResponse `json:"reservation"`
}
