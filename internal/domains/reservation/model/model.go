package model

import (
	"time"

	"github.com/google/uuid"
)

const (
	TableName  = "reservations"
	EntityName = "reservation"

	FieldID        = "id"
	FieldRoomID    = "room_id"
	FieldFrom      = "from"
	FieldTo        = "to"
	FieldDeletedAt = "deleted_at"
)

// Reservation books a room for the half-open date interval [From, To):
// From is included, To is excluded. A set DeletedAt marks the record as
// soft-deleted; soft-deleted reservations keep their id but no longer block
// the room.
type Reservation struct {
	ID        uuid.UUID  `db:"id"`
	RoomID    uuid.UUID  `db:"room_id"`
	From      time.Time  `db:"from"`
	To        time.Time  `db:"to"`
	DeletedAt *time.Time `db:"deleted_at"`
}

// IsZero reports whether the record is absent (lookup miss).
func (r Reservation) IsZero() bool {
	return r.ID == uuid.Nil
}

// IsDeleted reports whether the reservation is soft-deleted.
func (r Reservation) IsDeleted() bool {
	return r.DeletedAt != nil
}

// Overlaps reports whether the reservation's interval intersects [from, to).
// Intervals that merely touch at a boundary do not overlap.
func (r Reservation) Overlaps(from, to time.Time) bool {
	return r.From.Before(to) && from.Before(r.To)
}
