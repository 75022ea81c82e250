package failure_test

import (
	"errors"
	"net/http"
	"testing"

	"biletado/shared/failure"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListAccumulatesEveryViolation(t *testing.T) {
	var errs failure.List

	assert.True(t, errs.Empty())
	require.NoError(t, errs.AsError())

	errs.Add(failure.BadRequestFromString("from must be a valid date"))
	errs.Add(nil)
	errs.Add(failure.RoomNotFound("room_id refers to a non-existing or deleted room"))

	assert.False(t, errs.Empty())
	assert.Len(t, errs.Failures, 2)

	err := errs.AsError()
	require.Error(t, err)
	assert.Equal(t, "from must be a valid date; room_id refers to a non-existing or deleted room", err.Error())
}

func TestListWrapsPlainErrors(t *testing.T) {
	var errs failure.List

	errs.Add(errors.New("connection reset"))

	require.Len(t, errs.Failures, 1)
	assert.Equal(t, failure.CodeBadRequest, errs.Failures[0].Code)
	assert.Equal(t, http.StatusInternalServerError, errs.Failures[0].Status)
}

func TestGetStatus(t *testing.T) {
	type testCase struct {
		name string
		err  error
		want int
	}

	listed := &failure.List{}
	listed.Add(failure.RoomNotFree("room is already reserved for the given date range"))

	cases := []testCase{
		{
			name: "bad request",
			err:  failure.BadRequestFromString("id must be a valid UUID"),
			want: http.StatusBadRequest,
		},
		{
			name: "room not found",
			err:  failure.RoomNotFound("room could not be verified"),
			want: http.StatusBadRequest,
		},
		{
			name: "room not free",
			err:  failure.RoomNotFree("room is already reserved"),
			want: http.StatusConflict,
		},
		{
			name: "reservation not found",
			err:  failure.ReservationNotFound("reservation not found"),
			want: http.StatusNotFound,
		},
		{
			name: "reservation already deleted",
			err:  failure.ReservationAlreadyDeleted("reservation is already deleted"),
			want: http.StatusConflict,
		},
		{
			name: "dependency unreachable",
			err:  failure.DependencyUnreachable("store is unreachable", "postgres"),
			want: http.StatusServiceUnavailable,
		},
		{
			name: "unauthorized",
			err:  failure.Unauthorized("invalid email or password"),
			want: http.StatusUnauthorized,
		},
		{
			name: "validation list maps to bad request regardless of members",
			err:  listed,
			want: http.StatusBadRequest,
		},
		{
			name: "plain error maps to internal",
			err:  errors.New("boom"),
			want: http.StatusInternalServerError,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, failure.GetStatus(tc.err))
		})
	}
}

func TestGetFailures(t *testing.T) {
	single := failure.RoomNotFound("room could not be verified")

	fails := failure.GetFailures(single)
	require.Len(t, fails, 1)
	assert.Equal(t, failure.CodeRoomNotFound, fails[0].Code)

	listed := &failure.List{}
	listed.Add(failure.BadRequestFromString("room_id must not be empty"))
	listed.Add(failure.RoomNotFree("room is already reserved"))

	fails = failure.GetFailures(listed)
	require.Len(t, fails, 2)
	assert.Equal(t, failure.CodeBadRequest, fails[0].Code)
	assert.Equal(t, failure.CodeRoomNotFree, fails[1].Code)

	fails = failure.GetFailures(errors.New("boom"))
	require.Len(t, fails, 1)
	assert.Equal(t, failure.CodeBadRequest, fails[0].Code)
	assert.Equal(t, "boom", fails[0].Message)
}

func TestIs(t *testing.T) {
	listed := &failure.List{}
	listed.Add(failure.BadRequestFromString("from must be a valid date"))
	listed.Add(failure.RoomNotFound("room_id refers to a non-existing or deleted room"))

	assert.True(t, failure.Is(listed, failure.CodeBadRequest))
	assert.True(t, failure.Is(listed, failure.CodeRoomNotFound))
	assert.False(t, failure.Is(listed, failure.CodeRoomNotFree))

	assert.True(t, failure.Is(failure.ReservationNotFound("missing"), failure.CodeReservationNotFound))
	assert.False(t, failure.Is(errors.New("boom"), failure.CodeRoomNotFree))
}

func TestMoreInfoNamesTheDependency(t *testing.T) {
	err := failure.DependencyUnreachable("reservations store is unreachable", "postgres")

	fails := failure.GetFailures(err)
	require.Len(t, fails, 1)
	assert.Equal(t, "postgres", fails[0].MoreInfo)
}
