package failure

import (
	"errors"
	"net/http"
	"strings"
)

// Error kinds carried on the wire. Handlers map them back to the HTTP layer,
// clients branch on them.
const (
	CodeBadRequest                = "bad_request"
	CodeRoomNotFound              = "room_not_found"
	CodeRoomNotFree               = "room_not_free"
	CodeReservationNotFound       = "reservation_not_found"
	CodeReservationAlreadyDeleted = "reservation_already_deleted"
	CodeDependencyUnreachable     = "dependency_unreachable"
)

// Failure is a wrapper for error kinds and messages using standard HTTP response codes.
type Failure struct {
	Status   int    `json:"-"`
	Code     string `json:"code"`
	Message  string `json:"message"`
	MoreInfo string `json:"more_info,omitempty"`
}

// Error returns the failure message.
func (e *Failure) Error() string {
	return e.Message
}

// List accumulates validation failures so a caller sees every violation at
// once instead of only the first one.
type List struct {
	Failures []*Failure
}

func (l *List) Error() string {
	msgs := make([]string, 0, len(l.Failures))
	for _, f := range l.Failures {
		msgs = append(msgs, f.Message)
	}

	return strings.Join(msgs, "; ")
}

// Add appends a failure to the list. Non-Failure errors are wrapped as
// internal failures so nothing silently disappears.
func (l *List) Add(err error) {
	if err == nil {
		return
	}

	var fail *Failure
	if errors.As(err, &fail) {
		l.Failures = append(l.Failures, fail)

		return
	}

	l.Failures = append(l.Failures, &Failure{
		Status:  http.StatusInternalServerError,
		Code:    CodeBadRequest,
		Message: err.Error(),
	})
}

// Empty reports whether no failure has been accumulated.
func (l *List) Empty() bool {
	return len(l.Failures) == 0
}

// AsError returns the list as an error, or nil when it is empty.
func (l *List) AsError() error {
	if l.Empty() {
		return nil
	}

	return l
}

// BadRequest returns a new Failure with code for bad requests.
func BadRequest(err error) error {
	if err != nil {
		return BadRequestFromString(err.Error())
	}

	return nil
}

// BadRequestFromString returns a new Failure with code for bad requests with message set from string.
func BadRequestFromString(msg string) error {
	return &Failure{
		Status:  http.StatusBadRequest,
		Code:    CodeBadRequest,
		Message: msg,
	}
}

// RoomNotFound returns a new Failure for a room missing or deleted in the registry.
func RoomNotFound(msg string) error {
	return &Failure{
		Status:  http.StatusBadRequest,
		Code:    CodeRoomNotFound,
		Message: msg,
	}
}

// RoomNotFree returns a new Failure for an overlap conflict.
func RoomNotFree(msg string) error {
	return &Failure{
		Status:  http.StatusConflict,
		Code:    CodeRoomNotFree,
		Message: msg,
	}
}

// ReservationNotFound returns a new Failure for a missing reservation.
func ReservationNotFound(msg string) error {
	return &Failure{
		Status:  http.StatusNotFound,
		Code:    CodeReservationNotFound,
		Message: msg,
	}
}

// ReservationAlreadyDeleted returns a new Failure for a repeated soft delete.
func ReservationAlreadyDeleted(msg string) error {
	return &Failure{
		Status:  http.StatusConflict,
		Code:    CodeReservationAlreadyDeleted,
		Message: msg,
	}
}

// DependencyUnreachable returns a new Failure for a failed dependency probe.
// moreInfo names the dependency so operators can disambiguate.
func DependencyUnreachable(msg, moreInfo string) error {
	return &Failure{
		Status:   http.StatusServiceUnavailable,
		Code:     CodeDependencyUnreachable,
		Message:  msg,
		MoreInfo: moreInfo,
	}
}

// Unauthorized returns a new Failure with code for unauthorized requests.
func Unauthorized(msg string) error {
	return &Failure{
		Status:  http.StatusUnauthorized,
		Code:    CodeBadRequest,
		Message: msg,
	}
}

// InternalError returns a new Failure with code for internal error and message derived from an error interface.
func InternalError(err error) error {
	if err != nil {
		return &Failure{
			Status:  http.StatusInternalServerError,
			Code:    CodeBadRequest,
			Message: err.Error(),
		}
	}

	return nil
}

// GetStatus returns the HTTP status of an error interface.
func GetStatus(err error) int {
	var list *List
	if errors.As(err, &list) {
		// A validation list is a single structured rejection of the request.
		return http.StatusBadRequest
	}

	var fail *Failure
	if errors.As(err, &fail) {
		return fail.Status
	}

	return http.StatusInternalServerError
}

// GetFailures flattens an error into the failures it carries.
func GetFailures(err error) []*Failure {
	var list *List
	if errors.As(err, &list) {
		return list.Failures
	}

	var fail *Failure
	if errors.As(err, &fail) {
		return []*Failure{fail}
	}

	return []*Failure{{
		Status:  http.StatusInternalServerError,
		Code:    CodeBadRequest,
		Message: err.Error(),
	}}
}

// Is reports whether any failure carried by err has the given code.
func Is(err error, code string) bool {
	for _, f := range GetFailures(err) {
		if f.Code == code {
			return true
		}
	}

	return false
}
