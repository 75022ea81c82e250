package reservation_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	otelMocks "biletado/infras/otel/mocks"
	"biletado/internal/domains/reservation/model/dto"
	"biletado/internal/domains/reservation/service/mocks"
	"biletado/internal/handlers/reservation"
	gDto "biletado/shared/dto"
	"biletado/shared/failure"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type passthroughAuth struct{}

func (passthroughAuth) Auth(next http.Handler) http.Handler {
	return next
}

type errorsBody struct {
	Errors []struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"errors"`
	Trace string `json:"trace"`
}

func newTestRouter(service *mocks.MockReservation) *chi.Mux {
	handler := reservation.New(service, otelMocks.NewOtel(), passthroughAuth{})

	router := chi.NewRouter()
	router.Route("/reservations", handler.Router)

	return router
}

func errorCodes(t *testing.T, body []byte) []string {
	t.Helper()

	var parsed errorsBody
	require.NoError(t, json.Unmarshal(body, &parsed))

	codes := make([]string, 0, len(parsed.Errors))
	for _, e := range parsed.Errors {
		codes = append(codes, e.Code)
	}

	return codes
}

func TestHandlerGetReservations(t *testing.T) {
	t.Run("default listing filters out soft-deleted", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockService := mocks.NewMockReservation(ctrl)

		mockService.EXPECT().
			GetAll(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, filter gDto.FilterGroup) (dto.ReservationListResponse, error) {
				require.Len(t, filter.Filters, 1)

				deletedFilter, ok := filter.Filters[0].(gDto.Filter)
				require.True(t, ok)
				assert.Equal(t, gDto.FilterIsNull, deletedFilter.Operator)

				return dto.ReservationListResponse{Reservations: []dto.ReservationResponse{}}, nil
			})

		recorder := httptest.NewRecorder()
		newTestRouter(mockService).ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/reservations/", nil))

		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.JSONEq(t, `{"reservations":[]}`, recorder.Body.String())
	})

	t.Run("all query parameters become filters", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockService := mocks.NewMockReservation(ctrl)

		roomID := uuid.New()

		mockService.EXPECT().
			GetAll(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, filter gDto.FilterGroup) (dto.ReservationListResponse, error) {
				// room_id, before, after; include_deleted=true drops the null check.
				require.Len(t, filter.Filters, 3)

				// before and after are boundary filters, looser than the
				// overlap predicate on purpose.
				beforeFilter, ok := filter.Filters[1].(gDto.Filter)
				require.True(t, ok)
				assert.Equal(t, "from", beforeFilter.Field)
				assert.Equal(t, gDto.FilterOperatorLessEq, beforeFilter.Operator)

				afterFilter, ok := filter.Filters[2].(gDto.Filter)
				require.True(t, ok)
				assert.Equal(t, "to", afterFilter.Field)
				assert.Equal(t, gDto.FilterOperatorGreaterEq, afterFilter.Operator)

				return dto.ReservationListResponse{Reservations: []dto.ReservationResponse{}}, nil
			})

		target := "/reservations/?room_id=" + roomID.String() + "&before=2026-04-01&after=2026-03-01&include_deleted=true"

		recorder := httptest.NewRecorder()
		newTestRouter(mockService).ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, target, nil))

		assert.Equal(t, http.StatusOK, recorder.Code)
	})

	t.Run("every malformed parameter is reported at once", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockService := mocks.NewMockReservation(ctrl)

		target := "/reservations/?room_id=not-a-uuid&before=april&include_deleted=maybe"

		recorder := httptest.NewRecorder()
		newTestRouter(mockService).ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, target, nil))

		assert.Equal(t, http.StatusBadRequest, recorder.Code)

		codes := errorCodes(t, recorder.Body.Bytes())
		assert.Equal(t, []string{failure.CodeBadRequest, failure.CodeBadRequest, failure.CodeBadRequest}, codes)
	})
}

func TestHandlerGetReservationByID(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockService := mocks.NewMockReservation(ctrl)

		id := uuid.New()

		mockService.EXPECT().
			Get(gomock.Any(), id).
			Return(dto.ReservationResponse{ID: id.String()}, nil)

		recorder := httptest.NewRecorder()
		newTestRouter(mockService).ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/reservations/"+id.String(), nil))

		assert.Equal(t, http.StatusOK, recorder.Code)
	})

	t.Run("malformed id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockService := mocks.NewMockReservation(ctrl)

		recorder := httptest.NewRecorder()
		newTestRouter(mockService).ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/reservations/not-a-uuid", nil))

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})

	t.Run("missing", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockService := mocks.NewMockReservation(ctrl)

		id := uuid.New()

		mockService.EXPECT().
			Get(gomock.Any(), id).
			Return(dto.ReservationResponse{}, failure.ReservationNotFound("reservation not found"))

		recorder := httptest.NewRecorder()
		newTestRouter(mockService).ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/reservations/"+id.String(), nil))

		assert.Equal(t, http.StatusNotFound, recorder.Code)
		assert.Equal(t, []string{failure.CodeReservationNotFound}, errorCodes(t, recorder.Body.Bytes()))
	})
}

func TestHandlerCreateReservation(t *testing.T) {
	t.Run("created", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockService := mocks.NewMockReservation(ctrl)

		req := dto.UpsertReservationRequest{
			RoomID: "c0f1ad7e-1f4a-4f62-9b44-1f8e9e1fb0aa",
			From:   "2026-03-10",
			To:     "2026-03-12",
		}

		mockService.EXPECT().
			Create(gomock.Any(), req).
			Return(dto.ReservationResponse{ID: uuid.NewString()}, nil)

		body := `{"room_id":"c0f1ad7e-1f4a-4f62-9b44-1f8e9e1fb0aa","from":"2026-03-10","to":"2026-03-12"}`

		recorder := httptest.NewRecorder()
		newTestRouter(mockService).ServeHTTP(recorder, httptest.NewRequest(http.MethodPost, "/reservations/", strings.NewReader(body)))

		assert.Equal(t, http.StatusCreated, recorder.Code)
	})

	t.Run("conflict passthrough", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockService := mocks.NewMockReservation(ctrl)

		listed := &failure.List{}
		listed.Add(failure.RoomNotFree("room is already reserved for the given date range"))

		mockService.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			Return(dto.ReservationResponse{}, listed.AsError())

		body := `{"room_id":"c0f1ad7e-1f4a-4f62-9b44-1f8e9e1fb0aa","from":"2026-03-10","to":"2026-03-12"}`

		recorder := httptest.NewRecorder()
		newTestRouter(mockService).ServeHTTP(recorder, httptest.NewRequest(http.MethodPost, "/reservations/", strings.NewReader(body)))

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
		assert.Equal(t, []string{failure.CodeRoomNotFree}, errorCodes(t, recorder.Body.Bytes()))
	})

	t.Run("unreadable body", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockService := mocks.NewMockReservation(ctrl)

		recorder := httptest.NewRecorder()
		newTestRouter(mockService).ServeHTTP(recorder, httptest.NewRequest(http.MethodPost, "/reservations/", strings.NewReader(`{not json`)))

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})
}

func TestHandlerUpsertReservation(t *testing.T) {
	body := `{"room_id":"c0f1ad7e-1f4a-4f62-9b44-1f8e9e1fb0aa","from":"2026-03-10","to":"2026-03-12"}`

	t.Run("creating responds created", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockService := mocks.NewMockReservation(ctrl)

		id := uuid.New()

		mockService.EXPECT().
			Upsert(gomock.Any(), id, gomock.Any()).
			Return(dto.UpsertReservationResponse{
				Created:     true,
				Reservation: dto.ReservationResponse{ID: id.String()},
			}, nil)

		recorder := httptest.NewRecorder()
		newTestRouter(mockService).ServeHTTP(recorder, httptest.NewRequest(http.MethodPut, "/reservations/"+id.String(), strings.NewReader(body)))

		assert.Equal(t, http.StatusCreated, recorder.Code)
	})

	t.Run("replacing responds ok", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockService := mocks.NewMockReservation(ctrl)

		id := uuid.New()

		mockService.EXPECT().
			Upsert(gomock.Any(), id, gomock.Any()).
			Return(dto.UpsertReservationResponse{
				Created:     false,
				Reservation: dto.ReservationResponse{ID: id.String()},
			}, nil)

		recorder := httptest.NewRecorder()
		newTestRouter(mockService).ServeHTTP(recorder, httptest.NewRequest(http.MethodPut, "/reservations/"+id.String(), strings.NewReader(body)))

		assert.Equal(t, http.StatusOK, recorder.Code)
	})

	t.Run("malformed id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockService := mocks.NewMockReservation(ctrl)

		recorder := httptest.NewRecorder()
		newTestRouter(mockService).ServeHTTP(recorder, httptest.NewRequest(http.MethodPut, "/reservations/not-a-uuid", strings.NewReader(body)))

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})
}

func TestHandlerDeleteReservation(t *testing.T) {
	t.Run("soft delete", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockService := mocks.NewMockReservation(ctrl)

		id := uuid.New()

		mockService.EXPECT().
			Delete(gomock.Any(), id, false).
			Return(nil)

		recorder := httptest.NewRecorder()
		newTestRouter(mockService).ServeHTTP(recorder, httptest.NewRequest(http.MethodDelete, "/reservations/"+id.String(), nil))

		assert.Equal(t, http.StatusNoContent, recorder.Code)
		assert.Empty(t, recorder.Body.String())
	})

	t.Run("permanent delete", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockService := mocks.NewMockReservation(ctrl)

		id := uuid.New()

		mockService.EXPECT().
			Delete(gomock.Any(), id, true).
			Return(nil)

		recorder := httptest.NewRecorder()
		newTestRouter(mockService).ServeHTTP(recorder, httptest.NewRequest(http.MethodDelete, "/reservations/"+id.String()+"?permanent=true", nil))

		assert.Equal(t, http.StatusNoContent, recorder.Code)
	})

	t.Run("malformed permanent flag", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockService := mocks.NewMockReservation(ctrl)

		id := uuid.New()

		recorder := httptest.NewRecorder()
		newTestRouter(mockService).ServeHTTP(recorder, httptest.NewRequest(http.MethodDelete, "/reservations/"+id.String()+"?permanent=yes-please", nil))

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})

	t.Run("repeated soft delete conflicts", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockService := mocks.NewMockReservation(ctrl)

		id := uuid.New()

		mockService.EXPECT().
			Delete(gomock.Any(), id, false).
			Return(failure.ReservationAlreadyDeleted("reservation is already deleted"))

		recorder := httptest.NewRecorder()
		newTestRouter(mockService).ServeHTTP(recorder, httptest.NewRequest(http.MethodDelete, "/reservations/"+id.String(), nil))

		assert.Equal(t, http.StatusConflict, recorder.Code)
		assert.Equal(t, []string{failure.CodeReservationAlreadyDeleted}, errorCodes(t, recorder.Body.Bytes()))
	})
}
