package reservation

import (
	"net/http"
	"strconv"
	"time"

	"biletado/infras/otel"
	"biletado/internal/domains/reservation/model"
	"biletado/internal/domains/reservation/model/dto"
	"biletado/internal/domains/reservation/service"
	"biletado/shared/constant"
	gDto "biletado/shared/dto"
	"biletado/shared/failure"
	"biletado/shared/validator"
	"biletado/transport/http/middleware"
	"biletado/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Reservation
	otel    otel.Otel
	auth    middleware.Auth
}

func New(service service.Reservation, otel otel.Otel, auth middleware.Auth) Handler {
	return Handler{
		service: service,
		otel:    otel,
		auth:    auth,
	}
}

// Router registers the reservation routes. Reads are public; mutations
// require a bearer token.
func (handler *Handler) Router(router chi.Router) {
	router.Get("/", handler.GetReservations)
	router.Get("/{id}", handler.GetReservationByID)

	router.Group(func(routerGroup chi.Router) {
		routerGroup.Use(handler.auth.Auth)
		routerGroup.Post("/", handler.CreateReservation)
		routerGroup.Put("/{id}", handler.UpsertReservation)
		routerGroup.Delete("/{id}", handler.DeleteReservation)
	})
}

// GetReservations lists reservations matching the query parameters.
// @Summary List reservations
// @Description List reservations, by default only the active ones. Every malformed query parameter is reported.
// @Tags Reservation
// @Produce json
// @Param room_id query string false "Filter by room ID"
// @Param before query string false "Only reservations starting on or before this date (YYYY-MM-DD)"
// @Param after query string false "Only reservations ending on or after this date (YYYY-MM-DD)"
// @Param include_deleted query bool false "Include soft-deleted reservations"
// @Success 200 {object} dto.ReservationListResponse
// @Failure 400 {object} response.Errors
// @Router /api/v3/reservations [get]
func (handler *Handler) GetReservations(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetReservations")
	defer scope.End()

	filter, err := parseListFilter(r)
	if err != nil {
		scope.TraceError(err)
		log.Debug().Err(err).Msg("rejected reservation listing query")

		response.WithError(w, r, err)

		return
	}

	reservations, err := handler.service.GetAll(ctx, filter)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get reservations")

		response.WithError(w, r, err)

		return
	}

	response.WithJSON(w, http.StatusOK, reservations)
}

// GetReservationByID retrieves a single reservation, soft-deleted ones included.
// @Summary Get a reservation by ID
// @Tags Reservation
// @Produce json
// @Param id path string true "Reservation ID"
// @Success 200 {object} dto.ReservationResponse
// @Failure 400 {object} response.Errors
// @Failure 404 {object} response.Errors
// @Router /api/v3/reservations/{id} [get]
func (handler *Handler) GetReservationByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetReservationByID")
	defer scope.End()

	id, err := uuid.Parse(chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		err = failure.BadRequestFromString("id must be a valid UUID")
		scope.TraceError(err)

		response.WithError(w, r, err)

		return
	}

	reservation, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Debug().Err(err).Str("reservationId", id.String()).Msg("failed to get reservation")

		response.WithError(w, r, err)

		return
	}

	response.WithJSON(w, http.StatusOK, reservation)
}

// CreateReservation books a room under a fresh id.
// @Summary Create a reservation
// @Description Book a room for a half-open date interval. All validation failures are reported at once.
// @Tags Reservation
// @Accept json
// @Produce json
// @Param request body dto.UpsertReservationRequest true "Reservation payload"
// @Success 201 {object} dto.ReservationResponse
// @Failure 400 {object} response.Errors
// @Failure 409 {object} response.Errors
// @Router /api/v3/reservations [post]
// @Security BearerAuth
func (handler *Handler) CreateReservation(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateReservation")
	defer scope.End()

	req := dto.UpsertReservationRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Debug().Err(err).Msg("failed to decode reservation body")

		response.WithError(w, r, err)

		return
	}

	reservation, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Debug().Err(err).Msg("failed to create reservation")

		response.WithError(w, r, err)

		return
	}

	scope.AddEvent("reservation created")

	response.WithJSON(w, http.StatusCreated, reservation)
}

// UpsertReservation replaces the reservation under the given id, creating it
// when absent.
// @Summary Create or replace a reservation
// @Description Replace the reservation stored under the id. A soft-deleted reservation is overwritten and resurrected.
// @Tags Reservation
// @Accept json
// @Produce json
// @Param id path string true "Reservation ID"
// @Param request body dto.UpsertReservationRequest true "Reservation payload"
// @Success 200 {object} dto.ReservationResponse "Existing reservation replaced"
// @Success 201 {object} dto.ReservationResponse "Reservation created"
// @Failure 400 {object} response.Errors
// @Failure 409 {object} response.Errors
// @Router /api/v3/reservations/{id} [put]
// @Security BearerAuth
func (handler *Handler) UpsertReservation(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpsertReservation")
	defer scope.End()

	id, err := uuid.Parse(chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		err = failure.BadRequestFromString("id must be a valid UUID")
		scope.TraceError(err)

		response.WithError(w, r, err)

		return
	}

	req := dto.UpsertReservationRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Debug().Err(err).Msg("failed to decode reservation body")

		response.WithError(w, r, err)

		return
	}

	res, err := handler.service.Upsert(ctx, id, req)
	if err != nil {
		scope.TraceError(err)
		log.Debug().Err(err).Str("reservationId", id.String()).Msg("failed to upsert reservation")

		response.WithError(w, r, err)

		return
	}

	status := http.StatusOK
	if res.Created {
		status = http.StatusCreated
	}

	response.WithJSON(w, status, res.Reservation)
}

// DeleteReservation soft-deletes a reservation, or removes it permanently.
// @Summary Delete a reservation
// @Description Soft-delete by default; permanent=true removes the record entirely regardless of its deletion state.
// @Tags Reservation
// @Param id path string true "Reservation ID"
// @Param permanent query bool false "Remove the record instead of marking it deleted"
// @Success 204 "Reservation deleted"
// @Failure 400 {object} response.Errors
// @Failure 404 {object} response.Errors
// @Failure 409 {object} response.Errors
// @Router /api/v3/reservations/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteReservation(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteReservation")
	defer scope.End()

	id, err := uuid.Parse(chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		err = failure.BadRequestFromString("id must be a valid UUID")
		scope.TraceError(err)

		response.WithError(w, r, err)

		return
	}

	permanent := false

	if raw := r.URL.Query().Get(constant.RequestParamPermanent); raw != constant.Empty {
		permanent, err = strconv.ParseBool(raw)
		if err != nil {
			err = failure.BadRequestFromString("permanent must be a boolean")
			scope.TraceError(err)

			response.WithError(w, r, err)

			return
		}
	}

	if err := handler.service.Delete(ctx, id, permanent); err != nil {
		scope.TraceError(err)
		log.Debug().Err(err).Str("reservationId", id.String()).Msg("failed to delete reservation")

		response.WithError(w, r, err)

		return
	}

	scope.AddEvent("reservation deleted")

	response.WithNoContent(w)
}

// parseListFilter builds the listing filter from the query string. Every
// malformed parameter contributes its own failure; nothing short-circuits.
func parseListFilter(r *http.Request) (gDto.FilterGroup, error) {
	query := r.URL.Query()

	var errs failure.List

	filter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters:  []any{},
	}

	if raw := query.Get(constant.RequestParamRoomID); raw != constant.Empty {
		roomID, err := uuid.Parse(raw)
		if err != nil {
			errs.Add(failure.BadRequestFromString("room_id must be a valid UUID"))
		} else {
			filter.Filters = append(filter.Filters, gDto.Filter{
				Field:    model.FieldRoomID,
				Operator: gDto.FilterOperatorEq,
				Value:    roomID,
				Table:    model.TableName,
			})
		}
	}

	if raw := query.Get(constant.RequestParamBefore); raw != constant.Empty {
		before, err := time.Parse(constant.DateFormat, raw)
		if err != nil {
			errs.Add(failure.BadRequestFromString("before must be a date formatted as YYYY-MM-DD"))
		} else {
			filter.Filters = append(filter.Filters, gDto.Filter{
				ArgName:  constant.RequestParamBefore,
				Field:    model.FieldFrom,
				Operator: gDto.FilterOperatorLessEq,
				Value:    before,
				Table:    model.TableName,
			})
		}
	}

	if raw := query.Get(constant.RequestParamAfter); raw != constant.Empty {
		after, err := time.Parse(constant.DateFormat, raw)
		if err != nil {
			errs.Add(failure.BadRequestFromString("after must be a date formatted as YYYY-MM-DD"))
		} else {
			filter.Filters = append(filter.Filters, gDto.Filter{
				ArgName:  constant.RequestParamAfter,
				Field:    model.FieldTo,
				Operator: gDto.FilterOperatorGreaterEq,
				Value:    after,
				Table:    model.TableName,
			})
		}
	}

	includeDeleted := false

	if raw := query.Get(constant.RequestParamIncludeDeleted); raw != constant.Empty {
		parsed, err := strconv.ParseBool(raw)
		if err != nil {
			errs.Add(failure.BadRequestFromString("include_deleted must be a boolean"))
		} else {
			includeDeleted = parsed
		}
	}

	if !includeDeleted {
		filter.Filters = append(filter.Filters, gDto.Filter{
			Field:    model.FieldDeletedAt,
			Operator: gDto.FilterIsNull,
			Table:    model.TableName,
		})
	}

	if err := errs.AsError(); err != nil {
		return filter, err
	}

	return filter, nil
}
