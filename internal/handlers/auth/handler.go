package auth

import (
	"net/http"

	"biletado/infras/otel"
	"biletado/internal/domains/auth/model/dto"
	"biletado/internal/domains/auth/service"
	"biletado/shared/constant"
	"biletado/shared/failure"
	"biletado/shared/validator"
	"biletado/transport/http/middleware"
	"biletado/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Auth
	otel    otel.Otel
	auth    middleware.Auth
}

func New(service service.Auth, otel otel.Otel, auth middleware.Auth) Handler {
	return Handler{
		service: service,
		otel:    otel,
		auth:    auth,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/auth", func(routerGroup chi.Router) {
		routerGroup.Post("/register", handler.Register)
		routerGroup.Post("/login", handler.Login)
		routerGroup.Post("/refresh", handler.RefreshToken)
		routerGroup.With(handler.auth.Auth).Post("/change-password", handler.ChangePassword)
	})
}

// Register creates an operator account.
// @Summary Register an account
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body dto.RegisterRequest true "Register Request"
// @Success 201 {object} response.Message
// @Failure 400 {object} response.Errors
// @Router /api/v3/auth/register [post]
func (handler *Handler) Register(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Register")
	defer scope.End()

	req := dto.RegisterRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Debug().Err(err).Msg("failed to validate register request")

		response.WithError(w, r, err)

		return
	}

	if err := handler.service.Register(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to register user")

		response.WithError(w, r, err)

		return
	}

	response.WithMessage(w, http.StatusCreated, "account registered successfully")
}

// Login exchanges credentials for a token pair.
// @Summary Log in
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Login Request"
// @Success 200 {object} dto.LoginResponse
// @Failure 400 {object} response.Errors
// @Failure 401 {object} response.Errors
// @Router /api/v3/auth/login [post]
func (handler *Handler) Login(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Login")
	defer scope.End()

	req := dto.LoginRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Debug().Err(err).Msg("failed to validate login request")

		response.WithError(w, r, err)

		return
	}

	res, err := handler.service.Login(ctx, req)
	if err != nil {
		scope.TraceError(err)

		response.WithError(w, r, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// RefreshToken exchanges a refresh token for a fresh pair.
// @Summary Refresh tokens
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body dto.RefreshTokenRequest true "Refresh Token Request"
// @Success 200 {object} dto.RefreshTokenResponse
// @Failure 401 {object} response.Errors
// @Router /api/v3/auth/refresh [post]
func (handler *Handler) RefreshToken(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".RefreshToken")
	defer scope.End()

	req := dto.RefreshTokenRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Debug().Err(err).Msg("failed to validate refresh request")

		response.WithError(w, r, err)

		return
	}

	res, err := handler.service.RefreshToken(ctx, req)
	if err != nil {
		scope.TraceError(err)

		response.WithError(w, r, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// ChangePassword rotates the authenticated account's password.
// @Summary Change password
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body dto.ChangePasswordRequest true "Change Password Request"
// @Success 200 {object} response.Message
// @Failure 400 {object} response.Errors
// @Failure 401 {object} response.Errors
// @Router /api/v3/auth/change-password [post]
// @Security BearerAuth
func (handler *Handler) ChangePassword(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ChangePassword")
	defer scope.End()

	rawUserID, _ := ctx.Value(constant.ContextKeyUserID).(string)

	userID, err := uuid.Parse(rawUserID)
	if err != nil {
		err = failure.Unauthorized("invalid token claims")
		scope.TraceError(err)

		response.WithError(w, r, err)

		return
	}

	req := dto.ChangePasswordRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Debug().Err(err).Msg("failed to validate change password request")

		response.WithError(w, r, err)

		return
	}

	if err := handler.service.ChangePassword(ctx, req, userID); err != nil {
		scope.TraceError(err)

		response.WithError(w, r, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "password changed successfully")
}
