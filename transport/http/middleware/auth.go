package middleware

import (
	"context"
	"errors"
	"net/http"

	"biletado/infras/jwt"
	"biletado/infras/otel"
	"biletado/shared/constant"
	"biletado/shared/failure"
	"biletado/transport/http/response"

	"github.com/rs/zerolog/log"
)

// Auth guards the mutating routes with a bearer token check.
type Auth interface {
	Auth(http.Handler) http.Handler
}

type authImpl struct {
	jwtService jwt.JWT
	otel       otel.Otel
}

func NewAuthMiddleware(jwtService jwt.JWT, otel otel.Otel) Auth {
	return &authImpl{
		jwtService: jwtService,
		otel:       otel,
	}
}

// Auth validates the access token and stores its claims on the context.
func (m *authImpl) Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		ctx := request.Context()
		_, scope := m.otel.NewScope(ctx, constant.OtelHandlerScopeName, "auth.middleware")
		defer scope.End()

		scope.SetAttributes(map[string]any{
			"middleware.type": "auth",
			"http.path":       request.URL.Path,
			"http.method":     request.Method,
		})

		authHeader := request.Header.Get(constant.RequestHeaderAuthorization)
		if authHeader == "" {
			err := failure.Unauthorized("missing authorization header")
			scope.TraceError(err)
			response.WithError(writer, request, err)

			return
		}

		tokenString, err := jwt.ExtractTokenFromHeader(authHeader)
		if err != nil {
			err := failure.Unauthorized("invalid authorization header format")
			scope.TraceError(err)
			response.WithError(writer, request, err)

			return
		}

		claims, err := m.jwtService.ValidateToken(tokenString, jwt.AccessToken)
		if err != nil {
			var message string

			switch {
			case errors.Is(err, jwt.ErrExpiredToken):
				message = "token has expired"
			case errors.Is(err, jwt.ErrInvalidToken):
				message = "invalid token"
			case errors.Is(err, jwt.ErrInvalidClaim):
				message = "invalid token claims"
			default:
				message = "token validation failed"
			}

			err := failure.Unauthorized(message)
			scope.TraceError(err)
			response.WithError(writer, request, err)

			return
		}

		if claims.UserID == "" || claims.Email == "" {
			log.Error().Msg("token carries empty identity claims")

			err := failure.Unauthorized("invalid token claims")
			scope.TraceError(err)
			response.WithError(writer, request, err)

			return
		}

		ctx = context.WithValue(ctx, constant.ContextKeyUserID, claims.UserID)
		ctx = context.WithValue(ctx, constant.ContextKeyUserEmail, claims.Email)
		ctx = context.WithValue(ctx, constant.ContextKeyTokenID, claims.TokenID)

		next.ServeHTTP(writer, request.WithContext(ctx))
	})
}
