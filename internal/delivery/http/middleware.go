package http

import (
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"library-service/internal/domain/entities"
	apperrors "library-service/internal/errors"
	"library-service/internal/infrastructure"
)

const (
	contextKeyUserId = "user_id"
	contextKeyRole   = "role"
)

// BearerAuth verifies the Authorization header and stores the caller's
// identity and role on the request context.
func BearerAuth(jwtService *infrastructure.JWTService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
			if authHeader == "" {
				return respondError(c, apperrors.Unauthenticated("auth token is not present in request headers"))
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || parts[0] != "Bearer" {
				return respondError(c, apperrors.Unauthenticated("malformed authorization header"))
			}

			claims, err := jwtService.VerifyAccessToken(parts[1])
			if err != nil {
				return respondError(c, err)
			}

			userId, err := uuid.Parse(claims.UserId)
			if err != nil {
				return respondError(c, apperrors.Unauthenticated("invalid token subject"))
			}

			c.Set(contextKeyUserId, userId)
			c.Set(contextKeyRole, claims.Role)
			return next(c)
		}
	}
}

// RequireRole denies callers whose token role does not match. It runs
// after BearerAuth.
func RequireRole(role string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if callerRole(c) != role {
				return respondError(c, apperrors.Forbidden("user does not have permission to perform this operation"))
			}
			return next(c)
		}
	}
}

// RateLimit throttles by client IP; used on the unauthenticated auth
// routes.
func RateLimit(limiter *infrastructure.RateLimiter) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if !limiter.Allow(c.RealIP()) {
				return c.JSON(http.StatusTooManyRequests, errorBody{Message: "too many requests, please try again later"})
			}
			return next(c)
		}
	}
}

func callerId(c echo.Context) uuid.UUID {
	if id, ok := c.Get(contextKeyUserId).(uuid.UUID); ok {
		return id
	}
	return uuid.Nil
}

func callerRole(c echo.Context) string {
	if role, ok := c.Get(contextKeyRole).(string); ok {
		return role
	}
	return ""
}

func callerIsAdmin(c echo.Context) bool {
	return callerRole(c) == entities.RoleAdmin
}
