package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/campushq/attendance-system/internal/api/metrics"
	"github.com/campushq/attendance-system/internal/core/auth"
	"github.com/campushq/attendance-system/internal/core/domain"
)

// Auth is the bearer-token gate. It validates the presented token and
// injects the resolved principal into the request context. Handlers behind
// this gate may assume "user_id" and "role" are populated.
func Auth(tokens *auth.TokenService, log zerolog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
			if authHeader == "" {
				metrics.AuthFailuresTotal.WithLabelValues("bearer", "missing_header").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				metrics.AuthFailuresTotal.WithLabelValues("bearer", "invalid_header").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header")
			}

			claims, err := tokens.Verify(parts[1])
			if err != nil {
				switch {
				case errors.Is(err, domain.ErrTokenExpired):
					metrics.AuthFailuresTotal.WithLabelValues("bearer", "token_expired").Inc()
					return echo.NewHTTPError(http.StatusUnauthorized, "token expired")
				case errors.Is(err, domain.ErrTokenMalformedClaims):
					// The signature verified, so this token came from us.
					// Missing claims mean an issuance bug, not a client
					// mistake; make sure it surfaces in the logs.
					metrics.AuthFailuresTotal.WithLabelValues("bearer", "malformed_claims").Inc()
					log.Error().
						Str("path", c.Path()).
						Msg("validly-signed token with missing claims, check token issuance")
					return echo.NewHTTPError(http.StatusUnauthorized, "token missing required claims")
				default:
					metrics.AuthFailuresTotal.WithLabelValues("bearer", "token_invalid").Inc()
					return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
				}
			}

			c.Set("principal", domain.UserPrincipal(claims.Subject, claims.Role))
			c.Set("user_id", claims.Subject)
			c.Set("role", claims.Role)

			return next(c)
		}
	}
}
