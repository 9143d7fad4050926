package middleware

import (
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"

	"github.com/campushq/attendance-system/internal/api/metrics"
	"github.com/campushq/attendance-system/internal/core/auth"
	"github.com/campushq/attendance-system/internal/core/domain"
)

// adminRealm appears in the WWW-Authenticate challenge, prompting
// interactive clients (browsers, curl -u) to re-ask for credentials.
const adminRealm = "attendance-admin"

// AdminAuth is the interactive admin gate: HTTP Basic credentials checked
// in constant time against the configured pair. Failures answer 401 with a
// Basic challenge so client tooling shows a login prompt; successes expose
// the Administrator principal to downstream handlers.
func AdminAuth(creds *auth.AdminCredentials) echo.MiddlewareFunc {
	return echomiddleware.BasicAuthWithConfig(echomiddleware.BasicAuthConfig{
		Realm: adminRealm,
		Validator: func(username, password string, c echo.Context) (bool, error) {
			if !creds.Verify(username, password) {
				metrics.AuthFailuresTotal.WithLabelValues("admin", "credentials").Inc()
				return false, nil
			}
			c.Set("principal", domain.AdministratorPrincipal(username))
			return true, nil
		},
	})
}
