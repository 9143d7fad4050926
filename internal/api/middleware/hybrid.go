package middleware

import (
	"crypto/subtle"
	"encoding/base64"
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/campushq/attendance-system/internal/api/metrics"
	"github.com/campushq/attendance-system/internal/core/auth"
	"github.com/campushq/attendance-system/internal/core/domain"
)

// Headers consumed by the hybrid gate. The names match what the deployed
// check-in firmware sends.
const (
	HeaderTimestamp = "X-TIMESTAMP"
	HeaderAPIKey    = "X-API-KEY"
)

// basicParseState tags the outcome of extracting optional Basic
// credentials from the Authorization header.
type basicParseState int

const (
	basicAbsent basicParseState = iota
	basicMalformed
	basicPresent
)

type basicCredentials struct {
	state    basicParseState
	username string
	password string
}

// extractBasicCredentials parses an Authorization header into a tagged
// result. Malformed input is reported as such, never as an error: the
// hybrid gate treats it the same as absent so a device sending a garbled
// (or foreign-scheme) Authorization header still reaches the key check.
func extractBasicCredentials(header string) basicCredentials {
	if header == "" {
		return basicCredentials{state: basicAbsent}
	}

	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "basic") {
		return basicCredentials{state: basicMalformed}
	}

	decoded, err := base64.StdEncoding.DecodeString(parts[1])
	if err != nil {
		return basicCredentials{state: basicMalformed}
	}

	username, password, ok := strings.Cut(string(decoded), ":")
	if !ok {
		return basicCredentials{state: basicMalformed}
	}

	return basicCredentials{state: basicPresent, username: username, password: password}
}

// DeviceOrAdmin is the hybrid gate guarding the device check-in endpoint.
// Evaluation order per request:
//
//  1. Replay check on X-TIMESTAMP. Outside the window → 403, before any
//     credential is looked at.
//  2. Admin path: Basic credentials, when present and valid, win. Checked
//     first so an operator poking the endpoint with interactive tooling
//     never needs the device secret. Absent, malformed or rejected
//     credentials fall through without erroring.
//  3. Device path: X-API-KEY compared against the configured hardware key.
//  4. Neither → 401 with a message that does not reveal which path failed.
//
// The gate is stateless; both failure modes are terminal for the request.
func DeviceOrAdmin(creds *auth.AdminCredentials, hardwareKey string, guard *auth.ReplayGuard) echo.MiddlewareFunc {
	key := []byte(hardwareKey)

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			rawTS := c.Request().Header.Get(HeaderTimestamp)
			ts, err := strconv.ParseInt(rawTS, 10, 64)
			if err != nil {
				metrics.AuthFailuresTotal.WithLabelValues("hybrid", "timestamp_missing").Inc()
				return echo.NewHTTPError(http.StatusBadRequest, "missing or invalid X-TIMESTAMP header")
			}

			if err := guard.Check(ts); err != nil {
				metrics.AuthFailuresTotal.WithLabelValues("hybrid", "replay").Inc()
				return echo.NewHTTPError(http.StatusForbidden, domain.ErrReplayRejected.Error())
			}

			if bc := extractBasicCredentials(c.Request().Header.Get(echo.HeaderAuthorization)); bc.state == basicPresent {
				if creds.Verify(bc.username, bc.password) {
					c.Set("principal", domain.AdministratorPrincipal(bc.username))
					return next(c)
				}
			}

			supplied := []byte(c.Request().Header.Get(HeaderAPIKey))
			if len(supplied) > 0 && subtle.ConstantTimeCompare(supplied, key) == 1 {
				c.Set("principal", domain.DevicePrincipal())
				return next(c)
			}

			metrics.AuthFailuresTotal.WithLabelValues("hybrid", "credentials").Inc()
			return echo.NewHTTPError(http.StatusUnauthorized, domain.ErrHybridAuthFailed.Error())
		}
	}
}
