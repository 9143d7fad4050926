package middleware

import (
	"encoding/base64"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/campushq/attendance-system/internal/core/auth"
	"github.com/campushq/attendance-system/internal/core/domain"
)

const (
	testHardwareKey = "hw-device-key-001"
	testAdminUser   = "admin"
	testAdminSecret = "super-secret"
)

func basicHeader(username, password string) string {
	return "Basic " + base64.StdEncoding.EncodeToString([]byte(username+":"+password))
}

type hybridRequest struct {
	timestamp  string
	authHeader string
	apiKey     string
}

func runHybrid(t *testing.T, hr hybridRequest) (*httptest.ResponseRecorder, domain.Principal, bool) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/device/checkin", nil)
	if hr.timestamp != "" {
		req.Header.Set(HeaderTimestamp, hr.timestamp)
	}
	if hr.authHeader != "" {
		req.Header.Set(echo.HeaderAuthorization, hr.authHeader)
	}
	if hr.apiKey != "" {
		req.Header.Set(HeaderAPIKey, hr.apiKey)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	creds := auth.NewAdminCredentials(testAdminUser, testAdminSecret)
	mw := DeviceOrAdmin(creds, testHardwareKey, auth.NewReplayGuard(30*time.Second))

	var principal domain.Principal
	reached := false
	handler := mw(func(c echo.Context) error {
		reached = true
		principal, _ = c.Get("principal").(domain.Principal)
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}
	return rec, principal, reached
}

func nowTS() string {
	return strconv.FormatInt(time.Now().Unix(), 10)
}

func TestDeviceOrAdmin_AdminPath(t *testing.T) {
	rec, principal, reached := runHybrid(t, hybridRequest{
		timestamp:  nowTS(),
		authHeader: basicHeader(testAdminUser, testAdminSecret),
	})
	if !reached || rec.Code != http.StatusOK {
		t.Fatalf("expected accept, got %d", rec.Code)
	}
	if principal.Kind != domain.PrincipalAdministrator || principal.Username != testAdminUser {
		t.Fatalf("expected administrator principal, got %+v", principal)
	}
}

func TestDeviceOrAdmin_DevicePath(t *testing.T) {
	rec, principal, reached := runHybrid(t, hybridRequest{
		timestamp: nowTS(),
		apiKey:    testHardwareKey,
	})
	if !reached || rec.Code != http.StatusOK {
		t.Fatalf("expected accept, got %d", rec.Code)
	}
	if principal.Kind != domain.PrincipalDevice {
		t.Fatalf("expected device principal, got %+v", principal)
	}
}

func TestDeviceOrAdmin_MalformedBasicFallsThrough(t *testing.T) {
	// A garbled Authorization header must not block the device key path.
	for _, header := range []string{
		"Basic %%%not-base64%%%",
		"Basic " + base64.StdEncoding.EncodeToString([]byte("no-colon-here")),
		"Bearer some-jwt-looking-thing",
		"Basic",
	} {
		rec, principal, reached := runHybrid(t, hybridRequest{
			timestamp:  nowTS(),
			authHeader: header,
			apiKey:     testHardwareKey,
		})
		if !reached || rec.Code != http.StatusOK {
			t.Fatalf("header %q: expected device fallback accept, got %d", header, rec.Code)
		}
		if principal.Kind != domain.PrincipalDevice {
			t.Fatalf("header %q: expected device principal, got %+v", header, principal)
		}
	}
}

func TestDeviceOrAdmin_StaleTimestampBeatsEverything(t *testing.T) {
	// Replay check runs before any credential inspection: even perfect
	// admin credentials and the right device key are rejected.
	stale := strconv.FormatInt(time.Now().Add(-40*time.Second).Unix(), 10)
	rec, _, reached := runHybrid(t, hybridRequest{
		timestamp:  stale,
		authHeader: basicHeader(testAdminUser, testAdminSecret),
		apiKey:     testHardwareKey,
	})
	if reached {
		t.Fatalf("handler must not run on stale timestamp")
	}
	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", rec.Code)
	}
}

func TestDeviceOrAdmin_FutureTimestampRejected(t *testing.T) {
	future := strconv.FormatInt(time.Now().Add(45*time.Second).Unix(), 10)
	rec, _, reached := runHybrid(t, hybridRequest{
		timestamp: future,
		apiKey:    testHardwareKey,
	})
	if reached || rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", rec.Code)
	}
}

func TestDeviceOrAdmin_BothPathsWrong(t *testing.T) {
	rec, _, reached := runHybrid(t, hybridRequest{
		timestamp:  nowTS(),
		authHeader: basicHeader(testAdminUser, "wrong-secret"),
		apiKey:     "wrong-device-key",
	})
	if reached {
		t.Fatalf("handler must not run")
	}
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestDeviceOrAdmin_NoCredentialsAtAll(t *testing.T) {
	rec, _, reached := runHybrid(t, hybridRequest{timestamp: nowTS()})
	if reached || rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestDeviceOrAdmin_MissingTimestamp(t *testing.T) {
	rec, _, reached := runHybrid(t, hybridRequest{apiKey: testHardwareKey})
	if reached {
		t.Fatalf("handler must not run without a timestamp")
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestExtractBasicCredentials(t *testing.T) {
	cases := []struct {
		name   string
		header string
		state  basicParseState
	}{
		{"absent", "", basicAbsent},
		{"present", basicHeader("u", "p"), basicPresent},
		{"wrong scheme", "Digest abc", basicMalformed},
		{"bad base64", "Basic !!!", basicMalformed},
		{"no colon", "Basic " + base64.StdEncoding.EncodeToString([]byte("nope")), basicMalformed},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := extractBasicCredentials(tc.header)
			if got.state != tc.state {
				t.Fatalf("state = %d, want %d", got.state, tc.state)
			}
		})
	}

	got := extractBasicCredentials(basicHeader("user", "pa:ss"))
	if got.state != basicPresent || got.username != "user" || got.password != "pa:ss" {
		t.Fatalf("colon in password mishandled: %+v", got)
	}
}
