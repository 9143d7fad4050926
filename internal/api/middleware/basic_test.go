package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/campushq/attendance-system/internal/core/auth"
	"github.com/campushq/attendance-system/internal/core/domain"
)

func TestAdminAuth_ValidCredentials(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(echo.HeaderAuthorization, basicHeader("admin", "super-secret"))
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	mw := AdminAuth(auth.NewAdminCredentials("admin", "super-secret"))

	called := false
	handler := mw(func(c echo.Context) error {
		called = true
		p, ok := c.Get("principal").(domain.Principal)
		if !ok || p.Kind != domain.PrincipalAdministrator || p.Username != "admin" {
			t.Fatalf("unexpected principal: %+v", c.Get("principal"))
		}
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called {
		t.Fatalf("next not called")
	}
}

func TestAdminAuth_ChallengesOnFailure(t *testing.T) {
	e := echo.New()

	cases := []struct {
		name   string
		header string
	}{
		{"no credentials", ""},
		{"wrong password", basicHeader("admin", "wrong")},
		{"wrong username", basicHeader("root", "super-secret")},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tc.header != "" {
				req.Header.Set(echo.HeaderAuthorization, tc.header)
			}
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			mw := AdminAuth(auth.NewAdminCredentials("admin", "super-secret"))
			handler := mw(func(c echo.Context) error {
				t.Fatalf("should not reach next")
				return nil
			})

			if err := handler(c); err != nil {
				e.HTTPErrorHandler(err, c)
			}
			if rec.Code != http.StatusUnauthorized {
				t.Fatalf("expected 401, got %d", rec.Code)
			}
			// Interactive clients need the Basic challenge to re-prompt.
			challenge := rec.Header().Get(echo.HeaderWWWAuthenticate)
			if !strings.Contains(strings.ToLower(challenge), "basic") {
				t.Fatalf("expected Basic challenge, got %q", challenge)
			}
		})
	}
}
