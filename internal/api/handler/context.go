package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/campushq/attendance-system/internal/core/domain"
)

// principalFrom extracts the Principal injected by the auth middlewares.
// Its presence proves one of the gates ran; handlers behind a gate treat a
// missing principal as a wiring bug and reject with 401.
func principalFrom(c echo.Context) (domain.Principal, error) {
	p, ok := c.Get("principal").(domain.Principal)
	if !ok {
		return domain.Principal{}, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication")
	}
	return p, nil
}

// listRange reads the skip/limit paging query parameters. Absent or invalid
// values degrade to 0, which the repositories treat as "no limit".
func listRange(c echo.Context) (skip, limit int64) {
	skip, _ = strconv.ParseInt(c.QueryParam("skip"), 10, 64)
	limit, _ = strconv.ParseInt(c.QueryParam("limit"), 10, 64)
	if skip < 0 {
		skip = 0
	}
	if limit < 0 {
		limit = 0
	}
	return skip, limit
}

// pathInt64 parses an integer path parameter, rejecting with 400 on garbage.
func pathInt64(c echo.Context, name string) (int64, error) {
	v, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, name+" must be an integer")
	}
	return v, nil
}

// queryInt64 parses an integer query parameter, rejecting with 400 on garbage.
func queryInt64(c echo.Context, name string) (int64, error) {
	v, err := strconv.ParseInt(c.QueryParam(name), 10, 64)
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, name+" must be an integer")
	}
	return v, nil
}
