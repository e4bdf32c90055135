package handler

import (
	"strconv"

	"github.com/labstack/echo/v4"
)

// emailFromContext returns the authenticated email injected by the
// JWT middleware, or ok=false when the request is unauthenticated.
func emailFromContext(c echo.Context) (string, bool) {
	email, _ := c.Get("email").(string)
	return email, email != ""
}

// paramID parses a numeric path parameter.
func paramID(c echo.Context, name string) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	return id, err == nil && id != 0
}
