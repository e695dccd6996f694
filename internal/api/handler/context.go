package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/ratewise/store-ratings/internal/core/domain"
)

// ctxIdentity extracts the verified identity injected by the Auth middleware.
// A missing claim means the middleware did not run for this route, so reject
// with 401 before touching any service.
func ctxIdentity(c echo.Context) (userID uint, role domain.Role, err error) {
	userID, ok := c.Get("user_id").(uint)
	if !ok || userID == 0 {
		return 0, "", echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}

	roleStr, _ := c.Get("role").(string)
	role = domain.Role(roleStr)
	if !role.Valid() {
		return 0, "", echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}

	return userID, role, nil
}
