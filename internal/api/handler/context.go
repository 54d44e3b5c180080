package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/propertyai/agent-platform/internal/core/domain"
)

// ctxClaims extracts the auth claims injected by the Auth middleware and
// performs a fast-fail check before any service call: both user_id and role
// must be present (presence proves the middleware ran).
func ctxClaims(c echo.Context) (userID, role string, err error) {
	userID, _ = c.Get("user_id").(string)
	role, _ = c.Get("role").(string)
	if userID == "" || role == "" {
		return "", "", echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return userID, role, nil
}

// requireSelfOrAdmin rejects requests where the bearer user is neither the
// target user nor an admin. Agents may only touch their own resources.
func requireSelfOrAdmin(c echo.Context, targetUserID string) (string, error) {
	userID, role, err := ctxClaims(c)
	if err != nil {
		return "", err
	}
	if role != domain.RoleAdmin && userID != targetUserID {
		return "", echo.NewHTTPError(http.StatusForbidden, "access forbidden")
	}
	return userID, nil
}
