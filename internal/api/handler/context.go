package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/mindmetrics/prediction-api/internal/api/middleware"
	"github.com/mindmetrics/prediction-api/internal/core/domain"
)

// currentUser extracts the account injected by the Auth middleware. A missing
// user means the route was registered without the middleware; reject rather
// than serve an unauthenticated request.
func currentUser(c echo.Context) (*domain.User, error) {
	user, ok := c.Get(middleware.UserContextKey).(*domain.User)
	if !ok || user == nil {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication")
	}
	return user, nil
}
