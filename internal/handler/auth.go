package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/baeksh/quickreserve/internal/model"
	"github.com/baeksh/quickreserve/pkg/auth"
)

func (h *Handler) Register(c echo.Context) error {
	var req model.SignUpRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := h.authSvc.Register(c.Request().Context(), req); err != nil {
		return respondError(c, err)
	}
	return c.String(http.StatusCreated, "ok")
}

func (h *Handler) Login(c echo.Context) error {
	var req model.SignInRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	resp, err := h.authSvc.Login(c.Request().Context(), req)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, resp)
}

// actingUser pulls the authenticated username installed by the JWT
// middleware.
func actingUser(c echo.Context) (string, error) {
	username := auth.UserName(c.Request().Context())
	if username == "" {
		return "", echo.NewHTTPError(http.StatusUnauthorized, "login required")
	}
	return username, nil
}
