package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/baeksh/quickreserve/internal/model"
)

func (h *Handler) RegisterRestaurant(c echo.Context) error {
	username, err := actingUser(c)
	if err != nil {
		return err
	}
	var req model.RestaurantRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	name, err := h.restaurantSvc.RegisterRestaurant(c.Request().Context(), username, req)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]string{"name": name})
}

func (h *Handler) UpdateRestaurant(c echo.Context) error {
	username, err := actingUser(c)
	if err != nil {
		return err
	}
	var req model.RestaurantRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	name, err := h.restaurantSvc.UpdateRestaurant(c.Request().Context(), username, c.Param("name"), req)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]string{"name": name})
}

func (h *Handler) DeleteRestaurant(c echo.Context) error {
	username, err := actingUser(c)
	if err != nil {
		return err
	}

	name, err := h.restaurantSvc.DeleteRestaurant(c.Request().Context(), username, c.Param("name"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]string{"name": name})
}

func (h *Handler) GetRestaurant(c echo.Context) error {
	rest, err := h.restaurantSvc.GetRestaurant(c.Request().Context(), c.Param("name"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, rest)
}

func (h *Handler) ListRestaurants(c echo.Context) error {
	page, size, err := pagingParams(c)
	if err != nil {
		return respondError(c, err)
	}

	list, err := h.restaurantSvc.ListRestaurants(c.Request().Context(), page, size)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, list)
}
