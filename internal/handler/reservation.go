package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/baeksh/quickreserve/internal/model"
)

func (h *Handler) MakeReservation(c echo.Context) error {
	username, err := actingUser(c)
	if err != nil {
		return err
	}
	var req model.ReservationRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	info, err := h.reservationSvc.MakeReservation(c.Request().Context(), username, req)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, info)
}

func (h *Handler) CancelReservation(c echo.Context) error {
	username, err := actingUser(c)
	if err != nil {
		return err
	}
	var req model.ReservationCancelRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	info, err := h.reservationSvc.CancelReservation(c.Request().Context(), username, req)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, info)
}

func (h *Handler) ApproveReservation(c echo.Context) error {
	username, err := actingUser(c)
	if err != nil {
		return err
	}
	reservationID := c.Param("reservationId")

	info, err := h.reservationSvc.ApproveReservation(c.Request().Context(), username, reservationID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, info)
}

func (h *Handler) RejectReservation(c echo.Context) error {
	username, err := actingUser(c)
	if err != nil {
		return err
	}
	var req model.ReservationRejectRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	info, err := h.reservationSvc.RejectReservation(c.Request().Context(), username, req)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, info)
}

func (h *Handler) VisitReservation(c echo.Context) error {
	username, err := actingUser(c)
	if err != nil {
		return err
	}
	var req model.ReservationVisitRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	info, err := h.reservationSvc.VisitReservation(c.Request().Context(), username, req)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, info)
}

func (h *Handler) GetReservationDetail(c echo.Context) error {
	username, err := actingUser(c)
	if err != nil {
		return err
	}
	reservationID := c.Param("reservationId")

	info, err := h.reservationSvc.GetReservationDetail(c.Request().Context(), username, reservationID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, info)
}

func (h *Handler) GetRestaurantReservations(c echo.Context) error {
	username, err := actingUser(c)
	if err != nil {
		return err
	}
	restaurantName := c.Param("restaurantName")
	page, size, err := pagingParams(c)
	if err != nil {
		return respondError(c, err)
	}

	list, err := h.reservationSvc.GetRestaurantReservations(c.Request().Context(), username, restaurantName, page, size)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, list)
}

func (h *Handler) GetUserReservations(c echo.Context) error {
	username, err := actingUser(c)
	if err != nil {
		return err
	}
	page, size, err := pagingParams(c)
	if err != nil {
		return respondError(c, err)
	}

	list, err := h.reservationSvc.GetUserReservations(c.Request().Context(), username, page, size)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, list)
}
