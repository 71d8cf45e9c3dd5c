package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/baeksh/quickreserve/internal/errs"
	"github.com/baeksh/quickreserve/internal/model"
)

func (h *Handler) CreateReview(c echo.Context) error {
	username, err := actingUser(c)
	if err != nil {
		return err
	}
	var req model.ReviewRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	review, err := h.reviewSvc.CreateReview(c.Request().Context(), username, req)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, review)
}

func (h *Handler) UpdateReview(c echo.Context) error {
	username, err := actingUser(c)
	if err != nil {
		return err
	}
	id, err := reviewID(c)
	if err != nil {
		return respondError(c, err)
	}
	var req model.ReviewRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	review, err := h.reviewSvc.UpdateReview(c.Request().Context(), id, username, req)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, review)
}

func (h *Handler) DeleteReview(c echo.Context) error {
	username, err := actingUser(c)
	if err != nil {
		return err
	}
	id, err := reviewID(c)
	if err != nil {
		return respondError(c, err)
	}

	deletedID, err := h.reviewSvc.DeleteReview(c.Request().Context(), id, username)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]int64{"id": deletedID})
}

func (h *Handler) GetReview(c echo.Context) error {
	id, err := reviewID(c)
	if err != nil {
		return respondError(c, err)
	}

	review, err := h.reviewSvc.GetReviewDetail(c.Request().Context(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, review)
}

func (h *Handler) ListReviews(c echo.Context) error {
	reviews, err := h.reviewSvc.ListReviews(c.Request().Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, reviews)
}

func reviewID(c echo.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return 0, errs.ErrInvalidInput
	}
	return id, nil
}
