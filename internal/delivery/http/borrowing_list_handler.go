package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"library-service/internal/application/command"
	"library-service/internal/application/interfaces"
	apperrors "library-service/internal/errors"
)

type BorrowingListHandler struct {
	listService interfaces.BorrowingListService
}

func NewBorrowingListHandler(listService interfaces.BorrowingListService) *BorrowingListHandler {
	return &BorrowingListHandler{listService: listService}
}

func (h *BorrowingListHandler) Get(c echo.Context) error {
	result, err := h.listService.GetBorrowingList(c.Request().Context(), callerId(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, result)
}

func (h *BorrowingListHandler) Add(c echo.Context) error {
	var addCommand command.AddToBorrowingListCommand
	if err := c.Bind(&addCommand); err != nil {
		return respondError(c, apperrors.Validation("invalid request body"))
	}
	if addCommand.ISBN == "" {
		return respondError(c, apperrors.Validation("isbn is required"))
	}

	result, err := h.listService.AddToBorrowingList(c.Request().Context(), callerId(c), addCommand.ISBN)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, result)
}

func (h *BorrowingListHandler) Remove(c echo.Context) error {
	isbn := c.Param("isbn")
	if isbn == "" {
		return respondError(c, apperrors.Validation("isbn is required"))
	}

	result, err := h.listService.RemoveFromBorrowingList(c.Request().Context(), callerId(c), isbn)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, result)
}

func (h *BorrowingListHandler) Clear(c echo.Context) error {
	if err := h.listService.ClearBorrowingList(c.Request().Context(), callerId(c)); err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "borrowing list cleared"})
}
