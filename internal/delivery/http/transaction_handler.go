package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"library-service/internal/application/command"
	"library-service/internal/application/interfaces"
	apperrors "library-service/internal/errors"
)

type TransactionHandler struct {
	transactionService interfaces.TransactionService
}

func NewTransactionHandler(transactionService interfaces.TransactionService) *TransactionHandler {
	return &TransactionHandler{transactionService: transactionService}
}

func (h *TransactionHandler) Borrow(c echo.Context) error {
	var borrowCommand command.BorrowBooksCommand
	if err := c.Bind(&borrowCommand); err != nil {
		return respondError(c, apperrors.Validation("invalid request body"))
	}

	result, err := h.transactionService.Checkout(c.Request().Context(), callerId(c), &borrowCommand)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, result)
}

func (h *TransactionHandler) Return(c echo.Context) error {
	var returnCommand command.ReturnBookCommand
	if err := c.Bind(&returnCommand); err != nil {
		return respondError(c, apperrors.Validation("invalid request body"))
	}
	if returnCommand.TransactionId == "" {
		return respondError(c, apperrors.Validation("transaction id is required"))
	}

	result, err := h.transactionService.Return(c.Request().Context(), callerId(c), &returnCommand)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, result)
}

func (h *TransactionHandler) List(c echo.Context) error {
	result, err := h.transactionService.FindTransactionsForUser(c.Request().Context(), callerId(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, result)
}
