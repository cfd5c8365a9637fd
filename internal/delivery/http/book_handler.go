package http

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"library-service/internal/application/command"
	"library-service/internal/application/interfaces"
	"library-service/internal/domain/repositories"
	apperrors "library-service/internal/errors"
)

type BookHandler struct {
	bookService interfaces.BookService
}

func NewBookHandler(bookService interfaces.BookService) *BookHandler {
	return &BookHandler{bookService: bookService}
}

func (h *BookHandler) GetAll(c echo.Context) error {
	result, err := h.bookService.FindAllBooks(c.Request().Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, result)
}

func (h *BookHandler) GetByISBN(c echo.Context) error {
	result, err := h.bookService.FindBookByISBN(c.Request().Context(), c.Param("isbn"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, result)
}

// Search filters the catalog by any combination of query parameters:
// title, author, genre, year, available, minRating.
func (h *BookHandler) Search(c echo.Context) error {
	var search repositories.BookSearch

	if title := c.QueryParam("title"); title != "" {
		search.Title = &title
	}
	if author := c.QueryParam("author"); author != "" {
		search.Author = &author
	}
	if genre := c.QueryParam("genre"); genre != "" {
		search.Genre = &genre
	}
	if yearParam := c.QueryParam("year"); yearParam != "" {
		year, err := strconv.Atoi(yearParam)
		if err != nil {
			return respondError(c, apperrors.Validation("year must be a number"))
		}
		search.Year = &year
	}
	if availableParam := c.QueryParam("available"); availableParam != "" {
		available, err := strconv.ParseBool(availableParam)
		if err != nil {
			return respondError(c, apperrors.Validation("available must be true or false"))
		}
		search.Available = &available
	}
	if ratingParam := c.QueryParam("minRating"); ratingParam != "" {
		minRating, err := strconv.ParseFloat(ratingParam, 64)
		if err != nil {
			return respondError(c, apperrors.Validation("minRating must be a number"))
		}
		search.MinRating = &minRating
	}

	result, err := h.bookService.SearchBooks(c.Request().Context(), search)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, result)
}

func (h *BookHandler) Save(c echo.Context) error {
	var saveCommand command.SaveBookCommand
	if err := c.Bind(&saveCommand); err != nil {
		return respondError(c, apperrors.Validation("invalid request body"))
	}

	result, err := h.bookService.SaveBook(c.Request().Context(), &saveCommand)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusCreated, result)
}

func (h *BookHandler) Update(c echo.Context) error {
	var updateCommand command.UpdateBookCommand
	if err := c.Bind(&updateCommand); err != nil {
		return respondError(c, apperrors.Validation("invalid request body"))
	}

	result, err := h.bookService.UpdateBook(c.Request().Context(), c.Param("isbn"), &updateCommand)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, result)
}

func (h *BookHandler) Delete(c echo.Context) error {
	if err := h.bookService.DeleteBook(c.Request().Context(), c.Param("isbn")); err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "book deleted"})
}

func (h *BookHandler) AddReview(c echo.Context) error {
	var reviewCommand command.AddReviewCommand
	if err := c.Bind(&reviewCommand); err != nil {
		return respondError(c, apperrors.Validation("invalid request body"))
	}

	result, err := h.bookService.AddReview(c.Request().Context(), callerId(c), c.Param("isbn"), &reviewCommand)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusCreated, result)
}
