package http

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"library-service/internal/application/command"
	"library-service/internal/application/interfaces"
	apperrors "library-service/internal/errors"
)

type AuthHandler struct {
	authService interfaces.AuthService
}

func NewAuthHandler(authService interfaces.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

func (h *AuthHandler) Register(c echo.Context) error {
	var registerCommand command.RegisterUserCommand
	if err := c.Bind(&registerCommand); err != nil {
		return respondError(c, apperrors.Validation("invalid request body"))
	}
	if registerCommand.Name == "" || registerCommand.Email == "" || registerCommand.Password == "" {
		return respondError(c, apperrors.Validation("all required fields must be provided"))
	}

	result, err := h.authService.Register(c.Request().Context(), &registerCommand)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusCreated, result)
}

func (h *AuthHandler) Login(c echo.Context) error {
	var loginCommand command.LoginUserCommand
	if err := c.Bind(&loginCommand); err != nil {
		return respondError(c, apperrors.Validation("invalid request body"))
	}
	if loginCommand.Email == "" || loginCommand.Password == "" {
		return respondError(c, apperrors.Validation("email and password are required"))
	}

	result, err := h.authService.Login(c.Request().Context(), &loginCommand)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, result)
}

func (h *AuthHandler) Refresh(c echo.Context) error {
	var refreshCommand command.RefreshTokenCommand
	if err := c.Bind(&refreshCommand); err != nil {
		return respondError(c, apperrors.Validation("invalid request body"))
	}
	if refreshCommand.RefreshToken == "" {
		return respondError(c, apperrors.Validation("refresh token is required"))
	}

	result, err := h.authService.Refresh(c.Request().Context(), &refreshCommand)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, result)
}

func (h *AuthHandler) Logout(c echo.Context) error {
	var logoutCommand command.LogoutCommand
	if err := c.Bind(&logoutCommand); err != nil {
		return respondError(c, apperrors.Validation("invalid request body"))
	}
	if logoutCommand.RefreshToken == "" {
		return respondError(c, apperrors.Validation("refresh token is required"))
	}

	if err := h.authService.Logout(c.Request().Context(), &logoutCommand); err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "logged out successfully"})
}

func (h *AuthHandler) GetUser(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return respondError(c, apperrors.Validation("invalid user id"))
	}

	result, err := h.authService.FindUserById(c.Request().Context(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, result)
}

func (h *AuthHandler) UpdateUser(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return respondError(c, apperrors.Validation("invalid user id"))
	}

	// Users may edit themselves; admins may edit anyone.
	if id != callerId(c) && !callerIsAdmin(c) {
		return respondError(c, apperrors.Forbidden("not allowed to update this user"))
	}

	var updateCommand command.UpdateUserCommand
	if err := c.Bind(&updateCommand); err != nil {
		return respondError(c, apperrors.Validation("invalid request body"))
	}

	result, err := h.authService.UpdateUser(c.Request().Context(), id, &updateCommand, callerRole(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, result)
}

func (h *AuthHandler) DeleteUser(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return respondError(c, apperrors.Validation("invalid user id"))
	}

	if err := h.authService.DeleteUser(c.Request().Context(), id); err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "user deleted"})
}
