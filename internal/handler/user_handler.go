package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"prismtasks/internal/auth"
	"prismtasks/internal/service"
)

// UserHandler handles the authenticated user's profile endpoints.
type UserHandler struct {
	userService service.UserService
}

// NewUserHandler creates a new user handler.
func NewUserHandler(userService service.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// ChangePasswordRequest represents a password change payload.
type ChangePasswordRequest struct {
	OldPassword string `json:"old_password" validate:"required"`
	NewPassword string `json:"new_password" validate:"required"`
}

// UpdateUserRequest represents a partial profile update. Omitted fields
// retain their prior values.
type UpdateUserRequest struct {
	Username    *string `json:"username" validate:"omitempty,min=3,max=64"`
	Email       *string `json:"email" validate:"omitempty,email"`
	FirstName   *string `json:"first_name" validate:"omitempty,min=1"`
	LastName    *string `json:"last_name" validate:"omitempty,min=1"`
	PhoneNumber *string `json:"phone_number"`
}

// GetProfile godoc
// @Summary Get the caller's profile
// @Tags user
// @Produce json
// @Security BearerAuth
// @Success 200 {object} model.User
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /user/get_user [get]
func (h *UserHandler) GetProfile(c echo.Context) error {
	claims, err := auth.CurrentIdentity(c)
	if err != nil {
		return rejection(err)
	}

	user, err := h.userService.GetProfile(c.Request().Context(), claims.UserID)
	if err != nil {
		return rejection(err)
	}
	return c.JSON(http.StatusOK, user)
}

// ChangePassword godoc
// @Summary Change the caller's password
// @Tags user
// @Accept json
// @Security BearerAuth
// @Param request body ChangePasswordRequest true "Old and new password"
// @Success 204
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 422 {object} errors.ErrorResponse
// @Router /user/change_password [patch]
func (h *UserHandler) ChangePassword(c echo.Context) error {
	claims, err := auth.CurrentIdentity(c)
	if err != nil {
		return rejection(err)
	}

	var req ChangePasswordRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := h.userService.ChangePassword(c.Request().Context(), claims.UserID, req.OldPassword, req.NewPassword); err != nil {
		return rejection(err)
	}
	return c.NoContent(http.StatusNoContent)
}

// UpdateProfile godoc
// @Summary Update the caller's profile
// @Tags user
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body UpdateUserRequest true "Fields to update"
// @Success 200 {object} model.User
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 409 {object} errors.ErrorResponse
// @Router /user/update_user [put]
func (h *UserHandler) UpdateProfile(c echo.Context) error {
	claims, err := auth.CurrentIdentity(c)
	if err != nil {
		return rejection(err)
	}

	var req UpdateUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user, err := h.userService.UpdateProfile(c.Request().Context(), claims.UserID, service.ProfileUpdate{
		Username:    req.Username,
		Email:       req.Email,
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		PhoneNumber: req.PhoneNumber,
	})
	if err != nil {
		return rejection(err)
	}
	return c.JSON(http.StatusOK, user)
}

// DeleteAccount godoc
// @Summary Delete the caller's account and all owned todos
// @Tags user
// @Security BearerAuth
// @Success 204
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /user/delete_user [delete]
func (h *UserHandler) DeleteAccount(c echo.Context) error {
	claims, err := auth.CurrentIdentity(c)
	if err != nil {
		return rejection(err)
	}

	if err := h.userService.DeleteAccount(c.Request().Context(), claims.UserID); err != nil {
		return rejection(err)
	}
	return c.NoContent(http.StatusNoContent)
}
