package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"prismtasks/internal/service"
)

// AdminHandler handles admin-only todo management. Role enforcement lives in
// the route group's middleware; these handlers see every row.
type AdminHandler struct {
	todoService service.TodoService
}

// NewAdminHandler creates a new admin handler.
func NewAdminHandler(todoService service.TodoService) *AdminHandler {
	return &AdminHandler{todoService: todoService}
}

// ListAll godoc
// @Summary List all todos across users
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.Todo
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Router /admin/todo [get]
func (h *AdminHandler) ListAll(c echo.Context) error {
	todos, err := h.todoService.ListAll(c.Request().Context())
	if err != nil {
		return rejection(err)
	}
	return c.JSON(http.StatusOK, todos)
}

// Update godoc
// @Summary Update any todo by id
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Todo ID"
// @Param request body TodoUpdateRequest true "Fields to update"
// @Success 200 {object} model.Todo
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /admin/todo/{id} [put]
func (h *AdminHandler) Update(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	var req TodoUpdateRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	todo, err := h.todoService.UpdateAny(c.Request().Context(), id, req.toUpdate())
	if err != nil {
		return rejection(err)
	}
	return c.JSON(http.StatusOK, todo)
}

// Delete godoc
// @Summary Delete any todo by id
// @Tags admin
// @Security BearerAuth
// @Param id path int true "Todo ID"
// @Success 204
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /admin/todo/{id} [delete]
func (h *AdminHandler) Delete(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	if err := h.todoService.DeleteAny(c.Request().Context(), id); err != nil {
		return rejection(err)
	}
	return c.NoContent(http.StatusNoContent)
}
