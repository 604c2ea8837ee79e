package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"prismtasks/internal/auth"
	apperrors "prismtasks/internal/errors"
	"prismtasks/internal/service"
)

// TodoHandler handles the authenticated user's todo endpoints.
type TodoHandler struct {
	todoService service.TodoService
}

// NewTodoHandler creates a new todo handler.
func NewTodoHandler(todoService service.TodoService) *TodoHandler {
	return &TodoHandler{todoService: todoService}
}

// TodoRequest represents a todo creation payload.
type TodoRequest struct {
	Title       string `json:"title" validate:"required,min=3"`
	Description string `json:"description" validate:"required,min=3,max=100"`
	Priority    int    `json:"priority" validate:"required,gte=1,lte=4"`
	Complete    bool   `json:"complete"`
}

// TodoUpdateRequest represents a full or partial todo update. Omitted fields
// retain their prior values.
type TodoUpdateRequest struct {
	Title       *string `json:"title" validate:"omitempty,min=3"`
	Description *string `json:"description" validate:"omitempty,min=3,max=100"`
	Priority    *int    `json:"priority" validate:"omitempty,gte=1,lte=4"`
	Complete    *bool   `json:"complete"`
}

func (r *TodoUpdateRequest) toUpdate() service.TodoUpdate {
	return service.TodoUpdate{
		Title:       r.Title,
		Description: r.Description,
		Priority:    r.Priority,
		Complete:    r.Complete,
	}
}

// List godoc
// @Summary List the caller's todos
// @Tags todos
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.Todo
// @Failure 401 {object} errors.ErrorResponse
// @Router / [get]
func (h *TodoHandler) List(c echo.Context) error {
	claims, err := auth.CurrentIdentity(c)
	if err != nil {
		return rejection(err)
	}

	todos, err := h.todoService.ListOwned(c.Request().Context(), claims.UserID)
	if err != nil {
		return rejection(err)
	}
	return c.JSON(http.StatusOK, todos)
}

// Get godoc
// @Summary Get one of the caller's todos by id
// @Tags todos
// @Produce json
// @Security BearerAuth
// @Param id path int true "Todo ID"
// @Success 200 {object} model.Todo
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /todo/{id} [get]
func (h *TodoHandler) Get(c echo.Context) error {
	claims, err := auth.CurrentIdentity(c)
	if err != nil {
		return rejection(err)
	}
	id, err := parseID(c)
	if err != nil {
		return err
	}

	todo, err := h.todoService.GetOwned(c.Request().Context(), id, claims.UserID)
	if err != nil {
		return rejection(err)
	}
	return c.JSON(http.StatusOK, todo)
}

// Create godoc
// @Summary Create a todo owned by the caller
// @Tags todos
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body TodoRequest true "Todo payload"
// @Success 201 {object} model.Todo
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Router /todo [post]
func (h *TodoHandler) Create(c echo.Context) error {
	claims, err := auth.CurrentIdentity(c)
	if err != nil {
		return rejection(err)
	}

	var req TodoRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	todo, err := h.todoService.Create(c.Request().Context(), claims.UserID, service.TodoParams{
		Title:       req.Title,
		Description: req.Description,
		Priority:    req.Priority,
		Complete:    req.Complete,
	})
	if err != nil {
		return rejection(err)
	}
	return c.JSON(http.StatusCreated, todo)
}

// Update godoc
// @Summary Update one of the caller's todos
// @Tags todos
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Todo ID"
// @Param request body TodoUpdateRequest true "Fields to update"
// @Success 200 {object} model.Todo
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /todo/{id} [put]
func (h *TodoHandler) Update(c echo.Context) error {
	claims, err := auth.CurrentIdentity(c)
	if err != nil {
		return rejection(err)
	}
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

	todo, err := h.todoService.UpdateOwned(c.Request().Context(), id, claims.UserID, req.toUpdate())
	if err != nil {
		return rejection(err)
	}
	return c.JSON(http.StatusOK, todo)
}

// Delete godoc
// @Summary Delete one of the caller's todos
// @Tags todos
// @Security BearerAuth
// @Param id path int true "Todo ID"
// @Success 204
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /todo/{id} [delete]
func (h *TodoHandler) Delete(c echo.Context) error {
	claims, err := auth.CurrentIdentity(c)
	if err != nil {
		return rejection(err)
	}
	id, err := parseID(c)
	if err != nil {
		return err
	}

	if err := h.todoService.DeleteOwned(c.Request().Context(), id, claims.UserID); err != nil {
		return rejection(err)
	}
	return c.NoContent(http.StatusNoContent)
}

// parseID reads the positive integer id path parameter.
func parseID(c echo.Context) (uint, error) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	return uint(id), nil
}

// rejection converts a domain error into the standard HTTP error response.
func rejection(err error) *echo.HTTPError {
	httpErr := apperrors.MapErrorToHTTP(err)
	return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
}
