package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"todoweb/internal/dto"
	"todoweb/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// TodoHandler renders the todo pages and performs the form actions.
type TodoHandler struct {
	svc *service.TodoService
	log zerolog.Logger
}

func NewTodoHandler(svc *service.TodoService, log zerolog.Logger) *TodoHandler {
	return &TodoHandler{svc: svc, log: log}
}

// List renders all todos, newest first.
func (h *TodoHandler) List(c *gin.Context) {
	list, err := h.svc.List(c.Request.Context())
	if err != nil {
		h.serverError(c, err)
		return
	}
	c.HTML(http.StatusOK, "list.html", gin.H{"Todos": list})
}

// CreateForm renders an empty create form.
func (h *TodoHandler) CreateForm(c *gin.Context) {
	c.HTML(http.StatusOK, "create.html", gin.H{"Form": dto.CreateTodoForm{}})
}

// Create persists a new todo from the posted form and redirects to the list.
// A missing title re-renders the form with an error and no state change.
func (h *TodoHandler) Create(c *gin.Context) {
	var form dto.CreateTodoForm
	if err := c.ShouldBind(&form); err != nil {
		c.HTML(http.StatusOK, "create.html", gin.H{"Form": form, "Error": "Title is required."})
		return
	}
	dueDate, err := dto.ParseDueDate(form.DueDate)
	if err != nil {
		c.HTML(http.StatusOK, "create.html", gin.H{"Form": form, "Error": err.Error()})
		return
	}
	if _, err := h.svc.Create(c.Request.Context(), form.Title, form.Description, dueDate); err != nil {
		if errors.Is(err, service.ErrTitleRequired) {
			c.HTML(http.StatusOK, "create.html", gin.H{"Form": form, "Error": "Title is required."})
			return
		}
		h.serverError(c, err)
		return
	}
	c.Redirect(http.StatusFound, "/")
}

// UpdateForm renders the update form pre-filled with the todo's current values.
func (h *TodoHandler) UpdateForm(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	t, err := h.svc.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			h.notFound(c)
			return
		}
		h.serverError(c, err)
		return
	}
	form := dto.UpdateTodoForm{Title: t.Title, Description: t.Description, Resolved: t.Resolved}
	c.HTML(http.StatusOK, "update.html", gin.H{"ID": t.ID, "Form": form})
}

// Update overwrites title, description and resolved, then redirects to the list.
func (h *TodoHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var form dto.UpdateTodoForm
	if err := c.ShouldBind(&form); err != nil {
		c.HTML(http.StatusOK, "update.html", gin.H{"ID": id, "Form": form, "Error": "Title is required."})
		return
	}
	if _, err := h.svc.Update(c.Request.Context(), id, form.Title, form.Description, form.Resolved); err != nil {
		switch {
		case errors.Is(err, service.ErrNotFound):
			h.notFound(c)
		case errors.Is(err, service.ErrTitleRequired):
			c.HTML(http.StatusOK, "update.html", gin.H{"ID": id, "Form": form, "Error": "Title is required."})
		default:
			h.serverError(c, err)
		}
		return
	}
	c.Redirect(http.StatusFound, "/")
}

// DeleteConfirm renders the confirmation page showing the todo's title.
func (h *TodoHandler) DeleteConfirm(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	t, err := h.svc.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			h.notFound(c)
			return
		}
		h.serverError(c, err)
		return
	}
	c.HTML(http.StatusOK, "delete.html", gin.H{"Todo": t})
}

// Delete removes the record permanently and redirects to the list.
func (h *TodoHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			h.notFound(c)
			return
		}
		h.serverError(c, err)
		return
	}
	c.Redirect(http.StatusFound, "/")
}

// Toggle flips resolved and redirects to the list.
func (h *TodoHandler) Toggle(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if _, err := h.svc.Toggle(c.Request.Context(), id); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			h.notFound(c)
			return
		}
		h.serverError(c, err)
		return
	}
	c.Redirect(http.StatusFound, "/")
}

func (h *TodoHandler) notFound(c *gin.Context) {
	c.HTML(http.StatusNotFound, "404.html", gin.H{"Message": "No TODO with that id."})
	c.Abort()
}

func (h *TodoHandler) serverError(c *gin.Context, err error) {
	h.log.Error().Err(err).Str("path", c.Request.URL.Path).Msg("request failed")
	c.String(http.StatusInternalServerError, "internal server error")
	c.Abort()
}

// parseID reads the id path param. A non-numeric id cannot refer to any todo,
// so it is treated the same as an unknown one.
func parseID(c *gin.Context) (int64, bool) {
	raw := c.Param("id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		c.HTML(http.StatusNotFound, "404.html", gin.H{"Message": "No TODO with that id."})
		c.Abort()
		return 0, false
	}
	return id, true
}
