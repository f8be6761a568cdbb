package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"todoapi/internal/adapter/http/helper"
	"todoapi/internal/adapter/http/middleware"
	"todoapi/internal/adapter/http/validation"
	"todoapi/internal/core/domain"
	"todoapi/internal/core/model/request"
	"todoapi/internal/core/model/response"
	"todoapi/internal/core/port"
)

type TodoHandler struct {
	svc port.TodoService
}

func NewTodoHandler(svc port.TodoService) *TodoHandler {
	return &TodoHandler{svc: svc}
}

func (h *TodoHandler) List(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)

	if !ok {
		helper.SendError(c, http.StatusUnauthorized, "User is not logged in")
		return
	}

	q := port.TodoQuery{
		Page:   queryInt(c, "page", 1),
		Limit:  queryInt(c, "limit", 10),
		Sort:   c.DefaultQuery("sort", "createdAt"),
		Order:  c.DefaultQuery("order", "desc"),
		Search: c.Query("search"),
	}

	list, err := h.svc.List(c.Request.Context(), user.ID, q)

	if err != nil {
		helper.HandleError(c, err)
		return
	}

	helper.SendData(c, http.StatusOK, list)
}

func (h *TodoHandler) Get(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)

	if !ok {
		helper.SendError(c, http.StatusUnauthorized, "User is not logged in")
		return
	}

	todoID, ok := todoIDParam(c)

	if !ok {
		return
	}

	todo, err := h.svc.Get(c.Request.Context(), todoID, user.ID)

	if err != nil {
		helper.HandleError(c, err)
		return
	}

	helper.SendData(c, http.StatusOK, gin.H{"todo": response.NewTodoResponse(todo)})
}

func (h *TodoHandler) Create(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)

	if !ok {
		helper.SendError(c, http.StatusUnauthorized, "User is not logged in")
		return
	}

	var req request.TodoRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		helper.SendError(c, http.StatusBadRequest, "Invalid request parameters")
		return
	}

	req.Normalize()

	if err := validation.Validator.Struct(&req); err != nil {
		helper.SendError(c, http.StatusUnprocessableEntity, validation.FirstError(err))
		return
	}

	todo, err := h.svc.Create(c.Request.Context(), user.ID, &req)

	if err != nil {
		helper.HandleError(c, err)
		return
	}

	helper.SendData(c, http.StatusCreated, gin.H{"todo": response.NewTodoResponse(todo)})
}

func (h *TodoHandler) Update(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)

	if !ok {
		helper.SendError(c, http.StatusUnauthorized, "User is not logged in")
		return
	}

	todoID, ok := todoIDParam(c)

	if !ok {
		return
	}

	var req request.TodoRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		helper.SendError(c, http.StatusBadRequest, "Invalid request parameters")
		return
	}

	req.Normalize()

	if err := validation.Validator.Struct(&req); err != nil {
		helper.SendError(c, http.StatusUnprocessableEntity, validation.FirstError(err))
		return
	}

	todo, err := h.svc.Update(c.Request.Context(), todoID, user.ID, &req)

	if err != nil {
		helper.HandleError(c, err)
		return
	}

	helper.SendData(c, http.StatusOK, gin.H{"todo": response.NewTodoResponse(todo)})
}

func (h *TodoHandler) UpdateStatus(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)

	if !ok {
		helper.SendError(c, http.StatusUnauthorized, "User is not logged in")
		return
	}

	todoID, ok := todoIDParam(c)

	if !ok {
		return
	}

	var req request.TodoStatusRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		helper.SendError(c, http.StatusBadRequest, "Invalid request parameters")
		return
	}

	if err := validation.Validator.Struct(&req); err != nil {
		helper.SendError(c, http.StatusBadRequest, validation.FirstError(err))
		return
	}

	status, err := domain.ParseTodoStatus(req.Status)

	if err != nil {
		helper.SendError(c, http.StatusBadRequest, "Status must be one of Completed, Progress, Pending")
		return
	}

	todo, err := h.svc.UpdateStatus(c.Request.Context(), todoID, user.ID, status)

	if err != nil {
		helper.HandleError(c, err)
		return
	}

	helper.SendData(c, http.StatusOK, gin.H{"todo": response.NewTodoResponse(todo)})
}

func (h *TodoHandler) Delete(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)

	if !ok {
		helper.SendError(c, http.StatusUnauthorized, "User is not logged in")
		return
	}

	todoID, ok := todoIDParam(c)

	if !ok {
		return
	}

	if err := h.svc.Delete(c.Request.Context(), todoID, user.ID); err != nil {
		helper.HandleError(c, err)
		return
	}

	helper.SendSuccess(c, http.StatusOK, "Todo deleted successfully")
}

// todoIDParam validates the identifier shape before any query runs.
func todoIDParam(c *gin.Context) (string, bool) {
	todoID := c.Param("todoId")

	if _, err := uuid.Parse(todoID); err != nil {
		helper.SendError(c, http.StatusBadRequest, "Invalid Todo ID format")
		return "", false
	}

	return todoID, true
}

func queryInt(c *gin.Context, key string, fallback int) int {
	raw := c.Query(key)

	if raw == "" {
		return fallback
	}

	value, err := strconv.Atoi(raw)

	if err != nil || value < 1 {
		return fallback
	}

	return value
}
