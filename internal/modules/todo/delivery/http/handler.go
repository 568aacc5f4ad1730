package handler

import (
	"net/http"
	"strconv"

	"eduhub.vn/studyportal/internal/modules/todo/dto"
	todo "eduhub.vn/studyportal/internal/modules/todo/service"
	"eduhub.vn/studyportal/pkg/response"
	"eduhub.vn/studyportal/pkg/validator"
	"github.com/gin-gonic/gin"
)

type TodoHandler struct {
	service todo.TodoService
}

func NewTodoHandler(service todo.TodoService) *TodoHandler {
	return &TodoHandler{service: service}
}

func (h *TodoHandler) GetTodos(c *gin.Context) {
	todos, err := h.service.List(c.Request.Context())
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, todos)
}

func (h *TodoHandler) CreateTodo(c *gin.Context) {
	var req dto.CreateTodoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": validator.FormatValidationError(err)})
		return
	}

	createdBy := ""
	if currentUser, err := response.CurrentUser(c); err == nil {
		createdBy = currentUser.Username
	}

	id, err := h.service.Create(c.Request.Context(), createdBy, req)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	response.Created(c, id, "Todo added successfully")
}

func (h *TodoHandler) UpdateTodo(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req dto.UpdateTodoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": validator.FormatValidationError(err)})
		return
	}

	if err := h.service.Update(c.Request.Context(), id, req); err != nil {
		response.ResponseError(c, err)
		return
	}

	response.Message(c, "Todo updated successfully")
}

func (h *TodoHandler) DeleteTodo(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		response.ResponseError(c, err)
		return
	}

	response.Message(c, "Todo deleted successfully")
}

func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return 0, false
	}
	return uint(id), true
}
