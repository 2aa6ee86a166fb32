package handler

import (
	"backend/internal/app/ds"
	"backend/internal/app/dto"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// ============ ДОМЕН ЗАДАЧИ ============

func todoToDTO(todo ds.Todo) dto.TodoResponse {
	return dto.TodoResponse{
		ID:        todo.ID,
		Title:     todo.Title,
		Memo:      todo.Memo,
		Created:   todo.Created.Format(time.RFC3339),
		Completed: todo.Completed,
	}
}

// GetTodos список задач пользователя
// @Summary Получение списка задач
// @Description Возвращает задачи текущего пользователя
// @Tags Todos
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.TodoListResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/todos [get]
func (h *APIHandler) GetTodos(c *gin.Context) {
	userID, _, err := h.getUserFromContext(c)
	if err != nil {
		h.errorResponse(c, http.StatusUnauthorized, err.Error())
		return
	}

	todos, err := h.Repository.GetTodosByUser(userID)
	if err != nil {
		logrus.Error("Error getting todos: ", err)
		h.errorResponse(c, http.StatusInternalServerError, "Ошибка получения задач")
		return
	}

	dtoTodos := make([]dto.TodoResponse, len(todos))
	for i, todo := range todos {
		dtoTodos[i] = todoToDTO(todo)
	}

	c.JSON(http.StatusOK, dto.TodoListResponse{
		Todos: dtoTodos,
		Total: len(dtoTodos),
	})
}

// GetTodo одна задача
// @Summary Получение задачи
// @Description Возвращает задачу текущего пользователя по ID
// @Tags Todos
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID задачи"
// @Success 200 {object} dto.TodoResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/todos/{id} [get]
func (h *APIHandler) GetTodo(c *gin.Context) {
	userID, _, err := h.getUserFromContext(c)
	if err != nil {
		h.errorResponse(c, http.StatusUnauthorized, err.Error())
		return
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		h.errorResponse(c, http.StatusBadRequest, "Неверный ID задачи")
		return
	}

	todo, err := h.Repository.GetTodoByID(uint(id), userID)
	if err != nil {
		h.domainErrorResponse(c, err)
		return
	}

	c.JSON(http.StatusOK, todoToDTO(*todo))
}

// CreateTodo создание задачи
// @Summary Создание задачи
// @Description Добавляет задачу текущему пользователю
// @Tags Todos
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateTodoRequest true "Данные задачи"
// @Success 201 {object} dto.SuccessResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /api/todos [post]
func (h *APIHandler) CreateTodo(c *gin.Context) {
	userID, _, err := h.getUserFromContext(c)
	if err != nil {
		h.errorResponse(c, http.StatusUnauthorized, err.Error())
		return
	}

	var request dto.CreateTodoRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		h.errorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	todo, err := h.Repository.CreateTodo(userID, request.Title, request.Memo)
	if err != nil {
		logrus.Error("Error creating todo: ", err)
		h.errorResponse(c, http.StatusInternalServerError, "Ошибка создания задачи")
		return
	}

	h.successResponse(c, http.StatusCreated, "задача успешно создана", todoToDTO(*todo))
}

// UpdateTodo изменение задачи
// @Summary Изменение задачи
// @Description Обновляет название и описание задачи
// @Tags Todos
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID задачи"
// @Param request body dto.UpdateTodoRequest true "Изменяемые поля"
// @Success 200 {object} dto.SuccessResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/todos/{id} [put]
func (h *APIHandler) UpdateTodo(c *gin.Context) {
	userID, _, err := h.getUserFromContext(c)
	if err != nil {
		h.errorResponse(c, http.StatusUnauthorized, err.Error())
		return
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		h.errorResponse(c, http.StatusBadRequest, "Неверный ID задачи")
		return
	}

	var request dto.UpdateTodoRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		h.errorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	if len(request.Title) > 100 {
		h.errorResponse(c, http.StatusBadRequest, "Название задачи не может быть длиннее 100 символов")
		return
	}

	var title, memo *string
	if request.Title != "" {
		title = &request.Title
	}
	if request.Memo != "" {
		memo = &request.Memo
	}

	err = h.Repository.UpdateTodo(uint(id), userID, title, memo)
	if err != nil {
		h.domainErrorResponse(c, err)
		return
	}

	h.successResponse(c, http.StatusOK, "задача успешно обновлена", nil)
}

// ToggleTodoComplete переключение отметки выполнения
// @Summary Переключение отметки выполнения
// @Description Меняет состояние задачи на противоположное
// @Tags Todos
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID задачи"
// @Success 200 {object} dto.SuccessResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/todos/{id}/complete [put]
func (h *APIHandler) ToggleTodoComplete(c *gin.Context) {
	userID, _, err := h.getUserFromContext(c)
	if err != nil {
		h.errorResponse(c, http.StatusUnauthorized, err.Error())
		return
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		h.errorResponse(c, http.StatusBadRequest, "Неверный ID задачи")
		return
	}

	completed, err := h.Repository.ToggleTodoComplete(uint(id), userID)
	if err != nil {
		h.domainErrorResponse(c, err)
		return
	}

	h.successResponse(c, http.StatusOK, "отметка выполнения изменена", gin.H{"completed": completed})
}

// DeleteTodo удаление задачи
// @Summary Удаление задачи
// @Description Удаляет задачу пользователя
// @Tags Todos
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID задачи"
// @Success 200 {object} dto.SuccessResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/todos/{id} [delete]
func (h *APIHandler) DeleteTodo(c *gin.Context) {
	userID, _, err := h.getUserFromContext(c)
	if err != nil {
		h.errorResponse(c, http.StatusUnauthorized, err.Error())
		return
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		h.errorResponse(c, http.StatusBadRequest, "Неверный ID задачи")
		return
	}

	err = h.Repository.DeleteTodo(uint(id), userID)
	if err != nil {
		h.domainErrorResponse(c, err)
		return
	}

	h.successResponse(c, http.StatusOK, "задача успешно удалена", nil)
}
