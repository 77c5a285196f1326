package http

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"todolist/internal/auth"
	"todolist/internal/domain"
	"todolist/internal/repository"
	"todolist/internal/service"
)

// Response is the envelope every endpoint answers with, success and
// failure alike. Status is false for every error regardless of HTTP code.
type Response struct {
	Status  bool   `json:"status"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

// Handler wires HTTP routes to domain services.
type Handler struct {
	users  service.UserService
	tasks  service.TaskService
	tokens *auth.TokenIssuer
	logger *logrus.Logger
}

func NewHandler(users service.UserService, tasks service.TaskService, tokens *auth.TokenIssuer, logger *logrus.Logger) *Handler {
	return &Handler{
		users:  users,
		tasks:  tasks,
		tokens: tokens,
		logger: logger,
	}
}

func (h *Handler) RegisterRoutes(router *gin.Engine) {
	router.Use(corsMiddleware(), requestLogger(h.logger))

	router.POST("/auth/login", h.login)

	todos := router.Group("/todos", h.authMiddleware())
	{
		todos.GET("", h.listTodos)
		todos.POST("", h.createTodo)
		todos.PUT("/:id", h.updateTodo)
		todos.DELETE("/:id", h.deleteTodo)
	}

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, Response{Status: true, Message: "ok"})
	})
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type createTodoRequest struct {
	Text string `json:"text"`
}

type updateTodoRequest struct {
	Text      *string `json:"text"`
	Completed *bool   `json:"completed"`
}

type UserResponse struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type TaskResponse struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Completed   bool   `json:"completed"`
	UserID      int64  `json:"userId"`
	CreatedAt   string `json:"createdAt"`
	UpdatedAt   string `json:"updatedAt"`
}

type loginData struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

func (h *Handler) login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, Response{Status: false, Message: "Email and password are required"})
		return
	}

	user, err := h.users.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		h.respondError(c, err, "Error logging in")
		return
	}

	token, err := h.tokens.Issue(user.ID)
	if err != nil {
		h.respondError(c, err, "Error logging in")
		return
	}

	c.JSON(http.StatusOK, Response{
		Status:  true,
		Message: "Login successful",
		Data: loginData{
			Token: token,
			User:  userToResponse(user),
		},
	})
}

func (h *Handler) listTodos(c *gin.Context) {
	tasks, err := h.tasks.List(c.Request.Context(), currentUserID(c))
	if err != nil {
		h.respondError(c, err, "Error retrieving todos")
		return
	}

	resp := make([]TaskResponse, len(tasks))
	for i := range tasks {
		resp[i] = taskToResponse(tasks[i])
	}
	c.JSON(http.StatusOK, Response{
		Status:  true,
		Message: "Todos retrieved successfully",
		Data:    resp,
	})
}

func (h *Handler) createTodo(c *gin.Context) {
	var req createTodoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, Response{Status: false, Message: "Text is required"})
		return
	}

	task, err := h.tasks.Create(c.Request.Context(), currentUserID(c), req.Text)
	if err != nil {
		h.respondError(c, err, "Error creating todo")
		return
	}

	c.JSON(http.StatusCreated, Response{
		Status:  true,
		Message: "Todo created successfully",
		Data:    taskToResponse(*task),
	})
}

func (h *Handler) updateTodo(c *gin.Context) {
	id, ok := todoID(c)
	if !ok {
		return
	}

	var req updateTodoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, Response{Status: false, Message: "Invalid request body"})
		return
	}

	task, err := h.tasks.Update(c.Request.Context(), currentUserID(c), id, req.Text, req.Completed)
	if err != nil {
		h.respondError(c, err, "Error updating todo")
		return
	}

	c.JSON(http.StatusOK, Response{
		Status:  true,
		Message: "Todo updated successfully",
		Data:    taskToResponse(*task),
	})
}

func (h *Handler) deleteTodo(c *gin.Context) {
	id, ok := todoID(c)
	if !ok {
		return
	}

	task, err := h.tasks.Delete(c.Request.Context(), currentUserID(c), id)
	if err != nil {
		h.respondError(c, err, "Error deleting todo")
		return
	}

	c.JSON(http.StatusOK, Response{
		Status:  true,
		Message: "Todo deleted successfully",
		Data:    taskToResponse(*task),
	})
}

// todoID parses the :id path segment. A non-numeric id can never name an
// existing task, so it answers 404 just like an unknown id.
func todoID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusNotFound, Response{Status: false, Message: "Todo not found"})
		return 0, false
	}
	return id, true
}

// respondError maps service errors to the envelope at one boundary so the
// taxonomy stays uniform across handlers. Unexpected faults are logged and
// surfaced as the handler's generic message, never the internal detail.
func (h *Handler) respondError(c *gin.Context, err error, fallback string) {
	var vErr *service.ValidationError
	switch {
	case errors.As(err, &vErr):
		c.JSON(http.StatusBadRequest, Response{Status: false, Message: vErr.Message})
	case errors.Is(err, service.ErrInvalidCredentials):
		c.JSON(http.StatusBadRequest, Response{Status: false, Message: "Invalid credentials"})
	case errors.Is(err, repository.ErrNotFound):
		c.JSON(http.StatusNotFound, Response{Status: false, Message: "Todo not found"})
	default:
		h.logger.WithError(err).Error(fallback)
		c.JSON(http.StatusInternalServerError, Response{Status: false, Message: fallback})
	}
}

func userToResponse(user *domain.User) UserResponse {
	return UserResponse{
		ID:    user.ID,
		Name:  user.Name,
		Email: user.Email,
	}
}

func taskToResponse(task domain.Task) TaskResponse {
	return TaskResponse{
		ID:          task.ID,
		Title:       task.Title,
		Description: task.Description,
		Completed:   task.Completed,
		UserID:      task.OwnerID,
		CreatedAt:   task.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   task.UpdatedAt.Format(time.RFC3339),
	}
}
