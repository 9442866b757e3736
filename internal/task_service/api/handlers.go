package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"job_orchestrator/internal/task_service/service"
	"job_orchestrator/pkg/logger"
)

// API provides handlers for the task service.
type API struct {
	service *service.Service
	logger  *logger.Logger
}

// NewAPI creates a new API handler.
func NewAPI(s *service.Service, l *logger.Logger) *API {
	return &API{
		service: s,
		logger:  l,
	}
}

// respondError maps a service error onto the HTTP error taxonomy:
// validation failures become 400, unknown ids become 404, everything
// else is an infrastructure failure and becomes 500.
func (a *API) respondError(c *gin.Context, err error) {
	var validationErr *service.ValidationError
	if errors.As(err, &validationErr) {
		c.JSON(http.StatusBadRequest, gin.H{"error": validationErr.Message})
		return
	}

	var notFoundErr *service.NotFoundError
	if errors.As(err, &notFoundErr) {
		c.JSON(http.StatusNotFound, gin.H{"error": notFoundErr.Message})
		return
	}

	a.logger.WithError(err).Error("Unhandled store failure")
	c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
}

// HomeHandler announces the service and its routes.
func (a *API) HomeHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "Job Orchestrator is running, routes available /health, /tasks, /tasks/:id",
	})
}

// HealthHandler reports liveness. It pings the database handle so a
// lost storage backend shows up here instead of on the next write.
func (a *API) HealthHandler(c *gin.Context) {
	if err := a.service.Ping(c.Request.Context()); err != nil {
		a.logger.WithError(err).Error("Health check failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// CreateTaskRequest defines the JSON body of a task creation request.
// Payload stays a raw message so the stored text is exactly what the
// client sent.
type CreateTaskRequest struct {
	Name      string          `json:"name"`
	JobType   *string         `json:"job_type"`
	CreatedBy *string         `json:"created_by"`
	Payload   json.RawMessage `json:"payload"`
}

// CreateTaskHandler handles the creation of a new task record.
func (a *API) CreateTaskHandler(c *gin.Context) {
	var req CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		a.logger.WithError(err).Warn("Invalid request payload")
		c.JSON(http.StatusBadRequest, gin.H{"error": "Request body must be JSON"})
		return
	}

	task, err := a.service.CreateTask(service.CreateTaskInput{
		Name:      req.Name,
		JobType:   req.JobType,
		CreatedBy: req.CreatedBy,
		Payload:   req.Payload,
	})
	if err != nil {
		a.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, task)
}

// ListTasksHandler returns all tasks, optionally filtered by the
// 'status' query parameter.
func (a *API) ListTasksHandler(c *gin.Context) {
	var statusFilter *string
	if status, ok := c.GetQuery("status"); ok {
		statusFilter = &status
	}

	tasks, err := a.service.ListTasks(statusFilter)
	if err != nil {
		a.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, tasks)
}

// GetTaskHandler returns a single task by its id.
func (a *API) GetTaskHandler(c *gin.Context) {
	task, err := a.service.GetTask(c.Param("id"))
	if err != nil {
		a.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, task)
}

// UpdateTaskRequest defines the JSON body of a status update. Status is
// a pointer so a missing field yields the dedicated validation message
// instead of a generic bind error.
type UpdateTaskRequest struct {
	Status *string         `json:"status"`
	Result json.RawMessage `json:"result"`
	Error  *string         `json:"error"`
}

// UpdateTaskHandler moves a task to a new status.
func (a *API) UpdateTaskHandler(c *gin.Context) {
	var req UpdateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		a.logger.WithError(err).Warn("Invalid request payload")
		c.JSON(http.StatusBadRequest, gin.H{"error": "Request body must be JSON"})
		return
	}

	task, err := a.service.UpdateTaskStatus(c.Param("id"), service.UpdateStatusInput{
		Status: req.Status,
		Result: req.Result,
		Error:  req.Error,
	})
	if err != nil {
		a.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, task)
}

// DeleteTaskHandler removes a task record.
func (a *API) DeleteTaskHandler(c *gin.Context) {
	if err := a.service.DeleteTask(c.Param("id")); err != nil {
		a.respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
