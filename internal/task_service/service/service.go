package service

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"job_orchestrator/internal/models"
	"job_orchestrator/internal/task_service/store"
)

// Service holds the business logic of the task service: input
// validation, the status-transition policy, and the mapping of store
// results onto the error taxonomy.
type Service struct {
	store *store.Store
}

// NewService creates a new Service instance.
func NewService(s *store.Store) *Service {
	return &Service{store: s}
}

// Ping reports whether the record store is reachable.
func (s *Service) Ping(ctx context.Context) error {
	return s.store.Ping(ctx)
}

// CreateTaskInput carries the fields a client may supply at creation.
// Payload is kept as the raw JSON text the client sent; it is stored
// verbatim and never parsed back into structured data.
type CreateTaskInput struct {
	Name      string
	JobType   *string
	CreatedBy *string
	Payload   json.RawMessage
}

// UpdateStatusInput carries the fields of a status update. Status is a
// pointer so a missing field can be told apart from an empty one.
type UpdateStatusInput struct {
	Status *string
	Result json.RawMessage
	Error  *string
}

// CreateTask validates the input and persists a new task record.
// New tasks always start as pending with result and error unset, and
// created_at == updated_at.
func (s *Service) CreateTask(in CreateTaskInput) (*models.Task, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, NewValidationError("Field 'name' is required and must be a non-empty string")
	}

	jobType, err := trimOptional(in.JobType, "job_type")
	if err != nil {
		return nil, err
	}
	createdBy, err := trimOptional(in.CreatedBy, "created_by")
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	task := &models.Task{
		ID:        uuid.NewString(),
		Name:      name,
		JobType:   jobType,
		CreatedBy: createdBy,
		Status:    models.TaskStatusPending,
		Payload:   rawToText(in.Payload),
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.store.CreateTask(task); err != nil {
		return nil, err
	}
	return task, nil
}

// ListTasks returns all tasks newest first, optionally filtered by
// status. The filter, when present, must be one of the allowed values.
func (s *Service) ListTasks(statusFilter *string) ([]models.Task, error) {
	var filter *models.TaskStatus
	if statusFilter != nil {
		status := models.TaskStatus(*statusFilter)
		if !status.IsValid() {
			return nil, NewValidationError("Invalid status filter. Allowed: %v", models.AllowedStatuses)
		}
		filter = &status
	}
	return s.store.ListTasks(filter)
}

// GetTask fetches a single task by id.
func (s *Service) GetTask(id string) (*models.Task, error) {
	task, err := s.store.GetTaskByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, &NotFoundError{Message: "Task not found"}
	}
	if err != nil {
		return nil, err
	}
	return task, nil
}

// UpdateTaskStatus moves a task to a new status and fully replaces the
// status-dependent fields. Any status is reachable from any other; the
// only gating rule is tied to the target status: failed requires a
// non-empty error message. done keeps an optional result and clears the
// error, every other target clears both. updated_at is refreshed on
// every successful call, even when no visible field changed.
func (s *Service) UpdateTaskStatus(id string, in UpdateStatusInput) (*models.Task, error) {
	if in.Status == nil {
		return nil, NewValidationError("Field 'status' is required")
	}
	status := models.TaskStatus(*in.Status)
	if !status.IsValid() {
		return nil, NewValidationError("Invalid status. Allowed: %v", models.AllowedStatuses)
	}

	updates := map[string]interface{}{
		"status":     status,
		"updated_at": time.Now().UTC(),
	}

	switch status {
	case models.TaskStatusFailed:
		if in.Error == nil || strings.TrimSpace(*in.Error) == "" {
			return nil, NewValidationError("Field 'error' is required when status is 'failed'")
		}
		updates["error"] = strings.TrimSpace(*in.Error)
		updates["result"] = nil
	case models.TaskStatusDone:
		updates["result"] = rawToText(in.Result)
		updates["error"] = nil
	default:
		updates["result"] = nil
		updates["error"] = nil
	}

	task, err := s.store.UpdateTask(id, updates)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, &NotFoundError{Message: "Task not found"}
	}
	if err != nil {
		return nil, err
	}
	return task, nil
}

// DeleteTask hard-deletes a task record.
func (s *Service) DeleteTask(id string) error {
	err := s.store.DeleteTask(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return &NotFoundError{Message: "Task not found"}
	}
	return err
}

// trimOptional trims an optional string field and rejects values that
// are empty after trimming. Absent fields stay absent.
func trimOptional(value *string, field string) (*string, error) {
	if value == nil {
		return nil, nil
	}
	trimmed := strings.TrimSpace(*value)
	if trimmed == "" {
		return nil, NewValidationError("Field '%s', if provided, must be a non-empty string", field)
	}
	return &trimmed, nil
}

// rawToText converts a raw JSON value to its textual representation for
// opaque storage. A missing value and an explicit JSON null both map to
// an unset column.
func rawToText(raw json.RawMessage) *string {
	if len(raw) == 0 || string(raw) == "null" {
		return nil
	}
	text := string(raw)
	return &text
}
