package store

import (
	"context"

	"gorm.io/gorm"

	"job_orchestrator/internal/models"
)

// Store wraps all database operations for the task service.
type Store struct {
	DB *gorm.DB
}

// NewStore creates a new Store instance.
func NewStore(db *gorm.DB) *Store {
	return &Store{DB: db}
}

// Ping checks connectivity of the underlying database handle.
func (s *Store) Ping(ctx context.Context) error {
	sqlDB, err := s.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

// CreateTask persists a new task row. The insert runs in its own
// transaction so readers never observe a partially written row.
func (s *Store) CreateTask(task *models.Task) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		return tx.Create(task).Error
	})
}

// GetTaskByID looks up a single task by its primary key.
// Returns gorm.ErrRecordNotFound when no row exists.
func (s *Store) GetTaskByID(id string) (*models.Task, error) {
	var task models.Task
	if err := s.DB.Where("id = ?", id).First(&task).Error; err != nil {
		return nil, err
	}
	return &task, nil
}

// ListTasks returns all tasks, newest first, optionally filtered by status.
// The secondary ordering key makes ties on created_at deterministic.
func (s *Store) ListTasks(status *models.TaskStatus) ([]models.Task, error) {
	tasks := make([]models.Task, 0)
	query := s.DB.Order("created_at DESC, id")
	if status != nil {
		query = query.Where("status = ?", *status)
	}
	if err := query.Find(&tasks).Error; err != nil {
		return nil, err
	}
	return tasks, nil
}

// UpdateTask applies the given column changes to an existing task and
// returns the post-update row. Lookup and update share one transaction:
// either the full set of column changes commits, or none does.
// Returns gorm.ErrRecordNotFound when the task does not exist.
func (s *Store) UpdateTask(id string, updates map[string]interface{}) (*models.Task, error) {
	var task models.Task
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("id = ?", id).First(&task).Error; err != nil {
			return err
		}
		if err := tx.Model(&task).Updates(updates).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", id).First(&task).Error
	})
	if err != nil {
		return nil, err
	}
	return &task, nil
}

// DeleteTask removes a task row. Returns gorm.ErrRecordNotFound when
// there was nothing to delete, so callers can distinguish the two cases.
func (s *Store) DeleteTask(id string) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		res := tx.Where("id = ?", id).Delete(&models.Task{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}
