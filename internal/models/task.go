package models

import (
	"time"
)

// TaskStatus 定义了任务记录的几种可能状态
type TaskStatus string

const (
	TaskStatusPending TaskStatus = "pending"
	TaskStatusRunning TaskStatus = "running"
	TaskStatusDone    TaskStatus = "done"
	TaskStatusFailed  TaskStatus = "failed"
)

// AllowedStatuses 列出所有合法的任务状态，按固定顺序排列（用于校验错误提示）。
var AllowedStatuses = []TaskStatus{
	TaskStatusDone,
	TaskStatusFailed,
	TaskStatusPending,
	TaskStatusRunning,
}

// IsValid 判断给定状态是否属于四种合法状态之一。
func (s TaskStatus) IsValid() bool {
	switch s {
	case TaskStatusPending, TaskStatusRunning, TaskStatusDone, TaskStatusFailed:
		return true
	}
	return false
}

// Task 代表一个持久化的任务记录。任务本身在别处执行，
// 本服务只负责记录它声明的状态。
//
// payload/result 以不透明文本形式存储（客户端提交什么文本就存什么），
// error 仅在状态为 failed 时非空，result 仅在状态为 done 时可以非空。
// 时间戳通过业务层显式赋值（UTC），禁用 GORM 的自动时间戳。
type Task struct {
	ID        string     `gorm:"primaryKey;size:36" json:"id"`
	Name      string     `gorm:"not null" json:"name"`
	JobType   *string    `json:"job_type"`
	CreatedBy *string    `json:"created_by"`
	Status    TaskStatus `gorm:"type:varchar(20);not null" json:"status"`
	Payload   *string    `json:"payload"`
	Result    *string    `json:"result"`
	Error     *string    `json:"error"`
	CreatedAt time.Time  `gorm:"not null;autoCreateTime:false" json:"created_at"`
	UpdatedAt time.Time  `gorm:"not null;autoUpdateTime:false" json:"updated_at"`
}

func (Task) TableName() string {
	return "tasks"
}
