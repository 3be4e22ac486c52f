package dto

import (
	"time"

	"github.com/google/uuid"
)

type TaskBase struct {
	ID       uuid.UUID `json:"id"`
	Summary  string    `json:"summary"`
	Priority string    `json:"priority"`
	Status   string    `json:"status"`
}

// TaskDetailed dates are unix seconds.
type TaskDetailed struct {
	TaskBase
	RootID     *uuid.UUID `json:"root_id"`
	CreateDate int64      `json:"create_date"`
	DueDate    int64      `json:"due_date"`
}

type TaskFull struct {
	TaskDetailed
	Description *string    `json:"description"`
	RootTask    *TaskBase  `json:"root_task"`
	Subtasks    []TaskBase `json:"subtasks"`
}

type TaskSearch struct {
	ID          uuid.UUID `json:"id"`
	Summary     string    `json:"summary"`
	Description *string   `json:"description"`
}

type UpsertTaskRequest struct {
	Summary     string    `json:"summary" binding:"required,max=255"`
	Description *string   `json:"description" binding:"omitempty,max=65535"`
	DueDate     time.Time `json:"due_date" binding:"required"`
	Priority    string    `json:"priority" binding:"required,task_priority"`
	Status      string    `json:"status" binding:"required,task_status"`
}

// TaskRootChangeRequest moves a task to the root level when RootID is null
// or absent.
type TaskRootChangeRequest struct {
	RootID *uuid.UUID `json:"root_id"`
}

type CreateTaskResponse struct {
	TaskID uuid.UUID `json:"task_id"`
}
