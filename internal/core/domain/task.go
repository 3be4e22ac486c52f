package domain

import (
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
)

const (
	MaxSummaryLength = 255

	// DefaultTaskSortField orders root task listings when the caller names no field.
	DefaultTaskSortField = "create_date"
)

type TaskPriority string

const (
	TaskPriorityLow    TaskPriority = "Low"
	TaskPriorityNormal TaskPriority = "Normal"
	TaskPriorityHigh   TaskPriority = "High"
	TaskPriorityUrgent TaskPriority = "Urgent"
)

func (p TaskPriority) IsValid() bool {
	switch p {
	case TaskPriorityLow, TaskPriorityNormal, TaskPriorityHigh, TaskPriorityUrgent:
		return true
	}
	return false
}

type TaskStatus string

const (
	TaskStatusReserved TaskStatus = "Reserved"
	TaskStatusOngoing  TaskStatus = "Ongoing"
	TaskStatusDone     TaskStatus = "Done"
	TaskStatusPending  TaskStatus = "Pending"
)

func (s TaskStatus) IsValid() bool {
	switch s {
	case TaskStatusReserved, TaskStatusOngoing, TaskStatusDone, TaskStatusPending:
		return true
	}
	return false
}

// Task is a unit of work. A nil RootTaskID marks a root task.
type Task struct {
	ID          uuid.UUID
	RootTaskID  *uuid.UUID
	Summary     string
	Description *string
	CreateDate  time.Time
	DueDate     time.Time
	Priority    TaskPriority
	Status      TaskStatus
}

func (t Task) IsRoot() bool {
	return t.RootTaskID == nil
}

// TaskDetails carries the mutable fields of a task for create and update.
type TaskDetails struct {
	Summary     string
	Description *string
	DueDate     time.Time
	Priority    TaskPriority
	Status      TaskStatus
}

// Normalize trims the summary and checks every field, returning
// ErrInvalidTaskDetails when something is off.
func (d TaskDetails) Normalize() (TaskDetails, error) {
	d.Summary = strings.TrimSpace(d.Summary)
	if d.Summary == "" || utf8.RuneCountInString(d.Summary) > MaxSummaryLength {
		return TaskDetails{}, ErrInvalidTaskDetails
	}
	if !d.Priority.IsValid() || !d.Status.IsValid() {
		return TaskDetails{}, ErrInvalidTaskDetails
	}
	if d.DueDate.IsZero() {
		return TaskDetails{}, ErrInvalidTaskDetails
	}
	d.DueDate = d.DueDate.UTC().Truncate(time.Second)
	return d, nil
}

// TaskView is a task together with its root task and direct subtasks.
type TaskView struct {
	Task     Task
	RootTask *Task
	Subtasks []Task
}

type TaskSearchResult struct {
	ID          uuid.UUID
	Summary     string
	Description *string
}

// Batch is one page of a paginated listing.
type Batch[T any] struct {
	Items             []T
	ContinuationToken string
}
