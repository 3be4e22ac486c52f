package domain

import "github.com/google/uuid"

// TaskEntityType tags audit entries written for tasks.
const TaskEntityType = "TaskEntity"

type TaskAction string

const (
	TaskActionCreate      TaskAction = "Create"
	TaskActionUpdate      TaskAction = "Update"
	TaskActionDelete      TaskAction = "Delete"
	TaskActionRootChanged TaskAction = "RootChanged"
)

func (a TaskAction) IsValid() bool {
	switch a {
	case TaskActionCreate, TaskActionUpdate, TaskActionDelete, TaskActionRootChanged:
		return true
	}
	return false
}

// LogEntry is an immutable audit record. Timestamp is in milliseconds since
// the Unix epoch.
type LogEntry struct {
	ID         uuid.UUID
	Action     TaskAction
	Timestamp  int64
	EntityID   *uuid.UUID
	EntityType *string
	Payload    *string
}
