package ports

import (
	"context"

	"github.com/google/uuid"

	"todolist/internal/core/domain"
)

type LogRepository interface {
	Insert(ctx context.Context, entry domain.LogEntry) error
	GetBatchByEntityType(ctx context.Context, entityType string, offset uint64, take int, descending bool) ([]domain.LogEntry, error)
	GetBatchByEntity(ctx context.Context, entityID uuid.UUID, offset uint64, take int, descending bool) ([]domain.LogEntry, error)
}

// TaskActionLogger records audit entries. It reports nothing back: a failed
// audit write never fails the operation that triggered it.
type TaskActionLogger interface {
	LogTaskAction(ctx context.Context, action domain.TaskAction, entityID *uuid.UUID, entityType string, payload *string)
}

type LogService interface {
	TaskActionLogger
	GetTaskActionLogBatch(ctx context.Context, continuationToken string, take int, descending bool) (domain.Batch[domain.LogEntry], error)
	GetTaskActionLogBatchByTask(ctx context.Context, taskID uuid.UUID, continuationToken string, take int, descending bool) (domain.Batch[domain.LogEntry], error)
}
