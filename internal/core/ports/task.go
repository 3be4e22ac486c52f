package ports

import (
	"context"

	"github.com/google/uuid"

	"todolist/internal/core/domain"
)

// TaskRepository is the storage contract for tasks. Keyed reads and writes
// that match no row return domain.ErrTaskNotFound.
type TaskRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (domain.Task, error)
	Insert(ctx context.Context, task domain.Task) error
	Delete(ctx context.Context, id uuid.UUID) error
	GetSubtasks(ctx context.Context, parentID uuid.UUID) ([]domain.Task, error)
	GetRootTaskBatch(ctx context.Context, take int, offset uint64, sortBy string, descending bool) ([]domain.Task, error)
	SearchTasks(ctx context.Context, phrase string, take int, offset uint64) ([]domain.TaskSearchResult, error)
	GetAllSubtasksRecursive(ctx context.Context, id uuid.UUID) (map[uuid.UUID]struct{}, error)
	UpdateTaskRoot(ctx context.Context, id uuid.UUID, newRootID *uuid.UUID) error
	UpdateTask(ctx context.Context, id uuid.UUID, details domain.TaskDetails) error
}

// TaskTransactor is implemented by task repositories that can run several
// calls inside one storage transaction.
type TaskTransactor interface {
	WithinTx(ctx context.Context, fn func(repo TaskRepository) error) error
}

type TaskService interface {
	GetRootTaskBatch(ctx context.Context, take int, continuationToken, sortBy string, descending bool) (domain.Batch[domain.Task], error)
	GetTask(ctx context.Context, id uuid.UUID) (domain.TaskView, error)
	CreateTask(ctx context.Context, details domain.TaskDetails) (uuid.UUID, error)
	UpdateTask(ctx context.Context, id uuid.UUID, details domain.TaskDetails) error
	UpdateTaskRoot(ctx context.Context, id uuid.UUID, newRootID *uuid.UUID) error
	DeleteTask(ctx context.Context, id uuid.UUID) error
	SearchTasks(ctx context.Context, phrase string, take int, continuationToken string) (domain.Batch[domain.TaskSearchResult], error)
}
