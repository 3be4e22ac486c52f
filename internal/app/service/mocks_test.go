package service_test

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"todolist/internal/core/domain"
	"todolist/internal/core/ports"
)

type taskRepositoryMock struct {
	mock.Mock
}

func (m *taskRepositoryMock) GetByID(ctx context.Context, id uuid.UUID) (domain.Task, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.Task), args.Error(1)
}

func (m *taskRepositoryMock) Insert(ctx context.Context, task domain.Task) error {
	return m.Called(ctx, task).Error(0)
}

func (m *taskRepositoryMock) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *taskRepositoryMock) GetSubtasks(ctx context.Context, parentID uuid.UUID) ([]domain.Task, error) {
	args := m.Called(ctx, parentID)

	var tasks []domain.Task
	if value := args.Get(0); value != nil {
		tasks = value.([]domain.Task)
	}
	return tasks, args.Error(1)
}

func (m *taskRepositoryMock) GetRootTaskBatch(ctx context.Context, take int, offset uint64, sortBy string, descending bool) ([]domain.Task, error) {
	args := m.Called(ctx, take, offset, sortBy, descending)

	var tasks []domain.Task
	if value := args.Get(0); value != nil {
		tasks = value.([]domain.Task)
	}
	return tasks, args.Error(1)
}

func (m *taskRepositoryMock) SearchTasks(ctx context.Context, phrase string, take int, offset uint64) ([]domain.TaskSearchResult, error) {
	args := m.Called(ctx, phrase, take, offset)

	var results []domain.TaskSearchResult
	if value := args.Get(0); value != nil {
		results = value.([]domain.TaskSearchResult)
	}
	return results, args.Error(1)
}

func (m *taskRepositoryMock) GetAllSubtasksRecursive(ctx context.Context, id uuid.UUID) (map[uuid.UUID]struct{}, error) {
	args := m.Called(ctx, id)

	var ids map[uuid.UUID]struct{}
	if value := args.Get(0); value != nil {
		ids = value.(map[uuid.UUID]struct{})
	}
	return ids, args.Error(1)
}

func (m *taskRepositoryMock) UpdateTaskRoot(ctx context.Context, id uuid.UUID, newRootID *uuid.UUID) error {
	return m.Called(ctx, id, newRootID).Error(0)
}

func (m *taskRepositoryMock) UpdateTask(ctx context.Context, id uuid.UUID, details domain.TaskDetails) error {
	return m.Called(ctx, id, details).Error(0)
}

// transactionalTaskRepositoryMock records WithinTx calls and runs fn against
// itself.
type transactionalTaskRepositoryMock struct {
	taskRepositoryMock
	txCalls int
}

func (m *transactionalTaskRepositoryMock) WithinTx(ctx context.Context, fn func(repo ports.TaskRepository) error) error {
	m.txCalls++
	return fn(m)
}

type logRepositoryMock struct {
	mock.Mock
}

func (m *logRepositoryMock) Insert(ctx context.Context, entry domain.LogEntry) error {
	return m.Called(ctx, entry).Error(0)
}

func (m *logRepositoryMock) GetBatchByEntityType(ctx context.Context, entityType string, offset uint64, take int, descending bool) ([]domain.LogEntry, error) {
	args := m.Called(ctx, entityType, offset, take, descending)

	var entries []domain.LogEntry
	if value := args.Get(0); value != nil {
		entries = value.([]domain.LogEntry)
	}
	return entries, args.Error(1)
}

func (m *logRepositoryMock) GetBatchByEntity(ctx context.Context, entityID uuid.UUID, offset uint64, take int, descending bool) ([]domain.LogEntry, error) {
	args := m.Called(ctx, entityID, offset, take, descending)

	var entries []domain.LogEntry
	if value := args.Get(0); value != nil {
		entries = value.([]domain.LogEntry)
	}
	return entries, args.Error(1)
}

type actionLoggerMock struct {
	mock.Mock
}

func (m *actionLoggerMock) LogTaskAction(ctx context.Context, action domain.TaskAction, entityID *uuid.UUID, entityType string, payload *string) {
	m.Called(ctx, action, entityID, entityType, payload)
}

var (
	_ ports.TaskRepository   = (*taskRepositoryMock)(nil)
	_ ports.TaskTransactor   = (*transactionalTaskRepositoryMock)(nil)
	_ ports.LogRepository    = (*logRepositoryMock)(nil)
	_ ports.TaskActionLogger = (*actionLoggerMock)(nil)
)
