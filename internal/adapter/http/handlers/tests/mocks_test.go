package tests

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"todolist/internal/core/domain"
	"todolist/internal/core/ports"
)

type taskServiceMock struct {
	mock.Mock
}

var _ ports.TaskService = (*taskServiceMock)(nil)

func (m *taskServiceMock) GetRootTaskBatch(ctx context.Context, take int, continuationToken, sortBy string, descending bool) (domain.Batch[domain.Task], error) {
	args := m.Called(ctx, take, continuationToken, sortBy, descending)
	return args.Get(0).(domain.Batch[domain.Task]), args.Error(1)
}

func (m *taskServiceMock) GetTask(ctx context.Context, id uuid.UUID) (domain.TaskView, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.TaskView), args.Error(1)
}

func (m *taskServiceMock) CreateTask(ctx context.Context, details domain.TaskDetails) (uuid.UUID, error) {
	args := m.Called(ctx, details)
	return args.Get(0).(uuid.UUID), args.Error(1)
}

func (m *taskServiceMock) UpdateTask(ctx context.Context, id uuid.UUID, details domain.TaskDetails) error {
	return m.Called(ctx, id, details).Error(0)
}

func (m *taskServiceMock) UpdateTaskRoot(ctx context.Context, id uuid.UUID, newRootID *uuid.UUID) error {
	return m.Called(ctx, id, newRootID).Error(0)
}

func (m *taskServiceMock) DeleteTask(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *taskServiceMock) SearchTasks(ctx context.Context, phrase string, take int, continuationToken string) (domain.Batch[domain.TaskSearchResult], error) {
	args := m.Called(ctx, phrase, take, continuationToken)
	return args.Get(0).(domain.Batch[domain.TaskSearchResult]), args.Error(1)
}

type logServiceMock struct {
	mock.Mock
}

var _ ports.LogService = (*logServiceMock)(nil)

func (m *logServiceMock) LogTaskAction(ctx context.Context, action domain.TaskAction, entityID *uuid.UUID, entityType string, payload *string) {
	m.Called(ctx, action, entityID, entityType, payload)
}

func (m *logServiceMock) GetTaskActionLogBatch(ctx context.Context, continuationToken string, take int, descending bool) (domain.Batch[domain.LogEntry], error) {
	args := m.Called(ctx, continuationToken, take, descending)
	return args.Get(0).(domain.Batch[domain.LogEntry]), args.Error(1)
}

func (m *logServiceMock) GetTaskActionLogBatchByTask(ctx context.Context, taskID uuid.UUID, continuationToken string, take int, descending bool) (domain.Batch[domain.LogEntry], error) {
	args := m.Called(ctx, taskID, continuationToken, take, descending)
	return args.Get(0).(domain.Batch[domain.LogEntry]), args.Error(1)
}
