package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"todolist/internal/app/service"
	"todolist/internal/core/domain"
)

func TestLogService_LogTaskAction_InsertsEntry(t *testing.T) {
	repo := new(logRepositoryMock)
	entityID := uuid.New()
	payload := "new-root"
	before := time.Now().UnixMilli()

	var inserted domain.LogEntry
	repo.On("Insert", mock.Anything, mock.AnythingOfType("domain.LogEntry")).
		Run(func(args mock.Arguments) { inserted = args.Get(1).(domain.LogEntry) }).
		Return(nil).Once()

	service.NewLogService(repo, time.Second).
		LogTaskAction(context.Background(), domain.TaskActionRootChanged, &entityID, domain.TaskEntityType, &payload)

	require.NotEqual(t, uuid.Nil, inserted.ID)
	require.Equal(t, domain.TaskActionRootChanged, inserted.Action)
	require.GreaterOrEqual(t, inserted.Timestamp, before)
	require.LessOrEqual(t, inserted.Timestamp, time.Now().UnixMilli())
	require.Equal(t, &entityID, inserted.EntityID)
	require.NotNil(t, inserted.EntityType)
	require.Equal(t, domain.TaskEntityType, *inserted.EntityType)
	require.Equal(t, &payload, inserted.Payload)
	repo.AssertExpectations(t)
}

func TestLogService_LogTaskAction_OutlivesCanceledRequest(t *testing.T) {
	repo := new(logRepositoryMock)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	repo.On("Insert", mock.MatchedBy(func(ctx context.Context) bool {
		_, hasDeadline := ctx.Deadline()
		return ctx.Err() == nil && hasDeadline
	}), mock.Anything).Return(nil).Once()

	service.NewLogService(repo, time.Second).LogTaskAction(ctx, domain.TaskActionDelete, nil, "", nil)
	repo.AssertExpectations(t)
}

func TestLogService_LogTaskAction_SwallowsFailures(t *testing.T) {
	repo := new(logRepositoryMock)
	repo.On("Insert", mock.Anything, mock.Anything).Return(errDBDown).Once()

	require.NotPanics(t, func() {
		service.NewLogService(repo, time.Second).LogTaskAction(context.Background(), domain.TaskActionCreate, nil, domain.TaskEntityType, nil)
	})
	repo.AssertExpectations(t)
}

func TestLogService_LogTaskAction_BreakerSkipsFailingStore(t *testing.T) {
	repo := new(logRepositoryMock)
	repo.On("Insert", mock.Anything, mock.Anything).Return(errDBDown).Times(5)
	logService := service.NewLogService(repo, time.Second)

	for i := 0; i < 8; i++ {
		logService.LogTaskAction(context.Background(), domain.TaskActionUpdate, nil, domain.TaskEntityType, nil)
	}

	repo.AssertNumberOfCalls(t, "Insert", 5)
}

func TestLogService_GetTaskActionLogBatch(t *testing.T) {
	repo := new(logRepositoryMock)
	entries := []domain.LogEntry{{ID: uuid.New()}, {ID: uuid.New()}, {ID: uuid.New()}}
	repo.On("GetBatchByEntityType", mock.Anything, domain.TaskEntityType, uint64(3), 3, true).Return(entries, nil).Once()

	batch, err := service.NewLogService(repo, 0).GetTaskActionLogBatch(context.Background(), "3", 3, true)
	require.NoError(t, err)
	require.Equal(t, entries, batch.Items)
	require.Equal(t, "6", batch.ContinuationToken)
	repo.AssertExpectations(t)
}

func TestLogService_GetTaskActionLogBatch_Errors(t *testing.T) {
	repo := new(logRepositoryMock)
	logService := service.NewLogService(repo, 0)

	_, err := logService.GetTaskActionLogBatch(context.Background(), "abc", 3, false)
	require.ErrorIs(t, err, domain.ErrInvalidContinuationToken)

	_, err = logService.GetTaskActionLogBatch(context.Background(), "", 0, false)
	require.ErrorIs(t, err, domain.ErrInvalidTake)

	repo.On("GetBatchByEntityType", mock.Anything, domain.TaskEntityType, uint64(0), 3, false).Return(nil, errDBDown).Once()
	_, err = logService.GetTaskActionLogBatch(context.Background(), "", 3, false)
	require.ErrorIs(t, err, domain.ErrStorageFailure)
}

func TestLogService_GetTaskActionLogBatchByTask_ExhaustedPage(t *testing.T) {
	repo := new(logRepositoryMock)
	taskID := uuid.New()
	repo.On("GetBatchByEntity", mock.Anything, taskID, uint64(4), 10, false).Return(nil, nil).Once()

	batch, err := service.NewLogService(repo, 0).GetTaskActionLogBatchByTask(context.Background(), taskID, "4", 10, false)
	require.NoError(t, err)
	require.Empty(t, batch.Items)
	require.Equal(t, "4", batch.ContinuationToken)
}

func TestProvider_SharesLogService(t *testing.T) {
	provider := service.NewProvider(new(taskRepositoryMock), new(logRepositoryMock), time.Second)
	require.NotNil(t, provider.TaskService())
	require.NotNil(t, provider.LogService())
	require.Same(t, provider.LogService(), provider.LogService())
}

func TestLogService_LogTaskAction_IDsFollowWriteOrder(t *testing.T) {
	repo := new(logRepositoryMock)
	var inserted []domain.LogEntry
	repo.On("Insert", mock.Anything, mock.AnythingOfType("domain.LogEntry")).
		Run(func(args mock.Arguments) { inserted = append(inserted, args.Get(1).(domain.LogEntry)) }).
		Return(nil)

	logService := service.NewLogService(repo, time.Second)
	taskID := uuid.New()
	actions := []domain.TaskAction{domain.TaskActionCreate, domain.TaskActionUpdate, domain.TaskActionRootChanged, domain.TaskActionDelete}
	for _, action := range actions {
		logService.LogTaskAction(context.Background(), action, &taskID, domain.TaskEntityType, nil)
	}

	require.Len(t, inserted, len(actions))
	for i, entry := range inserted {
		require.Equal(t, uuid.Version(7), entry.ID.Version())
		if i > 0 {
			require.Less(t, inserted[i-1].ID.String(), entry.ID.String())
		}
	}
}
