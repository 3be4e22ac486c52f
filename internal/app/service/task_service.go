package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"todolist/internal/core/domain"
	"todolist/internal/core/paging"
	"todolist/internal/core/ports"
)

type TaskService struct {
	taskRepository ports.TaskRepository
	actionLogger   ports.TaskActionLogger
}

func NewTaskService(taskRepository ports.TaskRepository, actionLogger ports.TaskActionLogger) *TaskService {
	return &TaskService{
		taskRepository: taskRepository,
		actionLogger:   actionLogger,
	}
}

func (s *TaskService) GetRootTaskBatch(ctx context.Context, take int, continuationToken, sortBy string, descending bool) (domain.Batch[domain.Task], error) {
	cursor, err := paging.Parse(continuationToken, take)
	if err != nil {
		return domain.Batch[domain.Task]{}, err
	}

	sortBy = strings.TrimSpace(sortBy)
	if sortBy == "" {
		sortBy = domain.DefaultTaskSortField
	}

	tasks, err := s.taskRepository.GetRootTaskBatch(ctx, cursor.Take, cursor.Offset, sortBy, descending)
	if err != nil {
		return domain.Batch[domain.Task]{}, repositoryError("get root task batch", err)
	}

	return paging.NewBatch(cursor, tasks), nil
}

// GetTask returns the task with its root task and direct subtasks. A root
// reference pointing at a deleted task leaves RootTask nil.
func (s *TaskService) GetTask(ctx context.Context, id uuid.UUID) (domain.TaskView, error) {
	task, err := s.taskRepository.GetByID(ctx, id)
	if err != nil {
		return domain.TaskView{}, repositoryError("get task", err)
	}

	view := domain.TaskView{Task: task}

	if task.RootTaskID != nil {
		root, err := s.taskRepository.GetByID(ctx, *task.RootTaskID)
		switch {
		case err == nil:
			view.RootTask = &root
		case errors.Is(err, domain.ErrTaskNotFound):
			zap.L().Warn("task references a missing root task",
				zap.Stringer("task_id", id),
				zap.Stringer("root_task_id", *task.RootTaskID),
			)
		default:
			return domain.TaskView{}, repositoryError("get root task", err)
		}
	}

	subtasks, err := s.taskRepository.GetSubtasks(ctx, id)
	if err != nil {
		return domain.TaskView{}, repositoryError("get subtasks", err)
	}
	if subtasks == nil {
		subtasks = make([]domain.Task, 0)
	}
	view.Subtasks = subtasks

	return view, nil
}

func (s *TaskService) CreateTask(ctx context.Context, details domain.TaskDetails) (uuid.UUID, error) {
	details, err := details.Normalize()
	if err != nil {
		return uuid.Nil, err
	}

	task := domain.Task{
		ID:          uuid.New(),
		Summary:     details.Summary,
		Description: details.Description,
		CreateDate:  time.Now().UTC().Truncate(time.Second),
		DueDate:     details.DueDate,
		Priority:    details.Priority,
		Status:      details.Status,
	}

	if err := s.taskRepository.Insert(ctx, task); err != nil {
		return uuid.Nil, repositoryError("insert task", err)
	}

	s.logTaskAction(ctx, domain.TaskActionCreate, task.ID, nil)
	return task.ID, nil
}

func (s *TaskService) UpdateTask(ctx context.Context, id uuid.UUID, details domain.TaskDetails) error {
	details, err := details.Normalize()
	if err != nil {
		return err
	}

	if err := s.taskRepository.UpdateTask(ctx, id, details); err != nil {
		return repositoryError("update task", err)
	}

	s.logTaskAction(ctx, domain.TaskActionUpdate, id, nil)
	return nil
}

// UpdateTaskRoot moves a task under newRootID, or to the root level when
// newRootID is nil. A task can't be bound to itself nor to any task of its
// own subtree.
func (s *TaskService) UpdateTaskRoot(ctx context.Context, id uuid.UUID, newRootID *uuid.UUID) error {
	if newRootID != nil && *newRootID == id {
		return domain.ErrTaskSelfBinding
	}

	rebind := func(repo ports.TaskRepository) error {
		if newRootID != nil {
			if _, err := repo.GetByID(ctx, *newRootID); err != nil {
				return repositoryError("get new root task", err)
			}

			descendants, err := repo.GetAllSubtasksRecursive(ctx, id)
			if err != nil {
				return repositoryError("get all subtasks", err)
			}
			if _, ok := descendants[*newRootID]; ok {
				return domain.ErrTaskHierarchyCycle
			}
		}

		return repositoryError("update task root", repo.UpdateTaskRoot(ctx, id, newRootID))
	}

	var err error
	if transactor, ok := s.taskRepository.(ports.TaskTransactor); ok {
		err = transactor.WithinTx(ctx, rebind)
	} else {
		err = rebind(s.taskRepository)
	}
	if err != nil {
		return repositoryError("rebind task root", err)
	}

	var payload *string
	if newRootID != nil {
		value := newRootID.String()
		payload = &value
	}
	s.logTaskAction(ctx, domain.TaskActionRootChanged, id, payload)
	return nil
}

// DeleteTask removes the task row only. Its subtasks keep pointing at the
// deleted id.
func (s *TaskService) DeleteTask(ctx context.Context, id uuid.UUID) error {
	if err := s.taskRepository.Delete(ctx, id); err != nil {
		return repositoryError("delete task", err)
	}

	s.logTaskAction(ctx, domain.TaskActionDelete, id, nil)
	return nil
}

func (s *TaskService) SearchTasks(ctx context.Context, phrase string, take int, continuationToken string) (domain.Batch[domain.TaskSearchResult], error) {
	phrase = strings.TrimSpace(phrase)
	if phrase == "" {
		return domain.Batch[domain.TaskSearchResult]{}, domain.ErrInvalidSearchPhrase
	}

	cursor, err := paging.Parse(continuationToken, take)
	if err != nil {
		return domain.Batch[domain.TaskSearchResult]{}, err
	}

	results, err := s.taskRepository.SearchTasks(ctx, phrase, cursor.Take, cursor.Offset)
	if err != nil {
		return domain.Batch[domain.TaskSearchResult]{}, repositoryError("search tasks", err)
	}

	return paging.NewBatch(cursor, results), nil
}

func (s *TaskService) logTaskAction(ctx context.Context, action domain.TaskAction, id uuid.UUID, payload *string) {
	if s.actionLogger == nil {
		return
	}
	s.actionLogger.LogTaskAction(ctx, action, &id, domain.TaskEntityType, payload)
}

// repositoryError passes domain errors through and marks everything else as
// a storage failure.
func repositoryError(op string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, domain.ErrTaskNotFound) ||
		errors.Is(err, domain.ErrInvalidInput) ||
		errors.Is(err, domain.ErrInvalidHierarchyBinding) ||
		errors.Is(err, domain.ErrStorageFailure) {
		return err
	}
	return domain.StorageError(op, err)
}

var _ ports.TaskService = (*TaskService)(nil)
