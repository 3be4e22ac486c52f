package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"todolist/internal/core/domain"
	"todolist/internal/core/ports"
)

const taskColumns = "id, root_task_id, summary, description, create_date, due_date, priority, status"

const (
	getTaskByIDQuery = `SELECT ` + taskColumns + ` FROM tasks WHERE id = ?`

	insertTaskQuery = `
INSERT INTO tasks (id, root_task_id, summary, description, create_date, due_date, priority, status)
VALUES (?, ?, ?, ?, ?, ?, ?, ?)`

	deleteTaskQuery = `DELETE FROM tasks WHERE id = ?`

	listSubtasksQuery = `SELECT ` + taskColumns + ` FROM tasks WHERE root_task_id = ? ORDER BY create_date, id`

	// %[1]s is the sort expression and %[2]s the direction, both taken from allow-lists.
	listRootTasksQuery = `
SELECT ` + taskColumns + `
FROM tasks
WHERE root_task_id IS NULL
ORDER BY %[1]s %[2]s, id %[2]s
LIMIT ? OFFSET ?`

	searchTasksQuery = `
SELECT id, summary, description
FROM tasks
WHERE root_task_id IS NULL
  AND (LOWER(summary) LIKE ? ESCAPE '!' OR LOWER(COALESCE(description, '')) LIKE ? ESCAPE '!')
ORDER BY create_date, id
LIMIT ? OFFSET ?`

	// UNION rather than UNION ALL so that a cycle already present in the data
	// can't make the recursion run forever.
	listSubtreeIDsQuery = `
WITH RECURSIVE subtree (id) AS (
  SELECT id FROM tasks WHERE root_task_id = ?
  UNION
  SELECT t.id FROM tasks t INNER JOIN subtree s ON t.root_task_id = s.id
)
SELECT id FROM subtree`

	updateTaskRootQuery = `UPDATE tasks SET root_task_id = ? WHERE id = ?`

	updateTaskQuery = `
UPDATE tasks
SET summary = ?, description = ?, due_date = ?, priority = ?, status = ?
WHERE id = ?`
)

const priorityRank = `CASE priority WHEN 'Low' THEN 0 WHEN 'Normal' THEN 1 WHEN 'High' THEN 2 WHEN 'Urgent' THEN 3 END`

// taskSortExpressions is the allow-list of sortable fields, keyed by the
// lower-cased field name without underscores.
var taskSortExpressions = map[string]string{
	"createdate": "create_date",
	"duedate":    "due_date",
	"summary":    "summary",
	"priority":   priorityRank,
	"status":     "status",
}

var likeEscaper = strings.NewReplacer("!", "!!", "%", "!%", "_", "!_")

type TaskRepository struct {
	db *sqlx.DB
	q  sqlx.ExtContext
}

var (
	_ ports.TaskRepository = (*TaskRepository)(nil)
	_ ports.TaskTransactor = (*TaskRepository)(nil)
)

func NewTaskRepository(db *sqlx.DB) *TaskRepository {
	return &TaskRepository{db: db, q: db}
}

func (r *TaskRepository) GetByID(ctx context.Context, id uuid.UUID) (domain.Task, error) {
	var row taskRow
	if err := sqlx.GetContext(ctx, r.q, &row, r.q.Rebind(getTaskByIDQuery), id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Task{}, domain.ErrTaskNotFound
		}
		return domain.Task{}, err
	}

	return mapTaskRowToDomainTask(row)
}

func (r *TaskRepository) Insert(ctx context.Context, task domain.Task) error {
	_, err := r.q.ExecContext(ctx, r.q.Rebind(insertTaskQuery),
		task.ID,
		toNullUUID(task.RootTaskID),
		task.Summary,
		toNullString(task.Description),
		task.CreateDate.UTC(),
		task.DueDate.UTC(),
		string(task.Priority),
		string(task.Status),
	)
	return err
}

func (r *TaskRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.q.ExecContext(ctx, r.q.Rebind(deleteTaskQuery), id)
	if err != nil {
		return err
	}
	return requireAffectedRow(result)
}

func (r *TaskRepository) GetSubtasks(ctx context.Context, parentID uuid.UUID) ([]domain.Task, error) {
	var rows []taskRow
	if err := sqlx.SelectContext(ctx, r.q, &rows, r.q.Rebind(listSubtasksQuery), parentID); err != nil {
		return nil, err
	}
	return mapTaskRowsToDomainTasks(rows)
}

func (r *TaskRepository) GetRootTaskBatch(ctx context.Context, take int, offset uint64, sortBy string, descending bool) ([]domain.Task, error) {
	expression, ok := taskSortExpressions[normalizeSortField(sortBy)]
	if !ok {
		return nil, fmt.Errorf("%w: %q", domain.ErrInvalidSortField, sortBy)
	}

	query := fmt.Sprintf(listRootTasksQuery, expression, sortDirection(descending))

	var rows []taskRow
	if err := sqlx.SelectContext(ctx, r.q, &rows, r.q.Rebind(query), take, int64(offset)); err != nil {
		return nil, err
	}
	return mapTaskRowsToDomainTasks(rows)
}

func (r *TaskRepository) SearchTasks(ctx context.Context, phrase string, take int, offset uint64) ([]domain.TaskSearchResult, error) {
	pattern := "%" + likeEscaper.Replace(strings.ToLower(phrase)) + "%"

	var rows []taskSearchRow
	if err := sqlx.SelectContext(ctx, r.q, &rows, r.q.Rebind(searchTasksQuery), pattern, pattern, take, int64(offset)); err != nil {
		return nil, err
	}

	results := make([]domain.TaskSearchResult, 0, len(rows))
	for _, row := range rows {
		results = append(results, mapTaskSearchRowToDomain(row))
	}
	return results, nil
}

func (r *TaskRepository) GetAllSubtasksRecursive(ctx context.Context, id uuid.UUID) (map[uuid.UUID]struct{}, error) {
	var ids []uuid.UUID
	if err := sqlx.SelectContext(ctx, r.q, &ids, r.q.Rebind(listSubtreeIDsQuery), id); err != nil {
		return nil, err
	}

	subtree := make(map[uuid.UUID]struct{}, len(ids))
	for _, subtaskID := range ids {
		subtree[subtaskID] = struct{}{}
	}
	return subtree, nil
}

func (r *TaskRepository) UpdateTaskRoot(ctx context.Context, id uuid.UUID, newRootID *uuid.UUID) error {
	result, err := r.q.ExecContext(ctx, r.q.Rebind(updateTaskRootQuery), toNullUUID(newRootID), id)
	if err != nil {
		return err
	}
	return requireAffectedRow(result)
}

func (r *TaskRepository) UpdateTask(ctx context.Context, id uuid.UUID, details domain.TaskDetails) error {
	result, err := r.q.ExecContext(ctx, r.q.Rebind(updateTaskQuery),
		details.Summary,
		toNullString(details.Description),
		details.DueDate.UTC(),
		string(details.Priority),
		string(details.Status),
		id,
	)
	if err != nil {
		return err
	}
	return requireAffectedRow(result)
}

// WithinTx runs fn against a repository bound to a single transaction.
// Nested calls reuse the outer transaction.
func (r *TaskRepository) WithinTx(ctx context.Context, fn func(repo ports.TaskRepository) error) error {
	if r.db == nil {
		return fn(r)
	}

	tx, err := r.db.BeginTxx(ctx, txOptions(r.db.DriverName()))
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}

	if err := fn(&TaskRepository{q: tx}); err != nil {
		if rollbackErr := tx.Rollback(); rollbackErr != nil {
			zap.L().Warn("failed to rollback transaction", zap.Error(rollbackErr))
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

func txOptions(driver string) *sql.TxOptions {
	if driver == DriverSQLite {
		return nil
	}
	return &sql.TxOptions{Isolation: sql.LevelSerializable}
}

func normalizeSortField(field string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(field)), "_", "")
}

func sortDirection(descending bool) string {
	if descending {
		return "DESC"
	}
	return "ASC"
}

func requireAffectedRow(result sql.Result) error {
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.ErrTaskNotFound
	}
	return nil
}
