package db

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"todolist/internal/core/domain"
)

type taskRow struct {
	ID          uuid.UUID      `db:"id"`
	RootTaskID  uuid.NullUUID  `db:"root_task_id"`
	Summary     string         `db:"summary"`
	Description sql.NullString `db:"description"`
	CreateDate  time.Time      `db:"create_date"`
	DueDate     time.Time      `db:"due_date"`
	Priority    string         `db:"priority"`
	Status      string         `db:"status"`
}

type taskSearchRow struct {
	ID          uuid.UUID      `db:"id"`
	Summary     string         `db:"summary"`
	Description sql.NullString `db:"description"`
}

type logRow struct {
	ID            uuid.UUID      `db:"id"`
	Action        string         `db:"action"`
	TimestampMsec int64          `db:"timestamp_msec"`
	EntityID      uuid.NullUUID  `db:"entity_id"`
	EntityType    sql.NullString `db:"entity_type"`
	Payload       sql.NullString `db:"payload"`
}

func mapTaskRowToDomainTask(row taskRow) (domain.Task, error) {
	priority := domain.TaskPriority(row.Priority)
	if !priority.IsValid() {
		return domain.Task{}, fmt.Errorf("task %s: unknown priority %q", row.ID, row.Priority)
	}
	status := domain.TaskStatus(row.Status)
	if !status.IsValid() {
		return domain.Task{}, fmt.Errorf("task %s: unknown status %q", row.ID, row.Status)
	}

	return domain.Task{
		ID:          row.ID,
		RootTaskID:  fromNullUUID(row.RootTaskID),
		Summary:     row.Summary,
		Description: fromNullString(row.Description),
		CreateDate:  row.CreateDate.UTC(),
		DueDate:     row.DueDate.UTC(),
		Priority:    priority,
		Status:      status,
	}, nil
}

func mapTaskRowsToDomainTasks(rows []taskRow) ([]domain.Task, error) {
	tasks := make([]domain.Task, 0, len(rows))
	for _, row := range rows {
		task, err := mapTaskRowToDomainTask(row)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, task)
	}
	return tasks, nil
}

func mapTaskSearchRowToDomain(row taskSearchRow) domain.TaskSearchResult {
	return domain.TaskSearchResult{
		ID:          row.ID,
		Summary:     row.Summary,
		Description: fromNullString(row.Description),
	}
}

func mapLogRowToDomainLogEntry(row logRow) (domain.LogEntry, error) {
	action := domain.TaskAction(row.Action)
	if !action.IsValid() {
		return domain.LogEntry{}, fmt.Errorf("log %s: unknown action %q", row.ID, row.Action)
	}

	return domain.LogEntry{
		ID:         row.ID,
		Action:     action,
		Timestamp:  row.TimestampMsec,
		EntityID:   fromNullUUID(row.EntityID),
		EntityType: fromNullString(row.EntityType),
		Payload:    fromNullString(row.Payload),
	}, nil
}

func mapLogRowsToDomainLogEntries(rows []logRow) ([]domain.LogEntry, error) {
	entries := make([]domain.LogEntry, 0, len(rows))
	for _, row := range rows {
		entry, err := mapLogRowToDomainLogEntry(row)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

func fromNullUUID(value uuid.NullUUID) *uuid.UUID {
	if !value.Valid {
		return nil
	}
	id := value.UUID
	return &id
}

func toNullUUID(value *uuid.UUID) uuid.NullUUID {
	if value == nil {
		return uuid.NullUUID{}
	}
	return uuid.NullUUID{UUID: *value, Valid: true}
}

func fromNullString(value sql.NullString) *string {
	if !value.Valid {
		return nil
	}
	s := value.String
	return &s
}

func toNullString(value *string) sql.NullString {
	if value == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *value, Valid: true}
}
