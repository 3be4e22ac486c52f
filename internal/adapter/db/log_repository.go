package db

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"todolist/internal/core/domain"
	"todolist/internal/core/ports"
)

const logColumns = "id, action, timestamp_msec, entity_id, entity_type, payload"

const (
	insertLogQuery = `
INSERT INTO logs (id, action, timestamp_msec, entity_id, entity_type, payload)
VALUES (?, ?, ?, ?, ?, ?)`

	listLogsByEntityTypeQuery = `
SELECT ` + logColumns + `
FROM logs
WHERE entity_type = ?
ORDER BY timestamp_msec %[1]s, id %[1]s
LIMIT ? OFFSET ?`

	listLogsByEntityQuery = `
SELECT ` + logColumns + `
FROM logs
WHERE entity_id = ?
ORDER BY timestamp_msec %[1]s, id %[1]s
LIMIT ? OFFSET ?`
)

type LogRepository struct {
	db *sqlx.DB
}

var _ ports.LogRepository = (*LogRepository)(nil)

func NewLogRepository(db *sqlx.DB) *LogRepository {
	return &LogRepository{db: db}
}

func (r *LogRepository) Insert(ctx context.Context, entry domain.LogEntry) error {
	_, err := r.db.ExecContext(ctx, r.db.Rebind(insertLogQuery),
		entry.ID,
		string(entry.Action),
		entry.Timestamp,
		toNullUUID(entry.EntityID),
		toNullString(entry.EntityType),
		toNullString(entry.Payload),
	)
	return err
}

func (r *LogRepository) GetBatchByEntityType(ctx context.Context, entityType string, offset uint64, take int, descending bool) ([]domain.LogEntry, error) {
	return r.selectBatch(ctx, listLogsByEntityTypeQuery, entityType, offset, take, descending)
}

func (r *LogRepository) GetBatchByEntity(ctx context.Context, entityID uuid.UUID, offset uint64, take int, descending bool) ([]domain.LogEntry, error) {
	return r.selectBatch(ctx, listLogsByEntityQuery, entityID, offset, take, descending)
}

func (r *LogRepository) selectBatch(ctx context.Context, query string, filter any, offset uint64, take int, descending bool) ([]domain.LogEntry, error) {
	query = fmt.Sprintf(query, sortDirection(descending))

	var rows []logRow
	if err := r.db.SelectContext(ctx, &rows, r.db.Rebind(query), filter, take, int64(offset)); err != nil {
		return nil, err
	}
	return mapLogRowsToDomainLogEntries(rows)
}
