package db

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
)

// Each task keeps root_task_id without a foreign key: deleting a root leaves
// its subtasks pointing at the removed id.
var schemas = map[string][]string{
	DriverMySQL: {
		`CREATE TABLE IF NOT EXISTS tasks (
            id CHAR(36) NOT NULL PRIMARY KEY,
            root_task_id CHAR(36) NULL,
            summary VARCHAR(255) NOT NULL,
            description TEXT NULL,
            create_date DATETIME NOT NULL,
            due_date DATETIME NOT NULL,
            priority VARCHAR(16) NOT NULL,
            status VARCHAR(16) NOT NULL,
            INDEX idx_tasks_root_task_id (root_task_id),
            INDEX idx_tasks_create_date (create_date)
        )`,
		`CREATE TABLE IF NOT EXISTS logs (
            id CHAR(36) NOT NULL PRIMARY KEY,
            action VARCHAR(16) NOT NULL,
            timestamp_msec BIGINT NOT NULL,
            entity_id CHAR(36) NULL,
            entity_type VARCHAR(64) NULL,
            payload TEXT NULL,
            INDEX idx_logs_entity_type (entity_type, timestamp_msec),
            INDEX idx_logs_entity_id (entity_id, timestamp_msec)
        )`,
	},
	DriverPostgres: {
		`CREATE TABLE IF NOT EXISTS tasks (
            id VARCHAR(36) NOT NULL PRIMARY KEY,
            root_task_id VARCHAR(36) NULL,
            summary VARCHAR(255) NOT NULL,
            description TEXT NULL,
            create_date TIMESTAMPTZ NOT NULL,
            due_date TIMESTAMPTZ NOT NULL,
            priority VARCHAR(16) NOT NULL,
            status VARCHAR(16) NOT NULL
        )`,
		`CREATE INDEX IF NOT EXISTS idx_tasks_root_task_id ON tasks (root_task_id)`,
		`CREATE INDEX IF NOT EXISTS idx_tasks_create_date ON tasks (create_date)`,
		`CREATE TABLE IF NOT EXISTS logs (
            id VARCHAR(36) NOT NULL PRIMARY KEY,
            action VARCHAR(16) NOT NULL,
            timestamp_msec BIGINT NOT NULL,
            entity_id VARCHAR(36) NULL,
            entity_type VARCHAR(64) NULL,
            payload TEXT NULL
        )`,
		`CREATE INDEX IF NOT EXISTS idx_logs_entity_type ON logs (entity_type, timestamp_msec)`,
		`CREATE INDEX IF NOT EXISTS idx_logs_entity_id ON logs (entity_id, timestamp_msec)`,
	},
	DriverSQLite: {
		`CREATE TABLE IF NOT EXISTS tasks (
            id TEXT NOT NULL PRIMARY KEY,
            root_task_id TEXT NULL,
            summary TEXT NOT NULL,
            description TEXT NULL,
            create_date DATETIME NOT NULL,
            due_date DATETIME NOT NULL,
            priority TEXT NOT NULL,
            status TEXT NOT NULL
        )`,
		`CREATE INDEX IF NOT EXISTS idx_tasks_root_task_id ON tasks (root_task_id)`,
		`CREATE INDEX IF NOT EXISTS idx_tasks_create_date ON tasks (create_date)`,
		`CREATE TABLE IF NOT EXISTS logs (
            id TEXT NOT NULL PRIMARY KEY,
            action TEXT NOT NULL,
            timestamp_msec INTEGER NOT NULL,
            entity_id TEXT NULL,
            entity_type TEXT NULL,
            payload TEXT NULL
        )`,
		`CREATE INDEX IF NOT EXISTS idx_logs_entity_type ON logs (entity_type, timestamp_msec)`,
		`CREATE INDEX IF NOT EXISTS idx_logs_entity_id ON logs (entity_id, timestamp_msec)`,
	},
}

// Migrate creates the tasks and logs tables for the connection's driver.
func Migrate(ctx context.Context, db *sqlx.DB) error {
	stmts, ok := schemas[db.DriverName()]
	if !ok {
		return fmt.Errorf("no schema for driver %q", db.DriverName())
	}

	for _, stmt := range stmts {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("migration failed: %w", err)
		}
	}
	return nil
}
