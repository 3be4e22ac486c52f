package db

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/mattn/go-sqlite3"

	"todolist/internal/config"
)

const (
	DriverMySQL    = "mysql"
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite3"
)

const (
	defaultMySQLParams    = "parseTime=true&multiStatements=true&clientFoundRows=true"
	defaultPostgresParams = "sslmode=disable"
	defaultSQLiteParams   = "_busy_timeout=5000"
)

// sqliteUnicodeDriver is go-sqlite3 with lower() folding non-ASCII letters
// too, so task search is case-insensitive beyond ASCII as on mysql and
// postgres.
const sqliteUnicodeDriver = "sqlite3_unicode"

func init() {
	sql.Register(sqliteUnicodeDriver, &sqlite3.SQLiteDriver{
		ConnectHook: func(conn *sqlite3.SQLiteConn) error {
			return conn.RegisterFunc("lower", strings.ToLower, true)
		},
	})
}

func ConnectDB(conf *config.Config) (*sqlx.DB, error) {
	dsn, err := buildDSN(conf)
	if err != nil {
		return nil, err
	}

	db, err := openDB(conf.DbDriver, dsn)
	if err != nil {
		return nil, fmt.Errorf("connect %s: %w", conf.DbDriver, err)
	}

	if conf.DbDriver == DriverSQLite {
		// SQLite allows a single writer and every :memory: connection is its own database.
		db.SetMaxOpenConns(1)
		db.SetConnMaxLifetime(0)
		return db, nil
	}

	db.SetMaxOpenConns(conf.DbMaxOpenConns)
	db.SetMaxIdleConns(conf.DbMaxIdleConns)
	db.SetConnMaxLifetime(conf.DbConnMaxLifetime)

	return db, nil
}

// openDB keeps the configured name as the sqlx driver name so bind vars and
// schema lookups stay keyed on it.
func openDB(driver, dsn string) (*sqlx.DB, error) {
	if driver != DriverSQLite {
		return sqlx.Connect(driver, dsn)
	}

	sqlDB, err := sql.Open(sqliteUnicodeDriver, dsn)
	if err != nil {
		return nil, err
	}
	db := sqlx.NewDb(sqlDB, DriverSQLite)
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, err
	}
	return db, nil
}

func buildDSN(conf *config.Config) (string, error) {
	params := conf.DbParams

	switch conf.DbDriver {
	case DriverMySQL:
		if params == "" {
			params = defaultMySQLParams
		}
		mysqlConf, err := mysql.ParseDSN(fmt.Sprintf(
			"%s:%s@tcp(%s:%s)/%s?%s",
			conf.DbUser,
			conf.DbPassword,
			conf.DbHost,
			conf.DbPort,
			conf.DbName,
			params,
		))
		if err != nil {
			return "", fmt.Errorf("invalid mysql params %q: %w", params, err)
		}
		// Updates that change nothing must still count as matched rows,
		// otherwise they would be reported as missing tasks.
		mysqlConf.ClientFoundRows = true
		return mysqlConf.FormatDSN(), nil
	case DriverPostgres:
		if params == "" {
			params = defaultPostgresParams
		}
		return fmt.Sprintf(
			"host=%s port=%s user=%s password=%s dbname=%s %s",
			conf.DbHost,
			conf.DbPort,
			conf.DbUser,
			conf.DbPassword,
			conf.DbName,
			params,
		), nil
	case DriverSQLite:
		if params == "" {
			params = defaultSQLiteParams
		}
		return fmt.Sprintf("file:%s?%s", conf.SqlitePath, params), nil
	default:
		return "", fmt.Errorf("unsupported database driver %q", conf.DbDriver)
	}
}
