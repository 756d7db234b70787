package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS users (
	owner_id INTEGER PRIMARY KEY,
	chat_id  INTEGER NOT NULL,
	language TEXT    NOT NULL
);
CREATE TABLE IF NOT EXISTS tasks (
	id       INTEGER PRIMARY KEY AUTOINCREMENT,
	owner_id INTEGER NOT NULL,
	title    TEXT    NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_tasks_owner ON tasks(owner_id);
`

// DB обёртка над соединением SQLite.
type DB struct {
	conn *sql.DB
}

// OpenDB открывает базу в dataDir и готовит схему.
func OpenDB(dataDir string) (*DB, error) {
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}

	conn, err := sql.Open("sqlite", filepath.Join(dataDir, "todo.db"))
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	if err := conn.Ping(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("ping db: %w", err)
	}
	if _, err := conn.Exec(schema); err != nil {
		conn.Close()
		return nil, fmt.Errorf("init schema: %w", err)
	}
	return &DB{conn: conn}, nil
}

// Conn возвращает нижележащее соединение.
func (d *DB) Conn() *sql.DB {
	return d.conn
}

// Close закрывает соединение с базой.
func (d *DB) Close() error {
	return d.conn.Close()
}
