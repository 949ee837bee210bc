package db

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/pxshot/pxshot-go/internal/models"

	_ "modernc.org/sqlite"
)

// DB wraps the SQLite capture-history database
type DB struct {
	conn *sql.DB
}

// New creates a new database connection and initializes the schema
func New(dbPath string) (*DB, error) {
	// Ensure the directory exists
	dir := filepath.Dir(dbPath)
	if dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	conn, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if _, err := conn.Exec(createCapturesTable); err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to create captures schema: %w", err)
	}

	return &DB{conn: conn}, nil
}

// Close closes the database connection
func (db *DB) Close() error {
	return db.conn.Close()
}

// InsertCapture records a completed capture and returns its row ID
func (db *DB) InsertCapture(c models.Capture) (int64, error) {
	createdAt := c.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}

	result, err := db.conn.Exec(insertCapture,
		c.URL, c.OutputPath, c.StoredURL, c.ExpiresAt,
		c.Width, c.Height, c.SizeBytes, c.Format,
		createdAt.Format(time.RFC3339),
	)
	if err != nil {
		return 0, fmt.Errorf("failed to insert capture: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get capture id: %w", err)
	}
	return id, nil
}

// ListCaptures retrieves capture history with filtering and pagination,
// newest first
func (db *DB) ListCaptures(filter models.CaptureFilter) ([]models.Capture, error) {
	if filter.Limit <= 0 {
		filter.Limit = 100
	}

	searchPattern := ""
	if filter.SearchText != "" {
		searchPattern = "%" + filter.SearchText + "%"
	}
	storedOnly := 0
	if filter.StoredOnly {
		storedOnly = 1
	}

	rows, err := db.conn.Query(selectCaptures,
		filter.SearchText, searchPattern, storedOnly,
		filter.Limit, filter.Offset,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query captures: %w", err)
	}
	defer rows.Close()

	var captures []models.Capture
	for rows.Next() {
		var c models.Capture
		var createdAt string
		err := rows.Scan(
			&c.ID, &c.URL, &c.OutputPath, &c.StoredURL, &c.ExpiresAt,
			&c.Width, &c.Height, &c.SizeBytes, &c.Format, &createdAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan capture: %w", err)
		}
		if t, err := time.Parse(time.RFC3339, createdAt); err == nil {
			c.CreatedAt = t
		}
		captures = append(captures, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read captures: %w", err)
	}

	return captures, nil
}

// CaptureCount returns the total number of recorded captures
func (db *DB) CaptureCount() (int, error) {
	var count int
	if err := db.conn.QueryRow(selectCaptureCount).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count captures: %w", err)
	}
	return count, nil
}
