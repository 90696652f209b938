// Package db stores the user's custom example messages in SQLite.
package db

import (
	"database/sql"
	"log"
	"testing"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"slogforge/models"
	"slogforge/utils"
)

var dbInstance *sql.DB

func init() {
	setupDatabase()

	query := `
	CREATE TABLE IF NOT EXISTS custom_examples (
	    id INTEGER PRIMARY KEY AUTOINCREMENT,
	    name TEXT NOT NULL,
	    description TEXT,
	    rfc_version TEXT NOT NULL,
	    raw_message TEXT NOT NULL,
	    created_at TIMESTAMP NOT NULL,
	    updated_at TIMESTAMP NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_custom_examples_rfc_version ON custom_examples(rfc_version);
	`

	if _, err := dbInstance.Exec(query); err != nil {
		log.Fatalf("Failed to create custom_examples table: %v", err)
	}
}

// setupDatabase opens the connection: in-memory under `go test`,
// file-based otherwise.
func setupDatabase() {
	dbPath := utils.DBPath
	if testing.Testing() {
		dbPath = ":memory:"
	}

	var err error
	dbInstance, err = sql.Open("sqlite3", dbPath)
	if err != nil {
		log.Fatalf("Failed to open database %s: %v", dbPath, err)
	}

	// A single connection keeps the in-memory database alive across
	// calls and serializes writers.
	dbInstance.SetMaxOpenConns(1)
}

// GetDBInstance returns the initialized SQLite database instance.
func GetDBInstance() *sql.DB {
	return dbInstance
}

// CreateExample inserts a new example and returns it with its assigned
// id and timestamps.
func CreateExample(req models.CreateExampleRequest) (*models.CustomExample, error) {
	now := time.Now()

	res, err := dbInstance.Exec(
		`INSERT INTO custom_examples (name, description, rfc_version, raw_message, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		req.Name, req.Description, req.RFCVersion, req.RawMessage, now, now,
	)
	if err != nil {
		return nil, err
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, err
	}

	return GetExample(id)
}

// GetExamples lists stored examples, newest first, optionally filtered
// by RFC version.
func GetExamples(rfcVersion string) ([]models.CustomExample, error) {
	query := `SELECT id, name, description, rfc_version, raw_message, created_at, updated_at
	          FROM custom_examples`
	var args []any

	if rfcVersion != "" {
		query += ` WHERE rfc_version = ?`
		args = append(args, rfcVersion)
	}
	query += ` ORDER BY created_at DESC, id DESC`

	rows, err := dbInstance.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	examples := []models.CustomExample{}
	for rows.Next() {
		var e models.CustomExample
		var description sql.NullString
		if err := rows.Scan(&e.ID, &e.Name, &description, &e.RFCVersion, &e.RawMessage, &e.CreatedAt, &e.UpdatedAt); err != nil {
			return nil, err
		}
		e.Description = description.String
		examples = append(examples, e)
	}

	return examples, rows.Err()
}

// GetExample fetches one example by id. Returns (nil, nil) when no row
// exists.
func GetExample(id int64) (*models.CustomExample, error) {
	var e models.CustomExample
	var description sql.NullString

	err := dbInstance.QueryRow(
		`SELECT id, name, description, rfc_version, raw_message, created_at, updated_at
		 FROM custom_examples WHERE id = ?`, id,
	).Scan(&e.ID, &e.Name, &description, &e.RFCVersion, &e.RawMessage, &e.CreatedAt, &e.UpdatedAt)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	e.Description = description.String
	return &e, nil
}

// UpdateExample applies the non-nil fields of req to the example and
// bumps updated_at. Returns (nil, nil) when no row exists.
func UpdateExample(id int64, req models.UpdateExampleRequest) (*models.CustomExample, error) {
	existing, err := GetExample(id)
	if err != nil || existing == nil {
		return nil, err
	}

	if req.Name != nil {
		existing.Name = *req.Name
	}
	if req.Description != nil {
		existing.Description = *req.Description
	}
	if req.RFCVersion != nil {
		existing.RFCVersion = *req.RFCVersion
	}
	if req.RawMessage != nil {
		existing.RawMessage = *req.RawMessage
	}

	_, err = dbInstance.Exec(
		`UPDATE custom_examples
		 SET name = ?, description = ?, rfc_version = ?, raw_message = ?, updated_at = ?
		 WHERE id = ?`,
		existing.Name, existing.Description, existing.RFCVersion, existing.RawMessage, time.Now(), id,
	)
	if err != nil {
		return nil, err
	}

	return GetExample(id)
}

// DeleteExample removes one example, reporting whether a row existed.
func DeleteExample(id int64) (bool, error) {
	res, err := dbInstance.Exec(`DELETE FROM custom_examples WHERE id = ?`, id)
	if err != nil {
		return false, err
	}

	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}

	return n > 0, nil
}
