package storage

//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_document_store.go -package=mocks linuxword/internal/storage DocumentStore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"
)

var (
	// ErrNotFound is returned when a record is not found.
	ErrNotFound = errors.New("record not found")
)

// DocumentStore is a string-keyed store of saved documents.
// Writers are not coordinated: the last Set for a name wins.
type DocumentStore interface {
	// Get returns the content saved under name, or ErrNotFound.
	Get(ctx context.Context, name string) (string, error)
	// Set saves content under name, overwriting any earlier content.
	Set(ctx context.Context, name, content string) error
	// List returns all saved documents ordered by name, without content.
	List(ctx context.Context) ([]DocumentRecord, error)
	// Delete removes the document saved under name, or returns ErrNotFound.
	Delete(ctx context.Context, name string) error
}

// DocumentRepo provides methods for document operations.
// It implements the DocumentStore interface.
type DocumentRepo struct {
	db *sql.DB
}

// NewDocumentRepo creates a new DocumentRepo.
func NewDocumentRepo(db *sql.DB) *DocumentRepo {
	return &DocumentRepo{db: db}
}

// Get returns the content saved under name.
func (r *DocumentRepo) Get(ctx context.Context, name string) (string, error) {
	var content string
	err := r.db.QueryRowContext(ctx,
		"SELECT content FROM documents WHERE name = ?",
		name,
	).Scan(&content)

	if err == sql.ErrNoRows {
		return "", ErrNotFound
	}
	if err != nil {
		return "", fmt.Errorf("failed to query document: %w", err)
	}
	return content, nil
}

// Set inserts or overwrites the document saved under name.
func (r *DocumentRepo) Set(ctx context.Context, name, content string) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO documents (name, content, created_at, updated_at)
		 VALUES (?, ?, CURRENT_TIMESTAMP, CURRENT_TIMESTAMP)
		 ON CONFLICT (name) DO UPDATE SET
		 content = excluded.content, updated_at = CURRENT_TIMESTAMP`,
		name, content,
	)
	if err != nil {
		return fmt.Errorf("failed to save document: %w", err)
	}
	return nil
}

// List returns all saved documents ordered by name. Content is left empty.
func (r *DocumentRepo) List(ctx context.Context) ([]DocumentRecord, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT name, created_at, updated_at FROM documents ORDER BY name",
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list documents: %w", err)
	}
	defer rows.Close()

	var docs []DocumentRecord
	for rows.Next() {
		var doc DocumentRecord
		var createdAtStr, updatedAtStr string
		if err := rows.Scan(&doc.Name, &createdAtStr, &updatedAtStr); err != nil {
			return nil, fmt.Errorf("failed to scan document: %w", err)
		}
		if doc.CreatedAt, err = parseTimestamp(createdAtStr); err != nil {
			return nil, err
		}
		if doc.UpdatedAt, err = parseTimestamp(updatedAtStr); err != nil {
			return nil, err
		}
		docs = append(docs, doc)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return docs, nil
}

// Delete removes the document saved under name.
func (r *DocumentRepo) Delete(ctx context.Context, name string) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM documents WHERE name = ?", name)
	if err != nil {
		return fmt.Errorf("failed to delete document: %w", err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to delete document: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// parseTimestamp parses a SQLite DATETIME column.
func parseTimestamp(s string) (time.Time, error) {
	t, err := time.Parse("2006-01-02 15:04:05", s)
	if err == nil {
		return t, nil
	}
	// Try alternative format (SQLite might use different format)
	t, err = time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to parse timestamp %q: %w", s, err)
	}
	return t, nil
}
