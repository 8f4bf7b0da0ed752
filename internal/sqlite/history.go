package sqlite

import (
	"context"
	"time"

	"github.com/rpggio/toolbox/internal/domain/history"
)

// HistoryRepository implements history.Repository for SQLite
type HistoryRepository struct {
	db *DB
}

// NewHistoryRepository creates a new HistoryRepository
func NewHistoryRepository(db *DB) *HistoryRepository {
	return &HistoryRepository{db: db}
}

// Create inserts a new entry and assigns its ID
func (r *HistoryRepository) Create(ctx context.Context, entry *history.Entry) error {
	createdAt := entry.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}

	query := `
		INSERT INTO history (type, title, content, timestamp)
		VALUES (?, ?, ?, ?)
	`

	result, err := r.db.ExecContext(ctx, query,
		entry.Kind,
		entry.Title,
		entry.Content,
		formatTime(createdAt),
	)
	if err != nil {
		return storageError("create history entry", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return storageError("read history entry id", err)
	}

	entry.ID = id
	entry.CreatedAt = createdAt
	return nil
}

// List returns all entries, newest first; equal timestamps fall back to
// insertion order.
func (r *HistoryRepository) List(ctx context.Context) ([]history.Entry, error) {
	query := `
		SELECT id, type, title, content, timestamp
		FROM history
		ORDER BY timestamp DESC, id DESC
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, storageError("list history", err)
	}
	defer rows.Close()

	entries := []history.Entry{}
	for rows.Next() {
		var entry history.Entry
		var createdAt timestamp
		if err := rows.Scan(
			&entry.ID,
			&entry.Kind,
			&entry.Title,
			&entry.Content,
			&createdAt,
		); err != nil {
			return nil, storageError("scan history entry", err)
		}
		entry.CreatedAt = createdAt.Time
		entries = append(entries, entry)
	}

	if err := rows.Err(); err != nil {
		return nil, storageError("iterate history rows", err)
	}

	return entries, nil
}

// Delete removes the entry with the given ID and reports whether a row existed
func (r *HistoryRepository) Delete(ctx context.Context, id int64) (bool, error) {
	result, err := r.db.ExecContext(ctx, `DELETE FROM history WHERE id = ?`, id)
	if err != nil {
		return false, storageError("delete history entry", err)
	}

	n, err := result.RowsAffected()
	if err != nil {
		return false, storageError("read rows affected", err)
	}
	return n > 0, nil
}

// Clear removes every history entry
func (r *HistoryRepository) Clear(ctx context.Context) (int64, error) {
	result, err := r.db.ExecContext(ctx, `DELETE FROM history`)
	if err != nil {
		return 0, storageError("clear history", err)
	}

	n, err := result.RowsAffected()
	if err != nil {
		return 0, storageError("read rows affected", err)
	}
	return n, nil
}
