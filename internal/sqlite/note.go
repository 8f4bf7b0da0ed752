package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/rpggio/toolbox/internal/domain/note"
)

// NoteRepository implements note.Repository for SQLite
type NoteRepository struct {
	db *DB
}

// NewNoteRepository creates a new NoteRepository
func NewNoteRepository(db *DB) *NoteRepository {
	return &NoteRepository{db: db}
}

// Create inserts a new note and assigns its ID
func (r *NoteRepository) Create(ctx context.Context, n *note.Note) error {
	createdAt := n.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}

	query := `
		INSERT INTO notes (title, content, color, timestamp)
		VALUES (?, ?, ?, ?)
	`

	result, err := r.db.ExecContext(ctx, query,
		n.Title,
		n.Content,
		n.Color,
		formatTime(createdAt),
	)
	if err != nil {
		return storageError("create note", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return storageError("read note id", err)
	}

	n.ID = id
	n.CreatedAt = createdAt
	return nil
}

// List returns all notes, newest first
func (r *NoteRepository) List(ctx context.Context) ([]note.Note, error) {
	query := `
		SELECT id, title, content, color, timestamp
		FROM notes
		ORDER BY timestamp DESC, id DESC
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, storageError("list notes", err)
	}
	defer rows.Close()

	notes := []note.Note{}
	for rows.Next() {
		var n note.Note
		var color sql.NullString
		var createdAt timestamp
		if err := rows.Scan(&n.ID, &n.Title, &n.Content, &color, &createdAt); err != nil {
			return nil, storageError("scan note", err)
		}
		if color.Valid {
			n.Color = &color.String
		}
		n.CreatedAt = createdAt.Time
		notes = append(notes, n)
	}

	if err := rows.Err(); err != nil {
		return nil, storageError("iterate note rows", err)
	}

	return notes, nil
}

// Delete removes the note with the given ID and reports whether a row existed
func (r *NoteRepository) Delete(ctx context.Context, id int64) (bool, error) {
	result, err := r.db.ExecContext(ctx, `DELETE FROM notes WHERE id = ?`, id)
	if err != nil {
		return false, storageError("delete note", err)
	}

	n, err := result.RowsAffected()
	if err != nil {
		return false, storageError("read rows affected", err)
	}
	return n > 0, nil
}
