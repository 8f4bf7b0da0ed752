package note

import (
	"context"
	"fmt"
	"log/slog"
	"time"
)

// Service handles note operations.
type Service struct {
	repo   Repository
	logger *slog.Logger
	now    func() time.Time
}

// NewService creates a new note service.
func NewService(repo Repository, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Service{repo: repo, logger: logger, now: time.Now}
}

// WithClock replaces the clock used to stamp new notes.
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

// CreateRequest defines note creation inputs. Color may be nil.
type CreateRequest struct {
	Title   *string
	Content *string
	Color   *string
}

// Validate checks that title and content are present.
func (r CreateRequest) Validate() error {
	if r.Title == nil {
		return ErrMissingTitle
	}
	if r.Content == nil {
		return ErrMissingContent
	}
	return nil
}

// Create stores a new note.
func (s *Service) Create(ctx context.Context, req CreateRequest) (*Note, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	n := &Note{
		Title:     *req.Title,
		Content:   *req.Content,
		Color:     req.Color,
		CreatedAt: s.now().UTC(),
	}
	if err := s.repo.Create(ctx, n); err != nil {
		return nil, fmt.Errorf("creating note: %w", err)
	}

	s.logger.Debug("note created", "id", n.ID)
	return n, nil
}

// List returns every note, newest first.
func (s *Service) List(ctx context.Context) ([]Note, error) {
	notes, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing notes: %w", err)
	}
	if notes == nil {
		notes = []Note{}
	}
	return notes, nil
}

// Delete removes a note; a missing id is not an error.
func (s *Service) Delete(ctx context.Context, id int64) error {
	removed, err := s.repo.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("deleting note: %w", err)
	}
	s.logger.Debug("note deleted", "id", id, "removed", removed)
	return nil
}
