package history

import (
	"context"
	"fmt"
	"log/slog"
	"time"
)

// Service handles history operations.
type Service struct {
	repo   Repository
	logger *slog.Logger
	now    func() time.Time
}

// NewService creates a new history service.
func NewService(repo Repository, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Service{repo: repo, logger: logger, now: time.Now}
}

// WithClock replaces the clock used to stamp new entries.
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

// CreateRequest carries the fields posted by a tool. A nil field was absent
// from the payload; an empty string is accepted.
type CreateRequest struct {
	Kind    *string
	Title   *string
	Content *string
}

// Validate checks that every required field is present.
func (r CreateRequest) Validate() error {
	switch {
	case r.Kind == nil:
		return ErrMissingKind
	case r.Title == nil:
		return ErrMissingTitle
	case r.Content == nil:
		return ErrMissingContent
	}
	return nil
}

// Create stores a new entry stamped with the current time.
func (s *Service) Create(ctx context.Context, req CreateRequest) (*Entry, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	entry := &Entry{
		Kind:      *req.Kind,
		Title:     *req.Title,
		Content:   *req.Content,
		CreatedAt: s.now().UTC(),
	}
	if err := s.repo.Create(ctx, entry); err != nil {
		return nil, fmt.Errorf("creating history entry: %w", err)
	}

	s.logger.Debug("history entry created", "id", entry.ID, "kind", entry.Kind)
	return entry, nil
}

// List returns every entry, newest first. The result is never nil.
func (s *Service) List(ctx context.Context) ([]Entry, error) {
	entries, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing history: %w", err)
	}
	if entries == nil {
		entries = []Entry{}
	}
	return entries, nil
}

// Delete removes an entry. Deleting an id that does not exist succeeds.
func (s *Service) Delete(ctx context.Context, id int64) error {
	removed, err := s.repo.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("deleting history entry: %w", err)
	}
	s.logger.Debug("history entry deleted", "id", id, "removed", removed)
	return nil
}

// Clear removes every entry and reports how many were dropped.
func (s *Service) Clear(ctx context.Context) (int64, error) {
	n, err := s.repo.Clear(ctx)
	if err != nil {
		return 0, fmt.Errorf("clearing history: %w", err)
	}
	s.logger.Info("history cleared", "removed", n)
	return n, nil
}
