package mocks

import (
	"context"

	"github.com/rpggio/toolbox/internal/domain/history"
	"github.com/rpggio/toolbox/internal/domain/note"
	"github.com/stretchr/testify/mock"
)

// HistoryRepository is a mock for history.Repository.
type HistoryRepository struct {
	mock.Mock
}

func (m *HistoryRepository) Create(ctx context.Context, entry *history.Entry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *HistoryRepository) List(ctx context.Context) ([]history.Entry, error) {
	args := m.Called(ctx)
	if list, ok := args.Get(0).([]history.Entry); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *HistoryRepository) Delete(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *HistoryRepository) Clear(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

// NoteRepository is a mock for note.Repository.
type NoteRepository struct {
	mock.Mock
}

func (m *NoteRepository) Create(ctx context.Context, n *note.Note) error {
	args := m.Called(ctx, n)
	return args.Error(0)
}

func (m *NoteRepository) List(ctx context.Context) ([]note.Note, error) {
	args := m.Called(ctx)
	if list, ok := args.Get(0).([]note.Note); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *NoteRepository) Delete(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}
