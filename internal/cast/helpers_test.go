// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package cast_test

import (
	"context"
	"io"
	"log/slog"
	"sort"
	"sync"

	"github.com/taibuivan/cinecast/internal/cast"
	"github.com/taibuivan/cinecast/internal/platform/dberr"
)

// memoryRepository is an in-memory cast.Repository.
type memoryRepository struct {
	mu     sync.Mutex
	nextID int64
	rows   map[int64]cast.Cast
	err    error
}

func newMemoryRepository() *memoryRepository {
	return &memoryRepository{rows: map[int64]cast.Cast{}}
}

func (repo *memoryRepository) Add(_ context.Context, c *cast.Cast) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()
	if repo.err != nil {
		return repo.err
	}

	repo.nextID++
	c.ID = repo.nextID
	repo.rows[c.ID] = *c
	return nil
}

func (repo *memoryRepository) Get(_ context.Context, id int64) (*cast.Cast, error) {
	repo.mu.Lock()
	defer repo.mu.Unlock()
	if repo.err != nil {
		return nil, repo.err
	}

	row, ok := repo.rows[id]
	if !ok {
		return nil, dberr.ErrNotFound
	}
	return &row, nil
}

func (repo *memoryRepository) List(_ context.Context) ([]*cast.Cast, error) {
	repo.mu.Lock()
	defer repo.mu.Unlock()
	if repo.err != nil {
		return nil, repo.err
	}

	casts := []*cast.Cast{}
	for _, row := range repo.rows {
		row := row
		casts = append(casts, &row)
	}
	sort.Slice(casts, func(i, j int) bool { return casts[i].ID < casts[j].ID })
	return casts, nil
}

func (repo *memoryRepository) Update(_ context.Context, c *cast.Cast) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()
	if repo.err != nil {
		return repo.err
	}

	if _, ok := repo.rows[c.ID]; !ok {
		return dberr.ErrNotFound
	}
	repo.rows[c.ID] = *c
	return nil
}

func (repo *memoryRepository) Delete(_ context.Context, id int64) (int64, error) {
	repo.mu.Lock()
	defer repo.mu.Unlock()
	if repo.err != nil {
		return 0, repo.err
	}

	if _, ok := repo.rows[id]; !ok {
		return 0, nil
	}
	delete(repo.rows, id)
	return 1, nil
}

// recordingPublisher remembers every published deletion.
type recordingPublisher struct {
	mu      sync.Mutex
	deleted []int64
	err     error
}

func (publisher *recordingPublisher) CastDeleted(_ context.Context, id int64) error {
	publisher.mu.Lock()
	defer publisher.mu.Unlock()
	publisher.deleted = append(publisher.deleted, id)
	return publisher.err
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
