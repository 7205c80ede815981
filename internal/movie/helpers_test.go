// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package movie_test

import (
	"context"
	"io"
	"log/slog"
	"slices"
	"sort"
	"strconv"
	"sync"

	"github.com/taibuivan/cinecast/internal/castclient"
	"github.com/taibuivan/cinecast/internal/movie"
	"github.com/taibuivan/cinecast/internal/platform/dberr"
)

// memoryRepository is an in-memory movie.Repository.
type memoryRepository struct {
	mu     sync.Mutex
	nextID int64
	rows   map[int64]movie.Movie
	err    error
}

func newMemoryRepository() *memoryRepository {
	return &memoryRepository{rows: map[int64]movie.Movie{}}
}

func clone(m movie.Movie) movie.Movie {
	m.Genres = slices.Clone(m.Genres)
	m.CastsID = slices.Clone(m.CastsID)
	return m
}

func (repo *memoryRepository) Add(_ context.Context, m *movie.Movie) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()
	if repo.err != nil {
		return repo.err
	}

	repo.nextID++
	m.ID = repo.nextID
	repo.rows[m.ID] = clone(*m)
	return nil
}

func (repo *memoryRepository) Get(_ context.Context, id int64) (*movie.Movie, error) {
	repo.mu.Lock()
	defer repo.mu.Unlock()
	if repo.err != nil {
		return nil, repo.err
	}

	row, ok := repo.rows[id]
	if !ok {
		return nil, dberr.ErrNotFound
	}
	row = clone(row)
	return &row, nil
}

func (repo *memoryRepository) List(ctx context.Context) ([]*movie.Movie, error) {
	return repo.filter(func(movie.Movie) bool { return true })
}

func (repo *memoryRepository) ListByCast(_ context.Context, castID int64) ([]*movie.Movie, error) {
	return repo.filter(func(m movie.Movie) bool { return slices.Contains(m.CastsID, castID) })
}

func (repo *memoryRepository) filter(keep func(movie.Movie) bool) ([]*movie.Movie, error) {
	repo.mu.Lock()
	defer repo.mu.Unlock()
	if repo.err != nil {
		return nil, repo.err
	}

	movies := []*movie.Movie{}
	for _, row := range repo.rows {
		if keep(row) {
			row := clone(row)
			movies = append(movies, &row)
		}
	}
	sort.Slice(movies, func(i, j int) bool { return movies[i].ID < movies[j].ID })
	return movies, nil
}

func (repo *memoryRepository) Update(_ context.Context, m *movie.Movie) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()
	if repo.err != nil {
		return repo.err
	}

	if _, ok := repo.rows[m.ID]; !ok {
		return dberr.ErrNotFound
	}
	repo.rows[m.ID] = clone(*m)
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

// stubChecker answers from a fixed table; unknown ids are denied.
type stubChecker struct {
	mu       sync.Mutex
	outcomes map[int64]castclient.Outcome
	calls    []int64
}

func newStubChecker(existing ...int64) *stubChecker {
	checker := &stubChecker{outcomes: map[int64]castclient.Outcome{}}
	for _, id := range existing {
		checker.outcomes[id] = castclient.Outcome{Verdict: castclient.Confirmed, StatusCode: 200}
	}
	return checker
}

func (checker *stubChecker) Check(_ context.Context, id int64) castclient.Outcome {
	checker.mu.Lock()
	defer checker.mu.Unlock()
	checker.calls = append(checker.calls, id)

	if outcome, ok := checker.outcomes[id]; ok {
		return outcome
	}
	return castclient.Outcome{Verdict: castclient.Denied, StatusCode: 404}
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func itoa(id int64) string {
	return strconv.FormatInt(id, 10)
}
