// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package movie

import (
	"context"

	"github.com/taibuivan/cinecast/internal/castclient"
)

// Repository defines the data access contract for movies.
//
// Get returns dberr.ErrNotFound when the id is absent. Delete of an absent id
// is not an error and reports zero affected rows.
type Repository interface {
	Add(ctx context.Context, m *Movie) error
	Get(ctx context.Context, id int64) (*Movie, error)
	List(ctx context.Context) ([]*Movie, error)
	Update(ctx context.Context, m *Movie) error
	Delete(ctx context.Context, id int64) (int64, error)

	// ListByCast returns the movies whose casts_id contains castID.
	ListByCast(ctx context.Context, castID int64) ([]*Movie, error)
}

// CastChecker answers whether a cast currently exists in the cast service.
type CastChecker interface {
	Check(ctx context.Context, id int64) castclient.Outcome
}
