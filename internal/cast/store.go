// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package cast

import "context"

// Repository defines the data access contract for casts.
//
// Get returns dberr.ErrNotFound when the id is absent. Delete of an absent id
// is not an error and reports zero affected rows.
type Repository interface {
	Add(ctx context.Context, c *Cast) error
	Get(ctx context.Context, id int64) (*Cast, error)
	List(ctx context.Context) ([]*Cast, error)
	Update(ctx context.Context, c *Cast) error
	Delete(ctx context.Context, id int64) (int64, error)
}

// EventPublisher announces cast lifecycle events to other services.
type EventPublisher interface {
	CastDeleted(ctx context.Context, id int64) error
}
