// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package movie

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/taibuivan/cinecast/internal/platform/database/schema"
	"github.com/taibuivan/cinecast/internal/platform/dberr"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// selectColumns is the column list every read scans with scanMovie.
var selectColumns = strings.Join(schema.Movie.Columns(), ", ")

func scanMovie(row pgx.Row) (*Movie, error) {
	m := &Movie{}
	if err := row.Scan(&m.ID, &m.Name, &m.Plot, &m.Genres, &m.CastsID); err != nil {
		return nil, err
	}
	m.Genres, m.CastsID = nonNil(m.Genres), nonNil(m.CastsID)
	return m, nil
}

func (repository *PostgresRepository) Add(ctx context.Context, m *Movie) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s)
		VALUES ($1, $2, $3, $4)
		RETURNING %s
	`,
		schema.Movie.Table, schema.Movie.Name, schema.Movie.Plot, schema.Movie.Genres, schema.Movie.CastsID,
		schema.Movie.ID,
	)

	err := repository.db.QueryRow(ctx, query, m.Name, m.Plot, nonNil(m.Genres), nonNil(m.CastsID)).Scan(&m.ID)
	return dberr.Wrap(err, "add_movie")
}

func (repository *PostgresRepository) Get(ctx context.Context, id int64) (*Movie, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1`,
		selectColumns, schema.Movie.Table, schema.Movie.ID,
	)

	m, err := scanMovie(repository.db.QueryRow(ctx, query, id))
	if err != nil {
		return nil, dberr.Wrap(err, "get_movie")
	}

	return m, nil
}

func (repository *PostgresRepository) List(ctx context.Context) ([]*Movie, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s ORDER BY %s`, selectColumns, schema.Movie.Table, schema.Movie.ID)
	return repository.list(ctx, "list_movies", query)
}

func (repository *PostgresRepository) ListByCast(ctx context.Context, castID int64) ([]*Movie, error) {
	// Containment (@>) rather than = ANY so the GIN index on casts_id is usable.
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s @> ARRAY[$1::bigint] ORDER BY %s`,
		selectColumns, schema.Movie.Table, schema.Movie.CastsID, schema.Movie.ID,
	)
	return repository.list(ctx, "list_movies_by_cast", query, castID)
}

func (repository *PostgresRepository) list(ctx context.Context, action, query string, args ...any) ([]*Movie, error) {
	rows, err := repository.db.Query(ctx, query, args...)
	if err != nil {
		return nil, dberr.Wrap(err, action)
	}
	defer rows.Close()

	movies := []*Movie{}
	for rows.Next() {
		m, err := scanMovie(rows)
		if err != nil {
			return nil, dberr.Wrap(err, "scan_movie")
		}
		movies = append(movies, m)
	}

	return movies, dberr.Wrap(rows.Err(), action)
}

func (repository *PostgresRepository) Update(ctx context.Context, m *Movie) error {
	query := fmt.Sprintf(`
		UPDATE %s
		SET %s = $2, %s = $3, %s = $4, %s = $5
		WHERE %s = $1
		RETURNING %s
	`,
		schema.Movie.Table, schema.Movie.Name, schema.Movie.Plot, schema.Movie.Genres, schema.Movie.CastsID,
		schema.Movie.ID,
		selectColumns,
	)

	updated, err := scanMovie(repository.db.QueryRow(ctx, query, m.ID, m.Name, m.Plot, nonNil(m.Genres), nonNil(m.CastsID)))
	if err != nil {
		return dberr.Wrap(err, "update_movie")
	}

	*m = *updated
	return nil
}

func (repository *PostgresRepository) Delete(ctx context.Context, id int64) (int64, error) {
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`, schema.Movie.Table, schema.Movie.ID)

	cmd, err := repository.db.Exec(ctx, query, id)
	if err != nil {
		return 0, dberr.Wrap(err, "delete_movie")
	}

	return cmd.RowsAffected(), nil
}

// nonNil maps a nil slice to an empty one; a nil slice would be sent as NULL.
func nonNil[T any](values []T) []T {
	if values == nil {
		return []T{}
	}
	return values
}
