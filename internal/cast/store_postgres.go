// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package cast

import (
	"context"
	"fmt"
	"strings"

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

func (repository *PostgresRepository) Add(ctx context.Context, c *Cast) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s)
		VALUES ($1, $2)
		RETURNING %s
	`,
		schema.Cast.Table, schema.Cast.Name, schema.Cast.Nationality,
		schema.Cast.ID,
	)

	err := repository.db.QueryRow(ctx, query, c.Name, c.Nationality).Scan(&c.ID)
	return dberr.Wrap(err, "add_cast")
}

func (repository *PostgresRepository) Get(ctx context.Context, id int64) (*Cast, error) {
	query := fmt.Sprintf(`
		SELECT %s, %s, %s
		FROM %s
		WHERE %s = $1
	`,
		schema.Cast.ID, schema.Cast.Name, schema.Cast.Nationality,
		schema.Cast.Table, schema.Cast.ID,
	)

	c := &Cast{}
	if err := repository.db.QueryRow(ctx, query, id).Scan(&c.ID, &c.Name, &c.Nationality); err != nil {
		return nil, dberr.Wrap(err, "get_cast")
	}

	return c, nil
}

func (repository *PostgresRepository) List(ctx context.Context) ([]*Cast, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s ORDER BY %s`,
		strings.Join(schema.Cast.Columns(), ", "), schema.Cast.Table, schema.Cast.ID,
	)

	rows, err := repository.db.Query(ctx, query)
	if err != nil {
		return nil, dberr.Wrap(err, "list_casts")
	}
	defer rows.Close()

	casts := []*Cast{}
	for rows.Next() {
		c := &Cast{}
		if err := rows.Scan(&c.ID, &c.Name, &c.Nationality); err != nil {
			return nil, dberr.Wrap(err, "scan_cast")
		}
		casts = append(casts, c)
	}

	return casts, dberr.Wrap(rows.Err(), "list_casts")
}

func (repository *PostgresRepository) Update(ctx context.Context, c *Cast) error {
	query := fmt.Sprintf(`
		UPDATE %s
		SET %s = $2, %s = $3
		WHERE %s = $1
		RETURNING %s, %s, %s
	`,
		schema.Cast.Table, schema.Cast.Name, schema.Cast.Nationality,
		schema.Cast.ID,
		schema.Cast.ID, schema.Cast.Name, schema.Cast.Nationality,
	)

	err := repository.db.QueryRow(ctx, query, c.ID, c.Name, c.Nationality).Scan(&c.ID, &c.Name, &c.Nationality)
	return dberr.Wrap(err, "update_cast")
}

func (repository *PostgresRepository) Delete(ctx context.Context, id int64) (int64, error) {
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`, schema.Cast.Table, schema.Cast.ID)

	cmd, err := repository.db.Exec(ctx, query, id)
	if err != nil {
		return 0, dberr.Wrap(err, "delete_cast")
	}

	return cmd.RowsAffected(), nil
}
