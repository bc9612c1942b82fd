// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package item

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/taibuivan/modhub/internal/platform/database/schema"
	"github.com/taibuivan/modhub/internal/platform/dberr"
)

// PostgresRepository implements [ItemRepository] on core.item.
type PostgresRepository struct {
	db *pgxpool.Pool
}

// NewPostgresRepository constructs a [PostgresRepository].
func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// selectItem builds the shared projection filtered by one column.
func selectItem(column string) string {
	return fmt.Sprintf(`
		SELECT %s, %s, %s, %s, %s, %s
		FROM %s
		WHERE %s = $1 AND %s IS NULL
	`,
		schema.CoreItem.ID, schema.CoreItem.Slug, schema.CoreItem.Type,
		schema.CoreItem.Status, schema.CoreItem.Title, schema.CoreItem.UpdatedAt,
		schema.CoreItem.Table, column, schema.CoreItem.DeletedAt,
	)
}

func (repository *PostgresRepository) FindByID(context context.Context, id int64) (*Item, error) {
	return repository.findOne(context, selectItem(schema.CoreItem.ID), "find_item_by_id", id)
}

func (repository *PostgresRepository) FindBySlug(context context.Context, slug string) (*Item, error) {
	return repository.findOne(context, selectItem(schema.CoreItem.Slug), "find_item_by_slug", slug)
}

func (repository *PostgresRepository) findOne(context context.Context, query, action string, arg any) (*Item, error) {
	found := &Item{}
	err := repository.db.QueryRow(context, query, arg).Scan(
		&found.ID, &found.Slug, &found.Type, &found.Status, &found.Title, &found.UpdatedAt,
	)
	if err != nil {
		return nil, dberr.Wrap(err, "Item", action)
	}
	return found, nil
}
