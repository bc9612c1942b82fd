// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package comment

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/taibuivan/modhub/internal/platform/database/schema"
	"github.com/taibuivan/modhub/internal/platform/dberr"
	"github.com/taibuivan/modhub/internal/platform/postgres"
)

const resourceComment = "Comment"

// PostgresRepository implements [Repository] on the social schema.
type PostgresRepository struct {
	db       *pgxpool.Pool
	maxDepth int
}

// NewPostgresRepository constructs a [PostgresRepository]. maxDepth bounds the
// parent walk of [PostgresRepository.ThreadRootOf].
func NewPostgresRepository(db *pgxpool.Pool, maxDepth int) *PostgresRepository {
	if maxDepth <= 0 {
		maxDepth = DefaultMaxDepth
	}
	return &PostgresRepository{db: db, maxDepth: maxDepth}
}

// # Comments

var commentColumns = fmt.Sprintf("%s, %s, %s, %s, %s, %s, %s, %s",
	schema.SocialComment.ID, schema.SocialComment.ItemID, schema.SocialComment.ParentID,
	schema.SocialComment.UserID, schema.SocialComment.AuthorName, schema.SocialComment.Body,
	schema.SocialComment.LikeCount, schema.SocialComment.CreatedAt,
)

func scanComment(row pgx.Row, c *Comment) error {
	return row.Scan(&c.ID, &c.ItemID, &c.ParentID, &c.UserID, &c.AuthorName, &c.Body, &c.LikeCount, &c.CreatedAt)
}

func (repository *PostgresRepository) ListApproved(context context.Context, itemID int64) ([]Comment, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM %s
		WHERE %s = $1 AND %s AND NOT %s
		ORDER BY %s ASC, %s ASC
	`,
		commentColumns, schema.SocialComment.Table,
		schema.SocialComment.ItemID, schema.SocialComment.IsApproved, schema.SocialComment.IsDeleted,
		schema.SocialComment.CreatedAt, schema.SocialComment.ID,
	)

	rows, err := repository.db.Query(context, query, itemID)
	if err != nil {
		return nil, dberr.Wrap(err, resourceComment, "list_approved_comments")
	}
	defer rows.Close()

	var comments []Comment
	for rows.Next() {
		var c Comment
		if err := scanComment(rows, &c); err != nil {
			return nil, dberr.Wrap(err, resourceComment, "scan_comment")
		}
		comments = append(comments, c)
	}

	return comments, dberr.Wrap(rows.Err(), resourceComment, "iterate_comments")
}

func (repository *PostgresRepository) FindByID(context context.Context, id int64) (*Comment, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM %s
		WHERE %s = $1 AND %s AND NOT %s
	`,
		commentColumns, schema.SocialComment.Table,
		schema.SocialComment.ID, schema.SocialComment.IsApproved, schema.SocialComment.IsDeleted,
	)

	c := &Comment{}
	if err := scanComment(repository.db.QueryRow(context, query, id), c); err != nil {
		return nil, dberr.Wrap(err, resourceComment, "find_comment")
	}
	return c, nil
}

func (repository *PostgresRepository) ThreadRootOf(context context.Context, commentID int64) (int64, error) {
	query := fmt.Sprintf(`
		WITH RECURSIVE chain AS (
			SELECT %[1]s, %[2]s, 0 AS depth
			FROM %[3]s
			WHERE %[1]s = $1
			UNION ALL
			SELECT parent.%[1]s, parent.%[2]s, chain.depth + 1
			FROM %[3]s parent
			JOIN chain ON parent.%[1]s = chain.%[2]s
			WHERE chain.%[2]s <> 0 AND chain.depth < $2
		)
		SELECT %[1]s FROM chain WHERE %[2]s = 0 LIMIT 1
	`,
		schema.SocialComment.ID, schema.SocialComment.ParentID, schema.SocialComment.Table,
	)

	var rootID int64
	err := repository.db.QueryRow(context, query, commentID, repository.maxDepth).Scan(&rootID)
	if err != nil {
		return 0, dberr.Wrap(err, resourceComment, "thread_root_of")
	}
	return rootID, nil
}

// # Likes

func (repository *PostgresRepository) Like(context context.Context, commentID int64, userID string) (bool, error) {
	insert := fmt.Sprintf(`INSERT INTO %s (%s, %s) VALUES ($1, $2) ON CONFLICT DO NOTHING`,
		schema.SocialCommentLike.Table, schema.SocialCommentLike.CommentID, schema.SocialCommentLike.UserID,
	)
	bump := fmt.Sprintf(`UPDATE %s SET %s = %s + 1 WHERE %s = $1`,
		schema.SocialComment.Table, schema.SocialComment.LikeCount, schema.SocialComment.LikeCount, schema.SocialComment.ID,
	)

	return repository.toggleLike(context, commentID, userID, insert, bump, "like_comment")
}

func (repository *PostgresRepository) Unlike(context context.Context, commentID int64, userID string) (bool, error) {
	remove := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1 AND %s = $2`,
		schema.SocialCommentLike.Table, schema.SocialCommentLike.CommentID, schema.SocialCommentLike.UserID,
	)
	drop := fmt.Sprintf(`UPDATE %s SET %s = GREATEST(%s - 1, 0) WHERE %s = $1`,
		schema.SocialComment.Table, schema.SocialComment.LikeCount, schema.SocialComment.LikeCount, schema.SocialComment.ID,
	)

	return repository.toggleLike(context, commentID, userID, remove, drop, "unlike_comment")
}

// toggleLike applies a like row change and keeps the denormalised counter in
// step within one transaction. The counter only moves when a row changed.
func (repository *PostgresRepository) toggleLike(context context.Context, commentID int64, userID, rowSQL, counterSQL, action string) (bool, error) {
	var changed bool

	err := postgres.WithTx(context, repository.db, func(tx pgx.Tx) error {
		tag, err := tx.Exec(context, rowSQL, commentID, userID)
		if err != nil {
			return err
		}
		if tag.RowsAffected() == 0 {
			return nil
		}

		changed = true
		_, err = tx.Exec(context, counterSQL, commentID)
		return err
	})
	if err != nil {
		return false, dberr.Wrap(err, resourceComment, action)
	}

	return changed, nil
}

// # Pins

func (repository *PostgresRepository) GetPin(context context.Context, itemID int64) (int64, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1`,
		schema.SocialCommentPin.CommentID, schema.SocialCommentPin.Table, schema.SocialCommentPin.ItemID,
	)

	var commentID int64
	err := repository.db.QueryRow(context, query, itemID).Scan(&commentID)
	if errors.Is(err, pgx.ErrNoRows) {
		return 0, nil
	}
	if err != nil {
		return 0, dberr.Wrap(err, "Pin", "get_pin")
	}
	return commentID, nil
}

func (repository *PostgresRepository) SetPin(context context.Context, itemID, commentID int64, pinnedBy string) error {
	query := fmt.Sprintf(`
		INSERT INTO %[1]s (%[2]s, %[3]s, %[4]s, %[5]s)
		VALUES ($1, $2, $3, NOW())
		ON CONFLICT (%[2]s) DO UPDATE
		SET %[3]s = EXCLUDED.%[3]s, %[4]s = EXCLUDED.%[4]s, %[5]s = NOW()
	`,
		schema.SocialCommentPin.Table, schema.SocialCommentPin.ItemID, schema.SocialCommentPin.CommentID,
		schema.SocialCommentPin.PinnedBy, schema.SocialCommentPin.PinnedAt,
	)

	_, err := repository.db.Exec(context, query, itemID, commentID, pinnedBy)
	return dberr.Wrap(err, "Pin", "set_pin")
}

func (repository *PostgresRepository) ClearPin(context context.Context, itemID int64) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`,
		schema.SocialCommentPin.Table, schema.SocialCommentPin.ItemID,
	)

	_, err := repository.db.Exec(context, query, itemID)
	return dberr.Wrap(err, "Pin", "clear_pin")
}
