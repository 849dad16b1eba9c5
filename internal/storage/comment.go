package storage

import (
	"context"
)

const listArticleComments = `SELECT id, article_id, author_name, content, approved, created_at, updated_at
FROM comments
WHERE article_id = $1 AND approved
ORDER BY created_at ASC`

func (q *Queries) ListArticleComments(ctx context.Context, articleID int64) ([]CommentRow, error) {
	rows, err := q.db.QueryContext(ctx, listArticleComments, articleID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []CommentRow
	for rows.Next() {
		var c CommentRow
		if err := rows.Scan(&c.ID, &c.ArticleID, &c.AuthorName, &c.Content, &c.Approved, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, err
		}
		result = append(result, c)
	}
	return result, rows.Err()
}

const newComment = `INSERT INTO comments (article_id, author_name, content)
VALUES ($1, $2, $3)
RETURNING id, article_id, author_name, content, approved, created_at, updated_at`

type NewCommentParams struct {
	ArticleID  int64
	AuthorName string
	Content    string
}

func (q *Queries) NewComment(ctx context.Context, params NewCommentParams) (CommentRow, error) {
	var c CommentRow
	err := q.db.QueryRowContext(ctx, newComment,
		params.ArticleID, params.AuthorName, params.Content,
	).Scan(&c.ID, &c.ArticleID, &c.AuthorName, &c.Content, &c.Approved, &c.CreatedAt, &c.UpdatedAt)
	return c, err
}
