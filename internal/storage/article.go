package storage

import (
	"context"
	"database/sql"

	sq "github.com/Masterminds/squirrel"
)

const articleArtistsAgg = `COALESCE(json_agg(json_build_object('id', ar.id, 'name', ar.name)) FILTER (WHERE ar.id IS NOT NULL), '[]')`

func articleSelect() sq.SelectBuilder {
	return psql.Select(
		"a.id", "a.slug", "a.title", "a.category", "a.image_url", "a.excerpt",
		"a.author_id", "au.name AS author_name", "a.publish_date", "a.content",
		"a.featured", articleArtistsAgg+" AS artists", "a.created_at", "a.updated_at",
	).
		From("articles a").
		LeftJoin("authors au ON au.id = a.author_id").
		LeftJoin("article_artists aa ON aa.article_id = a.id").
		LeftJoin("artists ar ON ar.id = aa.artist_id").
		GroupBy("a.id", "au.name")
}

func scanArticleRow(row sq.RowScanner) (ArticleRow, error) {
	var a ArticleRow
	err := row.Scan(
		&a.ID, &a.Slug, &a.Title, &a.Category, &a.ImageURL, &a.Excerpt,
		&a.AuthorID, &a.AuthorName, &a.PublishDate, &a.Content,
		&a.Featured, &a.Artists, &a.CreatedAt, &a.UpdatedAt,
	)
	return a, err
}

func articleFilters(builder sq.SelectBuilder, category string, featured *bool, startDate, endDate sql.NullTime, lexems []string) sq.SelectBuilder {
	if category != "" {
		builder = builder.Where(sq.Eq{"a.category": category})
	}
	if featured != nil {
		builder = builder.Where(sq.Eq{"a.featured": *featured})
	}
	if startDate.Valid {
		builder = builder.Where(sq.GtOrEq{"a.publish_date": startDate.Time})
	}
	if endDate.Valid {
		builder = builder.Where(sq.LtOrEq{"a.publish_date": endDate.Time})
	}
	for _, lexem := range lexems {
		if lexem == "" {
			continue
		}
		pattern := "%" + lexem + "%"
		builder = builder.Where(sq.Or{
			sq.ILike{"a.title": pattern},
			sq.ILike{"a.excerpt": pattern},
			sq.ILike{"a.content": pattern},
		})
	}
	return builder
}

type ListArticlesParams struct {
	Category  string
	Featured  *bool
	StartDate sql.NullTime
	EndDate   sql.NullTime
	Lexems    []string
	Sorting   string
	Page      int64
	PageSize  int64
}

func (q *Queries) ListArticles(ctx context.Context, params ListArticlesParams) ([]ArticleRow, error) {
	order := "a.publish_date DESC, a.created_at DESC"
	if params.Sorting == "oldest" {
		order = "a.publish_date ASC, a.created_at ASC"
	}

	builder := articleFilters(articleSelect(), params.Category, params.Featured, params.StartDate, params.EndDate, params.Lexems).
		OrderBy(order).
		Offset(uint64(params.Page)).
		Limit(uint64(params.PageSize))

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := q.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []ArticleRow
	for rows.Next() {
		article, err := scanArticleRow(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, article)
	}
	return result, rows.Err()
}

type CountArticlesParams struct {
	Category  string
	Featured  *bool
	StartDate sql.NullTime
	EndDate   sql.NullTime
	Lexems    []string
}

func (q *Queries) CountArticles(ctx context.Context, params CountArticlesParams) (int64, error) {
	builder := articleFilters(psql.Select("count(*)").From("articles a"),
		params.Category, params.Featured, params.StartDate, params.EndDate, params.Lexems)

	query, args, err := builder.ToSql()
	if err != nil {
		return -1, err
	}

	var count int64
	if err := q.db.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return -1, err
	}
	return count, nil
}

func (q *Queries) GetArticleByID(ctx context.Context, id int64) (ArticleRow, error) {
	query, args, err := articleSelect().Where(sq.Eq{"a.id": id}).ToSql()
	if err != nil {
		return ArticleRow{}, err
	}
	return scanArticleRow(q.db.QueryRowContext(ctx, query, args...))
}

func (q *Queries) GetArticleBySlug(ctx context.Context, slug string) (ArticleRow, error) {
	query, args, err := articleSelect().Where(sq.Eq{"a.slug": slug}).ToSql()
	if err != nil {
		return ArticleRow{}, err
	}
	return scanArticleRow(q.db.QueryRowContext(ctx, query, args...))
}

func (q *Queries) GetFeaturedArticle(ctx context.Context) (ArticleRow, error) {
	query, args, err := articleSelect().Where(sq.Eq{"a.featured": true}).ToSql()
	if err != nil {
		return ArticleRow{}, err
	}
	return scanArticleRow(q.db.QueryRowContext(ctx, query, args...))
}

const newArticle = `INSERT INTO articles (slug, title, category, image_url, excerpt, author_id, publish_date, content)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
RETURNING id`

type NewArticleParams struct {
	Slug        string
	Title       string
	Category    string
	ImageURL    sql.NullString
	Excerpt     string
	AuthorID    sql.NullInt64
	PublishDate sql.NullTime
	Content     string
}

func (q *Queries) NewArticle(ctx context.Context, params NewArticleParams) (int64, error) {
	var id int64
	err := q.db.QueryRowContext(ctx, newArticle,
		params.Slug, params.Title, params.Category, params.ImageURL,
		params.Excerpt, params.AuthorID, params.PublishDate, params.Content,
	).Scan(&id)
	return id, err
}

const updateArticle = `UPDATE articles
SET title = $2, category = $3, image_url = $4, excerpt = $5, author_id = $6,
    publish_date = $7, content = $8, updated_at = now()
WHERE id = $1`

type UpdateArticleParams struct {
	ID          int64
	Title       string
	Category    string
	ImageURL    sql.NullString
	Excerpt     string
	AuthorID    sql.NullInt64
	PublishDate sql.NullTime
	Content     string
}

func (q *Queries) UpdateArticle(ctx context.Context, params UpdateArticleParams) (int64, error) {
	result, err := q.db.ExecContext(ctx, updateArticle,
		params.ID, params.Title, params.Category, params.ImageURL,
		params.Excerpt, params.AuthorID, params.PublishDate, params.Content,
	)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

const deleteArticle = `DELETE FROM articles WHERE id = $1`

func (q *Queries) DeleteArticle(ctx context.Context, id int64) (int64, error) {
	result, err := q.db.ExecContext(ctx, deleteArticle, id)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

const attachArticleArtist = `INSERT INTO article_artists (article_id, artist_id)
VALUES ($1, $2)
ON CONFLICT DO NOTHING`

func (q *Queries) AttachArticleArtist(ctx context.Context, articleID, artistID int64) error {
	_, err := q.db.ExecContext(ctx, attachArticleArtist, articleID, artistID)
	return err
}

const clearArticleArtists = `DELETE FROM article_artists WHERE article_id = $1`

func (q *Queries) ClearArticleArtists(ctx context.Context, articleID int64) error {
	_, err := q.db.ExecContext(ctx, clearArticleArtists, articleID)
	return err
}

const clearFeaturedExcept = `UPDATE articles SET featured = false, updated_at = now() WHERE featured AND id <> $1`

func (q *Queries) ClearFeaturedExcept(ctx context.Context, id int64) error {
	_, err := q.db.ExecContext(ctx, clearFeaturedExcept, id)
	return err
}

const setArticleFeatured = `UPDATE articles SET featured = true, updated_at = now() WHERE id = $1`

func (q *Queries) SetArticleFeatured(ctx context.Context, id int64) (int64, error) {
	result, err := q.db.ExecContext(ctx, setArticleFeatured, id)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}
