package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/lib/pq"
	nats "github.com/nats-io/nats.go"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/cgRGM/deadpartymedia/internal/accessor"
	"github.com/cgRGM/deadpartymedia/internal/model"
	"github.com/cgRGM/deadpartymedia/internal/storage"
	"github.com/cgRGM/deadpartymedia/pkg/sqlutils"
	"github.com/cgRGM/deadpartymedia/pkg/txutils"
)

type ArticleService struct {
	db      *sql.DB
	queries *storage.Queries
	kv      nats.KeyValue
	log     *zap.SugaredLogger
}

var (
	ErrArticleNotFound     = errors.New("article not found")
	ErrArticlesNotFound    = errors.New("articles not found")
	ErrArticlesCount       = errors.New("unable get articles count")
	ErrUnableCreateArticle = errors.New("unable create the article")
	ErrNoFeaturedArticle   = errors.New("no featured article found")
	ErrFeaturedConflict    = errors.New("featured article update conflict")
)

type ArticleSorting string

const (
	ARTICLE_SORTING_NEWEST ArticleSorting = "newest"
	ARTICLE_SORTING_OLDEST ArticleSorting = "oldest"
	DEFAULT_PAGE           int            = 1
	DEFAULT_PAGE_SIZE      int            = 7
)

type GetArticlesParams struct {
	Category   string
	Featured   *bool
	Sorting    ArticleSorting
	StartDate  time.Time
	EndDate    time.Time
	TextLexems []string
	Page       int
	PageSize   int
}

func (s *ArticleService) GetArticles(ctx context.Context, params GetArticlesParams) ([]model.Article, error) {
	articles, err := s.queries.ListArticles(ctx, storage.ListArticlesParams{
		Category:  params.Category,
		Featured:  params.Featured,
		StartDate: sqlutils.GetNullableSqlTime(params.StartDate),
		EndDate:   sqlutils.GetNullableSqlTime(params.EndDate),
		Lexems:    params.TextLexems,
		Sorting:   string(params.Sorting),
		Page:      int64((params.Page - 1) * params.PageSize),
		PageSize:  int64(params.PageSize),
	})
	if err != nil {
		return nil, err
	}
	if len(articles) == 0 {
		return nil, ErrArticlesNotFound
	}

	return accessor.ArticlesFromArticleRows(articles)
}

func (s *ArticleService) GetArticleByID(ctx context.Context, id int64) (model.Article, error) {
	article, err := s.queries.GetArticleByID(ctx, id)
	if errors.Is(err, sql.ErrNoRows) {
		return model.NilArticle, ErrArticleNotFound
	}
	if err != nil {
		return model.NilArticle, err
	}

	return accessor.ArticleFromArticleRow(article)
}

func (s *ArticleService) GetArticleBySlug(ctx context.Context, slug string) (model.Article, error) {
	article, err := s.queries.GetArticleBySlug(ctx, slug)
	if errors.Is(err, sql.ErrNoRows) {
		return model.NilArticle, ErrArticleNotFound
	}
	if err != nil {
		return model.NilArticle, err
	}
	return accessor.ArticleFromArticleRow(article)
}

func (s *ArticleService) GetFeaturedArticle(ctx context.Context) (model.Article, error) {
	article, err := s.queries.GetFeaturedArticle(ctx)
	if errors.Is(err, sql.ErrNoRows) {
		return model.NilArticle, ErrNoFeaturedArticle
	}
	if err != nil {
		return model.NilArticle, err
	}

	return accessor.ArticleFromArticleRow(article)
}

type NewArticleParams struct {
	Slug        string
	Title       string
	Category    string
	ImageURL    string
	Excerpt     string
	AuthorID    int64
	PublishDate time.Time
	Content     string
	ArtistIDs   []int64
}

func (s *ArticleService) NewArticle(ctx context.Context, params NewArticleParams) (id int64, err error) {
	slug := params.Slug
	if slug == "" {
		slug = Slugify(params.Title)
	}

	err = txutils.WithTransaction(ctx, s.db, func(queries *storage.Queries) error {
		articleID, err := queries.NewArticle(ctx, storage.NewArticleParams{
			Slug:        slug,
			Title:       params.Title,
			Category:    params.Category,
			ImageURL:    sqlutils.GetNullableSqlString(params.ImageURL),
			Excerpt:     params.Excerpt,
			AuthorID:    sqlutils.GetNullableSqlInt64(params.AuthorID),
			PublishDate: sqlutils.GetNullableSqlTime(params.PublishDate),
			Content:     params.Content,
		})
		if err != nil {
			s.log.Errorw("unable create the article", "slug", slug, "error", err)
			return ErrUnableCreateArticle
		}

		for _, artistID := range params.ArtistIDs {
			if err = queries.AttachArticleArtist(ctx, articleID, artistID); err != nil {
				s.log.Errorw("unable attach the article artist", "article_id", articleID, "artist_id", artistID, "error", err)
				return ErrUnableCreateArticle
			}
		}

		id = articleID
		return nil
	})
	return id, err
}

type UpdateArticleParams struct {
	ID          int64
	Title       string
	Category    string
	ImageURL    string
	Excerpt     string
	AuthorID    int64
	PublishDate time.Time
	Content     string
	ArtistIDs   []int64
}

func (s *ArticleService) UpdateArticle(ctx context.Context, params UpdateArticleParams) error {
	return txutils.WithTransaction(ctx, s.db, func(queries *storage.Queries) error {
		rows, err := queries.UpdateArticle(ctx, storage.UpdateArticleParams{
			ID:          params.ID,
			Title:       params.Title,
			Category:    params.Category,
			ImageURL:    sqlutils.GetNullableSqlString(params.ImageURL),
			Excerpt:     params.Excerpt,
			AuthorID:    sqlutils.GetNullableSqlInt64(params.AuthorID),
			PublishDate: sqlutils.GetNullableSqlTime(params.PublishDate),
			Content:     params.Content,
		})
		if err != nil {
			return err
		}
		if rows == 0 {
			return ErrArticleNotFound
		}

		if err = queries.ClearArticleArtists(ctx, params.ID); err != nil {
			return err
		}
		for _, artistID := range params.ArtistIDs {
			if err = queries.AttachArticleArtist(ctx, params.ID, artistID); err != nil {
				return err
			}
		}
		return nil
	})
}

func (s *ArticleService) DeleteArticle(ctx context.Context, id int64) error {
	rows, err := s.queries.DeleteArticle(ctx, id)
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrArticleNotFound
	}
	return nil
}

// SetFeatured flips the single featured flag to the target article. The
// clear and the set commit in one transaction so a reader can never observe
// zero or two featured articles between them.
func (s *ArticleService) SetFeatured(ctx context.Context, id int64) error {
	err := txutils.WithTransaction(ctx, s.db, func(queries *storage.Queries) error {
		if err := queries.ClearFeaturedExcept(ctx, id); err != nil {
			return err
		}

		rows, err := queries.SetArticleFeatured(ctx, id)
		if err != nil {
			return err
		}
		if rows == 0 {
			return ErrArticleNotFound
		}
		return nil
	})

	switch {
	case err == nil:
		return nil
	case errors.Is(err, ErrArticleNotFound):
		return ErrArticleNotFound
	case isTxConflict(err):
		return errors.Join(ErrFeaturedConflict, err)
	default:
		return err
	}
}

// isTxConflict reports whether the transaction lost to a concurrent one and
// is worth retrying: serialization failure, deadlock, or a race on the
// partial unique featured index.
func isTxConflict(err error) bool {
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) {
		return false
	}
	switch pqErr.Code {
	case "40001", "40P01":
		return true
	case "23505":
		return pqErr.Constraint == "articles_single_featured"
	}
	return false
}

type GetArticlesCountParams struct {
	Category   string
	Featured   *bool
	StartDate  time.Time
	EndDate    time.Time
	TextLexems []string
}

func (s *ArticleService) GetArticlesCount(ctx context.Context, cacheKey string, params GetArticlesCountParams) (int, error) {
	val, err := s.kv.Get(cacheKey)
	if err == nil {
		count, err := strconv.Atoi(string(val.Value()))
		if err == nil {
			return count, nil
		}
	}

	count, err := s.queries.CountArticles(ctx, storage.CountArticlesParams{
		Category:  params.Category,
		Featured:  params.Featured,
		StartDate: sqlutils.GetNullableSqlTime(params.StartDate),
		EndDate:   sqlutils.GetNullableSqlTime(params.EndDate),
		Lexems:    params.TextLexems,
	})
	if err != nil {
		return -1, errors.Join(ErrArticlesCount, err)
	}

	if _, err = s.kv.Put(cacheKey, []byte(fmt.Sprint(count))); err != nil {
		s.log.Warnw("unable store count cache", "cache_key", cacheKey, "error", err)
	}

	return int(count), nil
}

func Slugify(title string) string {
	var builder strings.Builder
	lastDash := true
	for _, r := range strings.ToLower(title) {
		switch {
		case r >= 'a' && r <= 'z' || r >= '0' && r <= '9':
			builder.WriteRune(r)
			lastDash = false
		case !lastDash:
			builder.WriteRune('-')
			lastDash = true
		}
	}
	return strings.Trim(builder.String(), "-")
}

type NewArticleServiceParams struct {
	fx.In

	DB  *sql.DB
	KV  nats.KeyValue
	Log *zap.SugaredLogger
}

func NewArticleService(params NewArticleServiceParams) *ArticleService {
	return &ArticleService{
		db:      params.DB,
		queries: storage.New(params.DB),
		kv:      params.KV,
		log:     params.Log,
	}
}
