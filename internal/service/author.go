package service

import (
	"context"
	"database/sql"
	"errors"

	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/cgRGM/deadpartymedia/internal/accessor"
	"github.com/cgRGM/deadpartymedia/internal/model"
	"github.com/cgRGM/deadpartymedia/internal/storage"
	"github.com/cgRGM/deadpartymedia/pkg/sqlutils"
)

var (
	ErrAuthorNotFound     = errors.New("author not found")
	ErrAuthorsNotFound    = errors.New("authors not found")
	ErrUnableCreateAuthor = errors.New("unable create the author")
)

type AuthorService struct {
	queries *storage.Queries
	log     *zap.SugaredLogger
}

type GetAuthorsParams struct {
	Category   string
	TextLexems []string
}

func (s *AuthorService) GetAuthors(ctx context.Context, params GetAuthorsParams) ([]model.Author, error) {
	rows, err := s.queries.ListAuthors(ctx, storage.ListAuthorsParams{
		Category: params.Category,
		Lexems:   params.TextLexems,
	})
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, ErrAuthorsNotFound
	}
	return accessor.AuthorsFromAuthorRows(rows), nil
}

func (s *AuthorService) GetAuthorByID(ctx context.Context, id int64) (model.Author, error) {
	row, err := s.queries.GetAuthorByID(ctx, id)
	if errors.Is(err, sql.ErrNoRows) {
		return model.NilAuthor, ErrAuthorNotFound
	}
	if err != nil {
		return model.NilAuthor, err
	}
	return accessor.AuthorFromAuthorRow(row), nil
}

type NewAuthorParams struct {
	Name      string
	Category  string
	Bio       string
	CashTag   string
	Instagram string
}

func (s *AuthorService) NewAuthor(ctx context.Context, params NewAuthorParams) (int64, error) {
	id, err := s.queries.NewAuthor(ctx, storage.NewAuthorParams{
		Name:      params.Name,
		Category:  params.Category,
		Bio:       sqlutils.GetNullableSqlString(params.Bio),
		CashTag:   sqlutils.GetNullableSqlString(params.CashTag),
		Instagram: sqlutils.GetNullableSqlString(params.Instagram),
	})
	if err != nil {
		s.log.Errorw("unable create the author", "name", params.Name, "error", err)
		return 0, ErrUnableCreateAuthor
	}
	return id, nil
}

type NewAuthorServiceParams struct {
	fx.In

	DB  *sql.DB
	Log *zap.SugaredLogger
}

func NewAuthorService(params NewAuthorServiceParams) *AuthorService {
	return &AuthorService{
		queries: storage.New(params.DB),
		log:     params.Log,
	}
}
