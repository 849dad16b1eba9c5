package service

import (
	"context"
	"database/sql"
	"errors"

	"github.com/lib/pq"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/cgRGM/deadpartymedia/internal/accessor"
	"github.com/cgRGM/deadpartymedia/internal/model"
	"github.com/cgRGM/deadpartymedia/internal/storage"
)

var ErrUnableCreateComment = errors.New("unable create the comment")

type CommentService struct {
	queries *storage.Queries
	log     *zap.SugaredLogger
}

func (s *CommentService) GetArticleComments(ctx context.Context, articleID int64) ([]model.Comment, error) {
	rows, err := s.queries.ListArticleComments(ctx, articleID)
	if err != nil {
		return nil, err
	}
	return accessor.CommentsFromCommentRows(rows), nil
}

type NewCommentParams struct {
	ArticleID  int64
	AuthorName string
	Content    string
}

func (s *CommentService) NewComment(ctx context.Context, params NewCommentParams) (model.Comment, error) {
	row, err := s.queries.NewComment(ctx, storage.NewCommentParams{
		ArticleID:  params.ArticleID,
		AuthorName: params.AuthorName,
		Content:    params.Content,
	})
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23503" {
			return model.NilComment, ErrArticleNotFound
		}
		s.log.Errorw("unable create the comment", "article_id", params.ArticleID, "error", err)
		return model.NilComment, ErrUnableCreateComment
	}
	return accessor.CommentFromCommentRow(row), nil
}

type NewCommentServiceParams struct {
	fx.In

	DB  *sql.DB
	Log *zap.SugaredLogger
}

func NewCommentService(params NewCommentServiceParams) *CommentService {
	return &CommentService{
		queries: storage.New(params.DB),
		log:     params.Log,
	}
}
