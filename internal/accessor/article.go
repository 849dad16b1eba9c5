package accessor

import (
	"encoding/json"
	"errors"

	"github.com/cgRGM/deadpartymedia/internal/model"
	"github.com/cgRGM/deadpartymedia/internal/storage"
	"github.com/cgRGM/deadpartymedia/pkg/dateutils"
)

var ErrUnableGetArticle = errors.New("unable get article")

func ArticleFromArticleRow(row storage.ArticleRow) (model.Article, error) {
	var artists []model.ArtistRef
	if err := json.Unmarshal(row.Artists, &artists); err != nil {
		return model.NilArticle, ErrUnableGetArticle
	}

	return model.Article{
		ID:          row.ID,
		Slug:        row.Slug,
		Title:       row.Title,
		Category:    row.Category,
		ImageURL:    row.ImageURL.String,
		Excerpt:     row.Excerpt,
		Author:      row.AuthorName.String,
		AuthorID:    row.AuthorID.Int64,
		PublishDate: dateutils.PretifyDate(row.PublishDate),
		Content:     row.Content,
		Featured:    row.Featured,
		Artists:     artists,
		CreatedAt:   dateutils.Pretify(row.CreatedAt),
		UpdatedAt:   dateutils.Pretify(row.UpdatedAt),
	}, nil
}

func ArticlesFromArticleRows(rows []storage.ArticleRow) ([]model.Article, error) {
	var articles []model.Article
	for _, row := range rows {
		article, err := ArticleFromArticleRow(row)
		if err != nil {
			return nil, err
		}
		articles = append(articles, article)
	}
	return articles, nil
}
