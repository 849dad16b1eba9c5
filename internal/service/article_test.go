package service

import (
	"context"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/cgRGM/deadpartymedia/internal/storage"
)

const (
	clearFeaturedQuery = `UPDATE articles SET featured = false, updated_at = now() WHERE featured AND id <> $1`
	setFeaturedQuery   = `UPDATE articles SET featured = true, updated_at = now() WHERE id = $1`
)

func newArticleService(t *testing.T) (*ArticleService, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return &ArticleService{
		db:      db,
		queries: storage.New(db),
		log:     zap.NewNop().Sugar(),
	}, mock
}

func TestSetFeaturedClearsThenSetsInOneTransaction(t *testing.T) {
	service, mock := newArticleService(t)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(clearFeaturedQuery)).
		WithArgs(int64(5)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta(setFeaturedQuery)).
		WithArgs(int64(5)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	require.NoError(t, service.SetFeatured(context.Background(), 5))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSetFeaturedIsIdempotent(t *testing.T) {
	service, mock := newArticleService(t)

	// Target already featured: the clear touches nothing, the set still
	// matches the row.
	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(clearFeaturedQuery)).
		WithArgs(int64(5)).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(regexp.QuoteMeta(setFeaturedQuery)).
		WithArgs(int64(5)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	require.NoError(t, service.SetFeatured(context.Background(), 5))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSetFeaturedUnknownArticleRollsBack(t *testing.T) {
	service, mock := newArticleService(t)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(clearFeaturedQuery)).
		WithArgs(int64(404)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta(setFeaturedQuery)).
		WithArgs(int64(404)).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	err := service.SetFeatured(context.Background(), 404)
	assert.ErrorIs(t, err, ErrArticleNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSetFeaturedSerializationFailureIsConflict(t *testing.T) {
	service, mock := newArticleService(t)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(clearFeaturedQuery)).
		WithArgs(int64(5)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta(setFeaturedQuery)).
		WithArgs(int64(5)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit().WillReturnError(&pq.Error{Code: "40001"})

	err := service.SetFeatured(context.Background(), 5)
	assert.ErrorIs(t, err, ErrFeaturedConflict)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSetFeaturedUniqueIndexRaceIsConflict(t *testing.T) {
	service, mock := newArticleService(t)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(clearFeaturedQuery)).
		WithArgs(int64(5)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta(setFeaturedQuery)).
		WithArgs(int64(5)).
		WillReturnError(&pq.Error{Code: "23505", Constraint: "articles_single_featured"})
	mock.ExpectRollback()

	err := service.SetFeatured(context.Background(), 5)
	assert.ErrorIs(t, err, ErrFeaturedConflict)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestIsTxConflict(t *testing.T) {
	assert.True(t, isTxConflict(&pq.Error{Code: "40001"}))
	assert.True(t, isTxConflict(&pq.Error{Code: "40P01"}))
	assert.True(t, isTxConflict(&pq.Error{Code: "23505", Constraint: "articles_single_featured"}))
	assert.False(t, isTxConflict(&pq.Error{Code: "23505", Constraint: "articles_slug_key"}))
	assert.False(t, isTxConflict(context.Canceled))
}

func TestSlugify(t *testing.T) {
	assert.Equal(t, "hardcore-show-at-the-dive", Slugify("Hardcore Show at the Dive!"))
	assert.Equal(t, "edm-2024", Slugify("  EDM // 2024  "))
	assert.Equal(t, "", Slugify("!!!"))
}
