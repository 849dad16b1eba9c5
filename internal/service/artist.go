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
	ErrArtistNotFound     = errors.New("artist not found")
	ErrArtistsNotFound    = errors.New("artists not found")
	ErrUnableCreateArtist = errors.New("unable create the artist")
)

type ArtistService struct {
	queries *storage.Queries
	log     *zap.SugaredLogger
}

type GetArtistsParams struct {
	Genre      string
	Location   string
	TextLexems []string
}

func (s *ArtistService) GetArtists(ctx context.Context, params GetArtistsParams) ([]model.Artist, error) {
	rows, err := s.queries.ListArtists(ctx, storage.ListArtistsParams{
		Genre:    params.Genre,
		Location: params.Location,
		Lexems:   params.TextLexems,
	})
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, ErrArtistsNotFound
	}
	return accessor.ArtistsFromArtistRows(rows), nil
}

func (s *ArtistService) GetArtistByID(ctx context.Context, id int64) (model.Artist, error) {
	row, err := s.queries.GetArtistByID(ctx, id)
	if errors.Is(err, sql.ErrNoRows) {
		return model.NilArtist, ErrArtistNotFound
	}
	if err != nil {
		return model.NilArtist, err
	}
	return accessor.ArtistFromArtistRow(row), nil
}

type NewArtistParams struct {
	Name      string
	Email     string
	Phone     string
	SpotifyID string
	Location  string
	Genre     string
	Bio       string
	Instagram string
	Twitter   string
	Youtube   string
	Tiktok    string
	Website   string
}

func (s *ArtistService) NewArtist(ctx context.Context, params NewArtistParams) (int64, error) {
	id, err := s.queries.NewArtist(ctx, storage.NewArtistParams{
		Name:      params.Name,
		Email:     sqlutils.GetNullableSqlString(params.Email),
		Phone:     sqlutils.GetNullableSqlString(params.Phone),
		SpotifyID: sqlutils.GetNullableSqlString(params.SpotifyID),
		Location:  sqlutils.GetNullableSqlString(params.Location),
		Genre:     params.Genre,
		Bio:       sqlutils.GetNullableSqlString(params.Bio),
		Instagram: sqlutils.GetNullableSqlString(params.Instagram),
		Twitter:   sqlutils.GetNullableSqlString(params.Twitter),
		Youtube:   sqlutils.GetNullableSqlString(params.Youtube),
		Tiktok:    sqlutils.GetNullableSqlString(params.Tiktok),
		Website:   sqlutils.GetNullableSqlString(params.Website),
	})
	if err != nil {
		s.log.Errorw("unable create the artist", "name", params.Name, "error", err)
		return 0, ErrUnableCreateArtist
	}
	return id, nil
}

type NewArtistServiceParams struct {
	fx.In

	DB  *sql.DB
	Log *zap.SugaredLogger
}

func NewArtistService(params NewArtistServiceParams) *ArtistService {
	return &ArtistService{
		queries: storage.New(params.DB),
		log:     params.Log,
	}
}
