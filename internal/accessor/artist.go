package accessor

import (
	"github.com/cgRGM/deadpartymedia/internal/model"
	"github.com/cgRGM/deadpartymedia/internal/storage"
	"github.com/cgRGM/deadpartymedia/pkg/dateutils"
)

func ArtistFromArtistRow(row storage.ArtistRow) model.Artist {
	return model.Artist{
		ID:           row.ID,
		Name:         row.Name,
		Email:        row.Email.String,
		Phone:        row.Phone.String,
		SpotifyID:    row.SpotifyID.String,
		Location:     row.Location.String,
		Genre:        row.Genre,
		Bio:          row.Bio.String,
		Instagram:    row.Instagram.String,
		Twitter:      row.Twitter.String,
		Youtube:      row.Youtube.String,
		Tiktok:       row.Tiktok.String,
		Website:      row.Website.String,
		ArticleCount: row.ArticleCount,
		CreatedAt:    dateutils.Pretify(row.CreatedAt),
		UpdatedAt:    dateutils.Pretify(row.UpdatedAt),
	}
}

func ArtistsFromArtistRows(rows []storage.ArtistRow) []model.Artist {
	var artists []model.Artist
	for _, row := range rows {
		artists = append(artists, ArtistFromArtistRow(row))
	}
	return artists
}

func AuthorFromAuthorRow(row storage.AuthorRow) model.Author {
	return model.Author{
		ID:        row.ID,
		Name:      row.Name,
		Category:  row.Category,
		Bio:       row.Bio.String,
		CashTag:   row.CashTag.String,
		Instagram: row.Instagram.String,
		CreatedAt: dateutils.Pretify(row.CreatedAt),
		UpdatedAt: dateutils.Pretify(row.UpdatedAt),
	}
}

func AuthorsFromAuthorRows(rows []storage.AuthorRow) []model.Author {
	var authors []model.Author
	for _, row := range rows {
		authors = append(authors, AuthorFromAuthorRow(row))
	}
	return authors
}
