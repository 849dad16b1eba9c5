package model

type Artist struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	Email        string `json:"email,omitempty"`
	Phone        string `json:"phone,omitempty"`
	SpotifyID    string `json:"spotify_id,omitempty"`
	Location     string `json:"location,omitempty"`
	Genre        string `json:"genre"`
	Bio          string `json:"bio,omitempty"`
	Instagram    string `json:"instagram,omitempty"`
	Twitter      string `json:"twitter,omitempty"`
	Youtube      string `json:"youtube,omitempty"`
	Tiktok       string `json:"tiktok,omitempty"`
	Website      string `json:"website,omitempty"`
	ArticleCount int64  `json:"article_count"`
	CreatedAt    string `json:"created_at"`
	UpdatedAt    string `json:"updated_at"`
}

var NilArtist = Artist{}
