package model

type ArtistRef struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type Article struct {
	ID          int64       `json:"id"`
	Slug        string      `json:"slug"`
	Title       string      `json:"title"`
	Category    string      `json:"category"`
	ImageURL    string      `json:"image_url,omitempty"`
	Excerpt     string      `json:"excerpt"`
	Author      string      `json:"author,omitempty"`
	AuthorID    int64       `json:"author_id,omitempty"`
	PublishDate string      `json:"publish_date"`
	Content     string      `json:"content"`
	Featured    bool        `json:"featured"`
	Artists     []ArtistRef `json:"artists,omitempty"`
	CreatedAt   string      `json:"created_at"`
	UpdatedAt   string      `json:"updated_at"`
}

var NilArticle = Article{}
