package storage

import (
	"database/sql"
	"encoding/json"
	"time"
)

type ArticleRow struct {
	ID          int64
	Slug        string
	Title       string
	Category    string
	ImageURL    sql.NullString
	Excerpt     string
	AuthorID    sql.NullInt64
	AuthorName  sql.NullString
	PublishDate time.Time
	Content     string
	Featured    bool
	Artists     json.RawMessage
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type ArtistRow struct {
	ID           int64
	Name         string
	Email        sql.NullString
	Phone        sql.NullString
	SpotifyID    sql.NullString
	Location     sql.NullString
	Genre        string
	Bio          sql.NullString
	Instagram    sql.NullString
	Twitter      sql.NullString
	Youtube      sql.NullString
	Tiktok       sql.NullString
	Website      sql.NullString
	ArticleCount int64
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

type AuthorRow struct {
	ID        int64
	Name      string
	Category  string
	Bio       sql.NullString
	CashTag   sql.NullString
	Instagram sql.NullString
	CreatedAt time.Time
	UpdatedAt time.Time
}

type EventRow struct {
	ID          int64
	Title       string
	Artist      string
	EventDate   time.Time
	StartTime   sql.NullString
	Venue       string
	Location    string
	Genre       string
	FlyerURL    sql.NullString
	Doors       sql.NullString
	TicketURL   sql.NullString
	Description sql.NullString
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type CommentRow struct {
	ID         int64
	ArticleID  int64
	AuthorName string
	Content    string
	Approved   bool
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

type InterviewRequestRow struct {
	ID             int64
	ArtistID       int64
	ArtistName     string
	RequesterName  string
	RequesterEmail string
	Message        string
	Status         string
	EmailSent      bool
	SmsSent        bool
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
