package accessor

import (
	"time"

	"github.com/cgRGM/deadpartymedia/internal/model"
	"github.com/cgRGM/deadpartymedia/internal/storage"
	"github.com/cgRGM/deadpartymedia/pkg/dateutils"
)

func EventFromEventRow(row storage.EventRow, now time.Time) model.Event {
	return model.Event{
		ID:          row.ID,
		Title:       row.Title,
		Artist:      row.Artist,
		Date:        dateutils.PretifyDate(row.EventDate),
		StartTime:   row.StartTime.String,
		Venue:       row.Venue,
		Location:    row.Location,
		Genre:       row.Genre,
		FlyerURL:    row.FlyerURL.String,
		Doors:       row.Doors.String,
		TicketURL:   row.TicketURL.String,
		Description: row.Description.String,
		IsPast:      row.EventDate.Before(now.Truncate(24 * time.Hour)),
		CreatedAt:   dateutils.Pretify(row.CreatedAt),
		UpdatedAt:   dateutils.Pretify(row.UpdatedAt),
	}
}

func EventsFromEventRows(rows []storage.EventRow, now time.Time) []model.Event {
	var events []model.Event
	for _, row := range rows {
		events = append(events, EventFromEventRow(row, now))
	}
	return events
}

func CommentFromCommentRow(row storage.CommentRow) model.Comment {
	return model.Comment{
		ID:         row.ID,
		ArticleID:  row.ArticleID,
		AuthorName: row.AuthorName,
		Content:    row.Content,
		Approved:   row.Approved,
		CreatedAt:  dateutils.Pretify(row.CreatedAt),
	}
}

func CommentsFromCommentRows(rows []storage.CommentRow) []model.Comment {
	var comments []model.Comment
	for _, row := range rows {
		comments = append(comments, CommentFromCommentRow(row))
	}
	return comments
}

func InterviewRequestFromRow(row storage.InterviewRequestRow) model.InterviewRequest {
	return model.InterviewRequest{
		ID:             row.ID,
		ArtistID:       row.ArtistID,
		ArtistName:     row.ArtistName,
		RequesterName:  row.RequesterName,
		RequesterEmail: row.RequesterEmail,
		Message:        row.Message,
		Status:         row.Status,
		EmailSent:      row.EmailSent,
		SmsSent:        row.SmsSent,
		CreatedAt:      dateutils.Pretify(row.CreatedAt),
	}
}

func InterviewRequestsFromRows(rows []storage.InterviewRequestRow) []model.InterviewRequest {
	var requests []model.InterviewRequest
	for _, row := range rows {
		requests = append(requests, InterviewRequestFromRow(row))
	}
	return requests
}
