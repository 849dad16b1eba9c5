package service

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/cgRGM/deadpartymedia/internal/accessor"
	"github.com/cgRGM/deadpartymedia/internal/model"
	"github.com/cgRGM/deadpartymedia/internal/storage"
	"github.com/cgRGM/deadpartymedia/pkg/sqlutils"
)

var (
	ErrEventNotFound     = errors.New("event not found")
	ErrEventsNotFound    = errors.New("events not found")
	ErrUnableCreateEvent = errors.New("unable create the event")
)

type EventWindow string

const (
	EVENT_WINDOW_ALL      EventWindow = ""
	EVENT_WINDOW_UPCOMING EventWindow = "upcoming"
	EVENT_WINDOW_PAST     EventWindow = "past"
)

type EventService struct {
	queries *storage.Queries
	log     *zap.SugaredLogger
	now     func() time.Time
}

type GetEventsParams struct {
	Genre  string
	Window EventWindow
}

// startOfDay is midnight of t's calendar day in t's own zone. Truncate
// would cut against the UTC epoch and shift the window border off the
// local day near midnight.
func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func (s *EventService) GetEvents(ctx context.Context, params GetEventsParams) ([]model.Event, error) {
	now := s.now()
	today := startOfDay(now)

	storageParams := storage.ListEventsParams{Genre: params.Genre}
	switch params.Window {
	case EVENT_WINDOW_UPCOMING:
		storageParams.After = sql.NullTime{Time: today, Valid: true}
	case EVENT_WINDOW_PAST:
		storageParams.Before = sql.NullTime{Time: today, Valid: true}
	}

	rows, err := s.queries.ListEvents(ctx, storageParams)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, ErrEventsNotFound
	}
	return accessor.EventsFromEventRows(rows, now), nil
}

func (s *EventService) GetEventByID(ctx context.Context, id int64) (model.Event, error) {
	row, err := s.queries.GetEventByID(ctx, id)
	if errors.Is(err, sql.ErrNoRows) {
		return model.NilEvent, ErrEventNotFound
	}
	if err != nil {
		return model.NilEvent, err
	}
	return accessor.EventFromEventRow(row, s.now()), nil
}

type NewEventParams struct {
	Title       string
	Artist      string
	Date        time.Time
	StartTime   string
	Venue       string
	Location    string
	Genre       string
	FlyerURL    string
	Doors       string
	TicketURL   string
	Description string
}

func (s *EventService) NewEvent(ctx context.Context, params NewEventParams) (int64, error) {
	id, err := s.queries.NewEvent(ctx, storage.NewEventParams{
		Title:       params.Title,
		Artist:      params.Artist,
		EventDate:   params.Date,
		StartTime:   sqlutils.GetNullableSqlString(params.StartTime),
		Venue:       params.Venue,
		Location:    params.Location,
		Genre:       params.Genre,
		FlyerURL:    sqlutils.GetNullableSqlString(params.FlyerURL),
		Doors:       sqlutils.GetNullableSqlString(params.Doors),
		TicketURL:   sqlutils.GetNullableSqlString(params.TicketURL),
		Description: sqlutils.GetNullableSqlString(params.Description),
	})
	if err != nil {
		s.log.Errorw("unable create the event", "title", params.Title, "error", err)
		return 0, ErrUnableCreateEvent
	}
	return id, nil
}

type NewEventServiceParams struct {
	fx.In

	DB  *sql.DB
	Log *zap.SugaredLogger
}

func NewEventService(params NewEventServiceParams) *EventService {
	return &EventService{
		queries: storage.New(params.DB),
		log:     params.Log,
		now:     time.Now,
	}
}
