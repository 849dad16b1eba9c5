package model

type Event struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Artist      string `json:"artist"`
	Date        string `json:"date"`
	StartTime   string `json:"start_time,omitempty"`
	Venue       string `json:"venue"`
	Location    string `json:"location"`
	Genre       string `json:"genre"`
	FlyerURL    string `json:"flyer_url,omitempty"`
	Doors       string `json:"doors,omitempty"`
	TicketURL   string `json:"ticket_url,omitempty"`
	Description string `json:"description,omitempty"`
	IsPast      bool   `json:"is_past"`
	CreatedAt   string `json:"created_at"`
	UpdatedAt   string `json:"updated_at"`
}

var NilEvent = Event{}
