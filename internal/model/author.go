package model

type Author struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	Category  string `json:"category"`
	Bio       string `json:"bio,omitempty"`
	CashTag   string `json:"cash_tag,omitempty"`
	Instagram string `json:"instagram,omitempty"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

var NilAuthor = Author{}
