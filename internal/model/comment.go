package model

type Comment struct {
	ID         int64  `json:"id"`
	ArticleID  int64  `json:"article_id"`
	AuthorName string `json:"author_name"`
	Content    string `json:"content"`
	Approved   bool   `json:"approved"`
	CreatedAt  string `json:"created_at"`
}

var NilComment = Comment{}
