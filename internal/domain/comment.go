package domain

import (
	"strings"
	"time"
)

type Comment struct {
	ID             int64     `json:"id"`
	ArticleID      int64     `json:"article_id"`
	AuthorID       int64     `json:"author_id"`
	AuthorUsername string    `json:"author_username"`
	Body           string    `json:"body"`
	CreatedAt      time.Time `json:"created_at"`
}

func ValidateCommentBody(body string) error {
	if strings.TrimSpace(body) == "" {
		verr := &ValidationError{}
		verr.Add("body", "This field is required.")
		return verr
	}
	return nil
}
