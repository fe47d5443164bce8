package domain

import (
	"time"
	"unicode/utf8"
)

const (
	MaxArticleTitleLength            = 155
	MaxArticleShortDescriptionLength = 255
)

type Category struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type Article struct {
	ID               int64     `json:"id"`
	Title            string    `json:"title"`
	ShortDescription string    `json:"short_description"`
	FullDescription  string    `json:"full_description"`
	PhotoPath        string    `json:"photo_path"`
	Views            int64     `json:"views"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
	AuthorID         int64     `json:"author_id"`
	AuthorUsername   string    `json:"author_username"`
	CategoryID       int64     `json:"category_id"`
	CategoryName     string    `json:"category_name"`
}

type SimilarArticle struct {
	ArticleID int64
	Score     float64
}

// ArticleFilters narrows article listings. Zero values mean no filtering.
type ArticleFilters struct {
	CategoryID int64
	AuthorID   int64
	// Pattern is a case-insensitive regular expression matched against
	// the title and the short description.
	Pattern string
}

type ArticleListOptions struct {
	Page, PageSize int
}

// NewInvalidPatternError reports a search pattern the database cannot run.
func NewInvalidPatternError() *ValidationError {
	return NewFieldError("q", "Enter a valid regular expression.")
}

// ArticleInput holds the user-editable fields of an article.
type ArticleInput struct {
	Title            string
	ShortDescription string
	FullDescription  string
	CategoryID       int64
	PhotoPath        string
}

// Validate checks field presence and length limits. PhotoPath is only
// required when requirePhoto is set, as updates may keep the existing photo.
func (in ArticleInput) Validate(requirePhoto bool) error {
	verr := &ValidationError{}

	switch {
	case in.Title == "":
		verr.Add("title", "This field is required.")
	case utf8.RuneCountInString(in.Title) > MaxArticleTitleLength:
		verr.Add("title", "Ensure this value has at most 155 characters.")
	}

	switch {
	case in.ShortDescription == "":
		verr.Add("short_description", "This field is required.")
	case utf8.RuneCountInString(in.ShortDescription) > MaxArticleShortDescriptionLength:
		verr.Add("short_description", "Ensure this value has at most 255 characters.")
	}

	if in.FullDescription == "" {
		verr.Add("full_description", "This field is required.")
	}
	if in.CategoryID <= 0 {
		verr.Add("category", "This field is required.")
	}
	if requirePhoto && in.PhotoPath == "" {
		verr.Add("photo", "This field is required.")
	}

	return verr.OrNil()
}
