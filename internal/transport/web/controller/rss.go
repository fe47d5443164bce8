package controller

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gorilla/feeds"
	"github.com/jbeshir/article-board/internal/datasources"
	"github.com/jbeshir/article-board/internal/domain"
)

const rssFeedSize = 20

type RSS struct {
	FeedBaseURL     string
	FeedAuthorName  string
	FeedAuthorEmail string
	Lister          datasources.ArticleLister
	CacheMaxAge     time.Duration
	Now             func() time.Time
}

func (c RSS) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	baseURL := strings.TrimSuffix(c.FeedBaseURL, "/")

	now := time.Now
	if c.Now != nil {
		now = c.Now
	}

	feed := &feeds.Feed{
		Title:       "Article Board",
		Link:        &feeds.Link{Href: baseURL + "/"},
		Description: "The latest articles published on Article Board",
		Author:      &feeds.Author{Name: c.FeedAuthorName, Email: c.FeedAuthorEmail},
		Created:     now(),
	}

	articles, err := c.Lister.ListArticles(r.Context(), domain.ArticleFilters{}, domain.ArticleListOptions{
		Page:     1,
		PageSize: rssFeedSize,
	})
	if err != nil {
		ctx := r.Context()
		logger := domain.LoggerFromContext(ctx)
		logger.ErrorContext(ctx, "unable to fetch articles for feed", "error", err)

		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	for _, a := range articles {
		link := baseURL + "/articles/" + strconv.FormatInt(a.ID, 10) + "/"
		feed.Items = append(feed.Items, &feeds.Item{
			Id:          link,
			IsPermaLink: "true",
			Title:       a.Title,
			Link:        &feeds.Link{Href: link},
			Description: a.ShortDescription,
			Author:      &feeds.Author{Name: a.AuthorUsername},
			Created:     a.CreatedAt,
			Updated:     a.UpdatedAt,
		})
	}

	rss, err := feed.ToRss()
	if err != nil {
		ctx := r.Context()
		logger := domain.LoggerFromContext(ctx)
		logger.ErrorContext(ctx, "unable to format feed as RSS", "error", err)

		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/xml")
	w.Header().Set("Cache-Control", fmt.Sprintf("max-age=%d", int(c.CacheMaxAge.Seconds())))

	if _, err := w.Write([]byte(rss)); err != nil {
		ctx := r.Context()
		logger := domain.LoggerFromContext(ctx)
		logger.ErrorContext(ctx, "unable to write feed to response", "error", err)
	}
}
