package command

import (
	"context"
	"fmt"
	"regexp"
	"strconv"

	"github.com/jbeshir/article-board/internal/datasources"
	"github.com/jbeshir/article-board/internal/domain"
)

// goOnlyRegexpSyntax matches constructs Go accepts but ICU, which runs
// searches in MySQL, rejects: (?P<name>...) groups and the U flag.
var goOnlyRegexpSyntax = regexp.MustCompile(`\(\?P<|\(\?[imsU-]*U`)

// HomePageSize is the number of articles per page on the home page.
const HomePageSize = 3

// ListArticlesRequest is the request for the ListArticles command.
type ListArticlesRequest struct {
	UserID     int64
	CategoryID int64
	Pattern    string
	// Paginate splits the results into pages of HomePageSize. Page is the
	// raw page parameter; anything unparseable selects the first page.
	Paginate bool
	Page     string
}

// ArticlePage is the result of the ListArticles command.
type ArticlePage struct {
	Articles   []domain.Article
	Category   *domain.Category
	Favorites  map[int64]bool
	Page       int
	TotalPages int
}

func (p ArticlePage) HasPrevious() bool { return p.Page > 1 }
func (p ArticlePage) HasNext() bool     { return p.Page < p.TotalPages }

type ListArticlesStore interface {
	datasources.ArticleLister
	datasources.ArticleCounter
	datasources.CategoryFetcher
	datasources.FavoriteChecker
}

// ListArticles serves the home page, search results and category listings.
type ListArticles struct {
	Store ListArticlesStore
}

func NewListArticles(store ListArticlesStore) *ListArticles {
	return &ListArticles{Store: store}
}

func (c *ListArticles) Execute(ctx context.Context, req ListArticlesRequest) (ArticlePage, error) {
	if req.Pattern != "" {
		if _, err := regexp.Compile("(?i)" + req.Pattern); err != nil {
			return ArticlePage{}, domain.NewInvalidPatternError()
		}
		if goOnlyRegexpSyntax.MatchString(req.Pattern) {
			return ArticlePage{}, domain.NewInvalidPatternError()
		}
	}

	filters := domain.ArticleFilters{
		CategoryID: req.CategoryID,
		Pattern:    req.Pattern,
	}
	page := ArticlePage{Page: 1, TotalPages: 1}

	if req.CategoryID != 0 {
		category, err := c.Store.FetchCategory(ctx, req.CategoryID)
		if err != nil {
			return ArticlePage{}, fmt.Errorf("fetching category: %w", err)
		}
		page.Category = &category
	}

	var options domain.ArticleListOptions
	if req.Paginate {
		total, err := c.Store.TotalMatchingArticles(ctx, filters)
		if err != nil {
			return ArticlePage{}, fmt.Errorf("counting articles: %w", err)
		}
		page.TotalPages = totalPages(total, HomePageSize)
		page.Page = clampPage(req.Page, page.TotalPages)
		options = domain.ArticleListOptions{Page: page.Page, PageSize: HomePageSize}
	}

	articles, err := c.Store.ListArticles(ctx, filters, options)
	if err != nil {
		return ArticlePage{}, fmt.Errorf("listing articles: %w", err)
	}
	page.Articles = articles

	page.Favorites = make(map[int64]bool)
	if req.UserID != 0 {
		for _, a := range articles {
			isFav, err := c.Store.IsFavorite(ctx, req.UserID, a.ID)
			if err != nil {
				return ArticlePage{}, fmt.Errorf("checking favorite: %w", err)
			}
			if isFav {
				page.Favorites[a.ID] = true
			}
		}
	}

	return page, nil
}

func totalPages(total int64, pageSize int) int {
	if total <= 0 {
		return 1
	}
	return int((total + int64(pageSize) - 1) / int64(pageSize))
}

// clampPage parses a page parameter. Invalid values select the first page
// and values past the end select the last.
func clampPage(raw string, total int) int {
	p, err := strconv.Atoi(raw)
	if err != nil || p < 1 {
		return 1
	}
	if p > total {
		return total
	}
	return p
}
