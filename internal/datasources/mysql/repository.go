package mysql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/huandu/go-sqlbuilder"
	"github.com/jbeshir/article-board/internal/datasources"
	"github.com/jbeshir/article-board/internal/domain"
)

var _ datasources.DatasetRepository = (*Repository)(nil)

type Repository struct {
	db  *sql.DB
	now func() time.Time
}

func New(db *sql.DB) *Repository {
	return &Repository{
		db:  db,
		now: func() time.Time { return time.Now().UTC() },
	}
}

// inTx runs fn in a transaction, committing if it returns nil.
func (r *Repository) inTx(ctx context.Context, fn func(tx *sql.Tx) error) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("starting transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if err := fn(tx); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}
	return nil
}

// ============================================
// Articles
// ============================================

var articleColumns = []string{
	"a.id", "a.title", "a.short_description", "a.full_description", "a.photo", "a.views",
	"a.created_at", "a.updated_at", "a.author_id", "u.username", "a.category_id", "c.name",
}

func selectArticles() *sqlbuilder.SelectBuilder {
	sb := sqlbuilder.Select(articleColumns...)
	sb.From("articles a")
	sb.Join("users u", "u.id = a.author_id")
	sb.Join("categories c", "c.id = a.category_id")
	return sb
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanArticle(row rowScanner) (domain.Article, error) {
	var a domain.Article
	err := row.Scan(
		&a.ID,
		&a.Title,
		&a.ShortDescription,
		&a.FullDescription,
		&a.PhotoPath,
		&a.Views,
		&a.CreatedAt,
		&a.UpdatedAt,
		&a.AuthorID,
		&a.AuthorUsername,
		&a.CategoryID,
		&a.CategoryName,
	)
	return a, err
}

func (r *Repository) queryArticles(ctx context.Context, query string, args ...any) ([]domain.Article, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("running articles query: %w", err)
	}
	defer func() { _ = rows.Close() }()

	articles := []domain.Article{}
	for rows.Next() {
		a, err := scanArticle(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning articles: %w", err)
		}
		articles = append(articles, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating rows: %w", err)
	}

	return articles, nil
}

func (r *Repository) ListArticles(
	ctx context.Context,
	filters domain.ArticleFilters,
	options domain.ArticleListOptions,
) ([]domain.Article, error) {
	sb := selectArticles()

	conds := buildArticlesConditions(sb, filters)
	if len(conds) > 0 {
		sb.Where(conds...)
	}

	sb.OrderBy("a.created_at DESC", "a.id DESC")
	if options.PageSize > 0 {
		limit, offset := paginationToLimitOffset(options.Page, options.PageSize)
		sb.Limit(int(limit))
		sb.Offset(int(offset))
	}

	query, args := sb.Build()
	articles, err := r.queryArticles(ctx, query, args...)
	if isRegexpSyntax(err) {
		return nil, domain.NewInvalidPatternError()
	}
	return articles, err
}

func (r *Repository) TotalMatchingArticles(
	ctx context.Context,
	filters domain.ArticleFilters,
) (int64, error) {
	sb := sqlbuilder.Select("COUNT(*)")
	sb.From("articles a")

	conds := buildArticlesConditions(sb, filters)
	if len(conds) > 0 {
		sb.Where(conds...)
	}

	query, queryParams := sb.Build()

	var count int64
	if err := r.db.QueryRowContext(ctx, query, queryParams...).Scan(&count); err != nil {
		if isRegexpSyntax(err) {
			return 0, domain.NewInvalidPatternError()
		}
		return 0, fmt.Errorf("counting matching articles: %w", err)
	}
	return count, nil
}

func buildArticlesConditions(sb *sqlbuilder.SelectBuilder, filters domain.ArticleFilters) []string {
	var conds []string

	if filters.CategoryID != 0 {
		conds = append(conds, sb.Equal("a.category_id", filters.CategoryID))
	}

	if filters.AuthorID != 0 {
		conds = append(conds, sb.Equal("a.author_id", filters.AuthorID))
	}

	if filters.Pattern != "" {
		conds = append(conds, sb.Or(
			"REGEXP_LIKE(a.title, "+sb.Args.Add(filters.Pattern)+", 'i')",
			"REGEXP_LIKE(a.short_description, "+sb.Args.Add(filters.Pattern)+", 'i')",
		))
	}

	return conds
}

func (r *Repository) FetchArticle(ctx context.Context, id int64) (domain.Article, error) {
	sb := selectArticles()
	sb.Where(sb.Equal("a.id", id))

	query, args := sb.Build()
	a, err := scanArticle(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Article{}, fmt.Errorf("article [%d]: %w", id, domain.ErrNotFound)
	}
	if err != nil {
		return domain.Article{}, fmt.Errorf("fetching article: %w", err)
	}
	return a, nil
}

func (r *Repository) FetchArticlesByID(ctx context.Context, ids []int64) ([]domain.Article, error) {
	if len(ids) == 0 {
		return []domain.Article{}, nil
	}

	sb := selectArticles()
	sb.Where(sb.In("a.id", int64sToArgs(ids)...))

	query, args := sb.Build()
	dbArticles, err := r.queryArticles(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("fetching articles by ID: %w", err)
	}

	articleMap := make(map[int64]domain.Article, len(dbArticles))
	for _, a := range dbArticles {
		articleMap[a.ID] = a
	}

	// Build results in the same order as the input ids
	articles := make([]domain.Article, 0, len(ids))
	for _, id := range ids {
		if article, exists := articleMap[id]; exists {
			articles = append(articles, article)
		}
	}

	return articles, nil
}

func (r *Repository) CreateArticle(ctx context.Context, authorID int64, input domain.ArticleInput) (int64, error) {
	now := r.now()
	res, err := r.db.ExecContext(ctx, `
		INSERT INTO articles
		    (title, short_description, full_description, photo, views, created_at, updated_at, author_id, category_id)
		VALUES (?, ?, ?, ?, 0, ?, ?, ?, ?)`,
		input.Title, input.ShortDescription, input.FullDescription, input.PhotoPath,
		now, now, authorID, input.CategoryID,
	)
	if err != nil {
		return 0, articleWriteError(err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("reading inserted article id: %w", err)
	}
	return id, nil
}

func (r *Repository) UpdateArticle(ctx context.Context, id int64, input domain.ArticleInput) error {
	ub := sqlbuilder.Update("articles")
	assignments := []string{
		ub.Assign("title", input.Title),
		ub.Assign("short_description", input.ShortDescription),
		ub.Assign("full_description", input.FullDescription),
		ub.Assign("category_id", input.CategoryID),
		ub.Assign("updated_at", r.now()),
	}
	if input.PhotoPath != "" {
		assignments = append(assignments, ub.Assign("photo", input.PhotoPath))
	}
	ub.Set(assignments...)
	ub.Where(ub.Equal("id", id))

	query, args := ub.Build()
	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return articleWriteError(err)
	}

	// Matched-but-unchanged rows report zero, so confirm existence separately.
	if affected, err := res.RowsAffected(); err == nil && affected == 0 {
		if _, err := r.FetchArticle(ctx, id); err != nil {
			return err
		}
	}
	return nil
}

func (r *Repository) DeleteArticle(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, "DELETE FROM articles WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("deleting article: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("reading deleted article count: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("article [%d]: %w", id, domain.ErrNotFound)
	}
	return nil
}

func articleWriteError(err error) error {
	switch {
	case isDuplicateKey(err):
		return domain.NewFieldError("title", "Article with this title already exists.")
	case isMissingReference(err):
		return domain.NewFieldError("category", "Select a valid choice.")
	default:
		return fmt.Errorf("writing article: %w", err)
	}
}

// ============================================
// Categories
// ============================================

func (r *Repository) ListCategories(ctx context.Context) ([]domain.Category, error) {
	rows, err := r.db.QueryContext(ctx, "SELECT id, name FROM categories ORDER BY id")
	if err != nil {
		return nil, fmt.Errorf("listing categories: %w", err)
	}
	defer func() { _ = rows.Close() }()

	categories := []domain.Category{}
	for rows.Next() {
		var c domain.Category
		if err := rows.Scan(&c.ID, &c.Name); err != nil {
			return nil, fmt.Errorf("scanning categories: %w", err)
		}
		categories = append(categories, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating rows: %w", err)
	}
	return categories, nil
}

func (r *Repository) FetchCategory(ctx context.Context, id int64) (domain.Category, error) {
	var c domain.Category
	err := r.db.QueryRowContext(ctx, "SELECT id, name FROM categories WHERE id = ?", id).Scan(&c.ID, &c.Name)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Category{}, fmt.Errorf("category [%d]: %w", id, domain.ErrNotFound)
	}
	if err != nil {
		return domain.Category{}, fmt.Errorf("fetching category: %w", err)
	}
	return c, nil
}

func (r *Repository) CreateCategory(ctx context.Context, name string) (int64, error) {
	res, err := r.db.ExecContext(ctx, "INSERT INTO categories (name) VALUES (?)", name)
	if err != nil {
		return 0, fmt.Errorf("inserting category: %w", err)
	}
	return res.LastInsertId()
}

// ============================================
// Comments
// ============================================

func (r *Repository) CreateComment(ctx context.Context, articleID, authorID int64, body string) (int64, error) {
	res, err := r.db.ExecContext(ctx,
		"INSERT INTO comments (article_id, author_id, body, created_at) VALUES (?, ?, ?, ?)",
		articleID, authorID, body, r.now(),
	)
	if isMissingReference(err) {
		return 0, fmt.Errorf("article [%d]: %w", articleID, domain.ErrNotFound)
	}
	if err != nil {
		return 0, fmt.Errorf("inserting comment: %w", err)
	}
	return res.LastInsertId()
}

const commentColumns = "c.id, c.article_id, c.author_id, u.username, c.body, c.created_at"

func scanComment(row rowScanner) (domain.Comment, error) {
	var c domain.Comment
	err := row.Scan(&c.ID, &c.ArticleID, &c.AuthorID, &c.AuthorUsername, &c.Body, &c.CreatedAt)
	return c, err
}

func (r *Repository) FetchComment(ctx context.Context, id int64) (domain.Comment, error) {
	c, err := scanComment(r.db.QueryRowContext(ctx,
		"SELECT "+commentColumns+" FROM comments c JOIN users u ON u.id = c.author_id WHERE c.id = ?", id))
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Comment{}, fmt.Errorf("comment [%d]: %w", id, domain.ErrNotFound)
	}
	if err != nil {
		return domain.Comment{}, fmt.Errorf("fetching comment: %w", err)
	}
	return c, nil
}

func (r *Repository) ListArticleComments(ctx context.Context, articleID int64) ([]domain.Comment, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT "+commentColumns+" FROM comments c JOIN users u ON u.id = c.author_id "+
			"WHERE c.article_id = ? ORDER BY c.created_at, c.id", articleID)
	if err != nil {
		return nil, fmt.Errorf("listing comments: %w", err)
	}
	defer func() { _ = rows.Close() }()

	comments := []domain.Comment{}
	for rows.Next() {
		c, err := scanComment(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning comments: %w", err)
		}
		comments = append(comments, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating rows: %w", err)
	}
	return comments, nil
}

// ============================================
// Helpers
// ============================================

func int64sToArgs(ids []int64) []interface{} {
	args := make([]interface{}, 0, len(ids))
	for _, id := range ids {
		args = append(args, id)
	}
	return args
}

// paginationToLimitOffset converts page/pageSize to limit/offset with bounds checking.
// Clamps values to int32 range to prevent overflow.
func paginationToLimitOffset(page, pageSize int) (limit, offset int32) {
	if page < 1 {
		page = 1
	}
	if pageSize > math.MaxInt32 {
		pageSize = math.MaxInt32
	}
	limit = int32(pageSize) //nolint:gosec // bounds checked above

	off := (page - 1) * pageSize
	if off > math.MaxInt32 {
		off = math.MaxInt32
	}
	offset = int32(off) //nolint:gosec // bounds checked above

	return limit, offset
}
