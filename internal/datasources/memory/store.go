// Package memory is an in-process implementation of the dataset repository.
// It backs the "memory" store driver for local development and the tests.
package memory

import (
	"context"
	"fmt"
	"regexp"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/jbeshir/article-board/internal/datasources"
	"github.com/jbeshir/article-board/internal/domain"
)

var _ datasources.DatasetRepository = (*Store)(nil)

type voterSet map[int64]struct{}

type aggregateKey struct {
	ref      domain.VotableRef
	polarity domain.Polarity
}

type aggregate struct {
	voters    voterSet
	createdAt time.Time
	updatedAt time.Time
}

type viewKey struct {
	articleID int64
	sessionID string
}

type favoriteKey struct {
	userID    int64
	articleID int64
}

// Store keeps every table in maps guarded by a single mutex, so each method
// is atomic with respect to the others.
type Store struct {
	mu  sync.Mutex
	now func() time.Time

	nextID int64

	categories map[int64]domain.Category
	articles   map[int64]domain.Article
	comments   map[int64]domain.Comment
	users      map[int64]domain.User
	sessions   map[string]domain.Session

	aggregates map[aggregateKey]*aggregate
	views      map[viewKey]struct{}
	favorites  map[favoriteKey]domain.FavoriteArticle
}

func New() *Store {
	return &Store{
		now:        time.Now,
		categories: make(map[int64]domain.Category),
		articles:   make(map[int64]domain.Article),
		comments:   make(map[int64]domain.Comment),
		users:      make(map[int64]domain.User),
		sessions:   make(map[string]domain.Session),
		aggregates: make(map[aggregateKey]*aggregate),
		views:      make(map[viewKey]struct{}),
		favorites:  make(map[favoriteKey]domain.FavoriteArticle),
	}
}

// WithClock replaces the time source, for tests.
func (s *Store) WithClock(now func() time.Time) *Store {
	s.now = now
	return s
}

func (s *Store) allocateID() int64 {
	s.nextID++
	return s.nextID
}

// ============================================
// Categories
// ============================================

func (s *Store) CreateCategory(_ context.Context, name string) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.allocateID()
	s.categories[id] = domain.Category{ID: id, Name: name}
	return id, nil
}

func (s *Store) ListCategories(_ context.Context) ([]domain.Category, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	categories := make([]domain.Category, 0, len(s.categories))
	for _, c := range s.categories {
		categories = append(categories, c)
	}
	sort.Slice(categories, func(i, j int) bool { return categories[i].ID < categories[j].ID })
	return categories, nil
}

func (s *Store) FetchCategory(_ context.Context, id int64) (domain.Category, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.categories[id]
	if !ok {
		return domain.Category{}, fmt.Errorf("category [%d]: %w", id, domain.ErrNotFound)
	}
	return c, nil
}

// ============================================
// Articles
// ============================================

func (s *Store) hydrateArticle(a domain.Article) domain.Article {
	a.AuthorUsername = s.users[a.AuthorID].Username
	a.CategoryName = s.categories[a.CategoryID].Name
	return a
}

func (s *Store) matchingArticles(filters domain.ArticleFilters) ([]domain.Article, error) {
	var pattern *regexp.Regexp
	if filters.Pattern != "" {
		var err error
		pattern, err = regexp.Compile("(?i)" + filters.Pattern)
		if err != nil {
			return nil, fmt.Errorf("compiling search pattern: %w", err)
		}
	}

	var matches []domain.Article
	for _, a := range s.articles {
		if filters.CategoryID != 0 && a.CategoryID != filters.CategoryID {
			continue
		}
		if filters.AuthorID != 0 && a.AuthorID != filters.AuthorID {
			continue
		}
		if pattern != nil && !pattern.MatchString(a.Title) && !pattern.MatchString(a.ShortDescription) {
			continue
		}
		matches = append(matches, s.hydrateArticle(a))
	}

	sort.Slice(matches, func(i, j int) bool {
		if !matches[i].CreatedAt.Equal(matches[j].CreatedAt) {
			return matches[i].CreatedAt.After(matches[j].CreatedAt)
		}
		return matches[i].ID > matches[j].ID
	})
	return matches, nil
}

func (s *Store) ListArticles(
	_ context.Context,
	filters domain.ArticleFilters,
	options domain.ArticleListOptions,
) ([]domain.Article, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	matches, err := s.matchingArticles(filters)
	if err != nil {
		return nil, err
	}

	if options.PageSize <= 0 {
		return matches, nil
	}

	page := max(options.Page, 1)
	start := (page - 1) * options.PageSize
	if start >= len(matches) {
		return []domain.Article{}, nil
	}
	end := min(start+options.PageSize, len(matches))
	return matches[start:end], nil
}

func (s *Store) TotalMatchingArticles(_ context.Context, filters domain.ArticleFilters) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	matches, err := s.matchingArticles(filters)
	if err != nil {
		return 0, err
	}
	return int64(len(matches)), nil
}

func (s *Store) FetchArticle(_ context.Context, id int64) (domain.Article, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	a, ok := s.articles[id]
	if !ok {
		return domain.Article{}, fmt.Errorf("article [%d]: %w", id, domain.ErrNotFound)
	}
	return s.hydrateArticle(a), nil
}

func (s *Store) FetchArticlesByID(_ context.Context, ids []int64) ([]domain.Article, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	articles := make([]domain.Article, 0, len(ids))
	for _, id := range ids {
		if a, ok := s.articles[id]; ok {
			articles = append(articles, s.hydrateArticle(a))
		}
	}
	return articles, nil
}

func (s *Store) titleTaken(title string, exceptID int64) bool {
	for _, a := range s.articles {
		if a.ID != exceptID && strings.EqualFold(a.Title, title) {
			return true
		}
	}
	return false
}

func (s *Store) CreateArticle(_ context.Context, authorID int64, input domain.ArticleInput) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.titleTaken(input.Title, 0) {
		return 0, domain.NewFieldError("title", "Article with this title already exists.")
	}
	if _, ok := s.categories[input.CategoryID]; !ok {
		return 0, domain.NewFieldError("category", "Select a valid choice.")
	}

	now := s.now()
	id := s.allocateID()
	s.articles[id] = domain.Article{
		ID:               id,
		Title:            input.Title,
		ShortDescription: input.ShortDescription,
		FullDescription:  input.FullDescription,
		PhotoPath:        input.PhotoPath,
		CreatedAt:        now,
		UpdatedAt:        now,
		AuthorID:         authorID,
		CategoryID:       input.CategoryID,
	}
	return id, nil
}

func (s *Store) UpdateArticle(_ context.Context, id int64, input domain.ArticleInput) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	a, ok := s.articles[id]
	if !ok {
		return fmt.Errorf("article [%d]: %w", id, domain.ErrNotFound)
	}
	if s.titleTaken(input.Title, id) {
		return domain.NewFieldError("title", "Article with this title already exists.")
	}
	if _, ok := s.categories[input.CategoryID]; !ok {
		return domain.NewFieldError("category", "Select a valid choice.")
	}

	a.Title = input.Title
	a.ShortDescription = input.ShortDescription
	a.FullDescription = input.FullDescription
	a.CategoryID = input.CategoryID
	if input.PhotoPath != "" {
		a.PhotoPath = input.PhotoPath
	}
	a.UpdatedAt = s.now()
	s.articles[id] = a
	return nil
}

// DeleteArticle cascades to comments, vote aggregates, view records and favorites.
func (s *Store) DeleteArticle(_ context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.articles[id]; !ok {
		return fmt.Errorf("article [%d]: %w", id, domain.ErrNotFound)
	}
	delete(s.articles, id)

	for commentID, c := range s.comments {
		if c.ArticleID == id {
			delete(s.comments, commentID)
			s.deleteAggregates(domain.VotableRef{Kind: domain.VotableKindComment, ID: commentID})
		}
	}
	s.deleteAggregates(domain.VotableRef{Kind: domain.VotableKindArticle, ID: id})

	for key := range s.views {
		if key.articleID == id {
			delete(s.views, key)
		}
	}
	for key := range s.favorites {
		if key.articleID == id {
			delete(s.favorites, key)
		}
	}
	return nil
}

// ============================================
// Comments
// ============================================

func (s *Store) CreateComment(_ context.Context, articleID, authorID int64, body string) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.articles[articleID]; !ok {
		return 0, fmt.Errorf("article [%d]: %w", articleID, domain.ErrNotFound)
	}

	id := s.allocateID()
	s.comments[id] = domain.Comment{
		ID:        id,
		ArticleID: articleID,
		AuthorID:  authorID,
		Body:      body,
		CreatedAt: s.now(),
	}
	return id, nil
}

func (s *Store) FetchComment(_ context.Context, id int64) (domain.Comment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.comments[id]
	if !ok {
		return domain.Comment{}, fmt.Errorf("comment [%d]: %w", id, domain.ErrNotFound)
	}
	c.AuthorUsername = s.users[c.AuthorID].Username
	return c, nil
}

func (s *Store) ListArticleComments(_ context.Context, articleID int64) ([]domain.Comment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var comments []domain.Comment
	for _, c := range s.comments {
		if c.ArticleID == articleID {
			c.AuthorUsername = s.users[c.AuthorID].Username
			comments = append(comments, c)
		}
	}
	sort.Slice(comments, func(i, j int) bool { return comments[i].ID < comments[j].ID })
	return comments, nil
}

// ============================================
// Vote aggregates
// ============================================

func (s *Store) entityExists(ref domain.VotableRef) bool {
	switch ref.Kind {
	case domain.VotableKindArticle:
		_, ok := s.articles[ref.ID]
		return ok
	case domain.VotableKindComment:
		_, ok := s.comments[ref.ID]
		return ok
	default:
		return false
	}
}

func (s *Store) ensureAggregates(ref domain.VotableRef) error {
	if !s.entityExists(ref) {
		return fmt.Errorf("votable entity [%s]: %w", ref, domain.ErrNotFound)
	}

	now := s.now()
	for _, polarity := range domain.Polarities {
		key := aggregateKey{ref: ref, polarity: polarity}
		if _, ok := s.aggregates[key]; !ok {
			s.aggregates[key] = &aggregate{voters: voterSet{}, createdAt: now, updatedAt: now}
		}
	}
	return nil
}

func (s *Store) deleteAggregates(ref domain.VotableRef) {
	for _, polarity := range domain.Polarities {
		delete(s.aggregates, aggregateKey{ref: ref, polarity: polarity})
	}
}

func (s *Store) voters(ref domain.VotableRef, polarity domain.Polarity) voterSet {
	agg, ok := s.aggregates[aggregateKey{ref: ref, polarity: polarity}]
	if !ok {
		return nil
	}
	return agg.voters
}

func (s *Store) counts(ref domain.VotableRef) domain.VoteCounts {
	return domain.VoteCounts{
		Likes:    int64(len(s.voters(ref, domain.PolarityLike))),
		Dislikes: int64(len(s.voters(ref, domain.PolarityDislike))),
	}
}

func (s *Store) voteState(ref domain.VotableRef, userID int64) domain.VoteState {
	_, inLikes := s.voters(ref, domain.PolarityLike)[userID]
	_, inDislikes := s.voters(ref, domain.PolarityDislike)[userID]
	return domain.VoteStateFromMembership(inLikes, inDislikes)
}

func (s *Store) EnsureVoteAggregates(_ context.Context, ref domain.VotableRef) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.ensureAggregates(ref)
}

func (s *Store) ToggleVote(
	_ context.Context,
	ref domain.VotableRef,
	userID int64,
	polarity domain.Polarity,
) (domain.VoteCounts, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.users[userID]; !ok {
		return domain.VoteCounts{}, fmt.Errorf("user [%d]: %w", userID, domain.ErrNotFound)
	}
	if err := s.ensureAggregates(ref); err != nil {
		return domain.VoteCounts{}, err
	}

	next := domain.NextVoteState(s.voteState(ref, userID), polarity)
	inLikes, inDislikes := next.Membership()

	now := s.now()
	for p, member := range map[domain.Polarity]bool{
		domain.PolarityLike:    inLikes,
		domain.PolarityDislike: inDislikes,
	} {
		agg := s.aggregates[aggregateKey{ref: ref, polarity: p}]
		_, present := agg.voters[userID]
		switch {
		case member && !present:
			agg.voters[userID] = struct{}{}
			agg.updatedAt = now
		case !member && present:
			delete(agg.voters, userID)
			agg.updatedAt = now
		}
	}

	return s.counts(ref), nil
}

func (s *Store) CountVotes(_ context.Context, ref domain.VotableRef) (domain.VoteCounts, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.counts(ref), nil
}

func (s *Store) CountCommentVotes(_ context.Context, commentIDs []int64) (map[int64]domain.VoteCounts, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	result := make(map[int64]domain.VoteCounts, len(commentIDs))
	for _, id := range commentIDs {
		result[id] = s.counts(domain.VotableRef{Kind: domain.VotableKindComment, ID: id})
	}
	return result, nil
}

func (s *Store) GetVoteState(_ context.Context, ref domain.VotableRef, userID int64) (domain.VoteState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.voteState(ref, userID), nil
}

// ============================================
// Views
// ============================================

func (s *Store) RecordArticleView(_ context.Context, articleID int64, sessionID string) (bool, error) {
	if sessionID == "" {
		return false, nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	a, ok := s.articles[articleID]
	if !ok {
		return false, fmt.Errorf("article [%d]: %w", articleID, domain.ErrNotFound)
	}

	key := viewKey{articleID: articleID, sessionID: sessionID}
	if _, seen := s.views[key]; seen {
		return false, nil
	}
	s.views[key] = struct{}{}

	a.Views++
	s.articles[articleID] = a
	return true, nil
}

// ============================================
// Favorites
// ============================================

func (s *Store) AddFavorite(_ context.Context, userID, articleID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.articles[articleID]; !ok {
		return fmt.Errorf("article [%d]: %w", articleID, domain.ErrNotFound)
	}
	if _, ok := s.users[userID]; !ok {
		return fmt.Errorf("user [%d]: %w", userID, domain.ErrNotFound)
	}

	key := favoriteKey{userID: userID, articleID: articleID}
	if _, exists := s.favorites[key]; exists {
		return nil
	}
	s.favorites[key] = domain.FavoriteArticle{UserID: userID, ArticleID: articleID, CreatedAt: s.now()}
	return nil
}

func (s *Store) RemoveFavorite(_ context.Context, userID, articleID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := favoriteKey{userID: userID, articleID: articleID}
	if _, exists := s.favorites[key]; !exists {
		return fmt.Errorf("favorite [%d/%d]: %w", userID, articleID, domain.ErrNotFound)
	}
	delete(s.favorites, key)
	return nil
}

func (s *Store) ListFavoriteArticles(_ context.Context, userID int64) ([]domain.Article, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var favorites []domain.FavoriteArticle
	for key, fav := range s.favorites {
		if key.userID == userID {
			favorites = append(favorites, fav)
		}
	}
	sort.Slice(favorites, func(i, j int) bool {
		if !favorites[i].CreatedAt.Equal(favorites[j].CreatedAt) {
			return favorites[i].CreatedAt.Before(favorites[j].CreatedAt)
		}
		return favorites[i].ArticleID < favorites[j].ArticleID
	})

	articles := make([]domain.Article, 0, len(favorites))
	for _, fav := range favorites {
		articles = append(articles, s.hydrateArticle(s.articles[fav.ArticleID]))
	}
	return articles, nil
}

func (s *Store) IsFavorite(_ context.Context, userID, articleID int64) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, exists := s.favorites[favoriteKey{userID: userID, articleID: articleID}]
	return exists, nil
}

// ============================================
// Users
// ============================================

func (s *Store) usernameTaken(username string) bool {
	for _, u := range s.users {
		if strings.EqualFold(u.Username, username) {
			return true
		}
	}
	return false
}

func (s *Store) CreateUser(_ context.Context, username, passwordHash string) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.usernameTaken(username) {
		return 0, domain.NewFieldError("username", "A user with that username already exists.")
	}

	id := s.allocateID()
	s.users[id] = domain.User{ID: id, Username: username, PasswordHash: passwordHash, DateJoined: s.now()}
	return id, nil
}

func (s *Store) GetUserByUsername(_ context.Context, username string) (domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.users {
		if u.Username == username {
			return u, nil
		}
	}
	return domain.User{}, fmt.Errorf("user [%s]: %w", username, domain.ErrNotFound)
}

func (s *Store) GetUserByID(_ context.Context, id int64) (domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.users[id]
	if !ok {
		return domain.User{}, fmt.Errorf("user [%d]: %w", id, domain.ErrNotFound)
	}
	return u, nil
}

func (s *Store) EnsureExternalUser(_ context.Context, subject, username string) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.users {
		if u.ExternalSubject == subject {
			return u.ID, nil
		}
	}
	if s.usernameTaken(username) {
		return 0, fmt.Errorf("username [%s] for subject [%s] already taken", username, subject)
	}

	id := s.allocateID()
	s.users[id] = domain.User{ID: id, Username: username, ExternalSubject: subject, DateJoined: s.now()}
	return id, nil
}

func (s *Store) GetAuthorStats(_ context.Context, authorID int64) (domain.AuthorStats, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var stats domain.AuthorStats
	authored := make(map[int64]struct{})
	for _, a := range s.articles {
		if a.AuthorID == authorID {
			stats.TotalViews += a.Views
			authored[a.ID] = struct{}{}
		}
	}
	for _, c := range s.comments {
		if _, ok := authored[c.ArticleID]; ok {
			stats.TotalComments++
		}
	}
	return stats, nil
}

// ============================================
// Sessions
// ============================================

func (s *Store) CreateSession(_ context.Context, session domain.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.sessions[session.ID]; exists {
		return fmt.Errorf("session [%s] already exists", session.ID)
	}
	s.sessions[session.ID] = session
	return nil
}

func (s *Store) GetSession(_ context.Context, id string) (domain.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.sessions[id]
	if !ok || session.IsExpired(s.now()) {
		return domain.Session{}, fmt.Errorf("session: %w", domain.ErrNotFound)
	}
	return session, nil
}

func (s *Store) DeleteSession(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.sessions, id)
	return nil
}

func (s *Store) DeleteExpiredSessions(_ context.Context, now time.Time) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var deleted int64
	for id, session := range s.sessions {
		if session.IsExpired(now) {
			delete(s.sessions, id)
			deleted++
		}
	}
	return deleted, nil
}
