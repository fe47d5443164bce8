package router

import (
	"context"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/jbeshir/article-board/internal/command"
	"github.com/jbeshir/article-board/internal/datasources"
	"github.com/jbeshir/article-board/internal/domain"
	"github.com/jbeshir/article-board/internal/transport/web/controller"
)

// The dataset backs every command the router builds.
var (
	_ command.ListArticlesStore  = datasources.DatasetRepository(nil)
	_ command.ViewArticleStore   = datasources.DatasetRepository(nil)
	_ command.SaveArticleStore   = datasources.DatasetRepository(nil)
	_ command.DeleteArticleStore = datasources.DatasetRepository(nil)
	_ command.ProfileStore       = datasources.DatasetRepository(nil)
	_ command.FavoritesStore     = datasources.DatasetRepository(nil)
	_ command.LoginStore         = datasources.DatasetRepository(nil)
	_ command.SessionStore       = datasources.DatasetRepository(nil)
)

type Config struct {
	Dataset    datasources.DatasetRepository
	Similarity datasources.SimilarArticleLister
	Photos     datasources.PhotoStore
	Renderer   controller.Renderer

	MediaRoot           string
	SessionTTL          time.Duration
	SessionCookieSecure bool

	RSSFeedBaseURL     string
	RSSFeedAuthorName  string
	RSSFeedAuthorEmail string
	RSSCacheMaxAge     time.Duration

	AuthValidators []AuthValidator
}

func MakeRouter(ctx context.Context, cfg Config) (http.Handler, error) {
	dataset := cfg.Dataset
	cookie := controller.SessionCookie{Secure: cfg.SessionCookieSecure}
	site := controller.Site{
		Renderer:   cfg.Renderer,
		Categories: dataset,
		Users:      dataset,
	}

	r := mux.NewRouter()
	r.Use(newLoggingMiddleware(domain.LoggerFromContext(ctx)))
	r.Use(newSessionMiddleware(command.NewEnsureSession(dataset, cfg.SessionTTL), cookie))
	r.Use(NewAuthMiddleware(cfg.AuthValidators))

	r.NotFoundHandler = controller.NotFound{Site: site}

	listArticles := command.NewListArticles(dataset)
	r.Handle("/", controller.ArticlesList{
		Site:   site,
		Lister: listArticles,
		Mode:   controller.ArticlesListHome,
	}).Methods(http.MethodGet)

	r.Handle("/search/", controller.ArticlesList{
		Site:   site,
		Lister: listArticles,
		Mode:   controller.ArticlesListSearch,
	}).Methods(http.MethodGet)

	r.Handle("/categories/{category_id:[0-9]+}/", controller.ArticlesList{
		Site:   site,
		Lister: listArticles,
		Mode:   controller.ArticlesListCategory,
	}).Methods(http.MethodGet)

	r.Handle("/articles/{article_id:[0-9]+}/", controller.ArticleDetail{
		Site:      site,
		Viewer:    command.NewViewArticle(dataset, cfg.Similarity),
		Commenter: command.NewCreateComment(dataset, dataset),
	}).Methods(http.MethodGet, http.MethodPost)

	r.Handle("/login/", controller.Login{
		Site:   site,
		Cookie: cookie,
		Logger: command.NewLoginUser(dataset, cfg.SessionTTL),
	}).Methods(http.MethodGet, http.MethodPost)

	r.Handle("/registration/", controller.Registration{
		Site:       site,
		Registerer: command.NewRegisterUser(dataset),
	}).Methods(http.MethodGet, http.MethodPost)

	r.Handle("/logout/", controller.Logout{
		Site:   site,
		Cookie: cookie,
		Ender:  command.NewLogoutUser(dataset),
	}).Methods(http.MethodGet)

	saveArticle := controller.ArticleSave{
		Site:    site,
		Fetcher: dataset,
		Saver:   command.NewSaveArticle(dataset, cfg.Photos),
	}
	r.Handle("/article/create/", requireAuthMiddleware(saveArticle)).
		Methods(http.MethodGet, http.MethodPost)
	r.Handle("/article/update/{article_id:[0-9]+}/", requireAuthMiddleware(saveArticle)).
		Methods(http.MethodGet, http.MethodPost)

	r.Handle("/article/delete/{article_id:[0-9]+}/", requireAuthMiddleware(controller.ArticleDelete{
		Site:    site,
		Fetcher: dataset,
		Deleter: command.NewDeleteArticle(dataset),
	})).Methods(http.MethodGet, http.MethodPost)

	r.Handle("/profile/{username}/", controller.Profile{
		Site:   site,
		Getter: command.NewGetProfile(dataset),
	}).Methods(http.MethodGet)

	r.Handle("/profile/{username}/favorites/", controller.FavoritesList{
		Site:   site,
		Lister: command.NewListFavorites(dataset),
	}).Methods(http.MethodGet)

	r.Handle("/about/", controller.About{Site: site}).Methods(http.MethodGet)

	r.Handle("/rss/", controller.RSS{
		FeedBaseURL:     cfg.RSSFeedBaseURL,
		FeedAuthorName:  cfg.RSSFeedAuthorName,
		FeedAuthorEmail: cfg.RSSFeedAuthorEmail,
		Lister:          dataset,
		CacheMaxAge:     cfg.RSSCacheMaxAge,
	}).Methods(http.MethodGet)

	r.PathPrefix("/media/").Handler(
		http.StripPrefix("/media/", http.FileServer(http.Dir(cfg.MediaRoot))),
	).Methods(http.MethodGet)

	r.Handle("/{user_id:[0-9]+}/favorites/add/{article_id:[0-9]+}/", requireAuthMiddleware(controller.FavoriteSet{
		Site:   site,
		Setter: command.NewAddFavorite(dataset),
	})).Methods(http.MethodGet)

	r.Handle("/{user_id:[0-9]+}/favorites/delete/{article_id:[0-9]+}/", requireAuthMiddleware(controller.FavoriteSet{
		Site:   site,
		Setter: command.NewRemoveFavorite(dataset),
	})).Methods(http.MethodGet)

	// Registered last so the fixed paths above take precedence.
	r.Handle("/{obj_type}/{obj_id:[0-9]+}/{action}/", requireAuthMiddleware(controller.VoteToggle{
		Site:    site,
		Toggler: command.NewToggleVote(dataset, dataset, dataset),
	})).Methods(http.MethodGet)

	return r, nil
}
