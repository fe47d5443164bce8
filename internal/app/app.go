package app

import (
	"context"
	"fmt"

	"github.com/jbeshir/article-board/internal/command"
	"github.com/jbeshir/article-board/internal/datasources"
	"github.com/jbeshir/article-board/internal/datasources/filesystem"
	"github.com/jbeshir/article-board/internal/datasources/memory"
	"github.com/jbeshir/article-board/internal/datasources/mysql"
	"github.com/jbeshir/article-board/internal/datasources/pinecone"
	"github.com/jbeshir/article-board/internal/transport/web/router"
	"github.com/jbeshir/article-board/internal/transport/web/server"
	"github.com/jbeshir/article-board/internal/transport/web/view"
)

type Component interface {
	Run(ctx context.Context) error
}

func Setup(ctx context.Context) ([]Component, error) {
	dataset, err := SetupDatasetRepository(ctx)
	if err != nil {
		return nil, fmt.Errorf("setting up dataset repository: %w", err)
	}

	similarity, err := setupSimilarityRepository(ctx)
	if err != nil {
		return nil, fmt.Errorf("setting up similarity repository: %w", err)
	}

	validators, err := setupAuthValidators(ctx, dataset)
	if err != nil {
		return nil, fmt.Errorf("setting up auth validators: %w", err)
	}

	templates, err := view.New()
	if err != nil {
		return nil, fmt.Errorf("loading templates: %w", err)
	}

	mediaRoot := GetEnvAsStringOrDefault("MEDIA_ROOT", "media")
	httpRouter, err := router.MakeRouter(ctx, router.Config{
		Dataset:             dataset,
		Similarity:          similarity,
		Photos:              filesystem.NewPhotoStore(mediaRoot),
		Renderer:            templates,
		MediaRoot:           mediaRoot,
		SessionTTL:          MustGetEnvAsDuration(ctx, "SESSION_TTL"),
		SessionCookieSecure: MustGetEnvAsBoolean(ctx, "SESSION_COOKIE_SECURE"),
		RSSFeedBaseURL:      MustGetEnvAsString(ctx, "RSS_FEED_BASE_URL"),
		RSSFeedAuthorName:   MustGetEnvAsString(ctx, "RSS_FEED_AUTHOR_NAME"),
		RSSFeedAuthorEmail:  MustGetEnvAsString(ctx, "RSS_FEED_AUTHOR_EMAIL"),
		RSSCacheMaxAge:      MustGetEnvAsDuration(ctx, "RSS_FEED_CACHE_MAX_AGE"),
		AuthValidators:      validators,
	})
	if err != nil {
		return nil, fmt.Errorf("unable to create HTTP router: %w", err)
	}

	return []Component{
		&server.Server{
			TLSDisabled:       MustGetEnvAsBoolean(ctx, "HTTP_TLS_DISABLED"),
			TLSDisabledPort:   MustGetEnvAsInt(ctx, "PORT"),
			AutocertHostnames: MustGetEnvAsStrings(ctx, "HTTP_AUTOCERT_HOSTNAMES"),
			Router:            httpRouter,
		},
		&SessionReaper{
			Reaper:   command.NewReapExpiredSessions(dataset),
			Interval: MustGetEnvAsDuration(ctx, "SESSION_REAP_INTERVAL"),
		},
	}, nil
}

// SetupDatasetRepository opens the store selected by STORE_DRIVER. The MySQL
// schema is created if missing.
func SetupDatasetRepository(ctx context.Context) (datasources.DatasetRepository, error) {
	switch driver := MustGetEnvAsString(ctx, "STORE_DRIVER"); driver {
	case "memory":
		return memory.New(), nil
	case "mysql":
		db, err := mysql.Connect(ctx, MustGetEnvAsString(ctx, "MYSQL_URI"))
		if err != nil {
			return nil, fmt.Errorf("connecting to MySQL: %w", err)
		}
		if err := mysql.EnsureSchema(ctx, db); err != nil {
			return nil, fmt.Errorf("ensuring MySQL schema: %w", err)
		}
		return mysql.New(db), nil
	default:
		return nil, fmt.Errorf("unknown store driver [%s]", driver)
	}
}

func setupSimilarityRepository(ctx context.Context) (datasources.SimilarArticleLister, error) {
	switch driver := MustGetEnvAsString(ctx, "SIMILARITY_DRIVER"); driver {
	case "null":
		return datasources.NullSimilarityRepository{}, nil
	case "pinecone":
		client, err := pinecone.NewClient(
			ctx,
			MustGetEnvAsString(ctx, "PINECONE_API_KEY"),
			MustGetEnvAsString(ctx, "PINECONE_INDEX_NAME"),
			GetEnvAsStringOrDefault("PINECONE_NAMESPACE", ""),
		)
		if err != nil {
			return nil, fmt.Errorf("connecting to pinecone: %w", err)
		}
		return client, nil
	default:
		return nil, fmt.Errorf("unknown similarity driver [%s]", driver)
	}
}

// setupAuthValidators builds the bearer token validators. Session cookies
// are always accepted and need no validator.
func setupAuthValidators(
	ctx context.Context, dataset datasources.DatasetRepository,
) ([]router.AuthValidator, error) {
	var validators []router.AuthValidator

	for _, driver := range MustGetEnvAsStrings(ctx, "AUTH_DRIVERS") {
		switch driver {
		case "":
			// Skip empty strings (e.g., from splitting an empty AUTH_DRIVERS)
		case "auth0":
			v, err := router.NewAuth0Validator(
				MustGetEnvAsString(ctx, "AUTH0_DOMAIN"),
				MustGetEnvAsString(ctx, "AUTH0_AUDIENCE"),
				command.NewProvisionExternalUser(dataset, "auth0"),
			)
			if err != nil {
				return nil, fmt.Errorf("creating Auth0 validator: %w", err)
			}
			validators = append(validators, v)
		default:
			return nil, fmt.Errorf("unknown auth driver [%s]", driver)
		}
	}

	return validators, nil
}
