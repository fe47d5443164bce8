package view

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
	"path"
	"strings"
	"time"

	"github.com/jbeshir/article-board/internal/domain"
)

//go:embed templates/*.html
var templateFS embed.FS

const layoutFile = "templates/layout.html"

// Templates renders the site's pages. Each page is parsed together with the
// shared layout.
type Templates struct {
	pages map[string]*template.Template
}

// Base is the data every page's layout needs.
type Base struct {
	Title      string
	User       *domain.User
	Categories []domain.Category
}

func (b Base) UserID() int64 {
	if b.User == nil {
		return 0
	}
	return b.User.ID
}

var funcs = template.FuncMap{
	"mediaURL": func(p string) string {
		if p == "" {
			return ""
		}
		return "/media/" + strings.TrimPrefix(path.Clean("/"+p), "/")
	},
	"date": func(t time.Time) string {
		return t.Format("January 2, 2006")
	},
	"datetime": func(t time.Time) string {
		return t.Format("January 2, 2006 15:04")
	},
	"add": func(a, b int) int { return a + b },
	// card packs the arguments of the article_card template.
	"card": func(article domain.Article, isFavorite bool, userID int64) map[string]any {
		return map[string]any{
			"Article":    article,
			"IsFavorite": isFavorite,
			"UserID":     userID,
		}
	},
}

func New() (*Templates, error) {
	pageFiles, err := fs.Glob(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("listing templates: %w", err)
	}

	t := &Templates{pages: make(map[string]*template.Template)}
	for _, file := range pageFiles {
		if file == layoutFile {
			continue
		}

		name := strings.TrimSuffix(path.Base(file), ".html")
		page, err := template.New(path.Base(layoutFile)).Funcs(funcs).ParseFS(templateFS, layoutFile, file)
		if err != nil {
			return nil, fmt.Errorf("parsing template [%s]: %w", name, err)
		}
		t.pages[name] = page
	}

	return t, nil
}

// Render executes the named page into a buffer first, so a failing template
// never leaves a half-written response.
func (t *Templates) Render(w http.ResponseWriter, status int, name string, data any) error {
	page, ok := t.pages[name]
	if !ok {
		return fmt.Errorf("unknown template [%s]", name)
	}

	var buf bytes.Buffer
	if err := page.Execute(&buf, data); err != nil {
		return fmt.Errorf("executing template [%s]: %w", name, err)
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, err := buf.WriteTo(w)
	return err
}
