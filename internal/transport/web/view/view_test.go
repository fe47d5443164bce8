package view

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/jbeshir/article-board/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTemplates_Render(t *testing.T) {
	templates, err := New()
	require.NoError(t, err)

	base := Base{
		Title:      "About",
		User:       &domain.User{ID: 2, Username: "reader"},
		Categories: []domain.Category{{ID: 1, Name: "Science"}},
	}

	rec := httptest.NewRecorder()
	require.NoError(t, templates.Render(rec, http.StatusTeapot, "about", base))

	assert.Equal(t, http.StatusTeapot, rec.Code)
	assert.Equal(t, "text/html; charset=utf-8", rec.Header().Get("Content-Type"))
	body := rec.Body.String()
	assert.Contains(t, body, "<title>About | Article Board</title>")
	assert.Contains(t, body, `href="/categories/1/"`)
	assert.Contains(t, body, `href="/profile/reader/"`)
}

func TestTemplates_RenderUnknownPage(t *testing.T) {
	templates, err := New()
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	err = templates.Render(rec, http.StatusOK, "missing", Base{})
	assert.Error(t, err)
	assert.Zero(t, rec.Body.Len())
}

func TestTemplates_RenderFailureWritesNothing(t *testing.T) {
	templates, err := New()
	require.NoError(t, err)

	// The home page needs fields Base does not have.
	rec := httptest.NewRecorder()
	err = templates.Render(rec, http.StatusOK, "home", Base{})
	assert.Error(t, err)
	assert.Zero(t, rec.Body.Len())
	assert.Empty(t, rec.Header().Get("Content-Type"))
}

func TestFuncs(t *testing.T) {
	mediaURL := funcs["mediaURL"].(func(string) string)
	assert.Equal(t, "/media/photos/articles/a.png", mediaURL("photos/articles/a.png"))
	assert.Equal(t, "/media/etc/passwd", mediaURL("../../etc/passwd"))
	assert.Empty(t, mediaURL(""))

	date := funcs["date"].(func(time.Time) string)
	assert.Equal(t, "May 1, 2024", date(time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)))
}
