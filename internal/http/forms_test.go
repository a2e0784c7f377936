package http

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pviana/bookshelf/internal/entities"
	"github.com/pviana/bookshelf/internal/services"
	"github.com/pviana/bookshelf/internal/store/memorystore"
	"github.com/pviana/bookshelf/internal/viewcache"
)

func setupFormsRouter(t *testing.T) (*gin.Engine, *services.BookService, *memorystore.Store) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	s := memorystore.New()
	books := services.NewBookService(s)
	views := viewcache.New(time.Minute)
	controller := NewFormsController(books, views)

	router := gin.New()
	router.POST("/ui/books/save", controller.SaveBook)
	router.POST("/ui/books/:id/delete", controller.DeleteBook)

	return router, books, s
}

func postForm(router *gin.Engine, path string, form url.Values) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	router.ServeHTTP(w, req)
	return w
}

func TestFormsController_SaveBook_Create(t *testing.T) {
	router, books, _ := setupFormsRouter(t)

	w := postForm(router, "/ui/books/save", url.Values{
		"title":  {"Dune"},
		"author": {"Herbert"},
		"year":   {"1965"},
		"pages":  {"412"},
		"status": {"READING"},
	})

	require.Equal(t, http.StatusSeeOther, w.Code)
	location := w.Header().Get("Location")
	require.True(t, strings.HasPrefix(location, "/ui/books/"))

	id := strings.TrimPrefix(location, "/ui/books/")
	book, err := books.Get(id)
	require.NoError(t, err)
	assert.Equal(t, "Dune", book.Title)
	assert.Equal(t, 1965, book.Year)
	assert.Equal(t, entities.StatusReading, book.Status)
}

func TestFormsController_SaveBook_CoercesNumericFields(t *testing.T) {
	router, books, _ := setupFormsRouter(t)

	// Zero and unparsable values count as absent
	w := postForm(router, "/ui/books/save", url.Values{
		"title":  {"Dune"},
		"author": {"Herbert"},
		"year":   {"not-a-number"},
		"pages":  {"0"},
	})
	require.Equal(t, http.StatusSeeOther, w.Code)

	id := strings.TrimPrefix(w.Header().Get("Location"), "/ui/books/")
	book, err := books.Get(id)
	require.NoError(t, err)
	assert.Zero(t, book.Year)
	assert.Zero(t, book.Pages)
}

func TestFormsController_SaveBook_Update(t *testing.T) {
	router, books, _ := setupFormsRouter(t)

	created, err := books.Create(services.CreateBookInput{Title: "Dune", Author: "Herbert", Pages: 412})
	require.NoError(t, err)

	w := postForm(router, "/ui/books/save", url.Values{
		"id":           {created.ID},
		"title":        {"Dune"},
		"author":       {"Frank Herbert"},
		"status":       {"READ"},
		"current_page": {"412"},
	})

	require.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/ui/books/"+created.ID, w.Header().Get("Location"))

	book, err := books.Get(created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Frank Herbert", book.Author)
	assert.Equal(t, entities.StatusRead, book.Status)
	assert.Equal(t, 412, book.CurrentPage)
	// Fields left empty on the form keep their stored values
	assert.Equal(t, 412, book.Pages)
}

func TestFormsController_SaveBook_ValidationFailure(t *testing.T) {
	router, _, _ := setupFormsRouter(t)

	w := postForm(router, "/ui/books/save", url.Values{"title": {"Dune"}})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestFormsController_SaveBook_MissingTarget(t *testing.T) {
	router, _, _ := setupFormsRouter(t)

	w := postForm(router, "/ui/books/save", url.Values{
		"id":     {"missing"},
		"title":  {"Dune"},
		"author": {"Herbert"},
	})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestFormsController_DeleteBook(t *testing.T) {
	router, books, _ := setupFormsRouter(t)

	created, err := books.Create(services.CreateBookInput{Title: "Dune", Author: "Herbert"})
	require.NoError(t, err)

	w := postForm(router, "/ui/books/"+created.ID+"/delete", nil)
	require.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/library", w.Header().Get("Location"))

	w = postForm(router, "/ui/books/"+created.ID+"/delete", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
