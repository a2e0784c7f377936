package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pviana/bookshelf/internal/entities"
	"github.com/pviana/bookshelf/internal/services"
	"github.com/pviana/bookshelf/internal/store"
)

// statusOptions feeds the status select on the book form.
var statusOptions = []entities.ReadingStatus{
	entities.StatusWantToRead,
	entities.StatusReading,
	entities.StatusRead,
	entities.StatusPaused,
	entities.StatusAbandoned,
}

// PagesController renders the server-side views: library listing with
// filters, dashboard, book detail and the add/edit forms.
type PagesController struct {
	books  *services.BookService
	genres *services.GenreService
}

func NewPagesController(books *services.BookService, genres *services.GenreService) *PagesController {
	return &PagesController{books: books, genres: genres}
}

// Home handles GET / and just sends the visitor to the library.
func (pc *PagesController) Home(c *gin.Context) {
	c.Redirect(http.StatusFound, "/library")
}

// LibraryPage handles GET /library with the same ?genre= and ?q= filters
// as the JSON listing.
func (pc *PagesController) LibraryPage(c *gin.Context) {
	filter := services.BookFilter{
		Genre: c.Query("genre"),
		Query: c.Query("q"),
	}

	books, err := pc.books.List(filter)
	if err != nil {
		c.String(http.StatusInternalServerError, "failed to load books")
		return
	}
	genres, err := pc.genres.List()
	if err != nil {
		c.String(http.StatusInternalServerError, "failed to load genres")
		return
	}

	c.HTML(http.StatusOK, "library.html", gin.H{
		"Books":  books,
		"Genres": genres,
		"Genre":  filter.Genre,
		"Query":  filter.Query,
	})
}

// DashboardPage handles GET /dashboard.
func (pc *PagesController) DashboardPage(c *gin.Context) {
	books, err := pc.books.List(services.BookFilter{})
	if err != nil {
		c.String(http.StatusInternalServerError, "failed to load books")
		return
	}
	c.HTML(http.StatusOK, "dashboard.html", gin.H{
		"Stats": services.ComputeStats(books),
	})
}

// BookPage handles GET /ui/books/:id.
func (pc *PagesController) BookPage(c *gin.Context) {
	book, err := pc.books.Get(c.Param("id"))
	if errors.Is(err, store.ErrNotFound) {
		c.String(http.StatusNotFound, "book not found")
		return
	}
	if err != nil {
		c.String(http.StatusInternalServerError, "failed to load book")
		return
	}
	c.HTML(http.StatusOK, "book.html", gin.H{"Book": book})
}

// AddBookPage handles GET /ui/books/add.
func (pc *PagesController) AddBookPage(c *gin.Context) {
	genres, err := pc.genres.List()
	if err != nil {
		c.String(http.StatusInternalServerError, "failed to load genres")
		return
	}
	c.HTML(http.StatusOK, "book_form.html", gin.H{
		"Book":     nil,
		"Genres":   genres,
		"Statuses": statusOptions,
	})
}

// EditBookPage handles GET /ui/books/:id/edit.
func (pc *PagesController) EditBookPage(c *gin.Context) {
	book, err := pc.books.Get(c.Param("id"))
	if errors.Is(err, store.ErrNotFound) {
		c.String(http.StatusNotFound, "book not found")
		return
	}
	if err != nil {
		c.String(http.StatusInternalServerError, "failed to load book")
		return
	}
	genres, err := pc.genres.List()
	if err != nil {
		c.String(http.StatusInternalServerError, "failed to load genres")
		return
	}
	c.HTML(http.StatusOK, "book_form.html", gin.H{
		"Book":     book,
		"Genres":   genres,
		"Statuses": statusOptions,
	})
}
