package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/pviana/bookshelf/internal/entities"
	"github.com/pviana/bookshelf/internal/services"
	"github.com/pviana/bookshelf/internal/store"
	"github.com/pviana/bookshelf/internal/viewcache"
)

// FormsController handles the server-side form submissions coming from
// the add/edit pages. Numeric fields are coerced; zero or unparsable
// values count as "absent" and are dropped rather than stored.
type FormsController struct {
	books *services.BookService
	views *viewcache.Cache
}

func NewFormsController(books *services.BookService, views *viewcache.Cache) *FormsController {
	return &FormsController{books: books, views: views}
}

// formInt parses a numeric form field. Unparsable or non-positive input
// is treated as absent.
func formInt(c *gin.Context, field string) int {
	value, err := strconv.Atoi(c.PostForm(field))
	if err != nil || value < 0 {
		return 0
	}
	return value
}

// SaveBook handles POST /ui/books/save: create when the hidden id field
// is empty, patch otherwise, then redirect to the detail view.
func (fc *FormsController) SaveBook(c *gin.Context) {
	id := c.PostForm("id")

	var (
		book *entities.Book
		err  error
	)
	if id == "" {
		book, err = fc.books.Create(services.CreateBookInput{
			Title:       c.PostForm("title"),
			Author:      c.PostForm("author"),
			Genre:       c.PostForm("genre"),
			Year:        formInt(c, "year"),
			Pages:       formInt(c, "pages"),
			Rating:      formInt(c, "rating"),
			Synopsis:    c.PostForm("synopsis"),
			Cover:       c.PostForm("cover"),
			Notes:       c.PostForm("notes"),
			Status:      entities.ReadingStatus(c.PostForm("status")),
			CurrentPage: formInt(c, "current_page"),
			ISBN:        c.PostForm("isbn"),
		})
	} else {
		book, err = fc.books.Update(id, formPatch(c))
	}

	if err != nil {
		var validation services.ValidationError
		switch {
		case errors.As(err, &validation):
			c.String(http.StatusBadRequest, validation.Error())
		case errors.Is(err, store.ErrNotFound):
			c.String(http.StatusNotFound, "book not found")
		default:
			respondInternalError(c, err, "save book")
		}
		return
	}

	fc.views.Invalidate("/library", "/dashboard", "/ui/books/"+book.ID)
	c.Redirect(http.StatusSeeOther, "/ui/books/"+book.ID)
}

// DeleteBook handles POST /ui/books/:id/delete and sends the visitor
// back to the listing.
func (fc *FormsController) DeleteBook(c *gin.Context) {
	id := c.Param("id")

	deleted, err := fc.books.Delete(id)
	if err != nil {
		respondInternalError(c, err, "delete book")
		return
	}
	if !deleted {
		c.String(http.StatusNotFound, "book not found")
		return
	}

	fc.views.Invalidate("/library", "/dashboard", "/ui/books/"+id)
	c.Redirect(http.StatusSeeOther, "/library")
}

// formPatch builds a partial update from the submitted fields. Empty
// strings and absent numerics keep the stored values.
func formPatch(c *gin.Context) store.BookPatch {
	patch := store.BookPatch{}

	setString := func(field string, target **string) {
		if value := c.PostForm(field); value != "" {
			*target = &value
		}
	}
	setInt := func(field string, target **int) {
		if value := formInt(c, field); value > 0 {
			*target = &value
		}
	}

	setString("title", &patch.Title)
	setString("author", &patch.Author)
	setString("genre", &patch.Genre)
	setString("synopsis", &patch.Synopsis)
	setString("cover", &patch.Cover)
	setString("notes", &patch.Notes)
	setString("isbn", &patch.ISBN)
	setInt("year", &patch.Year)
	setInt("pages", &patch.Pages)
	setInt("rating", &patch.Rating)
	setInt("current_page", &patch.CurrentPage)

	if value := c.PostForm("status"); value != "" {
		status := entities.ReadingStatus(value)
		patch.Status = &status
	}

	return patch
}
