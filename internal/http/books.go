package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pviana/bookshelf/internal/services"
	"github.com/pviana/bookshelf/internal/store"
	"github.com/pviana/bookshelf/internal/viewcache"
)

type BooksController struct {
	books *services.BookService
	views *viewcache.Cache
}

func NewBooksController(books *services.BookService, views *viewcache.Cache) *BooksController {
	return &BooksController{books: books, views: views}
}

// invalidateBookViews drops every cached page that lists or shows books.
// The dashboard aggregates over all books, so it always goes too.
func (bc *BooksController) invalidateBookViews(id string) {
	bc.views.Invalidate("/library", "/dashboard", "/ui/books/"+id)
}

// List handles GET /books with optional ?genre= and ?q= filters.
// An empty result is a 200 with an empty array, never an error.
func (bc *BooksController) List(c *gin.Context) {
	filter := services.BookFilter{
		Genre: c.Query("genre"),
		Query: c.Query("q"),
	}
	books, err := bc.books.List(filter)
	if err != nil {
		respondInternalError(c, err, "list books")
		return
	}
	c.JSON(http.StatusOK, books)
}

// Create handles POST /books.
func (bc *BooksController) Create(c *gin.Context) {
	var input services.CreateBookInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respondBadRequest(c, "invalid request body")
		return
	}

	book, err := bc.books.Create(input)
	if err != nil {
		var validation services.ValidationError
		if errors.As(err, &validation) {
			respondBadRequest(c, validation.Error())
			return
		}
		respondInternalError(c, err, "create book")
		return
	}

	bc.invalidateBookViews(book.ID)
	respondCreated(c, book)
}

// GetByID handles GET /books/:id.
func (bc *BooksController) GetByID(c *gin.Context) {
	book, err := bc.books.Get(c.Param("id"))
	if errors.Is(err, store.ErrNotFound) {
		respondNotFound(c, "book")
		return
	}
	if err != nil {
		respondInternalError(c, err, "get book")
		return
	}
	c.JSON(http.StatusOK, book)
}

// Update handles PUT /books/:id with partial-update semantics: fields
// absent from the body keep their stored value.
func (bc *BooksController) Update(c *gin.Context) {
	id := c.Param("id")

	var patch store.BookPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		respondBadRequest(c, "invalid request body")
		return
	}
	if patch.IsEmpty() {
		respondBadRequest(c, "request body is empty")
		return
	}

	book, err := bc.books.Update(id, patch)
	if err != nil {
		var validation services.ValidationError
		switch {
		case errors.As(err, &validation):
			respondBadRequest(c, validation.Error())
		case errors.Is(err, store.ErrNotFound):
			respondNotFound(c, "book")
		default:
			respondInternalError(c, err, "update book")
		}
		return
	}

	bc.invalidateBookViews(id)
	c.JSON(http.StatusOK, book)
}

// Delete handles DELETE /books/:id. A missing target is an explicit 404,
// not a silent 204.
func (bc *BooksController) Delete(c *gin.Context) {
	id := c.Param("id")

	deleted, err := bc.books.Delete(id)
	if err != nil {
		respondInternalError(c, err, "delete book")
		return
	}
	if !deleted {
		respondNotFound(c, "book")
		return
	}

	bc.invalidateBookViews(id)
	c.Status(http.StatusNoContent)
}
