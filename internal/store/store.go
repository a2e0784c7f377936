// Package store defines the persistence boundary for books and genres.
//
// Two implementations exist: memorystore (process-lifetime ordered map
// behind a mutex) and sqlitestore (gorm over sqlite). Which one backs the
// running process is decided once at startup from configuration.
package store

import (
	"errors"

	"github.com/pviana/bookshelf/internal/entities"
)

// ErrNotFound is returned by lookups and updates whose target id or name
// does not exist. Absence is never a panic and never a raw driver error.
var ErrNotFound = errors.New("record not found")

// ErrDuplicateKey is returned by inserts whose id collides with an
// existing record.
var ErrDuplicateKey = errors.New("duplicate key")

// BookStore holds book records.
//
// ListBooks returns books in creation-descending order. DeleteBook reports
// absence as (false, nil), not as an error.
type BookStore interface {
	InsertBook(book *entities.Book) (*entities.Book, error)
	FindBook(id string) (*entities.Book, error)
	ListBooks() ([]entities.Book, error)
	UpdateBook(id string, patch BookPatch) (*entities.Book, error)
	DeleteBook(id string) (bool, error)
}

// GenreStore holds genre records. ListGenres returns names in ascending
// order. UpsertGenre is idempotent on an already-normalized name.
type GenreStore interface {
	FindGenre(name string) (*entities.Genre, error)
	ListGenres() ([]string, error)
	UpsertGenre(name string) error
	DeleteGenre(name string) (bool, error)
}

// Store is the full persistence surface used by the services.
type Store interface {
	BookStore
	GenreStore
}

// BookPatch carries partial-update fields. Nil pointers mean "leave the
// stored value alone"; a set pointer overwrites, including with a zero
// value.
type BookPatch struct {
	Title       *string                 `json:"title"`
	Author      *string                 `json:"author"`
	Genre       *string                 `json:"genre"`
	Year        *int                    `json:"year"`
	Pages       *int                    `json:"pages"`
	Rating      *int                    `json:"rating"`
	Synopsis    *string                 `json:"synopsis"`
	Cover       *string                 `json:"cover"`
	Notes       *string                 `json:"notes"`
	Status      *entities.ReadingStatus `json:"status"`
	CurrentPage *int                    `json:"current_page"`
	ISBN        *string                 `json:"isbn"`
}

// IsEmpty reports whether the patch sets no field at all.
func (p BookPatch) IsEmpty() bool {
	return p.Title == nil && p.Author == nil && p.Genre == nil &&
		p.Year == nil && p.Pages == nil && p.Rating == nil &&
		p.Synopsis == nil && p.Cover == nil && p.Notes == nil &&
		p.Status == nil && p.CurrentPage == nil && p.ISBN == nil
}

// Apply merges the set fields of the patch into book.
func (p BookPatch) Apply(book *entities.Book) {
	if p.Title != nil {
		book.Title = *p.Title
	}
	if p.Author != nil {
		book.Author = *p.Author
	}
	if p.Genre != nil {
		book.GenreName = *p.Genre
	}
	if p.Year != nil {
		book.Year = *p.Year
	}
	if p.Pages != nil {
		book.Pages = *p.Pages
	}
	if p.Rating != nil {
		book.Rating = *p.Rating
	}
	if p.Synopsis != nil {
		book.Synopsis = *p.Synopsis
	}
	if p.Cover != nil {
		book.Cover = *p.Cover
	}
	if p.Notes != nil {
		book.Notes = *p.Notes
	}
	if p.Status != nil {
		book.Status = *p.Status
	}
	if p.CurrentPage != nil {
		book.CurrentPage = *p.CurrentPage
	}
	if p.ISBN != nil {
		book.ISBN = *p.ISBN
	}
}
