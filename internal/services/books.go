// Package services implements the book and genre operations on top of the
// store interfaces. Services hold no state of their own; every call is a
// synchronous pass-through to the store plus the domain rules that the
// store does not know about (required fields, status values, page bounds,
// genre resolution).
package services

import (
	"errors"
	"strings"

	"github.com/pviana/bookshelf/internal/entities"
	"github.com/pviana/bookshelf/internal/store"
)

// CreateBookInput carries the fields accepted on book creation.
type CreateBookInput struct {
	Title       string                 `json:"title"`
	Author      string                 `json:"author"`
	Genre       string                 `json:"genre"`
	Year        int                    `json:"year"`
	Pages       int                    `json:"pages"`
	Rating      int                    `json:"rating"`
	Synopsis    string                 `json:"synopsis"`
	Cover       string                 `json:"cover"`
	Notes       string                 `json:"notes"`
	Status      entities.ReadingStatus `json:"status"`
	CurrentPage int                    `json:"current_page"`
	ISBN        string                 `json:"isbn"`
}

// BookFilter narrows a listing. Genre matches the stored genre name
// exactly; Query matches case-insensitively as a substring of title or
// author.
type BookFilter struct {
	Genre string
	Query string
}

type BookService struct {
	store store.Store
}

func NewBookService(s store.Store) *BookService {
	return &BookService{store: s}
}

// Create validates the input, applies defaults (status WANT_TO_READ,
// current page 0) and inserts the book. A named genre must already exist.
//
// Genre resolution and the insert are two separate store calls, not one
// transaction; a genre deleted between them fails only in the relational
// backend's foreign key, if enabled.
func (s *BookService) Create(input CreateBookInput) (*entities.Book, error) {
	if strings.TrimSpace(input.Title) == "" || strings.TrimSpace(input.Author) == "" {
		return nil, ValidationError("title and author are required")
	}

	if input.Status == "" {
		input.Status = entities.StatusWantToRead
	}

	book := &entities.Book{
		Title:       input.Title,
		Author:      input.Author,
		GenreName:   input.Genre,
		Year:        input.Year,
		Pages:       input.Pages,
		Rating:      input.Rating,
		Synopsis:    input.Synopsis,
		Cover:       input.Cover,
		Notes:       input.Notes,
		Status:      input.Status,
		CurrentPage: input.CurrentPage,
		ISBN:        input.ISBN,
	}

	if err := validateBook(book); err != nil {
		return nil, err
	}
	if err := s.resolveGenre(book.GenreName); err != nil {
		return nil, err
	}

	return s.store.InsertBook(book)
}

// List returns all books matching the filter, newest first.
func (s *BookService) List(filter BookFilter) ([]entities.Book, error) {
	books, err := s.store.ListBooks()
	if err != nil {
		return nil, err
	}

	if filter.Genre == "" && filter.Query == "" {
		return books, nil
	}

	query := strings.ToLower(filter.Query)
	filtered := make([]entities.Book, 0, len(books))
	for _, book := range books {
		if filter.Genre != "" && book.GenreName != filter.Genre {
			continue
		}
		if query != "" &&
			!strings.Contains(strings.ToLower(book.Title), query) &&
			!strings.Contains(strings.ToLower(book.Author), query) {
			continue
		}
		filtered = append(filtered, book)
	}
	return filtered, nil
}

// Get returns the book or store.ErrNotFound.
func (s *BookService) Get(id string) (*entities.Book, error) {
	return s.store.FindBook(id)
}

// Update merges the patch into the stored book and re-validates the merged
// record. A missing target surfaces as store.ErrNotFound.
func (s *BookService) Update(id string, patch store.BookPatch) (*entities.Book, error) {
	existing, err := s.store.FindBook(id)
	if err != nil {
		return nil, err
	}

	merged := *existing
	patch.Apply(&merged)

	if err := validateBook(&merged); err != nil {
		return nil, err
	}
	if patch.Genre != nil {
		if err := s.resolveGenre(merged.GenreName); err != nil {
			return nil, err
		}
	}

	return s.store.UpdateBook(id, patch)
}

// Delete removes the book. Absence is (false, nil), not an error.
func (s *BookService) Delete(id string) (bool, error) {
	return s.store.DeleteBook(id)
}

// resolveGenre checks that a non-empty genre name exists in the store.
func (s *BookService) resolveGenre(name string) error {
	if name == "" {
		return nil
	}
	_, err := s.store.FindGenre(name)
	if errors.Is(err, store.ErrNotFound) {
		return ErrGenreMissing
	}
	return err
}

func validateBook(book *entities.Book) error {
	if strings.TrimSpace(book.Title) == "" || strings.TrimSpace(book.Author) == "" {
		return ValidationError("title and author are required")
	}
	if !book.Status.Valid() {
		return ValidationError("unknown reading status: " + string(book.Status))
	}
	if book.Rating != 0 && (book.Rating < 1 || book.Rating > 5) {
		return ValidationError("rating must be between 1 and 5")
	}
	if book.CurrentPage < 0 {
		return ValidationError("current page cannot be negative")
	}
	if book.Pages > 0 && book.CurrentPage > book.Pages {
		return ValidationError("current page cannot exceed total pages")
	}
	return nil
}
