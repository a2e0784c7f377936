package services

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/pviana/bookshelf/internal/store"
)

type GenreService struct {
	store store.GenreStore
}

func NewGenreService(s store.GenreStore) *GenreService {
	return &GenreService{store: s}
}

// NormalizeGenre maps a raw genre name to its stored form: first letter
// upper-cased, remainder lower-cased, so "fantasy" and "FANTASY" both
// become "Fantasy".
func NormalizeGenre(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return ""
	}
	first, size := utf8.DecodeRuneInString(name)
	return string(unicode.ToUpper(first)) + strings.ToLower(name[size:])
}

// List returns all genre names in ascending order.
func (s *GenreService) List() ([]string, error) {
	return s.store.ListGenres()
}

// Add normalizes and upserts the genre, then returns the refreshed full
// list. Adding an existing genre (in any casing) is a no-op.
func (s *GenreService) Add(name string) ([]string, error) {
	normalized := NormalizeGenre(name)
	if normalized == "" {
		return nil, ValidationError("genre name is required")
	}
	if err := s.store.UpsertGenre(normalized); err != nil {
		return nil, err
	}
	return s.store.ListGenres()
}

// Delete removes the genre by its exact stored name. Absence is
// (false, nil).
func (s *GenreService) Delete(name string) (bool, error) {
	return s.store.DeleteGenre(name)
}
