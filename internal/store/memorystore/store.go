// Package memorystore implements the store interfaces on process-wide
// in-memory maps. State lives for the process lifetime only; a single
// mutex serialises every operation, so concurrent request handlers see
// each other's writes immediately with no isolation.
package memorystore

import (
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/pviana/bookshelf/internal/entities"
	"github.com/pviana/bookshelf/internal/store"
)

// Store keeps books in a map keyed by id plus an insertion-order slice so
// listing can run creation-descending without timestamp comparisons.
type Store struct {
	mu     sync.Mutex
	books  map[string]entities.Book
	order  []string // book ids, oldest first
	genres map[string]entities.Genre
}

var _ store.Store = (*Store)(nil)

func New() *Store {
	return &Store{
		books:  make(map[string]entities.Book),
		genres: make(map[string]entities.Genre),
	}
}

func (s *Store) InsertBook(book *entities.Book) (*entities.Book, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if book.ID == "" {
		book.ID = uuid.NewString()
	}
	if _, exists := s.books[book.ID]; exists {
		return nil, store.ErrDuplicateKey
	}

	now := time.Now()
	book.CreatedAt = now
	book.UpdatedAt = now

	s.books[book.ID] = *book
	s.order = append(s.order, book.ID)

	stored := s.books[book.ID]
	return &stored, nil
}

func (s *Store) FindBook(id string) (*entities.Book, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	book, ok := s.books[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	return &book, nil
}

func (s *Store) ListBooks() ([]entities.Book, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	books := make([]entities.Book, 0, len(s.order))
	for i := len(s.order) - 1; i >= 0; i-- {
		books = append(books, s.books[s.order[i]])
	}
	return books, nil
}

func (s *Store) UpdateBook(id string, patch store.BookPatch) (*entities.Book, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	book, ok := s.books[id]
	if !ok {
		return nil, store.ErrNotFound
	}

	patch.Apply(&book)
	book.ID = id // the identifier is immutable
	book.UpdatedAt = time.Now()
	s.books[id] = book

	return &book, nil
}

func (s *Store) DeleteBook(id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.books[id]; !ok {
		return false, nil
	}
	delete(s.books, id)
	for i, bookID := range s.order {
		if bookID == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return true, nil
}

func (s *Store) FindGenre(name string) (*entities.Genre, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	genre, ok := s.genres[name]
	if !ok {
		return nil, store.ErrNotFound
	}
	return &genre, nil
}

func (s *Store) ListGenres() ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	names := make([]string, 0, len(s.genres))
	for name := range s.genres {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

func (s *Store) UpsertGenre(name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.genres[name]; ok {
		return nil
	}
	s.genres[name] = entities.Genre{Name: name, CreatedAt: time.Now()}
	return nil
}

func (s *Store) DeleteGenre(name string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.genres[name]; !ok {
		return false, nil
	}
	delete(s.genres, name)
	return true, nil
}
