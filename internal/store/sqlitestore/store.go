// Package sqlitestore implements the store interfaces on a sqlite database
// through gorm. One *gorm.DB (its connection pool) is created at process
// start and shared by every request. Each operation is a single statement;
// there are no composed multi-statement transactions.
package sqlitestore

import (
	"errors"
	"fmt"
	"log"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/pviana/bookshelf/internal/entities"
	"github.com/pviana/bookshelf/internal/store"
)

type Store struct {
	db *gorm.DB
}

var _ store.Store = (*Store)(nil)

// New opens (or creates) the sqlite database at dbPath and migrates the
// book and genre tables.
func New(dbPath string) (*Store, error) {
	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := db.AutoMigrate(&entities.Genre{}, &entities.Book{}); err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	log.Printf("Database initialized at %s", dbPath)

	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// Ping checks the underlying connection, for health reporting.
func (s *Store) Ping() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}

func (s *Store) InsertBook(book *entities.Book) (*entities.Book, error) {
	if book.ID == "" {
		book.ID = uuid.NewString()
	}

	var existing entities.Book
	err := s.db.Select("id").Where("id = ?", book.ID).First(&existing).Error
	if err == nil {
		return nil, store.ErrDuplicateKey
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	if err := s.db.Create(book).Error; err != nil {
		return nil, err
	}
	return book, nil
}

func (s *Store) FindBook(id string) (*entities.Book, error) {
	var book entities.Book
	err := s.db.Where("id = ?", id).First(&book).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, store.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &book, nil
}

func (s *Store) ListBooks() ([]entities.Book, error) {
	var books []entities.Book
	err := s.db.Order("created_at DESC").Find(&books).Error
	return books, err
}

func (s *Store) UpdateBook(id string, patch store.BookPatch) (*entities.Book, error) {
	book, err := s.FindBook(id)
	if err != nil {
		return nil, err
	}

	patch.Apply(book)
	book.ID = id // the identifier is immutable

	if err := s.db.Save(book).Error; err != nil {
		return nil, err
	}
	return book, nil
}

func (s *Store) DeleteBook(id string) (bool, error) {
	result := s.db.Where("id = ?", id).Delete(&entities.Book{})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (s *Store) FindGenre(name string) (*entities.Genre, error) {
	var genre entities.Genre
	err := s.db.Where("name = ?", name).First(&genre).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, store.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &genre, nil
}

func (s *Store) ListGenres() ([]string, error) {
	var genres []entities.Genre
	if err := s.db.Order("name ASC").Find(&genres).Error; err != nil {
		return nil, err
	}
	names := make([]string, 0, len(genres))
	for _, genre := range genres {
		names = append(names, genre.Name)
	}
	return names, nil
}

func (s *Store) UpsertGenre(name string) error {
	var existing entities.Genre
	err := s.db.Where("name = ?", name).First(&existing).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return s.db.Create(&entities.Genre{Name: name}).Error
	}
	return err
}

func (s *Store) DeleteGenre(name string) (bool, error) {
	result := s.db.Where("name = ?", name).Delete(&entities.Genre{})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}
