package entities

import (
	"time"
)

// ReadingStatus is the progress state of a book. Any value may replace any
// other; there is no transition graph.
type ReadingStatus string

const (
	StatusWantToRead ReadingStatus = "WANT_TO_READ"
	StatusReading    ReadingStatus = "READING"
	StatusRead       ReadingStatus = "READ"
	StatusPaused     ReadingStatus = "PAUSED"
	StatusAbandoned  ReadingStatus = "ABANDONED"
)

// Valid reports whether s is one of the enumerated reading statuses.
func (s ReadingStatus) Valid() bool {
	switch s {
	case StatusWantToRead, StatusReading, StatusRead, StatusPaused, StatusAbandoned:
		return true
	}
	return false
}

// Book is a single library item with bibliographic and reading-progress
// fields. The ID is assigned on insert and never changes.
type Book struct {
	ID          string        `gorm:"primaryKey;size:36" json:"id"`
	Title       string        `gorm:"index;size:512" json:"title"`
	Author      string        `gorm:"index;size:256" json:"author"`
	GenreName   string        `gorm:"index;size:100" json:"genre,omitempty"`
	Year        int           `json:"year,omitempty"`
	Pages       int           `json:"pages,omitempty"`
	Rating      int           `json:"rating,omitempty"`
	Synopsis    string        `gorm:"type:text" json:"synopsis,omitempty"`
	Cover       string        `gorm:"size:2048" json:"cover,omitempty"`
	Notes       string        `gorm:"type:text" json:"notes,omitempty"`
	Status      ReadingStatus `gorm:"size:20;default:'WANT_TO_READ'" json:"status"`
	CurrentPage int           `gorm:"default:0" json:"current_page"`
	ISBN        string        `gorm:"index;size:20" json:"isbn,omitempty"`
	Genre       *Genre        `gorm:"foreignKey:GenreName;references:Name" json:"-"`
	CreatedAt   time.Time     `json:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at"`
}

// Genre is a named category referenced by books. Names are stored
// case-normalized (first letter upper, remainder lower) and are unique.
type Genre struct {
	Name      string    `gorm:"primaryKey;size:100" json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

func (Book) TableName() string {
	return "books"
}

func (Genre) TableName() string {
	return "genres"
}
