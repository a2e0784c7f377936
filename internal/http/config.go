package http

import (
	"github.com/pviana/bookshelf/internal/services"
	"github.com/pviana/bookshelf/internal/viewcache"
)

// Pinger checks connectivity of the backing store, for health reporting.
// The in-memory backend has nothing to ping and passes nil.
type Pinger interface {
	Ping() error
}

// RouterConfig carries all dependencies for NewRouter so controllers can
// be constructed in one place.
type RouterConfig struct {
	Books     *services.BookService
	Genres    *services.GenreService
	ViewCache *viewcache.Cache

	StoreBackend  string
	StorePinger   Pinger
	TemplatesPath string
	CacheEnabled  bool
	Version       string
}
