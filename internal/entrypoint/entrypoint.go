package entrypoint

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/pviana/bookshelf/internal/config"
	http_controllers "github.com/pviana/bookshelf/internal/http"
	"github.com/pviana/bookshelf/internal/services"
	"github.com/pviana/bookshelf/internal/store"
	"github.com/pviana/bookshelf/internal/store/memorystore"
	"github.com/pviana/bookshelf/internal/store/sqlitestore"
	"github.com/pviana/bookshelf/internal/viewcache"
)

// NewStore builds the entity store the configuration selects. The second
// return value closes the store on shutdown; it is a no-op for the
// in-memory backend.
func NewStore(cfg *config.Config) (store.Store, func() error, error) {
	switch cfg.Store.Backend {
	case config.StoreBackendMemory:
		log.Printf("Using in-memory store (state is lost on shutdown)")
		return memorystore.New(), func() error { return nil }, nil
	case config.StoreBackendSQLite:
		s, err := sqlitestore.New(cfg.Store.DatabasePath)
		if err != nil {
			return nil, nil, err
		}
		return s, s.Close, nil
	default:
		return nil, nil, fmt.Errorf("unknown store backend %q", cfg.Store.Backend)
	}
}

func Serve(router *gin.Engine, cfg *config.Config) {
	timeout := time.Duration(cfg.Global.ShutdownTimeoutInSeconds) * time.Second

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%d", cfg.HTTP.Host, cfg.HTTP.Port),
		Handler: router,
	}

	go func() {
		log.Printf("Starting server at %s:%d", cfg.HTTP.Host, cfg.HTTP.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s", err)
		}
	}()

	// Graceful shutdown on SIGINT/SIGTERM
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Printf("Shutdown Server, waiting %v before killing", timeout)

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server Shutdown:", err)
	}

	log.Println("Server exiting")
}

func Run(cfg *config.Config, version string) {
	log.Printf("Starting BookShelf v%s", version)

	entityStore, closeStore, err := NewStore(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize store: %v", err)
	}
	defer func() {
		if err := closeStore(); err != nil {
			log.Printf("Error closing store: %v", err)
		}
	}()

	bookService := services.NewBookService(entityStore)
	genreService := services.NewGenreService(entityStore)
	views := viewcache.New(cfg.ViewCache.TTL)

	var pinger http_controllers.Pinger
	if s, ok := entityStore.(*sqlitestore.Store); ok {
		pinger = s
	}

	router := http_controllers.NewRouter(http_controllers.RouterConfig{
		Books:         bookService,
		Genres:        genreService,
		ViewCache:     views,
		StoreBackend:  string(cfg.Store.Backend),
		StorePinger:   pinger,
		TemplatesPath: cfg.UI.TemplatesPath,
		CacheEnabled:  cfg.ViewCache.Enabled,
		Version:       version,
	})

	Serve(router, cfg)
}
