// Package http wires the gin router: JSON API for books, genres and
// stats, plus the server-rendered pages and their form handlers.
package http

import (
	"html/template"

	"github.com/gin-gonic/gin"
)

// NewRouter creates and configures the HTTP router with all endpoints.
// Page routes go through the view cache middleware when caching is
// enabled; the JSON API always hits the store.
func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())

	tmpl := template.Must(template.ParseGlob(cfg.TemplatesPath + "/*.html"))
	router.SetHTMLTemplate(tmpl)

	books := NewBooksController(cfg.Books, cfg.ViewCache)
	genres := NewGenresController(cfg.Genres, cfg.ViewCache)
	stats := NewStatsController(cfg.Books)
	health := NewHealthController(cfg.StorePinger, cfg.StoreBackend, cfg.Version)
	pages := NewPagesController(cfg.Books, cfg.Genres)
	forms := NewFormsController(cfg.Books, cfg.ViewCache)

	// Health endpoints
	router.GET("/health", health.Status)
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})

	// Books API
	router.GET("/books", books.List)
	router.POST("/books", books.Create)
	router.GET("/books/:id", books.GetByID)
	router.PUT("/books/:id", books.Update)
	router.DELETE("/books/:id", books.Delete)

	// Genres API
	router.GET("/categories", genres.List)
	router.POST("/categories", genres.Create)
	router.DELETE("/categories/:genre", genres.Delete)

	// Stats API
	router.GET("/api/stats", stats.Stats)

	// Server-rendered pages, cached until a write invalidates them
	pageRoutes := router.Group("/")
	if cfg.CacheEnabled {
		pageRoutes.Use(cfg.ViewCache.Handler())
	}
	pageRoutes.GET("/", pages.Home)
	pageRoutes.GET("/library", pages.LibraryPage)
	pageRoutes.GET("/dashboard", pages.DashboardPage)
	pageRoutes.GET("/ui/books/add", pages.AddBookPage)
	pageRoutes.GET("/ui/books/:id", pages.BookPage)
	pageRoutes.GET("/ui/books/:id/edit", pages.EditBookPage)

	// Form submissions
	router.POST("/ui/books/save", forms.SaveBook)
	router.POST("/ui/books/:id/delete", forms.DeleteBook)

	return router
}
