package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pviana/bookshelf/internal/services"
)

type StatsController struct {
	books *services.BookService
}

func NewStatsController(books *services.BookService) *StatsController {
	return &StatsController{books: books}
}

// Stats handles GET /api/stats: one linear pass over the full book list.
func (sc *StatsController) Stats(c *gin.Context) {
	books, err := sc.books.List(services.BookFilter{})
	if err != nil {
		respondInternalError(c, err, "compute stats")
		return
	}
	c.IndentedJSON(http.StatusOK, services.ComputeStats(books))
}
