package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pviana/bookshelf/internal/services"
	"github.com/pviana/bookshelf/internal/viewcache"
)

type GenresController struct {
	genres *services.GenreService
	views  *viewcache.Cache
}

func NewGenresController(genres *services.GenreService, views *viewcache.Cache) *GenresController {
	return &GenresController{genres: genres, views: views}
}

// invalidateGenreViews drops the pages whose genre dropdowns or filters
// would otherwise go stale.
func (gc *GenresController) invalidateGenreViews() {
	gc.views.Invalidate("/library", "/ui/books/")
}

// List handles GET /categories; names come back sorted ascending.
func (gc *GenresController) List(c *gin.Context) {
	genres, err := gc.genres.List()
	if err != nil {
		respondInternalError(c, err, "list genres")
		return
	}
	c.JSON(http.StatusOK, genres)
}

// Create handles POST /categories. The add is idempotent across casings
// and returns the refreshed full list.
func (gc *GenresController) Create(c *gin.Context) {
	var body struct {
		Name string `json:"name"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		respondBadRequest(c, "invalid request body")
		return
	}

	genres, err := gc.genres.Add(body.Name)
	if err != nil {
		var validation services.ValidationError
		if errors.As(err, &validation) {
			respondBadRequest(c, validation.Error())
			return
		}
		respondInternalError(c, err, "add genre")
		return
	}

	gc.invalidateGenreViews()
	respondCreated(c, genres)
}

// Delete handles DELETE /categories/:genre. Gin URL-decodes the path
// parameter, so "Science%20Fiction" arrives as "Science Fiction".
func (gc *GenresController) Delete(c *gin.Context) {
	name := c.Param("genre")

	deleted, err := gc.genres.Delete(name)
	if err != nil {
		respondInternalError(c, err, "delete genre")
		return
	}
	if !deleted {
		respondNotFound(c, "genre "+name)
		return
	}

	gc.invalidateGenreViews()
	c.Status(http.StatusNoContent)
}
