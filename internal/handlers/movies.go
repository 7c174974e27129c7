package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"kellum/api/internal/ids"
	"kellum/api/internal/models"
	"kellum/api/internal/repository"
	"kellum/api/internal/service"
)

type movieRequest struct {
	Title  string `json:"title" binding:"required"`
	Format string `json:"format" binding:"required"`
	Rating string `json:"rating" binding:"required"`
}

type movieResponse struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Format    string    `json:"format"`
	Rating    string    `json:"rating"`
	CoverKey  *string   `json:"coverKey,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func toMovieResponse(movie models.Movie) movieResponse {
	return movieResponse{
		ID:        movie.ID,
		Title:     movie.Title,
		Format:    string(movie.Format),
		Rating:    string(movie.Rating),
		CoverKey:  movie.CoverKey,
		CreatedAt: movie.CreatedAt,
		UpdatedAt: movie.UpdatedAt,
	}
}

func (r movieRequest) toModel(id string) (models.Movie, error) {
	format, err := models.ParseMovieFormat(r.Format)
	if err != nil {
		return models.Movie{}, err
	}
	rating, err := models.ParseMPAARating(r.Rating)
	if err != nil {
		return models.Movie{}, err
	}
	return models.Movie{
		ID:     id,
		Title:  r.Title,
		Format: format,
		Rating: rating,
	}, nil
}

func (h HandlerSet) CreateMovie(c *gin.Context) {
	var req movieRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	movie, err := req.toModel(ids.New())
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.movies.Create(c.Request.Context(), movie); err != nil {
		h.log.Error().Err(err).Msg("create movie failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create movie"})
		return
	}

	created, err := h.movies.GetByID(c.Request.Context(), movie.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create movie"})
		return
	}

	c.JSON(http.StatusOK, toMovieResponse(created))
}

func (h HandlerSet) ListMovies(c *gin.Context) {
	movies, err := h.movies.List(c.Request.Context())
	if err != nil {
		h.log.Error().Err(err).Msg("list movies failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list movies"})
		return
	}

	items := make([]movieResponse, 0, len(movies))
	for _, movie := range movies {
		items = append(items, toMovieResponse(movie))
	}

	c.JSON(http.StatusOK, gin.H{"items": items})
}

func (h HandlerSet) GetMovie(c *gin.Context) {
	movie, err := h.movies.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrMovieNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		h.log.Error().Err(err).Msg("get movie failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get movie"})
		return
	}

	c.JSON(http.StatusOK, toMovieResponse(movie))
}

func (h HandlerSet) UpdateMovie(c *gin.Context) {
	var req movieRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	movie, err := req.toModel(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.movies.Update(c.Request.Context(), movie); err != nil {
		if errors.Is(err, repository.ErrMovieNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		h.log.Error().Err(err).Msg("update movie failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update movie"})
		return
	}

	updated, err := h.movies.GetByID(c.Request.Context(), movie.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update movie"})
		return
	}

	c.JSON(http.StatusOK, toMovieResponse(updated))
}

func (h HandlerSet) UploadMovieCover(c *gin.Context) {
	id := c.Param("id")
	if _, err := h.movies.GetByID(c.Request.Context(), id); err != nil {
		if errors.Is(err, repository.ErrMovieNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get movie"})
		return
	}

	file, header, err := c.Request.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file required"})
		return
	}
	defer file.Close()

	key, err := h.covers.Upload(c.Request.Context(), "movies", id, file, header)
	if err != nil {
		if errors.Is(err, service.ErrUnsupportedCover) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		h.log.Error().Err(err).Str("movie_id", id).Msg("cover upload failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to store cover"})
		return
	}

	if err := h.movies.SetCoverKey(c.Request.Context(), id, key); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to record cover"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"coverKey": key})
}

func (h HandlerSet) DeleteMovie(c *gin.Context) {
	id := c.Param("id")

	movie, err := h.movies.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrMovieNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		h.log.Error().Err(err).Msg("delete movie failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete movie"})
		return
	}

	if err := h.movies.DeleteByID(c.Request.Context(), id); err != nil {
		if errors.Is(err, repository.ErrMovieNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		h.log.Error().Err(err).Msg("delete movie failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete movie"})
		return
	}

	if movie.CoverKey != nil {
		if err := h.covers.Remove(c.Request.Context(), *movie.CoverKey); err != nil {
			h.log.Warn().Err(err).Str("movie_id", id).Msg("cover cleanup failed")
		}
	}

	c.Status(http.StatusNoContent)
}

func (h HandlerSet) DeleteAllMovies(c *gin.Context) {
	if err := h.movies.DeleteAll(c.Request.Context()); err != nil {
		h.log.Error().Err(err).Msg("delete all movies failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete movies"})
		return
	}

	c.Status(http.StatusNoContent)
}
