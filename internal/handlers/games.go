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

type gameRequest struct {
	Title    string `json:"title" binding:"required"`
	Platform string `json:"platform" binding:"required"`
	Rating   string `json:"rating" binding:"required"`
	Players  int    `json:"players" binding:"required,min=1"`
}

type gameResponse struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Platform  string    `json:"platform"`
	Rating    string    `json:"rating"`
	Players   int       `json:"players"`
	CoverKey  *string   `json:"coverKey,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func toGameResponse(game models.Game) gameResponse {
	return gameResponse{
		ID:        game.ID,
		Title:     game.Title,
		Platform:  string(game.Platform),
		Rating:    string(game.Rating),
		Players:   game.Players,
		CoverKey:  game.CoverKey,
		CreatedAt: game.CreatedAt,
		UpdatedAt: game.UpdatedAt,
	}
}

func (r gameRequest) toModel(id string) (models.Game, error) {
	platform, err := models.ParsePlatform(r.Platform)
	if err != nil {
		return models.Game{}, err
	}
	rating, err := models.ParseESRBRating(r.Rating)
	if err != nil {
		return models.Game{}, err
	}
	return models.Game{
		ID:       id,
		Title:    r.Title,
		Platform: platform,
		Rating:   rating,
		Players:  r.Players,
	}, nil
}

func (h HandlerSet) CreateGame(c *gin.Context) {
	var req gameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	game, err := req.toModel(ids.New())
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.games.Create(c.Request.Context(), game); err != nil {
		h.log.Error().Err(err).Msg("create game failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create game"})
		return
	}

	created, err := h.games.GetByID(c.Request.Context(), game.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create game"})
		return
	}

	c.JSON(http.StatusOK, toGameResponse(created))
}

func (h HandlerSet) ListGames(c *gin.Context) {
	games, err := h.games.List(c.Request.Context())
	if err != nil {
		h.log.Error().Err(err).Msg("list games failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list games"})
		return
	}

	items := make([]gameResponse, 0, len(games))
	for _, game := range games {
		items = append(items, toGameResponse(game))
	}

	c.JSON(http.StatusOK, gin.H{"items": items})
}

func (h HandlerSet) GetGame(c *gin.Context) {
	game, err := h.games.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrGameNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		h.log.Error().Err(err).Msg("get game failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get game"})
		return
	}

	c.JSON(http.StatusOK, toGameResponse(game))
}

func (h HandlerSet) UpdateGame(c *gin.Context) {
	var req gameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	game, err := req.toModel(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.games.Update(c.Request.Context(), game); err != nil {
		if errors.Is(err, repository.ErrGameNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		h.log.Error().Err(err).Msg("update game failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update game"})
		return
	}

	updated, err := h.games.GetByID(c.Request.Context(), game.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update game"})
		return
	}

	c.JSON(http.StatusOK, toGameResponse(updated))
}

func (h HandlerSet) UploadGameCover(c *gin.Context) {
	id := c.Param("id")
	if _, err := h.games.GetByID(c.Request.Context(), id); err != nil {
		if errors.Is(err, repository.ErrGameNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get game"})
		return
	}

	file, header, err := c.Request.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file required"})
		return
	}
	defer file.Close()

	key, err := h.covers.Upload(c.Request.Context(), "games", id, file, header)
	if err != nil {
		if errors.Is(err, service.ErrUnsupportedCover) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		h.log.Error().Err(err).Str("game_id", id).Msg("cover upload failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to store cover"})
		return
	}

	if err := h.games.SetCoverKey(c.Request.Context(), id, key); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to record cover"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"coverKey": key})
}

func (h HandlerSet) DeleteGame(c *gin.Context) {
	id := c.Param("id")

	game, err := h.games.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrGameNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		h.log.Error().Err(err).Msg("delete game failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete game"})
		return
	}

	if err := h.games.DeleteByID(c.Request.Context(), id); err != nil {
		if errors.Is(err, repository.ErrGameNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		h.log.Error().Err(err).Msg("delete game failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete game"})
		return
	}

	if game.CoverKey != nil {
		if err := h.covers.Remove(c.Request.Context(), *game.CoverKey); err != nil {
			h.log.Warn().Err(err).Str("game_id", id).Msg("cover cleanup failed")
		}
	}

	c.Status(http.StatusNoContent)
}

func (h HandlerSet) DeleteAllGames(c *gin.Context) {
	if err := h.games.DeleteAll(c.Request.Context()); err != nil {
		h.log.Error().Err(err).Msg("delete all games failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete games"})
		return
	}

	c.Status(http.StatusNoContent)
}
