package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"kellum/api/internal/clock"
	"kellum/api/internal/config"
	"kellum/api/internal/middleware"
	"kellum/api/internal/repository"
	"kellum/api/internal/service"
	"kellum/api/internal/storage"
)

type HandlerSet struct {
	log    zerolog.Logger
	cfg    *config.AppConfig
	auth   *service.AuthService
	covers *service.CoverService
	db     *pgxpool.Pool
	cache  *redis.Client
	games  *repository.GameRepository
	movies *repository.MovieRepository
}

func NewHandlerSet(log zerolog.Logger, db *pgxpool.Pool, cache *redis.Client, store *storage.ObjectStore, cfg *config.AppConfig) HandlerSet {
	userRepo := repository.NewUserRepository(db)
	sessionRepo := repository.NewSessionRepository(db)
	gameRepo := repository.NewGameRepository(db)
	movieRepo := repository.NewMovieRepository(db)

	clk := clock.NewSystem(cfg.Security.SessionTTL)
	auth := service.NewAuthService(userRepo, sessionRepo, clk, log)
	covers := service.NewCoverService(store, log)

	return HandlerSet{
		log:    log,
		cfg:    cfg,
		auth:   auth,
		covers: covers,
		db:     db,
		cache:  cache,
		games:  gameRepo,
		movies: movieRepo,
	}
}

// Register mounts all routes. Catalog reads are public; every mutating
// route sits behind the session gate, and behind the signature check
// when that is switched on.
func (h HandlerSet) Register(router *gin.RouterGroup) {
	router.GET("/healthz", h.Health)

	v1 := router.Group("/v1")

	auth := v1.Group("/auth")
	auth.POST("/register", h.RegisterUser)
	auth.POST("/login", h.Login)

	authProtected := v1.Group("/auth")
	authProtected.Use(h.gate()...)
	authProtected.POST("/logout", h.Logout)
	authProtected.GET("/me", h.Me)

	games := v1.Group("/games")
	games.GET("", h.ListGames)
	games.GET("/:id", h.GetGame)

	gamesProtected := v1.Group("/games")
	gamesProtected.Use(h.gate()...)
	gamesProtected.POST("", h.CreateGame)
	gamesProtected.PUT("/:id", h.UpdateGame)
	gamesProtected.PUT("/:id/cover", h.UploadGameCover)
	gamesProtected.DELETE("/:id", h.DeleteGame)
	gamesProtected.DELETE("", h.DeleteAllGames)

	movies := v1.Group("/movies")
	movies.GET("", h.ListMovies)
	movies.GET("/:id", h.GetMovie)

	moviesProtected := v1.Group("/movies")
	moviesProtected.Use(h.gate()...)
	moviesProtected.POST("", h.CreateMovie)
	moviesProtected.PUT("/:id", h.UpdateMovie)
	moviesProtected.PUT("/:id/cover", h.UploadMovieCover)
	moviesProtected.DELETE("/:id", h.DeleteMovie)
	moviesProtected.DELETE("", h.DeleteAllMovies)
}

func (h HandlerSet) gate() []gin.HandlerFunc {
	chain := []gin.HandlerFunc{middleware.Auth(h.auth)}
	if h.cfg.Security.SignatureEnabled {
		chain = append(chain, middleware.Signature(h.cfg, h.cache))
	}
	return chain
}
