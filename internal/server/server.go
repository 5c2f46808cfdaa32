package server

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"lottery-history/internal/history"
	"lottery-history/internal/models"
)

// Server serves the latest draw-history snapshot over HTTP. The snapshot is
// re-read from the store on every request, so a fresh fetcher run is visible
// without a restart.
type Server struct {
	store history.Store
	log   zerolog.Logger
}

// New creates a Server backed by the given snapshot store.
func New(store history.Store, log zerolog.Logger) *Server {
	return &Server{store: store, log: log}
}

// Router builds the gin engine with all routes registered.
func (s *Server) Router() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(RequestID())

	router.GET("/", s.handleRoot)
	router.GET("/health", s.handleHealth)
	router.GET("/lottery", s.handleLottery)

	return router
}

func (s *Server) handleRoot(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Welcome to the Lottery History API"})
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "healthy", "message": "Lottery History API is running"})
}

// handleLottery serves the full snapshot, one game's draws, or one game's
// draws on a single date, depending on the query parameters.
func (s *Server) handleLottery(c *gin.Context) {
	hist, err := s.store.Load()
	if err != nil {
		s.log.Error().Err(err).Msg("load history snapshot")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load lottery history"})
		return
	}

	game := strings.TrimSpace(c.Query("game"))
	if game == "" {
		c.JSON(http.StatusOK, hist)
		return
	}

	entries, ok := hist.Game(game)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": fmt.Sprintf("Game '%s' not found", game)})
		return
	}
	if entries == nil {
		entries = []models.Draw{}
	}

	date := c.Query("date")
	if date == "" {
		c.JSON(http.StatusOK, entries)
		return
	}

	// Literal string match on the stored date, no normalization.
	filtered := make([]models.Draw, 0)
	for _, draw := range entries {
		if draw.Date == date {
			filtered = append(filtered, draw)
		}
	}
	if len(filtered) == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": fmt.Sprintf("No %s draws found on %s", game, date)})
		return
	}
	c.JSON(http.StatusOK, filtered)
}
