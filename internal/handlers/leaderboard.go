package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/Abhivamsh/community-backend/internal/config"
	"github.com/Abhivamsh/community-backend/internal/services"

	"github.com/gin-gonic/gin"
)

// LeaderboardHandler handles leaderboard requests
type LeaderboardHandler struct {
	leaderboard *services.LeaderboardService
	cfg         *config.Config
}

// NewLeaderboardHandler creates a new LeaderboardHandler
func NewLeaderboardHandler(leaderboard *services.LeaderboardService, cfg *config.Config) *LeaderboardHandler {
	return &LeaderboardHandler{leaderboard: leaderboard, cfg: cfg}
}

// GetLeaderboard returns the top users by karma earned in the trailing
// window. Defaults come from configuration (24h, top 5); callers can
// narrow or widen with ?hours= and ?limit=.
func (h *LeaderboardHandler) GetLeaderboard(c *gin.Context) {
	window := h.cfg.LeaderboardWindow
	if hoursStr := c.Query("hours"); hoursStr != "" {
		hours, err := strconv.Atoi(hoursStr)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid hours"})
			return
		}
		window = time.Duration(hours) * time.Hour
	}

	limit := h.cfg.LeaderboardLimit
	if limitStr := c.Query("limit"); limitStr != "" {
		var err error
		limit, err = strconv.Atoi(limitStr)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid limit"})
			return
		}
	}

	entries, err := h.leaderboard.GetLeaderboard(c.Request.Context(), window, limit)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"leaderboard": entries})
}
