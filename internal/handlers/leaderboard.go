package handlers

import (
	"database/sql"
	"fmt"
	"log"
	"net/http"
	"strconv"

	"sjavs-go/internal/models"
	"sjavs-go/internal/tracing"

	"github.com/gin-gonic/gin"
)

// LeaderboardHandler serves the all-time standings of registered players.
func LeaderboardHandler(db *sql.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, span := tracing.StartSpan(c.Request.Context(), "handlers.LeaderboardHandler")
		defer span.End()

		resp, err := models.BuildLeaderboard(ctx, db)
		if err != nil {
			wrappedErr := fmt.Errorf("BuildLeaderboard failed: %w", err)
			log.Printf("LeaderboardHandler: %v", wrappedErr)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "db error"})
			return
		}
		c.JSON(http.StatusOK, resp)
	}
}

// RecentMatchesHandler lists recently finished rubbers, newest first.
// Accepts optional query parameter 'limit' (default 20, max 100).
func RecentMatchesHandler(db *sql.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		limit := 20
		if s := c.Query("limit"); s != "" {
			if v, err := strconv.Atoi(s); err == nil {
				limit = v
			}
		}
		matches, err := models.ListRecentMatches(db, limit)
		if err != nil {
			log.Printf("RecentMatchesHandler: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "db error"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"items": matches})
	}
}
