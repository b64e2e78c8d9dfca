package handlers

import (
	"database/sql"

	"sjavs-go/internal/config"
	"sjavs-go/internal/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterAuthRoutes wires account endpoints.
func RegisterAuthRoutes(rg *gin.RouterGroup, db *sql.DB, cfg config.Config) {
	rg.POST("/auth/register", RegisterHandler(db, cfg))
	rg.POST("/auth/login", LoginHandler(db, cfg))
	rg.GET("/auth/me", middleware.RequireAuth(cfg), MeHandler(db))
}

// RegisterTableRoutes wires the live-table endpoints. Joining is open to
// guests; every other endpoint authenticates with the seat token issued at
// join time.
func RegisterTableRoutes(rg *gin.RouterGroup, m *TableManager, cfg config.Config) {
	rg.POST("/tables/join", middleware.OptionalAuth(cfg), JoinTableHandler(m, cfg))
	rg.POST("/tables/command", CommandHandler(m, cfg))
	rg.GET("/tables/updates", UpdatesHandler(m, cfg))
	rg.GET("/tables/state", StateHandler(m, cfg))
	rg.POST("/tables/bots", BotsHandler(m, cfg))
}

// RegisterStatsRoutes wires leaderboard and match-history endpoints.
func RegisterStatsRoutes(rg *gin.RouterGroup, db *sql.DB) {
	rg.GET("/leaderboard", LeaderboardHandler(db))
	rg.GET("/matches", RecentMatchesHandler(db))
}
