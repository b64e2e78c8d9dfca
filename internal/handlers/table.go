package handlers

import (
	"fmt"
	"net/http"
	"strings"

	"sjavs-go/internal/auth"
	"sjavs-go/internal/config"
	"sjavs-go/internal/game/sjavs"
	"sjavs-go/internal/models"
	"sjavs-go/internal/tracing"

	"github.com/gin-gonic/gin"
)

type joinTableRequest struct {
	Name  string `json:"name"`
	Table string `json:"table"`
}

type joinTableResponse struct {
	Token string `json:"token"`
	Seat  int    `json:"seat"`
	Table string `json:"table"`
}

// JoinTableHandler seats a player and issues the seat token used by every
// subsequent table request. Guests join with just a display name; logged-in
// accounts get their results recorded under their user id.
func JoinTableHandler(m *TableManager, cfg config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		_, span := tracing.StartSpan(c.Request.Context(), "handlers.JoinTableHandler")
		defer span.End()

		var req joinTableRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			writeAPIError(c, models.ErrInvalidJSON)
			return
		}
		req.Name = strings.TrimSpace(req.Name)
		if req.Name == "" {
			writeAPIError(c, models.ErrEmptyName)
			return
		}

		uid, _ := userIDFromContext(c)
		tableName := strings.TrimSpace(req.Table)
		if tableName == "" {
			tableName = DefaultTableName
		}
		table := m.GetOrCreate(tableName)

		seat, err := table.Join(req.Name, uid, false)
		if err != nil {
			writeAPIError(c, err)
			return
		}

		token, err := auth.GenerateSeatToken(tableName, seat, req.Name, uid, cfg)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "token error"})
			return
		}
		c.JSON(http.StatusOK, joinTableResponse{Token: token, Seat: seat, Table: tableName})
	}
}

type commandRequest struct {
	Command string `json:"command"`
}

// CommandHandler runs one protocol line for the token's seat and returns the
// table's reply verbatim.
func CommandHandler(m *TableManager, cfg config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		_, span := tracing.StartSpan(c.Request.Context(), "handlers.CommandHandler")
		defer span.End()

		table, seat, err := seatSession(c, m, cfg)
		if err != nil {
			return
		}

		var req commandRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			writeAPIError(c, models.ErrInvalidJSON)
			return
		}
		line := strings.TrimSpace(req.Command)
		if line == "" {
			writeAPIError(c, models.ErrEmptyCommand)
			return
		}

		reply := table.HandleLine(seat, line)
		c.JSON(http.StatusOK, gin.H{"reply": reply})
	}
}

// UpdatesHandler drains the seat's mailbox. Equivalent to the GU line command.
func UpdatesHandler(m *TableManager, cfg config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		table, seat, err := seatSession(c, m, cfg)
		if err != nil {
			return
		}
		reply := table.Process(seat, sjavs.UpdatesCommand{})
		c.JSON(http.StatusOK, gin.H{"updates": reply})
	}
}

// StateHandler returns the seat's structured table snapshot.
func StateHandler(m *TableManager, cfg config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		table, seat, err := seatSession(c, m, cfg)
		if err != nil {
			return
		}
		snap, err := table.SnapshotFor(seat)
		if err != nil {
			writeAPIError(c, err)
			return
		}
		c.JSON(http.StatusOK, snap)
	}
}

type botsRequest struct {
	Count *int `json:"count"`
}

// BotsHandler fills the table's empty seats with bots.
func BotsHandler(m *TableManager, cfg config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		table, seat, err := seatSession(c, m, cfg)
		if err != nil {
			return
		}
		var req botsRequest
		_ = c.ShouldBindJSON(&req)

		reply := table.Process(seat, sjavs.BotsCommand{Requested: req.Count})
		c.JSON(http.StatusOK, gin.H{"reply": reply})
	}
}

// seatSession resolves the request's seat token against the live table. A
// token whose seat is empty or occupied by someone else is stale: the table
// was reset since the token was issued, so the client must rejoin.
func seatSession(c *gin.Context, m *TableManager, cfg config.Config) (*sjavs.Table, int, error) {
	token := bearerToken(c)
	if token == "" {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing token"})
		return nil, 0, fmt.Errorf("missing token")
	}
	claims, err := auth.ParseAndValidateToken(token, cfg)
	if err != nil || claims.Seat < 1 || claims.Seat > 4 || claims.Table == "" {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
		return nil, 0, fmt.Errorf("invalid token")
	}

	table, ok := m.Get(claims.Table)
	if !ok {
		c.AbortWithStatusJSON(http.StatusGone, gin.H{"error": "session reset; rejoin the table"})
		return nil, 0, sjavs.ErrStaleSession
	}
	name, occupied := table.SeatName(claims.Seat)
	if !occupied || name != claims.Username {
		resp := gin.H{"error": "session reset; rejoin the table"}
		if notice := table.ResetNotice(); notice != "" {
			resp["notice"] = notice
		}
		c.AbortWithStatusJSON(http.StatusGone, resp)
		return nil, 0, sjavs.ErrStaleSession
	}
	return table, claims.Seat, nil
}

func bearerToken(c *gin.Context) string {
	authz := c.GetHeader("Authorization")
	parts := strings.SplitN(authz, " ", 2)
	if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
		return strings.TrimSpace(parts[1])
	}
	return ""
}
