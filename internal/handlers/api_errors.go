package handlers

import (
	"database/sql"
	"errors"
	"log"
	"net/http"

	"sjavs-go/internal/game/sjavs"
	"sjavs-go/internal/models"

	"github.com/gin-gonic/gin"
)

func writeAPIError(c *gin.Context, err error) {
	if err == nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	// Known sentinel errors
	if errors.Is(err, models.ErrNotFound) || errors.Is(err, sql.ErrNoRows) {
		c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": "not found"})
		return
	}

	// Safe typed validation / permission / conflict errors (do NOT echo raw errors).
	switch {
	case errors.Is(err, models.ErrInvalidJSON):
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	case errors.Is(err, models.ErrEmptyName):
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "name required"})
		return
	case errors.Is(err, models.ErrEmptyCommand):
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "command required"})
		return
	case errors.Is(err, sjavs.ErrTableFull), errors.Is(err, models.ErrTableFull):
		c.AbortWithStatusJSON(http.StatusConflict, gin.H{"error": "table full"})
		return
	case errors.Is(err, sjavs.ErrStaleSession), errors.Is(err, models.ErrStaleSession):
		c.AbortWithStatusJSON(http.StatusGone, gin.H{"error": "session reset; rejoin the table"})
		return
	case errors.Is(err, sjavs.ErrNotYourTurn):
		c.AbortWithStatusJSON(http.StatusConflict, gin.H{"error": "not your turn"})
		return
	case errors.Is(err, sjavs.ErrCardNotHeld):
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "card not held"})
		return
	case errors.Is(err, sjavs.ErrNotAllowed):
		c.AbortWithStatusJSON(http.StatusConflict, gin.H{"error": "not allowed"})
		return
	case errors.Is(err, sjavs.ErrWrongPhase):
		c.AbortWithStatusJSON(http.StatusConflict, gin.H{"error": "wrong phase"})
		return
	case errors.Is(err, sjavs.ErrInvalidDeclaration):
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "invalid declaration"})
		return
	case errors.Is(err, sjavs.ErrInvalidSuitChoice):
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "invalid suit"})
		return
	case errors.Is(err, sjavs.ErrInvalidDealChoice):
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "invalid split position"})
		return
	case errors.Is(err, sjavs.ErrUnknownCommand):
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "unknown command"})
		return
	}

	// Unknown/internal errors: log details, return generic message.
	log.Printf("internal error: %v", err)
	c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
}
