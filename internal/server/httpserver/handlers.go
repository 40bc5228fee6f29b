package httpserver

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/fabienvalero1/userdir/internal/common"
	"github.com/fabienvalero1/userdir/internal/server/models"
	"github.com/fabienvalero1/userdir/internal/server/users"
)

// UserLister is the slice of the users service consumed by the handlers.
type UserLister interface {
	ListUsers(ctx context.Context, limit, offset int) ([]models.User, int64, error)
	GetUser(ctx context.Context, id int64) (*models.User, error)
}

type Handler struct {
	Users UserLister
}

// ListUsers serves GET /api/users. Non-numeric limit/offset fall back to the
// defaults; numeric values are clamped by the service.
func (h *Handler) ListUsers(c *gin.Context) {
	limit := atoiDefault(c.Query("limit"), users.DefaultLimit)
	offset := atoiDefault(c.Query("offset"), users.DefaultOffset)

	rows, total, err := h.Users.ListUsers(c.Request.Context(), limit, offset)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": rows, "total": total})
}

// GetUser serves GET /api/users/:id.
func (h *Handler) GetUser(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	user, err := h.Users.GetUser(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": user})
}

func atoiDefault(s string, def int) int {
	if s == "" {
		return def
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return n
}
