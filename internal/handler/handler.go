package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// Handler contains dependencies shared by the top-level endpoints.
type Handler struct{}

// NewHandler creates a new handler instance
func NewHandler() *Handler {
	return &Handler{}
}

func (h *Handler) LivenessCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "alive",
		"time":   time.Now(),
	})
}
