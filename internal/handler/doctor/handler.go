package doctor

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jwalitptl/clinic-api/internal/repository"
	"github.com/jwalitptl/clinic-api/pkg/httputil"
)

type Handler struct {
	doctors repository.DoctorRepository
}

func NewHandler(doctors repository.DoctorRepository) *Handler {
	return &Handler{doctors: doctors}
}

// ListDoctors returns the full roster as a bare array.
func (h *Handler) ListDoctors(c *gin.Context) {
	doctors, err := h.doctors.List(c.Request.Context())
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, doctors)
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/doctors", h.ListDoctors)
}
