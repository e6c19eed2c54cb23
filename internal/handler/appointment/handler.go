package appointment

import (
	stderrors "errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/jwalitptl/clinic-api/internal/model"
	"github.com/jwalitptl/clinic-api/internal/service/appointment"
	"github.com/jwalitptl/clinic-api/internal/service/schedule"
	"github.com/jwalitptl/clinic-api/pkg/httputil"
)

const dateLayout = "2006-01-02"

type Handler struct {
	service  *appointment.Service
	schedule *schedule.Service
	now      func() time.Time
}

func NewHandler(service *appointment.Service, scheduleSvc *schedule.Service) *Handler {
	return &Handler{
		service:  service,
		schedule: scheduleSvc,
		now:      time.Now,
	}
}

// ListAppointments returns every appointment for one doctor, all
// statuses, in store order, as a bare array.
func (h *Handler) ListAppointments(c *gin.Context) {
	raw := c.Query("doctorId")
	if raw == "" {
		c.JSON(http.StatusBadRequest, httputil.ErrorBody{Message: "Doctor ID is required"})
		return
	}

	doctorID, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, httputil.ErrorBody{Message: "invalid doctor ID"})
		return
	}

	appointments, err := h.service.ListByDoctor(c.Request.Context(), doctorID)
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, appointments)
}

// CreateAppointment books a new appointment. Any missing field fails the
// whole request before the store is touched.
func (h *Handler) CreateAppointment(c *gin.Context) {
	var req model.CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		var verr validator.ValidationErrors
		if stderrors.As(err, &verr) {
			c.JSON(http.StatusBadRequest, httputil.ErrorBody{Message: "Missing required fields for appointment booking."})
			return
		}
		c.JSON(http.StatusBadRequest, httputil.ErrorBody{Message: err.Error()})
		return
	}

	created, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

// UpdateAppointmentStatus applies a Completed or Cancelled transition.
// The status code is the caller's reconciliation signal: anything but
// 200 means the optimistic UI update must be rolled back.
func (h *Handler) UpdateAppointmentStatus(c *gin.Context) {
	var req model.UpdateAppointmentStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, httputil.ErrorBody{Message: "Appointment ID and status are required"})
		return
	}

	updated, err := h.service.UpdateStatus(c.Request.Context(), req.ID, req.Status)
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

// GetSchedule returns the derived doctor dashboard view. The reference
// day defaults to the server's current date and can be pinned with the
// today query parameter.
func (h *Handler) GetSchedule(c *gin.Context) {
	raw := c.Query("doctorId")
	if raw == "" {
		c.JSON(http.StatusBadRequest, httputil.ErrorBody{Message: "Doctor ID is required"})
		return
	}
	doctorID, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, httputil.ErrorBody{Message: "invalid doctor ID"})
		return
	}

	today := h.now()
	if d := c.Query("today"); d != "" {
		today, err = time.Parse(dateLayout, d)
		if err != nil {
			c.JSON(http.StatusBadRequest, httputil.ErrorBody{Message: "invalid date format, expected YYYY-MM-DD"})
			return
		}
	}

	view, err := h.schedule.Schedule(c.Request.Context(), doctorID, today)
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/appointments", h.ListAppointments)
	r.POST("/appointments", h.CreateAppointment)
	r.PATCH("/appointments", h.UpdateAppointmentStatus)
	r.GET("/appointments/schedule", h.GetSchedule)
}
