package handlers

import (
	"errors"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"booking-app-server/internal/middleware"
	"booking-app-server/internal/scheduling"
	"booking-app-server/internal/utils"
)

// AppointmentHandler handles appointment related requests. All branching
// lives in the scheduling service; the handler only parses and maps errors.
type AppointmentHandler struct {
	Scheduler *scheduling.Service
}

// NewAppointmentHandler creates a new AppointmentHandler.
func NewAppointmentHandler(scheduler *scheduling.Service) *AppointmentHandler {
	return &AppointmentHandler{Scheduler: scheduler}
}

// CreateAppointmentRequest represents the request body for booking a slot.
type CreateAppointmentRequest struct {
	ProviderID uint   `json:"provider_id" binding:"required"`
	Date       string `json:"date" binding:"required"`
}

// CreateAppointment books a slot with a provider for the authenticated client.
func (h *AppointmentHandler) CreateAppointment(c *gin.Context) {
	var req CreateAppointmentRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	clientID, exists := middleware.GetUserIDFromContext(c)
	if !exists {
		utils.Unauthorized(c, "User not authenticated")
		return
	}

	date, err := time.Parse(time.RFC3339, req.Date)
	if err != nil {
		utils.BadRequest(c, "Invalid date format, expected RFC3339")
		return
	}

	appt, err := h.Scheduler.CreateAppointment(c.Request.Context(), clientID, req.ProviderID, date)
	if err != nil {
		respondSchedulingError(c, err)
		return
	}

	utils.Created(c, appt)
}

// ListAppointments returns a page of the caller's active appointments.
func (h *AppointmentHandler) ListAppointments(c *gin.Context) {
	clientID, exists := middleware.GetUserIDFromContext(c)
	if !exists {
		utils.Unauthorized(c, "User not authenticated")
		return
	}

	page := 1
	if p, err := strconv.Atoi(c.DefaultQuery("page", "1")); err == nil && p > 0 {
		page = p
	}

	views, err := h.Scheduler.ListAppointments(c.Request.Context(), clientID, page)
	if err != nil {
		respondSchedulingError(c, err)
		return
	}

	utils.Success(c, views)
}

// CancelAppointment cancels an appointment owned by the caller.
func (h *AppointmentHandler) CancelAppointment(c *gin.Context) {
	clientID, exists := middleware.GetUserIDFromContext(c)
	if !exists {
		utils.Unauthorized(c, "User not authenticated")
		return
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.BadRequest(c, "Invalid appointment ID")
		return
	}

	appt, err := h.Scheduler.CancelAppointment(c.Request.Context(), clientID, uint(id))
	if err != nil {
		respondSchedulingError(c, err)
		return
	}

	utils.Success(c, appt)
}

// respondSchedulingError maps the engine's typed errors to HTTP statuses.
// Expected outcomes are returned as-is; collaborator failures are logged
// and turned into a generic 500.
func respondSchedulingError(c *gin.Context, err error) {
	var validationErr *scheduling.ValidationError
	var forbiddenErr *scheduling.ForbiddenError
	var notFoundErr *scheduling.NotFoundError

	switch {
	case errors.As(err, &validationErr):
		utils.BadRequest(c, validationErr.Error())
	case errors.As(err, &forbiddenErr):
		utils.Forbidden(c, forbiddenErr.Error())
	case errors.As(err, &notFoundErr):
		utils.NotFound(c, notFoundErr.Error())
	default:
		log.Error().Err(err).Str("path", c.FullPath()).Msg("scheduling failure")
		utils.InternalServerError(c, "Internal server error")
	}
}
