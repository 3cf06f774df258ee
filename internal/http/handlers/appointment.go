package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/contactapp/backend/internal/domain"
	"github.com/contactapp/backend/internal/pkg/dbctx"
	"github.com/contactapp/backend/internal/pkg/logger"
	"github.com/contactapp/backend/internal/platform/apierr"
	"github.com/contactapp/backend/internal/services"
)

type AppointmentHandler struct {
	log                *logger.Logger
	appointmentService services.AppointmentService
}

func NewAppointmentHandler(log *logger.Logger, appointmentService services.AppointmentService) *AppointmentHandler {
	return &AppointmentHandler{
		log:                log.With("handler", "AppointmentHandler"),
		appointmentService: appointmentService,
	}
}

type appointmentRequest struct {
	ID          string    `json:"id"`
	Date        time.Time `json:"date"`
	Description string    `json:"description"`
}

type appointmentResponse struct {
	ID          string    `json:"id"`
	Date        time.Time `json:"date"`
	Description string    `json:"description"`
}

func toAppointmentResponse(appointment *domain.Appointment) appointmentResponse {
	return appointmentResponse{
		ID:          appointment.ID(),
		Date:        appointment.Date(),
		Description: appointment.Description(),
	}
}

// POST /api/v1/appointments
func (ah *AppointmentHandler) Create(c *gin.Context) {
	var req appointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": apierr.CodeInvalidRequest, "detail": err.Error()})
		return
	}

	appointment, err := domain.NewAppointment(req.ID, req.Date, req.Description)
	if err != nil {
		respondError(c, err)
		return
	}

	added, err := ah.appointmentService.Add(dbctx.Context{Ctx: c.Request.Context()}, appointment)
	if err != nil {
		respondError(c, err)
		return
	}
	if !added {
		c.JSON(http.StatusConflict, gin.H{"error": apierr.CodeDuplicateID, "detail": "appointment with id '" + appointment.ID() + "' already exists"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"appointment": toAppointmentResponse(appointment)})
}

// GET /api/v1/appointments
func (ah *AppointmentHandler) List(c *gin.Context) {
	appointments, err := ah.appointmentService.GetAll(dbctx.Context{Ctx: c.Request.Context()})
	if err != nil {
		respondError(c, err)
		return
	}
	responses := make([]appointmentResponse, 0, len(appointments))
	for _, appointment := range appointments {
		responses = append(responses, toAppointmentResponse(appointment))
	}
	c.JSON(http.StatusOK, gin.H{"appointments": responses})
}

// GET /api/v1/appointments/:id
func (ah *AppointmentHandler) Get(c *gin.Context) {
	appointment, err := ah.appointmentService.GetByID(dbctx.Context{Ctx: c.Request.Context()}, c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	if appointment == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": apierr.CodeNotFound})
		return
	}
	c.JSON(http.StatusOK, gin.H{"appointment": toAppointmentResponse(appointment)})
}

// PUT /api/v1/appointments/:id
func (ah *AppointmentHandler) Update(c *gin.Context) {
	var req appointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": apierr.CodeInvalidRequest, "detail": err.Error()})
		return
	}

	dbc := dbctx.Context{Ctx: c.Request.Context()}
	updated, err := ah.appointmentService.Update(dbc, c.Param("id"), req.Date, req.Description)
	if err != nil {
		respondError(c, err)
		return
	}
	if !updated {
		c.JSON(http.StatusNotFound, gin.H{"error": apierr.CodeNotFound})
		return
	}

	appointment, err := ah.appointmentService.GetByID(dbc, c.Param("id"))
	if err != nil || appointment == nil {
		c.JSON(http.StatusOK, gin.H{"ok": true})
		return
	}
	c.JSON(http.StatusOK, gin.H{"appointment": toAppointmentResponse(appointment)})
}

// DELETE /api/v1/appointments/:id
func (ah *AppointmentHandler) Delete(c *gin.Context) {
	deleted, err := ah.appointmentService.Delete(dbctx.Context{Ctx: c.Request.Context()}, c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	if !deleted {
		c.JSON(http.StatusNotFound, gin.H{"error": apierr.CodeNotFound})
		return
	}
	c.Status(http.StatusNoContent)
}
