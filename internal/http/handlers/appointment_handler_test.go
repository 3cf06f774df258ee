package handlers

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/contactapp/backend/internal/pkg/logger"
	"github.com/contactapp/backend/internal/services"
	"github.com/contactapp/backend/internal/store"
)

func newAppointmentRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	svc, err := services.NewAppointmentService(store.NewMemoryAppointmentStore(), logger.NewNop())
	require.NoError(t, err)
	handler := NewAppointmentHandler(logger.NewNop(), svc)

	router := gin.New()
	router.POST("/api/v1/appointments", handler.Create)
	router.GET("/api/v1/appointments/:id", handler.Get)
	router.PUT("/api/v1/appointments/:id", handler.Update)
	return router
}

func TestAppointmentHandler_CreateAcceptsRFC3339Date(t *testing.T) {
	router := newAppointmentRouter(t)

	future := time.Now().Add(24 * time.Hour).UTC().Truncate(time.Second)
	rec := doJSON(t, router, http.MethodPost, "/api/v1/appointments", map[string]interface{}{
		"id":          "a1",
		"date":        future.Format(time.RFC3339),
		"description": "annual checkup",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	var body struct {
		Appointment appointmentResponse `json:"appointment"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Equal(t, "a1", body.Appointment.ID)
	require.True(t, future.Equal(body.Appointment.Date))
}

func TestAppointmentHandler_CreatePastDateReturns400(t *testing.T) {
	router := newAppointmentRouter(t)

	past := time.Now().Add(-24 * time.Hour).UTC()
	rec := doJSON(t, router, http.MethodPost, "/api/v1/appointments", map[string]interface{}{
		"id":          "a1",
		"date":        past.Format(time.RFC3339),
		"description": "annual checkup",
	})
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Contains(t, rec.Body.String(), "invalid_argument")
}

func TestAppointmentHandler_UpdateMissingReturns404(t *testing.T) {
	router := newAppointmentRouter(t)

	rec := doJSON(t, router, http.MethodPut, "/api/v1/appointments/missing", map[string]interface{}{
		"date":        time.Now().Add(time.Hour).UTC().Format(time.RFC3339),
		"description": "rescheduled",
	})
	require.Equal(t, http.StatusNotFound, rec.Code)
}
