package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/expensemaster/expense_master_app/internal/core/ports"
	"github.com/expensemaster/expense_master_app/internal/dto"
	"github.com/expensemaster/expense_master_app/internal/middleware"
)

// eventHandler handles the embedded calendar events of a company.
type eventHandler struct {
	companyService ports.CompanySvcFacade
}

// registerEventRoutes nests the event routes under a company group.
func registerEventRoutes(companies *gin.RouterGroup, companyService ports.CompanySvcFacade) {
	h := &eventHandler{companyService: companyService}

	events := companies.Group("/:email/events")
	{
		events.GET("", h.listEvents)
		events.POST("", h.addEvent)
		events.PUT("/:eventID", h.updateEvent)
		events.DELETE("/:eventID", h.deleteEvent)
	}
}

// addEvent godoc
// @Summary Add a calendar event
// @Tags events
// @Accept json
// @Produce json
// @Param email path string true "Company email"
// @Param event body dto.EventRequest true "Event fields"
// @Success 201 {object} dto.EventResponse
// @Failure 400 {object} map[string]string "Missing required field"
// @Failure 404 {object} map[string]string "Company not found"
// @Security BearerAuth
// @Router /companies/{email}/events [post]
func (h *eventHandler) addEvent(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.EventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for add event", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	event, err := h.companyService.AddEvent(c.Request.Context(), c.Param("email"), req)
	if err != nil {
		respondError(c, logger, err, "Failed to add event")
		return
	}

	logger.Info("Event added", slog.String("event_id", event.EventID))
	c.JSON(http.StatusCreated, dto.ToEventResponse(event))
}

func (h *eventHandler) listEvents(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	events, err := h.companyService.ListEvents(c.Request.Context(), c.Param("email"))
	if err != nil {
		respondError(c, logger, err, "Failed to list events")
		return
	}
	c.JSON(http.StatusOK, dto.ToListEventsResponse(events))
}

func (h *eventHandler) updateEvent(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.EventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for update event", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	event, err := h.companyService.UpdateEvent(c.Request.Context(), c.Param("email"), c.Param("eventID"), req)
	if err != nil {
		respondError(c, logger, err, "Failed to update event")
		return
	}
	c.JSON(http.StatusOK, dto.ToEventResponse(event))
}

func (h *eventHandler) deleteEvent(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	if err := h.companyService.DeleteEvent(c.Request.Context(), c.Param("email"), c.Param("eventID")); err != nil {
		respondError(c, logger, err, "Failed to delete event")
		return
	}

	logger.Info("Event deleted", slog.String("event_id", c.Param("eventID")))
	c.JSON(http.StatusOK, gin.H{"deleted": true})
}
