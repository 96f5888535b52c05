package controllers

import (
	"net/http"
	"strconv"

	"github.com/CollegeSite/College-Backend/src/services"
	"github.com/gin-gonic/gin"
)

type UpcomingEventController struct {
	service *services.UpcomingEventService
}

func NewUpcomingEventController(service *services.UpcomingEventService) *UpcomingEventController {
	return &UpcomingEventController{service: service}
}

type upcomingEventRequest struct {
	Subject string   `json:"subject"`
	Body    string   `json:"body"`
	Links   []string `json:"links"`
}

// CreateEvent handles POST requests announcing an upcoming event.
func (ec *UpcomingEventController) CreateEvent(ctx *gin.Context) {
	var req upcomingEventRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	event, err := ec.service.CreateEvent(ctx.Request.Context(), req.Subject, req.Body, req.Links)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, gin.H{"message": "Event created successfully", "event": event})
}

// UpdateEvent handles PUT requests replacing an announcement's content.
func (ec *UpcomingEventController) UpdateEvent(ctx *gin.Context) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ID format"})
		return
	}

	var req upcomingEventRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	event, err := ec.service.UpdateEvent(ctx.Request.Context(), id, req.Subject, req.Body, req.Links)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"message": "Event updated successfully", "event": event})
}

// DeleteEvent handles DELETE requests removing an announcement.
func (ec *UpcomingEventController) DeleteEvent(ctx *gin.Context) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ID format"})
		return
	}

	if err := ec.service.DeleteEvent(ctx.Request.Context(), id); err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"message": "Event deleted successfully"})
}

// GetAllEvents handles GET requests listing announcements newest-first.
func (ec *UpcomingEventController) GetAllEvents(ctx *gin.Context) {
	events, err := ec.service.GetAllEvents(ctx.Request.Context())
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"events": events})
}
