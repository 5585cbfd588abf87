// internal/handler/usage_event_handler.go
package handler

import (
	"net/http"
	"strconv"
	"time"

	service "github.com/dinerozz/screen-time-backend/internal/service/usage_event"

	"github.com/dinerozz/screen-time-backend/internal/entity"
	"github.com/dinerozz/screen-time-backend/internal/model/response"
	"github.com/dinerozz/screen-time-backend/internal/model/response/wrapper"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type UsageEventHandler struct {
	service service.UsageEventService
}

func NewUsageEventHandler(service service.UsageEventService) *UsageEventHandler {
	return &UsageEventHandler{
		service: service,
	}
}

// CreateEvent godoc
// @Summary      Create usage event
// @Description  Store a single raw application usage event
// @Tags         /api/v1/events
// @Accept       json
// @Produce      json
// @Param        event  body      entity.CreateUsageEventRequest  true  "Event data"
// @Success      201    {object}  wrapper.ResponseWrapper{data=entity.UsageEvent}
// @Failure      400    {object}  wrapper.ErrorWrapper
// @Failure      500    {object}  wrapper.ErrorWrapper
// @Router       /events [post]
func (h *UsageEventHandler) CreateEvent(c *gin.Context) {
	var req entity.CreateUsageEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, wrapper.ErrorWrapper{
			Message: "Invalid request body: " + err.Error(),
		})
		return
	}

	event, err := h.service.CreateEvent(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusBadRequest, wrapper.ErrorWrapper{
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, wrapper.ResponseWrapper{
		Data:    event,
		Success: true,
	})
}

// BatchCreateEvents godoc
// @Summary      Batch create usage events
// @Description  Store multiple raw application usage events in one request
// @Tags         /api/v1/events
// @Accept       json
// @Produce      json
// @Param        events  body      entity.BatchCreateUsageEventRequest  true  "Events data"
// @Success      201     {object}  wrapper.ResponseWrapper{data=string}
// @Failure      400     {object}  wrapper.ErrorWrapper
// @Failure      500     {object}  wrapper.ErrorWrapper
// @Router       /events/batch [post]
func (h *UsageEventHandler) BatchCreateEvents(c *gin.Context) {
	var req entity.BatchCreateUsageEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, wrapper.ErrorWrapper{
			Message: "Invalid request body: " + err.Error(),
		})
		return
	}

	err := h.service.BatchCreateEvents(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusBadRequest, wrapper.ErrorWrapper{
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, wrapper.ResponseWrapper{
		Data: "Successfully created " + strconv.Itoa(len(req.Events)) + " usage events",
	})
}

// GetEvents godoc
// @Summary      Get usage events
// @Description  Get stored usage events with optional filters
// @Tags         /api/v1/events
// @Accept       json
// @Produce      json
// @Param        appId      query     string  false  "Application ID"
// @Param        source     query     string  false  "Event source (agent, knowledgec)"
// @Param        startTime  query     string  false  "Start time (RFC3339)"
// @Param        endTime    query     string  false  "End time (RFC3339)"
// @Param        limit      query     int     false  "Page size"
// @Param        offset     query     int     false  "Offset"
// @Success      200        {object}  wrapper.PaginatedResponseWrapper{data=[]entity.UsageEvent}
// @Failure      400        {object}  wrapper.ErrorWrapper
// @Failure      500        {object}  wrapper.ErrorWrapper
// @Router       /events [get]
func (h *UsageEventHandler) GetEvents(c *gin.Context) {
	var filter entity.UsageEventFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.JSON(http.StatusBadRequest, wrapper.ErrorWrapper{
			Message: "Invalid query parameters: " + err.Error(),
		})
		return
	}

	if startStr := c.Query("startTime"); startStr != "" {
		start, err := time.Parse(time.RFC3339, startStr)
		if err != nil {
			c.JSON(http.StatusBadRequest, wrapper.ErrorWrapper{
				Message: "Invalid startTime format, expected RFC3339",
			})
			return
		}
		filter.StartTime = &start
	}
	if endStr := c.Query("endTime"); endStr != "" {
		end, err := time.Parse(time.RFC3339, endStr)
		if err != nil {
			c.JSON(http.StatusBadRequest, wrapper.ErrorWrapper{
				Message: "Invalid endTime format, expected RFC3339",
			})
			return
		}
		filter.EndTime = &end
	}

	events, pagination, err := h.service.GetEvents(c.Request.Context(), filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, wrapper.ErrorWrapper{
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, wrapper.PaginatedResponseWrapper{
		Data: events,
		Meta: response.PaginationMeta{
			CurrentPage: pagination.Page,
			PerPage:     pagination.PerPage,
			TotalItems:  pagination.Total,
			TotalPages:  pagination.TotalPages,
		},
		Success: true,
	})
}

// DeleteEvent godoc
// @Summary      Delete usage event
// @Description  Delete a stored usage event by ID
// @Tags         /api/v1/events
// @Accept       json
// @Produce      json
// @Param        id   path      string  true  "Event ID"
// @Success      200  {object}  wrapper.SuccessWrapper
// @Failure      400  {object}  wrapper.ErrorWrapper
// @Failure      500  {object}  wrapper.ErrorWrapper
// @Router       /events/{id} [delete]
func (h *UsageEventHandler) DeleteEvent(c *gin.Context) {
	idStr := c.Param("id")
	id, err := uuid.Parse(idStr)
	if err != nil {
		c.JSON(http.StatusBadRequest, wrapper.ErrorWrapper{
			Message: "Invalid UUID format",
		})
		return
	}

	if err := h.service.DeleteEvent(c.Request.Context(), id); err != nil {
		c.JSON(http.StatusInternalServerError, wrapper.ErrorWrapper{
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, wrapper.SuccessWrapper{
		Message: "Event deleted",
		Success: true,
	})
}
