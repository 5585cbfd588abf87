package handler

import (
	"net/http"
	"strings"

	service "github.com/dinerozz/screen-time-backend/internal/service/timeline"

	"github.com/dinerozz/screen-time-backend/internal/model/response/wrapper"
	"github.com/gin-gonic/gin"
)

type TimelineHandler struct {
	service service.TimelineService
}

func NewTimelineHandler(service service.TimelineService) *TimelineHandler {
	return &TimelineHandler{
		service: service,
	}
}

// GetTimeline godoc
// @Summary      Get day timeline
// @Description  Get the merged, filtered usage timeline and statistics for one day
// @Tags         /api/v1/timeline
// @Accept       json
// @Produce      json
// @Param        date  query     string  true  "Date (YYYY-MM-DD)"
// @Success      200   {object}  wrapper.ResponseWrapper{data=entity.DayTimeline}
// @Failure      400   {object}  wrapper.ErrorWrapper
// @Failure      500   {object}  wrapper.ErrorWrapper
// @Router       /timeline [get]
func (h *TimelineHandler) GetTimeline(c *gin.Context) {
	date := c.Query("date")
	if date == "" {
		c.JSON(http.StatusBadRequest, wrapper.ErrorWrapper{
			Message: "date query parameter is required",
		})
		return
	}

	timeline, err := h.service.GetDayTimeline(c.Request.Context(), date)
	if err != nil {
		if strings.Contains(err.Error(), "invalid date") {
			c.JSON(http.StatusBadRequest, wrapper.ErrorWrapper{
				Message: err.Error(),
			})
			return
		}
		c.JSON(http.StatusInternalServerError, wrapper.ErrorWrapper{
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, wrapper.ResponseWrapper{
		Data:    timeline,
		Success: true,
	})
}

// GetStats godoc
// @Summary      Get day statistics
// @Description  Get total active duration and idle windows for one day
// @Tags         /api/v1/timeline
// @Accept       json
// @Produce      json
// @Param        date  query     string  true  "Date (YYYY-MM-DD)"
// @Success      200   {object}  wrapper.ResponseWrapper{data=entity.TimelineStats}
// @Failure      400   {object}  wrapper.ErrorWrapper
// @Failure      500   {object}  wrapper.ErrorWrapper
// @Router       /timeline/stats [get]
func (h *TimelineHandler) GetStats(c *gin.Context) {
	date := c.Query("date")
	if date == "" {
		c.JSON(http.StatusBadRequest, wrapper.ErrorWrapper{
			Message: "date query parameter is required",
		})
		return
	}

	stats, err := h.service.GetDayStats(c.Request.Context(), date)
	if err != nil {
		if strings.Contains(err.Error(), "invalid date") {
			c.JSON(http.StatusBadRequest, wrapper.ErrorWrapper{
				Message: err.Error(),
			})
			return
		}
		c.JSON(http.StatusInternalServerError, wrapper.ErrorWrapper{
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, wrapper.ResponseWrapper{
		Data:    stats,
		Success: true,
	})
}

// GetDates godoc
// @Summary      Get available dates
// @Description  List dates that have stored usage events
// @Tags         /api/v1/timeline
// @Accept       json
// @Produce      json
// @Success      200  {object}  wrapper.ResponseWrapper{data=[]string}
// @Failure      500  {object}  wrapper.ErrorWrapper
// @Router       /timeline/dates [get]
func (h *TimelineHandler) GetDates(c *gin.Context) {
	dates, err := h.service.AvailableDates(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, wrapper.ErrorWrapper{
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, wrapper.ResponseWrapper{
		Data:    dates,
		Success: true,
	})
}
