package handler

import (
	"net/http"
	"strings"

	service "github.com/dinerozz/screen-time-backend/internal/service/importer"

	"github.com/dinerozz/screen-time-backend/internal/model/response/wrapper"
	"github.com/gin-gonic/gin"
)

type ImporterHandler struct {
	service service.ImporterService
}

func NewImporterHandler(service service.ImporterService) *ImporterHandler {
	return &ImporterHandler{
		service: service,
	}
}

// ImportDay godoc
// @Summary      Import a day from the Screen Time database
// @Description  Copy one day's /app/usage stream from knowledgeC.db into the app store
// @Tags         /api/v1/import
// @Accept       json
// @Produce      json
// @Param        date  path      string  true  "Date (YYYY-MM-DD)"
// @Success      200   {object}  wrapper.ResponseWrapper{data=service.ImportResult}
// @Failure      400   {object}  wrapper.ErrorWrapper
// @Failure      500   {object}  wrapper.ErrorWrapper
// @Router       /import/{date} [post]
func (h *ImporterHandler) ImportDay(c *gin.Context) {
	date := c.Param("date")

	result, err := h.service.ImportDay(c.Request.Context(), date)
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
		Data:    result,
		Success: true,
	})
}

// GetKnowledgeDates godoc
// @Summary      List importable dates
// @Description  List dates present in the Screen Time database
// @Tags         /api/v1/import
// @Accept       json
// @Produce      json
// @Success      200  {object}  wrapper.ResponseWrapper{data=[]string}
// @Failure      500  {object}  wrapper.ErrorWrapper
// @Router       /import/dates [get]
func (h *ImporterHandler) GetKnowledgeDates(c *gin.Context) {
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
