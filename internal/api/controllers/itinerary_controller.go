package controllers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"wander/internal/models/request_models"
	"wander/internal/services"
	"wander/pkg/utils"
)

type ItineraryController struct {
	itineraryService services.ItineraryServiceInterface
	exportService    services.ExportServiceInterface
}

func NewItineraryController(
	itineraryService services.ItineraryServiceInterface,
	exportService services.ExportServiceInterface,
) *ItineraryController {
	return &ItineraryController{
		itineraryService: itineraryService,
		exportService:    exportService,
	}
}

// CreateItineraryHandler godoc
// @Summary Generate a travel itinerary
// @Description Generate an AI travel itinerary with a day-by-day plan and a map of all activities
// @Tags Itinerary
// @Accept json
// @Produce json
// @Param request body request_models.TripRequest true "Destination, duration, budget, interests, map theme"
// @Success 200 {object} response_models.PlanResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 502 {object} utils.APIResponse
// @Router /itinerary [post]
func (i *ItineraryController) CreateItineraryHandler(c *gin.Context) {
	var req request_models.TripRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	plan, err := i.itineraryService.PlanTrip(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, plan, "Itinerary generated successfully")
}

// ExportItineraryHandler godoc
// @Summary Download an itinerary as plain text
// @Description Render a previously generated itinerary as a downloadable UTF-8 text file
// @Tags Itinerary
// @Accept json
// @Produce plain
// @Param request body request_models.ExportRequest true "Trip parameters and the generated itinerary"
// @Success 200 {string} string
// @Failure 400 {object} utils.APIResponse
// @Router /itinerary/export [post]
func (i *ItineraryController) ExportItineraryHandler(c *gin.Context) {
	var req request_models.ExportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	text := i.exportService.RenderText(req.TripRequest, &req.Itinerary)
	filename := i.exportService.Filename(req.Destination)

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "text/plain; charset=utf-8", []byte(text))
}

// FormOptionsHandler godoc
// @Summary List form options
// @Description Fixed interest vocabulary, default tags, and available map themes for the submission form
// @Tags Itinerary
// @Produce json
// @Success 200 {object} response_models.FormOptions
// @Router /interests [get]
func (i *ItineraryController) FormOptionsHandler(c *gin.Context) {
	utils.RespondSuccess(c, i.itineraryService.FormOptions(), "Form options fetched successfully")
}
