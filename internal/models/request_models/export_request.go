package request_models

import "wander/internal/models/response_models"

// ExportRequest carries the original trip parameters plus the already
// generated itinerary back for text rendering, so the export needs no
// second AI call.
type ExportRequest struct {
	TripRequest
	Itinerary response_models.Itinerary `json:"itinerary" binding:"required"`
}
