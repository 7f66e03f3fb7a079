package services

import (
	"fmt"
	"strings"

	"wander/internal/models/request_models"
	"wander/internal/models/response_models"
)

type ExportServiceInterface interface {
	RenderText(req request_models.TripRequest, itinerary *response_models.Itinerary) string
	Filename(destination string) string
}

type ExportService struct{}

func NewExportService() ExportServiceInterface {
	return &ExportService{}
}

// RenderText produces the downloadable plain-text summary: a header
// banner, the budget line, the trip summary, then one banner per day
// with its activities.
func (s *ExportService) RenderText(req request_models.TripRequest, itinerary *response_models.Itinerary) string {
	var b strings.Builder

	banner := strings.Repeat("=", 50)
	b.WriteString(banner + "\n")
	fmt.Fprintf(&b, " YOUR %d-DAY TRIP TO %s\n", req.Duration, strings.ToUpper(req.Destination))
	b.WriteString(banner + "\n\n")

	fmt.Fprintf(&b, "Budget: $%d | Estimated Cost: $%s\n\n", req.Budget, formatCost(itinerary.EstimatedTotalCost))

	if itinerary.TripSummary != "" {
		b.WriteString(itinerary.TripSummary + "\n\n")
	}

	for _, day := range itinerary.Days {
		fmt.Fprintf(&b, "---------- DAY %d ----------\n\n", day.Day)

		for _, activity := range day.Activities {
			fmt.Fprintf(&b, "[%s] %s - Est. Cost: $%s\n", activity.Time, activity.PlaceName, formatCost(activity.EstimatedCost))
			fmt.Fprintf(&b, "    Details: %s\n", activity.Description)
			fmt.Fprintf(&b, "    Address: %s\n\n", activity.Address)
		}
	}

	return b.String()
}

func (s *ExportService) Filename(destination string) string {
	return strings.ReplaceAll(destination, " ", "_") + "_itinerary.txt"
}
