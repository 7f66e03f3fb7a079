package services

import (
	"context"
	"fmt"
	"log"
	"strings"

	"wander/internal/models/request_models"
	"wander/internal/models/response_models"
	"wander/pkg/utils"
)

// InterestVocabulary is the fixed tag set offered by the frontend form.
var InterestVocabulary = []string{
	"Art & Museums",
	"Street Food",
	"Fine Dining",
	"Adventure & Nature",
	"Nightlife",
	"Historical Sites",
	"Budget/Free Activities",
}

var DefaultInterests = []string{"Budget/Free Activities", "Street Food"}

type ItineraryServiceInterface interface {
	PlanTrip(ctx context.Context, req request_models.TripRequest) (*response_models.PlanResponse, error)
	GenerateItinerary(ctx context.Context, req request_models.TripRequest) (*response_models.Itinerary, error)
	FormOptions() response_models.FormOptions
}

type ItineraryService struct {
	aiClient   utils.AIClientInterface
	mapService MapServiceInterface
}

func NewItineraryService(aiClient utils.AIClientInterface, mapService MapServiceInterface) ItineraryServiceInterface {
	return &ItineraryService{
		aiClient:   aiClient,
		mapService: mapService,
	}
}

// PlanTrip runs the full pipeline for one submission: prompt → AI call
// → JSON recovery → per-activity geocoding and map assembly. Failures
// halt the submission; a budget overrun does not.
func (s *ItineraryService) PlanTrip(ctx context.Context, req request_models.TripRequest) (*response_models.PlanResponse, error) {
	itinerary, err := s.GenerateItinerary(ctx, req)
	if err != nil {
		return nil, err
	}

	resp := &response_models.PlanResponse{
		Itinerary: itinerary,
		Map:       s.mapService.BuildMap(ctx, itinerary, req.Destination, req.Theme),
	}

	if itinerary.EstimatedTotalCost > float64(req.Budget) {
		resp.BudgetWarning = fmt.Sprintf(
			"The AI estimated cost ($%s) exceeds your budget ($%d). Review the activities below to cut costs.",
			formatCost(itinerary.EstimatedTotalCost), req.Budget)
	}

	return resp, nil
}

func (s *ItineraryService) GenerateItinerary(ctx context.Context, req request_models.TripRequest) (*response_models.Itinerary, error) {
	if strings.TrimSpace(req.Destination) == "" {
		return nil, utils.ErrEmptyDestination
	}

	prompt := buildItineraryPrompt(req.Destination, req.Duration, req.Budget, req.Interests)

	rawText, err := s.aiClient.GenerateItinerary(ctx, prompt)
	if err != nil {
		log.Printf("AI generation error: %v", err)
		return nil, utils.ErrAIServiceUnavailable
	}

	return ParseItinerary(rawText)
}

func (s *ItineraryService) FormOptions() response_models.FormOptions {
	return response_models.FormOptions{
		Interests:        InterestVocabulary,
		DefaultInterests: DefaultInterests,
		Themes:           MapThemes(),
		DefaultTheme:     ThemeStandard,
	}
}

// buildItineraryPrompt embeds the trip parameters into a deterministic
// prompt that mandates JSON-only output matching the itinerary schema.
// The address instruction asks for official location name and city
// only, which keeps geocoding unambiguous.
func buildItineraryPrompt(destination string, duration, budget int, interests []string) string {
	interestsStr := "General exploring"
	if len(interests) > 0 {
		interestsStr = strings.Join(interests, ", ")
	}

	return fmt.Sprintf(`You are a budget-savvy student travel expert.
Create a %d-day travel itinerary for a student visiting %s.
Their maximum total budget is $%d USD.
Their interests are: %s.

You MUST return the output strictly as a valid JSON object matching this exact schema. Do not include any markdown formatting or introductory text.
{
  "trip_summary": "A brief, exciting summary of the trip.",
  "estimated_total_cost": 150,
  "itinerary": [
    {
      "day": 1,
      "activities": [
        {
          "time": "Morning",
          "place_name": "Specific place name",
          "description": "Activity description and why it fits the budget.",
          "estimated_cost": 10,
          "address_for_geocoding": "Strict official location name and the city only, e.g. 'Louvre Museum, Paris'"
        }
      ]
    }
  ]
}`, duration, destination, budget, interestsStr)
}
