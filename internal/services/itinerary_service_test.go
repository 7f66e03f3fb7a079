package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"wander/internal/models/request_models"
	"wander/pkg/utils"
)

type mockAIClient struct {
	response   string
	err        error
	lastPrompt string
	calls      int
}

func (m *mockAIClient) GenerateItinerary(_ context.Context, prompt string) (string, error) {
	m.calls++
	m.lastPrompt = prompt
	return m.response, m.err
}

func (m *mockAIClient) Close() error { return nil }

func twoDayResponse() string {
	return `{
  "trip_summary": "Two days of street food in Paris.",
  "estimated_total_cost": 180,
  "itinerary": [
    {"day": 1, "activities": [
      {"time": "Morning", "place_name": "Marche des Enfants Rouges", "description": "Oldest covered market.", "estimated_cost": 15, "address_for_geocoding": "Marche des Enfants Rouges, Paris"}
    ]},
    {"day": 2, "activities": [
      {"time": "Evening", "place_name": "Rue Mouffetard", "description": "Crepe crawl.", "estimated_cost": 12, "address_for_geocoding": "Rue Mouffetard, Paris"}
    ]}
  ]
}`
}

func newTestService(ai *mockAIClient) ItineraryServiceInterface {
	geocoder := &recordingGeocoder{known: nil}
	return NewItineraryService(ai, NewMapService(geocoder))
}

func TestGenerateItineraryParisScenario(t *testing.T) {
	ai := &mockAIClient{response: twoDayResponse()}
	svc := newTestService(ai)

	itinerary, err := svc.GenerateItinerary(context.Background(), request_models.TripRequest{
		Destination: "Paris, France",
		Duration:    2,
		Budget:      200,
		Interests:   []string{"Street Food"},
	})
	if err != nil {
		t.Fatalf("GenerateItinerary failed: %v", err)
	}

	if len(itinerary.Days) != 2 {
		t.Fatalf("expected 2 day plans, got %d", len(itinerary.Days))
	}

	for _, fragment := range []string{"Paris, France", "2-day", "$200", "Street Food"} {
		if !strings.Contains(ai.lastPrompt, fragment) {
			t.Errorf("prompt missing %q", fragment)
		}
	}
}

func TestGenerateItineraryEmptyInterestsPlaceholder(t *testing.T) {
	ai := &mockAIClient{response: twoDayResponse()}
	svc := newTestService(ai)

	_, err := svc.GenerateItinerary(context.Background(), request_models.TripRequest{
		Destination: "Tokyo, Japan",
		Duration:    3,
		Budget:      500,
	})
	if err != nil {
		t.Fatalf("GenerateItinerary failed: %v", err)
	}

	if !strings.Contains(ai.lastPrompt, "General exploring") {
		t.Error("prompt should fall back to the 'General exploring' placeholder")
	}
}

func TestGenerateItineraryToleratesFencedResponse(t *testing.T) {
	ai := &mockAIClient{response: "```json\n" + twoDayResponse() + "\n```"}
	svc := newTestService(ai)

	itinerary, err := svc.GenerateItinerary(context.Background(), request_models.TripRequest{
		Destination: "Paris, France",
		Duration:    2,
		Budget:      200,
	})
	if err != nil {
		t.Fatalf("GenerateItinerary failed on fenced response: %v", err)
	}
	if len(itinerary.Days) != 2 {
		t.Errorf("expected 2 day plans, got %d", len(itinerary.Days))
	}
}

func TestGenerateItineraryEmptyDestinationRejectedBeforeAICall(t *testing.T) {
	ai := &mockAIClient{response: twoDayResponse()}
	svc := newTestService(ai)

	_, err := svc.GenerateItinerary(context.Background(), request_models.TripRequest{
		Destination: "   ",
		Duration:    2,
		Budget:      200,
	})
	if !errors.Is(err, utils.ErrEmptyDestination) {
		t.Fatalf("expected ErrEmptyDestination, got %v", err)
	}
	if ai.calls != 0 {
		t.Errorf("AI client must not be called for empty destination, got %d calls", ai.calls)
	}
}

func TestGenerateItineraryServiceErrorCaughtAtBoundary(t *testing.T) {
	ai := &mockAIClient{err: fmt.Errorf("connection reset")}
	svc := newTestService(ai)

	_, err := svc.GenerateItinerary(context.Background(), request_models.TripRequest{
		Destination: "Paris, France",
		Duration:    2,
		Budget:      200,
	})
	if !errors.Is(err, utils.ErrAIServiceUnavailable) {
		t.Fatalf("expected ErrAIServiceUnavailable, got %v", err)
	}
}

func TestGenerateItineraryMalformedResponse(t *testing.T) {
	ai := &mockAIClient{response: "Sorry, I cannot help with that."}
	svc := newTestService(ai)

	_, err := svc.GenerateItinerary(context.Background(), request_models.TripRequest{
		Destination: "Paris, France",
		Duration:    2,
		Budget:      200,
	})
	if !errors.Is(err, utils.ErrMalformedAIResponse) {
		t.Fatalf("expected ErrMalformedAIResponse, got %v", err)
	}
}

func TestPlanTripBudgetOverrunIsAdvisoryOnly(t *testing.T) {
	response := strings.Replace(twoDayResponse(), `"estimated_total_cost": 180`, `"estimated_total_cost": 350`, 1)
	ai := &mockAIClient{response: response}
	svc := newTestService(ai)

	plan, err := svc.PlanTrip(context.Background(), request_models.TripRequest{
		Destination: "Paris, France",
		Duration:    2,
		Budget:      300,
	})
	if err != nil {
		t.Fatalf("PlanTrip failed: %v", err)
	}

	if plan.BudgetWarning == "" {
		t.Error("expected a budget warning for estimate 350 over budget 300")
	}
	if plan.Itinerary == nil || len(plan.Itinerary.Days) != 2 {
		t.Error("itinerary must still be rendered in full despite the overrun")
	}
}

func TestPlanTripWithinBudgetNoWarning(t *testing.T) {
	ai := &mockAIClient{response: twoDayResponse()}
	svc := newTestService(ai)

	plan, err := svc.PlanTrip(context.Background(), request_models.TripRequest{
		Destination: "Paris, France",
		Duration:    2,
		Budget:      300,
	})
	if err != nil {
		t.Fatalf("PlanTrip failed: %v", err)
	}
	if plan.BudgetWarning != "" {
		t.Errorf("unexpected budget warning: %q", plan.BudgetWarning)
	}
}

func TestFormOptionsFixedVocabulary(t *testing.T) {
	svc := newTestService(&mockAIClient{})
	opts := svc.FormOptions()

	if len(opts.Interests) != 7 {
		t.Errorf("expected 7 interest tags, got %d", len(opts.Interests))
	}
	if len(opts.DefaultInterests) != 2 {
		t.Errorf("expected 2 default tags, got %d", len(opts.DefaultInterests))
	}
	if len(opts.Themes) != 3 || opts.DefaultTheme != ThemeStandard {
		t.Errorf("unexpected theme options: %+v", opts)
	}
}
