package services

import (
	"encoding/json"
	"log"
	"regexp"
	"strings"

	"wander/internal/models/response_models"
	"wander/pkg/utils"
)

// fencePattern matches a leading ```json fence and a trailing ```
// left by models that ignore the JSON response hint.
var fencePattern = regexp.MustCompile("(?i)^```json\\s*|\\s*```$")

// parseStrategies are tried in order; each is a pure transformation of
// the raw text before the strict JSON parse.
var parseStrategies = []func(string) string{
	func(raw string) string { return raw },
	stripMarkdownFence,
}

// ParseItinerary recovers a structured itinerary from the model's raw
// output. It reports the raw text once when every strategy fails; no
// partial extraction is attempted.
func ParseItinerary(raw string) (*response_models.Itinerary, error) {
	for _, strategy := range parseStrategies {
		var itinerary response_models.Itinerary
		if err := json.Unmarshal([]byte(strategy(raw)), &itinerary); err == nil {
			return &itinerary, nil
		}
	}

	log.Printf("Failed to parse AI response. Raw output:\n%s", raw)
	return nil, utils.ErrMalformedAIResponse
}

func stripMarkdownFence(raw string) string {
	return strings.TrimSpace(fencePattern.ReplaceAllString(strings.TrimSpace(raw), ""))
}
