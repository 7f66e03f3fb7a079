package response_models

// Itinerary mirrors the JSON schema the AI is instructed to return.
// It is read-only after parsing; downstream consumers never modify it.
type Itinerary struct {
	TripSummary        string    `json:"trip_summary"`
	EstimatedTotalCost float64   `json:"estimated_total_cost"`
	Days               []DayPlan `json:"itinerary"`
}

// DayPlan groups activities under a day number. The model does not
// guarantee day numbers are unique, contiguous, or sorted.
type DayPlan struct {
	Day        int        `json:"day"`
	Activities []Activity `json:"activities"`
}

type Activity struct {
	Time          string  `json:"time"`
	PlaceName     string  `json:"place_name"`
	Description   string  `json:"description"`
	EstimatedCost float64 `json:"estimated_cost"`
	// Address may be absent or too vague to resolve; a missing cost
	// decodes to 0.
	Address string `json:"address_for_geocoding"`
}

// ActivityCount returns the number of activities across all days.
func (it *Itinerary) ActivityCount() int {
	n := 0
	for _, day := range it.Days {
		n += len(day.Activities)
	}
	return n
}
