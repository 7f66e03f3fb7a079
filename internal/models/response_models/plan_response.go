package response_models

// PlanResponse is the full payload for one itinerary submission:
// the parsed itinerary, the assembled map, and any advisory warnings.
type PlanResponse struct {
	Itinerary *Itinerary `json:"itinerary"`
	Map       MapView    `json:"map"`
	// BudgetWarning is advisory only; the itinerary is still rendered
	// in full when the AI estimate exceeds the stated budget.
	BudgetWarning string `json:"budget_warning,omitempty"`
}
