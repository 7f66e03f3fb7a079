package request_models

// TripRequest is the form input for a single itinerary submission.
// It is immutable once bound; the pipeline never mutates it.
type TripRequest struct {
	Destination string   `json:"destination" binding:"required"`
	Duration    int      `json:"duration" binding:"required,min=1,max=14"`
	Budget      int      `json:"budget" binding:"required,min=50,max=5000"`
	Interests   []string `json:"interests"`
	Theme       string   `json:"theme"`
}
