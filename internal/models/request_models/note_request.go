package request_models

type NoteRequest struct {
	Text string `json:"text"`
}
