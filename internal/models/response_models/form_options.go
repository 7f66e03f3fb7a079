package response_models

// FormOptions is the fixed configuration the frontend form renders:
// the interest vocabulary with its defaults and the map theme choices.
type FormOptions struct {
	Interests        []string `json:"interests"`
	DefaultInterests []string `json:"default_interests"`
	Themes           []string `json:"themes"`
	DefaultTheme     string   `json:"default_theme"`
}
