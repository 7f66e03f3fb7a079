package planner_fx

import (
	"fmt"
	"log"
	"os"
	"strings"

	"go.uber.org/fx"
	"wander/internal/api/controllers"
	"wander/internal/services"
	"wander/pkg/utils"
)

var Module = fx.Provide(
	ProvideAIClient,
	ProvideItineraryService,
	ProvideExportService,
	ProvideItineraryController)

// AIConfig holds configuration for the generative AI client.
type AIConfig struct {
	Provider string
	APIKey   string
	Model    string
}

// ProvideAIClient creates the AI client from environment variables.
// A missing credential is fatal at startup: the whole flow is useless
// without it and only external reconfiguration can fix it.
func ProvideAIClient() (utils.AIClientInterface, error) {
	config := getAIConfig()

	log.Printf("Initializing %s AI client with model: %s", config.Provider, config.Model)

	client, err := utils.NewAIClient(config.Provider, config.APIKey, config.Model)
	if err != nil {
		return nil, fmt.Errorf("failed to create AI client: %w", err)
	}
	return client, nil
}

func ProvideItineraryService(
	aiClient utils.AIClientInterface,
	mapService services.MapServiceInterface,
) services.ItineraryServiceInterface {
	return services.NewItineraryService(aiClient, mapService)
}

func ProvideExportService() services.ExportServiceInterface {
	return services.NewExportService()
}

func ProvideItineraryController(
	itineraryService services.ItineraryServiceInterface,
	exportService services.ExportServiceInterface,
) *controllers.ItineraryController {
	return controllers.NewItineraryController(itineraryService, exportService)
}

// getAIConfig reads provider configuration from environment variables.
func getAIConfig() AIConfig {
	provider := getEnvWithDefault("AI_PROVIDER", "gemini")

	var apiKey, model string

	switch strings.ToLower(provider) {
	case "openai":
		apiKey = os.Getenv("OPENAI_API_KEY")
		model = getEnvWithDefault("OPENAI_MODEL", "gpt-4o-mini")
		if apiKey == "" {
			log.Fatal("OPENAI_API_KEY is required when using OpenAI provider")
		}
	case "gemini":
		apiKey = os.Getenv("GEMINI_API_KEY")
		model = getEnvWithDefault("GEMINI_MODEL", "gemini-2.5-flash")
		if apiKey == "" {
			log.Fatal("GEMINI_API_KEY is required when using Gemini provider")
		}
	}

	return AIConfig{
		Provider: provider,
		APIKey:   apiKey,
		Model:    model,
	}
}

func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
