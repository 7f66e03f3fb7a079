package main

import (
	"context"
	"log"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"
	"wander/cmd/fx/geocoder_fx"
	"wander/cmd/fx/map_fx"
	"wander/cmd/fx/notes_fx"
	"wander/cmd/fx/planner_fx"
	"wander/internal/api/controllers"
	"wander/pkg/middleware"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, reading configuration from environment")
	}

	app := fx.New(
		geocoder_fx.Module,
		map_fx.Module,
		planner_fx.Module,
		notes_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				port := os.Getenv("PORT")
				if port == "" {
					port = "8080"
				}
				log.Printf("Starting HTTP server at :%s", port)
				if err := engine.Run(":" + port); err != nil {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Println("Stopping HTTP server")
			return nil
		},
	})
}

func ProvideRouter(
	itineraryController *controllers.ItineraryController,
	notesController *controllers.NotesController) *gin.Engine {

	r := gin.Default()
	r.Use(gin.Logger())
	r.Use(gin.Recovery())
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.TraceIDMiddleware())

	RegisterRoutes(r, itineraryController, notesController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	itineraryController *controllers.ItineraryController,
	notesController *controllers.NotesController) {

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api/v1")
	api.Use(middleware.ServiceKeyMiddleware(os.Getenv("SERVICE_KEY")))

	api.POST("/itinerary", itineraryController.CreateItineraryHandler)
	api.POST("/itinerary/export", itineraryController.ExportItineraryHandler)
	api.GET("/interests", itineraryController.FormOptionsHandler)

	api.PUT("/notes/:sessionId", notesController.SaveNoteHandler)
	api.GET("/notes/:sessionId", notesController.GetNoteHandler)
}
