package main

import (
	"context"
	"log"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"

	"wayfarer/cmd/fx/budget_fx"
	"wayfarer/cmd/fx/chat_fx"
	"wayfarer/cmd/fx/completion_fx"
	"wayfarer/cmd/fx/db_fx"
	"wayfarer/cmd/fx/itinerary_fx"
	"wayfarer/internal/api/controllers"
	"wayfarer/pkg/middleware"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on process environment")
	}

	app := fx.New(
		completion_fx.Module,
		db_fx.Module,
		itinerary_fx.Module,
		chat_fx.Module,
		budget_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine) {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
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
	chatController *controllers.ChatController,
	budgetController *controllers.BudgetController) *gin.Engine {

	r := gin.Default()
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.TraceIDMiddleware())

	RegisterRoutes(r, itineraryController, chatController, budgetController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	itineraryController *controllers.ItineraryController,
	chatController *controllers.ChatController,
	budgetController *controllers.BudgetController) {

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	itineraryGroup := r.Group("/itineraries")
	itineraryGroup.Use(middleware.SessionMiddleware())
	itineraryGroup.POST("", itineraryController.GenerateItineraryHandler)

	chatGroup := r.Group("/chat")
	chatGroup.Use(middleware.SessionMiddleware())
	chatGroup.POST("/messages", chatController.PostMessageHandler)
	chatGroup.GET("/history", chatController.GetHistoryHandler)
	chatGroup.POST("/clear", chatController.ClearHistoryHandler)

	budgetGroup := r.Group("/budget")
	budgetGroup.POST("/predictions", budgetController.PredictBudgetHandler)
}
