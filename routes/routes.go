package routes

import (
	"os"

	"github.com/fadhlanhapp/trekshare-backend/config"
	"github.com/fadhlanhapp/trekshare-backend/handlers"

	"github.com/gin-gonic/gin"
)

// SetupRoutes configures all API routes for the application
func SetupRoutes(router *gin.Engine, services *handlers.HandlerServices, cfg *config.Config) {
	// Create uploads directory if not exists
	os.MkdirAll(cfg.Uploads.Dir, os.ModePerm)
	router.Static("/uploads", cfg.Uploads.Dir)

	handlers.InitHandlers(services)

	router.Use(handlers.SessionMiddleware([]byte(cfg.Security.JWTSecret)))

	quoteLimiter := handlers.NewRateLimiter(cfg.RateLimit.QuoteRPS, cfg.RateLimit.QuoteBurst)

	v1 := router.Group("/api/v1")
	{
		// Catalog endpoints
		v1.GET("/regions", handlers.ListRegions)
		v1.GET("/regions/:id", handlers.GetRegion)
		v1.GET("/treks", handlers.ListTreks)
		v1.GET("/treks/:id", handlers.GetTrek)
		v1.GET("/guides", handlers.ListGuides)

		// Quote endpoints
		quotes := v1.Group("", quoteLimiter.Middleware())
		quotes.GET("/treks/:id/quote", handlers.GetTrekQuote)
		quotes.GET("/treks/:id/quotes", handlers.GetTrekQuoteTable)
		quotes.GET("/treks/:id/quotes/export", handlers.ExportTrekQuotes)
		quotes.POST("/quotes/calculate", handlers.CalculateQuote)

		// Itinerary editor endpoints
		v1.POST("/treks/:id/itinerary/drafts", handlers.OpenItineraryDraft)
		v1.GET("/itinerary/drafts/:draftId", handlers.GetItineraryDraft)
		v1.POST("/itinerary/drafts/:draftId/edits", handlers.ApplyItineraryEdits)
		v1.POST("/itinerary/drafts/:draftId/submit", handlers.SubmitItineraryDraft)
		v1.DELETE("/itinerary/drafts/:draftId", handlers.DiscardItineraryDraft)

		// Booking wizard endpoints
		v1.POST("/bookings/drafts", handlers.StartBooking)
		v1.GET("/bookings/drafts/:draftId", handlers.GetBookingDraft)
		v1.PATCH("/bookings/drafts/:draftId", handlers.UpdateBookingForm)
		v1.POST("/bookings/drafts/:draftId/next", handlers.NextBookingStep)
		v1.POST("/bookings/drafts/:draftId/back", handlers.PreviousBookingStep)
		v1.POST("/bookings/drafts/:draftId/submit", handlers.SubmitBooking)
		v1.GET("/bookings/:id", handlers.GetBooking)

		v1.GET("/navigation", handlers.ResolveNavigation)
	}

	// Template form endpoints
	router.POST("/api/treks/templates", handlers.CreateTrekTemplate)
	router.PATCH("/api/treks/templates/:id", handlers.UpdateTrekTemplate)
}
