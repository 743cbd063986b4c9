package routes

import (
	"dreamtrip/activities"
	"dreamtrip/assistant"
	"dreamtrip/auth"
	"dreamtrip/budget"
	"dreamtrip/chatstream"
	"dreamtrip/export"
	"dreamtrip/foodmood"
	"dreamtrip/itinerary"
	"dreamtrip/localinfo"
	"dreamtrip/middleware"
	"dreamtrip/ratelim"
	"dreamtrip/trip"

	"github.com/julienschmidt/httprouter"
)

func AddAuthRoutes(router *httprouter.Router, rateLimiter *ratelim.RateLimiter) {
	router.POST("/api/auth/register", rateLimiter.Limit(auth.Register))
	router.POST("/api/auth/login", rateLimiter.Limit(auth.Login))
	router.POST("/api/auth/logout", middleware.Authenticate(auth.Logout))
	router.POST("/api/auth/token/refresh", rateLimiter.Limit(auth.RefreshToken))
}

func AddItineraryRoutes(router *httprouter.Router) {
	router.GET("/api/itinerary", middleware.Authenticate(itinerary.GetItinerary))
	router.PUT("/api/itinerary", middleware.Authenticate(itinerary.ReplaceItinerary))
	router.POST("/api/itinerary/items", middleware.Authenticate(itinerary.AddItineraryItem))
	router.PATCH("/api/itinerary/items/:id/lock", middleware.Authenticate(itinerary.ToggleItemLock))
	router.POST("/api/itinerary/reorder", middleware.Authenticate(itinerary.ReorderItinerary))
	router.POST("/api/itinerary/sync-days", middleware.Authenticate(itinerary.SyncItineraryDays))
	router.POST("/api/itinerary/generate", middleware.Authenticate(itinerary.GenerateItineraryPlan))
	router.POST("/api/itinerary/select-day", middleware.Authenticate(itinerary.SelectDay))

	router.POST("/api/itinerary/share", middleware.Authenticate(itinerary.ShareItinerary))
	router.GET("/api/itinerary/shared/:shareid", itinerary.GetSharedItinerary)
	router.GET("/api/itinerary/share/qr", middleware.Authenticate(itinerary.ShareQR))
}

func AddTripRoutes(router *httprouter.Router) {
	router.GET("/api/trip", middleware.Authenticate(trip.GetTripData))
	router.PUT("/api/trip", middleware.Authenticate(trip.SaveTripData))
}

func AddAssistantRoutes(router *httprouter.Router, svc *assistant.Service, rateLimiter *ratelim.RateLimiter) {
	router.POST("/api/assistant/chat", rateLimiter.Limit(middleware.OptionalAuth(svc.Chat)))
	router.GET("/api/assistant/history", middleware.Authenticate(assistant.GetHistory))
	router.GET("/api/activities", activities.GetActivities)
}

func AddStreamRoutes(router *httprouter.Router, svc *assistant.Service) {
	router.GET("/ws/updates", chatstream.HandleWS)
	router.GET("/ws/assistant", svc.ChatWS)
}

func AddBudgetRoutes(router *httprouter.Router) {
	router.GET("/api/budget", middleware.Authenticate(budget.GetBudget))
	router.POST("/api/budget/expenses", middleware.Authenticate(budget.AddExpense))
	router.DELETE("/api/budget/expenses/:expenseid", middleware.Authenticate(budget.DeleteExpense))
}

func AddFoodMoodRoutes(router *httprouter.Router) {
	router.GET("/api/foodmood/moods", foodmood.GetMoods)
	router.POST("/api/foodmood/match", foodmood.MatchDishes)
}

func AddLocalInfoRoutes(router *httprouter.Router) {
	router.GET("/api/localinfo", localinfo.GetLocalInfo)
}

func AddExportRoutes(router *httprouter.Router) {
	router.GET("/api/export/pdf", middleware.Authenticate(export.ExportPDF))
	router.GET("/api/export/ical", middleware.Authenticate(export.ExportICal))
}
