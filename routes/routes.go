package routes

import (
	"net/http"

	"trotter/export"
	"trotter/itinerary"
	"trotter/middleware"
	"trotter/pages"
	"trotter/ratelim"
	"trotter/recommend"

	"github.com/julienschmidt/httprouter"
)

func AddStaticRoutes(router *httprouter.Router) {
	router.ServeFiles("/static/coverpic/*filepath", http.Dir("static/coverpic"))
}

func AddPublicRoutes(router *httprouter.Router, h *pages.Handlers, rl *ratelim.RateLimiter) {
	router.GET("/", middleware.OptionalSession(h.Home))
	router.GET("/login", middleware.OptionalSession(h.LoginPage))
	router.POST("/login", rl.Limit(h.Login))
	router.GET("/signup", middleware.OptionalSession(h.SignupPage))
	router.POST("/signup", rl.Limit(h.Signup))
	router.POST("/logout", h.Logout)
}

func AddTripRoutes(router *httprouter.Router, h *pages.Handlers) {
	router.GET("/trips", middleware.RequireSession(h.TripsPage))
	router.GET("/newtrip", middleware.RequireSession(h.NewTripPage))
	router.POST("/newtrip", middleware.RequireSession(h.CreateTrip))
	router.GET("/trips/:id/view", middleware.RequireSession(h.SchedulePage))
	router.POST("/trips/:id/share", middleware.RequireSession(h.ShareTrip))
	router.POST("/trips/:id/delete", middleware.RequireSession(h.DeleteTrip))
	router.GET("/calendar", middleware.RequireSession(h.CalendarPage))
	router.GET("/activities", middleware.RequireSession(h.ActivitiesPage))
	router.GET("/profile", middleware.RequireSession(h.ProfilePage))
	router.POST("/profile", middleware.RequireSession(h.UpdateProfile))
}

func AddItineraryRoutes(router *httprouter.Router, h *itinerary.Handlers) {
	router.GET("/trips/:id/itinerary", middleware.RequireSession(h.BuilderPage))
	router.POST("/trips/:id/stops", middleware.RequireSession(h.AddStop))
	router.POST("/trips/:id/stops/:sid/remove", middleware.RequireSession(h.RemoveStop))
	router.POST("/trips/:id/stops/:sid/update", middleware.RequireSession(h.UpdateStop))
	router.POST("/trips/:id/stops/:sid/activities", middleware.RequireSession(h.OpenPicker))
	router.POST("/trips/:id/save", middleware.RequireSession(h.SaveTrip))
}

func AddRecommendRoutes(router *httprouter.Router, h *recommend.Handlers) {
	router.GET("/recommendations/:cityid", middleware.RequireSession(h.Page))
	router.POST("/recommendations/toggle", middleware.RequireSession(h.Toggle))
	router.POST("/recommendations/confirm", middleware.RequireSession(h.Confirm))
}

func AddExportRoutes(router *httprouter.Router, h *export.Handlers) {
	router.GET("/trips/:id/pdf", middleware.RequireSession(h.TripPDF))
}

// Shared pages are the public surface; no session involved.
func AddSharedRoutes(router *httprouter.Router, p *pages.Handlers, e *export.Handlers) {
	router.GET("/shared/:slug", middleware.OptionalSession(p.SharedPage))
	router.GET("/shared/:slug/qr", e.SharedQR)
}
