package routes

import (
	"travelhub/auth"
	"travelhub/bookings"
	"travelhub/middleware"
	"travelhub/posts"
	"travelhub/prefs"
	"travelhub/ratelim"
	"travelhub/trips"

	"github.com/julienschmidt/httprouter"
)

func AddAuthRoutes(router *httprouter.Router, rl *ratelim.RateLimiter) {
	router.POST("/api/auth/register", rl.Limit(auth.Register))
	router.POST("/api/auth/login", rl.Limit(auth.Login))
	router.POST("/api/auth/token/refresh", rl.Limit(auth.RefreshToken))
}

func AddTripRoutes(router *httprouter.Router, h *trips.Handler) {
	router.GET("/api/trips", middleware.Authenticate(h.GetTrips))
	router.POST("/api/trips", middleware.Authenticate(h.CreateTrip))
	router.GET("/api/trips/:id", middleware.Authenticate(h.GetTrip))
	router.PUT("/api/trips/:id", middleware.Authenticate(h.UpdateTrip))
	router.DELETE("/api/trips/:id", middleware.Authenticate(h.DeleteTrip))
	router.POST("/api/trips/:id/duplicate", middleware.Authenticate(h.DuplicateTrip))
	router.PATCH("/api/trips/:id/status", middleware.Authenticate(h.SetTripStatus))
}

func AddPostRoutes(router *httprouter.Router, h *posts.Handler, ph *prefs.Handler, rl *ratelim.RateLimiter) {
	router.GET("/api/posts", middleware.OptionalAuth(h.ListPosts))
	router.POST("/api/posts", rl.Limit(middleware.Authenticate(h.CreatePost)))
	router.GET("/api/tags/trending", h.TrendingTags)
	router.GET("/api/posts/:id", h.GetPost)
	router.PUT("/api/posts/:id", middleware.Authenticate(h.UpdatePost))
	router.DELETE("/api/posts/:id", middleware.Authenticate(h.DeletePost))

	router.POST("/api/posts/:id/like", middleware.Authenticate(h.ToggleLike))
	router.DELETE("/api/posts/:id/like", middleware.Authenticate(h.ToggleLike))
	router.POST("/api/posts/:id/save", middleware.Authenticate(ph.ToggleSave))
	router.DELETE("/api/posts/:id/save", middleware.Authenticate(ph.ToggleSave))
	router.POST("/api/posts/:id/report", middleware.Authenticate(ph.ReportPost))

	router.POST("/api/posts/:id/comment", middleware.Authenticate(h.AddComment))
	router.PUT("/api/posts/:id/comment/:cid", middleware.Authenticate(h.UpdateComment))
	router.DELETE("/api/posts/:id/comment/:cid", middleware.Authenticate(h.DeleteComment))
	router.POST("/api/posts/:id/comment/:cid/reply", middleware.Authenticate(h.AddReply))
}

func AddUserRoutes(router *httprouter.Router, ph *prefs.Handler, h *posts.Handler) {
	router.GET("/api/users/preferences", middleware.Authenticate(ph.GetPreferences))
	router.PUT("/api/users/preferences", middleware.Authenticate(ph.UpdatePreferences))
	router.GET("/api/users/saved-posts", middleware.Authenticate(ph.SavedPosts))
	router.GET("/api/users/my-comments", middleware.Authenticate(h.MyComments))
}

func AddBookingRoutes(router *httprouter.Router, rl *ratelim.RateLimiter) {
	router.GET("/api/bookings", middleware.Authenticate(bookings.ListBookings))
	router.POST("/api/bookings", rl.Limit(middleware.Authenticate(bookings.CreateBooking)))
	router.GET("/api/bookings/:id", middleware.Authenticate(bookings.GetBooking))
	router.DELETE("/api/bookings/:id", middleware.Authenticate(bookings.DeleteBooking))
	router.PATCH("/api/bookings/:id/status", middleware.Authenticate(bookings.SetBookingStatus))
}
