package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"travelhub/db"
	"travelhub/mq"
	"travelhub/posts"
	"travelhub/prefs"
	"travelhub/ratelim"
	"travelhub/rdx"
	"travelhub/routes"
	"travelhub/trips"

	"github.com/joho/godotenv"
	"github.com/julienschmidt/httprouter"
	"github.com/rs/cors"
)

// securityHeaders applies a set of recommended HTTP security headers.
func securityHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Content-Type-Options", "nosniff")
		w.Header().Set("X-Frame-Options", "DENY")
		w.Header().Set("Content-Security-Policy", "frame-ancestors 'none'")
		w.Header().Set("Strict-Transport-Security", "max-age=31536000; includeSubDomains; preload")
		w.Header().Set("Referrer-Policy", "no-referrer")
		next.ServeHTTP(w, r)
	})
}

// loggingMiddleware logs each request method, path, remote address, and duration.
func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		log.Printf("%s %s from %s – %v", r.Method, r.RequestURI, r.RemoteAddr, time.Since(start))
	})
}

// Index is a simple health check handler.
func Index(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	fmt.Fprint(w, "200")
}

func setupRouter(rateLimiter *ratelim.RateLimiter) *httprouter.Router {
	tripHandler := trips.NewHandler(trips.NewService(trips.NewMongoStore(db.TripsCollection)))

	prefsStore := prefs.NewMongoStore(db.PrefsCollection)
	prefsService := prefs.NewService(prefsStore)

	postStore := posts.NewMongoStore(db.PostsCollection)
	filterPolicy := prefs.PolicyFromString(os.Getenv("FEED_FILTER_POLICY"))
	postService := posts.NewService(postStore, prefsStore, filterPolicy)
	postHandler := posts.NewHandler(postService)

	prefsHandler := prefs.NewHandler(prefsService, postStore)

	router := httprouter.New()
	router.GET("/health", Index)

	routes.AddAuthRoutes(router, rateLimiter)
	routes.AddTripRoutes(router, tripHandler)
	routes.AddPostRoutes(router, postHandler, prefsHandler, rateLimiter)
	routes.AddUserRoutes(router, prefsHandler, postHandler)
	routes.AddBookingRoutes(router, rateLimiter)

	return router
}

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found; using system environment")
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = ":8080"
	} else if port[0] != ':' {
		port = ":" + port
	}

	initCtx, initCancel := context.WithTimeout(context.Background(), 10*time.Second)
	if err := db.Init(initCtx); err != nil {
		log.Fatalf("MongoDB connection failed: %v", err)
	}
	if err := rdx.Init(initCtx); err != nil {
		log.Printf("Redis unavailable, feed hydration and trending disabled: %v", err)
	}
	initCancel()

	workerCtx, stopWorker := context.WithCancel(context.Background())
	go mq.StartEventWorker(workerCtx)

	rateLimiter := ratelim.NewRateLimiter()
	router := setupRouter(rateLimiter)

	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"}, // lock down in production
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
	}).Handler(router)

	handler := loggingMiddleware(securityHeaders(corsHandler))

	server := &http.Server{
		Addr:              port,
		Handler:           handler,
		ReadTimeout:       7 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       120 * time.Second,
		ReadHeaderTimeout: 2 * time.Second,
	}

	go func() {
		log.Printf("Server listening on %s", port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("ListenAndServe error: %v", err)
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	<-sigCh

	log.Println("Shutdown signal received; shutting down gracefully...")
	stopWorker()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		log.Fatalf("Graceful shutdown failed: %v", err)
	}
	if err := db.Close(ctx); err != nil {
		log.Printf("MongoDB disconnect failed: %v", err)
	}

	log.Println("Server stopped cleanly")
}
