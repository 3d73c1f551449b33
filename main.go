package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"suuq-storefront/authapi"
	"suuq-storefront/cart"
	"suuq-storefront/catalog"
	"suuq-storefront/config"
	"suuq-storefront/routes"
	"suuq-storefront/search"
	"suuq-storefront/session"
	"suuq-storefront/storage"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	// Load environment variables
	if err := config.LoadEnv(); err != nil {
		log.Fatal("Error loading .env file:", err)
	}

	// Validate critical environment variables
	if err := config.ValidateEnv(); err != nil {
		log.Fatal("Environment validation failed: ", err)
	}

	// Open the durable client-side store
	store, err := storage.Open(config.GetEnv("STORE_PATH", "./suuq-store.db"))
	if err != nil {
		log.Fatal("Failed to open local store:", err)
	}

	// Build the stores and service clients
	cartStore := cart.NewStore(store)
	searches := search.NewHistory(store)
	authClient := authapi.NewClient(os.Getenv("AUTH_API_URL"))
	catalogClient := catalog.NewClient(config.GetEnv("CATALOG_API_URL", os.Getenv("AUTH_API_URL")))
	sessionCtrl := session.NewController(authClient)

	// Issue the one startup status check; the UI shows "loading" until it
	// resolves and any failure degrades to the logged-out view
	go sessionCtrl.CheckStatus(context.Background())

	// Setup Gin router
	r := gin.Default()

	// CORS configuration - filter out empty strings from AllowOrigins
	origins := []string{os.Getenv("FRONTEND_URL")}
	var filteredOrigins []string
	for _, o := range origins {
		if o != "" {
			filteredOrigins = append(filteredOrigins, o)
		}
	}
	if len(filteredOrigins) == 0 {
		filteredOrigins = []string{"http://localhost:3000"}
		log.Println("WARNING: No CORS origins configured, defaulting to http://localhost:3000")
	}

	r.Use(cors.New(cors.Config{
		AllowOrigins:     filteredOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "PATCH", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", "Retry-After"},
		AllowCredentials: true,
	}))

	// Setup routes
	routes.SetupRoutes(r, cartStore, sessionCtrl, authClient, catalogClient, searches)

	// Start server with graceful shutdown
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	srv := &http.Server{
		Addr:    ":" + port,
		Handler: r,
	}

	// Run server in a goroutine
	go func() {
		log.Printf("Storefront gateway starting on port %s", port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	// Give outstanding requests 30 seconds to complete
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	// Close the local store
	if err := store.Close(); err != nil {
		log.Printf("Error closing local store: %v", err)
	} else {
		log.Println("Local store closed")
	}

	log.Println("Server exited gracefully")
}
