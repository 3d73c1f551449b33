package routes

import (
	"time"

	"suuq-storefront/authapi"
	"suuq-storefront/cart"
	"suuq-storefront/catalog"
	"suuq-storefront/handlers"
	"suuq-storefront/middleware"
	"suuq-storefront/search"
	"suuq-storefront/session"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(
	r *gin.Engine,
	cartStore *cart.Store,
	sessionCtrl *session.Controller,
	authClient *authapi.Client,
	catalogClient *catalog.Client,
	searches *search.History,
) {
	// Initialize handlers
	cartHandler := &handlers.CartHandler{Cart: cartStore}
	sessionHandler := &handlers.SessionHandler{Session: sessionCtrl, Auth: authClient}
	catalogHandler := &handlers.CatalogHandler{Catalog: catalogClient, Searches: searches}

	r.Use(middleware.EnsureClientToken())

	api := r.Group("/api")
	{
		// Session routes
		api.GET("/auth/status", sessionHandler.GetStatus)
		api.POST("/auth/logout", sessionHandler.Logout)

		// Cart reads are public; the client token only guards mutations
		api.GET("/cart", cartHandler.GetCart)

		// Catalog routes
		api.GET("/products", catalogHandler.GetProducts)
		api.GET("/search", catalogHandler.SearchProducts)
		api.GET("/products/:id", catalogHandler.GetProduct)
		api.GET("/searches/recent", catalogHandler.GetRecentSearches)
	}

	// Credential submissions are rate limited on top of whatever the auth
	// service enforces itself
	limiter := middleware.NewRateLimiter(10, 5*time.Minute)
	credentials := api.Group("/auth")
	credentials.Use(limiter.Middleware())
	{
		credentials.POST("/login", sessionHandler.Login)
		credentials.POST("/signup", sessionHandler.Signup)
	}

	// Mutating routes require the gateway's client token cookie
	protected := api.Group("")
	protected.Use(middleware.RequireClientToken())
	{
		protected.POST("/cart", cartHandler.AddToCart)
		protected.PUT("/cart/:id", cartHandler.UpdateCartItem)
		protected.DELETE("/cart/:id", cartHandler.RemoveFromCart)

		protected.DELETE("/searches/recent", catalogHandler.ClearRecentSearches)
	}
}
