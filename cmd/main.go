package main

import (
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"ntreal/notes/config"
	"ntreal/notes/database"
	"ntreal/notes/middleware"
	"ntreal/notes/routes"
	"ntreal/notes/services"

	"github.com/gin-gonic/gin"
)

func main() {
	cfg := config.Load()

	db, err := database.Setup(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	// Initialize authentication service
	authService := services.NewAuthService(cfg.JWTSecret, cfg.JWTExpirationHours)
	services.AuthServiceInstance = authService

	// Initialize user service with auth service dependency
	userService := services.NewUserService(authService)
	services.UserServiceInstance = userService

	router := gin.Default()
	router.LoadHTMLGlob(cfg.TemplatesGlob)
	router.Use(middleware.CORSMiddleware(cfg.AllowedOrigins))

	// Account pages are the only endpoints reachable without a session
	routes.RegisterAccountRoutes(router, db, authService, userService)

	// Everything else requires an authenticated caller
	authorized := router.Group("/", middleware.AuthMiddleware(authService))
	routes.RegisterNoteRoutes(authorized, db, services.NoteServiceInstance)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-quit
		log.Println("Shutting down server...")
		db.Close()
		os.Exit(0)
	}()

	log.Printf("Notes server is running on port %s", cfg.AppPort)
	if err := http.ListenAndServe(":"+cfg.AppPort, router); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
