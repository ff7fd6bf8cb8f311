package main

import (
	"log"

	_ "arranger/docs"
	"arranger/internal/config"
	"arranger/internal/server"
)

// @title           Schedule Arranger API
// @version         1.0
// @description     API for arranging events: create a schedule with candidate
// @description     slots, share it, and collect per-slot availability and comments.

// @host      localhost:8080
// @BasePath  /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

// @schemes http
func main() {
	cfg := config.Load()

	s, err := server.Init(cfg)
	if err != nil {
		log.Fatalf("❌ Server initialization failed: %v", err)
	}

	s.Run()
}
