package main

import (
	"log"

	"github.com/gin-gonic/gin"

	"go-linkedin-jobs/internal/browser"
	"go-linkedin-jobs/internal/config"
	"go-linkedin-jobs/internal/handlers"
	"go-linkedin-jobs/internal/scraper/linkedin"
)

func main() {
	cfg := config.Load()

	manager, err := browser.NewManager(cfg.Scrape)
	if err != nil {
		log.Fatalf("❌ Failed to init browser: %v", err)
	}
	defer manager.Close()

	engine := linkedin.NewEngine(manager, cfg.Scrape)

	r := gin.Default()
	handlers.Register(r, engine)

	log.Printf("Server listening on port %s", cfg.Server.Port)
	if err := r.Run(":" + cfg.Server.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
