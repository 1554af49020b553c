package main

import (
	"log"

	"guesthub/internal/config"
	"guesthub/internal/database"
	"guesthub/internal/modules/catalog"
	"guesthub/internal/server"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadDotEnv()

	cfg, err := config.LoadServerConfig()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("db connect failed: %v", err)
	}

	r, err := server.New(cfg, db, catalog.DefaultCatalog())
	if err != nil {
		log.Fatalf("server init failed: %v", err)
	}

	log.Printf("devapi listening port=%s env=%s", cfg.Port, cfg.AppEnv)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
