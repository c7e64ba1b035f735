package main

import (
	"log"

	"github.com/amu0701/aman-khelkud-backend-main/internal/app"
	"github.com/amu0701/aman-khelkud-backend-main/internal/config"
	"github.com/joho/godotenv"
)

func main() {
	// .env is optional, real environment wins
	_ = godotenv.Load()

	cfg := config.MustLoad()

	application, err := app.New(cfg)
	if err != nil {
		log.Fatalf("app init: %v", err)
	}

	if err = application.Run(); err != nil {
		log.Fatalf("app run: %v", err)
	}
}
