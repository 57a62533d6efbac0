package main

import (
	"context"
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/zeon9405/unikraft/internal/app"
)

func main() {
	// Missing .env is fine in containerized deploys.
	godotenv.Load()

	a, err := app.New()
	if err != nil {
		fmt.Printf("Failed to init app: %v\n", err)
		os.Exit(1)
	}
	defer a.Close()

	if err := a.Seed(context.Background()); err != nil {
		a.Log.Error("Seeding failed", "error", err)
		os.Exit(1)
	}

	a.Log.Info("Starting server", "port", a.Cfg.Port)
	if err := a.Run(); err != nil {
		a.Log.Error("Server exited", "error", err)
		os.Exit(1)
	}
}
