package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/Imamabdulfatah/aiotchain-web-apps-sub000/internal/app"
)

func main() {
	// Missing .env is fine in deployment, where everything comes from the
	// real environment.
	_ = godotenv.Load()

	a, err := app.New()
	if err != nil {
		fmt.Printf("Failed to start: %v\n", err)
		os.Exit(1)
	}
	defer a.Close()

	addr := ":" + a.Cfg.Port
	a.Log.Info("Starting server...", "addr", addr)
	if err := a.Run(addr); err != nil {
		a.Log.Error("Server exited", "error", err)
	}
}
