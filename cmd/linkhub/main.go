package main

import (
	"log"

	"github.com/MrSnakeDoc/linkhub/internal/app"
)

func main() {
	if err := app.New().Run(); err != nil {
		log.Fatalf("❌ linkhub failed: %v", err)
	}
}
