package main

import (
	"log"

	_ "github.com/lib/pq"

	"github.com/Ismail-Lafhiel/-evento/internal/app"
	"github.com/Ismail-Lafhiel/-evento/internal/config"
)

func main() {
	cfg := config.MustLoad()

	application, err := app.New(cfg)
	if err != nil {
		log.Fatalf("app init: %v", err)
	}

	if err = application.Run(); err != nil {
		log.Fatalf("app run: %v", err)
	}
}
