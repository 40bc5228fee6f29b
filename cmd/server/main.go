package main

import (
	"context"
	"log"

	"github.com/fabienvalero1/userdir/internal/server"
	"github.com/fabienvalero1/userdir/internal/server/config"
)

func main() {
	ctx := context.Background()

	cfg := config.LoadConfig()

	app, err := server.NewApp(ctx, cfg)
	if err != nil {
		log.Fatalf("init error: %v", err)
	}

	app.Run(ctx)
}
