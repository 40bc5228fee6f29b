package main

import (
	"context"

	"github.com/fabienvalero1/userdir/internal/client/cli"
	"github.com/fabienvalero1/userdir/internal/client/config"
)

func main() {
	ctx := context.Background()

	cfg := config.LoadConfig()

	app := cli.NewApp(ctx, cfg)
	app.Run(ctx)
}
