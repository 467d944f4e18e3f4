package main

import (
	"context"
	"log"

	"github.com/ayushsatvara1012/village-community-platform-sub000/internal/client/cli"
	"github.com/ayushsatvara1012/village-community-platform-sub000/internal/client/config"
)

func main() {
	ctx := context.Background()

	cfg := config.LoadConfig()
	app, err := cli.NewApp(ctx, cfg)
	if err != nil {
		log.Fatalf("%v", err)
	}

	app.Run(ctx)
}
