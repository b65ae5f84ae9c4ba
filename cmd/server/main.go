package main

import (
	"context"
	"os"

	"github.com/dmitrijs2005/fintrack/internal/server"
	"github.com/dmitrijs2005/fintrack/internal/server/config"
)

func main() {
	ctx := context.Background()
	cfg := config.LoadConfig()

	if err := server.NewApp(cfg).Run(ctx); err != nil {
		os.Exit(1)
	}
}
