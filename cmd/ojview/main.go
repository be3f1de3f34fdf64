package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/caizhw/ojview/internal/app"
)

func main() {
	os.Exit(run())
}

func run() int {
	configPath := flag.String("config", "", "override config path (optional)")
	provider := flag.String("provider", "", "hosting provider: github or gitee (optional)")
	refresh := flag.Bool("refresh", false, "bypass cache freshness and re-fetch on startup")
	flag.Parse()

	// Optional .env so OJVIEW_TOKEN can live next to the binary.
	_ = godotenv.Load()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	opts := app.Options{
		ConfigPath: *configPath,
		Provider:   *provider,
		Refresh:    *refresh,
	}

	if err := app.Run(ctx, opts); err != nil {
		fmt.Fprintf(os.Stderr, "ojview: %v\n", err)
		return 1
	}
	return 0
}
