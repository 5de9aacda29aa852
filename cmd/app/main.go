package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Domenick1991/flightroutes/config"
	"github.com/Domenick1991/flightroutes/internal/bootstrap"
	"github.com/Domenick1991/flightroutes/internal/cache"
	"github.com/Domenick1991/flightroutes/internal/search"
	"github.com/Domenick1991/flightroutes/internal/service/routes"
)

func main() {
	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "config.yaml"
	}

	cfg, err := config.LoadConfig(cfgPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	engine := search.NewEngine(
		cfg.Search.MinWait(),
		cfg.Search.MaxWait(),
		search.WithMaxLegs(cfg.Search.MaxLegs),
		search.WithMaxResults(cfg.Search.MaxResults),
	)

	var resultCache routes.Cache
	if cfg.Redis.Addr != "" {
		resultCache = cache.NewRedisCache(cfg.Redis, time.Duration(cfg.Redis.ItinerariesCacheTTL)*time.Second)
	}

	routeService := routes.NewRouteService(engine, resultCache)

	if err := bootstrap.Run(ctx, cfg, routeService); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
