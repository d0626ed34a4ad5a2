package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	addrservice "station_lookup_backend/internal/addresses/service"
	"station_lookup_backend/internal/assets"
	"station_lookup_backend/internal/audit"
	stationdomain "station_lookup_backend/internal/stations/domain"
	"station_lookup_backend/internal/stations/repository"
	stationservice "station_lookup_backend/internal/stations/service"
	"station_lookup_backend/platform/config"
	"station_lookup_backend/platform/logger"
)

func main() {
	concurrency := flag.Int("concurrency", audit.DefaultConcurrency, "number of city files audited in parallel")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	log := logger.New(cfg.Env)
	log.Info("starting asset audit", "assetSource", cfg.GetAssetSource())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, err := assets.New(cfg, cfg)
	if err != nil {
		log.Error("failed to initialize asset store", "error", err)
		panic("failed to initialize asset store: " + err.Error())
	}
	names := assets.NamesFromConfig(cfg)

	entries, err := repository.LoadFallback(cfg.GetStationFallbackFile())
	if err != nil {
		log.Error("failed to load station fallback table", "error", err)
		panic("failed to load station fallback table: " + err.Error())
	}

	addrs := addrservice.New(store, names, log)
	stations := stationservice.New(store, names, stationdomain.NewResolver(entries), cfg.GetPhoneRegion(), log)

	reports, err := audit.Run(ctx, addrs, stations, *concurrency)
	if err != nil {
		log.Error("failed to read city list", "error", err, "asset", names.CityList)
		os.Exit(1)
	}
	if len(reports) == 0 {
		log.Warn("city list is empty", "asset", names.CityList)
	}

	failed := 0
	for _, r := range reports {
		switch {
		case r.Err != nil:
			failed++
			log.Error("city audit failed", "city", r.City, "error", r.Err)
		case r.OK():
			log.Info("city ok", "city", r.City, "records", r.Records, "streets", r.Streets, "stations", r.Stations)
		default:
			failed++
			log.Warn("city has problems", "city", r.City, "records", r.Records, "streets", r.Streets, "stations", r.Stations, "unresolved", r.Unresolved)
		}
	}

	log.Info("asset audit complete", "cities", len(reports), "withProblems", failed)
}
