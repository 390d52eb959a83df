package main

import (
	"context"
	"database/sql"
	"os"
	"os/signal"
	"syscall"
	"time"

	"bloodbank-data/internal/config"
	"bloodbank-data/internal/database"
	httpapi "bloodbank-data/internal/http"
	"bloodbank-data/internal/logger"
	"bloodbank-data/internal/repository"
	"bloodbank-data/internal/service"
	"bloodbank-data/internal/store"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

func main() {
	cfg := config.Load()

	log, err := logger.NewLogger(cfg.Log.Level, cfg.Log.Format, "bloodbank-data")
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	kv := store.NewRedisKV(redisClient)
	cache := service.NewDashboardCache(kv, log)

	notifier := service.NewHospitalNotifier(cfg.Notify, log)
	if notifier != nil {
		log.Info("Hospital webhook enabled", zap.String("url", cfg.Notify.WebhookURL))
	}

	// Repositories: Postgres when the DB is reachable, otherwise the
	// in-memory fallback so the dashboard pages still work in dev.
	var db *sql.DB
	var (
		donorsRepo    repository.DonorsRepository
		employeesRepo repository.EmployeesRepository
		hospitalsRepo repository.HospitalsRepository
		inventoryRepo repository.InventoryRepository
		ordersRepo    repository.OrdersRepository
		supplyRepo    repository.SupplyRepository
	)
	if cfg.DBEnabled {
		if d, err := database.NewPostgresDB(&cfg.Database); err == nil {
			db = d
			log.Info("DB enabled for bloodbank-data")
		} else {
			log.Warn("DB enabled but connection failed, falling back to in-memory repositories", zap.Error(err))
		}
	}
	if db != nil {
		donorsRepo = repository.NewPostgresDonorsRepository(db)
		employeesRepo = repository.NewPostgresEmployeesRepository(db)
		hospitalsRepo = repository.NewPostgresHospitalsRepository(db)
		inventoryRepo = repository.NewPostgresInventoryRepository(db)
		ordersRepo = repository.NewPostgresOrdersRepository(db)
		supplyRepo = repository.NewPostgresSupplyRepository(db)
	} else {
		mem := repository.NewMemoryRepo()
		donorsRepo = mem
		employeesRepo = mem
		hospitalsRepo = mem
		inventoryRepo = mem
		ordersRepo = mem
		supplyRepo = mem
	}

	donorService := service.NewDonorService(donorsRepo, log)
	hospitalService := service.NewHospitalService(hospitalsRepo, log)
	employeeService := service.NewEmployeeService(employeesRepo, log)
	inventoryService := service.NewInventoryService(inventoryRepo, hospitalsRepo, cache, notifier, log)
	searchService := service.NewSearchService(db, log)
	dashboardService := service.NewDashboardService(inventoryRepo, donorsRepo, ordersRepo, supplyRepo, cache, log)

	router := httpapi.NewRouter(log)
	router.RegisterAdminRoutes(
		httpapi.NewDonorHandler(donorService, log),
		httpapi.NewHospitalHandler(hospitalService, log),
		httpapi.NewEmployeeHandler(employeeService, log),
		httpapi.NewInventoryHandler(inventoryService, dashboardService, log),
		httpapi.NewOrderHandler(inventoryService, ordersRepo, log),
		httpapi.NewSupplyHandler(inventoryService, supplyRepo, log),
		httpapi.NewSearchHandler(searchService, log),
		httpapi.NewDashboardHandler(dashboardService, log),
	)

	srv := service.NewServer(cfg.HTTP.Addr, router, log)

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigCh:
		log.Info("Shutdown signal received", zap.String("signal", sig.String()))
	case err := <-errCh:
		if err != nil {
			log.Error("HTTP server exited", zap.Error(err))
		}
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	_ = srv.Stop(shutdownCtx)
	_ = redisClient.Close()
	if db != nil {
		_ = db.Close()
	}
}
