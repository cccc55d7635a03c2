package main

import (
	"context"
	"fmt"
	"log/slog"
	stdhttp "net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"marketplace/cmd"
	httpin "marketplace/internal/adapters/in/http"
	"marketplace/internal/adapters/out/postgres/accountrepo"
	"marketplace/internal/adapters/out/postgres/complaintrepo"
	"marketplace/internal/adapters/out/postgres/orderrepo"
	"marketplace/internal/adapters/out/postgres/shipmentrepo"
	"marketplace/internal/adapters/out/postgres/shoprepo"
	"marketplace/internal/pkg/metrics"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	db, err := openDatabase(configs)
	if err != nil {
		logger.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}

	if err = migrate(db); err != nil {
		logger.Error("Failed to migrate database", "error", err)
		os.Exit(1)
	}

	metrics.Register()

	app := cmd.NewCompositionRoot(configs, db)

	jobManager := app.CreateJobManager(logger)
	if err = jobManager.StartAll(); err != nil {
		logger.Error("Failed to start background jobs", "error", err)
		os.Exit(1)
	}
	defer jobManager.StopAll()

	startWebServer(&app, configs.HTTPPort, logger)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:           goDotEnvVariable("HTTP_PORT"),
		DBHost:             goDotEnvVariable("DB_HOST"),
		DBPort:             goDotEnvVariable("DB_PORT"),
		DBUser:             goDotEnvVariable("DB_USER"),
		DBPassword:         goDotEnvVariable("DB_PASSWORD"),
		DBName:             goDotEnvVariable("DB_NAME"),
		DBSslMode:          goDotEnvVariable("DB_SSLMODE"),
		SLAMonitorSchedule: goDotEnvVariable("SLA_MONITOR_SCHEDULE"),
	}
	if config.SLAMonitorSchedule == "" {
		config.SLAMonitorSchedule = "0 * * * * *"
	}
	return config
}

func goDotEnvVariable(key string) string {
	err := godotenv.Load(".env")
	if err != nil {
		log.Fatalf("Error loading .env file")
	}
	return os.Getenv(key)
}

func openDatabase(configs cmd.Config) (*gorm.DB, error) {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser,
		configs.DBPassword, configs.DBName, configs.DBSslMode,
	)

	// TranslateError maps driver duplicate-key failures onto gorm.ErrDuplicatedKey,
	// which the repositories surface as concurrency conflicts
	return gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
}

func migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&accountrepo.AccountDTO{},
		&shoprepo.ShopDTO{},
		&orderrepo.OrderDTO{},
		&shipmentrepo.ShipmentDTO{},
		&complaintrepo.ComplaintDTO{},
		&complaintrepo.ComplaintMessageDTO{},
	)
}

func startWebServer(app *cmd.CompositionRoot, port string, logger *slog.Logger) {
	e := echo.New()
	e.HideBanner = true
	e.Use(httpin.MetricsMiddleware())

	server := httpin.NewServer(
		app.CreateReviewShopCommandHandler(),
		app.CreateReviewShipperCommandHandler(),
		app.CreateUpdateShipmentStatusCommandHandler(),
		app.CreateCreateComplaintCommandHandler(),
		app.CreateAppendComplaintMessageCommandHandler(),
		app.CreateUpdateComplaintStatusCommandHandler(),
		app.CreateGetComplaintQueryHandler(),
		app.CreateGetOverdueComplaintsQueryHandler(),
		app.CreateGetPendingReviewsQueryHandler(),
		app.Clock(),
	)
	server.RegisterRoutes(e)

	e.GET("/health", func(c echo.Context) error {
		return c.String(stdhttp.StatusOK, "Healthy")
	})
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	go func() {
		if err := e.Start(fmt.Sprintf("0.0.0.0:%s", port)); err != nil && err != stdhttp.ErrServerClosed {
			logger.Error("Web server stopped", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		logger.Error("Failed to shut down web server", "error", err)
	}
}
