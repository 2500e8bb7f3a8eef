package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/kossylee/fashionhive-backend/cmd"
	httpin "github.com/kossylee/fashionhive-backend/internal/adapters/in/http"
	"github.com/kossylee/fashionhive-backend/internal/adapters/out/postgres/inventoryrepo"
	"github.com/kossylee/fashionhive-backend/internal/adapters/out/postgres/orderrepo"
	"github.com/kossylee/fashionhive-backend/internal/adapters/out/postgres/tailorrepo"
	"github.com/kossylee/fashionhive-backend/internal/jobs"
)

func main() {
	configs := getConfigs()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	gormDB := mustConnectDB(configs)

	app := cmd.NewCompositionRoot(configs, gormDB, logger)

	jobManager := jobs.NewJobManager(
		app.CreateResetWeeklyWorkloadCommandHandler(),
		app.CreateGetLowStockMaterialsQueryHandler(),
		logger,
	)
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Error starting background jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(&app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:                     goDotEnvVariable("HTTP_PORT"),
		DBHost:                       goDotEnvVariable("DB_HOST"),
		DBPort:                       goDotEnvVariable("DB_PORT"),
		DBUser:                       goDotEnvVariable("DB_USER"),
		DBPassword:                   goDotEnvVariable("DB_PASSWORD"),
		DBName:                       goDotEnvVariable("DB_NAME"),
		DBSslMode:                    goDotEnvVariable("DB_SSLMODE"),
		KafkaHost:                    goDotEnvVariable("KAFKA_HOST"),
		KafkaOrderStatusChangedTopic: goDotEnvVariable("KAFKA_ORDER_STATUS_CHANGED_TOPIC"),
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

func mustConnectDB(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser, configs.DBPassword, configs.DBName, configs.DBSslMode)

	gormDB, err := gorm.Open(gormpostgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Error connecting to database: %v", err)
	}

	err = gormDB.AutoMigrate(
		&orderrepo.OrderDTO{},
		&orderrepo.OrderItemDTO{},
		&inventoryrepo.MaterialDTO{},
		&tailorrepo.TailorDTO{},
	)
	if err != nil {
		log.Fatalf("Error running database migrations: %v", err)
	}

	return gormDB
}

func startWebServer(app *cmd.CompositionRoot, port string) {
	server := httpin.NewServer(
		app.CreateCreateOrderCommandHandler(),
		app.CreateApplyTransitionCommandHandler(),
		app.CreateDeleteOrderCommandHandler(),
		app.CreateAddMaterialCommandHandler(),
		app.CreateCreateTailorCommandHandler(),
		app.CreateGetOrderQueryHandler(),
		app.CreateListOrdersQueryHandler(),
		app.CreateGetLowStockMaterialsQueryHandler(),
	)

	e := echo.New()
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
