package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"

	"parcel/cmd"
	parcel_http "parcel/internal/adapters/in/http"
	"parcel/internal/adapters/out/postgres"
	"parcel/internal/jobs"
)

func main() {
	configs := getConfigs()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	db := mustOpenDatabase(configs)
	if err := postgres.Migrate(db); err != nil {
		log.Fatalf("Migration failed: %v", err)
	}
	if err := postgres.SeedCatalogs(db); err != nil {
		log.Fatalf("Catalog seeding failed: %v", err)
	}

	app := cmd.NewCompositionRoot(configs, db)

	jobManager := jobs.NewJobManager(
		app.CreateCreatePayoutCommandHandler(),
		app.SettlementUoWFactory(),
		logger,
	)
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Job startup failed: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(&app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:   goDotEnvVariable("HTTP_PORT"),
		DBHost:     goDotEnvVariable("DB_HOST"),
		DBPort:     goDotEnvVariable("DB_PORT"),
		DBUser:     goDotEnvVariable("DB_USER"),
		DBPassword: goDotEnvVariable("DB_PASSWORD"),
		DBName:     goDotEnvVariable("DB_NAME"),
		DBSslMode:  goDotEnvVariable("DB_SSLMODE"),
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

func mustOpenDatabase(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser, configs.DBPassword,
		configs.DBName, configs.DBSslMode)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Database connection failed: %v", err)
	}
	return db
}

func startWebServer(app *cmd.CompositionRoot, port string) {
	e := echo.New()
	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})

	server := parcel_http.NewServer(parcel_http.Handlers{
		AddStatus:             app.CreateAddStatusCommandHandler(),
		CreateShipment:        app.CreateCreateShipmentCommandHandler(),
		UpdateShipmentStatus:  app.CreateUpdateShipmentStatusCommandHandler(),
		AssignCourier:         app.CreateAssignCourierCommandHandler(),
		DeleteShipment:        app.CreateDeleteShipmentCommandHandler(),
		CreateReturn:          app.CreateCreateReturnShipmentCommandHandler(),
		ReconcileCash:         app.CreateReconcileCashCommandHandler(),
		CreatePayout:          app.CreateCreatePayoutCommandHandler(),
		UpdatePayoutStatus:    app.CreateUpdatePayoutStatusCommandHandler(),
		UpdateCourierLocation: app.CreateUpdateCourierLocationCommandHandler(),
		GetShipmentByTracking: app.CreateGetShipmentByTrackingQueryHandler(),
		GetPendingPayouts:     app.CreateGetPendingPayoutsQueryHandler(),
		GetPayoutsForUser:     app.CreateGetPayoutsForUserQueryHandler(),
		GetPayoutByID:         app.CreateGetPayoutByIDQueryHandler(),
		GetPayoutItems:        app.CreateGetPayoutItemsQueryHandler(),
		GetMovementsForUser:   app.CreateGetMovementsForUserQueryHandler(),
		ListStatuses:          app.CreateListStatusesQueryHandler(),
	})
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
