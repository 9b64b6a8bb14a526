package main

import (
	"context"
	"fmt"
	"net/http"
	"os"

	"dispatch/cmd"
	_ "dispatch/docs"
	httpadapter "dispatch/internal/adapters/in/http"
	"dispatch/internal/adapters/out/postgres/arearepo"
	"dispatch/internal/adapters/out/postgres/orderrepo"
	"dispatch/internal/adapters/out/postgres/partnerrepo"
	"dispatch/internal/adapters/out/postgres/settingsrepo"
	"dispatch/internal/adapters/out/postgres/tariffrepo"
	"dispatch/internal/generated/servers"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	echoSwagger "github.com/swaggo/echo-swagger"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()

	gormDB := openDatabase(configs)

	app := cmd.NewCompositionRoot(configs, gormDB)
	if err := app.SeedDefaults(context.Background()); err != nil {
		log.Fatalf("Failed to seed defaults: %v", err)
	}

	jobManager := app.CreateJobManager()
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
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

func openDatabase(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser,
		configs.DBPassword, configs.DBName, configs.DBSslMode)

	gormDB, err := gorm.Open(postgresdriver.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	err = gormDB.AutoMigrate(
		&orderrepo.OrderDTO{},
		&partnerrepo.PartnerDTO{},
		&arearepo.AreaDTO{},
		&tariffrepo.ChargeRuleDTO{},
		&settingsrepo.SettingDTO{},
	)
	if err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	return gormDB
}

func startWebServer(app *cmd.CompositionRoot, port string) {
	e := echo.New()

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	server := httpadapter.NewServer(httpadapter.ServerOptions{
		CreateOrderHandler:       app.CreateCreateOrderCommandHandler(),
		AcceptOrderHandler:       app.CreateAcceptOrderCommandHandler(),
		AdvanceOrderHandler:      app.CreateAdvanceOrderCommandHandler(),
		RateOrderHandler:         app.CreateRateOrderCommandHandler(),
		RegisterPartnerHandler:   app.CreateRegisterPartnerCommandHandler(),
		ApprovePartnerHandler:    app.CreateApprovePartnerCommandHandler(),
		RemovePartnerHandler:     app.CreateRemovePartnerCommandHandler(),
		SetPartnerAreaHandler:    app.CreateSetPartnerAreaCommandHandler(),
		SetPartnerOnlineHandler:  app.CreateSetPartnerOnlineCommandHandler(),
		CreateAreaHandler:        app.CreateCreateAreaCommandHandler(),
		SetAreaChargeHandler:     app.CreateSetAreaChargeCommandHandler(),
		SetCommissionRateHandler: app.CreateSetCommissionRateCommandHandler(),

		GetAvailableOrdersHandler: app.CreateGetAvailableOrdersQueryHandler(),
		GetPartnerBoardHandler:    app.CreateGetPartnerBoardQueryHandler(),
		GetCustomerOrdersHandler:  app.CreateGetCustomerOrdersQueryHandler(),
		GetAreasHandler:           app.CreateGetAreasQueryHandler(),
		GetPlatformStatsHandler:   app.CreateGetPlatformStatsQueryHandler(),
	})
	servers.RegisterHandlers(e, server)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
