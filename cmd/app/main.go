package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"

	"dispatch/cmd"
	"dispatch/internal/adapters/out/jsonstore"
	"dispatch/internal/jobs"
)

func main() {
	configs := getConfigs()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	store, err := jsonstore.NewStore(configs.StorePath, logger)
	if err != nil {
		log.Fatalf("Error opening store: %v", err)
	}

	whitelist, err := jsonstore.NewWhitelistStore(configs.WhitelistPath, logger)
	if err != nil {
		log.Fatalf("Error opening whitelist store: %v", err)
	}

	app := cmd.NewCompositionRoot(configs, store, whitelist, logger)

	messenger := app.CreateMessenger()
	app.RegisterNotifier(messenger)

	jobManager := jobs.NewJobManager(
		app.CreateGetDeliveryReportQueryHandler(),
		app.CreateGetPendingOrdersQueryHandler(),
		messenger,
		configs.AdminIDs,
		logger,
	)
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Error starting jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	adminIDs, err := cmd.ParseUserIDList(goDotEnvVariable("ADMIN_IDS"))
	if err != nil {
		log.Fatalf("Error parsing ADMIN_IDS: %v", err)
	}

	defaultWhitelist, err := cmd.ParseUserIDList(goDotEnvVariable("DEFAULT_WHITELIST"))
	if err != nil {
		log.Fatalf("Error parsing DEFAULT_WHITELIST: %v", err)
	}

	whitelistEnabled, err := cmd.ParseBool(goDotEnvVariable("WHITELIST_ENABLED"))
	if err != nil {
		log.Fatalf("Error parsing WHITELIST_ENABLED: %v", err)
	}

	config := cmd.Config{
		HTTPPort:         goDotEnvVariable("HTTP_PORT"),
		AdminIDs:         adminIDs,
		WhitelistEnabled: whitelistEnabled,
		DefaultWhitelist: defaultWhitelist,
		StorePath:        goDotEnvVariable("STORE_PATH"),
		WhitelistPath:    goDotEnvVariable("WHITELIST_PATH"),
		ExportDir:        goDotEnvVariable("EXPORT_DIR"),
		WebhookURL:       goDotEnvVariable("WEBHOOK_URL"),
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

func startWebServer(app cmd.CompositionRoot, port string) {
	server := app.CreateHTTPServer()

	e := server.NewEcho()
	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
