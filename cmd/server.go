package cmd

import (
	"context"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/getsentry/sentry-go"

	"github.com/lawflow/lawflow-backend/api"
	"github.com/lawflow/lawflow-backend/infra"
	"github.com/lawflow/lawflow-backend/repositories"
	"github.com/lawflow/lawflow-backend/usecases"
	"github.com/lawflow/lawflow-backend/utils"
)

func RunServer() error {
	// This is where we read the environment variables and set up the configuration for the application.
	apiConfig := api.Configuration{
		Env:            utils.GetStringEnv("ENV", "development"),
		AppName:        "lawflow-backend",
		Port:           utils.GetRequiredStringEnv("PORT"),
		ClientAppUrl:   utils.GetStringEnv("CLIENT_APP_URL", ""),
		DefaultTimeout: time.Duration(utils.GetIntEnv("DEFAULT_TIMEOUT_SECOND", 55)) * time.Second,
	}
	pgConfig := infra.PgConfig{
		ConnectionString:   utils.GetStringEnv("PG_CONNECTION_STRING", ""),
		Database:           utils.GetStringEnv("PG_DATABASE", "lawflow"),
		Hostname:           utils.GetStringEnv("PG_HOSTNAME", ""),
		Password:           utils.GetStringEnv("PG_PASSWORD", ""),
		Port:               utils.GetStringEnv("PG_PORT", "5432"),
		User:               utils.GetStringEnv("PG_USER", ""),
		MaxPoolConnections: utils.GetIntEnv("PG_MAX_POOL_SIZE", infra.DEFAULT_MAX_CONNECTIONS),
		SslMode:            utils.GetStringEnv("PG_SSL_MODE", "prefer"),
	}
	driveConfig := infra.DriveConfig{
		CredentialsJSON: utils.GetStringEnv("GOOGLE_CREDENTIALS", ""),
		FolderId:        utils.GetRequiredStringEnv("DRIVE_FOLDER_ID"),
	}
	sentryDsn := utils.GetStringEnv("SENTRY_DSN", "")
	loggingFormat := utils.GetStringEnv("LOGGING_FORMAT", "text")

	logger := utils.NewLogger(loggingFormat)
	ctx := utils.StoreLoggerInContext(context.Background(), logger)

	infra.SetupSentry(sentryDsn, apiConfig.Env)
	defer sentry.Flush(3 * time.Second)

	pool, err := infra.NewPostgresConnectionPool(ctx, pgConfig.GetConnectionString(),
		pgConfig.MaxPoolConnections)
	if err != nil {
		utils.LogAndReportSentryError(ctx, err)
		return err
	}

	driveService, err := infra.NewDriveService(ctx, driveConfig)
	if err != nil {
		utils.LogAndReportSentryError(ctx, err)
		return err
	}

	repos := repositories.NewRepositories(
		pool,
		repositories.WithDriveUploader(driveService, driveConfig.FolderId),
		repositories.WithFetchClient(http.DefaultClient),
	)
	uc := usecases.NewUsecases(repos)

	router := api.InitRouterMiddlewares(ctx, apiConfig)
	server := api.NewServer(router, apiConfig, uc)

	notify, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		logger.InfoContext(ctx, "starting server", slog.String("port", apiConfig.Port))
		err := server.ListenAndServe()
		if !errors.Is(err, http.ErrServerClosed) {
			utils.LogAndReportSentryError(ctx, errors.Wrap(err, "Error while serving the app"))
		}
		logger.InfoContext(ctx, "server returned")
	}()

	<-notify.Done()
	shutdownCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		utils.LogAndReportSentryError(ctx, errors.Wrap(err, "Error while shutting down the server"))
		return err
	}

	return nil
}
