package cmd

import (
	"github.com/lawflow/lawflow-backend/infra"
	"github.com/lawflow/lawflow-backend/repositories"
	"github.com/lawflow/lawflow-backend/utils"
)

func RunMigrations() error {
	pgConfig := infra.PgConfig{
		ConnectionString: utils.GetStringEnv("PG_CONNECTION_STRING", ""),
		Database:         utils.GetStringEnv("PG_DATABASE", "lawflow"),
		Hostname:         utils.GetStringEnv("PG_HOSTNAME", ""),
		Password:         utils.GetStringEnv("PG_PASSWORD", ""),
		Port:             utils.GetStringEnv("PG_PORT", "5432"),
		User:             utils.GetStringEnv("PG_USER", ""),
		SslMode:          utils.GetStringEnv("PG_SSL_MODE", "prefer"),
	}
	logger := utils.NewLogger(utils.GetStringEnv("LOGGING_FORMAT", "text"))

	return repositories.RunMigrations(pgConfig.GetConnectionString(), logger)
}
