package main

import (
	"context"
	"flag"
	"os"

	"github.com/yigit/student-api/internal/config"
	"github.com/yigit/student-api/internal/pkg/logger"
	"github.com/yigit/student-api/internal/server"
)

// @title Student API
// @version 1.0
// @description Attendance records, users, markets, vendors and articles on PostgreSQL

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /
// @schemes http https

func main() {
	configFlag := flag.String("config", "", "path to the YAML config file (defaults to $CONFIG_PATH or "+config.DefaultConfigPath+")")
	flag.Parse()

	srv, err := server.NewServer(context.Background(), config.ResolvePath(*configFlag))
	if err != nil {
		// Failing to reach the database or to migrate it is fatal
		logger.Error().Err(err).Msg("Failed to initialize server")
		os.Exit(1)
	}

	// Blocks until shutdown signal
	if err := srv.Run(); err != nil {
		logger.Error().Err(err).Msg("Server execution failed or shutdown encountered errors")
		os.Exit(1)
	}

	logger.Info().Msg("Application finished gracefully.")
}
