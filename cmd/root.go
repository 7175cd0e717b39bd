package cmd

import (
	"database/sql"
	"fmt"
	"log"

	"laundry-service/pkg/database"
	"laundry-service/pkg/utils"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var rootCmd = &cobra.Command{
	Use:   "laundry",
	Short: "Laundry order service",
	Long:  "Laundry order service. Runs the HTTP server by default.",
	// No subcommand means serve
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe()
	},
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(createAdminCmd)
	rootCmd.AddCommand(migrateCmd)
}

// Execute runs the CLI.
func Execute() error {
	return rootCmd.Execute()
}

// runtime is what every subcommand needs before doing its work.
type runtime struct {
	config   *utils.Config
	logger   *zap.Logger
	db       *sql.DB
	executor database.Executor
}

func (rt *runtime) Close() {
	if rt.db != nil {
		rt.db.Close()
	}
	rt.logger.Sync()
}

// boot loads config, initializes the logger and checks the database.
func boot() (*runtime, error) {
	config, err := utils.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	logger, err := utils.InitLogger(config.App.LogPath, config.App.Name, config.App.Debug)
	if err != nil {
		log.Printf("Failed to init logger: %v. Using standard log.", err)
		logger, _ = zap.NewProduction()
	}

	db, err := database.InitDB(config.Database)
	if err != nil {
		logger.Error("Failed to connect to database", zap.Error(err))
		logger.Sync()
		return nil, fmt.Errorf("connect database: %w", err)
	}
	logger.Info("Database connected successfully",
		zap.String("host", config.Database.Host),
		zap.String("name", config.Database.Name))

	return &runtime{
		config:   config,
		logger:   logger,
		db:       db,
		executor: database.NewExecutor(db, logger),
	}, nil
}
