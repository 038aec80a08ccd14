package main

import (
	"fmt"
	"os"
	"path/filepath"

	"task-manager/internal/cli"
	"task-manager/internal/config"
	"task-manager/internal/repository/sqlite"
)

// Environment represents the current environment
type Environment string

const (
	Development Environment = "development"
	Testing     Environment = "testing"
	Production  Environment = "production"
)

// setupFor picks where the store lives for env
func setupFor(env Environment) cli.Setup {
	switch env {
	case Development:
		return developmentSetup
	case Testing:
		return testingSetup
	default:
		return cli.DefaultSetup
	}
}

// developmentSetup keeps the database in the working directory
func developmentSetup(cfg *config.Config) (*cli.Dependencies, error) {
	dbPath := filepath.Join(".", "tm-dev.db")
	repo, err := sqlite.NewWithOptions(dbPath, cfg.StorageOptions())
	if err != nil {
		return nil, fmt.Errorf("failed to initialize development database: %w", err)
	}
	return cli.NewDependencies(repo, cfg), nil
}

// testingSetup uses a throwaway in-memory database
func testingSetup(cfg *config.Config) (*cli.Dependencies, error) {
	repo, err := config.CreateTestRepository()
	if err != nil {
		return nil, err
	}
	return cli.NewDependencies(repo, cfg), nil
}

// getEnvironment reads TM_ENV; anything unknown is production
func getEnvironment() Environment {
	switch Environment(os.Getenv("TM_ENV")) {
	case Development:
		return Development
	case Testing:
		return Testing
	default:
		return Production
	}
}
