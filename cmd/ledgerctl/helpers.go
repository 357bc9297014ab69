package main

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	portssvc "github.com/vanditmehta007/EagleEyed-MicroManageYourFinances-sub001/internal/core/ports/services"
	"github.com/vanditmehta007/EagleEyed-MicroManageYourFinances-sub001/internal/core/services"
	"github.com/vanditmehta007/EagleEyed-MicroManageYourFinances-sub001/internal/platform/config"
	"github.com/vanditmehta007/EagleEyed-MicroManageYourFinances-sub001/internal/repositories/database/pgsql"
	"github.com/vanditmehta007/EagleEyed-MicroManageYourFinances-sub001/pkg/database"
)

// openServices loads config, connects and builds the service container. The caller closes the pool.
func openServices(ctx context.Context) (*portssvc.ServiceContainer, *pgxpool.Pool, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}

	pool, err := database.NewPgxPool(ctx, cfg.DatabaseURL, true)
	if err != nil {
		return nil, nil, err
	}

	container, err := services.NewServiceContainer(cfg, pgsql.NewRepositoryProvider(pool))
	if err != nil {
		pool.Close()
		return nil, nil, err
	}
	return container, pool, nil
}

// parseDate parses an optional YYYY-MM-DD flag value.
func parseDate(name, value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		return nil, fmt.Errorf("invalid --%s %q: expected YYYY-MM-DD", name, value)
	}
	return &t, nil
}
