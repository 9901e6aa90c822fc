// Package main runs the coach MCP server over stdio, for local MCP clients.
// The same tools are mounted on the main backend at /mcp over streamable HTTP.
package main

import (
	"context"
	"flag"
	"log"
	"os"

	"github.com/2beens/gymdesk/internal/coachmcp"
	"github.com/2beens/gymdesk/internal/config"
	"github.com/2beens/gymdesk/internal/db"
	"github.com/2beens/gymdesk/internal/events"
	"github.com/2beens/gymdesk/internal/nutrition"
	"github.com/2beens/gymdesk/internal/telemetry/metrics"
	"github.com/2beens/gymdesk/internal/workoutplans"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/prometheus/client_golang/prometheus"
)

func main() {
	env := flag.String("env", "development", "environment [prod | production | dev | development]")
	configPath := flag.String("config", "./config.toml", "path to TOML config file")
	flag.Parse()

	cfg, err := config.Load(*env, *configPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	ctx := context.Background()
	dbPool, err := db.NewDBPool(ctx, db.NewDBPoolParams{
		DBHost:         cfg.PostgresHost,
		DBPort:         cfg.PostgresPort,
		DBName:         cfg.PostgresDBName,
		DBUser:         cfg.PostgresUser,
		DBPassword:     os.Getenv("GYMDESK_POSTGRES_PASS"),
		TracingEnabled: false,
	})
	if err != nil {
		log.Fatalf("db pool: %v", err)
	}
	defer dbPool.Close()

	// nothing scrapes these, the services just need somewhere to count
	metricsManager := metrics.NewManager("gymdesk", "coach_mcp", prometheus.NewRegistry())

	nutritionService := nutrition.NewService(
		nutrition.NewRepo(dbPool),
		nutrition.NewResolver(cfg.ClampNutritionAverageToMembershipAge),
		metricsManager,
	)
	plansService := workoutplans.NewService(workoutplans.NewRepo(dbPool), events.NopPublisher{}, metricsManager)

	server := coachmcp.NewServer(nutritionService, plansService)
	if err := server.Run(ctx, &mcp.StdioTransport{}); err != nil {
		log.Fatal(err)
	}
}
