package app

import (
	"log/slog"
	"time"

	"github.com/MUTHU-SANJAI/Crypto-Upgrade-Monitor/config"
	"github.com/MUTHU-SANJAI/Crypto-Upgrade-Monitor/internal/domain/model"
	"github.com/MUTHU-SANJAI/Crypto-Upgrade-Monitor/internal/domain/service"
	"github.com/MUTHU-SANJAI/Crypto-Upgrade-Monitor/internal/infrastructure/explorer"
	"github.com/MUTHU-SANJAI/Crypto-Upgrade-Monitor/internal/infrastructure/snapshot"
	"github.com/MUTHU-SANJAI/Crypto-Upgrade-Monitor/pkg/utils"
)

// AppContext holds all app dependencies
type AppContext struct {
	Config      *config.Config
	Events      *service.EventAggregator
	Predictions *service.PredictionService
}

// NewApp initializes the app context with all dependencies
func NewApp(log *slog.Logger, cfg *config.Config) *AppContext {
	app := &AppContext{Config: cfg}

	timeout := time.Duration(cfg.ClientTimeout) * time.Second

	// Outbound data sources
	explorerClient := explorer.NewClient(log, explorer.Config{
		APIKeys: map[model.Network]string{
			model.NetworkEthereum: cfg.EtherscanAPIKey,
			model.NetworkPolygon:  cfg.PolygonscanAPIKey,
			model.NetworkArbitrum: cfg.ArbiscanAPIKey,
		},
		Timeout: timeout,
	})
	snapshotClient := snapshot.NewClient(log, cfg.SnapshotGraphQLURL, timeout)
	log.Info("upstream clients initialized",
		slog.String("snapshot_url", cfg.SnapshotGraphQLURL))

	// Shared random source for placeholder model output
	rnd := utils.NewLockedRand()

	app.Events = service.NewEventAggregator(log, snapshotClient, explorerClient, rnd)
	app.Predictions = service.NewPredictionService(log, rnd)
	log.Info("services initialized")

	return app
}
