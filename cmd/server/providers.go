package main

import (
	"context"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/janhq/chat-server/internal/config"
	"github.com/janhq/chat-server/internal/infrastructure/database"
	"github.com/janhq/chat-server/internal/interfaces/httpserver"
	"github.com/janhq/chat-server/internal/interfaces/realtime"
	"github.com/janhq/chat-server/pkg/observability"
	"github.com/janhq/chat-server/pkg/observability/session"
	"github.com/janhq/chat-server/pkg/telemetry"
)

const serviceVersion = "0.1.0"

func newObservabilityConfig(cfg *config.Config) observability.Config {
	obs := observability.DefaultConfig(cfg.ServiceName)
	obs.ServiceVersion = serviceVersion
	obs.Environment = cfg.Environment
	obs.TracingEnabled = cfg.EnableTracing
	obs.MetricsEnabled = cfg.EnableMetrics
	obs.OTLPEndpoint = cfg.OTLPEndpoint
	obs.PIILevel = cfg.PIILevel
	obs.PIISalt = cfg.PIISalt
	return obs
}

func newTelemetry(ctx context.Context, cfg *config.Config) (*observability.Provider, error) {
	return observability.Init(ctx, newObservabilityConfig(cfg))
}

func newSanitizer(provider *observability.Provider) *telemetry.Sanitizer {
	return provider.Sanitizer
}

func newDatabaseConfig(cfg *config.Config) database.Config {
	return database.Config{
		URI:            cfg.MongoURI,
		Database:       cfg.MongoDatabase,
		AppName:        cfg.ServiceName,
		ConnectTimeout: cfg.MongoConnectTimeout,
		MaxPoolSize:    cfg.MongoMaxPoolSize,
	}
}

func newMongoClient(ctx context.Context, dbCfg database.Config) (*mongo.Client, error) {
	client, _, err := database.Connect(ctx, dbCfg)
	return client, err
}

func newMongoDatabase(ctx context.Context, client *mongo.Client, cfg *config.Config, log zerolog.Logger) (*mongo.Database, error) {
	db := client.Database(cfg.MongoDatabase)
	if !cfg.MongoEnsureIndexes {
		log.Info().Msg("index creation disabled")
		return db, nil
	}
	if err := database.EnsureIndexes(ctx, db, log); err != nil {
		return nil, err
	}
	return db, nil
}

func newReadinessCheck(client *mongo.Client) httpserver.ReadinessCheck {
	return func(ctx context.Context) error {
		return database.Ping(ctx, client)
	}
}

func newEchoHandler(cfg *config.Config, provider *observability.Provider, log zerolog.Logger) (*realtime.EchoHandler, error) {
	if !cfg.WebsocketEnabled {
		return nil, nil
	}
	sessions, err := session.NewInstrumenter(provider.Tracer, provider.Meter, cfg.ServiceName)
	if err != nil {
		return nil, err
	}
	return realtime.NewEchoHandler(sessions, log), nil
}
