package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"github.com/janhq/chat-server/internal/config"
	"github.com/janhq/chat-server/internal/domain/channel"
	"github.com/janhq/chat-server/internal/domain/contact"
	"github.com/janhq/chat-server/internal/domain/message"
	"github.com/janhq/chat-server/internal/infrastructure/logger"
	"github.com/janhq/chat-server/internal/infrastructure/repository/mongorepo"
	"github.com/janhq/chat-server/internal/interfaces/httpserver"
	"github.com/janhq/chat-server/internal/interfaces/httpserver/handlers"
)

// Application is the assembled chat server process.
type Application struct {
	httpServer *httpserver.HTTPServer
	log        zerolog.Logger
}

func NewApplication(httpServer *httpserver.HTTPServer, log zerolog.Logger) *Application {
	return &Application{
		httpServer: httpServer,
		log:        log,
	}
}

func (a *Application) Start(ctx context.Context) error {
	return a.httpServer.Run(ctx)
}

func main() {
	loadEnvFiles()

	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	log := logger.New(cfg)
	if err := run(cfg, log); err != nil {
		log.Fatal().Err(err).Msg("application stopped with error")
	}
	log.Info().Msg("application exited cleanly")
}

// run owns every resource it opens, so deferred shutdowns complete before main exits.
func run(cfg *config.Config, log zerolog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	telemetry, err := newTelemetry(ctx, cfg)
	if err != nil {
		return fmt.Errorf("initialize observability: %w", err)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		if err := telemetry.Shutdown(shutdownCtx); err != nil {
			log.Error().Err(err).Msg("shutdown telemetry")
		}
	}()

	client, err := newMongoClient(ctx, newDatabaseConfig(cfg))
	if err != nil {
		return fmt.Errorf("connect database: %w", err)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		if err := client.Disconnect(shutdownCtx); err != nil {
			log.Error().Err(err).Msg("disconnect database")
		}
	}()

	db, err := newMongoDatabase(ctx, client, cfg, log)
	if err != nil {
		return fmt.Errorf("prepare database: %w", err)
	}

	contactRepository := mongorepo.NewContactRepository(db)
	channelRepository := mongorepo.NewChannelRepository(db)
	messageRepository := mongorepo.NewMessageRepository(db)

	sanitizer := newSanitizer(telemetry)
	contactService := contact.NewService(contactRepository, sanitizer, log)
	channelService := channel.NewService(channelRepository, contactRepository, log)
	messageService := message.NewService(messageRepository, contactRepository, channelRepository, sanitizer, log)

	echo, err := newEchoHandler(cfg, telemetry, log)
	if err != nil {
		return fmt.Errorf("initialize websocket echo: %w", err)
	}

	handlerProvider := handlers.NewProvider(contactService, channelService, messageService, log)
	httpServer := httpserver.New(cfg, log, handlerProvider, newReadinessCheck(client), echo, telemetry)
	return NewApplication(httpServer, log).Start(ctx)
}

func loadEnvFiles() {
	paths := []string{".env", "../.env"}
	for _, path := range paths {
		if _, err := os.Stat(path); err == nil {
			if err := godotenv.Overload(path); err != nil {
				fmt.Fprintf(os.Stderr, "warning: failed to load %s: %v\n", path, err)
			}
		}
	}
}
