//go:build wireinject

package main

import (
	"context"

	"github.com/google/wire"

	"github.com/janhq/chat-server/internal/config"
	"github.com/janhq/chat-server/internal/domain/channel"
	"github.com/janhq/chat-server/internal/domain/contact"
	"github.com/janhq/chat-server/internal/domain/message"
	"github.com/janhq/chat-server/internal/infrastructure/logger"
	"github.com/janhq/chat-server/internal/infrastructure/repository/mongorepo"
	"github.com/janhq/chat-server/internal/interfaces/httpserver"
	"github.com/janhq/chat-server/internal/interfaces/httpserver/handlers"
)

var repositorySet = wire.NewSet(
	mongorepo.NewContactRepository,
	wire.Bind(new(contact.Repository), new(*mongorepo.ContactRepository)),
	mongorepo.NewChannelRepository,
	wire.Bind(new(channel.Repository), new(*mongorepo.ChannelRepository)),
	mongorepo.NewMessageRepository,
	wire.Bind(new(message.Repository), new(*mongorepo.MessageRepository)),
)

var serviceSet = wire.NewSet(
	newSanitizer,
	contact.NewService,
	channel.NewService,
	message.NewService,
)

// BuildApplication demonstrates how to assemble the chat server with Wire.
// Shutdown of the telemetry provider and the mongo client is left to the caller.
func BuildApplication(ctx context.Context) (*Application, error) {
	wire.Build(
		config.Load,
		logger.New,
		newTelemetry,
		newDatabaseConfig,
		newMongoClient,
		newMongoDatabase,
		repositorySet,
		serviceSet,
		newReadinessCheck,
		newEchoHandler,
		handlers.NewProvider,
		httpserver.New,
		NewApplication,
	)
	return nil, nil
}
