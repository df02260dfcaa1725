package handlers_test

import (
	"context"

	"github.com/janhq/chat-server/internal/domain/channel"
	"github.com/janhq/chat-server/internal/domain/contact"
	"github.com/janhq/chat-server/internal/domain/identifier"
	"github.com/janhq/chat-server/internal/domain/message"
	"github.com/janhq/chat-server/internal/domain/repository"
)

// MockContactService is a func-field implementation of contact.Service.
type MockContactService struct {
	CreateContactFunc func(ctx context.Context, cmd contact.CreateContactCommand) (contact.Contact, error)
	UpdateContactFunc func(ctx context.Context, cmd contact.UpdateContactCommand) (contact.Contact, error)
	GetContactFunc    func(ctx context.Context, id identifier.ID) (contact.Contact, bool, error)
	ListContactsFunc  func(ctx context.Context, opts repository.ListOptions) (int64, []contact.Contact, error)
	DeleteContactFunc func(ctx context.Context, id identifier.ID) error
}

func (m *MockContactService) CreateContact(ctx context.Context, cmd contact.CreateContactCommand) (contact.Contact, error) {
	if m.CreateContactFunc != nil {
		return m.CreateContactFunc(ctx, cmd)
	}
	return contact.Contact{}, nil
}

func (m *MockContactService) UpdateContact(ctx context.Context, cmd contact.UpdateContactCommand) (contact.Contact, error) {
	if m.UpdateContactFunc != nil {
		return m.UpdateContactFunc(ctx, cmd)
	}
	return contact.Contact{}, nil
}

func (m *MockContactService) GetContact(ctx context.Context, id identifier.ID) (contact.Contact, bool, error) {
	if m.GetContactFunc != nil {
		return m.GetContactFunc(ctx, id)
	}
	return contact.Contact{}, false, nil
}

func (m *MockContactService) ListContacts(ctx context.Context, opts repository.ListOptions) (int64, []contact.Contact, error) {
	if m.ListContactsFunc != nil {
		return m.ListContactsFunc(ctx, opts)
	}
	return 0, nil, nil
}

func (m *MockContactService) DeleteContact(ctx context.Context, id identifier.ID) error {
	if m.DeleteContactFunc != nil {
		return m.DeleteContactFunc(ctx, id)
	}
	return nil
}

// MockChannelService is a func-field implementation of channel.Service.
type MockChannelService struct {
	CreateChannelFunc       func(ctx context.Context, cmd channel.CreateChannelCommand) (channel.Channel, error)
	GetChannelFunc          func(ctx context.Context, id identifier.ID) (channel.Channel, bool, error)
	ListChannelsFunc        func(ctx context.Context, opts repository.ListOptions) (int64, []channel.Channel, error)
	FindContactChannelsFunc func(ctx context.Context, contactID identifier.ID) ([]channel.Channel, error)
}

func (m *MockChannelService) CreateChannel(ctx context.Context, cmd channel.CreateChannelCommand) (channel.Channel, error) {
	if m.CreateChannelFunc != nil {
		return m.CreateChannelFunc(ctx, cmd)
	}
	return channel.Channel{}, nil
}

func (m *MockChannelService) GetChannel(ctx context.Context, id identifier.ID) (channel.Channel, bool, error) {
	if m.GetChannelFunc != nil {
		return m.GetChannelFunc(ctx, id)
	}
	return channel.Channel{}, false, nil
}

func (m *MockChannelService) ListChannels(ctx context.Context, opts repository.ListOptions) (int64, []channel.Channel, error) {
	if m.ListChannelsFunc != nil {
		return m.ListChannelsFunc(ctx, opts)
	}
	return 0, nil, nil
}

func (m *MockChannelService) FindContactChannels(ctx context.Context, contactID identifier.ID) ([]channel.Channel, error) {
	if m.FindContactChannelsFunc != nil {
		return m.FindContactChannelsFunc(ctx, contactID)
	}
	return nil, nil
}

// MockMessageService is a func-field implementation of message.Service.
type MockMessageService struct {
	SendMessageFunc         func(ctx context.Context, cmd message.SendMessageCommand) (message.Message, error)
	ListChannelMessagesFunc func(ctx context.Context, channelID identifier.ID, limit, offset int64) ([]message.Message, error)
}

func (m *MockMessageService) SendMessage(ctx context.Context, cmd message.SendMessageCommand) (message.Message, error) {
	if m.SendMessageFunc != nil {
		return m.SendMessageFunc(ctx, cmd)
	}
	return message.Message{}, nil
}

func (m *MockMessageService) ListChannelMessages(ctx context.Context, channelID identifier.ID, limit, offset int64) ([]message.Message, error) {
	if m.ListChannelMessagesFunc != nil {
		return m.ListChannelMessagesFunc(ctx, channelID, limit, offset)
	}
	return nil, nil
}
