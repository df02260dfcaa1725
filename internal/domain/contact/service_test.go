package contact_test

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/janhq/chat-server/internal/domain/contact"
	"github.com/janhq/chat-server/internal/domain/identifier"
	"github.com/janhq/chat-server/internal/domain/repository"
	"github.com/janhq/chat-server/internal/infrastructure/repository/inmemory"
	"github.com/janhq/chat-server/internal/utils/platformerrors"
	"github.com/janhq/chat-server/pkg/telemetry"
)

func newService() (contact.Service, *inmemory.ContactRepository) {
	repo := inmemory.NewContactRepository()
	return contact.NewService(repo, telemetry.NewSanitizer(telemetry.PIILevelHashed, "test"), zerolog.Nop()), repo
}

func TestCreateContact(t *testing.T) {
	ctx := context.Background()
	svc, _ := newService()

	created, err := svc.CreateContact(ctx, contact.CreateContactCommand{Name: "Jon", Email: "jon@x.com"})
	require.NoError(t, err)
	assert.Equal(t, identifier.KindNative, created.ID.Kind())
	assert.Equal(t, "Jon", created.Name)
	assert.Equal(t, created.CreatedAt, created.UpdatedAt)

	got, found, err := svc.GetContact(ctx, created.ID)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, created, got)
}

func TestCreateContactDuplicateEmail(t *testing.T) {
	ctx := context.Background()
	svc, repo := newService()

	_, err := svc.CreateContact(ctx, contact.CreateContactCommand{Name: "Jon", Email: "jon@x.com"})
	require.NoError(t, err)

	_, err = svc.CreateContact(ctx, contact.CreateContactCommand{Name: "Other Jon", Email: "jon@x.com"})
	require.Error(t, err)
	assert.True(t, platformerrors.IsErrorType(err, platformerrors.ErrorTypeConflict))
	assert.Equal(t, "Contact with email jon@x.com already exists", platformerrors.GetPlatformError(err).Message)

	matches := repo.Filter(func(c contact.Contact) bool { return c.Email == "jon@x.com" })
	assert.Len(t, matches, 1)
}

func TestCreateContactValidation(t *testing.T) {
	tests := []struct {
		name string
		cmd  contact.CreateContactCommand
	}{
		{"missing name", contact.CreateContactCommand{Email: "jon@x.com"}},
		{"missing email", contact.CreateContactCommand{Name: "Jon"}},
		{"malformed email", contact.CreateContactCommand{Name: "Jon", Email: "not-an-email"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repo := newService()
			_, err := svc.CreateContact(context.Background(), tt.cmd)
			require.Error(t, err)
			assert.True(t, platformerrors.IsErrorType(err, platformerrors.ErrorTypeValidation))

			total, _, err := repo.List(context.Background(), repository.ListOptions{})
			require.NoError(t, err)
			assert.Zero(t, total)
		})
	}
}

func TestUpdateContact(t *testing.T) {
	ctx := context.Background()
	svc, _ := newService()
	created, err := svc.CreateContact(ctx, contact.CreateContactCommand{Name: "Jon", Email: "jon@x.com"})
	require.NoError(t, err)

	updated, err := svc.UpdateContact(ctx, contact.UpdateContactCommand{ID: created.ID, Name: lo.ToPtr("Jon Snow")})
	require.NoError(t, err)
	assert.Equal(t, "Jon Snow", updated.Name)
	assert.Equal(t, "jon@x.com", updated.Email)
	assert.Equal(t, created.CreatedAt, updated.CreatedAt)
	assert.False(t, updated.UpdatedAt.Before(created.UpdatedAt))

	updated, err = svc.UpdateContact(ctx, contact.UpdateContactCommand{ID: created.ID, Email: lo.ToPtr("snow@x.com")})
	require.NoError(t, err)
	assert.Equal(t, "Jon Snow", updated.Name)
	assert.Equal(t, "snow@x.com", updated.Email)

	got, _, err := svc.GetContact(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, updated, got)
}

func TestUpdateContactNotFound(t *testing.T) {
	svc, _ := newService()

	_, err := svc.UpdateContact(context.Background(), contact.UpdateContactCommand{ID: identifier.NewNative(), Name: lo.ToPtr("x")})
	require.Error(t, err)
	assert.True(t, platformerrors.IsErrorType(err, platformerrors.ErrorTypeNotFound))
}

func TestUpdateContactEmailTaken(t *testing.T) {
	ctx := context.Background()
	svc, _ := newService()
	jon, err := svc.CreateContact(ctx, contact.CreateContactCommand{Name: "Jon", Email: "jon@x.com"})
	require.NoError(t, err)
	_, err = svc.CreateContact(ctx, contact.CreateContactCommand{Name: "Arya", Email: "arya@x.com"})
	require.NoError(t, err)

	_, err = svc.UpdateContact(ctx, contact.UpdateContactCommand{ID: jon.ID, Email: lo.ToPtr("arya@x.com")})
	require.Error(t, err)
	assert.True(t, platformerrors.IsErrorType(err, platformerrors.ErrorTypeConflict))

	// keeping one's own email is not a conflict
	_, err = svc.UpdateContact(ctx, contact.UpdateContactCommand{ID: jon.ID, Email: lo.ToPtr("jon@x.com")})
	require.NoError(t, err)
}

func TestListAndDeleteContacts(t *testing.T) {
	ctx := context.Background()
	svc, _ := newService()
	jon, err := svc.CreateContact(ctx, contact.CreateContactCommand{Name: "Jon", Email: "jon@x.com"})
	require.NoError(t, err)
	_, err = svc.CreateContact(ctx, contact.CreateContactCommand{Name: "Arya", Email: "arya@x.com"})
	require.NoError(t, err)

	total, page, err := svc.ListContacts(ctx, repository.Page(0, 1))
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	require.Len(t, page, 1)
	assert.Equal(t, jon.ID, page[0].ID)

	require.NoError(t, svc.DeleteContact(ctx, jon.ID))
	err = svc.DeleteContact(ctx, jon.ID)
	assert.True(t, platformerrors.IsErrorType(err, platformerrors.ErrorTypeNotFound))

	_, found, err := svc.GetContact(ctx, jon.ID)
	require.NoError(t, err)
	assert.False(t, found)
}
