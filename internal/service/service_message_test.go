package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/MKhiriev/truvoice/internal/logger"
	"github.com/MKhiriev/truvoice/internal/mock"
	"github.com/MKhiriev/truvoice/internal/store"
	"github.com/MKhiriev/truvoice/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestMessageSvc(t *testing.T) (*messageService, *mock.MockUserRepository) {
	t.Helper()
	ctrl := gomock.NewController(t)
	repo := mock.NewMockUserRepository(ctrl)

	svc := NewMessageService(repo, logger.Nop()).(*messageService)
	svc.now = func() time.Time { return time.Date(2026, 5, 1, 10, 0, 0, 0, time.UTC) }
	return svc, repo
}

// ── Send ─────────────────────────────────────────────────────────────────────

func TestMessageService_Send_Success(t *testing.T) {
	svc, repo := newTestMessageSvc(t)
	ctx := context.Background()

	repo.EXPECT().FindByUsername(ctx, "alice").Return(models.User{Username: "alice", IsAcceptingMessages: true}, nil)
	repo.EXPECT().AppendMessage(ctx, "alice", models.Message{
		Content:   "you made my day",
		CreatedAt: time.Date(2026, 5, 1, 10, 0, 0, 0, time.UTC),
	}).Return(nil)

	err := svc.Send(ctx, models.SendMessageRequest{Username: "alice", Content: "you made my day"})
	require.NoError(t, err)
}

func TestMessageService_Send_Errors(t *testing.T) {
	tests := []struct {
		name      string
		found     models.User
		findErr   error
		appendErr error
		wantErr   error
		noAppend  bool
	}{
		{name: "unknown user", findErr: store.ErrNoUserWasFound, wantErr: ErrUserNotFound, noAppend: true},
		{name: "lookup fails", findErr: errors.New("db down"), wantErr: ErrSendMessageFailed, noAppend: true},
		{name: "not accepting", found: models.User{IsAcceptingMessages: false}, wantErr: ErrNotAcceptingMessages, noAppend: true},
		{name: "user removed meanwhile", found: models.User{IsAcceptingMessages: true}, appendErr: store.ErrNoUserWasFound, wantErr: ErrUserNotFound},
		{name: "append fails", found: models.User{IsAcceptingMessages: true}, appendErr: errors.New("db down"), wantErr: ErrSendMessageFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repo := newTestMessageSvc(t)

			repo.EXPECT().FindByUsername(gomock.Any(), "alice").Return(tt.found, tt.findErr)
			if !tt.noAppend {
				repo.EXPECT().AppendMessage(gomock.Any(), "alice", gomock.Any()).Return(tt.appendErr)
			}

			err := svc.Send(context.Background(), models.SendMessageRequest{Username: "alice", Content: "hello there friend"})
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

// ── AcceptingStatus ──────────────────────────────────────────────────────────

func TestMessageService_AcceptingStatus(t *testing.T) {
	t.Run("accepting", func(t *testing.T) {
		svc, repo := newTestMessageSvc(t)
		repo.EXPECT().FindByUsername(gomock.Any(), "alice").Return(models.User{IsAcceptingMessages: true}, nil)

		ok, err := svc.AcceptingStatus(context.Background(), "alice")
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("unknown user", func(t *testing.T) {
		svc, repo := newTestMessageSvc(t)
		repo.EXPECT().FindByUsername(gomock.Any(), "ghost").Return(models.User{}, store.ErrNoUserWasFound)

		_, err := svc.AcceptingStatus(context.Background(), "ghost")
		assert.ErrorIs(t, err, ErrUserNotFound)
	})

	t.Run("lookup fails", func(t *testing.T) {
		svc, repo := newTestMessageSvc(t)
		repo.EXPECT().FindByUsername(gomock.Any(), "alice").Return(models.User{}, errors.New("db down"))

		_, err := svc.AcceptingStatus(context.Background(), "alice")
		assert.ErrorIs(t, err, ErrStatusLookupFailed)
	})
}
