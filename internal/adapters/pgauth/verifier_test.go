package pgauth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/gymdesk/gym-ui-api/internal/core"
	"github.com/gymdesk/gym-ui-api/internal/data"
	domainauth "github.com/gymdesk/gym-ui-api/internal/domain/auth"
	"github.com/gymdesk/gym-ui-api/internal/mocks"
)

func storedCreds(t *testing.T, password string) *core.UserCredentials {
	t.Helper()
	hash, err := HashPassword(password)
	require.NoError(t, err)
	return &core.UserCredentials{
		Identity: domainauth.Identity{
			UserID:      "u-1",
			DisplayName: "Avery Ruiz",
			Email:       "avery@example.com",
			Role:        domainauth.RoleAdmin,
			Verified:    true,
		},
		PasswordHash: hash,
	}
}

func TestVerify(t *testing.T) {
	ctx := context.Background()

	t.Run("correct password issues a token", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		users := mocks.NewMockUserRepository(ctrl)
		p := NewProvider(ProviderOptions{Users: users, TokenTTL: time.Hour})

		users.EXPECT().GetByEmail(gomock.Any(), "avery@example.com").Return(storedCreds(t, "s3cret"), nil)
		users.EXPECT().StoreToken(gomock.Any(), "u-1", gomock.Any(), gomock.Any()).Return(nil)

		res, err := p.Verify(ctx, "avery@example.com", "s3cret")
		require.NoError(t, err)
		assert.NotEmpty(t, res.Token)
		assert.Equal(t, domainauth.RoleAdmin, res.Identity.Role)
	})

	t.Run("wrong password is rejected without a token", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		users := mocks.NewMockUserRepository(ctrl)
		p := NewProvider(ProviderOptions{Users: users})

		users.EXPECT().GetByEmail(gomock.Any(), "avery@example.com").Return(storedCreds(t, "s3cret"), nil)

		_, err := p.Verify(ctx, "avery@example.com", "nope")
		assert.ErrorIs(t, err, ErrBadCredentials)
	})

	t.Run("unknown email maps to the same rejection", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		users := mocks.NewMockUserRepository(ctrl)
		p := NewProvider(ProviderOptions{Users: users})

		users.EXPECT().GetByEmail(gomock.Any(), "ghost@example.com").Return(nil, data.ErrUserNotFound)

		_, err := p.Verify(ctx, "ghost@example.com", "pw")
		assert.ErrorIs(t, err, ErrBadCredentials)
	})
}

func TestFetchCurrentUser(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	users := mocks.NewMockUserRepository(ctrl)
	p := NewProvider(ProviderOptions{Users: users})

	t.Run("valid token resolves identity", func(t *testing.T) {
		users.EXPECT().GetByToken(gomock.Any(), "tok").Return(&domainauth.Identity{UserID: "u-1"}, nil)

		ident, err := p.FetchCurrentUser(ctx, "tok")
		require.NoError(t, err)
		assert.Equal(t, "u-1", ident.UserID)
	})

	t.Run("expired or unknown token is rejected", func(t *testing.T) {
		users.EXPECT().GetByToken(gomock.Any(), "stale").Return(nil, data.ErrTokenNotFound)

		_, err := p.FetchCurrentUser(ctx, "stale")
		assert.ErrorIs(t, err, ErrBadCredentials)
	})
}
