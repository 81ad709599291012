package bootstrap

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gymdesk/gym-ui-api/config"
	"github.com/gymdesk/gym-ui-api/internal/service"
	"github.com/gymdesk/gym-ui-api/internal/testutil"
)

func TestBuildAuthServiceMockMode(t *testing.T) {
	client := testutil.SetupTestRedis(t)

	cfg := &config.AppConfig{}
	cfg.Auth.Mode = config.AuthModeMock
	cfg.Auth.Mock.Latency = 1 // keep the simulated delay out of test time
	cfg.Redis.KeyPrefix = "bootstrap-test:"
	cfg.Sanitize()

	svc, err := BuildAuthService(context.Background(), AuthDeps{
		Config: cfg,
		Redis:  client,
	})
	require.NoError(t, err)
	require.NotNil(t, svc)

	// Initial resolution already ran: guards never see the loading state.
	assert.False(t, svc.Loading())
	assert.Nil(t, svc.CurrentSession())

	// Mock backend accepts the fixture accounts end to end.
	result, err := svc.Login(context.Background(), "member@gymdesk.local", "anything")
	require.NoError(t, err)
	require.NotNil(t, result.Session)
	assert.Equal(t, "/member", result.RedirectTo)

	decision := svc.AccessForToken(result.Session.Token)
	assert.Equal(t, service.StatusAuthorized, decision.Status)
}

func TestBuildAuthServiceRejectsUnknownMode(t *testing.T) {
	cfg := &config.AppConfig{}
	cfg.Auth.Mode = config.AuthMode("saml")

	_, err := BuildAuthService(context.Background(), AuthDeps{Config: cfg})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported auth mode")
}
