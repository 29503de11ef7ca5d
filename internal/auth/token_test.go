package auth_test

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/fivetwenty-io/spacetraders/internal/auth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToken_Valid(t *testing.T) {
	t.Parallel()

	nextReset := time.Now().Add(7 * 24 * time.Hour)

	tests := []struct {
		name  string
		token *auth.Token
		want  bool
	}{
		{"nil token", nil, false},
		{"agent symbol without token", &auth.Token{AgentSymbol: "BADGER"}, false},
		{"agent token", &auth.Token{AccessToken: "agent-token", AgentSymbol: "BADGER"}, true},
		{"anonymous agent token", &auth.Token{AccessToken: "agent-token"}, true},
		{"token until next reset", &auth.Token{AccessToken: "agent-token", ExpiresAt: nextReset}, true},
		{"token from a past reset", &auth.Token{AccessToken: "agent-token", ExpiresAt: time.Now().Add(-time.Hour)}, false},
		{"reset in a few seconds", &auth.Token{AccessToken: "agent-token", ExpiresAt: time.Now().Add(5 * time.Second)}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, tt.token.Valid())
		})
	}
}

func TestTokenStore(t *testing.T) {
	t.Parallel()

	t.Run("keeps the agent symbol", func(t *testing.T) {
		t.Parallel()

		store := auth.NewTokenStore()
		assert.Nil(t, store.Get())

		store.Set(&auth.Token{AccessToken: "agent-token", AgentSymbol: "BADGER"})

		token := store.Get()
		require.NotNil(t, token)
		assert.Equal(t, "BADGER", token.AgentSymbol)
		assert.True(t, token.ExpiresAt.IsZero())
	})

	t.Run("a new token replaces the agent", func(t *testing.T) {
		t.Parallel()

		store := auth.NewTokenStore()
		store.Set(&auth.Token{AccessToken: "first-token", AgentSymbol: "BADGER"})
		store.Set(&auth.Token{AccessToken: "second-token"})

		token := store.Get()
		require.NotNil(t, token)
		assert.Equal(t, "second-token", token.AccessToken)
		assert.Empty(t, token.AgentSymbol)

		store.Clear()
		assert.Nil(t, store.Get())
	})

	t.Run("concurrent agents", func(t *testing.T) {
		t.Parallel()

		store := auth.NewTokenStore()

		var wg sync.WaitGroup

		for agent := range 4 {
			wg.Add(2)

			go func() {
				defer wg.Done()

				for range 50 {
					store.Set(&auth.Token{
						AccessToken: fmt.Sprintf("token-%d", agent),
						AgentSymbol: fmt.Sprintf("AGENT-%d", agent),
					})
				}
			}()

			go func() {
				defer wg.Done()

				for range 50 {
					_ = store.Get()
				}
			}()
		}

		wg.Wait()

		token := store.Get()
		require.NotNil(t, token)

		var agent int

		_, err := fmt.Sscanf(token.AgentSymbol, "AGENT-%d", &agent)
		require.NoError(t, err)
		assert.Equal(t, fmt.Sprintf("token-%d", agent), token.AccessToken)
	})
}

func TestStaticTokenManager(t *testing.T) {
	t.Parallel()

	t.Run("serves the agent token", func(t *testing.T) {
		t.Parallel()

		manager := auth.NewStaticTokenManager("agent-token")
		token, err := manager.GetToken(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "agent-token", token)
	})

	t.Run("anonymous", func(t *testing.T) {
		t.Parallel()

		manager := auth.NewStaticTokenManager("")
		_, err := manager.GetToken(context.Background())
		require.ErrorIs(t, err, auth.ErrNoToken)
	})

	t.Run("switching agents", func(t *testing.T) {
		t.Parallel()

		manager := auth.NewStaticTokenManager("old-agent-token")
		manager.SetToken("new-agent-token", time.Time{})

		token, err := manager.GetToken(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "new-agent-token", token)

		manager.SetToken("", time.Time{})
		_, err = manager.GetToken(context.Background())
		require.ErrorIs(t, err, auth.ErrNoToken)
	})

	t.Run("token from a past reset", func(t *testing.T) {
		t.Parallel()

		manager := auth.NewStaticTokenManager("")
		manager.SetToken("old-agent-token", time.Now().Add(-time.Minute))

		_, err := manager.GetToken(context.Background())
		require.ErrorIs(t, err, auth.ErrNoToken)
	})
}
