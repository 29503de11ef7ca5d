package auth

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"
)

// Static errors for err113 compliance.
var (
	ErrNoConfigPersister = errors.New("no config persister configured")
)

// ConfigPersister defines the interface for persisting config changes.
type ConfigPersister interface {
	UpdateAgentToken(apiDomain, agentSymbol, token string) error
}

// ConfigTokenManager serves a token and writes every newly set token back to
// the configuration, so an agent registered in one run is reused in the next.
type ConfigTokenManager struct {
	store           *TokenStore
	configPersister ConfigPersister
	apiDomain       string
	mutex           sync.Mutex
}

// NewConfigTokenManager creates a new config-persisting token manager.
func NewConfigTokenManager(configPersister ConfigPersister, apiDomain, initialToken string) *ConfigTokenManager {
	manager := &ConfigTokenManager{
		store:           NewTokenStore(),
		configPersister: configPersister,
		apiDomain:       apiDomain,
	}

	if initialToken != "" {
		manager.store.Set(&Token{AccessToken: initialToken})
	}

	return manager
}

// GetToken returns the current token.
func (m *ConfigTokenManager) GetToken(ctx context.Context) (string, error) {
	token := m.store.Get()
	if !token.Valid() {
		return "", ErrNoToken
	}

	return token.AccessToken, nil
}

// SetToken replaces the token in memory only.
func (m *ConfigTokenManager) SetToken(token string, expiresAt time.Time) {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	if token == "" {
		m.store.Clear()

		return
	}

	m.store.Set(&Token{AccessToken: token, ExpiresAt: expiresAt})
}

// StoreAgentToken replaces the token and persists it for the agent.
func (m *ConfigTokenManager) StoreAgentToken(agentSymbol, token string) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	m.store.Set(&Token{AccessToken: token, AgentSymbol: agentSymbol})

	if m.configPersister == nil {
		return ErrNoConfigPersister
	}

	err := m.configPersister.UpdateAgentToken(m.apiDomain, agentSymbol, token)
	if err != nil {
		return fmt.Errorf("failed to update agent token: %w", err)
	}

	return nil
}

// AgentSymbol returns the agent the current token was stored for, if known.
func (m *ConfigTokenManager) AgentSymbol() string {
	token := m.store.Get()
	if token == nil {
		return ""
	}

	return token.AgentSymbol
}
