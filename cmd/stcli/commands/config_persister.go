package commands

import (
	"sync"
	"time"
)

// ConfigPersister implements the auth.ConfigPersister interface.
type ConfigPersister struct {
	mutex sync.Mutex
}

// NewConfigPersister creates a new config persister.
func NewConfigPersister() *ConfigPersister {
	return &ConfigPersister{}
}

// UpdateAgentToken stores the agent and its token for apiDomain.
func (p *ConfigPersister) UpdateAgentToken(apiDomain, agentSymbol, token string) error {
	p.mutex.Lock()
	defer p.mutex.Unlock()

	config, err := readConfigFile()
	if err != nil {
		return err
	}

	now := time.Now()
	config.Agents[apiDomain] = &AgentConfig{
		Symbol:    agentSymbol,
		Token:     token,
		UpdatedAt: &now,
	}

	return saveConfigStruct(config)
}

// RemoveAgent forgets the agent stored for apiDomain.
func (p *ConfigPersister) RemoveAgent(apiDomain string) (*AgentConfig, error) {
	p.mutex.Lock()
	defer p.mutex.Unlock()

	config, err := readConfigFile()
	if err != nil {
		return nil, err
	}

	agent, ok := config.Agents[apiDomain]
	if !ok {
		return nil, ErrNoAgentForAPI
	}

	delete(config.Agents, apiDomain)

	return agent, saveConfigStruct(config)
}
