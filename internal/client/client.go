package client

import (
	"context"
	"fmt"
	"net/http"

	"github.com/fivetwenty-io/spacetraders/internal/auth"
	"github.com/fivetwenty-io/spacetraders/internal/constants"
	internalhttp "github.com/fivetwenty-io/spacetraders/internal/http"
	"github.com/fivetwenty-io/spacetraders/pkg/spacetraders"
)

// Client implements the spacetraders.Client interface.
type Client struct {
	*resourceBase

	baseURL string

	agents    *AgentsClient
	contracts *ContractsClient
	factions  *FactionsClient
	fleet     *FleetClient
	systems   *SystemsClient
}

// createTokenManager returns a static manager for a configured token and nil
// for an anonymous client.
func createTokenManager(config *spacetraders.Config) auth.TokenManager {
	if config.Token == "" {
		return nil
	}

	return auth.NewStaticTokenManager(config.Token)
}

// createHTTPClientOptions builds HTTP client options from config.
func createHTTPClientOptions(config *spacetraders.Config) []internalhttp.Option {
	var httpOpts []internalhttp.Option

	if config.Logger != nil {
		httpOpts = append(httpOpts, internalhttp.WithLogger(config.Logger))
	}

	if config.Debug {
		httpOpts = append(httpOpts, internalhttp.WithDebug(true))
	}

	if config.UserAgent != "" {
		httpOpts = append(httpOpts, internalhttp.WithUserAgent(config.UserAgent))
	}

	if config.HTTPTimeout > 0 {
		httpOpts = append(httpOpts, internalhttp.WithTimeout(config.HTTPTimeout))
	}

	return httpOpts
}

// New creates a client from config. A config without a token yields an
// anonymous client.
func New(config *spacetraders.Config) (*Client, error) {
	if config == nil {
		return nil, &spacetraders.ConfigurationError{Operation: "creating client", Err: spacetraders.ErrConfigRequired}
	}

	return NewWithTokenManager(config, createTokenManager(config))
}

// NewWithTokenManager creates a client that takes its token from
// tokenManager. A nil tokenManager yields an anonymous client.
func NewWithTokenManager(config *spacetraders.Config, tokenManager auth.TokenManager) (*Client, error) {
	if config == nil {
		return nil, &spacetraders.ConfigurationError{Operation: "creating client", Err: spacetraders.ErrConfigRequired}
	}

	baseURL := config.BaseURL
	if baseURL == "" {
		baseURL = constants.DefaultBaseURL
	}

	httpClient := internalhttp.NewClient(baseURL, tokenManager, createHTTPClientOptions(config)...)

	client := &Client{
		resourceBase: &resourceBase{
			httpClient:   httpClient,
			tokenManager: tokenManager,
			paginator:    spacetraders.Paginator{MaxLimit: config.MaxPageLimit},
		},
		baseURL: baseURL,
	}

	client.initializeResourceClients()

	return client, nil
}

func (c *Client) initializeResourceClients() {
	c.agents = NewAgentsClient(c.resourceBase)
	c.contracts = NewContractsClient(c.resourceBase)
	c.factions = NewFactionsClient(c.resourceBase)
	c.fleet = NewFleetClient(c.resourceBase)
	c.systems = NewSystemsClient(c.resourceBase)
}

// BaseURL returns the API root the client talks to.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Authenticated implements spacetraders.Client.Authenticated.
func (c *Client) Authenticated() bool {
	return c.requireAuth(context.Background(), "") == nil
}

// GetStatus implements spacetraders.Client.GetStatus.
func (c *Client) GetStatus(ctx context.Context) (*spacetraders.ServerStatus, error) {
	resp, err := c.httpClient.Get(ctx, "/", nil)
	if err != nil {
		return nil, fmt.Errorf("getting server status: %w", err)
	}

	status, err := spacetraders.DecodeBare[spacetraders.ServerStatus](resp.StatusCode, resp.Body)
	if err != nil {
		return nil, fmt.Errorf("getting server status: %w", err)
	}

	return status, nil
}

// Register implements spacetraders.Client.Register. The returned token is
// not installed on this client; build a new client with it, or pass it to a
// token manager.
func (c *Client) Register(ctx context.Context, request *spacetraders.RegisterRequest) (*spacetraders.Registration, error) {
	err := validateBody("registering agent", request)
	if err != nil {
		return nil, err
	}

	return postData[spacetraders.Registration](ctx, c.resourceBase, "registering agent", publicAccess,
		"/register", request, http.StatusCreated)
}

// Agents implements spacetraders.Client.Agents.
func (c *Client) Agents() spacetraders.AgentsClient { return c.agents }

// Contracts implements spacetraders.Client.Contracts.
func (c *Client) Contracts() spacetraders.ContractsClient { return c.contracts }

// Factions implements spacetraders.Client.Factions.
func (c *Client) Factions() spacetraders.FactionsClient { return c.factions }

// Fleet implements spacetraders.Client.Fleet.
func (c *Client) Fleet() spacetraders.FleetClient { return c.fleet }

// Systems implements spacetraders.Client.Systems.
func (c *Client) Systems() spacetraders.SystemsClient { return c.systems }
