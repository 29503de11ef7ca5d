package client

import (
	"context"

	"github.com/fivetwenty-io/spacetraders/pkg/spacetraders"
)

// AgentsClient implements spacetraders.AgentsClient.
type AgentsClient struct {
	*resourceBase
}

// NewAgentsClient creates a new agents client.
func NewAgentsClient(base *resourceBase) *AgentsClient {
	return &AgentsClient{resourceBase: base}
}

// GetMyAgent implements spacetraders.AgentsClient.GetMyAgent.
func (c *AgentsClient) GetMyAgent(ctx context.Context) (*spacetraders.Agent, error) {
	return getData[spacetraders.Agent](ctx, c.resourceBase, "getting my agent", agentAccess, "/my/agent")
}

// List implements spacetraders.AgentsClient.List.
func (c *AgentsClient) List(ctx context.Context, params *spacetraders.PageParams) (*spacetraders.Page[spacetraders.Agent], error) {
	return getPage[spacetraders.Agent](ctx, c.resourceBase, "listing agents", publicAccess, "/agents", params)
}

// ListAll implements spacetraders.AgentsClient.ListAll.
func (c *AgentsClient) ListAll(ctx context.Context) ([]spacetraders.Agent, error) {
	return listAll[spacetraders.Agent](ctx, c.resourceBase, "listing agents", publicAccess, "/agents")
}

// Get implements spacetraders.AgentsClient.Get.
func (c *AgentsClient) Get(ctx context.Context, symbol string) (*spacetraders.Agent, error) {
	path, err := pathFor("getting agent", "/agents", symbol)
	if err != nil {
		return nil, err
	}

	return getData[spacetraders.Agent](ctx, c.resourceBase, "getting agent", publicAccess, path)
}
