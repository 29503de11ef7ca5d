package client

import (
	"context"

	"github.com/fivetwenty-io/spacetraders/pkg/spacetraders"
)

// FactionsClient implements spacetraders.FactionsClient.
type FactionsClient struct {
	*resourceBase
}

// NewFactionsClient creates a new factions client.
func NewFactionsClient(base *resourceBase) *FactionsClient {
	return &FactionsClient{resourceBase: base}
}

// List implements spacetraders.FactionsClient.List.
func (c *FactionsClient) List(ctx context.Context, params *spacetraders.PageParams) (*spacetraders.Page[spacetraders.Faction], error) {
	return getPage[spacetraders.Faction](ctx, c.resourceBase, "listing factions", publicAccess, "/factions", params)
}

// ListAll implements spacetraders.FactionsClient.ListAll.
func (c *FactionsClient) ListAll(ctx context.Context) ([]spacetraders.Faction, error) {
	return listAll[spacetraders.Faction](ctx, c.resourceBase, "listing factions", publicAccess, "/factions")
}

// Get implements spacetraders.FactionsClient.Get.
func (c *FactionsClient) Get(ctx context.Context, symbol string) (*spacetraders.Faction, error) {
	path, err := pathFor("getting faction", "/factions", symbol)
	if err != nil {
		return nil, err
	}

	return getData[spacetraders.Faction](ctx, c.resourceBase, "getting faction", publicAccess, path)
}
