package client

import (
	"context"

	"github.com/fivetwenty-io/spacetraders/pkg/spacetraders"
)

// Orbit implements spacetraders.FleetClient.Orbit.
func (c *FleetClient) Orbit(ctx context.Context, shipSymbol string) (*spacetraders.NavResult, error) {
	path, err := shipPath("orbiting ship", shipSymbol, "orbit")
	if err != nil {
		return nil, err
	}

	return postData[spacetraders.NavResult](ctx, c.resourceBase, "orbiting ship", agentAccess, path, nil)
}

// Dock implements spacetraders.FleetClient.Dock.
func (c *FleetClient) Dock(ctx context.Context, shipSymbol string) (*spacetraders.NavResult, error) {
	path, err := shipPath("docking ship", shipSymbol, "dock")
	if err != nil {
		return nil, err
	}

	return postData[spacetraders.NavResult](ctx, c.resourceBase, "docking ship", agentAccess, path, nil)
}

// Navigate implements spacetraders.FleetClient.Navigate.
func (c *FleetClient) Navigate(ctx context.Context, shipSymbol string, request *spacetraders.NavigateRequest) (*spacetraders.Navigation, error) {
	return travel[spacetraders.Navigation](ctx, c, "navigating ship", shipSymbol, "navigate", request)
}

// Warp implements spacetraders.FleetClient.Warp.
func (c *FleetClient) Warp(ctx context.Context, shipSymbol string, request *spacetraders.NavigateRequest) (*spacetraders.Navigation, error) {
	return travel[spacetraders.Navigation](ctx, c, "warping ship", shipSymbol, "warp", request)
}

// Jump implements spacetraders.FleetClient.Jump.
func (c *FleetClient) Jump(ctx context.Context, shipSymbol string, request *spacetraders.NavigateRequest) (*spacetraders.Jump, error) {
	return travel[spacetraders.Jump](ctx, c, "jumping ship", shipSymbol, "jump", request)
}

func travel[T any](
	ctx context.Context,
	c *FleetClient,
	operation, shipSymbol, action string,
	request *spacetraders.NavigateRequest,
) (*T, error) {
	path, err := shipPath(operation, shipSymbol, action)
	if err != nil {
		return nil, err
	}

	err = validateBody(operation, request)
	if err != nil {
		return nil, err
	}

	return postData[T](ctx, c.resourceBase, operation, agentAccess, path, request)
}

// GetNav implements spacetraders.FleetClient.GetNav.
func (c *FleetClient) GetNav(ctx context.Context, shipSymbol string) (*spacetraders.ShipNav, error) {
	path, err := shipPath("getting ship nav", shipSymbol, "nav")
	if err != nil {
		return nil, err
	}

	return getData[spacetraders.ShipNav](ctx, c.resourceBase, "getting ship nav", agentAccess, path)
}

// PatchNav implements spacetraders.FleetClient.PatchNav.
func (c *FleetClient) PatchNav(ctx context.Context, shipSymbol string, request *spacetraders.PatchNavRequest) (*spacetraders.ShipNav, error) {
	const operation = "updating ship nav"

	path, err := shipPath(operation, shipSymbol, "nav")
	if err != nil {
		return nil, err
	}

	err = validateBody(operation, request)
	if err != nil {
		return nil, err
	}

	return patchData[spacetraders.ShipNav](ctx, c.resourceBase, operation, agentAccess, path, request)
}

// GetCooldown implements spacetraders.FleetClient.GetCooldown. A ship with
// no active cooldown yields (nil, nil).
func (c *FleetClient) GetCooldown(ctx context.Context, shipSymbol string) (*spacetraders.Cooldown, error) {
	path, err := shipPath("getting cooldown", shipSymbol, "cooldown")
	if err != nil {
		return nil, err
	}

	return getOptional[spacetraders.Cooldown](ctx, c.resourceBase, "getting cooldown", agentAccess, path)
}

// Refuel implements spacetraders.FleetClient.Refuel. A nil request refuels
// to capacity from the local market.
func (c *FleetClient) Refuel(ctx context.Context, shipSymbol string, request *spacetraders.RefuelRequest) (*spacetraders.Refuel, error) {
	const operation = "refueling ship"

	path, err := shipPath(operation, shipSymbol, "refuel")
	if err != nil {
		return nil, err
	}

	var body interface{}

	if request != nil {
		err = validateBody(operation, request)
		if err != nil {
			return nil, err
		}

		body = request
	}

	return postData[spacetraders.Refuel](ctx, c.resourceBase, operation, agentAccess, path, body)
}
