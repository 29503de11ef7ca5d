package client

import (
	"context"
	"net/http"

	"github.com/fivetwenty-io/spacetraders/pkg/spacetraders"
)

// GetCargo implements spacetraders.FleetClient.GetCargo.
func (c *FleetClient) GetCargo(ctx context.Context, shipSymbol string) (*spacetraders.ShipCargo, error) {
	path, err := shipPath("getting cargo", shipSymbol, "cargo")
	if err != nil {
		return nil, err
	}

	return getData[spacetraders.ShipCargo](ctx, c.resourceBase, "getting cargo", agentAccess, path)
}

// Jettison implements spacetraders.FleetClient.Jettison.
func (c *FleetClient) Jettison(ctx context.Context, shipSymbol string, request *spacetraders.CargoRequest) (*spacetraders.CargoResult, error) {
	const operation = "jettisoning cargo"

	path, err := shipPath(operation, shipSymbol, "jettison")
	if err != nil {
		return nil, err
	}

	err = validateBody(operation, request)
	if err != nil {
		return nil, err
	}

	return postData[spacetraders.CargoResult](ctx, c.resourceBase, operation, agentAccess, path, request)
}

// Sell implements spacetraders.FleetClient.Sell.
func (c *FleetClient) Sell(ctx context.Context, shipSymbol string, request *spacetraders.CargoRequest) (*spacetraders.CargoTransaction, error) {
	return c.trade(ctx, "selling cargo", shipSymbol, "sell", request)
}

// PurchaseCargo implements spacetraders.FleetClient.PurchaseCargo.
func (c *FleetClient) PurchaseCargo(ctx context.Context, shipSymbol string, request *spacetraders.CargoRequest) (*spacetraders.CargoTransaction, error) {
	return c.trade(ctx, "purchasing cargo", shipSymbol, "purchase", request)
}

func (c *FleetClient) trade(
	ctx context.Context,
	operation, shipSymbol, action string,
	request *spacetraders.CargoRequest,
) (*spacetraders.CargoTransaction, error) {
	path, err := shipPath(operation, shipSymbol, action)
	if err != nil {
		return nil, err
	}

	err = validateBody(operation, request)
	if err != nil {
		return nil, err
	}

	return postData[spacetraders.CargoTransaction](ctx, c.resourceBase, operation, agentAccess, path, request, http.StatusCreated)
}

// TransferCargo implements spacetraders.FleetClient.TransferCargo.
func (c *FleetClient) TransferCargo(
	ctx context.Context,
	shipSymbol string,
	request *spacetraders.TransferCargoRequest,
) (*spacetraders.CargoResult, error) {
	const operation = "transferring cargo"

	path, err := shipPath(operation, shipSymbol, "transfer")
	if err != nil {
		return nil, err
	}

	err = validateBody(operation, request)
	if err != nil {
		return nil, err
	}

	return postData[spacetraders.CargoResult](ctx, c.resourceBase, operation, agentAccess, path, request)
}
