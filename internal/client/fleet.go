package client

import (
	"context"
	"net/http"

	"github.com/fivetwenty-io/spacetraders/pkg/spacetraders"
)

const shipsPath = "/my/ships"

// FleetClient implements spacetraders.FleetClient. Every fleet endpoint
// requires an agent token.
type FleetClient struct {
	*resourceBase
}

// NewFleetClient creates a new fleet client.
func NewFleetClient(base *resourceBase) *FleetClient {
	return &FleetClient{resourceBase: base}
}

// shipPath builds /my/ships/{ship}/{action}.
func shipPath(operation, shipSymbol, action string) (string, error) {
	path, err := pathFor(operation, shipsPath, shipSymbol)
	if err != nil {
		return "", err
	}

	if action == "" {
		return path, nil
	}

	return path + "/" + action, nil
}

// List implements spacetraders.FleetClient.List.
func (c *FleetClient) List(ctx context.Context, params *spacetraders.PageParams) (*spacetraders.Page[spacetraders.Ship], error) {
	return getPage[spacetraders.Ship](ctx, c.resourceBase, "listing ships", agentAccess, shipsPath, params)
}

// ListAll implements spacetraders.FleetClient.ListAll.
func (c *FleetClient) ListAll(ctx context.Context) ([]spacetraders.Ship, error) {
	return listAll[spacetraders.Ship](ctx, c.resourceBase, "listing ships", agentAccess, shipsPath)
}

// Get implements spacetraders.FleetClient.Get.
func (c *FleetClient) Get(ctx context.Context, shipSymbol string) (*spacetraders.Ship, error) {
	path, err := shipPath("getting ship", shipSymbol, "")
	if err != nil {
		return nil, err
	}

	return getData[spacetraders.Ship](ctx, c.resourceBase, "getting ship", agentAccess, path)
}

// Purchase implements spacetraders.FleetClient.Purchase.
func (c *FleetClient) Purchase(ctx context.Context, request *spacetraders.PurchaseShipRequest) (*spacetraders.ShipPurchase, error) {
	const operation = "purchasing ship"

	err := validateBody(operation, request)
	if err != nil {
		return nil, err
	}

	return postData[spacetraders.ShipPurchase](ctx, c.resourceBase, operation, agentAccess, shipsPath, request, http.StatusCreated)
}

// NegotiateContract implements spacetraders.FleetClient.NegotiateContract.
func (c *FleetClient) NegotiateContract(ctx context.Context, shipSymbol string) (*spacetraders.ContractNegotiation, error) {
	const operation = "negotiating contract"

	path, err := shipPath(operation, shipSymbol, "negotiate/contract")
	if err != nil {
		return nil, err
	}

	return postData[spacetraders.ContractNegotiation](ctx, c.resourceBase, operation, agentAccess, path, nil, http.StatusCreated)
}

// GetMounts implements spacetraders.FleetClient.GetMounts.
func (c *FleetClient) GetMounts(ctx context.Context, shipSymbol string) ([]spacetraders.ShipMount, error) {
	path, err := shipPath("getting mounts", shipSymbol, "mounts")
	if err != nil {
		return nil, err
	}

	return getArray[spacetraders.ShipMount](ctx, c.resourceBase, "getting mounts", agentAccess, path)
}

// InstallMount implements spacetraders.FleetClient.InstallMount.
func (c *FleetClient) InstallMount(ctx context.Context, shipSymbol string, request *spacetraders.MountRequest) (*spacetraders.MountChange, error) {
	return c.changeMount(ctx, "installing mount", shipSymbol, "mounts/install", request)
}

// RemoveMount implements spacetraders.FleetClient.RemoveMount.
func (c *FleetClient) RemoveMount(ctx context.Context, shipSymbol string, request *spacetraders.MountRequest) (*spacetraders.MountChange, error) {
	return c.changeMount(ctx, "removing mount", shipSymbol, "mounts/remove", request)
}

func (c *FleetClient) changeMount(
	ctx context.Context,
	operation, shipSymbol, action string,
	request *spacetraders.MountRequest,
) (*spacetraders.MountChange, error) {
	path, err := shipPath(operation, shipSymbol, action)
	if err != nil {
		return nil, err
	}

	err = validateBody(operation, request)
	if err != nil {
		return nil, err
	}

	return postData[spacetraders.MountChange](ctx, c.resourceBase, operation, agentAccess, path, request, http.StatusCreated)
}
