package client

import (
	"context"
	"net/http"

	"github.com/fivetwenty-io/spacetraders/pkg/spacetraders"
)

const systemsPath = "/systems"

// SystemsClient implements spacetraders.SystemsClient.
type SystemsClient struct {
	*resourceBase
}

// NewSystemsClient creates a new systems client.
func NewSystemsClient(base *resourceBase) *SystemsClient {
	return &SystemsClient{resourceBase: base}
}

// waypointPath builds /systems/{system}/waypoints/{waypoint}/{facility}.
func waypointPath(operation, systemSymbol, waypointSymbol, facility string) (string, error) {
	path, err := pathFor(operation, systemsPath, systemSymbol)
	if err != nil {
		return "", err
	}

	path, err = pathFor(operation, path+"/waypoints", waypointSymbol)
	if err != nil {
		return "", err
	}

	if facility == "" {
		return path, nil
	}

	return path + "/" + facility, nil
}

// List implements spacetraders.SystemsClient.List.
func (c *SystemsClient) List(ctx context.Context, params *spacetraders.PageParams) (*spacetraders.Page[spacetraders.System], error) {
	return getPage[spacetraders.System](ctx, c.resourceBase, "listing systems", publicAccess, systemsPath, params)
}

// Get implements spacetraders.SystemsClient.Get.
func (c *SystemsClient) Get(ctx context.Context, systemSymbol string) (*spacetraders.System, error) {
	path, err := pathFor("getting system", systemsPath, systemSymbol)
	if err != nil {
		return nil, err
	}

	return getData[spacetraders.System](ctx, c.resourceBase, "getting system", publicAccess, path)
}

// ListWaypoints implements spacetraders.SystemsClient.ListWaypoints.
func (c *SystemsClient) ListWaypoints(
	ctx context.Context,
	systemSymbol string,
	params *spacetraders.PageParams,
) (*spacetraders.Page[spacetraders.Waypoint], error) {
	path, err := pathFor("listing waypoints", systemsPath, systemSymbol)
	if err != nil {
		return nil, err
	}

	return getPage[spacetraders.Waypoint](ctx, c.resourceBase, "listing waypoints", publicAccess, path+"/waypoints", params)
}

// ListAllWaypoints implements spacetraders.SystemsClient.ListAllWaypoints.
func (c *SystemsClient) ListAllWaypoints(ctx context.Context, systemSymbol string) ([]spacetraders.Waypoint, error) {
	path, err := pathFor("listing waypoints", systemsPath, systemSymbol)
	if err != nil {
		return nil, err
	}

	return listAll[spacetraders.Waypoint](ctx, c.resourceBase, "listing waypoints", publicAccess, path+"/waypoints")
}

// GetWaypoint implements spacetraders.SystemsClient.GetWaypoint.
func (c *SystemsClient) GetWaypoint(ctx context.Context, systemSymbol, waypointSymbol string) (*spacetraders.Waypoint, error) {
	return getFacility[spacetraders.Waypoint](ctx, c, "getting waypoint", systemSymbol, waypointSymbol, "")
}

// GetMarket implements spacetraders.SystemsClient.GetMarket.
func (c *SystemsClient) GetMarket(ctx context.Context, systemSymbol, waypointSymbol string) (*spacetraders.Market, error) {
	return getFacility[spacetraders.Market](ctx, c, "getting market", systemSymbol, waypointSymbol, "market")
}

// GetShipyard implements spacetraders.SystemsClient.GetShipyard.
func (c *SystemsClient) GetShipyard(ctx context.Context, systemSymbol, waypointSymbol string) (*spacetraders.Shipyard, error) {
	return getFacility[spacetraders.Shipyard](ctx, c, "getting shipyard", systemSymbol, waypointSymbol, "shipyard")
}

// GetJumpGate implements spacetraders.SystemsClient.GetJumpGate.
func (c *SystemsClient) GetJumpGate(ctx context.Context, systemSymbol, waypointSymbol string) (*spacetraders.JumpGate, error) {
	return getFacility[spacetraders.JumpGate](ctx, c, "getting jump gate", systemSymbol, waypointSymbol, "jump-gate")
}

// GetConstruction implements spacetraders.SystemsClient.GetConstruction.
func (c *SystemsClient) GetConstruction(ctx context.Context, systemSymbol, waypointSymbol string) (*spacetraders.Construction, error) {
	return getFacility[spacetraders.Construction](ctx, c, "getting construction site", systemSymbol, waypointSymbol, "construction")
}

// SupplyConstruction implements spacetraders.SystemsClient.SupplyConstruction.
func (c *SystemsClient) SupplyConstruction(
	ctx context.Context,
	systemSymbol, waypointSymbol string,
	request *spacetraders.SupplyConstructionRequest,
) (*spacetraders.ConstructionSupply, error) {
	const operation = "supplying construction site"

	path, err := waypointPath(operation, systemSymbol, waypointSymbol, "construction/supply")
	if err != nil {
		return nil, err
	}

	err = validateBody(operation, request)
	if err != nil {
		return nil, err
	}

	return postData[spacetraders.ConstructionSupply](ctx, c.resourceBase, operation, agentAccess, path, request, http.StatusOK, http.StatusCreated)
}

func getFacility[T any](ctx context.Context, c *SystemsClient, operation, systemSymbol, waypointSymbol, facility string) (*T, error) {
	path, err := waypointPath(operation, systemSymbol, waypointSymbol, facility)
	if err != nil {
		return nil, err
	}

	return getData[T](ctx, c.resourceBase, operation, publicAccess, path)
}
