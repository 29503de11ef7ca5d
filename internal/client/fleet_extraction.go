package client

import (
	"context"
	"net/http"

	"github.com/fivetwenty-io/spacetraders/pkg/spacetraders"
)

// shipAction posts an optional body to /my/ships/{ship}/{action} and expects
// 201 Created.
func shipAction[T any](ctx context.Context, c *FleetClient, operation, shipSymbol, action string, body interface{}) (*T, error) {
	path, err := shipPath(operation, shipSymbol, action)
	if err != nil {
		return nil, err
	}

	return postData[T](ctx, c.resourceBase, operation, agentAccess, path, body, http.StatusCreated)
}

// Refine implements spacetraders.FleetClient.Refine.
func (c *FleetClient) Refine(ctx context.Context, shipSymbol string, request *spacetraders.RefineRequest) (*spacetraders.Refinement, error) {
	err := validateBody("refining cargo", request)
	if err != nil {
		return nil, err
	}

	return shipAction[spacetraders.Refinement](ctx, c, "refining cargo", shipSymbol, "refine", request)
}

// CreateChart implements spacetraders.FleetClient.CreateChart.
func (c *FleetClient) CreateChart(ctx context.Context, shipSymbol string) (*spacetraders.Charting, error) {
	return shipAction[spacetraders.Charting](ctx, c, "charting waypoint", shipSymbol, "chart", nil)
}

// CreateSurvey implements spacetraders.FleetClient.CreateSurvey.
func (c *FleetClient) CreateSurvey(ctx context.Context, shipSymbol string) (*spacetraders.Surveying, error) {
	return shipAction[spacetraders.Surveying](ctx, c, "surveying waypoint", shipSymbol, "survey", nil)
}

// Extract implements spacetraders.FleetClient.Extract.
func (c *FleetClient) Extract(ctx context.Context, shipSymbol string) (*spacetraders.ExtractionResult, error) {
	return shipAction[spacetraders.ExtractionResult](ctx, c, "extracting resources", shipSymbol, "extract", nil)
}

// ExtractWithSurvey implements spacetraders.FleetClient.ExtractWithSurvey.
// The survey is sent back exactly as CreateSurvey returned it.
func (c *FleetClient) ExtractWithSurvey(
	ctx context.Context,
	shipSymbol string,
	survey *spacetraders.Survey,
) (*spacetraders.ExtractionResult, error) {
	err := validateBody("extracting resources with survey", survey)
	if err != nil {
		return nil, err
	}

	return shipAction[spacetraders.ExtractionResult](ctx, c, "extracting resources with survey", shipSymbol, "extract/survey", survey)
}

// Siphon implements spacetraders.FleetClient.Siphon.
func (c *FleetClient) Siphon(ctx context.Context, shipSymbol string) (*spacetraders.ExtractionResult, error) {
	return shipAction[spacetraders.ExtractionResult](ctx, c, "siphoning resources", shipSymbol, "siphon", nil)
}

// ScanSystems implements spacetraders.FleetClient.ScanSystems.
func (c *FleetClient) ScanSystems(ctx context.Context, shipSymbol string) (*spacetraders.SystemScan, error) {
	return shipAction[spacetraders.SystemScan](ctx, c, "scanning systems", shipSymbol, "scan/systems", nil)
}

// ScanWaypoints implements spacetraders.FleetClient.ScanWaypoints.
func (c *FleetClient) ScanWaypoints(ctx context.Context, shipSymbol string) (*spacetraders.WaypointScan, error) {
	return shipAction[spacetraders.WaypointScan](ctx, c, "scanning waypoints", shipSymbol, "scan/waypoints", nil)
}

// ScanShips implements spacetraders.FleetClient.ScanShips.
func (c *FleetClient) ScanShips(ctx context.Context, shipSymbol string) (*spacetraders.ShipScan, error) {
	return shipAction[spacetraders.ShipScan](ctx, c, "scanning ships", shipSymbol, "scan/ships", nil)
}
