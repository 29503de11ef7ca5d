package client

import (
	"context"

	"github.com/fivetwenty-io/spacetraders/pkg/spacetraders"
)

const contractsPath = "/my/contracts"

// ContractsClient implements spacetraders.ContractsClient.
type ContractsClient struct {
	*resourceBase
}

// NewContractsClient creates a new contracts client.
func NewContractsClient(base *resourceBase) *ContractsClient {
	return &ContractsClient{resourceBase: base}
}

// List implements spacetraders.ContractsClient.List.
func (c *ContractsClient) List(ctx context.Context, params *spacetraders.PageParams) (*spacetraders.Page[spacetraders.Contract], error) {
	return getPage[spacetraders.Contract](ctx, c.resourceBase, "listing contracts", agentAccess, contractsPath, params)
}

// ListAll implements spacetraders.ContractsClient.ListAll.
func (c *ContractsClient) ListAll(ctx context.Context) ([]spacetraders.Contract, error) {
	return listAll[spacetraders.Contract](ctx, c.resourceBase, "listing contracts", agentAccess, contractsPath)
}

// Get implements spacetraders.ContractsClient.Get.
func (c *ContractsClient) Get(ctx context.Context, contractID string) (*spacetraders.Contract, error) {
	path, err := pathFor("getting contract", contractsPath, contractID)
	if err != nil {
		return nil, err
	}

	return getData[spacetraders.Contract](ctx, c.resourceBase, "getting contract", agentAccess, path)
}

// Accept implements spacetraders.ContractsClient.Accept.
func (c *ContractsClient) Accept(ctx context.Context, contractID string) (*spacetraders.AgentAndContract, error) {
	path, err := pathFor("accepting contract", contractsPath, contractID)
	if err != nil {
		return nil, err
	}

	return postData[spacetraders.AgentAndContract](ctx, c.resourceBase, "accepting contract", agentAccess, path+"/accept", nil)
}

// Deliver implements spacetraders.ContractsClient.Deliver.
func (c *ContractsClient) Deliver(
	ctx context.Context,
	contractID string,
	request *spacetraders.DeliverContractRequest,
) (*spacetraders.ContractAndCargo, error) {
	const operation = "delivering contract cargo"

	path, err := pathFor(operation, contractsPath, contractID)
	if err != nil {
		return nil, err
	}

	err = validateBody(operation, request)
	if err != nil {
		return nil, err
	}

	return postData[spacetraders.ContractAndCargo](ctx, c.resourceBase, operation, agentAccess, path+"/deliver", request)
}

// Fulfill implements spacetraders.ContractsClient.Fulfill.
func (c *ContractsClient) Fulfill(ctx context.Context, contractID string) (*spacetraders.AgentAndContract, error) {
	path, err := pathFor("fulfilling contract", contractsPath, contractID)
	if err != nil {
		return nil, err
	}

	return postData[spacetraders.AgentAndContract](ctx, c.resourceBase, "fulfilling contract", agentAccess, path+"/fulfill", nil)
}
