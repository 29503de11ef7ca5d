package spacetraders

import (
	"context"
	"time"
)

// AgentsClient provides access to agents.
type AgentsClient interface {
	GetMyAgent(ctx context.Context) (*Agent, error)
	List(ctx context.Context, params *PageParams) (*Page[Agent], error)
	ListAll(ctx context.Context) ([]Agent, error)
	Get(ctx context.Context, symbol string) (*Agent, error)
}

// ContractsClient provides access to the agent's contracts.
type ContractsClient interface {
	List(ctx context.Context, params *PageParams) (*Page[Contract], error)
	ListAll(ctx context.Context) ([]Contract, error)
	Get(ctx context.Context, contractID string) (*Contract, error)
	Accept(ctx context.Context, contractID string) (*AgentAndContract, error)
	Deliver(ctx context.Context, contractID string, request *DeliverContractRequest) (*ContractAndCargo, error)
	Fulfill(ctx context.Context, contractID string) (*AgentAndContract, error)
}

// FactionsClient provides access to factions.
type FactionsClient interface {
	List(ctx context.Context, params *PageParams) (*Page[Faction], error)
	ListAll(ctx context.Context) ([]Faction, error)
	Get(ctx context.Context, symbol string) (*Faction, error)
}

// FleetClient provides access to the agent's ships and ship actions.
type FleetClient interface {
	List(ctx context.Context, params *PageParams) (*Page[Ship], error)
	ListAll(ctx context.Context) ([]Ship, error)
	Get(ctx context.Context, shipSymbol string) (*Ship, error)
	Purchase(ctx context.Context, request *PurchaseShipRequest) (*ShipPurchase, error)
	NegotiateContract(ctx context.Context, shipSymbol string) (*ContractNegotiation, error)

	GetCargo(ctx context.Context, shipSymbol string) (*ShipCargo, error)
	Jettison(ctx context.Context, shipSymbol string, request *CargoRequest) (*CargoResult, error)
	Sell(ctx context.Context, shipSymbol string, request *CargoRequest) (*CargoTransaction, error)
	PurchaseCargo(ctx context.Context, shipSymbol string, request *CargoRequest) (*CargoTransaction, error)
	TransferCargo(ctx context.Context, shipSymbol string, request *TransferCargoRequest) (*CargoResult, error)

	Orbit(ctx context.Context, shipSymbol string) (*NavResult, error)
	Dock(ctx context.Context, shipSymbol string) (*NavResult, error)
	Navigate(ctx context.Context, shipSymbol string, request *NavigateRequest) (*Navigation, error)
	Warp(ctx context.Context, shipSymbol string, request *NavigateRequest) (*Navigation, error)
	Jump(ctx context.Context, shipSymbol string, request *NavigateRequest) (*Jump, error)
	GetNav(ctx context.Context, shipSymbol string) (*ShipNav, error)
	PatchNav(ctx context.Context, shipSymbol string, request *PatchNavRequest) (*ShipNav, error)
	GetCooldown(ctx context.Context, shipSymbol string) (*Cooldown, error)
	Refuel(ctx context.Context, shipSymbol string, request *RefuelRequest) (*Refuel, error)

	Refine(ctx context.Context, shipSymbol string, request *RefineRequest) (*Refinement, error)
	CreateChart(ctx context.Context, shipSymbol string) (*Charting, error)
	CreateSurvey(ctx context.Context, shipSymbol string) (*Surveying, error)
	Extract(ctx context.Context, shipSymbol string) (*ExtractionResult, error)
	ExtractWithSurvey(ctx context.Context, shipSymbol string, survey *Survey) (*ExtractionResult, error)
	Siphon(ctx context.Context, shipSymbol string) (*ExtractionResult, error)
	ScanSystems(ctx context.Context, shipSymbol string) (*SystemScan, error)
	ScanWaypoints(ctx context.Context, shipSymbol string) (*WaypointScan, error)
	ScanShips(ctx context.Context, shipSymbol string) (*ShipScan, error)

	GetMounts(ctx context.Context, shipSymbol string) ([]ShipMount, error)
	InstallMount(ctx context.Context, shipSymbol string, request *MountRequest) (*MountChange, error)
	RemoveMount(ctx context.Context, shipSymbol string, request *MountRequest) (*MountChange, error)
}

// SystemsClient provides access to systems, waypoints and the facilities
// located at them.
type SystemsClient interface {
	List(ctx context.Context, params *PageParams) (*Page[System], error)
	Get(ctx context.Context, systemSymbol string) (*System, error)
	ListWaypoints(ctx context.Context, systemSymbol string, params *PageParams) (*Page[Waypoint], error)
	ListAllWaypoints(ctx context.Context, systemSymbol string) ([]Waypoint, error)
	GetWaypoint(ctx context.Context, systemSymbol, waypointSymbol string) (*Waypoint, error)
	GetMarket(ctx context.Context, systemSymbol, waypointSymbol string) (*Market, error)
	GetShipyard(ctx context.Context, systemSymbol, waypointSymbol string) (*Shipyard, error)
	GetJumpGate(ctx context.Context, systemSymbol, waypointSymbol string) (*JumpGate, error)
	GetConstruction(ctx context.Context, systemSymbol, waypointSymbol string) (*Construction, error)
	SupplyConstruction(ctx context.Context, systemSymbol, waypointSymbol string, request *SupplyConstructionRequest) (*ConstructionSupply, error)
}

// ResourceClients provides access to all resource-specific clients.
type ResourceClients interface {
	Agents() AgentsClient
	Contracts() ContractsClient
	Factions() FactionsClient
	Fleet() FleetClient
	Systems() SystemsClient
}

// Client is a SpaceTraders API client. A client without a token can only
// reach public endpoints.
type Client interface {
	ResourceClients

	GetStatus(ctx context.Context) (*ServerStatus, error)
	Register(ctx context.Context, request *RegisterRequest) (*Registration, error)
	// Authenticated reports whether the client carries an agent token.
	Authenticated() bool
}

// Logger interface for logging.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
}

// Config represents client configuration for building a spacetraders.Client.
//
// A zero Config talks to the public API anonymously. Setting Token makes the
// agent endpoints (/my/...) available; without it those operations return a
// *ConfigurationError before any request is sent.
type Config struct {
	// BaseURL: root of the API, defaults to https://api.spacetraders.io/v2.
	// stclient.New trims a trailing slash and adds "https://" if no scheme
	// is present.
	BaseURL string
	// Token: agent bearer token returned by Register.
	Token string
	// UserAgent: overrides the default User-Agent header.
	UserAgent string
	// HTTPTimeout: per-request timeout of the underlying HTTP client.
	// Contexts passed to client methods still apply.
	HTTPTimeout time.Duration
	// MaxPageLimit: when positive, page sizes above it are clamped.
	MaxPageLimit int
	// Debug: enables request/response logging when a Logger is provided.
	Debug bool
	// Logger: optional structured logger used by the HTTP layer.
	Logger Logger
}
