package spacetraders

import (
	"strings"
	"time"
)

// Agent represents a player agent.
type Agent struct {
	// AccountID is only included on your own agent.
	AccountID       string `json:"accountId,omitempty" yaml:"accountId,omitempty"`
	Symbol          string `json:"symbol"              validate:"required" yaml:"symbol"`
	Headquarters    string `json:"headquarters"        yaml:"headquarters"`
	Credits         int64  `json:"credits"             yaml:"credits"`
	StartingFaction string `json:"startingFaction"     yaml:"startingFaction"`
	ShipCount       int    `json:"shipCount"           yaml:"shipCount"`
}

// RegisterRequest creates a new agent.
type RegisterRequest struct {
	Symbol  string `json:"symbol"          validate:"required,min=3,max=14" yaml:"symbol"`
	Faction string `json:"faction"         validate:"required"              yaml:"faction"`
	Email   string `json:"email,omitempty" validate:"omitempty,email"       yaml:"email,omitempty"`
}

// Registration is the result of registering a new agent.
type Registration struct {
	// Token authenticates every later request made as this agent.
	Token    string   `json:"token"    validate:"required" yaml:"token"`
	Agent    Agent    `json:"agent"    yaml:"agent"`
	Contract Contract `json:"contract" yaml:"contract"`
	Faction  Faction  `json:"faction"  yaml:"faction"`
	Ship     Ship     `json:"ship"     yaml:"ship"`
}

// ContractType is the kind of a contract.
type ContractType string

// Contract types.
const (
	ContractTypeProcurement ContractType = "PROCUREMENT"
	ContractTypeTransport   ContractType = "TRANSPORT"
	ContractTypeShuttle     ContractType = "SHUTTLE"
)

// Contract represents a faction contract.
type Contract struct {
	ID            string        `json:"id"                         validate:"required" yaml:"id"`
	FactionSymbol string        `json:"factionSymbol"              yaml:"factionSymbol"`
	Type          ContractType  `json:"type"                       yaml:"type"`
	Terms         ContractTerms `json:"terms"                      yaml:"terms"`
	Accepted      bool          `json:"accepted"                   yaml:"accepted"`
	Fulfilled     bool          `json:"fulfilled"                  yaml:"fulfilled"`
	// Expiration is deprecated in favor of DeadlineToAccept.
	Expiration       *time.Time `json:"expiration,omitempty"       yaml:"expiration,omitempty"`
	DeadlineToAccept *time.Time `json:"deadlineToAccept,omitempty" yaml:"deadlineToAccept,omitempty"`
}

// ContractTerms are the conditions to fulfill a contract.
type ContractTerms struct {
	Deadline time.Time             `json:"deadline"          yaml:"deadline"`
	Payment  ContractPayment       `json:"payment"           yaml:"payment"`
	Deliver  []ContractDeliverGood `json:"deliver,omitempty" yaml:"deliver,omitempty"`
}

// ContractPayment lists the credits paid on acceptance and fulfillment.
type ContractPayment struct {
	OnAccepted  int64 `json:"onAccepted"  yaml:"onAccepted"`
	OnFulfilled int64 `json:"onFulfilled" yaml:"onFulfilled"`
}

// ContractDeliverGood is one good to deliver for a contract.
type ContractDeliverGood struct {
	TradeSymbol       string `json:"tradeSymbol"       yaml:"tradeSymbol"`
	DestinationSymbol string `json:"destinationSymbol" yaml:"destinationSymbol"`
	UnitsRequired     int    `json:"unitsRequired"     yaml:"unitsRequired"`
	UnitsFulfilled    int    `json:"unitsFulfilled"    yaml:"unitsFulfilled"`
}

// DeliverContractRequest delivers cargo towards a contract.
type DeliverContractRequest struct {
	ShipSymbol  string `json:"shipSymbol"  validate:"required" yaml:"shipSymbol"`
	TradeSymbol string `json:"tradeSymbol" validate:"required" yaml:"tradeSymbol"`
	Units       int    `json:"units"       validate:"gt=0"     yaml:"units"`
}

// AgentAndContract is returned by contract accept and fulfill.
type AgentAndContract struct {
	Agent    Agent    `json:"agent"    yaml:"agent"`
	Contract Contract `json:"contract" yaml:"contract"`
}

// ContractAndCargo is returned by contract delivery.
type ContractAndCargo struct {
	Contract Contract  `json:"contract" yaml:"contract"`
	Cargo    ShipCargo `json:"cargo"    yaml:"cargo"`
}

// ContractNegotiation wraps a newly negotiated contract.
type ContractNegotiation struct {
	Contract Contract `json:"contract" yaml:"contract"`
}

// Faction represents a game faction.
type Faction struct {
	Symbol       string         `json:"symbol"                 validate:"required" yaml:"symbol"`
	Name         string         `json:"name"                   yaml:"name"`
	Description  string         `json:"description"            yaml:"description"`
	Headquarters string         `json:"headquarters,omitempty" yaml:"headquarters,omitempty"`
	Traits       []FactionTrait `json:"traits"                 yaml:"traits"`
	IsRecruiting bool           `json:"isRecruiting"           yaml:"isRecruiting"`
}

// FactionTrait describes a faction characteristic.
type FactionTrait struct {
	Symbol      string `json:"symbol"      yaml:"symbol"`
	Name        string `json:"name"        yaml:"name"`
	Description string `json:"description" yaml:"description"`
}

// ShipNavStatus is the current status of a ship.
type ShipNavStatus string

// Ship navigation statuses.
const (
	ShipNavStatusInTransit ShipNavStatus = "IN_TRANSIT"
	ShipNavStatusInOrbit   ShipNavStatus = "IN_ORBIT"
	ShipNavStatusDocked    ShipNavStatus = "DOCKED"
)

// FlightMode is the ship's set speed between waypoints or systems.
type FlightMode string

// Flight modes.
const (
	FlightModeDrift   FlightMode = "DRIFT"
	FlightModeStealth FlightMode = "STEALTH"
	FlightModeCruise  FlightMode = "CRUISE"
	FlightModeBurn    FlightMode = "BURN"
)

// Ship represents a ship owned by the agent.
type Ship struct {
	Symbol       string           `json:"symbol"       validate:"required" yaml:"symbol"`
	Registration ShipRegistration `json:"registration" yaml:"registration"`
	Nav          ShipNav          `json:"nav"          yaml:"nav"`
	Crew         ShipCrew         `json:"crew"         yaml:"crew"`
	Frame        ShipFrame        `json:"frame"        yaml:"frame"`
	Reactor      ShipReactor      `json:"reactor"      yaml:"reactor"`
	Engine       ShipEngine       `json:"engine"       yaml:"engine"`
	Cooldown     Cooldown         `json:"cooldown"     yaml:"cooldown"`
	Modules      []ShipModule     `json:"modules"      yaml:"modules"`
	Mounts       []ShipMount      `json:"mounts"       yaml:"mounts"`
	Cargo        ShipCargo        `json:"cargo"        yaml:"cargo"`
	Fuel         ShipFuel         `json:"fuel"         yaml:"fuel"`
}

// ShipRegistration is the public registration of a ship.
type ShipRegistration struct {
	Name          string `json:"name"          yaml:"name"`
	FactionSymbol string `json:"factionSymbol" yaml:"factionSymbol"`
	Role          string `json:"role"          yaml:"role"`
}

// ShipNav is the navigation state of a ship.
type ShipNav struct {
	SystemSymbol   string        `json:"systemSymbol"   yaml:"systemSymbol"`
	WaypointSymbol string        `json:"waypointSymbol" validate:"required" yaml:"waypointSymbol"`
	Route          ShipNavRoute  `json:"route"          yaml:"route"`
	Status         ShipNavStatus `json:"status"         validate:"required" yaml:"status"`
	FlightMode     FlightMode    `json:"flightMode"     yaml:"flightMode"`
}

// ShipNavRoute is the ship's most recent or current route.
type ShipNavRoute struct {
	Destination   ShipNavRouteWaypoint `json:"destination"   yaml:"destination"`
	Origin        ShipNavRouteWaypoint `json:"origin"        yaml:"origin"`
	DepartureTime time.Time            `json:"departureTime" yaml:"departureTime"`
	Arrival       time.Time            `json:"arrival"       yaml:"arrival"`
}

// ShipNavRouteWaypoint is an endpoint of a route.
type ShipNavRouteWaypoint struct {
	Symbol       string       `json:"symbol"       yaml:"symbol"`
	Type         WaypointType `json:"type"         yaml:"type"`
	SystemSymbol string       `json:"systemSymbol" yaml:"systemSymbol"`
	X            int          `json:"x"            yaml:"x"`
	Y            int          `json:"y"            yaml:"y"`
}

// ShipCrew describes the crew of a ship.
type ShipCrew struct {
	Current  int    `json:"current"  yaml:"current"`
	Required int    `json:"required" yaml:"required"`
	Capacity int    `json:"capacity" yaml:"capacity"`
	Rotation string `json:"rotation" yaml:"rotation"`
	Morale   int    `json:"morale"   yaml:"morale"`
	Wages    int    `json:"wages"    yaml:"wages"`
}

// ShipRequirements are installation requirements of a ship component.
type ShipRequirements struct {
	Power *int `json:"power,omitempty" yaml:"power,omitempty"`
	Crew  *int `json:"crew,omitempty"  yaml:"crew,omitempty"`
	Slots *int `json:"slots,omitempty" yaml:"slots,omitempty"`
}

// ShipFrame determines module slots, mounting points and fuel capacity.
type ShipFrame struct {
	Symbol         string           `json:"symbol"              yaml:"symbol"`
	Name           string           `json:"name"                yaml:"name"`
	Description    string           `json:"description"         yaml:"description"`
	Condition      *float64         `json:"condition,omitempty" yaml:"condition,omitempty"`
	ModuleSlots    int              `json:"moduleSlots"         yaml:"moduleSlots"`
	MountingPoints int              `json:"mountingPoints"      yaml:"mountingPoints"`
	FuelCapacity   int              `json:"fuelCapacity"        yaml:"fuelCapacity"`
	Requirements   ShipRequirements `json:"requirements"        yaml:"requirements"`
}

// ShipReactor powers the ship's systems.
type ShipReactor struct {
	Symbol       string           `json:"symbol"              yaml:"symbol"`
	Name         string           `json:"name"                yaml:"name"`
	Description  string           `json:"description"         yaml:"description"`
	Condition    *float64         `json:"condition,omitempty" yaml:"condition,omitempty"`
	PowerOutput  int              `json:"powerOutput"         yaml:"powerOutput"`
	Requirements ShipRequirements `json:"requirements"        yaml:"requirements"`
}

// ShipEngine determines travel speed.
type ShipEngine struct {
	Symbol       string           `json:"symbol"              yaml:"symbol"`
	Name         string           `json:"name"                yaml:"name"`
	Description  string           `json:"description"         yaml:"description"`
	Condition    *float64         `json:"condition,omitempty" yaml:"condition,omitempty"`
	Speed        int              `json:"speed"               yaml:"speed"`
	Requirements ShipRequirements `json:"requirements"        yaml:"requirements"`
}

// ShipModule is a permanent ship installation such as a cargo hold.
type ShipModule struct {
	Symbol       string           `json:"symbol"             yaml:"symbol"`
	Capacity     *int             `json:"capacity,omitempty" yaml:"capacity,omitempty"`
	Range        *int             `json:"range,omitempty"    yaml:"range,omitempty"`
	Name         string           `json:"name"               yaml:"name"`
	Description  string           `json:"description"        yaml:"description"`
	Requirements ShipRequirements `json:"requirements"       yaml:"requirements"`
}

// ShipMount is installed on the exterior of a ship.
type ShipMount struct {
	Symbol       string           `json:"symbol"                yaml:"symbol"`
	Name         string           `json:"name"                  yaml:"name"`
	Description  string           `json:"description,omitempty" yaml:"description,omitempty"`
	Strength     *int             `json:"strength,omitempty"    yaml:"strength,omitempty"`
	Deposits     []string         `json:"deposits,omitempty"    yaml:"deposits,omitempty"`
	Requirements ShipRequirements `json:"requirements"          yaml:"requirements"`
}

// ShipCargo is the cargo hold of a ship.
type ShipCargo struct {
	Capacity  int             `json:"capacity"  yaml:"capacity"`
	Units     int             `json:"units"     yaml:"units"`
	Inventory []ShipCargoItem `json:"inventory" yaml:"inventory"`
}

// ShipCargoItem is one kind of good in a cargo hold.
type ShipCargoItem struct {
	Symbol      string `json:"symbol"      yaml:"symbol"`
	Name        string `json:"name"        yaml:"name"`
	Description string `json:"description" yaml:"description"`
	Units       int    `json:"units"       yaml:"units"`
}

// ShipFuel describes the fuel tanks of a ship.
type ShipFuel struct {
	Current  int           `json:"current"            yaml:"current"`
	Capacity int           `json:"capacity"           yaml:"capacity"`
	Consumed *FuelConsumed `json:"consumed,omitempty" yaml:"consumed,omitempty"`
}

// FuelConsumed only appears when an action consumed fuel.
type FuelConsumed struct {
	Amount    int       `json:"amount"    yaml:"amount"`
	Timestamp time.Time `json:"timestamp" yaml:"timestamp"`
}

// Cooldown is a period during which a ship cannot perform certain actions.
type Cooldown struct {
	ShipSymbol       string     `json:"shipSymbol"           validate:"required" yaml:"shipSymbol"`
	TotalSeconds     int        `json:"totalSeconds"         yaml:"totalSeconds"`
	RemainingSeconds int        `json:"remainingSeconds"     yaml:"remainingSeconds"`
	Expiration       *time.Time `json:"expiration,omitempty" yaml:"expiration,omitempty"`
}

// PurchaseShipRequest buys a ship at a shipyard.
type PurchaseShipRequest struct {
	ShipType       string `json:"shipType"       validate:"required" yaml:"shipType"`
	WaypointSymbol string `json:"waypointSymbol" validate:"required" yaml:"waypointSymbol"`
}

// ShipPurchase is the result of buying a ship.
type ShipPurchase struct {
	Agent       Agent               `json:"agent"       yaml:"agent"`
	Ship        Ship                `json:"ship"        yaml:"ship"`
	Transaction ShipyardTransaction `json:"transaction" yaml:"transaction"`
}

// CargoRequest names a good and a quantity for cargo operations.
type CargoRequest struct {
	Symbol string `json:"symbol" validate:"required" yaml:"symbol"`
	Units  int    `json:"units"  validate:"gt=0"     yaml:"units"`
}

// TransferCargoRequest moves cargo between two ships.
type TransferCargoRequest struct {
	TradeSymbol string `json:"tradeSymbol" validate:"required" yaml:"tradeSymbol"`
	Units       int    `json:"units"       validate:"gt=0"     yaml:"units"`
	ShipSymbol  string `json:"shipSymbol"  validate:"required" yaml:"shipSymbol"`
}

// CargoResult wraps a ship's cargo after a cargo operation.
type CargoResult struct {
	Cargo ShipCargo `json:"cargo" yaml:"cargo"`
}

// CargoTransaction is the result of buying or selling cargo.
type CargoTransaction struct {
	Agent       Agent             `json:"agent"       yaml:"agent"`
	Cargo       ShipCargo         `json:"cargo"       yaml:"cargo"`
	Transaction MarketTransaction `json:"transaction" yaml:"transaction"`
}

// NavResult wraps a ship's nav after orbit or dock.
type NavResult struct {
	Nav ShipNav `json:"nav" yaml:"nav"`
}

// NavigateRequest targets a waypoint for navigate, warp and jump.
type NavigateRequest struct {
	WaypointSymbol string `json:"waypointSymbol" validate:"required" yaml:"waypointSymbol"`
}

// Navigation is the result of navigate and warp.
type Navigation struct {
	Fuel   ShipFuel `json:"fuel"             yaml:"fuel"`
	Nav    ShipNav  `json:"nav"              yaml:"nav"`
	Events []Event  `json:"events,omitempty" yaml:"events,omitempty"`
}

// Event is a ship condition event raised during an action.
type Event struct {
	Symbol      string `json:"symbol"      yaml:"symbol"`
	Component   string `json:"component"   yaml:"component"`
	Name        string `json:"name"        yaml:"name"`
	Description string `json:"description" yaml:"description"`
}

// Jump is the result of a jump.
type Jump struct {
	Nav         ShipNav            `json:"nav"                   yaml:"nav"`
	Cooldown    Cooldown           `json:"cooldown"              yaml:"cooldown"`
	Transaction *MarketTransaction `json:"transaction,omitempty" yaml:"transaction,omitempty"`
	Agent       *Agent             `json:"agent,omitempty"       yaml:"agent,omitempty"`
}

// PatchNavRequest changes a ship's flight mode.
type PatchNavRequest struct {
	FlightMode FlightMode `json:"flightMode" validate:"required,oneof=DRIFT STEALTH CRUISE BURN" yaml:"flightMode"`
}

// RefuelRequest controls how a ship is refueled. Zero values refuel to
// capacity from the market.
type RefuelRequest struct {
	Units     int  `json:"units,omitempty"     validate:"gte=0" yaml:"units,omitempty"`
	FromCargo bool `json:"fromCargo,omitempty" yaml:"fromCargo,omitempty"`
}

// Refuel is the result of refueling.
type Refuel struct {
	Agent       Agent             `json:"agent"       yaml:"agent"`
	Fuel        ShipFuel          `json:"fuel"        yaml:"fuel"`
	Transaction MarketTransaction `json:"transaction" yaml:"transaction"`
}

// RefineRequest names the good to produce.
type RefineRequest struct {
	Produce string `json:"produce" validate:"required" yaml:"produce"`
}

// RefineYield is one good consumed or produced by refining.
type RefineYield struct {
	TradeSymbol string `json:"tradeSymbol" yaml:"tradeSymbol"`
	Units       int    `json:"units"       yaml:"units"`
}

// Refinement is the result of refining.
type Refinement struct {
	Cargo    ShipCargo     `json:"cargo"    yaml:"cargo"`
	Cooldown Cooldown      `json:"cooldown" yaml:"cooldown"`
	Produced []RefineYield `json:"produced" yaml:"produced"`
	Consumed []RefineYield `json:"consumed" yaml:"consumed"`
}

// Chart records who first charted a waypoint.
type Chart struct {
	WaypointSymbol string     `json:"waypointSymbol,omitempty" yaml:"waypointSymbol,omitempty"`
	SubmittedBy    string     `json:"submittedBy,omitempty"    yaml:"submittedBy,omitempty"`
	SubmittedOn    *time.Time `json:"submittedOn,omitempty"    yaml:"submittedOn,omitempty"`
}

// Charting is the result of charting a waypoint.
type Charting struct {
	Chart    Chart    `json:"chart"    yaml:"chart"`
	Waypoint Waypoint `json:"waypoint" yaml:"waypoint"`
}

// SurveySize is the size of a surveyed deposit.
type SurveySize string

// Survey sizes.
const (
	SurveySizeSmall    SurveySize = "SMALL"
	SurveySizeModerate SurveySize = "MODERATE"
	SurveySizeLarge    SurveySize = "LARGE"
)

// Survey is a resource survey of a waypoint.
type Survey struct {
	Signature  string          `json:"signature"  validate:"required" yaml:"signature"`
	Symbol     string          `json:"symbol"     validate:"required" yaml:"symbol"`
	Deposits   []SurveyDeposit `json:"deposits"   yaml:"deposits"`
	Expiration time.Time       `json:"expiration" yaml:"expiration"`
	Size       SurveySize      `json:"size"       yaml:"size"`
}

// SurveyDeposit is a resource that can be extracted.
type SurveyDeposit struct {
	Symbol string `json:"symbol" yaml:"symbol"`
}

// Surveying is the result of creating surveys.
type Surveying struct {
	Cooldown Cooldown `json:"cooldown" yaml:"cooldown"`
	Surveys  []Survey `json:"surveys"  yaml:"surveys"`
}

// Extraction is a resource extraction by a ship.
type Extraction struct {
	ShipSymbol string `json:"shipSymbol" yaml:"shipSymbol"`
	Yield      Yield  `json:"yield"      yaml:"yield"`
}

// Yield is the good and quantity obtained by extraction or siphoning.
type Yield struct {
	Symbol string `json:"symbol" yaml:"symbol"`
	Units  int    `json:"units"  yaml:"units"`
}

// ExtractionResult is the result of extracting or siphoning resources.
type ExtractionResult struct {
	Cooldown   Cooldown    `json:"cooldown"             yaml:"cooldown"`
	Extraction *Extraction `json:"extraction,omitempty" yaml:"extraction,omitempty"`
	Siphon     *Extraction `json:"siphon,omitempty"     yaml:"siphon,omitempty"`
	Cargo      ShipCargo   `json:"cargo"                yaml:"cargo"`
	Events     []Event     `json:"events,omitempty"     yaml:"events,omitempty"`
}

// ScannedSystem is a system found by a scan.
type ScannedSystem struct {
	Symbol       string     `json:"symbol"       yaml:"symbol"`
	SectorSymbol string     `json:"sectorSymbol" yaml:"sectorSymbol"`
	Type         SystemType `json:"type"         yaml:"type"`
	X            int        `json:"x"            yaml:"x"`
	Y            int        `json:"y"            yaml:"y"`
	Distance     int        `json:"distance"     yaml:"distance"`
}

// ScannedShip is a ship found by a scan.
type ScannedShip struct {
	Symbol       string           `json:"symbol"            yaml:"symbol"`
	Registration ShipRegistration `json:"registration"      yaml:"registration"`
	Nav          ShipNav          `json:"nav"               yaml:"nav"`
	Frame        *ShipFrame       `json:"frame,omitempty"   yaml:"frame,omitempty"`
	Reactor      *ShipReactor     `json:"reactor,omitempty" yaml:"reactor,omitempty"`
	Engine       ShipEngine       `json:"engine"            yaml:"engine"`
	Mounts       []ShipMount      `json:"mounts,omitempty"  yaml:"mounts,omitempty"`
}

// SystemScan is the result of scanning systems.
type SystemScan struct {
	Cooldown Cooldown        `json:"cooldown" yaml:"cooldown"`
	Systems  []ScannedSystem `json:"systems"  yaml:"systems"`
}

// WaypointScan is the result of scanning waypoints.
type WaypointScan struct {
	Cooldown  Cooldown   `json:"cooldown"  yaml:"cooldown"`
	Waypoints []Waypoint `json:"waypoints" yaml:"waypoints"`
}

// ShipScan is the result of scanning ships.
type ShipScan struct {
	Cooldown Cooldown      `json:"cooldown" yaml:"cooldown"`
	Ships    []ScannedShip `json:"ships"    yaml:"ships"`
}

// MountRequest names a mount to install or remove.
type MountRequest struct {
	Symbol string `json:"symbol" validate:"required" yaml:"symbol"`
}

// MountChange is the result of installing or removing a mount.
type MountChange struct {
	Agent       Agent                       `json:"agent"       yaml:"agent"`
	Mounts      []ShipMount                 `json:"mounts"      yaml:"mounts"`
	Cargo       ShipCargo                   `json:"cargo"       yaml:"cargo"`
	Transaction ShipModificationTransaction `json:"transaction" yaml:"transaction"`
}

// ShipModificationTransaction is the fee paid to modify a ship.
type ShipModificationTransaction struct {
	WaypointSymbol string    `json:"waypointSymbol" yaml:"waypointSymbol"`
	ShipSymbol     string    `json:"shipSymbol"     yaml:"shipSymbol"`
	TradeSymbol    string    `json:"tradeSymbol"    yaml:"tradeSymbol"`
	TotalPrice     int64     `json:"totalPrice"     yaml:"totalPrice"`
	Timestamp      time.Time `json:"timestamp"      yaml:"timestamp"`
}

// SystemType is the kind of star of a system.
type SystemType string

// System represents a star system.
type System struct {
	Symbol       string           `json:"symbol"       validate:"required" yaml:"symbol"`
	SectorSymbol string           `json:"sectorSymbol" yaml:"sectorSymbol"`
	Type         SystemType       `json:"type"         yaml:"type"`
	X            int              `json:"x"            yaml:"x"`
	Y            int              `json:"y"            yaml:"y"`
	Waypoints    []SystemWaypoint `json:"waypoints"    yaml:"waypoints"`
	Factions     []FactionSymbol  `json:"factions"     yaml:"factions"`
}

// FactionSymbol references a faction.
type FactionSymbol struct {
	Symbol string `json:"symbol" yaml:"symbol"`
}

// SystemWaypoint is the summary of a waypoint listed within a system.
type SystemWaypoint struct {
	Symbol   string            `json:"symbol"           yaml:"symbol"`
	Type     WaypointType      `json:"type"             yaml:"type"`
	X        int               `json:"x"                yaml:"x"`
	Y        int               `json:"y"                yaml:"y"`
	Orbitals []WaypointOrbital `json:"orbitals"         yaml:"orbitals"`
	Orbits   string            `json:"orbits,omitempty" yaml:"orbits,omitempty"`
}

// SystemSymbolOf returns the system part of a waypoint symbol, for example
// "X1-DF55" for "X1-DF55-20250Z". Symbols without a waypoint part are
// returned unchanged.
func SystemSymbolOf(waypointSymbol string) string {
	parts := strings.SplitN(waypointSymbol, "-", 3)
	if len(parts) < 3 {
		return waypointSymbol
	}

	return parts[0] + "-" + parts[1]
}

// WaypointType is the kind of a waypoint.
type WaypointType string

// Common waypoint types.
const (
	WaypointTypePlanet         WaypointType = "PLANET"
	WaypointTypeMoon           WaypointType = "MOON"
	WaypointTypeAsteroid       WaypointType = "ASTEROID"
	WaypointTypeGasGiant       WaypointType = "GAS_GIANT"
	WaypointTypeJumpGate       WaypointType = "JUMP_GATE"
	WaypointTypeOrbitalStation WaypointType = "ORBITAL_STATION"
)

// Waypoint represents a location within a system.
type Waypoint struct {
	Symbol              string             `json:"symbol"              validate:"required" yaml:"symbol"`
	Type                WaypointType       `json:"type"                yaml:"type"`
	SystemSymbol        string             `json:"systemSymbol"        yaml:"systemSymbol"`
	X                   int                `json:"x"                   yaml:"x"`
	Y                   int                `json:"y"                   yaml:"y"`
	Orbitals            []WaypointOrbital  `json:"orbitals"            yaml:"orbitals"`
	Orbits              string             `json:"orbits,omitempty"    yaml:"orbits,omitempty"`
	Faction             *FactionSymbol     `json:"faction,omitempty"   yaml:"faction,omitempty"`
	Traits              []WaypointTrait    `json:"traits"              yaml:"traits"`
	Modifiers           []WaypointModifier `json:"modifiers,omitempty" yaml:"modifiers,omitempty"`
	Chart               *Chart             `json:"chart,omitempty"     yaml:"chart,omitempty"`
	IsUnderConstruction bool               `json:"isUnderConstruction" yaml:"isUnderConstruction"`
}

// HasTrait reports whether the waypoint carries the trait symbol.
func (w *Waypoint) HasTrait(symbol string) bool {
	for _, trait := range w.Traits {
		if trait.Symbol == symbol {
			return true
		}
	}

	return false
}

// WaypointOrbital is a waypoint orbiting another.
type WaypointOrbital struct {
	Symbol string `json:"symbol" yaml:"symbol"`
}

// WaypointTrait is a characteristic of a waypoint, such as MARKETPLACE.
type WaypointTrait struct {
	Symbol      string `json:"symbol"      yaml:"symbol"`
	Name        string `json:"name"        yaml:"name"`
	Description string `json:"description" yaml:"description"`
}

// Waypoint traits used to locate markets and shipyards.
const (
	WaypointTraitMarketplace = "MARKETPLACE"
	WaypointTraitShipyard    = "SHIPYARD"
)

// WaypointModifier is a temporary condition of a waypoint.
type WaypointModifier struct {
	Symbol      string `json:"symbol"      yaml:"symbol"`
	Name        string `json:"name"        yaml:"name"`
	Description string `json:"description" yaml:"description"`
}

// TradeGood describes a good without prices.
type TradeGood struct {
	Symbol      string `json:"symbol"      yaml:"symbol"`
	Name        string `json:"name"        yaml:"name"`
	Description string `json:"description" yaml:"description"`
}

// SupplyLevel is the supply of a good at a market.
type SupplyLevel string

// Supply levels.
const (
	SupplyScarce   SupplyLevel = "SCARCE"
	SupplyLimited  SupplyLevel = "LIMITED"
	SupplyModerate SupplyLevel = "MODERATE"
	SupplyHigh     SupplyLevel = "HIGH"
	SupplyAbundant SupplyLevel = "ABUNDANT"
)

// ActivityLevel is the trading activity of a good.
type ActivityLevel string

// Activity levels.
const (
	ActivityWeak       ActivityLevel = "WEAK"
	ActivityGrowing    ActivityLevel = "GROWING"
	ActivityStrong     ActivityLevel = "STRONG"
	ActivityRestricted ActivityLevel = "RESTRICTED"
)

// Market lists the goods traded at a waypoint. Prices and transactions are
// only present while a ship is at the waypoint.
type Market struct {
	Symbol       string              `json:"symbol"                 validate:"required" yaml:"symbol"`
	Exports      []TradeGood         `json:"exports"                yaml:"exports"`
	Imports      []TradeGood         `json:"imports"                yaml:"imports"`
	Exchange     []TradeGood         `json:"exchange"               yaml:"exchange"`
	Transactions []MarketTransaction `json:"transactions,omitempty" yaml:"transactions,omitempty"`
	TradeGoods   []MarketTradeGood   `json:"tradeGoods,omitempty"   yaml:"tradeGoods,omitempty"`
}

// MarketTradeGood is a good with its current prices.
type MarketTradeGood struct {
	Symbol        string        `json:"symbol"             yaml:"symbol"`
	Type          string        `json:"type"               yaml:"type"`
	TradeVolume   int           `json:"tradeVolume"        yaml:"tradeVolume"`
	Supply        SupplyLevel   `json:"supply"             yaml:"supply"`
	Activity      ActivityLevel `json:"activity,omitempty" yaml:"activity,omitempty"`
	PurchasePrice int64         `json:"purchasePrice"      yaml:"purchasePrice"`
	SellPrice     int64         `json:"sellPrice"          yaml:"sellPrice"`
}

// MarketTransaction records a purchase or sale at a market.
type MarketTransaction struct {
	WaypointSymbol string    `json:"waypointSymbol" yaml:"waypointSymbol"`
	ShipSymbol     string    `json:"shipSymbol"     yaml:"shipSymbol"`
	TradeSymbol    string    `json:"tradeSymbol"    yaml:"tradeSymbol"`
	Type           string    `json:"type"           yaml:"type"`
	Units          int       `json:"units"          yaml:"units"`
	PricePerUnit   int64     `json:"pricePerUnit"   yaml:"pricePerUnit"`
	TotalPrice     int64     `json:"totalPrice"     yaml:"totalPrice"`
	Timestamp      time.Time `json:"timestamp"      yaml:"timestamp"`
}

// Shipyard lists the ships sold at a waypoint.
type Shipyard struct {
	Symbol           string                `json:"symbol"                 validate:"required" yaml:"symbol"`
	ShipTypes        []TypeTagged[string]  `json:"shipTypes"              yaml:"shipTypes"`
	Transactions     []ShipyardTransaction `json:"transactions,omitempty" yaml:"transactions,omitempty"`
	Ships            []ShipyardShip        `json:"ships,omitempty"        yaml:"ships,omitempty"`
	ModificationsFee int64                 `json:"modificationsFee"       yaml:"modificationsFee"`
}

// ShipTypeNames unwraps the ship types sold at the shipyard.
func (s *Shipyard) ShipTypeNames() []string {
	names := make([]string, 0, len(s.ShipTypes))
	for _, shipType := range s.ShipTypes {
		names = append(names, shipType.Unwrap())
	}

	return names
}

// ShipyardShip is a ship offered for sale.
type ShipyardShip struct {
	Type          string        `json:"type"               yaml:"type"`
	Name          string        `json:"name"               yaml:"name"`
	Description   string        `json:"description"        yaml:"description"`
	Supply        SupplyLevel   `json:"supply"             yaml:"supply"`
	Activity      ActivityLevel `json:"activity,omitempty" yaml:"activity,omitempty"`
	PurchasePrice int64         `json:"purchasePrice"      yaml:"purchasePrice"`
	Frame         ShipFrame     `json:"frame"              yaml:"frame"`
	Reactor       ShipReactor   `json:"reactor"            yaml:"reactor"`
	Engine        ShipEngine    `json:"engine"             yaml:"engine"`
	Modules       []ShipModule  `json:"modules"            yaml:"modules"`
	Mounts        []ShipMount   `json:"mounts"             yaml:"mounts"`
	Crew          ShipyardCrew  `json:"crew"               yaml:"crew"`
}

// ShipyardCrew is the crew requirement of a ship for sale.
type ShipyardCrew struct {
	Required int `json:"required" yaml:"required"`
	Capacity int `json:"capacity" yaml:"capacity"`
}

// ShipyardTransaction records a ship purchase.
type ShipyardTransaction struct {
	WaypointSymbol string    `json:"waypointSymbol" yaml:"waypointSymbol"`
	ShipSymbol     string    `json:"shipSymbol"     yaml:"shipSymbol"`
	ShipType       string    `json:"shipType"       yaml:"shipType"`
	Price          int64     `json:"price"          yaml:"price"`
	AgentSymbol    string    `json:"agentSymbol"    yaml:"agentSymbol"`
	Timestamp      time.Time `json:"timestamp"      yaml:"timestamp"`
}

// JumpGate lists the systems reachable through a jump gate.
type JumpGate struct {
	Symbol      string   `json:"symbol"      yaml:"symbol"`
	Connections []string `json:"connections" yaml:"connections"`
}

// Construction is the construction site of a waypoint.
type Construction struct {
	Symbol     string                 `json:"symbol"     validate:"required" yaml:"symbol"`
	Materials  []ConstructionMaterial `json:"materials"  yaml:"materials"`
	IsComplete bool                   `json:"isComplete" yaml:"isComplete"`
}

// ConstructionMaterial is a good required by a construction site.
type ConstructionMaterial struct {
	TradeSymbol string `json:"tradeSymbol" yaml:"tradeSymbol"`
	Required    int    `json:"required"    yaml:"required"`
	Fulfilled   int    `json:"fulfilled"   yaml:"fulfilled"`
}

// SupplyConstructionRequest delivers cargo to a construction site.
type SupplyConstructionRequest struct {
	ShipSymbol  string `json:"shipSymbol"  validate:"required" yaml:"shipSymbol"`
	TradeSymbol string `json:"tradeSymbol" validate:"required" yaml:"tradeSymbol"`
	Units       int    `json:"units"       validate:"gt=0"     yaml:"units"`
}

// ConstructionSupply is the result of supplying a construction site.
type ConstructionSupply struct {
	Construction Construction `json:"construction" yaml:"construction"`
	Cargo        ShipCargo    `json:"cargo"        yaml:"cargo"`
}

// ServerStatus describes the game server and its current reset.
type ServerStatus struct {
	Status        string               `json:"status"        validate:"required" yaml:"status"`
	Version       string               `json:"version"       yaml:"version"`
	ResetDate     string               `json:"resetDate"     yaml:"resetDate"`
	Description   string               `json:"description"   yaml:"description"`
	Stats         ServerStats          `json:"stats"         yaml:"stats"`
	Leaderboards  ServerLeaderboards   `json:"leaderboards"  yaml:"leaderboards"`
	ServerResets  ServerResets         `json:"serverResets"  yaml:"serverResets"`
	Announcements []ServerAnnouncement `json:"announcements" yaml:"announcements"`
	Links         []ServerLink         `json:"links"         yaml:"links"`
}

// ServerStats are global counters.
type ServerStats struct {
	Agents    int `json:"agents"    yaml:"agents"`
	Ships     int `json:"ships"     yaml:"ships"`
	Systems   int `json:"systems"   yaml:"systems"`
	Waypoints int `json:"waypoints" yaml:"waypoints"`
}

// ServerLeaderboards rank agents by credits and charts.
type ServerLeaderboards struct {
	MostCredits         []LeaderboardCredits `json:"mostCredits"         yaml:"mostCredits"`
	MostSubmittedCharts []LeaderboardCharts  `json:"mostSubmittedCharts" yaml:"mostSubmittedCharts"`
}

// LeaderboardCredits is a credits leaderboard entry.
type LeaderboardCredits struct {
	AgentSymbol string `json:"agentSymbol" yaml:"agentSymbol"`
	Credits     int64  `json:"credits"     yaml:"credits"`
}

// LeaderboardCharts is a charts leaderboard entry.
type LeaderboardCharts struct {
	AgentSymbol string `json:"agentSymbol" yaml:"agentSymbol"`
	ChartCount  int    `json:"chartCount"  yaml:"chartCount"`
}

// ServerResets schedules the next universe reset.
type ServerResets struct {
	Next      string `json:"next"      yaml:"next"`
	Frequency string `json:"frequency" yaml:"frequency"`
}

// ServerAnnouncement is a message from the game operators.
type ServerAnnouncement struct {
	Title string `json:"title" yaml:"title"`
	Body  string `json:"body"  yaml:"body"`
}

// ServerLink is a named external link.
type ServerLink struct {
	Name string `json:"name" yaml:"name"`
	URL  string `json:"url"  yaml:"url"`
}
