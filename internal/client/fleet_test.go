package client

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/fivetwenty-io/spacetraders/pkg/spacetraders"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	transactionJSON = `{"waypointSymbol":"X1-DF55-20250Z","shipSymbol":"BADGER-1","tradeSymbol":"IRON_ORE","type":"SELL",` +
		`"units":10,"pricePerUnit":40,"totalPrice":400,"timestamp":"2026-10-19T10:00:00Z"}`
	surveyJSON = `{"signature":"X1-DF55-17335A-5B8D4E","symbol":"X1-DF55-17335A","deposits":[{"symbol":"IRON_ORE"},{"symbol":"COPPER_ORE"}],` +
		`"expiration":"2026-10-19T11:00:00Z","size":"MODERATE"}`
	mountJSON = `{"symbol":"MOUNT_MINING_LASER_I","name":"Mining Laser I","description":"","strength":10,"requirements":{"power":1,"crew":1}}`
)

// bodyOf decodes the JSON request body into a generic map.
func bodyOf(t *testing.T, request *http.Request) map[string]interface{} {
	t.Helper()

	data, err := io.ReadAll(request.Body)
	require.NoError(t, err)

	if len(data) == 0 {
		return nil
	}

	var body map[string]interface{}

	require.NoError(t, json.Unmarshal(data, &body))

	return body
}

func TestFleetClient_ListAndGet(t *testing.T) {
	t.Parallel()

	RunCallTests(t, http.MethodGet,
		[]TestCallOperation{{
			Name:          "list",
			ExpectedPath:  "/my/ships",
			ExpectedQuery: "limit=10&page=1",
			StatusCode:    http.StatusOK,
			Body:          page(1, 1, 10, shipJSON),
		}},
		func(ctx context.Context, c *Client) (*spacetraders.Page[spacetraders.Ship], error) {
			return c.Fleet().List(ctx, nil)
		},
		func(t *testing.T, result *spacetraders.Page[spacetraders.Ship]) {
			t.Helper()
			require.Len(t, result.Items, 1)
			assert.Equal(t, spacetraders.ShipNavStatusInOrbit, result.Items[0].Nav.Status)
		})

	RunCallTests(t, http.MethodGet,
		[]TestCallOperation{
			{Name: "get", ExpectedPath: "/my/ships/BADGER-1", StatusCode: http.StatusOK, Body: wrap(shipJSON)},
			{
				Name:         "nav without status",
				ExpectedPath: "/my/ships/BADGER-1",
				StatusCode:   http.StatusOK,
				Body:         wrap(`{"symbol":"BADGER-1","nav":{"waypointSymbol":"X1-DF55-20250Z"},"cooldown":{"shipSymbol":"BADGER-1"}}`),
				WantErr:      true,
				ErrMessage:   "status",
			},
		},
		func(ctx context.Context, c *Client) (*spacetraders.Ship, error) {
			return c.Fleet().Get(ctx, "BADGER-1")
		},
		func(t *testing.T, ship *spacetraders.Ship) {
			t.Helper()
			assert.Equal(t, 400, ship.Fuel.Capacity)
			assert.Equal(t, "FRAME_FRIGATE", ship.Frame.Symbol)
			require.NotNil(t, ship.Frame.Requirements.Power)
			assert.Equal(t, 8, *ship.Frame.Requirements.Power)
		})
}

func TestFleetClient_Purchase(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "/my/ships", request.URL.Path)
		assert.Equal(t, http.MethodPost, request.Method)

		body := bodyOf(t, request)
		assert.Equal(t, "SHIP_MINING_DRONE", body["shipType"])
		assert.Equal(t, "X1-DF55-20250Z", body["waypointSymbol"])

		writer.WriteHeader(http.StatusCreated)
		_, _ = writer.Write([]byte(wrap(`{"agent":` + agentJSON + `,"ship":` + shipJSON + `,"transaction":{"waypointSymbol":"X1-DF55-20250Z",` +
			`"shipSymbol":"BADGER-1","shipType":"SHIP_MINING_DRONE","price":70000,"agentSymbol":"BADGER","timestamp":"2026-10-19T10:00:00Z"}}`)))
	}))
	defer server.Close()

	result, err := newTestClient(t, server.URL).Fleet().Purchase(context.Background(),
		&spacetraders.PurchaseShipRequest{ShipType: "SHIP_MINING_DRONE", WaypointSymbol: "X1-DF55-20250Z"})
	require.NoError(t, err)
	assert.Equal(t, int64(70000), result.Transaction.Price)
}

func TestFleetClient_NegotiateContract(t *testing.T) {
	t.Parallel()

	RunCallTests(t, http.MethodPost,
		[]TestCallOperation{{
			Name:         "negotiate",
			ExpectedPath: "/my/ships/BADGER-1/negotiate/contract",
			StatusCode:   http.StatusCreated,
			Body:         wrap(`{"contract":` + contractJSON + `}`),
		}},
		func(ctx context.Context, c *Client) (*spacetraders.ContractNegotiation, error) {
			return c.Fleet().NegotiateContract(ctx, "BADGER-1")
		},
		func(t *testing.T, result *spacetraders.ContractNegotiation) {
			t.Helper()
			assert.Equal(t, "clm0n4k8q0001", result.Contract.ID)
		})
}

//nolint:funlen // Test functions can be longer for comprehensive testing
func TestFleetClient_Cargo(t *testing.T) {
	t.Parallel()

	RunCallTests(t, http.MethodGet,
		[]TestCallOperation{{Name: "get cargo", ExpectedPath: "/my/ships/BADGER-1/cargo", StatusCode: http.StatusOK, Body: wrap(cargoJSON)}},
		func(ctx context.Context, c *Client) (*spacetraders.ShipCargo, error) {
			return c.Fleet().GetCargo(ctx, "BADGER-1")
		},
		func(t *testing.T, cargo *spacetraders.ShipCargo) {
			t.Helper()
			require.Len(t, cargo.Inventory, 1)
			assert.Equal(t, "IRON_ORE", cargo.Inventory[0].Symbol)
		})

	RunCallTests(t, http.MethodPost,
		[]TestCallOperation{{Name: "jettison", ExpectedPath: "/my/ships/BADGER-1/jettison", StatusCode: http.StatusOK, Body: wrap(`{"cargo":` + cargoJSON + `}`)}},
		func(ctx context.Context, c *Client) (*spacetraders.CargoResult, error) {
			return c.Fleet().Jettison(ctx, "BADGER-1", &spacetraders.CargoRequest{Symbol: "IRON_ORE", Units: 1})
		},
		nil)

	sale := wrap(`{"agent":` + agentJSON + `,"cargo":` + cargoJSON + `,"transaction":` + transactionJSON + `}`)

	RunCallTests(t, http.MethodPost,
		[]TestCallOperation{{Name: "sell", ExpectedPath: "/my/ships/BADGER-1/sell", StatusCode: http.StatusCreated, Body: sale}},
		func(ctx context.Context, c *Client) (*spacetraders.CargoTransaction, error) {
			return c.Fleet().Sell(ctx, "BADGER-1", &spacetraders.CargoRequest{Symbol: "IRON_ORE", Units: 10})
		},
		func(t *testing.T, result *spacetraders.CargoTransaction) {
			t.Helper()
			assert.Equal(t, int64(400), result.Transaction.TotalPrice)
		})

	RunCallTests(t, http.MethodPost,
		[]TestCallOperation{{Name: "purchase", ExpectedPath: "/my/ships/BADGER-1/purchase", StatusCode: http.StatusCreated, Body: sale}},
		func(ctx context.Context, c *Client) (*spacetraders.CargoTransaction, error) {
			return c.Fleet().PurchaseCargo(ctx, "BADGER-1", &spacetraders.CargoRequest{Symbol: "FUEL", Units: 1})
		},
		nil)

	RunCallTests(t, http.MethodPost,
		[]TestCallOperation{{Name: "transfer", ExpectedPath: "/my/ships/BADGER-1/transfer", StatusCode: http.StatusOK, Body: wrap(`{"cargo":` + cargoJSON + `}`)}},
		func(ctx context.Context, c *Client) (*spacetraders.CargoResult, error) {
			return c.Fleet().TransferCargo(ctx, "BADGER-1",
				&spacetraders.TransferCargoRequest{TradeSymbol: "IRON_ORE", Units: 5, ShipSymbol: "BADGER-2"})
		},
		nil)

	t.Run("negative units rejected", func(t *testing.T) {
		t.Parallel()

		server, reached := failingServer(t)

		_, err := newTestClient(t, server.URL).Fleet().Sell(context.Background(), "BADGER-1",
			&spacetraders.CargoRequest{Symbol: "IRON_ORE", Units: -1})
		require.ErrorIs(t, err, spacetraders.ErrInvalidRequest)
		assert.False(t, reached.Load())
	})
}

func TestFleetClient_OrbitAndDock(t *testing.T) {
	t.Parallel()

	for _, action := range []string{"orbit", "dock"} {
		t.Run(action, func(t *testing.T) {
			t.Parallel()

			server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
				assert.Equal(t, "/my/ships/BADGER-1/"+action, request.URL.Path)
				assert.Equal(t, http.MethodPost, request.Method)
				assert.Empty(t, request.Header.Get("Content-Type"))
				assert.Nil(t, bodyOf(t, request))

				_, _ = writer.Write([]byte(wrap(`{"nav":` + navJSON + `}`)))
			}))
			defer server.Close()

			fleet := newTestClient(t, server.URL).Fleet()

			var (
				result *spacetraders.NavResult
				err    error
			)

			if action == "orbit" {
				result, err = fleet.Orbit(context.Background(), "BADGER-1")
			} else {
				result, err = fleet.Dock(context.Background(), "BADGER-1")
			}

			require.NoError(t, err)
			assert.Equal(t, "X1-DF55-20250Z", result.Nav.WaypointSymbol)
		})
	}
}

func TestFleetClient_Orbit_InTransit(t *testing.T) {
	t.Parallel()

	server := newJSONServer(t, http.StatusConflict, errorTransitJSON)

	result, err := newTestClient(t, server.URL).Fleet().Orbit(context.Background(), "BADGER-1")
	require.Error(t, err)
	assert.Nil(t, result)

	domainErr, ok := spacetraders.AsDomainError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusConflict, domainErr.Status)
	assert.Equal(t, spacetraders.ErrorCodeShipInTransit, domainErr.Code)
	assert.Equal(t, "Ship is currently in transit", domainErr.Message)
}

func TestFleetClient_Travel(t *testing.T) {
	t.Parallel()

	navigation := wrap(`{"fuel":{"current":380,"capacity":400,"consumed":{"amount":20,"timestamp":"2026-10-19T10:00:00Z"}},"nav":` + navJSON + `}`)

	RunCallTests(t, http.MethodPost,
		[]TestCallOperation{
			{Name: "navigate", ExpectedPath: "/my/ships/BADGER-1/navigate", StatusCode: http.StatusOK, Body: navigation},
			{
				Name:         "insufficient fuel",
				ExpectedPath: "/my/ships/BADGER-1/navigate",
				StatusCode:   http.StatusBadRequest,
				Body:         `{"error":{"message":"Navigate request failed. Ship requires more fuel.","code":4203,"data":{"fuelRequired":38}}}`,
				WantErr:      true,
				ErrMessage:   "4203",
			},
		},
		func(ctx context.Context, c *Client) (*spacetraders.Navigation, error) {
			return c.Fleet().Navigate(ctx, "BADGER-1", &spacetraders.NavigateRequest{WaypointSymbol: "X1-DF55-A2"})
		},
		func(t *testing.T, result *spacetraders.Navigation) {
			t.Helper()
			require.NotNil(t, result.Fuel.Consumed)
			assert.Equal(t, 20, result.Fuel.Consumed.Amount)
		})

	RunCallTests(t, http.MethodPost,
		[]TestCallOperation{{Name: "warp", ExpectedPath: "/my/ships/BADGER-1/warp", StatusCode: http.StatusOK, Body: navigation}},
		func(ctx context.Context, c *Client) (*spacetraders.Navigation, error) {
			return c.Fleet().Warp(ctx, "BADGER-1", &spacetraders.NavigateRequest{WaypointSymbol: "X1-ZZ9-A1"})
		},
		nil)

	RunCallTests(t, http.MethodPost,
		[]TestCallOperation{{
			Name:         "jump",
			ExpectedPath: "/my/ships/BADGER-1/jump",
			StatusCode:   http.StatusOK,
			Body:         wrap(`{"nav":` + navJSON + `,"cooldown":` + cooldownJSON + `,"transaction":` + transactionJSON + `,"agent":` + agentJSON + `}`),
		}},
		func(ctx context.Context, c *Client) (*spacetraders.Jump, error) {
			return c.Fleet().Jump(ctx, "BADGER-1", &spacetraders.NavigateRequest{WaypointSymbol: "X1-ZZ9-I52"})
		},
		func(t *testing.T, result *spacetraders.Jump) {
			t.Helper()
			require.NotNil(t, result.Agent)
			assert.Equal(t, 42, result.Cooldown.RemainingSeconds)
		})

	t.Run("missing destination", func(t *testing.T) {
		t.Parallel()

		server, reached := failingServer(t)

		_, err := newTestClient(t, server.URL).Fleet().Navigate(context.Background(), "BADGER-1", &spacetraders.NavigateRequest{})
		require.ErrorIs(t, err, spacetraders.ErrInvalidRequest)
		assert.Contains(t, err.Error(), "waypointSymbol")
		assert.False(t, reached.Load())
	})
}

func TestFleetClient_Nav(t *testing.T) {
	t.Parallel()

	RunCallTests(t, http.MethodGet,
		[]TestCallOperation{{Name: "get nav", ExpectedPath: "/my/ships/BADGER-1/nav", StatusCode: http.StatusOK, Body: wrap(navJSON)}},
		func(ctx context.Context, c *Client) (*spacetraders.ShipNav, error) {
			return c.Fleet().GetNav(ctx, "BADGER-1")
		},
		func(t *testing.T, nav *spacetraders.ShipNav) {
			t.Helper()
			assert.Equal(t, spacetraders.FlightModeCruise, nav.FlightMode)
		})

	RunCallTests(t, http.MethodPatch,
		[]TestCallOperation{{Name: "patch nav", ExpectedPath: "/my/ships/BADGER-1/nav", StatusCode: http.StatusOK, Body: wrap(navJSON)}},
		func(ctx context.Context, c *Client) (*spacetraders.ShipNav, error) {
			return c.Fleet().PatchNav(ctx, "BADGER-1", &spacetraders.PatchNavRequest{FlightMode: spacetraders.FlightModeDrift})
		},
		nil)

	t.Run("unknown flight mode", func(t *testing.T) {
		t.Parallel()

		server, reached := failingServer(t)

		_, err := newTestClient(t, server.URL).Fleet().PatchNav(context.Background(), "BADGER-1",
			&spacetraders.PatchNavRequest{FlightMode: "WARP_SPEED"})
		require.ErrorIs(t, err, spacetraders.ErrInvalidRequest)
		assert.False(t, reached.Load())
	})
}

func TestFleetClient_GetCooldown(t *testing.T) {
	t.Parallel()

	t.Run("active cooldown", func(t *testing.T) {
		t.Parallel()

		server := newJSONServer(t, http.StatusOK, wrap(cooldownJSON))

		cooldown, err := newTestClient(t, server.URL).Fleet().GetCooldown(context.Background(), "BADGER-1")
		require.NoError(t, err)
		require.NotNil(t, cooldown)
		assert.Equal(t, 42, cooldown.RemainingSeconds)
	})

	t.Run("no cooldown", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "/my/ships/BADGER-1/cooldown", request.URL.Path)
			writer.WriteHeader(http.StatusNoContent)
		}))
		defer server.Close()

		cooldown, err := newTestClient(t, server.URL).Fleet().GetCooldown(context.Background(), "BADGER-1")
		require.NoError(t, err)
		assert.Nil(t, cooldown)
	})
}

func TestFleetClient_Refuel(t *testing.T) {
	t.Parallel()

	refuel := wrap(`{"agent":` + agentJSON + `,"fuel":{"current":400,"capacity":400},"transaction":` + transactionJSON + `}`)

	t.Run("full tank", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Nil(t, bodyOf(t, request))
			_, _ = writer.Write([]byte(refuel))
		}))
		defer server.Close()

		result, err := newTestClient(t, server.URL).Fleet().Refuel(context.Background(), "BADGER-1", nil)
		require.NoError(t, err)
		assert.Equal(t, 400, result.Fuel.Current)
	})

	t.Run("from cargo", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			body := bodyOf(t, request)
			assert.InDelta(t, 100, body["units"], 0)
			assert.Equal(t, true, body["fromCargo"])
			_, _ = writer.Write([]byte(refuel))
		}))
		defer server.Close()

		_, err := newTestClient(t, server.URL).Fleet().Refuel(context.Background(), "BADGER-1",
			&spacetraders.RefuelRequest{Units: 100, FromCargo: true})
		require.NoError(t, err)
	})
}

//nolint:funlen // Test functions can be longer for comprehensive testing
func TestFleetClient_Extraction(t *testing.T) {
	t.Parallel()

	extraction := wrap(`{"cooldown":` + cooldownJSON + `,"extraction":{"shipSymbol":"BADGER-1","yield":{"symbol":"IRON_ORE","units":7}},"cargo":` + cargoJSON + `}`)

	RunCallTests(t, http.MethodPost,
		[]TestCallOperation{
			{Name: "extract", ExpectedPath: "/my/ships/BADGER-1/extract", StatusCode: http.StatusCreated, Body: extraction},
			{
				Name:         "cooling down",
				ExpectedPath: "/my/ships/BADGER-1/extract",
				StatusCode:   http.StatusConflict,
				Body:         `{"error":{"message":"Ship action is still on cooldown for 42 second(s).","code":4000,"data":{"cooldown":` + cooldownJSON + `}}}`,
				WantErr:      true,
				ErrMessage:   "cooldown",
			},
		},
		func(ctx context.Context, c *Client) (*spacetraders.ExtractionResult, error) {
			return c.Fleet().Extract(ctx, "BADGER-1")
		},
		func(t *testing.T, result *spacetraders.ExtractionResult) {
			t.Helper()
			require.NotNil(t, result.Extraction)
			assert.Equal(t, 7, result.Extraction.Yield.Units)
		})

	t.Run("survey then extract", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			writer.WriteHeader(http.StatusCreated)

			switch request.URL.Path {
			case "/my/ships/BADGER-1/survey":
				_, _ = writer.Write([]byte(wrap(`{"cooldown":` + cooldownJSON + `,"surveys":[` + surveyJSON + `]}`)))
			case "/my/ships/BADGER-1/extract/survey":
				body := bodyOf(t, request)
				assert.Equal(t, "X1-DF55-17335A-5B8D4E", body["signature"])
				assert.Equal(t, "MODERATE", body["size"])
				_, _ = writer.Write([]byte(extraction))
			default:
				t.Errorf("unexpected path %s", request.URL.Path)
			}
		}))
		defer server.Close()

		fleet := newTestClient(t, server.URL).Fleet()

		surveying, err := fleet.CreateSurvey(context.Background(), "BADGER-1")
		require.NoError(t, err)
		require.Len(t, surveying.Surveys, 1)
		assert.Equal(t, spacetraders.SurveySizeModerate, surveying.Surveys[0].Size)

		_, err = fleet.ExtractWithSurvey(context.Background(), "BADGER-1", &surveying.Surveys[0])
		require.NoError(t, err)
	})

	RunCallTests(t, http.MethodPost,
		[]TestCallOperation{{
			Name:         "siphon",
			ExpectedPath: "/my/ships/BADGER-1/siphon",
			StatusCode:   http.StatusCreated,
			Body:         wrap(`{"cooldown":` + cooldownJSON + `,"siphon":{"shipSymbol":"BADGER-1","yield":{"symbol":"HYDROCARBON","units":4}},"cargo":` + cargoJSON + `}`),
		}},
		func(ctx context.Context, c *Client) (*spacetraders.ExtractionResult, error) {
			return c.Fleet().Siphon(ctx, "BADGER-1")
		},
		func(t *testing.T, result *spacetraders.ExtractionResult) {
			t.Helper()
			require.NotNil(t, result.Siphon)
			assert.Equal(t, "HYDROCARBON", result.Siphon.Yield.Symbol)
		})

	RunCallTests(t, http.MethodPost,
		[]TestCallOperation{{
			Name:         "refine",
			ExpectedPath: "/my/ships/BADGER-1/refine",
			StatusCode:   http.StatusCreated,
			Body: wrap(`{"cargo":` + cargoJSON + `,"cooldown":` + cooldownJSON +
				`,"produced":[{"tradeSymbol":"IRON","units":10}],"consumed":[{"tradeSymbol":"IRON_ORE","units":100}]}`),
		}},
		func(ctx context.Context, c *Client) (*spacetraders.Refinement, error) {
			return c.Fleet().Refine(ctx, "BADGER-1", &spacetraders.RefineRequest{Produce: "IRON"})
		},
		func(t *testing.T, result *spacetraders.Refinement) {
			t.Helper()
			require.Len(t, result.Produced, 1)
			assert.Equal(t, "IRON", result.Produced[0].TradeSymbol)
		})

	RunCallTests(t, http.MethodPost,
		[]TestCallOperation{{
			Name:         "chart",
			ExpectedPath: "/my/ships/BADGER-1/chart",
			StatusCode:   http.StatusCreated,
			Body:         wrap(`{"chart":{"waypointSymbol":"X1-DF55-20250Z","submittedBy":"BADGER","submittedOn":"2026-10-19T10:00:00Z"},"waypoint":` + waypointJSON + `}`),
		}},
		func(ctx context.Context, c *Client) (*spacetraders.Charting, error) {
			return c.Fleet().CreateChart(ctx, "BADGER-1")
		},
		func(t *testing.T, result *spacetraders.Charting) {
			t.Helper()
			assert.Equal(t, "BADGER", result.Chart.SubmittedBy)
		})
}

func TestFleetClient_Scans(t *testing.T) {
	t.Parallel()

	RunCallTests(t, http.MethodPost,
		[]TestCallOperation{{
			Name:         "systems",
			ExpectedPath: "/my/ships/BADGER-1/scan/systems",
			StatusCode:   http.StatusCreated,
			Body: wrap(`{"cooldown":` + cooldownJSON +
				`,"systems":[{"symbol":"X1-ZZ9","sectorSymbol":"X1","type":"BLUE_STAR","x":1,"y":2,"distance":30}]}`),
		}},
		func(ctx context.Context, c *Client) (*spacetraders.SystemScan, error) {
			return c.Fleet().ScanSystems(ctx, "BADGER-1")
		},
		func(t *testing.T, result *spacetraders.SystemScan) {
			t.Helper()
			require.Len(t, result.Systems, 1)
			assert.Equal(t, 30, result.Systems[0].Distance)
		})

	RunCallTests(t, http.MethodPost,
		[]TestCallOperation{{
			Name:         "waypoints",
			ExpectedPath: "/my/ships/BADGER-1/scan/waypoints",
			StatusCode:   http.StatusCreated,
			Body:         wrap(`{"cooldown":` + cooldownJSON + `,"waypoints":[` + waypointJSON + `]}`),
		}},
		func(ctx context.Context, c *Client) (*spacetraders.WaypointScan, error) {
			return c.Fleet().ScanWaypoints(ctx, "BADGER-1")
		},
		nil)

	RunCallTests(t, http.MethodPost,
		[]TestCallOperation{{
			Name:         "ships",
			ExpectedPath: "/my/ships/BADGER-1/scan/ships",
			StatusCode:   http.StatusCreated,
			Body: wrap(`{"cooldown":` + cooldownJSON + `,"ships":[{"symbol":"PIRATE-1","registration":{"name":"PIRATE-1","factionSymbol":"VOID","role":"HAULER"},` +
				`"nav":` + navJSON + `,"engine":{"symbol":"ENGINE_IMPULSE_DRIVE_I","name":"Impulse Drive I","description":"","speed":10,"requirements":{}}}]}`),
		}},
		func(ctx context.Context, c *Client) (*spacetraders.ShipScan, error) {
			return c.Fleet().ScanShips(ctx, "BADGER-1")
		},
		func(t *testing.T, result *spacetraders.ShipScan) {
			t.Helper()
			require.Len(t, result.Ships, 1)
			assert.Nil(t, result.Ships[0].Frame)
		})
}

func TestFleetClient_Mounts(t *testing.T) {
	t.Parallel()

	RunCallTests(t, http.MethodGet,
		[]TestCallOperation{
			{Name: "wrapped array", ExpectedPath: "/my/ships/BADGER-1/mounts", StatusCode: http.StatusOK, Body: wrap(`[` + mountJSON + `]`)},
			{Name: "bare array", ExpectedPath: "/my/ships/BADGER-1/mounts", StatusCode: http.StatusOK, Body: `[` + mountJSON + `]`},
		},
		func(ctx context.Context, c *Client) ([]spacetraders.ShipMount, error) {
			return c.Fleet().GetMounts(ctx, "BADGER-1")
		},
		func(t *testing.T, mounts []spacetraders.ShipMount) {
			t.Helper()
			require.Len(t, mounts, 1)
			assert.Equal(t, "MOUNT_MINING_LASER_I", mounts[0].Symbol)
		})

	change := wrap(`{"agent":` + agentJSON + `,"mounts":[` + mountJSON + `],"cargo":` + cargoJSON +
		`,"transaction":{"waypointSymbol":"X1-DF55-20250Z","shipSymbol":"BADGER-1","tradeSymbol":"MOUNT_MINING_LASER_I","totalPrice":3000,"timestamp":"2026-10-19T10:00:00Z"}}`)

	RunCallTests(t, http.MethodPost,
		[]TestCallOperation{{Name: "install", ExpectedPath: "/my/ships/BADGER-1/mounts/install", StatusCode: http.StatusCreated, Body: change}},
		func(ctx context.Context, c *Client) (*spacetraders.MountChange, error) {
			return c.Fleet().InstallMount(ctx, "BADGER-1", &spacetraders.MountRequest{Symbol: "MOUNT_MINING_LASER_I"})
		},
		func(t *testing.T, result *spacetraders.MountChange) {
			t.Helper()
			assert.Equal(t, int64(3000), result.Transaction.TotalPrice)
		})

	RunCallTests(t, http.MethodPost,
		[]TestCallOperation{{Name: "remove", ExpectedPath: "/my/ships/BADGER-1/mounts/remove", StatusCode: http.StatusCreated, Body: change}},
		func(ctx context.Context, c *Client) (*spacetraders.MountChange, error) {
			return c.Fleet().RemoveMount(ctx, "BADGER-1", &spacetraders.MountRequest{Symbol: "MOUNT_MINING_LASER_I"})
		},
		nil)
}
