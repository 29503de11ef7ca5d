package client

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync/atomic"
	"testing"

	"github.com/fivetwenty-io/spacetraders/pkg/spacetraders"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testToken = "test-token"

// newTestClient creates an authenticated client against baseURL.
func newTestClient(t *testing.T, baseURL string) *Client {
	t.Helper()

	client, err := New(&spacetraders.Config{BaseURL: baseURL, Token: testToken})
	require.NoError(t, err)

	return client
}

// newAnonymousTestClient creates a client without a token.
func newAnonymousTestClient(t *testing.T, baseURL string) *Client {
	t.Helper()

	client, err := New(&spacetraders.Config{BaseURL: baseURL})
	require.NoError(t, err)

	return client
}

// TestCallOperation represents a single request/response exchange.
type TestCallOperation struct {
	Name          string
	ExpectedPath  string
	ExpectedQuery string
	StatusCode    int
	Body          string
	WantErr       bool
	ErrMessage    string
}

// RunCallTests runs operation tests against a server answering each case
// with its raw body.
func RunCallTests[TResponse any](
	t *testing.T,
	method string,
	tests []TestCallOperation,
	callFunc func(context.Context, *Client) (TResponse, error),
	check func(*testing.T, TResponse),
) {
	t.Helper()

	for _, testCase := range tests {
		t.Run(testCase.Name, func(t *testing.T) {
			t.Parallel()

			server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
				assert.Equal(t, testCase.ExpectedPath, request.URL.Path)
				assert.Equal(t, method, request.Method)
				assert.Equal(t, "Bearer "+testToken, request.Header.Get("Authorization"))

				if testCase.ExpectedQuery != "" {
					assert.Equal(t, testCase.ExpectedQuery, request.URL.RawQuery)
				}

				writer.Header().Set("Content-Type", "application/json")
				writer.WriteHeader(testCase.StatusCode)
				_, _ = writer.Write([]byte(testCase.Body))
			}))
			defer server.Close()

			result, err := callFunc(context.Background(), newTestClient(t, server.URL))

			if testCase.WantErr {
				require.Error(t, err)

				if testCase.ErrMessage != "" {
					assert.Contains(t, err.Error(), testCase.ErrMessage)
				}

				return
			}

			require.NoError(t, err)

			if check != nil {
				check(t, result)
			}
		})
	}
}

// failingServer records whether it was reached.
func failingServer(t *testing.T) (*httptest.Server, *atomic.Bool) {
	t.Helper()

	reached := &atomic.Bool{}
	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		reached.Store(true)

		writer.WriteHeader(http.StatusInternalServerError)
	}))
	t.Cleanup(server.Close)

	return server, reached
}

const (
	agentJSON    = `{"accountId":"acc-1","symbol":"BADGER","headquarters":"X1-DF55-20250Z","credits":175000,"startingFaction":"COSMIC","shipCount":2}`
	contractJSON = `{"id":"clm0n4k8q0001","factionSymbol":"COSMIC","type":"PROCUREMENT",` +
		`"terms":{"deadline":"2026-11-01T00:00:00Z","payment":{"onAccepted":1000,"onFulfilled":5000},` +
		`"deliver":[{"tradeSymbol":"IRON_ORE","destinationSymbol":"X1-DF55-20250Z","unitsRequired":40,"unitsFulfilled":0}]},` +
		`"accepted":false,"fulfilled":false,"deadlineToAccept":"2026-10-25T00:00:00Z"}`
	navJSON = `{"systemSymbol":"X1-DF55","waypointSymbol":"X1-DF55-20250Z","status":"IN_ORBIT","flightMode":"CRUISE",` +
		`"route":{"destination":{"symbol":"X1-DF55-20250Z","type":"PLANET","systemSymbol":"X1-DF55","x":10,"y":-4},` +
		`"origin":{"symbol":"X1-DF55-20250Z","type":"PLANET","systemSymbol":"X1-DF55","x":10,"y":-4},` +
		`"departureTime":"2026-10-19T10:00:00Z","arrival":"2026-10-19T10:00:00Z"}}`
	cargoJSON    = `{"capacity":40,"units":10,"inventory":[{"symbol":"IRON_ORE","name":"Iron Ore","description":"ore","units":10}]}`
	cooldownJSON = `{"shipSymbol":"BADGER-1","totalSeconds":70,"remainingSeconds":42,"expiration":"2026-10-19T10:01:10Z"}`
	shipJSON     = `{"symbol":"BADGER-1","registration":{"name":"BADGER-1","factionSymbol":"COSMIC","role":"COMMAND"},` +
		`"nav":` + navJSON + `,"crew":{"current":57,"required":57,"capacity":80,"rotation":"STRICT","morale":100,"wages":0},` +
		`"frame":{"symbol":"FRAME_FRIGATE","name":"Frigate","description":"","moduleSlots":8,"mountingPoints":5,"fuelCapacity":400,"requirements":{"power":8,"crew":25}},` +
		`"reactor":{"symbol":"REACTOR_FISSION_I","name":"Fission Reactor I","description":"","powerOutput":31,"requirements":{"crew":8}},` +
		`"engine":{"symbol":"ENGINE_ION_DRIVE_II","name":"Ion Drive II","description":"","speed":30,"requirements":{"power":6,"crew":8}},` +
		`"cooldown":` + cooldownJSON + `,"modules":[],"mounts":[],"cargo":` + cargoJSON + `,"fuel":{"current":400,"capacity":400}}`
	waypointJSON = `{"symbol":"X1-DF55-20250Z","type":"PLANET","systemSymbol":"X1-DF55","x":10,"y":-4,` +
		`"orbitals":[{"symbol":"X1-DF55-20250Z1"}],"traits":[{"symbol":"MARKETPLACE","name":"Marketplace","description":""}],` +
		`"isUnderConstruction":false}`
	systemJSON = `{"symbol":"X1-DF55","sectorSymbol":"X1","type":"RED_STAR","x":-42,"y":17,` +
		`"waypoints":[{"symbol":"X1-DF55-20250Z","type":"PLANET","x":10,"y":-4,"orbitals":[]}],"factions":[{"symbol":"COSMIC"}]}`
	errorTransitJSON = `{"error":{"message":"Ship is currently in transit","code":4214}}`
	errorNotFound    = `{"error":{"message":"Resource not found","code":404}}`
)

// wrap puts payload in a data envelope.
func wrap(payload string) string {
	return `{"data":` + payload + `}`
}

// page puts items in a paginated envelope.
func page(total, pageNumber, limit int, items ...string) string {
	body := `{"data":[`
	for i, item := range items {
		if i > 0 {
			body += ","
		}

		body += item
	}

	return body + `],"meta":{"total":` + strconv.Itoa(total) + `,"page":` + strconv.Itoa(pageNumber) + `,"limit":` + strconv.Itoa(limit) + `}}`
}

// newJSONServer answers every request with status and body.
func newJSONServer(t *testing.T, status int, body string) *httptest.Server {
	t.Helper()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		writer.Header().Set("Content-Type", "application/json")
		writer.WriteHeader(status)
		_, _ = writer.Write([]byte(body))
	}))
	t.Cleanup(server.Close)

	return server
}

// newPagedServer serves the bodies keyed by the page query parameter on path.
func newPagedServer(t *testing.T, path string, pages map[string]string) *httptest.Server {
	t.Helper()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, path, request.URL.Path)
		assert.Equal(t, "20", request.URL.Query().Get("limit"))

		body, ok := pages[request.URL.Query().Get("page")]
		if !ok {
			body = `{"data":[],"meta":{"total":0,"page":0,"limit":20}}`
		}

		writer.Header().Set("Content-Type", "application/json")
		_, _ = writer.Write([]byte(body))
	}))
	t.Cleanup(server.Close)

	return server
}
