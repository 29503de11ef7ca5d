package spacetraders_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/fivetwenty-io/spacetraders/pkg/spacetraders"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeData(t *testing.T) {
	t.Parallel()

	t.Run("agent payload", func(t *testing.T) {
		t.Parallel()

		agent, err := spacetraders.DecodeData[spacetraders.Agent](http.StatusOK, []byte(`{"data": {"symbol": "X"}}`))
		require.NoError(t, err)
		assert.Equal(t, "X", agent.Symbol)
		assert.Zero(t, agent.Credits)
	})

	t.Run("custom success code", func(t *testing.T) {
		t.Parallel()

		agent, err := spacetraders.DecodeData[spacetraders.Agent](http.StatusCreated, []byte(`{"data":{"symbol":"X"}}`), http.StatusCreated)
		require.NoError(t, err)
		assert.Equal(t, "X", agent.Symbol)
	})

	t.Run("unexpected success code", func(t *testing.T) {
		t.Parallel()

		_, err := spacetraders.DecodeData[spacetraders.Agent](http.StatusCreated, []byte(`{"data":{"symbol":"X"}}`))
		require.Error(t, err)
		assert.True(t, spacetraders.IsShapeMismatch(err))
	})

	t.Run("domain error", func(t *testing.T) {
		t.Parallel()

		_, err := spacetraders.DecodeData[spacetraders.NavResult](http.StatusConflict,
			[]byte(`{"error": {"message": "Ship in transit", "code": 4214}}`))
		require.Error(t, err)

		var domainErr *spacetraders.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, http.StatusConflict, domainErr.Status)
		assert.Equal(t, 4214, domainErr.Code)
		assert.Equal(t, "Ship in transit", domainErr.Message)
		assert.False(t, spacetraders.IsShapeMismatch(err))
	})

	t.Run("missing required field", func(t *testing.T) {
		t.Parallel()

		agent, err := spacetraders.DecodeData[spacetraders.Agent](http.StatusOK, []byte(`{"data": {"credits": 10}}`))
		require.Error(t, err)
		assert.Nil(t, agent)

		var transportErr *spacetraders.TransportError
		require.ErrorAs(t, err, &transportErr)
		assert.Equal(t, spacetraders.ShapeMismatch, transportErr.Kind)
		assert.Equal(t, http.StatusOK, transportErr.Status)

		var domainErr *spacetraders.DomainError
		assert.False(t, errors.As(err, &domainErr))
	})

	t.Run("shape mismatches", func(t *testing.T) {
		t.Parallel()

		bodies := map[string]string{
			"empty body":    ``,
			"not json":      `<html>bad gateway</html>`,
			"missing data":  `{"symbol":"X"}`,
			"null data":     `{"data":null}`,
			"wrong type":    `{"data":{"symbol":42}}`,
			"truncated":     `{"data":{"symbol":"X"`,
			"array payload": `{"data":[{"symbol":"X"}]}`,
		}

		for name, body := range bodies {
			_, err := spacetraders.DecodeData[spacetraders.Agent](http.StatusOK, []byte(body))
			require.Error(t, err, name)
			assert.True(t, spacetraders.IsShapeMismatch(err), name)
		}
	})

	t.Run("nested required field", func(t *testing.T) {
		t.Parallel()

		_, err := spacetraders.DecodeData[spacetraders.NavResult](http.StatusOK,
			[]byte(`{"data":{"nav":{"systemSymbol":"X1-DF55","status":"DOCKED"}}}`))
		require.Error(t, err)
		assert.True(t, spacetraders.IsShapeMismatch(err))
		assert.Contains(t, err.Error(), "waypointSymbol")
	})
}

func TestDecodeErrorBodies(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		status     int
		body       string
		wantDomain bool
	}{
		{"wrapped error", http.StatusBadRequest, `{"error":{"message":"bad","code":4001}}`, true},
		{"error with data", http.StatusConflict, `{"error":{"message":"cooldown","code":4000,"data":{"cooldown":{"remainingSeconds":3}}}}`, true},
		{"bare error object", http.StatusBadRequest, `{"message":"bad","code":4001}`, false},
		{"zero code", http.StatusInternalServerError, `{"error":{"message":"internal","code":0}}`, true},
		{"missing code", http.StatusBadRequest, `{"error":{"message":"bad"}}`, false},
		{"null code", http.StatusBadRequest, `{"error":{"message":"bad","code":null}}`, false},
		{"empty body", http.StatusInternalServerError, ``, false},
		{"html", http.StatusBadGateway, `<html></html>`, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := spacetraders.DecodeError(tt.status, []byte(tt.body))
			require.Error(t, err)

			_, isDomain := spacetraders.AsDomainError(err)
			assert.Equal(t, tt.wantDomain, isDomain)
			assert.Equal(t, !tt.wantDomain, spacetraders.IsShapeMismatch(err))
		})
	}
}

func TestDecodePage(t *testing.T) {
	t.Parallel()

	body := `{"data":[{"symbol":"A"},{"symbol":"B"}],"meta":{"total":57,"page":2,"limit":2}}`

	page, err := spacetraders.DecodePage[spacetraders.Agent](http.StatusOK, []byte(body))
	require.NoError(t, err)
	require.Len(t, page.Items, 2)
	assert.Equal(t, "B", page.Items[1].Symbol)
	assert.Equal(t, spacetraders.Meta{Total: 57, Page: 2, Limit: 2}, page.Meta)

	_, err = spacetraders.DecodePage[spacetraders.Agent](http.StatusOK, []byte(`{"data":[{"credits":1}],"meta":{"total":1,"page":1,"limit":10}}`))
	require.Error(t, err)
	assert.True(t, spacetraders.IsShapeMismatch(err))
	assert.Contains(t, err.Error(), "item 0")
}

func TestDecodeArray(t *testing.T) {
	t.Parallel()

	for _, body := range []string{`{"data":[{"symbol":"M1","name":"Laser"}]}`, ` [{"symbol":"M1","name":"Laser"}]`} {
		mounts, err := spacetraders.DecodeArray[spacetraders.ShipMount](http.StatusOK, []byte(body))
		require.NoError(t, err, body)
		require.Len(t, mounts, 1)
		assert.Equal(t, "Laser", mounts[0].Name)
	}

	_, err := spacetraders.DecodeArray[spacetraders.ShipMount](http.StatusOK, []byte(`{"items":[]}`))
	require.Error(t, err)
	assert.True(t, spacetraders.IsShapeMismatch(err))
}

func TestDecodeOptional(t *testing.T) {
	t.Parallel()

	t.Run("no content", func(t *testing.T) {
		t.Parallel()

		// the body is never looked at
		cooldown, err := spacetraders.DecodeOptional[spacetraders.Cooldown](http.StatusNoContent, []byte(`garbage`))
		require.NoError(t, err)
		assert.Nil(t, cooldown)
	})

	t.Run("present", func(t *testing.T) {
		t.Parallel()

		cooldown, err := spacetraders.DecodeOptional[spacetraders.Cooldown](http.StatusOK,
			[]byte(`{"data":{"shipSymbol":"S-1","totalSeconds":60,"remainingSeconds":12}}`))
		require.NoError(t, err)
		require.NotNil(t, cooldown)
		assert.Equal(t, 12, cooldown.RemainingSeconds)
		assert.Nil(t, cooldown.Expiration)
	})

	t.Run("error", func(t *testing.T) {
		t.Parallel()

		_, err := spacetraders.DecodeOptional[spacetraders.Cooldown](http.StatusNotFound,
			[]byte(`{"error":{"message":"Ship not found","code":404}}`))
		assert.True(t, spacetraders.IsNotFound(err))
	})
}

func TestDecodeBare(t *testing.T) {
	t.Parallel()

	status, err := spacetraders.DecodeBare[spacetraders.ServerStatus](http.StatusOK,
		[]byte(`{"status":"online","version":"v2.3.0","resetDate":"2026-10-12","stats":{"agents":3}}`))
	require.NoError(t, err)
	assert.Equal(t, "online", status.Status)
	assert.Equal(t, 3, status.Stats.Agents)

	_, err = spacetraders.DecodeBare[spacetraders.ServerStatus](http.StatusOK, []byte(`{"data":{"status":"online"}}`))
	require.Error(t, err)
	assert.True(t, spacetraders.IsShapeMismatch(err))
}

func TestDecodeNoContent(t *testing.T) {
	t.Parallel()

	require.NoError(t, spacetraders.DecodeNoContent(http.StatusNoContent, nil, http.StatusNoContent))
	require.NoError(t, spacetraders.DecodeNoContent(http.StatusOK, []byte(`{"data":{}}`)))

	err := spacetraders.DecodeNoContent(http.StatusUnauthorized, []byte(`{"error":{"message":"Missing token","code":4100}}`))
	assert.True(t, spacetraders.IsUnauthorized(err))
	assert.True(t, spacetraders.IsErrorCode(err, spacetraders.ErrorCodeTokenEmpty))
}

func TestDecodeError_ZeroCode(t *testing.T) {
	t.Parallel()

	err := spacetraders.DecodeError(http.StatusInternalServerError, []byte(`{"error":{"message":"internal","code":0}}`))

	domainErr, ok := spacetraders.AsDomainError(err)
	require.True(t, ok)
	assert.Equal(t, 0, domainErr.Code)
	assert.Equal(t, "internal", domainErr.Message)
	assert.Equal(t, http.StatusInternalServerError, domainErr.Status)
}

func TestDomainErrorRoundTrip(t *testing.T) {
	t.Parallel()

	original := &spacetraders.DomainError{
		Status:  http.StatusConflict,
		Message: "Ship in transit",
		Code:    spacetraders.ErrorCodeShipInTransit,
	}

	data, err := json.Marshal(original)
	require.NoError(t, err)
	assert.JSONEq(t, `{"error":{"message":"Ship in transit","code":4214}}`, string(data))

	err = spacetraders.DecodeError(http.StatusConflict, data)

	decoded, ok := spacetraders.AsDomainError(err)
	require.True(t, ok)
	assert.Equal(t, original.Message, decoded.Message)
	assert.Equal(t, original.Code, decoded.Code)
	assert.Equal(t, original.Status, decoded.Status)
}
