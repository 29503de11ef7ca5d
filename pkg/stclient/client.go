// Package stclient provides the main entry point for creating SpaceTraders API clients
package stclient

import (
	"context"
	"fmt"
	"strings"

	"github.com/fivetwenty-io/spacetraders/internal/client"
	"github.com/fivetwenty-io/spacetraders/internal/constants"
	"github.com/fivetwenty-io/spacetraders/pkg/spacetraders"
)

// New creates a new SpaceTraders API client. A config without a token yields
// an anonymous client that can only call the public operations.
func New(ctx context.Context, config *spacetraders.Config) (spacetraders.Client, error) {
	if config == nil {
		return nil, &spacetraders.ConfigurationError{Operation: "creating client", Err: spacetraders.ErrConfigRequired}
	}

	err := ctx.Err()
	if err != nil {
		return nil, fmt.Errorf("creating client: %w", err)
	}

	normalized := *config
	normalized.BaseURL = NormalizeBaseURL(config.BaseURL)

	c, err := client.New(&normalized)
	if err != nil {
		return nil, fmt.Errorf("failed to create new client: %w", err)
	}

	return c, nil
}

// NormalizeBaseURL applies the default API root, trims a trailing slash and
// adds "https://" when no scheme is present.
func NormalizeBaseURL(baseURL string) string {
	baseURL = strings.TrimSpace(baseURL)
	if baseURL == "" {
		return constants.DefaultBaseURL
	}

	baseURL = strings.TrimSuffix(baseURL, "/")
	if !strings.HasPrefix(baseURL, "http://") && !strings.HasPrefix(baseURL, "https://") {
		baseURL = "https://" + baseURL
	}

	return baseURL
}

// NewAnonymous creates a client for the public API at the default endpoint.
func NewAnonymous(ctx context.Context) (spacetraders.Client, error) {
	return New(ctx, &spacetraders.Config{})
}

// NewWithToken creates a client for the default endpoint acting as the
// agent the token belongs to.
func NewWithToken(ctx context.Context, token string) (spacetraders.Client, error) {
	return New(ctx, &spacetraders.Config{Token: token})
}

// NewWithEndpoint creates an anonymous client for a custom API root, such as
// a staging server or a local mock.
func NewWithEndpoint(ctx context.Context, endpoint string) (spacetraders.Client, error) {
	return New(ctx, &spacetraders.Config{BaseURL: endpoint})
}
