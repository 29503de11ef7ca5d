package client

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/fivetwenty-io/spacetraders/internal/auth"
	"github.com/fivetwenty-io/spacetraders/internal/constants"
	internalhttp "github.com/fivetwenty-io/spacetraders/internal/http"
	"github.com/fivetwenty-io/spacetraders/internal/validation"
	"github.com/fivetwenty-io/spacetraders/pkg/spacetraders"
)

// Static errors for err113 compliance.
var (
	ErrMissingSymbol = errors.New("symbol must not be empty")
	ErrMissingBody   = errors.New("request body is required")
)

// access marks whether an endpoint needs an agent token.
type access bool

const (
	publicAccess access = false
	agentAccess  access = true
)

// resourceBase is shared by every resource client.
type resourceBase struct {
	httpClient   *internalhttp.Client
	tokenManager auth.TokenManager
	paginator    spacetraders.Paginator
}

// requireAuth fails when no usable token is configured.
func (b *resourceBase) requireAuth(ctx context.Context, operation string) error {
	if b.tokenManager == nil {
		return &spacetraders.ConfigurationError{Operation: operation, Err: spacetraders.ErrNotAuthenticated}
	}

	_, err := b.tokenManager.GetToken(ctx)
	if err != nil {
		return &spacetraders.ConfigurationError{
			Operation: operation,
			Err:       fmt.Errorf("%w: %w", spacetraders.ErrNotAuthenticated, err),
		}
	}

	return nil
}

func (b *resourceBase) guard(ctx context.Context, operation string, acc access) error {
	if acc == agentAccess {
		return b.requireAuth(ctx, operation)
	}

	return nil
}

// pathFor joins escaped segments onto a resource path.
func pathFor(operation, base string, symbols ...string) (string, error) {
	var builder strings.Builder

	builder.WriteString(base)

	for _, symbol := range symbols {
		if strings.TrimSpace(symbol) == "" {
			return "", &spacetraders.ConfigurationError{Operation: operation, Err: ErrMissingSymbol}
		}

		builder.WriteString("/")
		builder.WriteString(url.PathEscape(symbol))
	}

	return builder.String(), nil
}

// validateBody rejects a missing or invalid request body before sending.
func validateBody[R any](operation string, request *R) error {
	if request == nil {
		return &spacetraders.ConfigurationError{
			Operation: operation,
			Err:       fmt.Errorf("%w: %w", spacetraders.ErrInvalidRequest, ErrMissingBody),
		}
	}

	err := validation.Struct(request)
	if err != nil {
		return &spacetraders.ConfigurationError{
			Operation: operation,
			Err:       fmt.Errorf("%w: %w", spacetraders.ErrInvalidRequest, err),
		}
	}

	return nil
}

func getData[T any](ctx context.Context, b *resourceBase, operation string, acc access, path string) (*T, error) {
	err := b.guard(ctx, operation, acc)
	if err != nil {
		return nil, err
	}

	resp, err := b.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", operation, err)
	}

	result, err := spacetraders.DecodeData[T](resp.StatusCode, resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", operation, err)
	}

	return result, nil
}

func getOptional[T any](ctx context.Context, b *resourceBase, operation string, acc access, path string) (*T, error) {
	err := b.guard(ctx, operation, acc)
	if err != nil {
		return nil, err
	}

	resp, err := b.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", operation, err)
	}

	result, err := spacetraders.DecodeOptional[T](resp.StatusCode, resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", operation, err)
	}

	return result, nil
}

func getArray[T any](ctx context.Context, b *resourceBase, operation string, acc access, path string) ([]T, error) {
	err := b.guard(ctx, operation, acc)
	if err != nil {
		return nil, err
	}

	resp, err := b.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", operation, err)
	}

	items, err := spacetraders.DecodeArray[T](resp.StatusCode, resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", operation, err)
	}

	return items, nil
}

func getPage[T any](
	ctx context.Context,
	b *resourceBase,
	operation string,
	acc access,
	path string,
	params *spacetraders.PageParams,
) (*spacetraders.Page[T], error) {
	err := b.guard(ctx, operation, acc)
	if err != nil {
		return nil, err
	}

	resp, err := b.httpClient.Get(ctx, path, params.ToValues(b.paginator))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", operation, err)
	}

	page, err := spacetraders.DecodePage[T](resp.StatusCode, resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", operation, err)
	}

	return page, nil
}

// listAll walks every page of a list endpoint using the largest page the
// server accepts.
func listAll[T any](ctx context.Context, b *resourceBase, operation string, acc access, path string) ([]T, error) {
	return spacetraders.FetchAllPages(ctx, constants.MaxPageLimit,
		func(ctx context.Context, params *spacetraders.PageParams) (*spacetraders.Page[T], error) {
			return getPage[T](ctx, b, operation, acc, path, params)
		})
}

// postData sends body, which may be nil, and decodes a data envelope.
func postData[T any](
	ctx context.Context,
	b *resourceBase,
	operation string,
	acc access,
	path string,
	body interface{},
	success ...int,
) (*T, error) {
	return sendData[T](ctx, b, http.MethodPost, operation, acc, path, body, success...)
}

func patchData[T any](
	ctx context.Context,
	b *resourceBase,
	operation string,
	acc access,
	path string,
	body interface{},
) (*T, error) {
	return sendData[T](ctx, b, http.MethodPatch, operation, acc, path, body)
}

func sendData[T any](
	ctx context.Context,
	b *resourceBase,
	method string,
	operation string,
	acc access,
	path string,
	body interface{},
	success ...int,
) (*T, error) {
	err := b.guard(ctx, operation, acc)
	if err != nil {
		return nil, err
	}

	resp, err := b.httpClient.Do(ctx, &internalhttp.Request{Method: method, Path: path, Body: body})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", operation, err)
	}

	result, err := spacetraders.DecodeData[T](resp.StatusCode, resp.Body, success...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", operation, err)
	}

	return result, nil
}
