// Package stclient provides the primary entry point for constructing a
// SpaceTraders v2 API client that implements the spacetraders.Client
// interface.
//
// It layers configuration, HTTP transport and token handling on top of the
// resource interfaces and types defined in the spacetraders package. Most
// applications import stclient to build a client, then use the returned
// spacetraders.Client to reach the resource clients: Agents(), Contracts(),
// Factions(), Fleet() and Systems().
//
// Quick start
//
//	import (
//	  "context"
//	  "log"
//
//	  "github.com/fivetwenty-io/spacetraders/pkg/spacetraders"
//	  "github.com/fivetwenty-io/spacetraders/pkg/stclient"
//	)
//
//	func example() {
//	  ctx := context.Background()
//
//	  // Anonymous: public endpoints only.
//	  cli, err := stclient.NewAnonymous(ctx)
//	  if err != nil { log.Fatal(err) }
//
//	  reg, err := cli.Register(ctx, &spacetraders.RegisterRequest{
//	    Symbol:  "BADGER",
//	    Faction: "COSMIC",
//	  })
//	  if err != nil { log.Fatal(err) }
//
//	  // The token is not installed on cli; build an agent client with it.
//	  cli, err = stclient.NewWithToken(ctx, reg.Token)
//	  if err != nil { log.Fatal(err) }
//
//	  ships, err := cli.Fleet().List(ctx, spacetraders.NewPageParams(1, 20))
//	  if err != nil { log.Fatal(err) }
//	  _ = ships
//	}
//
// # Errors
//
// Every operation returns one of three error types, discoverable with
// errors.As: *spacetraders.DomainError when the server rejected the action,
// *spacetraders.TransportError when the request failed or the response had
// an unexpected shape, and *spacetraders.ConfigurationError when the call
// was refused locally, for example an agent operation on an anonymous
// client. Nothing is retried.
//
// # Helpers
//
// NewWithEndpoint targets another API root, which is useful against a
// staging server or an httptest server in tests.
package stclient
