// Package spacetraders provides types, interfaces, and helpers for working
// with the SpaceTraders v2 API.
//
// # Overview
//
// The spacetraders package defines the game schemas (Agent, Contract, Ship,
// Waypoint, Market and friends), the interfaces of the resource clients
// (AgentsClient, FleetClient, SystemsClient, ...) and the response decoder
// shared by every operation. A concrete implementation of the clients is
// provided by the stclient package.
//
// Getting a client
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
//	  cli, err := stclient.NewWithToken(ctx, "eyJhbGciOi...")
//	  if err != nil { log.Fatal(err) }
//
//	  contracts, err := cli.Contracts().List(ctx, spacetraders.NewPageParams(1, 20))
//	  if err != nil { log.Fatal(err) }
//	  _ = contracts
//	}
//
// # Envelopes and decoding
//
// The server wraps payloads as {"data": T}, lists as {"data": [T], "meta":
// Meta} and failures as {"error": {"message", "code", "data"}}. Whether a
// body is an error is decided by the HTTP status alone: DecodeData,
// DecodePage, DecodeArray, DecodeOptional and DecodeBare return a
// *DomainError for non-success statuses and a *TransportError of kind
// ShapeMismatch when a body does not have the expected shape. Decoders are
// pure functions and safe for concurrent use.
//
// # Pagination
//
// List operations take optional *PageParams. Missing or non-positive values
// default to limit 10 and page 1. Meta.Total counts the whole collection,
// so it usually differs from the number of items on the page. FetchAllPages
// walks every page of a list.
//
// # Errors
//
//	_, err := cli.Fleet().Orbit(ctx, "BADGER-1")
//	if spacetraders.IsErrorCode(err, spacetraders.ErrorCodeShipInTransit) {
//	  // wait for arrival
//	}
//
// ConfigurationError reports calls refused before any I/O, such as agent
// operations on an anonymous client (IsNotAuthenticated) or request bodies
// that fail validation (ErrInvalidRequest).
package spacetraders
