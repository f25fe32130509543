// Package cachet provides a Go client library for the Cachet status page
// API. It covers the ping, version, components, component groups, incidents,
// metrics, metric points, subscribers and schedules endpoints.
//
// # Basic Usage
//
// Create a client with an endpoint (and a token for mutating calls) and use
// the per-resource services hanging off it:
//
//	package main
//
//	import (
//	    "context"
//	    "log"
//
//	    cachet "github.com/statusbird/cachet-go"
//	)
//
//	func main() {
//	    config := cachet.NewConfig("https://status.example.com/api/v1").
//	        WithAPIToken("secret-token")
//
//	    client, err := cachet.NewClient(config)
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//
//	    ctx := context.Background()
//
//	    pong, err := client.Ping.Get(ctx)
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    log.Println(pong)
//	}
//
// # Return Values
//
// Read and write operations return the response body re-encoded as a
// pretty-printed JSON string (two-space indent) rather than a decoded
// structure; callers that need field access re-parse it. Delete operations
// return a plain boolean. This mirrors the upstream API tooling this library
// is compatible with, and keeps the response envelope fully opaque: list
// endpoints wrap results in {"data": [...]} while some single-resource
// endpoints do not, and the library deliberately does not normalize that.
//
//	body, err := client.Components.List(ctx, nil)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	var list struct {
//	    Data []struct {
//	        ID   int    `json:"id"`
//	        Name string `json:"name"`
//	    } `json:"data"`
//	}
//	if err := json.Unmarshal([]byte(body), &list); err != nil {
//	    log.Fatal(err)
//	}
//
// # Authentication
//
// Read endpoints work anonymously. Every mutating operation requires a
// configured API token and fails with ErrAuthRequired before any network
// call when one is missing. The token is sent in the X-Cachet-Token header.
//
// # Errors
//
// The library never logs, retries or swallows errors; every failure
// propagates to the caller:
//
//	_, err := client.Incidents.Create(ctx, cachet.IncidentCreate{Name: "Outage"})
//	switch {
//	case cachet.IsMissingArgument(err):
//	    // a required field was absent
//	case cachet.IsAuthRequired(err):
//	    // no API token configured
//	case cachet.IsHTTPError(err):
//	    // the remote service answered with a non-2xx status
//	}
//
// # Concurrency
//
// A Client holds no mutable state beyond its immutable configuration and the
// underlying connection pool; the standard library HTTP client it wraps is
// safe for concurrent use. The library itself never issues concurrent
// requests and never retries: one call, one HTTP round trip.
package cachet
