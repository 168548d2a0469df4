// Package arango provides connection-lifecycle management for ArangoDB,
// designed to sit between a generic resource pool and a pluggable transport
// backend.
//
// The package owns exactly the part the pool cannot: establishing an
// authenticated connection under one of three auth methods, optionally
// narrowing it to a single database, and validating pooled connections with a
// cheap read-only probe. Pooling mechanics (sizing, borrowing, eviction) stay
// with the pool; wire transport stays with the backend.
//
// Key features:
//   - Three authentication methods: none, basic, and JWT token exchange
//   - Server-scoped or database-scoped connections, fixed per manager
//   - Generic over any transport backend satisfying the Client interface
//   - Validation probe that checks reachability and auth in one round trip
//   - Error types compatible with errors.Is() for clean error handling
//
// # Usage
//
//	import (
//		"context"
//
//		"github.com/dmitrymomot/arangokit/pkg/arango"
//		"github.com/dmitrymomot/arangokit/pkg/arangohttp"
//	)
//
//	func main() {
//		manager := arango.New(
//			arangohttp.New(),
//			"http://localhost:8529",
//			arango.JWTAuth("root", "openSesame"),
//		)
//
//		conn, err := manager.Connect(context.Background())
//		if err != nil {
//			log.Fatal(err)
//		}
//
//		dbs, _ := conn.AccessibleDatabases(context.Background())
//		log.Println("accessible databases:", dbs)
//
//		// Before lending a pooled connection out:
//		if err := manager.IsValid(context.Background(), conn); err != nil {
//			log.Println("connection went stale, evict it:", err)
//		}
//	}
//
// Use NewWithDatabase to bind every produced connection to one database; the
// handle then enumerates collections instead of databases, and connecting
// fails outright when the database is missing or inaccessible.
//
// # Configuration
//
// Config is populated from environment variables (see the field tags) so that
// server location and credentials can be supplied per environment without
// code changes. NewFromConfig maps a Config onto a manager.
//
// # Error Handling
//
// Backend errors are surfaced verbatim — the manager never retries, wraps or
// suppresses them. Backends classify failures with the package sentinels
// (ErrTransportFailure, ErrAuthenticationRejected, ErrDatabaseNotAccessible)
// so callers can branch with errors.Is or the Is* helpers.
//
// # See Also
//
// The default HTTP backend lives in github.com/dmitrymomot/arangokit/pkg/arangohttp.
package arango
