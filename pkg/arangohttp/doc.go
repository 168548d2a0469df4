// Package arangohttp is the default transport backend for the arango
// connection manager, built directly on the ArangoDB HTTP API.
//
// Each handshake produces an independent session whose HTTP client carries
// the credential mechanism negotiated at establishment: nothing for anonymous
// sessions, basic auth headers resent per request, or a bearer token obtained
// once from /_open/auth. Sessions are verified with a version probe before
// they are handed back, so a returned connection has already proven both
// network reachability and acceptable credentials.
//
// Failures are classified onto the arango package's error sentinels
// (ErrTransportFailure, ErrAuthenticationRejected, ErrDatabaseNotAccessible)
// while keeping the server's status code and error message in the chain.
//
// # Usage
//
//	client := arangohttp.New(
//		arangohttp.WithLogger(slog.Default()),
//	)
//	manager := arango.NewWithDatabase(client, "http://localhost:8529",
//		arango.BasicAuth("root", "openSesame"), "mydb")
//
// Use NewFromConfig to drive the request timeout from the environment, or
// WithHTTPClient to supply a fully custom HTTP client (TLS settings, proxies,
// tracing round trippers).
package arangohttp
