package arango

import "context"

// Client is the minimal capability contract a transport backend must satisfy
// to be managed by this package. The manager is parameterized by a concrete
// implementation at construction time and never depends on transport details;
// see the arangohttp package for the default HTTP backend.
//
// Implementations must be safe for concurrent use: the manager may run any
// number of handshakes in parallel over a single shared client value.
type Client interface {
	// Connect opens a session without any credential exchange. It succeeds
	// only if the server permits anonymous API access.
	Connect(ctx context.Context, serverURL string) (ServerConnection, error)

	// ConnectBasicAuth opens a session that resends the given username and
	// password with every call made through the returned connection.
	ConnectBasicAuth(ctx context.Context, serverURL, username, password string) (ServerConnection, error)

	// ConnectJWT exchanges the given credentials for a bearer token once, at
	// establishment time. The returned connection attaches the token, not the
	// raw credentials, to subsequent calls. Token refresh is the backend's
	// concern, not the manager's.
	ConnectJWT(ctx context.Context, serverURL, username, password string) (ServerConnection, error)
}

// ServerConnection is an authenticated session that sees every database
// accessible to the authenticated principal.
type ServerConnection interface {
	// AccessibleDatabases lists the databases the session may use. An empty
	// list is a valid answer, not an error.
	AccessibleDatabases(ctx context.Context) ([]string, error)

	// Database narrows the session to a single named database. It fails when
	// the database does not exist or the principal lacks access to it.
	Database(ctx context.Context, name string) (DatabaseConnection, error)
}

// DatabaseConnection is a session narrowed to exactly one database.
type DatabaseConnection interface {
	// Name reports the database this session is bound to.
	Name() string

	// Collections lists the collections of the bound database. An empty list
	// is a valid answer, not an error.
	Collections(ctx context.Context) ([]string, error)
}
