package arango

import "context"

// ConnectionManager is the contract a generic resource pool drives: create a
// connection on demand, validate a pooled connection before lending it out,
// and cheaply pre-filter connections already known to be unusable. Manager
// implements it for any transport backend.
type ConnectionManager interface {
	Connect(ctx context.Context) (*Connection, error)
	IsValid(ctx context.Context, conn *Connection) error
	HasBroken(conn *Connection) bool
}

// Manager produces and validates authenticated ArangoDB connections for an
// external pool. Its configuration (server URL, auth method, optional target
// database) is fixed at construction, so a single Manager value is safe to
// share across any number of concurrent Connect and IsValid calls.
//
// The manager opens one session per Connect call and never caches, retries
// or pools anything itself — sizing, reuse and eviction belong to the pool.
type Manager[C Client] struct {
	client   C
	url      string
	auth     AuthMethod
	database string
}

var _ ConnectionManager = (*Manager[Client])(nil)

// New creates a manager that produces server-scoped connections.
func New[C Client](client C, serverURL string, auth AuthMethod) *Manager[C] {
	return &Manager[C]{client: client, url: serverURL, auth: auth}
}

// NewWithDatabase creates a manager whose connections are all narrowed to the
// given database. Connecting fails outright when the database does not exist
// or the authenticated principal cannot access it.
func NewWithDatabase[C Client](client C, serverURL string, auth AuthMethod, database string) *Manager[C] {
	return &Manager[C]{client: client, url: serverURL, auth: auth, database: database}
}

// Connect establishes a new authenticated connection. It dispatches the
// handshake matching the configured auth method, narrows to the target
// database when one is configured, and returns the resulting handle. Backend
// errors are returned as-is; a failed narrowing discards the half-established
// session and yields no handle.
func (m *Manager[C]) Connect(ctx context.Context) (*Connection, error) {
	var (
		sc  ServerConnection
		err error
	)
	switch m.auth.kind {
	case authBasic:
		sc, err = m.client.ConnectBasicAuth(ctx, m.url, m.auth.username, m.auth.password)
	case authJWT:
		sc, err = m.client.ConnectJWT(ctx, m.url, m.auth.username, m.auth.password)
	default:
		sc, err = m.client.Connect(ctx, m.url)
	}
	if err != nil {
		return nil, err
	}

	if m.database == "" {
		return newServerConnection(sc), nil
	}

	dc, err := sc.Database(ctx, m.database)
	if err != nil {
		return nil, err
	}
	return newDatabaseConnection(dc), nil
}

// IsValid probes whether a pooled connection is still usable: one cheap
// read-only listing call, scoped to match the handle's shape. Any successful
// response, even an empty listing, means valid; any transport or auth error
// is returned for the pool to treat as "evict, do not lend". The result is
// never cached — every call is a fresh round trip.
func (m *Manager[C]) IsValid(ctx context.Context, conn *Connection) error {
	if conn.Scoped() {
		_, err := conn.Collections(ctx)
		return err
	}
	_, err := conn.AccessibleDatabases(ctx)
	return err
}

// HasBroken reports whether a connection is already known to be unusable,
// without I/O. The backend connections expose no sticky broken flag, so this
// always answers false and brokenness is only ever detected by IsValid.
func (m *Manager[C]) HasBroken(_ *Connection) bool {
	return false
}
