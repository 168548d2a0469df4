package arango

import "context"

// Connection is the handle the manager produces and the pool lends out. It is
// one of two shapes, fixed at creation: server-scoped (sees all accessible
// databases) or database-scoped (sees the collections of one database). A
// manager without a target database always produces the former, a manager
// with one always produces the latter.
//
// The manager keeps no reference to a Connection after returning it; the pool
// owns the handle until it evicts it.
type Connection struct {
	server   ServerConnection
	database DatabaseConnection
}

func newServerConnection(sc ServerConnection) *Connection {
	return &Connection{server: sc}
}

func newDatabaseConnection(dc DatabaseConnection) *Connection {
	return &Connection{database: dc}
}

// Scoped reports whether the connection is bound to a single database.
func (c *Connection) Scoped() bool {
	return c.database != nil
}

// DatabaseName returns the bound database name, or the empty string for a
// server-scoped connection.
func (c *Connection) DatabaseName() string {
	if c.database == nil {
		return ""
	}
	return c.database.Name()
}

// AccessibleDatabases lists the databases visible to a server-scoped
// connection. On a database-scoped connection it fails with
// ErrNotServerScoped without touching the network.
func (c *Connection) AccessibleDatabases(ctx context.Context) ([]string, error) {
	if c.server == nil {
		return nil, ErrNotServerScoped
	}
	return c.server.AccessibleDatabases(ctx)
}

// Collections lists the collections of the bound database. On a server-scoped
// connection it fails with ErrNotDatabaseScoped without touching the network.
func (c *Connection) Collections(ctx context.Context) ([]string, error) {
	if c.database == nil {
		return nil, ErrNotDatabaseScoped
	}
	return c.database.Collections(ctx)
}

// Server exposes the underlying server-scoped session, or nil for a
// database-scoped connection. Intended for callers that need backend
// operations beyond the lifecycle surface of this package.
func (c *Connection) Server() ServerConnection {
	return c.server
}

// Database exposes the underlying database-scoped session, or nil for a
// server-scoped connection.
func (c *Connection) Database() DatabaseConnection {
	return c.database
}
