package arango_test

import (
	"context"
	"errors"
	"sync"

	"github.com/dmitrymomot/arangokit/pkg/arango"
)

// fakeClient is an in-memory transport backend. It accepts the credentials
// listed in users (or anything, for the anonymous handshake when
// allowAnonymous is set), serves the configured databases and collections,
// and can have its sessions revoked to simulate server-side invalidation.
type fakeClient struct {
	mu          sync.Mutex
	users       map[string]string
	anonymous   bool
	databases   []string
	collections map[string][]string
	connectErr  error
	handshakes  []string
	revoked     bool
}

func newFakeClient() *fakeClient {
	return &fakeClient{
		users:       map[string]string{"root": "openSesame"},
		anonymous:   true,
		databases:   []string{"_system", "mydb"},
		collections: map[string][]string{"_system": {}, "mydb": {"users", "orders"}},
	}
}

func (c *fakeClient) revoke() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.revoked = true
}

func (c *fakeClient) recordedHandshakes() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]string(nil), c.handshakes...)
}

func (c *fakeClient) establish(kind, username, password string, anonymous bool) (arango.ServerConnection, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.handshakes = append(c.handshakes, kind)

	if c.connectErr != nil {
		return nil, c.connectErr
	}
	if anonymous {
		if !c.anonymous {
			return nil, errors.Join(arango.ErrAuthenticationRejected, errors.New("anonymous access disabled"))
		}
	} else if pass, ok := c.users[username]; !ok || pass != password {
		return nil, errors.Join(arango.ErrAuthenticationRejected, errors.New("unknown user or wrong password"))
	}
	return &fakeServerConn{client: c}, nil
}

func (c *fakeClient) Connect(_ context.Context, _ string) (arango.ServerConnection, error) {
	return c.establish("none", "", "", true)
}

func (c *fakeClient) ConnectBasicAuth(_ context.Context, _, username, password string) (arango.ServerConnection, error) {
	return c.establish("basic", username, password, false)
}

func (c *fakeClient) ConnectJWT(_ context.Context, _, username, password string) (arango.ServerConnection, error) {
	return c.establish("jwt", username, password, false)
}

type fakeServerConn struct {
	client *fakeClient
}

func (s *fakeServerConn) AccessibleDatabases(context.Context) ([]string, error) {
	s.client.mu.Lock()
	defer s.client.mu.Unlock()
	if s.client.revoked {
		return nil, errors.Join(arango.ErrAuthenticationRejected, errors.New("session revoked"))
	}
	return append([]string(nil), s.client.databases...), nil
}

func (s *fakeServerConn) Database(_ context.Context, name string) (arango.DatabaseConnection, error) {
	s.client.mu.Lock()
	defer s.client.mu.Unlock()
	if _, ok := s.client.collections[name]; !ok {
		return nil, errors.Join(arango.ErrDatabaseNotAccessible, errors.New("database not found: "+name))
	}
	return &fakeDatabaseConn{client: s.client, name: name}, nil
}

type fakeDatabaseConn struct {
	client *fakeClient
	name   string
}

func (d *fakeDatabaseConn) Name() string {
	return d.name
}

func (d *fakeDatabaseConn) Collections(context.Context) ([]string, error) {
	d.client.mu.Lock()
	defer d.client.mu.Unlock()
	if d.client.revoked {
		return nil, errors.Join(arango.ErrAuthenticationRejected, errors.New("session revoked"))
	}
	return append([]string(nil), d.client.collections[d.name]...), nil
}
