package arangohttp

import (
	"context"
	"net/http"
	"net/url"

	"github.com/dmitrymomot/arangokit/pkg/arango"
)

// serverConnection is an established session with server-wide visibility.
// The credential transport lives inside its HTTP client, so every call made
// through it is authenticated the way the handshake was.
type serverConnection struct {
	client  *Client
	baseURL string
	http    *http.Client
}

var _ arango.ServerConnection = (*serverConnection)(nil)

func (s *serverConnection) AccessibleDatabases(ctx context.Context) ([]string, error) {
	var out struct {
		Result []string `json:"result"`
	}
	if err := s.client.getJSON(ctx, s.http, s.baseURL+"/_api/database/user", &out); err != nil {
		return nil, classify(err)
	}
	return out.Result, nil
}

func (s *serverConnection) Database(ctx context.Context, name string) (arango.DatabaseConnection, error) {
	dbURL := s.baseURL + "/_db/" + url.PathEscape(name)

	// Fetching the database descriptor confirms in one call that the database
	// exists and the authenticated principal may use it.
	var out struct {
		Result struct {
			Name string `json:"name"`
		} `json:"result"`
	}
	if err := s.client.getJSON(ctx, s.http, dbURL+"/_api/database/current", &out); err != nil {
		return nil, classifyDatabase(err)
	}

	return &databaseConnection{client: s.client, baseURL: dbURL, name: name, http: s.http}, nil
}

// databaseConnection is a session narrowed to one database. It shares the
// parent session's credential transport.
type databaseConnection struct {
	client  *Client
	baseURL string
	name    string
	http    *http.Client
}

var _ arango.DatabaseConnection = (*databaseConnection)(nil)

func (d *databaseConnection) Name() string {
	return d.name
}

func (d *databaseConnection) Collections(ctx context.Context) ([]string, error) {
	var out struct {
		Result []struct {
			Name string `json:"name"`
		} `json:"result"`
	}
	if err := d.client.getJSON(ctx, d.http, d.baseURL+"/_api/collection?excludeSystem=true", &out); err != nil {
		return nil, classify(err)
	}

	names := make([]string, 0, len(out.Result))
	for _, col := range out.Result {
		names = append(names, col.Name)
	}
	return names, nil
}
