package arango

type authKind int

const (
	authNone authKind = iota
	authBasic
	authJWT
)

// AuthMethod selects which handshake the manager runs when establishing a
// connection. Construct values with NoAuth, BasicAuth or JWTAuth; the zero
// value behaves like NoAuth. Credential strings are opaque — the manager
// never parses or validates them, the server does.
type AuthMethod struct {
	kind     authKind
	username string
	password string
}

// NoAuth skips the credential exchange entirely. Only useful against servers
// with authentication disabled, so mostly for local development.
func NoAuth() AuthMethod {
	return AuthMethod{kind: authNone}
}

// BasicAuth resends the username and password with every API call made
// through connections produced by the manager.
func BasicAuth(username, password string) AuthMethod {
	return AuthMethod{kind: authBasic, username: username, password: password}
}

// JWTAuth exchanges the username and password for a bearer token once, when
// the connection is established. Subsequent calls carry the token instead of
// the raw credentials. A failed exchange (bad credentials, server refuses to
// issue a token) fails the whole handshake.
func JWTAuth(username, password string) AuthMethod {
	return AuthMethod{kind: authJWT, username: username, password: password}
}
