package arango

// Auth method names accepted by Config.AuthMethod.
const (
	AuthMethodNone  = "none"
	AuthMethodBasic = "basic"
	AuthMethodJWT   = "jwt"
)

// Config represents the configuration for the connection manager.
type Config struct {
	ServerURL  string `env:"ARANGODB_URL" envDefault:"http://localhost:8529"` // ServerURL is the base URL of the ArangoDB server. It is passed to the backend unparsed.
	AuthMethod string `env:"ARANGODB_AUTH_METHOD" envDefault:"jwt"`           // AuthMethod selects the handshake: "jwt", "basic" or "none".
	Username   string `env:"ARANGODB_USERNAME" envDefault:"root"`             // Username for the basic and jwt methods; ignored for "none".
	Password   string `env:"ARANGODB_PASSWORD"`                               // Password for the basic and jwt methods; ignored for "none".
	Database   string `env:"ARANGODB_DATABASE"`                               // Database to narrow every connection to. Empty means server-scoped connections.
}

// NewFromConfig creates a manager from environment-driven configuration. It
// fails only on an unrecognized auth method name; URL and credential strings
// are handed to the backend untouched.
func NewFromConfig[C Client](client C, cfg Config) (*Manager[C], error) {
	var auth AuthMethod
	switch cfg.AuthMethod {
	case AuthMethodNone:
		auth = NoAuth()
	case AuthMethodBasic:
		auth = BasicAuth(cfg.Username, cfg.Password)
	case AuthMethodJWT:
		auth = JWTAuth(cfg.Username, cfg.Password)
	default:
		return nil, ErrUnknownAuthMethod
	}

	if cfg.Database != "" {
		return NewWithDatabase(client, cfg.ServerURL, auth, cfg.Database), nil
	}
	return New(client, cfg.ServerURL, auth), nil
}
