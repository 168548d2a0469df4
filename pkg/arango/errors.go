package arango

import "errors"

var (
	ErrTransportFailure       = errors.New("transport failure while talking to arangodb")
	ErrAuthenticationRejected = errors.New("arangodb rejected the provided credentials")
	ErrDatabaseNotAccessible  = errors.New("target database does not exist or is not accessible")
	ErrHealthcheckFailed      = errors.New("arangodb healthcheck failed")
	ErrUnknownAuthMethod      = errors.New("unknown authentication method")
	ErrNotServerScoped        = errors.New("connection is bound to a single database")
	ErrNotDatabaseScoped      = errors.New("connection is not bound to a database")
)

// IsAuthenticationRejected detects credential failures so callers can decide
// between re-prompting for credentials and treating the error as transient.
func IsAuthenticationRejected(err error) bool {
	return errors.Is(err, ErrAuthenticationRejected)
}

// IsDatabaseNotAccessible detects a failed narrowing to the target database,
// distinct from later per-query access failures.
func IsDatabaseNotAccessible(err error) bool {
	return errors.Is(err, ErrDatabaseNotAccessible)
}

// IsTransportFailure detects network-level failures (unreachable server,
// reset connections, malformed responses).
func IsTransportFailure(err error) bool {
	return errors.Is(err, ErrTransportFailure)
}
