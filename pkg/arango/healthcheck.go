package arango

import (
	"context"
	"errors"
)

// Healthcheck returns a health check function suitable for Kubernetes
// readiness/liveness probes or HTTP health endpoints.
//
// The returned function runs the manager's validation probe against the given
// connection: a single read-only listing call that exercises both the network
// path and the authentication layer. Each invocation is a fresh round trip.
func Healthcheck[C Client](m *Manager[C], conn *Connection) func(context.Context) error {
	return func(ctx context.Context) error {
		if err := m.IsValid(ctx, conn); err != nil {
			return errors.Join(ErrHealthcheckFailed, err)
		}
		return nil
	}
}
