package arangohttp

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/dmitrymomot/arangokit/pkg/arango"
)

// ERROR_ARANGO_DATABASE_NOT_FOUND in the ArangoDB error code registry.
const errNumDatabaseNotFound = 1228

// apiError mirrors the error envelope ArangoDB returns on failed requests.
type apiError struct {
	Error        bool   `json:"error"`
	Code         int    `json:"code"`
	ErrorNum     int    `json:"errorNum"`
	ErrorMessage string `json:"errorMessage"`
}

// statusError carries a non-2xx API response until the call site maps it onto
// the arango error taxonomy.
type statusError struct {
	status  int
	errNum  int
	message string
}

func (e *statusError) Error() string {
	if e.message == "" {
		return fmt.Sprintf("arangodb responded with status %d", e.status)
	}
	return fmt.Sprintf("arangodb responded with status %d (errorNum %d): %s", e.status, e.errNum, e.message)
}

// classify maps an API failure onto the taxonomy used for every call except
// database narrowing: credential failures are distinct, everything else is a
// transport failure. Errors already carrying a taxonomy sentinel pass through.
func classify(err error) error {
	var se *statusError
	if !errors.As(err, &se) {
		return err
	}
	switch se.status {
	case http.StatusUnauthorized, http.StatusForbidden:
		return errors.Join(arango.ErrAuthenticationRejected, err)
	default:
		return errors.Join(arango.ErrTransportFailure, err)
	}
}

// classifyDatabase maps failures of the narrowing call: a missing database or
// one the principal may not use is its own kind, distinct from both credential
// and transport failures.
func classifyDatabase(err error) error {
	var se *statusError
	if !errors.As(err, &se) {
		return err
	}
	switch {
	case se.status == http.StatusNotFound || se.errNum == errNumDatabaseNotFound:
		return errors.Join(arango.ErrDatabaseNotAccessible, err)
	case se.status == http.StatusForbidden:
		return errors.Join(arango.ErrDatabaseNotAccessible, err)
	case se.status == http.StatusUnauthorized:
		return errors.Join(arango.ErrAuthenticationRejected, err)
	default:
		return errors.Join(arango.ErrTransportFailure, err)
	}
}
