package arangohttp

import (
	"net/http"

	"golang.org/x/oauth2"
)

// basicAuthTransport resends the credentials with every request, matching
// ArangoDB's basic authentication mode.
type basicAuthTransport struct {
	base     http.RoundTripper
	username string
	password string
}

func (t *basicAuthTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	// Round trippers must not mutate the caller's request.
	clone := req.Clone(req.Context())
	clone.SetBasicAuth(t.username, t.password)
	return t.base.RoundTrip(clone)
}

// bearerTransport attaches the JWT obtained at handshake time to every
// request. A static token source is deliberate: token refresh is out of this
// package's hands, expired sessions simply fail validation and get evicted.
func bearerTransport(base http.RoundTripper, token string) http.RoundTripper {
	return &oauth2.Transport{
		Base: base,
		Source: oauth2.StaticTokenSource(&oauth2.Token{
			AccessToken: token,
			TokenType:   "bearer",
		}),
	}
}
