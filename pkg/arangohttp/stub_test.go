package arangohttp_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
)

// stubArango emulates the slice of the ArangoDB HTTP API this package talks
// to: the token exchange, the version probe, and the database/collection
// listings, with basic and bearer authentication enforced per request.
type stubArango struct {
	mu          sync.Mutex
	username    string
	password    string
	token       string
	anonymous   bool
	databases   []string
	collections map[string][]string
	lastAuth    string
}

func newStubArango() *stubArango {
	return &stubArango{
		username:    "root",
		password:    "openSesame",
		token:       "stub-jwt-token",
		databases:   []string{"_system", "mydb"},
		collections: map[string][]string{"_system": {}, "mydb": {"users", "orders"}},
	}
}

func (s *stubArango) start() *httptest.Server {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /_open/auth", s.handleAuth)
	mux.HandleFunc("GET /_api/version", s.authorized(s.handleVersion))
	mux.HandleFunc("GET /_api/database/user", s.authorized(s.handleDatabases))
	mux.HandleFunc("GET /_db/{db}/_api/database/current", s.authorized(s.handleCurrentDatabase))
	mux.HandleFunc("GET /_db/{db}/_api/collection", s.authorized(s.handleCollections))
	return httptest.NewServer(mux)
}

// revoke invalidates every token issued so far.
func (s *stubArango) revoke() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = "rotated-" + s.token
}

func (s *stubArango) lastAuthorization() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastAuth
}

func (s *stubArango) handleAuth(w http.ResponseWriter, r *http.Request) {
	var creds struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
		writeAPIError(w, http.StatusBadRequest, 600, "invalid JSON")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if creds.Username != s.username || creds.Password != s.password {
		writeAPIError(w, http.StatusUnauthorized, 401, "Wrong credentials")
		return
	}
	writeJSON(w, map[string]string{"jwt": s.token})
}

func (s *stubArango) authorized(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")

		s.mu.Lock()
		s.lastAuth = header
		ok := s.anonymous
		if !ok {
			switch {
			case strings.HasPrefix(strings.ToLower(header), "bearer "):
				ok = strings.TrimSpace(header[len("bearer "):]) == s.token
			case strings.HasPrefix(header, "Basic "):
				user, pass, parsed := r.BasicAuth()
				ok = parsed && user == s.username && pass == s.password
			}
		}
		s.mu.Unlock()

		if !ok {
			writeAPIError(w, http.StatusUnauthorized, 401, "not authorized to execute this request")
			return
		}
		next(w, r)
	}
}

func (s *stubArango) handleVersion(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, map[string]string{"server": "arango", "version": "3.11.4", "license": "community"})
}

func (s *stubArango) handleDatabases(w http.ResponseWriter, _ *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	writeJSON(w, map[string]any{"error": false, "code": 200, "result": s.databases})
}

func (s *stubArango) handleCurrentDatabase(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("db")

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.collections[name]; !ok {
		writeAPIError(w, http.StatusNotFound, 1228, "database not found")
		return
	}
	writeJSON(w, map[string]any{
		"error":  false,
		"code":   200,
		"result": map[string]any{"name": name, "isSystem": name == "_system"},
	})
}

func (s *stubArango) handleCollections(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("db")

	s.mu.Lock()
	defer s.mu.Unlock()
	cols, ok := s.collections[name]
	if !ok {
		writeAPIError(w, http.StatusNotFound, 1228, "database not found")
		return
	}
	result := make([]map[string]any, 0, len(cols))
	for _, col := range cols {
		result = append(result, map[string]any{"name": col, "isSystem": false})
	}
	writeJSON(w, map[string]any{"error": false, "code": 200, "result": result})
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}

func writeAPIError(w http.ResponseWriter, status, errNum int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]any{
		"error":        true,
		"code":         status,
		"errorNum":     errNum,
		"errorMessage": message,
	})
}
