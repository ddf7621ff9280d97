package main

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"csa-console/internal/model"
	"csa-console/internal/session"
)

type fakeBackend struct {
	mu      sync.Mutex
	calls   []string
	failPut string
}

func (f *fakeBackend) serve(t *testing.T) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		f.calls = append(f.calls, r.Method+" "+r.URL.Path)
		f.mu.Unlock()

		if r.Header.Get("Authorization") != "Bearer tok" && r.URL.Path != "/token" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		switch {
		case r.Method == http.MethodPost && r.URL.Path == "/token":
			_ = json.NewEncoder(w).Encode(model.LoginResult{AccessToken: "tok", Name: "Ann", AccessRights: model.AccessTrainer})
		case r.Method == http.MethodGet && r.URL.Path == "/user":
			_ = json.NewEncoder(w).Encode([]model.TeamMember{
				{UUID: "1", Name: "Ann", Email: "ann@example.com", AccessRights: model.AccessTrainer, Schemes: []string{"Careshield"}},
				{UUID: "2", Name: "Bob", Email: "bob@example.com", AccessRights: model.AccessTrainee, Schemes: []string{"Medisave"}},
				{UUID: "3", Name: "Cid", Email: "cid@example.com", AccessRights: model.AccessTrainee},
			})
		case r.Method == http.MethodPut && r.URL.Path == f.failPut:
			w.WriteHeader(http.StatusInternalServerError)
			_, _ = w.Write([]byte(`{"detail":"boom"}`))
		default:
			w.WriteHeader(http.StatusOK)
		}
	}))
	t.Cleanup(srv.Close)
	return srv
}

func (f *fakeBackend) writes() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []string
	for _, c := range f.calls {
		if c != "GET /user" && c != "POST /token" {
			out = append(out, c)
		}
	}
	return out
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func loggedIn(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "session.json")
	require.NoError(t, session.NewFileTokens(path).Save(model.LoginResult{AccessToken: "tok"}))
	return path
}

func writeRoster(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "roster.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

const rosterYAML = `
members:
  - uuid: "2"
    email: bob@new.example.com
  - uuid: "1"
    schemes: [Careshield]
delete: ["3"]
`

func TestLogin(t *testing.T) {
	be := &fakeBackend{}
	srv := be.serve(t)
	path := filepath.Join(t.TempDir(), "nested", "session.json")

	out, err := run(t, "login", "--backend", srv.URL, "--session", path, "--email", "ann@example.com", "--password", "x")
	require.NoError(t, err)
	assert.Contains(t, out, "Logged in as Ann (Trainer)")

	login, err := session.NewFileTokens(path).Load()
	require.NoError(t, err)
	assert.Equal(t, "tok", login.AccessToken)

	_, err = run(t, "logout", "--session", path)
	require.NoError(t, err)
	_, err = os.Stat(path)
	assert.True(t, os.IsNotExist(err))
}

func TestTeamApply(t *testing.T) {
	be := &fakeBackend{}
	srv := be.serve(t)

	out, err := run(t, "team", "apply", "--backend", srv.URL, "--session", loggedIn(t), "-f", writeRoster(t, rosterYAML))
	require.NoError(t, err)

	assert.Equal(t, []string{"PUT /user/2", "PUT /scheme/2", "DELETE /user/3"}, be.writes())
	assert.Contains(t, out, "3 succeeded, 0 failed, 0 skipped")
}

func TestTeamApply_DryRun(t *testing.T) {
	be := &fakeBackend{}
	srv := be.serve(t)

	out, err := run(t, "team", "apply", "--dry-run", "--backend", srv.URL, "--session", loggedIn(t), "-f", writeRoster(t, rosterYAML))
	require.NoError(t, err)

	assert.Empty(t, be.writes())
	assert.Contains(t, out, "would update_details(2)")
	assert.Contains(t, out, "would delete(3)")
}

func TestTeamApply_AbortOnError(t *testing.T) {
	be := &fakeBackend{failPut: "/user/2"}
	srv := be.serve(t)

	out, err := run(t, "team", "apply", "--abort-on-error", "--backend", srv.URL, "--session", loggedIn(t), "-f", writeRoster(t, rosterYAML))
	require.Error(t, err)

	assert.Equal(t, []string{"PUT /user/2"}, be.writes())
	assert.Contains(t, out, "0 succeeded, 1 failed, 2 skipped")
}

func TestTeamApply_UnknownMember(t *testing.T) {
	be := &fakeBackend{}
	srv := be.serve(t)

	_, err := run(t, "team", "apply", "--backend", srv.URL, "--session", loggedIn(t), "-f", writeRoster(t, "members:\n  - uuid: \"42\"\n    name: Ghost\n"))
	require.Error(t, err)
	assert.Empty(t, be.writes())
}

func TestTeamApply_DeptIsReadOnly(t *testing.T) {
	be := &fakeBackend{}
	srv := be.serve(t)

	_, err := run(t, "team", "apply", "--backend", srv.URL, "--session", loggedIn(t), "-f", writeRoster(t, "members:\n  - uuid: \"2\"\n    dept: Finance\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "dept")
	assert.Empty(t, be.writes())
}

func TestTeamList(t *testing.T) {
	be := &fakeBackend{}
	srv := be.serve(t)

	out, err := run(t, "team", "list", "--scheme", "Medisave", "--backend", srv.URL, "--session", loggedIn(t))
	require.NoError(t, err)
	assert.Contains(t, out, "bob@example.com")
	assert.NotContains(t, out, "ann@example.com")
}

func TestTeamList_NotLoggedIn(t *testing.T) {
	be := &fakeBackend{}
	srv := be.serve(t)

	_, err := run(t, "team", "list", "--backend", srv.URL, "--session", filepath.Join(t.TempDir(), "missing.json"))
	require.Error(t, err)
	assert.Empty(t, be.calls)
}
