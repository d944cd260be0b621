package diagram_test

import (
	"encoding/json"
	"io/ioutil"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/utec/diagram-cli/internal/cloud/diagram"
	"github.com/utec/diagram-cli/internal/session"

	"github.com/spf13/afero"
)

const testDownloadDir = "/downloads"

type recordedRequest struct {
	Method string
	Path   string
	Header http.Header
	Body   map[string]interface{}
}

type testServer struct {
	*httptest.Server
	requests int32

	mu   sync.Mutex
	last recordedRequest
}

func (ts *testServer) Last() recordedRequest {
	ts.mu.Lock()
	defer ts.mu.Unlock()
	return ts.last
}

func (ts *testServer) RequestCount() int {
	return int(atomic.LoadInt32(&ts.requests))
}

func newTestServer(t *testing.T, handler http.HandlerFunc) *testServer {
	t.Helper()

	ts := &testServer{}
	ts.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&ts.requests, 1)

		body, _ := ioutil.ReadAll(r.Body)
		var payload map[string]interface{}
		_ = json.Unmarshal(body, &payload)

		ts.mu.Lock()
		ts.last = recordedRequest{r.Method, r.URL.Path, r.Header.Clone(), payload}
		ts.mu.Unlock()
		handler(w, r)
	}))
	t.Cleanup(ts.Close)
	return ts
}

func respondJSON(status int, body string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}
}

type testClient struct {
	diagram.Client
	store  *session.Store
	fs     afero.Fs
	server *testServer
}

func newTestClient(t *testing.T, handler http.HandlerFunc) testClient {
	t.Helper()

	server := newTestServer(t, handler)
	store := session.NewStore(session.NewMemoryStorage())
	fs := afero.NewMemMapFs()

	client := diagram.NewClient(diagram.Config{
		BaseURL:     server.URL,
		Session:     store,
		HTTPClient:  server.Client(),
		Fs:          fs,
		DownloadDir: testDownloadDir,
	})

	return testClient{client, store, fs, server}
}

func newAuthenticatedTestClient(t *testing.T, handler http.HandlerFunc) testClient {
	t.Helper()

	tc := newTestClient(t, handler)
	if err := tc.store.SaveCredential("T1", session.User{ID: "1", Email: "a@b.com", Name: "A"}); err != nil {
		t.Fatal(err)
	}
	return tc
}
