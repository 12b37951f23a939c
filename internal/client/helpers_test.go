package client_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/fivetwenty-io/ado-client/internal/client"
	"github.com/fivetwenty-io/ado-client/pkg/ado"
)

// recordedRequest is what the test server saw.
type recordedRequest struct {
	Method      string
	Path        string
	Query       url.Values
	RawQuery    string
	ContentType string
	Body        []byte
}

// recorder captures every request served by a test server.
type recorder struct {
	mu       sync.Mutex
	requests []recordedRequest
}

func (r *recorder) record(request *http.Request) {
	body, _ := io.ReadAll(request.Body)

	r.mu.Lock()
	defer r.mu.Unlock()

	r.requests = append(r.requests, recordedRequest{
		Method:      request.Method,
		Path:        request.URL.Path,
		Query:       request.URL.Query(),
		RawQuery:    request.URL.RawQuery,
		ContentType: request.Header.Get("Content-Type"),
		Body:        body,
	})
}

func (r *recorder) all() []recordedRequest {
	r.mu.Lock()
	defer r.mu.Unlock()

	return append([]recordedRequest(nil), r.requests...)
}

func (r *recorder) last(t *testing.T) recordedRequest {
	t.Helper()

	requests := r.all()
	require.NotEmpty(t, requests)

	return requests[len(requests)-1]
}

// testConfig returns a valid configuration pointing at server.
func testConfig(server *httptest.Server) *ado.Config {
	return &ado.Config{
		Username:      "jdoe",
		Tenant:        server.URL,
		ProjectID:     "proj",
		RepositoryID:  "repo-1",
		Credentials:   ado.Credentials{Identity: "jdoe", Secret: "pat"},
		StatusContext: "ci/checks",
		Logger:        ado.NopLogger{},
		HTTPClient:    server.Client(),
	}
}

// newTestClient starts a TLS server answering with handler and returns a
// client bound to it together with the request recorder.
func newTestClient(t *testing.T, handler http.HandlerFunc) (*client.Client, *recorder) {
	t.Helper()

	rec := &recorder{}
	server := httptest.NewTLSServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		rec.record(request)
		handler(writer, request)
	}))
	t.Cleanup(server.Close)

	adoClient, err := client.New(testConfig(server))
	require.NoError(t, err)

	return adoClient, rec
}

// respondJSON writes status and body.
func respondJSON(status int, body string) http.HandlerFunc {
	return func(writer http.ResponseWriter, _ *http.Request) {
		writer.Header().Set("Content-Type", "application/json")
		writer.WriteHeader(status)
		_, _ = writer.Write([]byte(body))
	}
}

const notFoundBody = `{"$id":"1","message":"TF401019: not found","typeName":"NotFoundException",` +
	`"typeKey":"NotFoundException","errorCode":0,"eventId":3000}`
