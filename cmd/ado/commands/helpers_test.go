package commands_test

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"sync"
	"testing"

	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/require"

	"github.com/fivetwenty-io/ado-client/cmd/ado/commands"
)

// findSubcommand finds a subcommand by name within a cobra command.
func findSubcommand(cmd *cobra.Command, name string) *cobra.Command {
	for _, c := range cmd.Commands() {
		if c.Name() == name {
			return c
		}
	}

	return nil
}

type recordedRequest struct {
	Method string
	Path   string
	Query  url.Values
	Body   []byte
}

type recorder struct {
	mu       sync.Mutex
	requests []recordedRequest
}

func (r *recorder) record(request *http.Request) {
	body, _ := io.ReadAll(request.Body)

	r.mu.Lock()
	defer r.mu.Unlock()

	r.requests = append(r.requests, recordedRequest{
		Method: request.Method,
		Path:   request.URL.Path,
		Query:  request.URL.Query(),
		Body:   body,
	})
}

func (r *recorder) all() []recordedRequest {
	r.mu.Lock()
	defer r.mu.Unlock()

	return append([]recordedRequest(nil), r.requests...)
}

// harness runs commands against a TLS test server.
type harness struct {
	env      *commands.Environment
	out      *bytes.Buffer
	rec      *recorder
	logs     *logtest.Hook
	baseArgs []string
}

func newHarness(t *testing.T, handler http.HandlerFunc) *harness {
	t.Helper()

	rec := &recorder{}
	server := httptest.NewTLSServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		rec.record(request)
		handler(writer, request)
	}))
	t.Cleanup(server.Close)

	configFile := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(configFile, []byte("status-context: ci/checks\n"), 0o600))

	logger, hook := logtest.NewNullLogger()
	env := commands.NewEnvironment(viper.New(), logger)
	env.SetHTTPClient(server.Client())

	out := &bytes.Buffer{}
	env.SetOutput(out)

	return &harness{
		env:  env,
		out:  out,
		rec:  rec,
		logs: hook,
		baseArgs: []string{
			"--config", configFile,
			"--tenant", server.URL,
			"--project", "proj",
			"--repository", "repo-1",
			"--username", "jdoe",
			"--token", "pat",
		},
	}
}

// run executes args on a fresh command tree.
func (h *harness) run(args ...string) error {
	rootCmd := commands.NewRootCommand(h.env, commands.BuildInfo{Version: "1.2.3", Commit: "abc123", Date: "2026-01-02"})
	rootCmd.SetArgs(append(append([]string{}, args...), h.baseArgs...))
	rootCmd.SetOut(io.Discard)
	rootCmd.SetErr(io.Discard)

	return rootCmd.ExecuteContext(context.Background())
}

func respondJSON(status int, body string) http.HandlerFunc {
	return func(writer http.ResponseWriter, _ *http.Request) {
		writer.Header().Set("Content-Type", "application/json")
		writer.WriteHeader(status)
		_, _ = writer.Write([]byte(body))
	}
}
