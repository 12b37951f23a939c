package commands_test

import (
	"encoding/json"
	"net/http"
	"testing"

	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/dig"

	"github.com/fivetwenty-io/ado-client/cmd/ado/commands"
	"github.com/fivetwenty-io/ado-client/internal/constants"
	"github.com/fivetwenty-io/ado-client/pkg/ado"
)

func TestNewRootCommand(t *testing.T) {
	t.Parallel()

	logger, _ := logtest.NewNullLogger()
	rootCmd := commands.NewRootCommand(commands.NewEnvironment(viper.New(), logger), commands.BuildInfo{})

	assert.Equal(t, "ado", rootCmd.Use)

	for _, name := range []string{"version", "verify", "prs", "pools", "get", "config"} {
		assert.NotNil(t, findSubcommand(rootCmd, name), name)
	}

	for _, flag := range []string{"tenant", "project", "repository", "username", "token", "status-context", "nats-url", "output"} {
		assert.NotNil(t, rootCmd.PersistentFlags().Lookup(flag), flag)
	}
}

func TestRegisterProviders(t *testing.T) {
	t.Parallel()

	container := dig.New()
	require.NoError(t, container.Provide(func() commands.BuildInfo { return commands.BuildInfo{Version: "dev"} }))
	require.NoError(t, commands.RegisterProviders(container))

	var rootCmd *cobra.Command

	require.NoError(t, container.Invoke(func(cmd *cobra.Command) {
		rootCmd = cmd
	}))
	require.NotNil(t, rootCmd)

	prs := findSubcommand(rootCmd, "prs")
	require.NotNil(t, prs)
	assert.NotNil(t, findSubcommand(prs, "list"))
	assert.NotNil(t, findSubcommand(prs, "create"))
}

//nolint:funlen
func TestVersionCommand(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		output   string
		contains []string
		wantErr  error
	}{
		{name: "table", output: "table", contains: []string{"Version", "1.2.3", "abc123"}},
		{name: "json", output: "json", contains: []string{`"version": "1.2.3"`, `"built": "2026-01-02"`}},
		{name: "yaml", output: "yaml", contains: []string{"version: 1.2.3", "commit: abc123"}},
		{name: "unknown format", output: "xml", wantErr: constants.ErrInvalidOutput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			h := newHarness(t, respondJSON(http.StatusOK, `{}`))

			err := h.run("version", "--output", tt.output)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)

				return
			}

			require.NoError(t, err)

			for _, want := range tt.contains {
				assert.Contains(t, h.out.String(), want)
			}

			assert.Empty(t, h.rec.all(), "version must not call the API")
		})
	}
}

func TestVerifyCommand(t *testing.T) {
	t.Parallel()

	t.Run("access granted", func(t *testing.T) {
		t.Parallel()

		h := newHarness(t, respondJSON(http.StatusOK, `{"count":1,"value":[{"id":"r1"}]}`))

		require.NoError(t, h.run("verify", "-o", "json"))

		var result map[string]interface{}
		require.NoError(t, json.Unmarshal(h.out.Bytes(), &result))
		assert.Equal(t, true, result["verified"])
		assert.Equal(t, "proj", result["project"])

		requests := h.rec.all()
		require.Len(t, requests, 1)
		assert.Equal(t, "/DefaultCollection/proj/_apis/git/repositories", requests[0].Path)
		assert.Equal(t, "1.0", requests[0].Query.Get("api-version"))
	})

	t.Run("access denied", func(t *testing.T) {
		t.Parallel()

		h := newHarness(t, respondJSON(http.StatusUnauthorized, `<html>denied</html>`))

		require.ErrorIs(t, h.run("verify"), ado.ErrAccessDenied)
		assert.Empty(t, h.out.String())
	})
}
