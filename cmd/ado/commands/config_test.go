package commands_test

import (
	"encoding/json"
	"net/http"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/fivetwenty-io/ado-client/internal/constants"
)

func TestConfigCommand_SetUnset(t *testing.T) {
	t.Parallel()

	h := newHarness(t, respondJSON(http.StatusOK, `{}`))
	configFile := filepath.Join(t.TempDir(), "nested", "config.yml")
	h.baseArgs[1] = configFile

	require.NoError(t, h.run("config", "set", "nats-url", "nats://127.0.0.1:4222"))
	require.NoError(t, h.run("config", "set", "status-context", "ci/build"))
	require.NoError(t, h.run("config", "unset", "nats-url"))
	assert.Contains(t, h.out.String(), "Updated status-context")

	data, err := os.ReadFile(configFile)
	require.NoError(t, err)

	var stored map[string]interface{}
	require.NoError(t, yaml.Unmarshal(data, &stored))
	assert.Equal(t, map[string]interface{}{"status-context": "ci/build"}, stored)

	info, err := os.Stat(configFile)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(constants.ConfigFilePerm), info.Mode().Perm())
	assert.Empty(t, h.rec.all())
}

func TestConfigCommand_UnknownKey(t *testing.T) {
	t.Parallel()

	h := newHarness(t, respondJSON(http.StatusOK, `{}`))

	require.ErrorIs(t, h.run("config", "set", "password", "x"), constants.ErrUnknownKey)
}

func TestConfigCommand_Show(t *testing.T) {
	t.Parallel()

	h := newHarness(t, respondJSON(http.StatusOK, `{}`))

	require.NoError(t, h.run("config", "show", "-o", "json"))

	var values map[string]string
	require.NoError(t, json.Unmarshal(h.out.Bytes(), &values))
	assert.Equal(t, "proj", values["project"])
	assert.Equal(t, "ci/checks", values["status-context"])
	assert.Equal(t, "********", values["token"])
}
