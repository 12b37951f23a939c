package commands_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fivetwenty-io/ado-client/cmd/ado/commands"
	"github.com/fivetwenty-io/ado-client/internal/constants"
)

func TestPoolsListCommand(t *testing.T) {
	t.Parallel()

	pools := `{"count":2,"value":[{"id":1,"name":"Default","size":3,"isHosted":false,"poolType":"automation"},` +
		`{"id":9,"name":"Hosted Ubuntu","size":0,"isHosted":true}]}`

	t.Run("table with filters", func(t *testing.T) {
		t.Parallel()

		h := newHarness(t, respondJSON(http.StatusOK, pools))

		require.NoError(t, h.run("pools", "list", "--name", "Default", "--action-filter", "manage"))

		output := h.out.String()
		assert.Contains(t, output, "Hosted Ubuntu")
		assert.Contains(t, output, commands.Yes)
		assert.Contains(t, output, "automation")

		requests := h.rec.all()
		require.Len(t, requests, 1)
		assert.Equal(t, "/_apis/distributedtask/pools", requests[0].Path)
		assert.Equal(t, "Default", requests[0].Query.Get("poolName"))
		assert.Equal(t, "manage", requests[0].Query.Get("actionFilter"))
	})

	t.Run("no filters", func(t *testing.T) {
		t.Parallel()

		h := newHarness(t, respondJSON(http.StatusOK, pools))

		require.NoError(t, h.run("pools", "list", "-o", "yaml"))
		assert.Contains(t, h.out.String(), "name: Default")

		requests := h.rec.all()
		require.Len(t, requests, 1)
		assert.False(t, requests[0].Query.Has("poolName"))
		assert.False(t, requests[0].Query.Has("actionFilter"))
	})

	t.Run("invalid action filter", func(t *testing.T) {
		t.Parallel()

		h := newHarness(t, respondJSON(http.StatusOK, pools))

		require.ErrorIs(t, h.run("pools", "list", "--action-filter", "admin"), commands.ErrInvalidActionFilter)
		assert.Empty(t, h.rec.all())
	})
}

func TestPoolsAgentsCommand(t *testing.T) {
	t.Parallel()

	agents := `{"count":1,"value":[{"id":4,"name":"agent-1","version":"2.150.0","status":"online","enabled":true}]}`

	t.Run("json", func(t *testing.T) {
		t.Parallel()

		h := newHarness(t, respondJSON(http.StatusOK, agents))

		require.NoError(t, h.run("pools", "agents", "--pool", "1", "--name", "agent-1", "-o", "json"))

		var result []map[string]interface{}
		require.NoError(t, json.Unmarshal(h.out.Bytes(), &result))
		require.Len(t, result, 1)
		assert.Equal(t, "agent-1", result[0]["name"])

		requests := h.rec.all()
		require.Len(t, requests, 1)
		assert.Equal(t, "/_apis/distributedtask/pools/1/agents", requests[0].Path)
		assert.Equal(t, "agent-1", requests[0].Query.Get("agentName"))
		assert.Equal(t, "true", requests[0].Query.Get("includeCapabilities"))
	})

	t.Run("table", func(t *testing.T) {
		t.Parallel()

		h := newHarness(t, respondJSON(http.StatusOK, agents))

		require.NoError(t, h.run("pools", "agents", "--pool", "1"))
		assert.Contains(t, h.out.String(), "2.150.0")
		assert.Contains(t, h.out.String(), "online")
	})

	t.Run("missing pool", func(t *testing.T) {
		t.Parallel()

		h := newHarness(t, respondJSON(http.StatusOK, agents))

		require.ErrorIs(t, h.run("pools", "agents"), constants.ErrInvalidPoolID)
	})
}
