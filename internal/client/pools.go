package client

import (
	"context"
	"fmt"
	"strconv"

	"github.com/fivetwenty-io/ado-client/internal/constants"
	"github.com/fivetwenty-io/ado-client/internal/http"
	"github.com/fivetwenty-io/ado-client/pkg/ado"
)

// PoolsClient implements ado.PoolsClient. Pools are organization level, so
// every endpoint uses ado.OrganizationScope.
type PoolsClient struct {
	baseClient
}

// NewPoolsClient creates a new pools client.
func NewPoolsClient(adoContext *ado.Context, httpClient *http.Client, logger ado.Logger) *PoolsClient {
	return &PoolsClient{baseClient: newBaseClient(adoContext, httpClient, logger, "pools")}
}

func (c *PoolsClient) agentURL(poolID, agentID int, extra ...string) string {
	segments := append([]string{"distributedtask", "pools", escapeID(poolID), "agents", escapeID(agentID)}, extra...)

	return c.endpoint(ado.OrganizationScope, apiVersion(constants.APIVersionPools), segments...)
}

// GetPools implements ado.PoolsClient.GetPools.
func (c *PoolsClient) GetPools(ctx context.Context, poolName *string, actionFilter *ado.TaskAgentPoolActionFilter) (ado.Payload, error) {
	query := apiVersion(constants.APIVersionPools)

	if poolName != nil && *poolName != "" {
		query.Set("poolName", *poolName)
	}

	if actionFilter != nil {
		query.Set("actionFilter", string(*actionFilter))
	}

	payload, err := c.httpClient.GetValue(ctx, c.endpoint(ado.OrganizationScope, query, "distributedtask", "pools"))
	if err != nil {
		return ado.Payload{}, fmt.Errorf("getting pools: %w", err)
	}

	return payload, nil
}

// GetAgents implements ado.PoolsClient.GetAgents. Nil opts include everything.
func (c *PoolsClient) GetAgents(ctx context.Context, poolID int, opts *ado.AgentListOptions) (ado.Payload, error) {
	if opts == nil {
		opts = ado.DefaultAgentListOptions()
	}

	query := apiVersion(constants.APIVersionPools)
	query.Set("includeCapabilities", strconv.FormatBool(opts.IncludeCapabilities))
	query.Set("includeAssignedRequest", strconv.FormatBool(opts.IncludeAssignedRequest))
	query.Set("includeLastCompletedRequest", strconv.FormatBool(opts.IncludeLastCompletedRequest))

	if opts.AgentName != nil && *opts.AgentName != "" {
		query.Set("agentName", *opts.AgentName)
	}

	target := c.endpoint(ado.OrganizationScope, query, "distributedtask", "pools", escapeID(poolID), "agents")

	payload, err := c.httpClient.GetValue(ctx, target)
	if err != nil {
		return ado.Payload{}, fmt.Errorf("getting agents of pool %d: %w", poolID, err)
	}

	return payload, nil
}

// GetAgent implements ado.PoolsClient.GetAgent.
func (c *PoolsClient) GetAgent(ctx context.Context, poolID, agentID int) (ado.Payload, error) {
	payload, err := c.httpClient.GetValue(ctx, c.agentURL(poolID, agentID))
	if err != nil {
		return ado.Payload{}, fmt.Errorf("getting agent %d: %w", agentID, err)
	}

	return payload, nil
}

// UpdateAgent implements ado.PoolsClient.UpdateAgent.
func (c *PoolsClient) UpdateAgent(ctx context.Context, poolID, agentID int, agentData map[string]interface{}) (ado.Payload, error) {
	resp, err := c.httpClient.Patch(ctx, c.agentURL(poolID, agentID), agentData)
	if err != nil {
		return ado.Payload{}, fmt.Errorf("updating agent %d: %w", agentID, err)
	}

	payload, err := c.httpClient.Decode(resp)
	if err != nil {
		return ado.Payload{}, fmt.Errorf("updating agent %d: %w", agentID, err)
	}

	return payload, nil
}

// SetAgentState implements ado.PoolsClient.SetAgentState. It reads the agent,
// flips "enabled", and writes the whole record back.
func (c *PoolsClient) SetAgentState(ctx context.Context, poolID, agentID int, enabled bool) (ado.Payload, error) {
	current, err := c.GetAgent(ctx, poolID, agentID)
	if err != nil {
		return ado.Payload{}, err
	}

	var agent map[string]interface{}

	err = current.Decode(&agent)
	if err != nil {
		return ado.Payload{}, fmt.Errorf("reading agent %d: %w: %w", agentID, ErrAgentNotObject, err)
	}

	if agent == nil {
		return ado.Payload{}, fmt.Errorf("reading agent %d: %w", agentID, ErrAgentNotObject)
	}

	agent["enabled"] = enabled

	c.logger.Info("Setting agent state", map[string]interface{}{
		"pool_id":  poolID,
		"agent_id": agentID,
		"enabled":  enabled,
	})

	return c.UpdateAgent(ctx, poolID, agentID, agent)
}

// UpdateAgentCapabilities implements ado.PoolsClient.UpdateAgentCapabilities.
// The given map replaces the agent's user capabilities.
func (c *PoolsClient) UpdateAgentCapabilities(ctx context.Context, poolID, agentID int, capabilities map[string]string) (ado.Payload, error) {
	resp, err := c.httpClient.Put(ctx, c.agentURL(poolID, agentID, "usercapabilities"), capabilities)
	if err != nil {
		return ado.Payload{}, fmt.Errorf("updating capabilities of agent %d: %w", agentID, err)
	}

	payload, err := c.httpClient.Decode(resp)
	if err != nil {
		return ado.Payload{}, fmt.Errorf("updating capabilities of agent %d: %w", agentID, err)
	}

	return payload, nil
}
