package client

import (
	"context"
	"fmt"
	"strconv"

	"github.com/fivetwenty-io/ado-client/internal/constants"
	"github.com/fivetwenty-io/ado-client/internal/http"
	"github.com/fivetwenty-io/ado-client/pkg/ado"
)

// governanceScope addresses the internal component governance API.
var governanceScope = ado.URLScope{Internal: true}

// GovernanceClient implements ado.GovernanceClient.
type GovernanceClient struct {
	baseClient
}

// NewGovernanceClient creates a new governance client.
func NewGovernanceClient(adoContext *ado.Context, httpClient *http.Client, logger ado.Logger) *GovernanceClient {
	return &GovernanceClient{baseClient: newBaseClient(adoContext, httpClient, logger, "governance")}
}

// GetGovernedRepositories implements ado.GovernanceClient.GetGovernedRepositories.
func (c *GovernanceClient) GetGovernedRepositories(ctx context.Context) (ado.Payload, error) {
	target := c.endpoint(governanceScope, apiVersion(constants.APIVersionGovernance),
		"ComponentGovernance", "GovernedRepositories")

	payload, err := c.httpClient.GetValue(ctx, target)
	if err != nil {
		return ado.Payload{}, fmt.Errorf("getting governed repositories: %w", err)
	}

	return payload, nil
}

// GetAlerts implements ado.GovernanceClient.GetAlerts.
func (c *GovernanceClient) GetAlerts(ctx context.Context, governedRepositoryID int, opts *ado.AlertOptions) (ado.Payload, error) {
	query := apiVersion(constants.APIVersionGovernance)

	if opts != nil {
		if opts.BranchName != nil {
			query.Set("branchName", ado.CanonicalizeBranchName(*opts.BranchName))
		}

		if opts.IncludeHistory != nil {
			query.Set("includeHistory", strconv.FormatBool(*opts.IncludeHistory))
		}
	}

	target := c.endpoint(governanceScope, query,
		"ComponentGovernance", "GovernedRepositories", escapeID(governedRepositoryID), "Alerts")

	payload, err := c.httpClient.GetValue(ctx, target)
	if err != nil {
		return ado.Payload{}, fmt.Errorf("getting alerts: %w", err)
	}

	return payload, nil
}

// RemovePolicy implements ado.GovernanceClient.RemovePolicy. The service
// answers with an empty body, so only the status is checked.
func (c *GovernanceClient) RemovePolicy(ctx context.Context, governedRepositoryID int, policyID string) error {
	target := c.endpoint(governanceScope, apiVersion(constants.APIVersionGovernance),
		"ComponentGovernance", "GovernedRepositories", escapeID(governedRepositoryID),
		"PolicyReferences", escapeSegment(policyID))

	c.logger.Info("Removing governance policy", map[string]interface{}{
		"governed_repository_id": governedRepositoryID,
		"policy_id":              policyID,
	})

	resp, err := c.httpClient.Delete(ctx, target)
	if err != nil {
		return fmt.Errorf("removing policy %s: %w", policyID, err)
	}

	err = c.httpClient.ValidateResponse(resp)
	if err != nil {
		return fmt.Errorf("removing policy %s: %w", policyID, err)
	}

	return nil
}
