package client

import (
	"context"
	"fmt"

	"github.com/fivetwenty-io/ado-client/internal/constants"
	"github.com/fivetwenty-io/ado-client/internal/http"
	"github.com/fivetwenty-io/ado-client/pkg/ado"
)

// Security namespaces live at collection level.
var securityScope = ado.URLScope{SkipProject: true}

// SecurityClient implements ado.SecurityClient.
type SecurityClient struct {
	baseClient
}

// NewSecurityClient creates a new security client.
func NewSecurityClient(adoContext *ado.Context, httpClient *http.Client, logger ado.Logger) *SecurityClient {
	return &SecurityClient{baseClient: newBaseClient(adoContext, httpClient, logger, "security")}
}

// ListNamespaces implements ado.SecurityClient.ListNamespaces.
func (c *SecurityClient) ListNamespaces(ctx context.Context) (ado.Payload, error) {
	payload, err := c.httpClient.GetValue(ctx, c.endpoint(securityScope, apiVersion(constants.APIVersionSecurity), "securitynamespaces"))
	if err != nil {
		return ado.Payload{}, fmt.Errorf("listing security namespaces: %w", err)
	}

	return payload, nil
}

// QueryAccessControlLists implements ado.SecurityClient.QueryAccessControlLists.
func (c *SecurityClient) QueryAccessControlLists(ctx context.Context, namespaceID string, token *string) (ado.Payload, error) {
	query := apiVersion(constants.APIVersionSecurity)
	if token != nil {
		query.Set("token", *token)
	}

	payload, err := c.httpClient.GetValue(ctx, c.endpoint(securityScope, query, "accesscontrollists", escapeSegment(namespaceID)))
	if err != nil {
		return ado.Payload{}, fmt.Errorf("querying access control lists: %w", err)
	}

	return payload, nil
}
