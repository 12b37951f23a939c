package client

import (
	"context"
	"fmt"

	"github.com/fivetwenty-io/ado-client/internal/constants"
	"github.com/fivetwenty-io/ado-client/internal/http"
	"github.com/fivetwenty-io/ado-client/pkg/ado"
)

// UserClient implements ado.UserClient.
type UserClient struct {
	baseClient
}

// NewUserClient creates a new user client.
func NewUserClient(adoContext *ado.Context, httpClient *http.Client, logger ado.Logger) *UserClient {
	return &UserClient{baseClient: newBaseClient(adoContext, httpClient, logger, "user")}
}

// GetProfile implements ado.UserClient.GetProfile.
func (c *UserClient) GetProfile(ctx context.Context) (ado.Payload, error) {
	target := c.endpoint(ado.OrganizationScope, apiVersion(constants.APIVersionProfile), "profile", "profiles", "me")

	payload, err := c.httpClient.GetValue(ctx, target)
	if err != nil {
		return ado.Payload{}, fmt.Errorf("getting profile: %w", err)
	}

	return payload, nil
}

// GetIdentity implements ado.UserClient.GetIdentity.
func (c *UserClient) GetIdentity(ctx context.Context, name string) (ado.Payload, error) {
	if name == "" {
		name = c.context.Username()
	}

	query := apiVersion(constants.APIVersionIdentities)
	query.Set("searchFilter", "General")
	query.Set("filterValue", name)
	query.Set("queryMembership", "None")

	payload, err := c.httpClient.GetValue(ctx, c.endpoint(ado.OrganizationScope, query, "identities"))
	if err != nil {
		return ado.Payload{}, fmt.Errorf("getting identity %s: %w", name, err)
	}

	return payload, nil
}
