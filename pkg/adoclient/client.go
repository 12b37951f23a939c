package adoclient

import (
	"context"
	"fmt"

	"github.com/fivetwenty-io/ado-client/internal/client"
	"github.com/fivetwenty-io/ado-client/pkg/ado"
)

// New creates a new Azure DevOps API client. The config is not modified.
func New(config *ado.Config) (ado.Client, error) {
	if config == nil {
		return nil, ado.ErrConfigRequired
	}

	normalized := *config
	normalized.Tenant = client.NormalizeTenant(config.Tenant)

	adoClient, err := client.New(&normalized)
	if err != nil {
		return nil, fmt.Errorf("failed to create new client: %w", err)
	}

	return adoClient, nil
}

// NewVerified creates a client and checks that it can list repositories.
func NewVerified(ctx context.Context, config *ado.Config) (ado.Client, error) {
	adoClient, err := New(config)
	if err != nil {
		return nil, err
	}

	if !adoClient.VerifyAccess(ctx) {
		return nil, ado.ErrAccessDenied
	}

	return adoClient, nil
}

// NewWithToken creates a client authenticating with a personal access token.
func NewWithToken(tenant, projectID, repositoryID, token string) (ado.Client, error) {
	return New(&ado.Config{
		Tenant:       tenant,
		ProjectID:    projectID,
		RepositoryID: repositoryID,
		Credentials:  ado.Credentials{Secret: token},
	})
}
