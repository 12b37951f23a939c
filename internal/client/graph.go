package client

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/fivetwenty-io/ado-client/internal/constants"
	"github.com/fivetwenty-io/ado-client/internal/http"
	"github.com/fivetwenty-io/ado-client/pkg/ado"
)

// GraphClient implements ado.GraphClient.
type GraphClient struct {
	baseClient
}

// NewGraphClient creates a new graph client.
func NewGraphClient(adoContext *ado.Context, httpClient *http.Client, logger ado.Logger) *GraphClient {
	return &GraphClient{baseClient: newBaseClient(adoContext, httpClient, logger, "graph")}
}

// ListUsers implements ado.GraphClient.ListUsers. Pages are followed through
// the continuation token header until the service stops sending one.
func (c *GraphClient) ListUsers(ctx context.Context) ([]json.RawMessage, error) {
	var users []json.RawMessage

	continuationToken := ""

	for {
		query := apiVersion(constants.APIVersionGraph)
		if continuationToken != "" {
			query.Set("continuationToken", continuationToken)
		}

		resp, err := c.httpClient.Get(ctx, c.endpoint(ado.OrganizationScope, query, "graph", "users"))
		if err != nil {
			return nil, fmt.Errorf("listing graph users: %w", err)
		}

		payload, err := c.httpClient.Decode(resp)
		if err != nil {
			return nil, fmt.Errorf("listing graph users: %w", err)
		}

		page, err := payload.Items()
		if err != nil {
			return nil, fmt.Errorf("listing graph users: %w", err)
		}

		users = append(users, page...)

		continuationToken = resp.Header.Get(constants.ContinuationTokenHeader)
		if continuationToken == "" {
			break
		}
	}

	return users, nil
}

// GetDescriptor implements ado.GraphClient.GetDescriptor.
func (c *GraphClient) GetDescriptor(ctx context.Context, storageKey string) (ado.Payload, error) {
	target := c.endpoint(ado.OrganizationScope, apiVersion(constants.APIVersionGraph), "graph", "descriptors", escapeSegment(storageKey))

	payload, err := c.httpClient.GetValue(ctx, target)
	if err != nil {
		return ado.Payload{}, fmt.Errorf("getting descriptor: %w", err)
	}

	return payload, nil
}
