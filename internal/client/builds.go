package client

import (
	"context"
	"encoding/json"
	"fmt"
	nethttp "net/http"
	"strconv"
	"strings"

	"github.com/fivetwenty-io/ado-client/internal/constants"
	"github.com/fivetwenty-io/ado-client/internal/http"
	"github.com/fivetwenty-io/ado-client/pkg/ado"
)

// BuildsClient implements ado.BuildsClient.
type BuildsClient struct {
	baseClient
}

// NewBuildsClient creates a new builds client.
func NewBuildsClient(adoContext *ado.Context, httpClient *http.Client, logger ado.Logger) *BuildsClient {
	return &BuildsClient{baseClient: newBaseClient(adoContext, httpClient, logger, "builds")}
}

// Get implements ado.BuildsClient.Get.
func (c *BuildsClient) Get(ctx context.Context, buildID int) (ado.Payload, error) {
	target := c.endpoint(ado.URLScope{}, apiVersion(constants.APIVersionBuilds), "build", "builds", escapeID(buildID))

	payload, err := c.httpClient.GetValue(ctx, target)
	if err != nil {
		return ado.Payload{}, fmt.Errorf("getting build: %w", err)
	}

	return payload, nil
}

// List implements ado.BuildsClient.List.
func (c *BuildsClient) List(ctx context.Context, opts *ado.BuildListOptions) (ado.Payload, error) {
	query := apiVersion(constants.APIVersionBuilds)

	if opts != nil {
		if len(opts.DefinitionIDs) > 0 {
			ids := make([]string, 0, len(opts.DefinitionIDs))
			for _, id := range opts.DefinitionIDs {
				ids = append(ids, strconv.Itoa(id))
			}

			query.Set("definitions", strings.Join(ids, ","))
		}

		if opts.BranchName != nil {
			query.Set("branchName", ado.CanonicalizeBranchName(*opts.BranchName))
		}

		if opts.StatusFilter != nil {
			query.Set("statusFilter", *opts.StatusFilter)
		}

		if opts.Top != nil {
			query.Set("$top", strconv.Itoa(*opts.Top))
		}
	}

	payload, err := c.httpClient.GetValue(ctx, c.endpoint(ado.URLScope{}, query, "build", "builds"))
	if err != nil {
		return ado.Payload{}, fmt.Errorf("listing builds: %w", err)
	}

	return payload, nil
}

// Queue implements ado.BuildsClient.Queue. Variables are sent as the JSON
// encoded "parameters" string the service expects; nil sends none.
func (c *BuildsClient) Queue(ctx context.Context, definitionID int, sourceBranch string, variables map[string]string) (ado.Payload, error) {
	body := map[string]interface{}{
		"definition":   map[string]interface{}{"id": definitionID},
		"sourceBranch": ado.CanonicalizeBranchName(sourceBranch),
	}

	if variables != nil {
		parameters, err := json.Marshal(variables)
		if err != nil {
			return ado.Payload{}, fmt.Errorf("encoding build parameters: %w", err)
		}

		body["parameters"] = string(parameters)
	}

	c.logger.Info("Queueing build", map[string]interface{}{
		"definition_id": definitionID,
		"source_branch": body["sourceBranch"],
	})

	target := c.endpoint(ado.URLScope{}, apiVersion(constants.APIVersionBuilds), "build", "builds")

	payload, err := c.send(ctx, &http.Request{Method: nethttp.MethodPost, URL: target, Body: body})
	if err != nil {
		return ado.Payload{}, fmt.Errorf("queueing build: %w", err)
	}

	return payload, nil
}

// GetTags implements ado.BuildsClient.GetTags.
func (c *BuildsClient) GetTags(ctx context.Context, buildID int) (ado.Payload, error) {
	target := c.endpoint(ado.URLScope{}, apiVersion(constants.APIVersionBuilds), "build", "builds", escapeID(buildID), "tags")

	payload, err := c.httpClient.GetValue(ctx, target)
	if err != nil {
		return ado.Payload{}, fmt.Errorf("getting build tags: %w", err)
	}

	return payload, nil
}

// AddTag implements ado.BuildsClient.AddTag.
func (c *BuildsClient) AddTag(ctx context.Context, buildID int, tag string) (ado.Payload, error) {
	target := c.endpoint(ado.URLScope{}, apiVersion(constants.APIVersionBuilds),
		"build", "builds", escapeID(buildID), "tags", escapeSegment(tag))

	payload, err := c.send(ctx, &http.Request{Method: nethttp.MethodPut, URL: target})
	if err != nil {
		return ado.Payload{}, fmt.Errorf("adding build tag: %w", err)
	}

	return payload, nil
}
