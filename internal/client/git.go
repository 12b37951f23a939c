package client

import (
	"context"
	"fmt"
	nethttp "net/http"

	"github.com/fivetwenty-io/ado-client/internal/constants"
	"github.com/fivetwenty-io/ado-client/internal/http"
	"github.com/fivetwenty-io/ado-client/pkg/ado"
)

// GitClient implements ado.GitClient against the context repository.
type GitClient struct {
	baseClient
}

// NewGitClient creates a new git client.
func NewGitClient(adoContext *ado.Context, httpClient *http.Client, logger ado.Logger) *GitClient {
	return &GitClient{baseClient: newBaseClient(adoContext, httpClient, logger, "git")}
}

// ListRepositories implements ado.GitClient.ListRepositories.
func (c *GitClient) ListRepositories(ctx context.Context) (ado.Payload, error) {
	payload, err := c.httpClient.GetValue(ctx, c.endpoint(ado.URLScope{}, apiVersion(constants.APIVersionGit), "git", "repositories"))
	if err != nil {
		return ado.Payload{}, fmt.Errorf("listing repositories: %w", err)
	}

	return payload, nil
}

// GetRefs implements ado.GitClient.GetRefs. filter is matched against the
// ref name without its "refs/" prefix, e.g. "heads/feature".
func (c *GitClient) GetRefs(ctx context.Context, filter *string) (ado.Payload, error) {
	query := apiVersion(constants.APIVersionGit)
	if filter != nil {
		query.Set("filter", *filter)
	}

	payload, err := c.httpClient.GetValue(ctx, c.endpoint(ado.URLScope{}, query, c.repositorySegments("refs")...))
	if err != nil {
		return ado.Payload{}, fmt.Errorf("getting refs: %w", err)
	}

	return payload, nil
}

// GetItem implements ado.GitClient.GetItem. A nil branch reads the default branch.
func (c *GitClient) GetItem(ctx context.Context, path string, branch *string) (ado.Payload, error) {
	query := apiVersion(constants.APIVersionGit)
	query.Set("path", path)
	query.Set("includeContent", "true")

	if branch != nil {
		query.Set("versionDescriptor.versionType", "branch")
		query.Set("versionDescriptor.version", *branch)
	}

	payload, err := c.httpClient.GetValue(ctx, c.endpoint(ado.URLScope{}, query, c.repositorySegments("items")...))
	if err != nil {
		return ado.Payload{}, fmt.Errorf("getting item %s: %w", path, err)
	}

	return payload, nil
}

// SetStatus implements ado.GitClient.SetStatus. The status is posted under the
// context's status name.
func (c *GitClient) SetStatus(ctx context.Context, commitID string, status *ado.Status) (ado.Payload, error) {
	if status == nil {
		return ado.Payload{}, ErrStatusRequired
	}

	target := c.endpoint(ado.URLScope{}, apiVersion(constants.APIVersionGit),
		c.repositorySegments("commits", escapeSegment(commitID), "statuses")...)

	c.logger.Debug("Setting commit status", map[string]interface{}{
		"commit": commitID,
		"state":  string(status.State),
	})

	payload, err := c.send(ctx, &http.Request{
		Method: nethttp.MethodPost,
		URL:    target,
		Body:   statusBody(status, c.context.StatusContext()),
	})
	if err != nil {
		return ado.Payload{}, fmt.Errorf("setting commit status: %w", err)
	}

	return payload, nil
}

// DeleteBranch implements ado.GitClient.DeleteBranch. objectID must be the
// current tip of the branch.
func (c *GitClient) DeleteBranch(ctx context.Context, branchName, objectID string) (ado.Payload, error) {
	body := []map[string]interface{}{
		{
			"name":        ado.CanonicalizeBranchName(branchName),
			"oldObjectId": objectID,
			"newObjectId": constants.EmptyObjectID,
		},
	}

	target := c.endpoint(ado.URLScope{}, apiVersion(constants.APIVersionGit), c.repositorySegments("refs")...)

	c.logger.Info("Deleting branch", map[string]interface{}{"branch": branchName})

	payload, err := c.send(ctx, &http.Request{Method: nethttp.MethodPost, URL: target, Body: body})
	if err != nil {
		return ado.Payload{}, fmt.Errorf("deleting branch %s: %w", branchName, err)
	}

	return payload, nil
}
