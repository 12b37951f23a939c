package client

import (
	"context"
	"fmt"
	nethttp "net/http"

	"github.com/fivetwenty-io/ado-client/internal/constants"
	"github.com/fivetwenty-io/ado-client/internal/http"
	"github.com/fivetwenty-io/ado-client/pkg/ado"
)

// PullRequestClient implements ado.PullRequestClient for a single pull request.
type PullRequestClient struct {
	baseClient

	pullRequestID int
}

// NewPullRequestClient creates a client bound to pullRequestID.
func NewPullRequestClient(adoContext *ado.Context, httpClient *http.Client, logger ado.Logger, pullRequestID int) *PullRequestClient {
	client := &PullRequestClient{
		baseClient:    newBaseClient(adoContext, httpClient, logger, "pr"),
		pullRequestID: pullRequestID,
	}

	client.logger = ado.ChildLogger(client.logger, escapeID(pullRequestID))

	return client
}

// ID returns the bound pull request ID.
func (c *PullRequestClient) ID() int {
	return c.pullRequestID
}

func (c *PullRequestClient) url(version string, extra ...string) string {
	segments := c.repositorySegments(append([]string{"pullRequests", escapeID(c.pullRequestID)}, extra...)...)

	return c.endpoint(ado.URLScope{}, apiVersion(version), segments...)
}

// Details implements ado.PullRequestClient.Details.
func (c *PullRequestClient) Details(ctx context.Context) (ado.Payload, error) {
	payload, err := c.httpClient.GetValue(ctx, c.url(constants.APIVersionPullRequestDetails))
	if err != nil {
		return ado.Payload{}, fmt.Errorf("getting pull request %d: %w", c.pullRequestID, err)
	}

	return payload, nil
}

// Threads implements ado.PullRequestClient.Threads.
func (c *PullRequestClient) Threads(ctx context.Context) (ado.Payload, error) {
	payload, err := c.httpClient.GetValue(ctx, c.url(constants.APIVersionGit, "threads"))
	if err != nil {
		return ado.Payload{}, fmt.Errorf("getting pull request threads: %w", err)
	}

	return payload, nil
}

// CreateThread implements ado.PullRequestClient.CreateThread. A nil status
// leaves the thread status to the service default.
func (c *PullRequestClient) CreateThread(ctx context.Context, text string, status *ado.CommentThreadStatus) (ado.Payload, error) {
	body := map[string]interface{}{
		"comments": []map[string]interface{}{
			{
				"parentCommentId": 0,
				"content":         text,
				"commentType":     1,
			},
		},
	}

	if status != nil {
		body["status"] = string(*status)
	}

	payload, err := c.send(ctx, &http.Request{
		Method: nethttp.MethodPost,
		URL:    c.url(constants.APIVersionGit, "threads"),
		Body:   body,
	})
	if err != nil {
		return ado.Payload{}, fmt.Errorf("creating pull request thread: %w", err)
	}

	return payload, nil
}

// SetStatus implements ado.PullRequestClient.SetStatus.
func (c *PullRequestClient) SetStatus(ctx context.Context, status *ado.Status) (ado.Payload, error) {
	if status == nil {
		return ado.Payload{}, ErrStatusRequired
	}

	payload, err := c.send(ctx, &http.Request{
		Method: nethttp.MethodPost,
		URL:    c.url(constants.APIVersionPullRequestStatus, "statuses"),
		Body:   statusBody(status, c.context.StatusContext()),
	})
	if err != nil {
		return ado.Payload{}, fmt.Errorf("setting pull request status: %w", err)
	}

	return payload, nil
}

// AddReviewer implements ado.PullRequestClient.AddReviewer. A nil vote adds
// the reviewer without voting.
func (c *PullRequestClient) AddReviewer(ctx context.Context, reviewerID string, vote *int) (ado.Payload, error) {
	body := map[string]interface{}{}
	if vote != nil {
		body["vote"] = *vote
	}

	payload, err := c.send(ctx, &http.Request{
		Method: nethttp.MethodPut,
		URL:    c.url(constants.APIVersionGit, "reviewers", escapeSegment(reviewerID)),
		Body:   body,
	})
	if err != nil {
		return ado.Payload{}, fmt.Errorf("adding reviewer %s: %w", reviewerID, err)
	}

	return payload, nil
}

// Abandon implements ado.PullRequestClient.Abandon.
func (c *PullRequestClient) Abandon(ctx context.Context) (ado.Payload, error) {
	c.logger.Info("Abandoning pull request", map[string]interface{}{"pull_request_id": c.pullRequestID})

	payload, err := c.send(ctx, &http.Request{
		Method: nethttp.MethodPatch,
		URL:    c.url(constants.APIVersionPullRequestUpdate),
		Body:   map[string]interface{}{"status": "abandoned"},
	})
	if err != nil {
		return ado.Payload{}, fmt.Errorf("abandoning pull request %d: %w", c.pullRequestID, err)
	}

	return payload, nil
}

// AddProperty implements ado.PullRequestClient.AddProperty.
func (c *PullRequestClient) AddProperty(ctx context.Context, name string, value interface{}) (ado.Payload, error) {
	operations := []ado.PatchOperation{
		{Op: "add", Path: "/" + name, Value: value},
	}

	payload, err := c.send(ctx, &http.Request{
		Method:      nethttp.MethodPatch,
		URL:         c.url(constants.APIVersionPullRequestProperty, "properties"),
		Body:        operations,
		ContentType: constants.ContentTypeJSONPatch,
	})
	if err != nil {
		return ado.Payload{}, fmt.Errorf("adding pull request property %s: %w", name, err)
	}

	return payload, nil
}
