package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/fivetwenty-io/ado-client/internal/auth"
	"github.com/fivetwenty-io/ado-client/internal/constants"
	"github.com/fivetwenty-io/ado-client/internal/http"
	"github.com/fivetwenty-io/ado-client/pkg/ado"
)

// Static errors for err113 compliance.
var (
	ErrStatusRequired = errors.New("status is required")
	ErrAgentNotObject = errors.New("agent is not a JSON object")
)

// Client implements the ado.Client interface.
type Client struct {
	context    *ado.Context
	httpClient *http.Client
	logger     ado.Logger

	// Resource clients
	builds     *BuildsClient
	git        *GitClient
	governance *GovernanceClient
	graph      *GraphClient
	pools      *PoolsClient
	security   *SecurityClient
	user       *UserClient
	workItems  *WorkItemsClient
}

// createHTTPClientOptions builds HTTP client options from config.
func createHTTPClientOptions(config *ado.Config, logger ado.Logger) []http.Option {
	httpOpts := []http.Option{
		http.WithLogger(ado.ChildLogger(logger, "http")),
		http.WithExtraHeaders(config.ExtraHeaders),
	}

	if config.Debug {
		httpOpts = append(httpOpts, http.WithDebug(true))
	}

	if config.UserAgent != "" {
		httpOpts = append(httpOpts, http.WithUserAgent(config.UserAgent))
	}

	if config.HTTPClient != nil {
		httpOpts = append(httpOpts, http.WithHTTPClient(config.HTTPClient))
	}

	if config.HTTPTimeout > 0 {
		httpOpts = append(httpOpts, http.WithTimeout(config.HTTPTimeout))
	}

	if config.RetryMax > 0 {
		retryWaitMin := constants.DefaultRetryWaitMin
		retryWaitMax := constants.DefaultRetryWaitMax

		if config.RetryWaitMin > 0 {
			retryWaitMin = config.RetryWaitMin
		}

		if config.RetryWaitMax > 0 {
			retryWaitMax = config.RetryWaitMax
		}

		httpOpts = append(httpOpts, http.WithRetryConfig(config.RetryMax, retryWaitMin, retryWaitMax))
	}

	return httpOpts
}

// NormalizeTenant strips a scheme and trailing slashes from a tenant host.
func NormalizeTenant(tenant string) string {
	tenant = strings.TrimSpace(tenant)
	tenant = strings.TrimPrefix(tenant, "https://")
	tenant = strings.TrimPrefix(tenant, "http://")

	return strings.TrimRight(tenant, "/")
}

// New creates a new client from config.
func New(config *ado.Config) (*Client, error) {
	err := config.Validate()
	if err != nil {
		return nil, err
	}

	logger := config.Logger
	if logger == nil {
		logger = ado.NewLogrusLogger(nil)
	}

	authorizer := auth.NewBasicAuthorizer(config.Credentials)
	httpClient := http.NewClient(NormalizeTenant(config.Tenant), config.ProjectID, authorizer,
		createHTTPClientOptions(config, logger)...)

	client := &Client{
		context:    ado.NewContext(config.Username, config.RepositoryID, config.StatusContext),
		httpClient: httpClient,
		logger:     logger,
	}

	// Initialize resource clients
	client.initializeResourceClients()

	return client, nil
}

// initializeResourceClients initializes all resource-specific clients.
func (c *Client) initializeResourceClients() {
	c.builds = NewBuildsClient(c.context, c.httpClient, c.logger)
	c.git = NewGitClient(c.context, c.httpClient, c.logger)
	c.governance = NewGovernanceClient(c.context, c.httpClient, c.logger)
	c.graph = NewGraphClient(c.context, c.httpClient, c.logger)
	c.pools = NewPoolsClient(c.context, c.httpClient, c.logger)
	c.security = NewSecurityClient(c.context, c.httpClient, c.logger)
	c.user = NewUserClient(c.context, c.httpClient, c.logger)
	c.workItems = NewWorkItemsClient(c.context, c.httpClient, c.logger)
}

// VerifyAccess implements ado.Client.VerifyAccess. Any failure, transport or
// API, is reported as false.
func (c *Client) VerifyAccess(ctx context.Context) bool {
	target := c.httpClient.BaseURL(ado.URLScope{}) + "/git/repositories?" +
		apiVersion(constants.APIVersionRepositories).Encode()

	_, err := c.httpClient.GetValue(ctx, target)
	if err != nil {
		c.logger.Debug("Access verification failed", map[string]interface{}{"error": err.Error()})

		return false
	}

	return true
}

// CreatePullRequest implements ado.Client.CreatePullRequest.
func (c *Client) CreatePullRequest(ctx context.Context, sourceBranch, targetBranch string, opts *ado.PullRequestOptions) (ado.Payload, error) {
	body := map[string]interface{}{
		"sourceRefName": ado.CanonicalizeBranchName(sourceBranch),
		"targetRefName": ado.CanonicalizeBranchName(targetBranch),
	}

	if opts != nil {
		if opts.Title != nil {
			body["title"] = *opts.Title
		}

		if opts.Description != nil {
			body["description"] = *opts.Description
		}

		if len(opts.ReviewerIDs) > 0 {
			reviewers := make([]map[string]string, 0, len(opts.ReviewerIDs))
			for _, id := range opts.ReviewerIDs {
				reviewers = append(reviewers, map[string]string{"id": id})
			}

			body["reviewers"] = reviewers
		}
	}

	target := c.httpClient.BaseURL(ado.URLScope{}) + "/git/repositories/" +
		url.PathEscape(c.context.RepositoryID()) + "/pullRequests?" +
		apiVersion(constants.APIVersionPullRequestCreate).Encode()

	c.logger.Info("Creating pull request", map[string]interface{}{
		"source": body["sourceRefName"],
		"target": body["targetRefName"],
	})

	resp, err := c.httpClient.Post(ctx, target, body)
	if err != nil {
		return ado.Payload{}, fmt.Errorf("creating pull request: %w", err)
	}

	envelope, err := c.httpClient.DecodeResponse(resp)
	if err != nil {
		return ado.Payload{}, fmt.Errorf("creating pull request: %w", err)
	}

	return c.httpClient.ExtractValue(envelope), nil
}

// ListAllPullRequests implements ado.Client.ListAllPullRequests. Pages of
// PullRequestPageSize are requested until one comes back empty; a failing page
// fails the whole listing.
func (c *Client) ListAllPullRequests(ctx context.Context, branchName string) ([]json.RawMessage, error) {
	pullRequests := []json.RawMessage{}
	offset := 0

	for {
		target := c.httpClient.BaseURL(ado.URLScope{}) + "/git/repositories/" +
			url.PathEscape(c.context.RepositoryID()) + "/pullRequests?" +
			pageQuery(offset, branchName)

		payload, err := c.httpClient.GetValue(ctx, target)
		if err != nil {
			return nil, fmt.Errorf("listing pull requests at offset %d: %w", offset, err)
		}

		page, err := payload.Items()
		if err != nil {
			return nil, fmt.Errorf("listing pull requests at offset %d: %w", offset, err)
		}

		if len(page) == 0 {
			break
		}

		pullRequests = append(pullRequests, page...)
		offset += constants.PullRequestPageSize
	}

	c.logger.Debug("Listed pull requests", map[string]interface{}{
		"count":  len(pullRequests),
		"branch": branchName,
	})

	return pullRequests, nil
}

// pageQuery renders the pull request listing query in the order
// $top, $skip, sourceRefName, api-version.
func pageQuery(offset int, branchName string) string {
	query := fmt.Sprintf("$top=%d&$skip=%d", constants.PullRequestPageSize, offset)

	if branchName != "" {
		query += "&sourceRefName=" + url.QueryEscape(ado.CanonicalizeBranchName(branchName))
	}

	return query + "&" + apiVersion(constants.APIVersionPullRequestList).Encode()
}

// CustomGet implements ado.Client.CustomGet. The response is returned as-is,
// without status validation or decoding.
func (c *Client) CustomGet(ctx context.Context, urlFragment string, parameters url.Values, scope ado.URLScope) (*ado.Response, error) {
	target := c.httpClient.BaseURL(scope) + "/" + strings.TrimPrefix(urlFragment, "/")

	if len(parameters) > 0 {
		target += "?" + parameters.Encode()
	}

	resp, err := c.httpClient.Get(ctx, target)
	if err != nil {
		return nil, fmt.Errorf("custom get %s: %w", urlFragment, err)
	}

	return resp, nil
}

// Context implements ado.Client.Context.
func (c *Client) Context() *ado.Context {
	return c.context
}

// HTTPClient returns the underlying HTTP client.
func (c *Client) HTTPClient() *http.Client {
	return c.httpClient
}

// Resource client accessors

// Builds implements ado.Client.Builds.
func (c *Client) Builds() ado.BuildsClient {
	return c.builds
}

// Git implements ado.Client.Git.
func (c *Client) Git() ado.GitClient {
	return c.git
}

// Governance implements ado.Client.Governance.
func (c *Client) Governance() ado.GovernanceClient {
	return c.governance
}

// Graph implements ado.Client.Graph.
func (c *Client) Graph() ado.GraphClient {
	return c.graph
}

// Pools implements ado.Client.Pools.
func (c *Client) Pools() ado.PoolsClient {
	return c.pools
}

// Security implements ado.Client.Security.
func (c *Client) Security() ado.SecurityClient {
	return c.security
}

// User implements ado.Client.User.
func (c *Client) User() ado.UserClient {
	return c.user
}

// WorkItems implements ado.Client.WorkItems.
func (c *Client) WorkItems() ado.WorkItemsClient {
	return c.workItems
}

// PullRequest implements ado.Client.PullRequest.
func (c *Client) PullRequest(pullRequestID int) ado.PullRequestClient {
	return NewPullRequestClient(c.context, c.httpClient, c.logger, pullRequestID)
}

var _ ado.Client = (*Client)(nil)
