package ado

import (
	"context"
	"encoding/json"
	"net/url"
)

// ResourceClients provides access to all resource-specific clients.
type ResourceClients interface {
	Builds() BuildsClient
	Git() GitClient
	Governance() GovernanceClient
	Graph() GraphClient
	Pools() PoolsClient
	Security() SecurityClient
	User() UserClient
	WorkItems() WorkItemsClient
	// PullRequest returns a client bound to a single pull request.
	PullRequest(pullRequestID int) PullRequestClient
}

// Client is the top-level entry point.
type Client interface {
	ResourceClients

	// VerifyAccess issues a cheap listing request and reports whether it succeeded.
	VerifyAccess(ctx context.Context) bool
	// CreatePullRequest creates a pull request from sourceBranch into targetBranch.
	CreatePullRequest(ctx context.Context, sourceBranch, targetBranch string, opts *PullRequestOptions) (Payload, error)
	// ListAllPullRequests pages through every pull request, optionally
	// filtered by source branch ("" for no filter).
	ListAllPullRequests(ctx context.Context, branchName string) ([]json.RawMessage, error)
	// CustomGet performs a GET against an arbitrary fragment without decoding.
	CustomGet(ctx context.Context, urlFragment string, parameters url.Values, scope URLScope) (*Response, error)
	// Context returns the shared caller context.
	Context() *Context
}

// PullRequestOptions holds the optional fields of a new pull request.
// Nil fields are not sent.
type PullRequestOptions struct {
	Title       *string
	Description *string
	ReviewerIDs []string
}

// BuildsClient defines operations for builds.
type BuildsClient interface {
	Get(ctx context.Context, buildID int) (Payload, error)
	List(ctx context.Context, opts *BuildListOptions) (Payload, error)
	Queue(ctx context.Context, definitionID int, sourceBranch string, variables map[string]string) (Payload, error)
	GetTags(ctx context.Context, buildID int) (Payload, error)
	AddTag(ctx context.Context, buildID int, tag string) (Payload, error)
}

// BuildListOptions filters build listings.
type BuildListOptions struct {
	DefinitionIDs []int
	BranchName    *string
	StatusFilter  *string
	Top           *int
}

// GitClient defines operations for repositories and refs.
type GitClient interface {
	ListRepositories(ctx context.Context) (Payload, error)
	GetRefs(ctx context.Context, filter *string) (Payload, error)
	GetItem(ctx context.Context, path string, branch *string) (Payload, error)
	SetStatus(ctx context.Context, commitID string, status *Status) (Payload, error)
	DeleteBranch(ctx context.Context, branchName, objectID string) (Payload, error)
}

// Status is a status posted against a commit or pull request.
type Status struct {
	State       StatusState
	Description string
	TargetURL   *string
}

// StatusState is the state of a posted status.
type StatusState string

const (
	StatusStateError         StatusState = "error"
	StatusStateFailed        StatusState = "failed"
	StatusStateNotApplicable StatusState = "notApplicable"
	StatusStateNotSet        StatusState = "notSet"
	StatusStatePending       StatusState = "pending"
	StatusStateSucceeded     StatusState = "succeeded"
)

// PullRequestClient defines operations on a single pull request.
type PullRequestClient interface {
	ID() int
	Details(ctx context.Context) (Payload, error)
	Threads(ctx context.Context) (Payload, error)
	CreateThread(ctx context.Context, text string, status *CommentThreadStatus) (Payload, error)
	SetStatus(ctx context.Context, status *Status) (Payload, error)
	AddReviewer(ctx context.Context, reviewerID string, vote *int) (Payload, error)
	Abandon(ctx context.Context) (Payload, error)
	AddProperty(ctx context.Context, name string, value interface{}) (Payload, error)
}

// CommentThreadStatus is the status of a pull request comment thread.
type CommentThreadStatus string

const (
	CommentThreadActive   CommentThreadStatus = "active"
	CommentThreadByDesign CommentThreadStatus = "byDesign"
	CommentThreadClosed   CommentThreadStatus = "closed"
	CommentThreadFixed    CommentThreadStatus = "fixed"
	CommentThreadPending  CommentThreadStatus = "pending"
	CommentThreadWontFix  CommentThreadStatus = "wontFix"
)

// WorkItemsClient defines operations for work items.
type WorkItemsClient interface {
	Get(ctx context.Context, workItemID int) (Payload, error)
	Query(ctx context.Context, wiql string) (Payload, error)
	Create(ctx context.Context, workItemType string, fields map[string]interface{}) (Payload, error)
	Update(ctx context.Context, workItemID int, operations []PatchOperation) (Payload, error)
	Delete(ctx context.Context, workItemID int) (Payload, error)
}

// PatchOperation is a single JSON Patch operation.
type PatchOperation struct {
	Op    string      `json:"op"`
	Path  string      `json:"path"`
	From  string      `json:"from,omitempty"`
	Value interface{} `json:"value,omitempty"`
}

// GovernanceClient defines operations for component governance.
type GovernanceClient interface {
	GetGovernedRepositories(ctx context.Context) (Payload, error)
	GetAlerts(ctx context.Context, governedRepositoryID int, opts *AlertOptions) (Payload, error)
	RemovePolicy(ctx context.Context, governedRepositoryID int, policyID string) error
}

// AlertOptions filters governance alerts.
type AlertOptions struct {
	BranchName     *string
	IncludeHistory *bool
}

// SecurityClient defines operations for security namespaces and ACLs.
type SecurityClient interface {
	ListNamespaces(ctx context.Context) (Payload, error)
	QueryAccessControlLists(ctx context.Context, namespaceID string, token *string) (Payload, error)
}

// TaskAgentPoolActionFilter represents an agent pool action filter.
type TaskAgentPoolActionFilter string

const (
	PoolActionFilterManage TaskAgentPoolActionFilter = "manage"
	PoolActionFilterNone   TaskAgentPoolActionFilter = "none"
	PoolActionFilterUse    TaskAgentPoolActionFilter = "use"
)

// AgentListOptions controls agent listings. The include flags default to true
// when the options are nil.
type AgentListOptions struct {
	AgentName                   *string
	IncludeCapabilities         bool
	IncludeAssignedRequest      bool
	IncludeLastCompletedRequest bool
}

// DefaultAgentListOptions returns options with every include flag set.
func DefaultAgentListOptions() *AgentListOptions {
	return &AgentListOptions{
		IncludeCapabilities:         true,
		IncludeAssignedRequest:      true,
		IncludeLastCompletedRequest: true,
	}
}

// PoolsClient defines operations for agent pools.
type PoolsClient interface {
	GetPools(ctx context.Context, poolName *string, actionFilter *TaskAgentPoolActionFilter) (Payload, error)
	GetAgents(ctx context.Context, poolID int, opts *AgentListOptions) (Payload, error)
	GetAgent(ctx context.Context, poolID, agentID int) (Payload, error)
	UpdateAgent(ctx context.Context, poolID, agentID int, agentData map[string]interface{}) (Payload, error)
	SetAgentState(ctx context.Context, poolID, agentID int, enabled bool) (Payload, error)
	UpdateAgentCapabilities(ctx context.Context, poolID, agentID int, capabilities map[string]string) (Payload, error)
}

// UserClient defines operations for user profiles and identities.
type UserClient interface {
	GetProfile(ctx context.Context) (Payload, error)
	// GetIdentity looks up an identity by name; "" means the context username.
	GetIdentity(ctx context.Context, name string) (Payload, error)
}

// GraphClient defines operations for the graph API.
type GraphClient interface {
	ListUsers(ctx context.Context) ([]json.RawMessage, error)
	GetDescriptor(ctx context.Context, storageKey string) (Payload, error)
}
