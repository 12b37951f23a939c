package ado

import (
	"net/http"
	"time"
)

// Credentials is the identity/secret pair sent as Basic authentication on
// every request. For personal access tokens the identity may be empty.
type Credentials struct {
	Identity string `json:"identity" yaml:"identity"`
	Secret   string `json:"-"        yaml:"-"`
}

// URLScope selects the segments of a base URL. The zero value is the default
// scope: default collection and project included, public API segment.
type URLScope struct {
	// SkipDefaultCollection omits the "/DefaultCollection" segment.
	SkipDefaultCollection bool
	// SkipProject omits the project identifier segment.
	SkipProject bool
	// Internal selects the internal "/_api" segment instead of "/_apis".
	Internal bool
}

// OrganizationScope is the scope used by organization-level endpoints that
// live outside both the default collection and the project.
var OrganizationScope = URLScope{SkipDefaultCollection: true, SkipProject: true}

// Logger interface for logging.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
}

// Config represents client configuration for building an ado.Client.
//
// Username, Tenant, ProjectID, RepositoryID, Credentials, and StatusContext
// describe who is calling and where. ExtraHeaders and Logger are optional.
//
// # Retries
//
// Requests are attempted exactly once unless RetryMax is set. Callers that
// want retry/backoff opt in explicitly; the default surfaces every failure
// to the caller as-is.
type Config struct {
	// Username: the user accessing the API.
	Username string
	// Tenant: host of the organization, e.g. "contoso.visualstudio.com".
	// A scheme or trailing slash is stripped by adoclient.New.
	Tenant string
	// ProjectID: project identifier used by project-scoped URLs.
	ProjectID string
	// RepositoryID: repository identifier used by git and pull request endpoints.
	RepositoryID string
	// Credentials: Basic credentials attached to every request.
	Credentials Credentials
	// StatusContext: context name for statuses placed on PRs or commits.
	StatusContext string

	// Optional configurations
	// ExtraHeaders: static headers merged into every request.
	ExtraHeaders map[string]string
	// Logger: structured logger. A logrus-backed logger is used when nil.
	Logger Logger
	// HTTPClient: optional transport. Useful for custom TLS or test servers.
	HTTPClient *http.Client
	// HTTPTimeout: overall timeout per request attempt.
	HTTPTimeout time.Duration
	// RetryMax: maximum number of retries for transient failures. 0 disables retries.
	RetryMax int
	// RetryWaitMin: minimum backoff between retries. Applied when RetryMax > 0.
	RetryWaitMin time.Duration
	// RetryWaitMax: maximum backoff between retries. Applied when RetryMax > 0.
	RetryWaitMax time.Duration
	// Debug: enables verbose HTTP request/response logging.
	Debug bool
	// UserAgent: overrides the default User-Agent header.
	UserAgent string
}

// Validate checks that the required fields are present.
func (c *Config) Validate() error {
	if c == nil {
		return ErrConfigRequired
	}

	if c.Tenant == "" {
		return ErrTenantRequired
	}

	if c.ProjectID == "" {
		return ErrProjectIDRequired
	}

	if c.RepositoryID == "" {
		return ErrRepositoryIDRequired
	}

	if c.Credentials.Secret == "" {
		return ErrCredentialsRequired
	}

	return nil
}
