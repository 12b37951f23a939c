package constants

import "time"

// File and directory permissions.
const (
	// ConfigDirPerm is the permission for configuration directories.
	ConfigDirPerm = 0750

	// ConfigFilePerm is the permission for configuration files.
	ConfigFilePerm = 0600
)

// HTTP and network timeouts.
const (
	// DefaultHTTPTimeout is the default timeout for HTTP requests.
	DefaultHTTPTimeout = 30 * time.Second
)

// Retry limits. Retries are disabled unless a caller opts in.
const (
	// DefaultRetryMax is the default maximum number of retries.
	DefaultRetryMax = 0

	// DefaultRetryWaitMin is the minimum wait time between retries.
	DefaultRetryWaitMin = 1 * time.Second

	// DefaultRetryWaitMax is the maximum wait time between retries.
	DefaultRetryWaitMax = 30 * time.Second
)

// URL composition.
const (
	// DefaultScheme is the scheme of every base URL.
	DefaultScheme = "https"

	// DefaultCollectionSegment is the legacy collection path segment.
	DefaultCollectionSegment = "DefaultCollection"

	// PublicAPISegment is the path segment of the public REST API.
	PublicAPISegment = "_apis"

	// InternalAPISegment is the path segment of the internal API.
	InternalAPISegment = "_api"

	// DefaultUserAgent is sent when no user agent is configured.
	DefaultUserAgent = "ado-client-go"
)

// Content types.
const (
	ContentTypeJSON      = "application/json"
	ContentTypeJSONPatch = "application/json-patch+json"
)

// Pagination.
const (
	// PullRequestPageSize is the $top used when listing every pull request.
	PullRequestPageSize = 100

	// ContinuationTokenHeader carries the continuation token of graph listings.
	ContinuationTokenHeader = "X-Ms-Continuationtoken"

	// EmptyObjectID is the all-zero object id used to delete refs.
	EmptyObjectID = "0000000000000000000000000000000000000000"
)

// API versions used per endpoint family.
const (
	APIVersionRepositories        = "1.0"
	APIVersionPullRequestCreate   = "5.1"
	APIVersionPullRequestList     = "3.0-preview"
	APIVersionPullRequestDetails  = "3.0-preview"
	APIVersionPullRequestStatus   = "4.0-preview"
	APIVersionPullRequestUpdate   = "5.1"
	APIVersionPullRequestProperty = "5.1-preview.1"
	APIVersionBuilds              = "4.1"
	APIVersionGit                 = "4.1"
	APIVersionWorkItems           = "4.1"
	APIVersionGovernance          = "5.1-preview.1"
	APIVersionSecurity            = "5.0"
	APIVersionPools               = "5.1"
	APIVersionProfile             = "5.1"
	APIVersionIdentities          = "5.1"
	APIVersionGraph               = "5.1-preview.1"
)

// Output formats for the CLI.
const (
	OutputFormatTable = "table"
	OutputFormatJSON  = "json"
	OutputFormatYAML  = "yaml"
)
