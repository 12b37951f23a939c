package ado

// Context carries the caller identity shared by every resource client.
// It is immutable after construction.
type Context struct {
	username      string
	repositoryID  string
	statusContext string
}

// NewContext creates a new context.
func NewContext(username, repositoryID, statusContext string) *Context {
	return &Context{
		username:      username,
		repositoryID:  repositoryID,
		statusContext: statusContext,
	}
}

// Username returns the user accessing the API.
func (c *Context) Username() string {
	return c.username
}

// RepositoryID returns the repository identifier.
func (c *Context) RepositoryID() string {
	return c.repositoryID
}

// StatusContext returns the context name for statuses placed on PRs or commits.
func (c *Context) StatusContext() string {
	return c.statusContext
}
