package auth

import (
	"net/http"

	"github.com/fivetwenty-io/ado-client/pkg/ado"
)

// BasicAuthorizer attaches a credential pair as Basic authentication.
type BasicAuthorizer struct {
	credentials ado.Credentials
}

// NewBasicAuthorizer creates an authorizer for credentials.
func NewBasicAuthorizer(credentials ado.Credentials) *BasicAuthorizer {
	return &BasicAuthorizer{credentials: credentials}
}

// Authorize sets the Authorization header on req.
func (a *BasicAuthorizer) Authorize(req *http.Request) {
	req.SetBasicAuth(a.credentials.Identity, a.credentials.Secret)
}

// Identity returns the identity half of the credentials.
func (a *BasicAuthorizer) Identity() string {
	return a.credentials.Identity
}
