// Package adoclient provides the primary entry point for constructing an
// Azure DevOps REST API client that implements the ado.Client interface.
//
// It layers configuration, HTTP transport, and Basic authentication on top of
// the resource interfaces and types defined in the ado package. Most
// applications should import adoclient to build a client, then use the
// returned ado.Client to reach resource-specific clients, for example
// Builds(), Git(), Pools(), etc.
//
// Quick start
//
//	import (
//	  "context"
//	  "log"
//
//	  "github.com/fivetwenty-io/ado-client/pkg/ado"
//	  "github.com/fivetwenty-io/ado-client/pkg/adoclient"
//	)
//
//	func example() {
//	  ctx := context.Background()
//
//	  cli, err := adoclient.New(&ado.Config{
//	    Username:      "build-bot",
//	    Tenant:        "https://contoso.visualstudio.com/", // scheme and slash are stripped
//	    ProjectID:     "proj",
//	    RepositoryID:  "repo",
//	    Credentials:   ado.Credentials{Secret: "personal-access-token"},
//	    StatusContext: "ci",
//	  })
//	  if err != nil { log.Fatal(err) }
//
//	  // Or fail fast when the credentials cannot list repositories:
//	  cli, err = adoclient.NewVerified(ctx, &ado.Config{ /* ... */ })
//	  if err != nil { log.Fatal(err) }
//
//	  pools, err := cli.Pools().GetPools(ctx, nil, nil)
//	  if err != nil { log.Fatal(err) }
//	  _ = pools
//	}
//
// # Retries
//
// Requests are attempted once. Set Config.RetryMax to retry transient
// failures with exponential backoff between RetryWaitMin and RetryWaitMax.
//
// # Helpers
//
// NewWithToken wraps New for the common personal access token setup.
package adoclient
