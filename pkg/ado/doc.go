// Package ado provides types, interfaces, and helpers for working with the
// Azure DevOps REST API.
//
// # Overview
//
// The ado package defines the shared request context, credentials, response
// envelope, error taxonomy, and the interfaces for resource-oriented clients
// (e.g., BuildsClient, GitClient, PoolsClient). A concrete implementation is
// provided by the adoclient package, which wires configuration, transport,
// and authentication. Most consumers should import adoclient to construct a
// client and then use the interfaces exposed here.
//
// Getting a client
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
//	  cli, err := adoclient.New(&ado.Config{
//	    Username:      "build-bot",
//	    Tenant:        "contoso.visualstudio.com",
//	    ProjectID:     "proj",
//	    RepositoryID:  "repo",
//	    Credentials:   ado.Credentials{Identity: "build-bot", Secret: "pat"},
//	    StatusContext: "ci",
//	  })
//	  if err != nil { log.Fatal(err) }
//
//	  prs, err := cli.ListAllPullRequests(ctx, "main")
//	  if err != nil { log.Fatal(err) }
//	  _ = prs
//	}
//
// # Responses
//
// Most endpoints answer with an envelope of the form {"count": n, "value": ...}.
// Envelope keeps the decoded body and Payload selects the logical payload:
// the value field when present, otherwise the whole body.
//
// # Errors
//
// HTTPError reports transport failures where no response was obtained.
// DecodeError reports a response that signals failure (non-2xx) or a body
// that cannot be parsed; it carries the raw Response. IsHTTPError,
// IsDecodeError, IsNotFound, and IsUnauthorized branch on common cases.
package ado
