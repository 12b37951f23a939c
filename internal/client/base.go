package client

import (
	"context"
	"net/url"
	"strconv"
	"strings"

	"github.com/fivetwenty-io/ado-client/internal/http"
	"github.com/fivetwenty-io/ado-client/pkg/ado"
)

// baseClient holds what every resource client shares.
type baseClient struct {
	context    *ado.Context
	httpClient *http.Client
	logger     ado.Logger
}

func newBaseClient(adoContext *ado.Context, httpClient *http.Client, logger ado.Logger, component string) baseClient {
	return baseClient{
		context:    adoContext,
		httpClient: httpClient,
		logger:     ado.ChildLogger(logger, component),
	}
}

// endpoint joins the base URL for scope with the given path segments and
// encodes query. Segments are used verbatim; escape caller input with
// escapeID or url.PathEscape first.
func (b *baseClient) endpoint(scope ado.URLScope, query url.Values, segments ...string) string {
	target := b.httpClient.BaseURL(scope) + "/" + strings.Join(segments, "/")

	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	return target
}

// repositorySegments returns the path prefix of the context repository.
func (b *baseClient) repositorySegments(extra ...string) []string {
	return append([]string{"git", "repositories", escapeSegment(b.context.RepositoryID())}, extra...)
}

// send performs req and returns the extracted payload.
func (b *baseClient) send(ctx context.Context, req *http.Request) (ado.Payload, error) {
	resp, err := b.httpClient.Do(ctx, req)
	if err != nil {
		return ado.Payload{}, err
	}

	return b.httpClient.Decode(resp)
}

// apiVersion returns query values carrying only the api-version parameter.
func apiVersion(version string) url.Values {
	return url.Values{"api-version": []string{version}}
}

func escapeID(id int) string {
	return strconv.Itoa(id)
}

func escapeSegment(segment string) string {
	return url.PathEscape(segment)
}

// statusBody builds the body shared by commit and pull request statuses.
func statusBody(status *ado.Status, contextName string) map[string]interface{} {
	body := map[string]interface{}{
		"state":       string(status.State),
		"description": status.Description,
		"context": map[string]interface{}{
			"name": contextName,
		},
	}

	if status.TargetURL != nil {
		body["targetUrl"] = *status.TargetURL
	}

	return body
}
