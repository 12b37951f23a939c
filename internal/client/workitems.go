package client

import (
	"context"
	"fmt"
	nethttp "net/http"
	"sort"

	"github.com/fivetwenty-io/ado-client/internal/constants"
	"github.com/fivetwenty-io/ado-client/internal/http"
	"github.com/fivetwenty-io/ado-client/pkg/ado"
)

// WorkItemsClient implements ado.WorkItemsClient.
type WorkItemsClient struct {
	baseClient
}

// NewWorkItemsClient creates a new work items client.
func NewWorkItemsClient(adoContext *ado.Context, httpClient *http.Client, logger ado.Logger) *WorkItemsClient {
	return &WorkItemsClient{baseClient: newBaseClient(adoContext, httpClient, logger, "workitems")}
}

// Get implements ado.WorkItemsClient.Get.
func (c *WorkItemsClient) Get(ctx context.Context, workItemID int) (ado.Payload, error) {
	target := c.endpoint(ado.URLScope{}, apiVersion(constants.APIVersionWorkItems), "wit", "workitems", escapeID(workItemID))

	payload, err := c.httpClient.GetValue(ctx, target)
	if err != nil {
		return ado.Payload{}, fmt.Errorf("getting work item %d: %w", workItemID, err)
	}

	return payload, nil
}

// Query implements ado.WorkItemsClient.Query.
func (c *WorkItemsClient) Query(ctx context.Context, wiql string) (ado.Payload, error) {
	payload, err := c.send(ctx, &http.Request{
		Method: nethttp.MethodPost,
		URL:    c.endpoint(ado.URLScope{}, apiVersion(constants.APIVersionWorkItems), "wit", "wiql"),
		Body:   map[string]interface{}{"query": wiql},
	})
	if err != nil {
		return ado.Payload{}, fmt.Errorf("querying work items: %w", err)
	}

	return payload, nil
}

// Create implements ado.WorkItemsClient.Create. Each field becomes an "add"
// operation on /fields/<name>, ordered by field name.
func (c *WorkItemsClient) Create(ctx context.Context, workItemType string, fields map[string]interface{}) (ado.Payload, error) {
	names := make([]string, 0, len(fields))
	for name := range fields {
		names = append(names, name)
	}

	sort.Strings(names)

	operations := make([]ado.PatchOperation, 0, len(names))
	for _, name := range names {
		operations = append(operations, ado.PatchOperation{Op: "add", Path: "/fields/" + name, Value: fields[name]})
	}

	target := c.endpoint(ado.URLScope{}, apiVersion(constants.APIVersionWorkItems),
		"wit", "workitems", "$"+escapeSegment(workItemType))

	payload, err := c.send(ctx, &http.Request{
		Method:      nethttp.MethodPost,
		URL:         target,
		Body:        operations,
		ContentType: constants.ContentTypeJSONPatch,
	})
	if err != nil {
		return ado.Payload{}, fmt.Errorf("creating %s work item: %w", workItemType, err)
	}

	return payload, nil
}

// Update implements ado.WorkItemsClient.Update.
func (c *WorkItemsClient) Update(ctx context.Context, workItemID int, operations []ado.PatchOperation) (ado.Payload, error) {
	target := c.endpoint(ado.URLScope{}, apiVersion(constants.APIVersionWorkItems), "wit", "workitems", escapeID(workItemID))

	payload, err := c.send(ctx, &http.Request{
		Method:      nethttp.MethodPatch,
		URL:         target,
		Body:        operations,
		ContentType: constants.ContentTypeJSONPatch,
	})
	if err != nil {
		return ado.Payload{}, fmt.Errorf("updating work item %d: %w", workItemID, err)
	}

	return payload, nil
}

// Delete implements ado.WorkItemsClient.Delete. The item goes to the recycle bin.
func (c *WorkItemsClient) Delete(ctx context.Context, workItemID int) (ado.Payload, error) {
	target := c.endpoint(ado.URLScope{}, apiVersion(constants.APIVersionWorkItems), "wit", "workitems", escapeID(workItemID))

	payload, err := c.send(ctx, &http.Request{Method: nethttp.MethodDelete, URL: target})
	if err != nil {
		return ado.Payload{}, fmt.Errorf("deleting work item %d: %w", workItemID, err)
	}

	return payload, nil
}
