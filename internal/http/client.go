package http

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/hashicorp/go-retryablehttp"

	"github.com/fivetwenty-io/ado-client/internal/constants"
	"github.com/fivetwenty-io/ado-client/pkg/ado"
)

// Response is a raw response with its body read.
type Response = ado.Response

// Authorizer attaches credentials to an outgoing request.
type Authorizer interface {
	Authorize(req *http.Request)
}

// Logger interface for logging.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
}

// Request describes a single call.
type Request struct {
	Method      string
	URL         string
	Body        interface{}
	ContentType string
	Headers     map[string]string
}

// Client is the single point of contact with the remote service.
type Client struct {
	scheme       string
	tenant       string
	projectID    string
	authorizer   Authorizer
	extraHeaders map[string]string
	httpClient   *retryablehttp.Client
	logger       Logger
	debug        bool
	userAgent    string
}

// Option configures a Client.
type Option func(*Client)

// WithLogger sets the logger.
func WithLogger(logger Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithDebug enables request/response logging.
func WithDebug(debug bool) Option {
	return func(c *Client) {
		c.debug = debug
	}
}

// WithUserAgent sets the User-Agent header.
func WithUserAgent(userAgent string) Option {
	return func(c *Client) {
		c.userAgent = userAgent
	}
}

// WithExtraHeaders merges headers into every request. The map is copied.
func WithExtraHeaders(headers map[string]string) Option {
	return func(c *Client) {
		for key, value := range headers {
			c.extraHeaders[key] = value
		}
	}
}

// WithRetryConfig enables retries of transient failures.
func WithRetryConfig(maxRetries int, waitMin, waitMax time.Duration) Option {
	return func(c *Client) {
		c.httpClient.RetryMax = maxRetries
		c.httpClient.RetryWaitMin = waitMin
		c.httpClient.RetryWaitMax = waitMax
	}
}

// WithHTTPClient replaces the underlying transport client.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		if httpClient != nil {
			c.httpClient.HTTPClient = httpClient
		}
	}
}

// WithTimeout sets the per-attempt timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		if timeout > 0 {
			c.httpClient.HTTPClient.Timeout = timeout
		}
	}
}

// WithScheme overrides the URL scheme.
func WithScheme(scheme string) Option {
	return func(c *Client) {
		c.scheme = scheme
	}
}

// NewClient creates a client for tenant and projectID. Requests are attempted
// once; non-2xx responses are returned to the caller untouched.
func NewClient(tenant, projectID string, authorizer Authorizer, opts ...Option) *Client {
	retryClient := retryablehttp.NewClient()
	retryClient.RetryMax = constants.DefaultRetryMax
	retryClient.RetryWaitMin = constants.DefaultRetryWaitMin
	retryClient.RetryWaitMax = constants.DefaultRetryWaitMax
	retryClient.ErrorHandler = retryablehttp.PassthroughErrorHandler
	retryClient.Logger = nil
	retryClient.HTTPClient.Timeout = constants.DefaultHTTPTimeout

	client := &Client{
		scheme:       constants.DefaultScheme,
		tenant:       tenant,
		projectID:    projectID,
		authorizer:   authorizer,
		extraHeaders: make(map[string]string),
		httpClient:   retryClient,
		userAgent:    constants.DefaultUserAgent,
	}

	for _, opt := range opts {
		opt(client)
	}

	if client.logger != nil && retryClient.RetryMax > 0 {
		retryClient.Logger = &leveledLogger{logger: client.logger}
	}

	return client
}

// BaseURL composes the base URL for scope. It performs no I/O.
func (c *Client) BaseURL(scope ado.URLScope) string {
	var builder strings.Builder

	builder.WriteString(c.scheme)
	builder.WriteString("://")
	builder.WriteString(c.tenant)

	if !scope.SkipDefaultCollection {
		builder.WriteString("/" + constants.DefaultCollectionSegment)
	}

	if !scope.SkipProject {
		builder.WriteString("/" + c.projectID)
	}

	if scope.Internal {
		builder.WriteString("/" + constants.InternalAPISegment)
	} else {
		builder.WriteString("/" + constants.PublicAPISegment)
	}

	return builder.String()
}

// Do executes a request.
func (c *Client) Do(ctx context.Context, req *Request) (*Response, error) {
	var body interface{}

	if req.Body != nil {
		data, err := json.Marshal(req.Body)
		if err != nil {
			return nil, fmt.Errorf("marshaling request body: %w", err)
		}

		body = data
	}

	httpReq, err := retryablehttp.NewRequestWithContext(ctx, req.Method, req.URL, body)
	if err != nil {
		return nil, &ado.HTTPError{Method: req.Method, URL: req.URL, Err: err}
	}

	c.setHeaders(httpReq.Request, req)

	if c.debug && c.logger != nil {
		c.logger.Debug("HTTP Request", map[string]interface{}{
			"method": req.Method,
			"url":    req.URL,
		})
	}

	start := time.Now()

	httpResp, err := c.httpClient.Do(httpReq)
	if err != nil {
		if httpResp != nil {
			_ = httpResp.Body.Close()
		}

		if c.logger != nil {
			c.logger.Error("HTTP Request failed", map[string]interface{}{
				"method": req.Method,
				"url":    req.URL,
				"error":  err.Error(),
			})
		}

		return nil, &ado.HTTPError{Method: req.Method, URL: req.URL, Err: err}
	}

	defer func() { _ = httpResp.Body.Close() }()

	respBody, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, &ado.HTTPError{Method: req.Method, URL: req.URL, Err: fmt.Errorf("reading response body: %w", err)}
	}

	if c.debug && c.logger != nil {
		c.logger.Debug("HTTP Response", map[string]interface{}{
			"method":   req.Method,
			"url":      req.URL,
			"status":   httpResp.StatusCode,
			"duration": time.Since(start).String(),
		})
	}

	return &Response{
		Method:     req.Method,
		URL:        req.URL,
		StatusCode: httpResp.StatusCode,
		Header:     httpResp.Header,
		Body:       respBody,
	}, nil
}

func (c *Client) setHeaders(httpReq *http.Request, req *Request) {
	httpReq.Header.Set("Accept", constants.ContentTypeJSON)
	httpReq.Header.Set("User-Agent", c.userAgent)

	if req.Body != nil {
		contentType := req.ContentType
		if contentType == "" {
			contentType = constants.ContentTypeJSON
		}

		httpReq.Header.Set("Content-Type", contentType)
	}

	for key, value := range c.extraHeaders {
		httpReq.Header.Set(key, value)
	}

	for key, value := range req.Headers {
		httpReq.Header.Set(key, value)
	}

	if c.authorizer != nil {
		c.authorizer.Authorize(httpReq)
	}
}

// Get performs a GET request.
func (c *Client) Get(ctx context.Context, url string) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodGet, URL: url})
}

// Post performs a POST request with an optional JSON body.
func (c *Client) Post(ctx context.Context, url string, body interface{}) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodPost, URL: url, Body: body})
}

// Put performs a PUT request with an optional JSON body.
func (c *Client) Put(ctx context.Context, url string, body interface{}) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodPut, URL: url, Body: body})
}

// Patch performs a PATCH request with an optional JSON body.
func (c *Client) Patch(ctx context.Context, url string, body interface{}) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodPatch, URL: url, Body: body})
}

// Delete performs a DELETE request.
func (c *Client) Delete(ctx context.Context, url string) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodDelete, URL: url})
}

// ValidateResponse checks the status code only.
func (c *Client) ValidateResponse(resp *Response) error {
	if resp == nil {
		return &ado.DecodeError{Err: ado.ErrNilResponse}
	}

	if !resp.IsSuccess() {
		return &ado.DecodeError{
			Response: resp,
			APIError: ado.ParseAPIError(resp.Body),
			Err:      ado.ErrUnexpectedStatus,
		}
	}

	return nil
}

// DecodeResponse validates the status code and parses the body envelope.
func (c *Client) DecodeResponse(resp *Response) (*ado.Envelope, error) {
	err := c.ValidateResponse(resp)
	if err != nil {
		if c.logger != nil && resp != nil {
			c.logger.Warn("API request failed", map[string]interface{}{
				"method": resp.Method,
				"url":    resp.URL,
				"status": resp.StatusCode,
			})
		}

		return nil, err
	}

	envelope, err := ado.ParseEnvelope(resp.Body)
	if err != nil {
		return nil, &ado.DecodeError{Response: resp, Err: err}
	}

	return envelope, nil
}

// ExtractValue returns the value field when present, otherwise the whole body.
func (c *Client) ExtractValue(envelope *ado.Envelope) ado.Payload {
	return envelope.Payload()
}

// Decode is DecodeResponse followed by ExtractValue.
func (c *Client) Decode(resp *Response) (ado.Payload, error) {
	envelope, err := c.DecodeResponse(resp)
	if err != nil {
		return ado.Payload{}, err
	}

	return c.ExtractValue(envelope), nil
}

// GetValue performs a GET and returns the extracted payload.
func (c *Client) GetValue(ctx context.Context, url string) (ado.Payload, error) {
	resp, err := c.Get(ctx, url)
	if err != nil {
		return ado.Payload{}, err
	}

	return c.Decode(resp)
}

// leveledLogger adapts Logger to retryablehttp.LeveledLogger.
type leveledLogger struct {
	logger Logger
}

func (l *leveledLogger) Error(msg string, keysAndValues ...interface{}) {
	l.logger.Error(msg, toFields(keysAndValues))
}

func (l *leveledLogger) Info(msg string, keysAndValues ...interface{}) {
	l.logger.Info(msg, toFields(keysAndValues))
}

func (l *leveledLogger) Debug(msg string, keysAndValues ...interface{}) {
	l.logger.Debug(msg, toFields(keysAndValues))
}

func (l *leveledLogger) Warn(msg string, keysAndValues ...interface{}) {
	l.logger.Warn(msg, toFields(keysAndValues))
}

func toFields(keysAndValues []interface{}) map[string]interface{} {
	fields := make(map[string]interface{}, len(keysAndValues)/2)

	for i := 0; i+1 < len(keysAndValues); i += 2 {
		key := fmt.Sprint(keysAndValues[i])
		fields[key] = keysAndValues[i+1]
	}

	return fields
}
