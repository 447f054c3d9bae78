package jobs

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const (
	collectionPath  = "/api/v1/jobs"
	contentTypeJSON = "application/json"
)

// Gateway forwards job requests to the upstream job service, making a
// single attempt per request.
type Gateway struct {
	BaseURL    string
	HTTPClient *http.Client
}

// NewGateway constructs a Gateway whose upstream calls are bounded by timeout.
func NewGateway(baseURL string, timeout time.Duration) *Gateway {
	return &Gateway{
		BaseURL:    baseURL,
		HTTPClient: &http.Client{Timeout: timeout},
	}
}

// Forward performs the upstream round trip. Any upstream status, including
// 4xx and 5xx, is returned as a ProxyResponse with a nil error.
func (g *Gateway) Forward(ctx context.Context, req ProxyRequest) (ProxyResponse, error) {
	target := strings.TrimRight(g.BaseURL, "/") + req.ResourcePath
	if req.Query != "" {
		target += "?" + req.Query
	}

	var body io.Reader
	if req.Body != nil {
		body = bytes.NewReader(req.Body)
	}
	httpReq, err := http.NewRequestWithContext(ctx, req.Method, target, body)
	if err != nil {
		return ProxyResponse{}, fmt.Errorf("build upstream request %s %s: %w", req.Method, req.ResourcePath, err)
	}
	httpReq.Header.Set("Content-Type", contentTypeJSON)
	if req.AuthHeader != "" {
		httpReq.Header.Set("Authorization", req.AuthHeader)
	}

	resp, err := g.client().Do(httpReq)
	if err != nil {
		return ProxyResponse{}, fmt.Errorf("%w: %s %s: %v", ErrUpstreamUnreachable, req.Method, req.ResourcePath, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return ProxyResponse{}, fmt.Errorf("%w: read %s %s: %v", ErrUpstreamUnreachable, req.Method, req.ResourcePath, err)
	}

	out := ProxyResponse{StatusCode: resp.StatusCode}
	if len(raw) > 0 {
		out.Body = raw
	}
	return out, nil
}

func (g *Gateway) client() *http.Client {
	if g.HTTPClient != nil {
		return g.HTTPClient
	}
	return http.DefaultClient
}

func itemPath(id string) string {
	return collectionPath + "/" + id
}
