package jobs

// ProxyRequest is one job-resource call to forward upstream. Query, AuthHeader
// and Body are opaque and copied verbatim; an empty AuthHeader means the
// inbound request had none.
type ProxyRequest struct {
	Method       string
	ResourcePath string
	Query        string
	AuthHeader   string
	Body         []byte
}

// ProxyResponse is what the upstream answered. Body is nil when the upstream
// sent no content, so callers never decode an empty payload.
type ProxyResponse struct {
	StatusCode int
	Body       []byte
}

