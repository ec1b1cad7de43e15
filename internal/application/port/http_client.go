package port

import "context"

// HTTPResponse is a fully read response.
type HTTPResponse struct {
	StatusCode int
	Body       []byte
}

// IsSuccess reports a 2xx status.
func (r *HTTPResponse) IsSuccess() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}

// HTTPClient performs single-shot requests. A non-nil error means the
// request never produced a response (transport failure); any status code,
// including 4xx and 5xx, is returned as a response.
type HTTPClient interface {
	Get(ctx context.Context, url string, headers map[string]string) (*HTTPResponse, error)
	Post(ctx context.Context, url string, headers map[string]string, body []byte) (*HTTPResponse, error)
}
