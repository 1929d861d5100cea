package agent

import (
	"net/http"
	"time"
)

// Options configures an HTTP agent gateway
type Options struct {
	// Model overrides the gateway's default model
	Model string

	// BaseURL overrides the API endpoint, mainly for tests
	BaseURL string

	// Timeout bounds one request. Zero means no timeout.
	Timeout time.Duration

	// HTTPClient replaces the default client; Timeout is then ignored
	HTTPClient *http.Client
}

func (o Options) client() *http.Client {
	if o.HTTPClient != nil {
		return o.HTTPClient
	}
	return &http.Client{Timeout: o.Timeout}
}

func (o Options) modelOr(def string) string {
	if o.Model != "" {
		return o.Model
	}
	return def
}

func (o Options) baseURLOr(def string) string {
	if o.BaseURL != "" {
		return o.BaseURL
	}
	return def
}
