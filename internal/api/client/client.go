package client

import (
	"fmt"
	"net/http"
	"net/url"
	"time"
)

// Client represents a client for the API
type Client struct {
	http        *http.Client
	modelsUrl   *url.URL
	generateUrl *url.URL
}

// ClientConfig holds the configuration for the client
type ClientConfig struct {
	Endpoint   string
	ModelsPath string
	Timeout    time.Duration
}

// NewClient creates a new API client posting to Endpoint. The models URL is
// resolved against the endpoint's host.
func NewClient(config ClientConfig) (*Client, error) {
	endpoint, err := url.Parse(config.Endpoint)
	if err != nil {
		return nil, fmt.Errorf("parse endpoint: %w", err)
	}
	if endpoint.Scheme == "" || endpoint.Host == "" {
		return nil, fmt.Errorf("endpoint is not an absolute URL: %q", config.Endpoint)
	}

	baseURL := &url.URL{Scheme: endpoint.Scheme, Host: endpoint.Host}
	return &Client{
		http:        &http.Client{Timeout: config.Timeout},
		modelsUrl:   baseURL.ResolveReference(&url.URL{Path: config.ModelsPath}),
		generateUrl: endpoint,
	}, nil
}

func (c *Client) GetModelsURL() string {
	return c.modelsUrl.String()
}

func (c *Client) GetGenerateURL() string {
	return c.generateUrl.String()
}
