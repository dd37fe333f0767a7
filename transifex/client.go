// Package transifex is a thin client for the translation service's message
// bundle API. It knows two operations: pulling one resource's translation
// for one locale, and pushing the source-language message set for one
// resource. API semantics beyond that (pagination, rate limits) are the
// service's business, not ours.
package transifex

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/openblocks-dev/txsync/msgtree"
)

// DefaultBaseURL is the translation service endpoint used when the project
// config does not override it.
const DefaultBaseURL = "https://translations.openblocks.dev"

const defaultTimeout = 120 * time.Second

// Message is one source-language entry as uploaded on push: the English
// string plus translator-facing context.
type Message struct {
	String           string `json:"string"`
	DeveloperComment string `json:"developer_comment,omitempty"`
}

// Client talks to the translation service for a single project.
type Client struct {
	baseURL string
	project string
	token   string
	hc      *http.Client
}

// New creates a client for the given project. An empty baseURL selects
// DefaultBaseURL. The token is sent as a bearer credential on every request.
func New(baseURL, project, token string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	transport := http.DefaultTransport.(*http.Transport).Clone()
	transport.Proxy = http.ProxyFromEnvironment

	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		project: project,
		token:   token,
		hc: &http.Client{
			Transport: transport,
			Timeout:   defaultTimeout,
		},
	}
}

// PullTranslation fetches one resource's message tree for one locale,
// normalized. The locale is the service's own code; callers map through the
// overrides table first.
func (c *Client) PullTranslation(ctx context.Context, resource, locale string) (msgtree.Tree, error) {
	endpoint := fmt.Sprintf("%s/api/project/%s/resource/%s/translation/%s",
		c.baseURL, c.project, resource, locale)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	c.setHeaders(req)

	resp, err := c.hc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("requesting %s/%s: %w", resource, locale, err)
	}
	body, _ := io.ReadAll(resp.Body)
	resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("service returned status %d for %s/%s: %s",
			resp.StatusCode, resource, locale, truncate(string(body), 300))
	}

	tree, err := msgtree.Parse(body)
	if err != nil {
		return nil, fmt.Errorf("decoding %s/%s: %w", resource, locale, err)
	}
	return tree, nil
}

// PushSource uploads the source-language message set for one resource,
// replacing its previous content.
func (c *Client) PushSource(ctx context.Context, resource string, messages map[string]Message) error {
	endpoint := fmt.Sprintf("%s/api/project/%s/resource/%s/source",
		c.baseURL, c.project, resource)

	payload, err := json.Marshal(messages)
	if err != nil {
		return fmt.Errorf("encoding source messages: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPut, endpoint, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	c.setHeaders(req)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.hc.Do(req)
	if err != nil {
		return fmt.Errorf("uploading %s: %w", resource, err)
	}
	body, _ := io.ReadAll(resp.Body)
	resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusNoContent {
		return fmt.Errorf("service returned status %d for %s: %s",
			resp.StatusCode, resource, truncate(string(body), 300))
	}
	return nil
}

func (c *Client) setHeaders(req *http.Request) {
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
	req.Header.Set("Accept", "application/json")
}

// truncate shortens s for inclusion in error messages.
func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
