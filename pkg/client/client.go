// Package client is a Go client for the scribe HTTP API. It wraps the
// tool-call endpoint with typed helpers so callers never build argument
// maps by hand.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/entrhq/scribe/pkg/notes"
	"github.com/entrhq/scribe/pkg/types"
)

// ErrTool is wrapped by results where the tool itself reported a
// failure. The error text carries the tool's message.
var ErrTool = errors.New("client: tool reported an error")

// DefaultTimeout bounds each request when the caller supplies no
// context deadline.
const DefaultTimeout = 30 * time.Second

// Client calls a scribe server over HTTP.
type Client struct {
	// URL is the server base URL, e.g. "http://localhost:8000".
	URL string

	// HTTP is the underlying HTTP client. Replaceable for tests.
	HTTP *http.Client
}

// New creates a client for the server at baseURL.
func New(baseURL string) *Client {
	return &Client{
		URL:  strings.TrimRight(baseURL, "/"),
		HTTP: &http.Client{Timeout: DefaultTimeout},
	}
}

// Health fetches the server health report.
func (c *Client) Health(ctx context.Context) (*types.HealthResponse, error) {
	var health types.HealthResponse
	if err := c.get(ctx, "/", &health); err != nil {
		return nil, err
	}
	return &health, nil
}

// ListTools fetches the tool catalog.
func (c *Client) ListTools(ctx context.Context) ([]types.ToolDescriptor, error) {
	var catalog []types.ToolDescriptor
	if err := c.get(ctx, "/tools", &catalog); err != nil {
		return nil, err
	}
	return catalog, nil
}

// CallTool invokes a tool by name and returns the raw response. Tool
// failures travel inside the response; only transport and decode
// problems are errors here.
func (c *Client) CallTool(ctx context.Context, name string, args map[string]interface{}) (*types.CallToolResponse, error) {
	if args == nil {
		args = map[string]interface{}{}
	}

	body := struct {
		Name      string                 `json:"name"`
		Arguments map[string]interface{} `json:"arguments"`
	}{Name: name, Arguments: args}

	var out types.CallToolResponse
	if err := c.post(ctx, "/tools/call", body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// callText invokes a tool and unwraps its text, converting IsError
// results into an ErrTool.
func (c *Client) callText(ctx context.Context, name string, args map[string]interface{}) (string, error) {
	resp, err := c.CallTool(ctx, name, args)
	if err != nil {
		return "", err
	}

	text := resp.Text()
	if resp.IsError {
		return text, fmt.Errorf("%w: %s", ErrTool, text)
	}
	return text, nil
}

// AddNote creates a note and returns the confirmation text.
func (c *Client) AddNote(ctx context.Context, title, content string) (string, error) {
	return c.callText(ctx, "add_note", map[string]interface{}{
		"title":   title,
		"content": content,
	})
}

// ListNotes returns the rendered note listing.
func (c *Client) ListNotes(ctx context.Context) (string, error) {
	return c.callText(ctx, "list_notes", nil)
}

// GetNote returns the rendered detail of one note.
func (c *Client) GetNote(ctx context.Context, id int) (string, error) {
	return c.callText(ctx, "get_note", map[string]interface{}{"id": id})
}

// UpdateNote applies a partial update. Nil fields are left unchanged.
func (c *Client) UpdateNote(ctx context.Context, id int, title, content *string) (string, error) {
	args := map[string]interface{}{"id": id}
	if title != nil {
		args["title"] = *title
	}
	if content != nil {
		args["content"] = *content
	}
	return c.callText(ctx, "update_note", args)
}

// DeleteNote removes a note.
func (c *Client) DeleteNote(ctx context.Context, id int) (string, error) {
	return c.callText(ctx, "delete_note", map[string]interface{}{"id": id})
}

// SearchByDate runs the temporal search. keyword may be empty.
func (c *Client) SearchByDate(ctx context.Context, filter, keyword string) (string, error) {
	args := map[string]interface{}{"date_filter": filter}
	if keyword != "" {
		args["keyword"] = keyword
	}
	return c.callText(ctx, "search_notes_by_date", args)
}

// SearchByKeyword runs the keyword search over the given scope
// ("title", "content", or "both").
func (c *Client) SearchByKeyword(ctx context.Context, keyword, searchIn string) (string, error) {
	args := map[string]interface{}{"keyword": keyword}
	if searchIn != "" {
		args["search_in"] = searchIn
	}
	return c.callText(ctx, "search_notes", args)
}

// SearchMentions finds notes whose text mentions the reference.
func (c *Client) SearchMentions(ctx context.Context, reference string) (string, error) {
	return c.callText(ctx, "search_notes_by_content_date", map[string]interface{}{
		"date_reference": reference,
	})
}

// StorageInfo returns the rendered storage report.
func (c *Client) StorageInfo(ctx context.Context) (string, error) {
	return c.callText(ctx, "get_storage_info", nil)
}

// CurrentTime returns the server's clock reading.
func (c *Client) CurrentTime(ctx context.Context) (string, error) {
	return c.callText(ctx, "get_current_time", nil)
}

// Calculate evaluates an arithmetic expression on the server.
func (c *Client) Calculate(ctx context.Context, expression string) (string, error) {
	return c.callText(ctx, "calculate", map[string]interface{}{
		"expression": expression,
	})
}

// Notes fetches every stored note as structured data from the REST
// surface, in insertion order.
func (c *Client) Notes(ctx context.Context) ([]notes.Note, error) {
	var all []notes.Note
	if err := c.get(ctx, "/notes", &all); err != nil {
		return nil, err
	}
	return all, nil
}

// Note fetches a single note as structured data. Unknown IDs surface
// as a status error from the server.
func (c *Client) Note(ctx context.Context, id int) (*notes.Note, error) {
	var note notes.Note
	if err := c.get(ctx, fmt.Sprintf("/notes/%d", id), &note); err != nil {
		return nil, err
	}
	return &note, nil
}

// Private helpers

func (c *Client) get(ctx context.Context, path string, v interface{}) error {
	requestURL, err := url.JoinPath(c.URL, path)
	if err != nil {
		return fmt.Errorf("client: error building URL path: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return fmt.Errorf("client: error building API request: %w", err)
	}

	return c.do(req, v)
}

func (c *Client) post(ctx context.Context, path string, body, v interface{}) error {
	requestURL, err := url.JoinPath(c.URL, path)
	if err != nil {
		return fmt.Errorf("client: error building URL path: %w", err)
	}

	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("client: error encoding request body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, requestURL, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("client: error building API request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	return c.do(req, v)
}

func (c *Client) do(req *http.Request, v interface{}) error {
	resp, err := c.HTTP.Do(req)
	if err != nil {
		return fmt.Errorf("client: error invoking API: %w", err)
	}
	defer resp.Body.Close()

	respBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("client: error reading response body: %w", err)
	}

	if resp.StatusCode >= 400 {
		respStr := strings.TrimSpace(string(respBytes))
		return fmt.Errorf("client: invalid status code: %d (response: %s)", resp.StatusCode, respStr)
	}

	if v == nil {
		return nil
	}
	if err := json.Unmarshal(respBytes, v); err != nil {
		return fmt.Errorf("client: error JSON-decoding response body: %w", err)
	}
	return nil
}
