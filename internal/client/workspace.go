package client

import (
	"context"
	"encoding/base64"
	"net/http"
	"net/url"

	"github.com/pkg/errors"
)

// Export formats accepted by the workspace export endpoint.
const (
	FormatSource    = "SOURCE"
	FormatJupyter   = "JUPYTER"
	FormatHTML      = "HTML"
	FormatDBC       = "DBC"
	FormatRMarkdown = "R_MARKDOWN"
)

// ObjectInfo describes a workspace object as returned by list and
// get-status.
type ObjectInfo struct {
	Path       string `json:"path"`
	ObjectType string `json:"object_type"`
	ObjectID   int64  `json:"object_id,omitempty"`
	Language   string `json:"language,omitempty"`
	CreatedAt  int64  `json:"created_at,omitempty"`
	ModifiedAt int64  `json:"modified_at,omitempty"`
	Size       int64  `json:"size,omitempty"`
}

// List returns the direct children of a workspace directory.
func (c *Client) List(ctx context.Context, path string) ([]ObjectInfo, error) {
	var result struct {
		Objects []ObjectInfo `json:"objects"`
	}
	query := url.Values{"path": {path}}
	if err := c.do(ctx, http.MethodGet, "/api/2.0/workspace/list", query, nil, &result); err != nil {
		return nil, errors.Wrapf(err, "failed to list %q", path)
	}
	return result.Objects, nil
}

// Export downloads a notebook and returns its decoded content.
func (c *Client) Export(ctx context.Context, path, format string) (string, error) {
	var result struct {
		Content string `json:"content"`
	}
	query := url.Values{
		"path":   {path},
		"format": {format},
	}
	if err := c.do(ctx, http.MethodGet, "/api/2.0/workspace/export", query, nil, &result); err != nil {
		return "", errors.Wrapf(err, "failed to export %q", path)
	}

	decoded, err := base64.StdEncoding.DecodeString(result.Content)
	if err != nil {
		return "", errors.Wrap(err, "failed to decode exported content")
	}
	return string(decoded), nil
}

// ImportRequest creates or replaces a notebook at Path.
type ImportRequest struct {
	Path      string
	Content   string // raw SOURCE text; encoded on the wire
	Language  string
	Overwrite bool
}

func (c *Client) Import(ctx context.Context, req ImportRequest) error {
	payload := map[string]interface{}{
		"path":      req.Path,
		"content":   base64.StdEncoding.EncodeToString([]byte(req.Content)),
		"format":    FormatSource,
		"language":  req.Language,
		"overwrite": req.Overwrite,
	}
	err := c.do(ctx, http.MethodPost, "/api/2.0/workspace/import", nil, payload, nil)
	return errors.Wrapf(err, "failed to import %q", req.Path)
}

// GetStatus returns metadata for a single workspace object.
func (c *Client) GetStatus(ctx context.Context, path string) (ObjectInfo, error) {
	var result ObjectInfo
	query := url.Values{"path": {path}}
	if err := c.do(ctx, http.MethodGet, "/api/2.0/workspace/get-status", query, nil, &result); err != nil {
		return ObjectInfo{}, errors.Wrapf(err, "failed to get status of %q", path)
	}
	return result, nil
}

// Delete removes a notebook or directory.
func (c *Client) Delete(ctx context.Context, path string, recursive bool) error {
	payload := map[string]interface{}{
		"path":      path,
		"recursive": recursive,
	}
	err := c.do(ctx, http.MethodPost, "/api/2.0/workspace/delete", nil, payload, nil)
	return errors.Wrapf(err, "failed to delete %q", path)
}

// Mkdirs creates a directory and any missing parents.
func (c *Client) Mkdirs(ctx context.Context, path string) error {
	payload := map[string]interface{}{"path": path}
	err := c.do(ctx, http.MethodPost, "/api/2.0/workspace/mkdirs", nil, payload, nil)
	return errors.Wrapf(err, "failed to create directory %q", path)
}

// Me returns the user name of the authenticated principal. Used to verify
// connectivity and credentials.
func (c *Client) Me(ctx context.Context) (string, error) {
	var result struct {
		UserName string `json:"userName"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/2.0/preview/scim/v2/Me", nil, nil, &result); err != nil {
		return "", errors.Wrap(err, "failed to get current user")
	}
	return result.UserName, nil
}
