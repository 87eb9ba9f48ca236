// Package mcp provides an MCP (Model Context Protocol) server adapter
// for zettelview. It lets AI assistants search and inspect notes over
// stdio or HTTP.
package mcp

import "errors"

// ErrMissingSearchService is returned when the search service is not provided.
var ErrMissingSearchService = errors.New("mcp: search service is required")
