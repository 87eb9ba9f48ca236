package mcp

import (
	"github.com/blaster151/zettelview-sub001/internal/core/ports/driving"
)

// Ports aggregates the driving port interfaces required by the MCP
// server. This provides a single injection point for dependency
// injection.
type Ports struct {
	// Search provides query parsing, validation and search.
	Search driving.SearchService

	// Notes provides note lookup. Optional; the get_note tool is only
	// registered when it is set.
	Notes driving.NoteService
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p.Search == nil {
		return ErrMissingSearchService
	}
	return nil
}
