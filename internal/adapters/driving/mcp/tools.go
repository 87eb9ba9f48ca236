package mcp

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/blaster151/zettelview-sub001/internal/core/domain"
)

// SearchInput is the input schema for the search_notes tool.
type SearchInput struct {
	Query         string `json:"query" jsonschema:"boolean query with AND/OR/NOT, parentheses and tag:/title:/body: prefixes"`
	Limit         int    `json:"limit,omitempty" jsonschema:"maximum number of results to return (default 50)"`
	CaseSensitive bool   `json:"case_sensitive,omitempty" jsonschema:"match case exactly instead of folding"`
}

// SearchOutput is the output schema for the search_notes tool.
type SearchOutput struct {
	Results []SearchResultOutput `json:"results"`
	Count   int                  `json:"count"`
}

// SearchResultOutput represents a single search result.
type SearchResultOutput struct {
	NoteID  string        `json:"note_id"`
	Title   string        `json:"title"`
	Tags    []string      `json:"tags,omitempty"`
	Score   float64       `json:"score"`
	Matches []MatchOutput `json:"matches,omitempty"`
}

// MatchOutput explains where a result matched.
type MatchOutput struct {
	Field   string `json:"field"`
	Excerpt string `json:"excerpt"`
}

// ValidateInput is the input schema for the validate_query tool.
type ValidateInput struct {
	Query string `json:"query" jsonschema:"the query to check for syntax errors"`
}

// ValidateOutput is the output schema for the validate_query tool.
type ValidateOutput struct {
	Valid bool   `json:"valid"`
	Error string `json:"error,omitempty"`
}

// SuggestInput is the input schema for the get_suggestions tool.
type SuggestInput struct {
	Query string `json:"query" jsonschema:"the partial query to complete"`
}

// SuggestOutput is the output schema for the get_suggestions tool.
type SuggestOutput struct {
	Suggestions []string `json:"suggestions"`
}

// GetNoteInput is the input schema for the get_note tool.
type GetNoteInput struct {
	NoteID string `json:"note_id" jsonschema:"ID of the note to fetch"`
}

// GetNoteOutput is the output schema for the get_note tool.
type GetNoteOutput struct {
	NoteID string   `json:"note_id"`
	Title  string   `json:"title"`
	Body   string   `json:"body"`
	Tags   []string `json:"tags,omitempty"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "search_notes",
		Description: "Search notes with a boolean query (AND, OR, NOT, tag:/title:/body: prefixes)",
	}, s.handleSearch)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "validate_query",
		Description: "Check a boolean query for syntax errors without running it",
	}, s.handleValidate)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "get_suggestions",
		Description: "Suggest completions for a partial boolean query",
	}, s.handleSuggest)

	if s.ports.Notes != nil {
		mcp.AddTool(s.server, &mcp.Tool{
			Name:        "get_note",
			Description: "Fetch the full content of a note by ID",
		}, s.handleGetNote)
	}
}

// handleSearch handles the search_notes tool invocation.
func (s *Server) handleSearch(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input SearchInput,
) (*mcp.CallToolResult, SearchOutput, error) {
	limit := input.Limit
	if limit <= 0 {
		limit = domain.DefaultMaxResults
	}

	opts := domain.SearchOptions{
		MaxResults:    limit,
		CaseSensitive: input.CaseSensitive,
	}
	results := s.ports.Search.Search(ctx, input.Query, opts)

	output := SearchOutput{
		Results: make([]SearchResultOutput, len(results)),
		Count:   len(results),
	}

	for i := range results {
		matches := make([]MatchOutput, len(results[i].Matches))
		for j, m := range results[i].Matches {
			matches[j] = MatchOutput{Field: string(m.Field), Excerpt: m.Excerpt}
		}
		output.Results[i] = SearchResultOutput{
			NoteID:  results[i].NoteID,
			Title:   results[i].Title,
			Tags:    results[i].Tags,
			Score:   results[i].Score,
			Matches: matches,
		}
	}

	return nil, output, nil
}

// handleValidate handles the validate_query tool invocation.
func (s *Server) handleValidate(
	_ context.Context,
	_ *mcp.CallToolRequest,
	input ValidateInput,
) (*mcp.CallToolResult, ValidateOutput, error) {
	result := s.ports.Search.ValidateQuery(input.Query)

	return nil, ValidateOutput{Valid: result.Valid, Error: result.Err}, nil
}

// handleSuggest handles the get_suggestions tool invocation.
func (s *Server) handleSuggest(
	_ context.Context,
	_ *mcp.CallToolRequest,
	input SuggestInput,
) (*mcp.CallToolResult, SuggestOutput, error) {
	return nil, SuggestOutput{
		Suggestions: s.ports.Search.GetSuggestions(input.Query),
	}, nil
}

// handleGetNote handles the get_note tool invocation.
func (s *Server) handleGetNote(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input GetNoteInput,
) (*mcp.CallToolResult, GetNoteOutput, error) {
	note, err := s.ports.Notes.GetNote(ctx, input.NoteID)
	if err != nil {
		return nil, GetNoteOutput{}, err
	}
	return nil, GetNoteOutput{
		NoteID: note.ID,
		Title:  note.Title,
		Body:   note.Body,
		Tags:   note.Tags,
	}, nil
}
