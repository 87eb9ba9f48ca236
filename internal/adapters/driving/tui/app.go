// Package tui provides the interactive terminal UI for zettelview.
//
// The app is a single search screen: a query input on top, live
// results underneath, and a status line that shows syntax errors and
// completions while typing.
package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/blaster151/zettelview-sub001/internal/core/domain"
	"github.com/blaster151/zettelview-sub001/internal/core/ports/driving"
)

// maxVisibleResults caps how many results are rendered per screen.
const maxVisibleResults = 10

// maxVisibleSuggestions caps the completions shown in the status line.
const maxVisibleSuggestions = 5

// App is the bubbletea model for the search screen.
type App struct {
	styles *Styles
	input  textinput.Model

	search driving.SearchService
	ctx    context.Context
	opts   domain.SearchOptions

	results     []domain.SearchResult
	selected    int
	searched    bool
	queryErr    string
	suggestions []string

	width  int
	height int
}

// NewApp creates the TUI app over the given search service.
func NewApp(search driving.SearchService) (*App, error) {
	if search == nil {
		return nil, errors.New("tui: search service is required")
	}

	input := textinput.New()
	input.Placeholder = "tag:work AND meeting"
	input.Prompt = "query> "
	input.Focus()

	return &App{
		styles: DefaultStyles(),
		input:  input,
		search: search,
		ctx:    context.Background(),
		opts:   domain.DefaultSearchOptions(),
		width:  80,
		height: 24,
	}, nil
}

// WithContext sets the context used for searches.
func (a *App) WithContext(ctx context.Context) *App {
	a.ctx = ctx
	return a
}

// WithOptions sets the search options, overriding the defaults.
func (a *App) WithOptions(opts domain.SearchOptions) *App {
	a.opts = opts
	return a
}

// Init implements tea.Model.
func (a *App) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		return a, nil

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return a, tea.Quit
		case tea.KeyEnter:
			a.runSearch()
			return a, nil
		case tea.KeyDown:
			a.moveSelection(1)
			return a, nil
		case tea.KeyUp:
			a.moveSelection(-1)
			return a, nil
		case tea.KeyTab:
			a.acceptSuggestion()
			return a, nil
		}
	}

	var cmd tea.Cmd
	a.input, cmd = a.input.Update(msg)
	a.refreshQueryState()
	return a, cmd
}

// runSearch executes the current query and resets the selection.
func (a *App) runSearch() {
	query := a.input.Value()
	a.results = a.search.Search(a.ctx, query, a.opts)
	a.selected = 0
	a.searched = true
}

// refreshQueryState revalidates the query, refreshes completions and
// re-runs the search after every keystroke. Corpora are small enough
// that a synchronous search per keystroke stays responsive.
func (a *App) refreshQueryState() {
	query := a.input.Value()

	a.queryErr = ""
	if query != "" {
		if v := a.search.ValidateQuery(query); !v.Valid {
			a.queryErr = v.Err
		}
	}

	a.suggestions = a.search.GetSuggestions(query)
	if len(a.suggestions) > maxVisibleSuggestions {
		a.suggestions = a.suggestions[:maxVisibleSuggestions]
	}

	if query != "" && a.queryErr == "" {
		a.runSearch()
	}
}

// acceptSuggestion replaces the trailing word with the first
// completion.
func (a *App) acceptSuggestion() {
	if len(a.suggestions) == 0 {
		return
	}
	value := a.input.Value()
	cut := strings.LastIndexAny(value, " \t()")
	a.input.SetValue(value[:cut+1] + a.suggestions[0])
	a.input.CursorEnd()
	a.refreshQueryState()
}

func (a *App) moveSelection(delta int) {
	if len(a.results) == 0 {
		return
	}
	a.selected += delta
	if a.selected < 0 {
		a.selected = 0
	}
	if a.selected >= len(a.results) {
		a.selected = len(a.results) - 1
	}
}

// View implements tea.Model.
func (a *App) View() string {
	var b strings.Builder

	b.WriteString(a.styles.Title.Render("zettelview"))
	b.WriteString("\n\n")
	b.WriteString(a.styles.Input.Render(a.input.View()))
	b.WriteString("\n")
	b.WriteString(a.statusLine())
	b.WriteString("\n\n")
	b.WriteString(a.resultsView())
	b.WriteString("\n")
	b.WriteString(a.styles.Help.Render("enter search · tab complete · ↑/↓ select · esc quit"))

	return b.String()
}

// statusLine shows the first syntax error, or completions while the
// query is still being typed.
func (a *App) statusLine() string {
	if a.queryErr != "" {
		return a.styles.Error.Render("✗ " + a.queryErr)
	}
	if len(a.suggestions) > 0 {
		return a.styles.Suggestion.Render("→ " + strings.Join(a.suggestions, "  "))
	}
	return ""
}

func (a *App) resultsView() string {
	if !a.searched {
		return a.styles.Help.Render("Type a query to search.")
	}
	if len(a.results) == 0 {
		return a.styles.Help.Render("No results.")
	}

	var b strings.Builder
	visible := a.results
	if len(visible) > maxVisibleResults {
		visible = visible[:maxVisibleResults]
	}

	for i := range visible {
		r := &visible[i]

		line := fmt.Sprintf("%d. %s", i+1, r.Title)
		if i == a.selected {
			b.WriteString(a.styles.Selected.Render(line))
		} else {
			b.WriteString(a.styles.Result.Render(line))
		}
		b.WriteString("\n")

		if len(r.Tags) > 0 {
			b.WriteString("   ")
			b.WriteString(a.styles.Tags.Render(strings.Join(r.Tags, ", ")))
			b.WriteString("\n")
		}
		if i == a.selected {
			for _, m := range r.Matches {
				b.WriteString("   ")
				b.WriteString(a.styles.Excerpt.Render(fmt.Sprintf("%s: %s", m.Field, m.Excerpt)))
				b.WriteString("\n")
			}
		}
	}

	if len(a.results) > maxVisibleResults {
		b.WriteString(a.styles.Help.Render(
			fmt.Sprintf("…and %d more", len(a.results)-maxVisibleResults)))
		b.WriteString("\n")
	}
	return b.String()
}
