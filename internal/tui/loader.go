package tui

import (
	"context"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"github.com/rshade/projectinsights/internal/logging"
)

// Keyboard keys handled by the loader.
const (
	keyQuit  = "q"
	keyCtrlC = "ctrl+c"
	keyEsc   = "esc"
)

// FetchFunc loads the full record list. It must honor ctx cancellation.
type FetchFunc[T any] func(ctx context.Context) ([]T, error)

// BuildFunc turns the fetched records into the model shown on success.
type BuildFunc[T any] func(items []T) (tea.Model, error)

// loadedMsg carries the outcome of one fetch, tagged with its fetch id.
type loadedMsg[T any] struct {
	id    string
	items []T
	err   error
}

// LoaderModel fetches a record list once and shows a spinner while loading,
// the built content on success, or an error panel on failure. Success and
// error are terminal.
type LoaderModel[T any] struct {
	ctx     context.Context
	cancel  context.CancelFunc
	fetch   FetchFunc[T]
	build   BuildFunc[T]
	fetchID string

	state   ViewState
	title   string
	started bool
	closed  bool

	loading *LoadingState
	content tea.Model
	count   int
	err     error

	width  int
	height int
	logger zerolog.Logger
}

// NewLoaderModel creates a loader. The fetch runs under a context derived
// from ctx that Close cancels.
func NewLoaderModel[T any](ctx context.Context, title string, fetch FetchFunc[T], build BuildFunc[T]) *LoaderModel[T] {
	fetchCtx, cancel := context.WithCancel(ctx)
	return &LoaderModel[T]{
		ctx:     fetchCtx,
		cancel:  cancel,
		fetch:   fetch,
		build:   build,
		fetchID: logging.NewTraceID(),
		state:   ViewStateLoading,
		title:   title,
		loading: NewLoadingState().WithMessage("Fetching data..."),
		width:   defaultWidth,
		logger:  logging.ComponentLogger(*logging.FromContext(ctx), "tui"),
	}
}

// State returns the current phase.
func (m *LoaderModel[T]) State() ViewState {
	return m.state
}

// Err returns the fetch or build error, if any.
func (m *LoaderModel[T]) Err() error {
	return m.err
}

// Content returns the model built from the fetched records.
func (m *LoaderModel[T]) Content() tea.Model {
	return m.content
}

// FetchID identifies this loader's fetch.
func (m *LoaderModel[T]) FetchID() string {
	return m.fetchID
}

// Close cancels the in-flight fetch. Results that arrive afterwards are
// ignored. Close is safe to call more than once.
func (m *LoaderModel[T]) Close() {
	if m.closed {
		return
	}
	m.closed = true
	m.cancel()
}

// Closed reports whether Close was called.
func (m *LoaderModel[T]) Closed() bool {
	return m.closed
}

// Init starts the spinner and issues the fetch. Only the first call fetches.
func (m *LoaderModel[T]) Init() tea.Cmd {
	if m.started || m.closed {
		return nil
	}
	m.started = true
	return tea.Batch(m.loading.Init(), m.fetchCmd())
}

func (m *LoaderModel[T]) fetchCmd() tea.Cmd {
	ctx, id, fetch := m.ctx, m.fetchID, m.fetch
	logger := m.logger
	return func() tea.Msg {
		logger.Debug().Str("fetch_id", id).Msg("fetch started")
		items, err := fetch(ctx)
		return loadedMsg[T]{id: id, items: items, err: err}
	}
}

// Update handles fetch results, quit keys and window sizes, and forwards
// everything else to the content once loaded.
func (m *LoaderModel[T]) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case loadedMsg[T]:
		return m.handleLoaded(msg)

	case tea.KeyMsg:
		switch msg.String() {
		case keyQuit, keyCtrlC, keyEsc:
			m.Close()
			m.state = ViewStateQuitting
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	}

	switch m.state {
	case ViewStateLoading:
		return m, m.loading.Update(msg)
	case ViewStateList:
		var cmd tea.Cmd
		m.content, cmd = m.content.Update(msg)
		return m, cmd
	case ViewStateError, ViewStateQuitting:
		return m, nil
	default:
		return m, nil
	}
}

func (m *LoaderModel[T]) handleLoaded(msg loadedMsg[T]) (tea.Model, tea.Cmd) {
	if m.closed || msg.id != m.fetchID || m.state != ViewStateLoading {
		m.logger.Debug().
			Str("fetch_id", msg.id).
			Bool("closed", m.closed).
			Msg("ignoring stale fetch result")
		return m, nil
	}

	if msg.err != nil {
		m.fail(msg.err)
		return m, nil
	}

	content, err := m.build(msg.items)
	if err != nil {
		m.fail(err)
		return m, nil
	}

	m.logger.Debug().
		Str("fetch_id", msg.id).
		Int("count", len(msg.items)).
		Msg("fetch complete")

	m.state = ViewStateList
	m.count = len(msg.items)
	m.content = content

	var cmd tea.Cmd
	if m.width > 0 && m.height > 0 {
		m.content, cmd = m.content.Update(tea.WindowSizeMsg{Width: m.width, Height: m.height})
	}
	return m, tea.Batch(m.content.Init(), cmd)
}

func (m *LoaderModel[T]) fail(err error) {
	m.logger.Error().Err(err).Str("fetch_id", m.fetchID).Msg("fetch failed")
	m.state = ViewStateError
	m.err = err
}

// View implements tea.Model.
func (m *LoaderModel[T]) View() string {
	var b strings.Builder
	if m.title != "" {
		b.WriteString(TitleStyle.Render(m.title))
		b.WriteString("\n")
	}

	switch m.state {
	case ViewStateLoading:
		b.WriteString(RenderLoading(m.loading))
	case ViewStateList:
		b.WriteString(m.content.View())
		b.WriteString("\n")
		b.WriteString(HelpStyle.Render("q: quit"))
	case ViewStateError:
		b.WriteString(RenderError(m.err))
		b.WriteString("\n")
		b.WriteString(HelpStyle.Render("q: quit"))
	case ViewStateQuitting:
		return ""
	}
	return b.String()
}
