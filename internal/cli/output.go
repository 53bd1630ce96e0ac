package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/rshade/projectinsights/internal/pagination"
	"github.com/rshade/projectinsights/internal/projects"
	"github.com/rshade/projectinsights/internal/tui"
)

// projectsDocument is the --output json document.
type projectsDocument struct {
	Projects   []projects.Row   `json:"projects"`
	Pagination *pagination.Meta `json:"pagination,omitempty"`
}

// RenderProjects routes the projects request to the appropriate renderer
// based on the output format and the detected output mode.
func RenderProjects(ctx context.Context, cmd *cobra.Command, req projectsRequest) error {
	out := cmd.OutOrStdout()

	// Structured formats bypass the TUI completely.
	if req.format == OutputJSON || req.format == OutputNDJSON {
		list, err := fetchProjects(ctx, req.client)
		if err != nil {
			return err
		}
		return renderStructured(out, req, list)
	}

	mode := tui.DetectOutputMode(out, req.plain, req.noInteract)
	logger.Debug().Ctx(ctx).Str("mode", mode.String()).Msg("output mode detected")

	switch mode {
	case tui.OutputModeInteractive:
		return runInteractiveProjects(ctx, req)
	case tui.OutputModeStyled:
		list, err := fetchProjects(ctx, req.client)
		if err != nil {
			return err
		}
		return renderStyledProjects(out, req, list)
	case tui.OutputModePlain:
		fallthrough
	default:
		list, err := fetchProjects(ctx, req.client)
		if err != nil {
			return err
		}
		return renderPlainProjects(out, req, list)
	}
}

func renderStructured(w io.Writer, req projectsRequest, list []projects.Project) error {
	rows := projects.Arrange(list, req.params.SortField, req.params.SortOrder)

	var meta *pagination.Meta
	if !req.noPagination {
		m := pagination.NewMeta(req.params, len(rows))
		meta = &m
		rows = pagination.SlicePage(rows, m.CurrentPage, m.PageSize)
	}

	if req.format == OutputNDJSON {
		enc := json.NewEncoder(w)
		for _, r := range rows {
			if err := enc.Encode(r); err != nil {
				return fmt.Errorf("encoding project: %w", err)
			}
		}
		return nil
	}

	if rows == nil {
		rows = []projects.Row{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(projectsDocument{Projects: rows, Pagination: meta}); err != nil {
		return fmt.Errorf("encoding projects: %w", err)
	}
	return nil
}

func renderStyledProjects(w io.Writer, req projectsRequest, list []projects.Project) error {
	rows := projects.Arrange(list, req.params.SortField, req.params.SortOrder)
	t, err := projects.NewTable(rows, req.wide, req.tableOptions()...)
	if err != nil {
		return err
	}
	t.GoToPage(req.params.Page)

	_, err = fmt.Fprintf(w, "%s\n%s\n", tui.TitleStyle.Render(projects.Title), t.Render())
	return err
}

func renderPlainProjects(w io.Writer, req projectsRequest, list []projects.Project) error {
	rows := projects.Arrange(list, req.params.SortField, req.params.SortOrder)
	t, err := projects.NewTable(rows, req.wide, req.tableOptions()...)
	if err != nil {
		return err
	}
	t.GoToPage(req.params.Page)

	if _, err := fmt.Fprintf(w, "%s\n\n", projects.Title); err != nil {
		return err
	}
	return t.RenderPlain(w)
}

func runInteractiveProjects(ctx context.Context, req projectsRequest) error {
	fetch := func(ctx context.Context) ([]projects.Project, error) {
		return fetchProjects(ctx, req.client)
	}
	build := func(list []projects.Project) (tea.Model, error) {
		view, err := projects.NewTableView(list, req.params.SortField, req.params.SortOrder,
			req.wide, req.tableOptions()...)
		if err != nil {
			return nil, err
		}
		view.Table().GoToPage(req.params.Page)
		return view, nil
	}

	loader := tui.NewLoaderModel(ctx, projects.Title, fetch, build)
	defer loader.Close()

	p := tea.NewProgram(loader, tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("failed to run interactive TUI: %w", err)
	}

	// The error panel was shown in the view; report it through the exit code too.
	return loader.Err()
}
