package cli

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/rshade/projectinsights/internal/config"
	"github.com/rshade/projectinsights/internal/pagination"
	"github.com/rshade/projectinsights/internal/projects"
	"github.com/rshade/projectinsights/internal/source"
	"github.com/rshade/projectinsights/internal/tui/table"
)

// Output formats accepted by --output.
const (
	OutputTable  = "table"
	OutputJSON   = "json"
	OutputNDJSON = "ndjson"
)

// ErrUnsupportedOutputFormat is returned for an unknown --output value.
var ErrUnsupportedOutputFormat = errors.New("unsupported output format")

// projectsFlags holds the flag values of the projects command.
type projectsFlags struct {
	url             string
	timeout         time.Duration
	page            int
	pageSize        int
	maxVisiblePages int
	sort            string
	output          string
	plain           bool
	noInteractive   bool
	noPagination    bool
	wide            bool
}

// NewProjectsCmd creates the projects command.
func NewProjectsCmd() *cobra.Command {
	var flags projectsFlags

	cmd := &cobra.Command{
		Use:   "projects",
		Short: "Show crowdfunding projects in a paginated table",
		Long: `Fetches the project list once and shows it in a paginated table.

In a terminal the table is interactive:
  ←/h, →/l   previous / next page
  1-9        jump to a page button
  +/-        change the page size
  s, o       change the sort field / order
  q          quit

Piped output is plain text. --output json and --output ndjson print the
selected page (or every project with --no-pagination) as structured data.`,
		Example: `  # Browse interactively
  projectinsights projects

  # Third page of ten, as JSON
  projectinsights projects --page 3 --page-size 10 --output json

  # Everything, highest funding first, as NDJSON
  projectinsights projects --no-pagination --sort percentage:desc --output ndjson

  # Static table including project titles
  projectinsights projects --no-interactive --wide`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runProjects(cmd, flags)
		},
	}

	f := cmd.Flags()
	f.StringVar(&flags.url, "url", "", "data source URL (default from config source.url)")
	f.DurationVar(&flags.timeout, "timeout", 0, "fetch timeout, 0 disables (default from config source.timeout)")
	f.IntVar(&flags.page, "page", pagination.DefaultPage, "page to show first")
	f.IntVar(&flags.pageSize, "page-size", 0, "projects per page (default from config table.page_size)")
	f.IntVar(&flags.maxVisiblePages, "max-visible-pages", 0,
		"page buttons shown by the pagination control (default from config table.max_visible_pages)")
	f.StringVar(&flags.sort, "sort", "",
		fmt.Sprintf("sort as field[:asc|desc]; fields: %s",
			strings.Join(projects.NewSorter().GetValidFields(), ", ")))
	f.StringVar(&flags.output, "output", "", "output format: table, json or ndjson (default from config)")
	f.BoolVar(&flags.plain, "plain", false, "plain text output without colors")
	f.BoolVar(&flags.noInteractive, "no-interactive", false, "print a static table instead of the interactive view")
	f.BoolVar(&flags.noPagination, "no-pagination", false, "show every project on one page")
	f.BoolVar(&flags.wide, "wide", false, "add the project title column")

	return cmd
}

// projectsRequest is the resolved projects invocation.
type projectsRequest struct {
	params       pagination.Params
	options      pagination.PageSizeOptions
	format       string
	showControl  bool
	noPagination bool
	wide         bool
	plain        bool
	noInteract   bool
	client       *source.Client
}

func runProjects(cmd *cobra.Command, flags projectsFlags) error {
	req, err := resolveProjectsRequest(cmd, flags)
	if err != nil {
		return err
	}

	logger.Debug().Ctx(cmd.Context()).
		Str("url", req.client.URL()).
		Str("format", req.format).
		Int("page", req.params.Page).
		Int("page_size", req.params.PageSize).
		Str("sort", req.params.SortField).
		Msg("projects requested")

	return RenderProjects(cmd.Context(), cmd, req)
}

func resolveProjectsRequest(cmd *cobra.Command, flags projectsFlags) (projectsRequest, error) {
	cfg := config.GetGlobalConfig()

	params := pagination.NewParams()
	params.Page = flags.page
	params.PageSize = cfg.Table.PageSize
	if cmd.Flags().Changed("page-size") {
		params.PageSize = flags.pageSize
	}
	params.MaxVisiblePages = cfg.Table.MaxVisiblePages
	if cmd.Flags().Changed("max-visible-pages") {
		params.MaxVisiblePages = flags.maxVisiblePages
	}

	field, order, err := pagination.ParseSort(flags.sort)
	if err != nil {
		return projectsRequest{}, err
	}
	if field != "" {
		sorter := projects.NewSorter()
		if !sorter.IsValidField(field) {
			return projectsRequest{}, fmt.Errorf("%w: %q (valid: %s)",
				pagination.ErrInvalidSortField, field, strings.Join(sorter.GetValidFields(), ", "))
		}
	}
	params.SortField = field
	params.SortOrder = order

	options := cfg.Table.PageSizeOptions
	if flags.noPagination {
		// Every project lands on one page; the size policy does not apply.
		options = nil
	}
	if err := params.Validate(options); err != nil {
		return projectsRequest{}, err
	}

	format := config.GetOutputFormat(flags.output)
	if !slices.Contains([]string{OutputTable, OutputJSON, OutputNDJSON}, format) {
		return projectsRequest{}, fmt.Errorf("%w: %s", ErrUnsupportedOutputFormat, format)
	}

	url := cfg.Source.URL
	if flags.url != "" {
		url = flags.url
	}
	timeout := cfg.Source.Timeout
	if cmd.Flags().Changed("timeout") {
		timeout = flags.timeout
	}
	if timeout < 0 {
		return projectsRequest{}, config.ErrNegativeTimeout
	}

	return projectsRequest{
		params:       *params,
		options:      cfg.Table.PageSizeOptions,
		format:       format,
		showControl:  cfg.Table.ShowPagination && !flags.noPagination,
		noPagination: flags.noPagination,
		wide:         flags.wide,
		plain:        flags.plain,
		noInteract:   flags.noInteractive,
		client: source.NewClient(url, timeout,
			source.WithUserAgent("projectinsights/"+cmd.Root().Version)),
	}, nil
}

// fetchProjects retrieves the project list. Every failure is reported as
// source.ErrFetchFailed.
func fetchProjects(ctx context.Context, c *source.Client) ([]projects.Project, error) {
	list, err := source.FetchList[projects.Project](ctx, c)
	if err != nil {
		if errors.Is(err, source.ErrFetchFailed) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %w", source.ErrFetchFailed, err)
	}
	return list, nil
}

// tableOptions returns the table configuration for the request.
func (r projectsRequest) tableOptions() []table.Option {
	options := r.options
	if r.noPagination {
		options = nil
	}
	return []table.Option{
		table.WithPageSize(r.params.PageSize),
		table.WithPageSizeOptions(options),
		table.WithMaxVisiblePages(r.params.MaxVisiblePages),
		table.WithPagination(r.showControl),
	}
}
