package commands

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/fivetwenty-io/spacetraders/internal/constants"
	"github.com/fivetwenty-io/spacetraders/internal/logging"
	"github.com/fivetwenty-io/spacetraders/pkg/spacetraders"
	"github.com/fivetwenty-io/spacetraders/pkg/stclient"
	"github.com/olekukonko/tablewriter"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Common string constants used throughout the commands package.
const (
	NotAvailable = "N/A"
	Yes          = "yes"
	No           = "no"
	Masked       = "***"

	defaultJSONIndent = 2
	timeLayout        = "2006-01-02 15:04:05"
)

// Common static errors used throughout the commands package.
var (
	ErrInvalidUnits  = errors.New("units must be a positive integer")
	ErrNoAgentForAPI = errors.New("no agent stored for API")
)

// StandardJSONRenderer writes data as indented JSON.
func StandardJSONRenderer[T any](w io.Writer, data T) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")

	err := encoder.Encode(data)
	if err != nil {
		return fmt.Errorf("encoding data to JSON: %w", err)
	}

	return nil
}

// StandardYAMLRenderer writes data as YAML.
func StandardYAMLRenderer[T any](w io.Writer, data T) error {
	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(defaultJSONIndent)

	err := encoder.Encode(data)
	if err != nil {
		return fmt.Errorf("encoding data to YAML: %w", err)
	}

	return encoder.Close() //nolint:wrapcheck // flush only
}

// renderOutput writes data in the configured output format, using table for
// the table format.
func renderOutput[T any](w io.Writer, data T, table func(io.Writer, T) error) error {
	switch output := viper.GetString("output"); output {
	case constants.FormatJSON:
		return StandardJSONRenderer(w, data)
	case constants.FormatYAML:
		return StandardYAMLRenderer(w, data)
	case constants.FormatTable, "":
		return table(w, data)
	default:
		return fmt.Errorf("%w: %s", constants.ErrUnsupportedFormat, output)
	}
}

// property is one row of a Property/Value table.
type property struct {
	name  string
	value string
}

// renderProperties writes a two-column Property/Value table.
func renderProperties(w io.Writer, rows []property) error {
	table := tablewriter.NewWriter(w)
	table.Header("Property", "Value")

	for _, row := range rows {
		_ = table.Append(row.name, row.value)
	}

	return table.Render() //nolint:wrapcheck // rendering to the command output
}

// DescribeError formats an error for the terminal.
func DescribeError(err error) string {
	if domainErr, ok := spacetraders.AsDomainError(err); ok {
		msg := fmt.Sprintf("Error: %s\n  code:   %d\n  status: %d", domainErr.Message, domainErr.Code, domainErr.Status)
		for key, value := range domainErr.Data {
			msg += fmt.Sprintf("\n  %s: %v", key, value)
		}

		return msg
	}

	if spacetraders.IsNotAuthenticated(err) {
		return fmt.Sprintf("Error: %v\nUse 'stcli login' or 'stcli register' to configure an agent token.", err)
	}

	return fmt.Sprintf("Error: %v", err)
}

// newLogger returns a debug console logger when --verbose is set.
func newLogger(w io.Writer) spacetraders.Logger {
	if !viper.GetBool("verbose") {
		return nil
	}

	return logging.New(logging.Options{
		Level:   zerolog.DebugLevel,
		Console: true,
		Output:  w,
	})
}

// clientConfig builds the library configuration for the API in config.
func clientConfig(cmd *cobra.Command, config *Config, token string) *spacetraders.Config {
	return &spacetraders.Config{
		BaseURL: resolveBaseURL(config),
		Token:   token,
		Debug:   viper.GetBool("verbose"),
		Logger:  newLogger(cmd.ErrOrStderr()),
	}
}

// createClient creates a client for the configured API. It carries the
// configured agent token when there is one.
func createClient(cmd *cobra.Command) (spacetraders.Client, error) {
	config, err := loadConfig()
	if err != nil {
		return nil, err
	}

	client, err := stclient.New(commandContext(cmd), clientConfig(cmd, config, resolveToken(config)))
	if err != nil {
		return nil, fmt.Errorf("failed to create client: %w", err)
	}

	return client, nil
}

// createAgentClient creates a client and fails early when no agent token
// is configured.
func createAgentClient(cmd *cobra.Command) (spacetraders.Client, error) {
	config, err := loadConfig()
	if err != nil {
		return nil, err
	}

	token := resolveToken(config)
	if token == "" {
		return nil, constants.ErrNoTokenConfigured
	}

	client, err := stclient.New(commandContext(cmd), clientConfig(cmd, config, token))
	if err != nil {
		return nil, fmt.Errorf("failed to create client: %w", err)
	}

	return client, nil
}

// commandContext returns the command's context, or a background context for
// commands executed without one.
func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}

	return context.Background()
}

// pageFlags are the pagination flags shared by list commands.
type pageFlags struct {
	page  int
	limit int
	all   bool
}

func (f *pageFlags) register(cmd *cobra.Command) {
	cmd.Flags().IntVar(&f.page, "page", spacetraders.DefaultPage, "page number")
	cmd.Flags().IntVar(&f.limit, "limit", spacetraders.DefaultPageLimit, "results per page")
	cmd.Flags().BoolVar(&f.all, "all", false, "fetch all pages")
}

func (f *pageFlags) params() *spacetraders.PageParams {
	return spacetraders.NewPageParams(f.page, f.limit)
}

// listResult is a list rendered with its pagination footer.
type listResult[T any] struct {
	Items []T                `json:"items"          yaml:"items"`
	Meta  *spacetraders.Meta `json:"meta,omitempty" yaml:"meta,omitempty"`
}

// fetchList runs list for one page, or all of them with --all.
func fetchList[T any](
	ctx context.Context,
	flags *pageFlags,
	list func(context.Context, *spacetraders.PageParams) (*spacetraders.Page[T], error),
	listAll func(context.Context) ([]T, error),
) (*listResult[T], error) {
	if flags.all {
		items, err := listAll(ctx)
		if err != nil {
			return nil, err
		}

		return &listResult[T]{Items: items}, nil
	}

	page, err := list(ctx, flags.params())
	if err != nil {
		return nil, err
	}

	return &listResult[T]{Items: page.Items, Meta: &page.Meta}, nil
}

func renderPageFooter(w io.Writer, meta *spacetraders.Meta) {
	if meta == nil || meta.Limit == 0 {
		return
	}

	pages := (meta.Total + meta.Limit - 1) / meta.Limit
	_, _ = fmt.Fprintf(w, "\nPage %d of %d (%d total). Use --page or --all to see more.\n", meta.Page, pages, meta.Total)
}

func parseUnits(value string) (int, error) {
	units, err := strconv.Atoi(value)
	if err != nil || units <= 0 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidUnits, value)
	}

	return units, nil
}

func formatTime(t *time.Time) string {
	if t == nil || t.IsZero() {
		return NotAvailable
	}

	return t.Local().Format(timeLayout)
}

func formatBool(b bool) string {
	if b {
		return Yes
	}

	return No
}

func truncate(s string, limit int) string {
	s = strings.ReplaceAll(s, "\n", " ")
	if len(s) <= limit {
		return s
	}

	return s[:limit-3] + "..."
}

func maskToken(token string) string {
	const visible = 8
	if len(token) <= visible {
		return Masked
	}

	return token[:visible] + Masked
}
