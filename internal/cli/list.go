package cli

import (
	"fmt"
	"text/tabwriter"

	json "github.com/goccy/go-json"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/hmori/ghissues/internal/app"
	"github.com/hmori/ghissues/internal/domain"
	"github.com/hmori/ghissues/internal/usecase"
)

// issueOutput is the machine-readable shape of one issue, matching the
// field names gh itself uses.
type issueOutput struct {
	Number    int      `json:"number" yaml:"number"`
	Title     string   `json:"title" yaml:"title"`
	CreatedAt string   `json:"createdAt" yaml:"createdAt"`
	Labels    []string `json:"labels" yaml:"labels"`
	URL       string   `json:"url" yaml:"url"`
}

// newListCommand creates the list command for non-interactive output.
func newListCommand(c *app.Container) *cobra.Command {
	var opts struct {
		Format string
		Limit  int
	}

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List issues without the TUI",
		Long: `List the most recent issues of the current repository on stdout.

Examples:
  # Plain table
  ghissues list

  # JSON for scripting
  ghissues list --format json

  # YAML, 25 issues
  ghissues list --format yaml --limit 25`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			limit := opts.Limit
			if limit <= 0 {
				limit = c.Config.Limit
			}

			out, err := c.ListIssuesUseCase().Execute(cmd.Context(), usecase.ListIssuesInput{
				Limit: limit,
			})
			if err != nil {
				return err
			}

			switch opts.Format {
			case "table":
				return writeTable(cmd, out.Issues)
			case "json":
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(toOutput(out.Issues))
			case "yaml":
				enc := yaml.NewEncoder(cmd.OutOrStdout())
				if err := enc.Encode(toOutput(out.Issues)); err != nil {
					return err
				}
				return enc.Close()
			default:
				return fmt.Errorf("unknown format: %s (expected table, json, or yaml)", opts.Format)
			}
		},
	}

	cmd.Flags().IntVar(&opts.Limit, "limit", 0, "Maximum number of issues (defaults to the configured limit)")
	cmd.Flags().StringVar(&opts.Format, "format", "table", "Output format: table, json, or yaml")
	return cmd
}

func toOutput(issues []domain.Issue) []issueOutput {
	result := make([]issueOutput, 0, len(issues))
	for _, issue := range issues {
		result = append(result, issueOutput{
			Number:    issue.Number,
			Title:     issue.Title,
			CreatedAt: issue.CreatedAt,
			Labels:    issue.Labels,
			URL:       issue.URL,
		})
	}
	return result
}

func writeTable(cmd *cobra.Command, issues []domain.Issue) error {
	if len(issues) == 0 {
		_, err := fmt.Fprintln(cmd.OutOrStdout(), "No issues found")
		return err
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ISSUE\tTITLE\tDATE\tLABELS")
	for _, issue := range issues {
		fmt.Fprintf(w, "#%d\t%s\t%s\t%s\n",
			issue.Number,
			issue.DisplayTitle(),
			issue.DisplayDate(),
			issue.DisplayLabels(),
		)
	}
	return w.Flush()
}
