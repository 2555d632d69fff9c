package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/Shan533/Github-Issue-Digest-Bot/internal/browser"
	"github.com/Shan533/Github-Issue-Digest-Bot/internal/config"
	"github.com/Shan533/Github-Issue-Digest-Bot/internal/digest"
	"github.com/Shan533/Github-Issue-Digest-Bot/internal/render"
	"github.com/Shan533/Github-Issue-Digest-Bot/internal/search"
)

func runDigest(cmd *cobra.Command, args []string) error {
	d, err := collect(cmd.Context())
	if err != nil {
		return err
	}

	html, err := render.HTML(d)
	if err != nil {
		return err
	}
	if err := os.WriteFile(flagOut, []byte(html), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", flagOut, err)
	}

	fmt.Printf("Wrote %s with %d issues and %d PRs.\n", flagOut, len(d.Issues()), len(d.PullRequests()))

	if flagOpen {
		if err := browser.Open(flagOut); err != nil {
			fmt.Fprintf(os.Stderr, "  [warn] opening browser: %v\n", err)
		}
	}
	return nil
}

// collect runs the fetch-filter-rank pipeline: load config, fetch issue and
// PR queries against their budgets, then filter and order the merged items.
// The token check happens before any network call.
func collect(ctx context.Context) (digest.Digest, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return digest.Digest{}, fmt.Errorf("loading config: %w", err)
	}

	token := config.Token()
	if token == "" {
		return digest.Digest{}, fmt.Errorf("GH_TOKEN is required")
	}

	client := search.NewClient(token, cfg.APIBase)

	var items []search.Item
	if len(cfg.IssueQueries) > 0 {
		issues, err := client.Search(ctx, queries(cfg.IssueQueries, search.KindIssue), cfg.GetMaxIssues())
		if err != nil {
			return digest.Digest{}, fmt.Errorf("fetching issues: %w", err)
		}
		items = append(items, issues...)
	}
	if len(cfg.PRQueries) > 0 {
		prs, err := client.Search(ctx, queries(cfg.PRQueries, search.KindPullRequest), cfg.GetMaxPRs())
		if err != nil {
			return digest.Digest{}, fmt.Errorf("fetching pull requests: %w", err)
		}
		items = append(items, prs...)
	}

	policy := digest.Policy{
		PriorityLabels:   cfg.PriorityLabels,
		ExcludeLabels:    cfg.ExcludeLabels,
		ExcludeAssignees: cfg.ExcludeAssignees,
	}
	return digest.Build(items, policy, time.Now()), nil
}

func queries(exprs []string, kind search.Kind) []search.Query {
	qs := make([]search.Query, 0, len(exprs))
	for _, e := range exprs {
		qs = append(qs, search.Query{Expr: e, Kind: kind})
	}
	return qs
}
