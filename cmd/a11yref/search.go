package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/a11yref/a11yref/internal/navigate"
	"github.com/a11yref/a11yref/internal/search"
	"github.com/a11yref/a11yref/internal/session"
)

func (a *app) newSearchCmd() *cobra.Command {
	var (
		open    int
		asJSON  bool
		noColor bool
	)

	cmd := &cobra.Command{
		Use:   "search <query>",
		Short: "Search chapters, subsections and principles",
		Long: `Search matches the query case-insensitively against titles and descriptions, and literally
against section numbers. Results are grouped as Sections, Components & Examples and Best Practices,
each numbered with its option index. Use --go to print the destination of one result.`,
		Example: `  a11yref search form
  a11yref search 8.7 --go 0`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			assets, err := a.load()
			if err != nil {
				return err
			}

			query := strings.Join(args, " ")
			rec := &navigate.Recorder{}
			sess := session.New(assets.Catalog.Entries(), rec)
			sess.SetQuery(query)

			if cmd.Flags().Changed("go") {
				if !sess.Select(open) {
					return fmt.Errorf("no result at index %d for %q", open, query)
				}
				destination, _ := rec.Last()
				_, err := fmt.Fprintln(cmd.OutOrStdout(), destination)
				return err
			}

			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(sess.Snapshot())
			}
			return printGroups(cmd.OutOrStdout(), sess.Groups(), sess.Query(), !noColor)
		},
	}

	cmd.Flags().IntVar(&open, "go", 0, "print the destination of the result at this index")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the session snapshot as JSON")
	cmd.Flags().BoolVar(&noColor, "no-highlight", false, "do not mark matched text")
	return cmd
}

func printGroups(w io.Writer, groups search.Groups, query string, highlight bool) error {
	if groups.Empty() {
		_, err := fmt.Fprintf(w, "No matches for %q\n", strings.TrimSpace(query))
		return err
	}

	for _, bucket := range groups.Buckets() {
		if _, err := fmt.Fprintf(w, "%s\n", bucket.Label); err != nil {
			return err
		}
		for i, entry := range bucket.Entries {
			title := entry.Title
			if highlight {
				title = markMatches(entry.Title, query)
			}
			if entry.HasSectionNumber() {
				title = entry.SectionNumber + " " + title
			}
			if _, err := fmt.Fprintf(w, "  [%d] %s  %s\n", bucket.Offset+i, title, navigate.Resolve(entry)); err != nil {
				return err
			}
		}
	}
	return nil
}

// markMatches wraps every matched region in brackets.
func markMatches(text, query string) string {
	var b strings.Builder
	for _, seg := range search.Highlight(text, query) {
		if seg.Match {
			b.WriteString("[" + seg.Text + "]")
			continue
		}
		b.WriteString(seg.Text)
	}
	return b.String()
}
