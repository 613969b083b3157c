package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/a11yref/a11yref/internal/catalog"
	"github.com/a11yref/a11yref/internal/navigate"
	"github.com/a11yref/a11yref/internal/patterns"
)

func (a *app) newShowCmd() *cobra.Command {
	var raw bool

	cmd := &cobra.Command{
		Use:   "show <id>",
		Short: "Show a catalog entry and its pattern document",
		Example: `  a11yref show 1.1
  a11yref show forms`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			assets, err := a.load()
			if err != nil {
				return err
			}

			entry, err := assets.Catalog.Get(args[0])
			if err != nil {
				if errors.Is(err, catalog.ErrNotFound) {
					return fmt.Errorf("no entry %q: try 'a11yref search'", args[0])
				}
				return err
			}

			out := cmd.OutOrStdout()
			if _, err := fmt.Fprintf(out, "%s\n%s\n%s\n", entry.Title, entry.Description, navigate.Resolve(entry)); err != nil {
				return err
			}

			switch entry.Category {
			case catalog.CategoryChapter:
				return printSubsections(out, assets.Catalog, entry)
			case catalog.CategorySubsection:
				doc, err := assets.Patterns.Get(entry.SectionNumber)
				if errors.Is(err, patterns.ErrNoDocument) {
					_, err = fmt.Fprintln(out, "\nNo pattern document yet.")
					return err
				}
				if err != nil {
					return err
				}
				if raw {
					_, err = fmt.Fprintln(out, "\n"+doc.Markdown)
					return err
				}
				return printDocument(out, doc)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&raw, "markdown", false, "print the pattern document as markdown")
	return cmd
}

func printSubsections(w io.Writer, c *catalog.Catalog, chapter catalog.Entry) error {
	for _, sub := range c.ByCategory(catalog.CategorySubsection) {
		if sub.Path != chapter.Path {
			continue
		}
		if _, err := fmt.Fprintf(w, "  %s %s\n", sub.SectionNumber, sub.Title); err != nil {
			return err
		}
	}
	return nil
}

func printDocument(w io.Writer, doc *patterns.Document) error {
	var b strings.Builder
	if doc.DesignLogic != "" {
		b.WriteString("\nDesign logic\n")
		b.WriteString(doc.DesignLogic)
		b.WriteString("\n")
	}
	if doc.BadCode != "" {
		b.WriteString("\nAvoid\n")
		b.WriteString(indent(doc.BadCode))
	}
	if doc.GoodCode != "" {
		b.WriteString("\nPrefer\n")
		b.WriteString(indent(doc.GoodCode))
	}
	_, err := io.WriteString(w, b.String())
	return err
}

func indent(code string) string {
	var b strings.Builder
	for _, line := range strings.Split(strings.TrimRight(code, "\n"), "\n") {
		b.WriteString("    ")
		b.WriteString(line)
		b.WriteString("\n")
	}
	return b.String()
}
