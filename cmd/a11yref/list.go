package main

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/a11yref/a11yref/internal/catalog"
	"github.com/a11yref/a11yref/internal/sorttable"
)

func entryColumns() []sorttable.Column[catalog.Entry] {
	return []sorttable.Column[catalog.Entry]{
		{Key: "id", Header: "ID", Value: func(e catalog.Entry) string { return e.ID }},
		{Key: "title", Header: "Title", Value: func(e catalog.Entry) string { return e.Title }},
		{Key: "category", Header: "Category", Value: func(e catalog.Entry) string { return string(e.Category) }},
		{Key: "path", Header: "Path", Value: func(e catalog.Entry) string { return e.Path }},
	}
}

func (a *app) newListCmd() *cobra.Command {
	var (
		category string
		desc     bool
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List catalog entries as a sortable table",
		Example: `  a11yref list --category subsection --sort title
  a11yref list --sort id --desc`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			assets, err := a.load()
			if err != nil {
				return err
			}

			rows := assets.Catalog.Entries()
			if category != "" {
				cat := catalog.Category(category)
				if !cat.Valid() {
					return fmt.Errorf("unknown category %q: use chapter, subsection or principle", category)
				}
				rows = assets.Catalog.ByCategory(cat)
			}

			t := sorttable.New(entryColumns()...)
			key := a.v.GetString("list.sort")
			if key == "" && desc {
				key = "id"
			}
			if key != "" {
				if err := t.Toggle(key); err != nil {
					return err
				}
				if desc {
					if err := t.Toggle(key); err != nil {
						return err
					}
				}
			}

			return renderTable(cmd.OutOrStdout(), t, t.Sort(rows))
		},
	}

	cmd.Flags().StringVar(&category, "category", "", "only list one category (chapter, subsection, principle)")
	cmd.Flags().String("sort", "", "column to sort by (id, title, category, path)")
	cmd.Flags().BoolVar(&desc, "desc", false, "sort descending (by id unless --sort is given)")
	_ = a.v.BindPFlag("list.sort", cmd.Flags().Lookup("sort"))
	return cmd
}

func renderTable(w io.Writer, t *sorttable.Table[catalog.Entry], rows []catalog.Entry) error {
	columns := t.Columns()

	headers := make([]string, 0, len(columns))
	for _, col := range columns {
		headers = append(headers, col.Header+sortIndicator(t.AriaSort(col.Key)))
	}

	tbl := table.New().
		Border(lipgloss.NormalBorder()).
		Headers(headers...)
	for _, entry := range rows {
		cells := make([]string, 0, len(columns))
		for _, col := range columns {
			cells = append(cells, col.Value(entry))
		}
		tbl.Row(cells...)
	}

	_, err := fmt.Fprintln(w, tbl.Render())
	return err
}

func sortIndicator(ariaSort string) string {
	switch ariaSort {
	case string(sorttable.Ascending):
		return " ▲"
	case string(sorttable.Descending):
		return " ▼"
	}
	return ""
}
