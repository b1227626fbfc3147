package output

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/spachava753/plugingroups/internal/models"
)

// WriteGroup writes the group document to path, replacing any previous content.
func WriteGroup(path string, group models.PluginGroup) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating output file: %w", err)
	}

	if err := EncodeGroup(f, group); err != nil {
		f.Close()
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return f.Close()
}

// EncodeGroup writes group as indented JSON.
func EncodeGroup(w io.Writer, group models.PluginGroup) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(group)
}

// PrintMissing lists ids that are not in the update center, one per line. It
// prints nothing when ids is empty. ids should already be sorted.
func PrintMissing(w io.Writer, ids []string) {
	if len(ids) == 0 {
		return
	}
	fmt.Fprintln(w, "The following plugin ids are not in the update center:")
	for _, id := range ids {
		fmt.Fprintf(w, "\t%s\n", id)
	}
}

// PrintSummary renders the group's repositories as a table.
func PrintSummary(w io.Writer, group models.PluginGroup) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetTitle(group.Name)
	t.AppendHeader(table.Row{"Organization", "Repository", "Branch", "Path"})
	for _, repo := range group.Repositories() {
		t.AppendRow(table.Row{repo.Organization, repo.Name, repo.Branch, repo.Path})
	}
	t.AppendFooter(table.Row{"", "", "Total", group.Count()})
	t.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, AutoMerge: true},
	})
	style := table.StyleLight
	style.Options.DrawBorder = false
	t.SetStyle(style)
	t.Render()
}
