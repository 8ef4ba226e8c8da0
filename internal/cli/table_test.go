package cli

import (
	"strings"
	"testing"
)

func TestTableRender(t *testing.T) {
	table := NewTable([]string{"NAME", "COLOURS"})
	table.AddRow([]string{"ColorBrewer:Set2", "8"})
	table.AddRow([]string{"Tableau:10", "10"})

	out := table.Render()
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 4 {
		t.Fatalf("got %d lines, want 4:\n%s", len(lines), out)
	}

	if !strings.HasPrefix(lines[0], "NAME") {
		t.Errorf("header = %q", lines[0])
	}
	if !strings.Contains(lines[1], "----") {
		t.Errorf("separator = %q", lines[1])
	}
	if !strings.Contains(lines[2], "ColorBrewer:Set2") || !strings.Contains(lines[2], "8") {
		t.Errorf("first row = %q", lines[2])
	}
}

func TestTableRenderEmpty(t *testing.T) {
	if out := NewTable(nil).Render(); out != "" {
		t.Errorf("Render of empty table = %q, want empty", out)
	}
}

func TestTableColumnAlignment(t *testing.T) {
	table := NewTable([]string{"A", "B"})
	table.AddRow([]string{"short", "x"})
	table.AddRow([]string{"a-much-longer-value", "y"})

	lines := strings.Split(strings.TrimRight(table.Render(), "\n"), "\n")
	// The second column starts at the same offset in every row.
	offset := strings.Index(lines[2], "x")
	if strings.Index(lines[3], "y") != offset {
		t.Errorf("columns misaligned:\n%s", table.Render())
	}
}
