package output

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/olekukonko/tablewriter"

	"github.com/yourusername/center-window/internal/types"
	"github.com/yourusername/center-window/internal/window"
)

// Inspection is what the inspect command reports for one window
type Inspection struct {
	Title  string               `json:"title"`
	Result *window.CenterResult `json:"result"`
}

// PrintGeometryTable prints the three rectangles and the computed target
func PrintGeometryTable(w io.Writer, in Inspection) {
	table := tablewriter.NewWriter(w)
	table.Header("Frame", "Left", "Top", "Right", "Bottom", "Size")

	g := in.Result.Geometry
	appendRect(table, "Work area", g.WorkArea)
	appendRect(table, "Visible", g.Visible)
	appendRect(table, "Logical", g.Logical)
	appendRect(table, "Visible after", g.VisibleAt(in.Result.Target))

	table.Render()
}

// PrintWindowDetail prints the header lines for an inspected window
func PrintWindowDetail(w io.Writer, in Inspection) {
	r := in.Result
	fmt.Fprintf(w, "Handle: %s\n", r.Handle)
	fmt.Fprintf(w, "Title: %s\n", truncate(in.Title, 60))
	fmt.Fprintf(w, "Shadow padding: left %d, top %d\n", r.Padding.Left, r.Padding.Top)
	fmt.Fprintf(w, "Target: %s\n", r.Target)
	fmt.Fprintf(w, "Moved: %v\n", r.Moved)
}

// PrintJSON writes data as indented JSON
func PrintJSON(w io.Writer, data interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(data)
}

func appendRect(table *tablewriter.Table, name string, r types.Rect) {
	table.Append(
		name,
		fmt.Sprintf("%d", r.Left),
		fmt.Sprintf("%d", r.Top),
		fmt.Sprintf("%d", r.Right),
		fmt.Sprintf("%d", r.Bottom),
		fmt.Sprintf("%dx%d", r.Width(), r.Height()),
	)
}

// Helper functions

func truncate(s string, maxLen int) string {
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	return string(runes[:maxLen-3]) + "..."
}
