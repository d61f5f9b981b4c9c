package render

import (
	"fmt"
	"sort"
	"strings"

	"github.com/johns/sessmd/internal/transcript"
)

// assistantTextLimit and shellCmdLimit are render-time truncations.
// User text is already truncated when the event is built.
const (
	assistantTextLimit = 200
	shellCmdLimit      = 80
)

// ReportConfig holds the fixed header strings of the report.
type ReportConfig struct {
	Title    string `toml:"title"`
	Date     string `toml:"date"`
	Overview string `toml:"overview"`
}

// Markdown renders the full session report: header, overview, timeline,
// statistics, and modified files. An empty session collapses to a single
// line. Output is deterministic for a given session.
func Markdown(s *transcript.Session, rc ReportConfig, tools transcript.ToolTable) string {
	if len(s.Events) == 0 {
		return "No events found in session."
	}

	var b strings.Builder

	start := s.Events[0].Time
	end := s.Events[len(s.Events)-1].Time

	fmt.Fprintf(&b, "# %s\n\n", rc.Title)
	fmt.Fprintf(&b, "**Date**: %s\n", rc.Date)
	fmt.Fprintf(&b, "**Duration**: %s - %s\n\n", start, end)
	b.WriteString("## Session Overview\n\n")
	fmt.Fprintf(&b, "%s\n\n", rc.Overview)
	b.WriteString("## Timeline\n\n")

	for _, e := range s.Events {
		switch e.Kind {
		case transcript.KindUser:
			fmt.Fprintf(&b, "\n### [%s] User\n> %s\n", e.Time, e.Text)

		case transcript.KindAssistant:
			fmt.Fprintf(&b, "\n**Claude**: %s\n", transcript.Truncate(e.Text, assistantTextLimit))

		case transcript.KindTool:
			writeToolLine(&b, e, tools)
		}
	}

	b.WriteString("\n## Session Statistics\n\n")
	fmt.Fprintf(&b, "- **Total interactions**: %d\n", s.UserMessages())
	fmt.Fprintf(&b, "- **Files modified**: %d\n", len(s.FilesModified))
	b.WriteString("\n### Tool Usage:\n")
	for _, tc := range sortedCounts(s.ToolCounts) {
		fmt.Fprintf(&b, "- %s: %d times\n", tc.name, tc.count)
	}

	if len(s.FilesModified) > 0 {
		b.WriteString("\n## Files Modified\n\n")
		var paths []string
		for p := range s.FilesModified {
			paths = append(paths, p)
		}
		sort.Strings(paths)
		for _, p := range paths {
			fmt.Fprintf(&b, "- `%s`\n", p)
		}
	}

	return b.String()
}

// writeToolLine renders the four specially-cased tools. Other tool names
// produce no timeline line; they still count toward usage statistics.
func writeToolLine(b *strings.Builder, e transcript.Event, tools transcript.ToolTable) {
	switch {
	case e.Tool == tools.Shell:
		cmd := stringField(e.Details, "command")
		fmt.Fprintf(b, "- 🔧 Executed: `%s`\n", transcript.Truncate(cmd, shellCmdLimit))

	case tools.Mutating[e.Tool]:
		fmt.Fprintf(b, "- 📝 Modified: `%s`\n", lastSegment(stringField(e.Details, "file_path")))

	case e.Tool == tools.Read:
		fmt.Fprintf(b, "- 👁️ Read: `%s`\n", lastSegment(stringField(e.Details, "file_path")))

	case e.Tool == tools.Search:
		fmt.Fprintf(b, "- 🔍 Searched for: `%s`\n", stringField(e.Details, "pattern"))
	}
}

type toolCount struct {
	name  string
	count int
}

// sortedCounts orders tool usage by descending count, ascending name on
// ties. Go map iteration is randomized, so the name tiebreak keeps the
// report stable across runs.
func sortedCounts(counts map[string]int) []toolCount {
	out := make([]toolCount, 0, len(counts))
	for name, count := range counts {
		out = append(out, toolCount{name, count})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].count != out[j].count {
			return out[i].count > out[j].count
		}
		return out[i].name < out[j].name
	})
	return out
}

func stringField(details map[string]interface{}, key string) string {
	s, _ := details[key].(string)
	return s
}

// lastSegment returns the final /-separated path segment. Plain split,
// not filepath.Base: a trailing slash yields "".
func lastSegment(p string) string {
	parts := strings.Split(p, "/")
	return parts[len(parts)-1]
}
