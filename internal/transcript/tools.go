package transcript

// ToolTable classifies tool names for file tracking and rendering.
// The defaults are the closed set Claude Code uses; config may add
// mutating tools (e.g. NotebookEdit) without touching the defaults.
type ToolTable struct {
	Mutating map[string]bool
	Shell    string
	Read     string
	Search   string
}

// DefaultTools returns the standard Claude Code tool classification.
func DefaultTools() ToolTable {
	return ToolTable{
		Mutating: map[string]bool{
			"Edit":      true,
			"Write":     true,
			"MultiEdit": true,
		},
		Shell:  "Bash",
		Read:   "Read",
		Search: "Grep",
	}
}

// WithMutating returns a copy of the table with extra mutating tool names.
func (t ToolTable) WithMutating(names []string) ToolTable {
	m := make(map[string]bool, len(t.Mutating)+len(names))
	for k := range t.Mutating {
		m[k] = true
	}
	for _, n := range names {
		if n != "" {
			m[n] = true
		}
	}
	t.Mutating = m
	return t
}
