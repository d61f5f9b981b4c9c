package transcript

// Entry is one decoded line of a Claude Code JSONL transcript. The
// timestamp stays a raw string: it is parsed only when an entry emits an
// event, so a malformed one surfaces as an error instead of a zero time.
type Entry struct {
	Type      string   `json:"type"`
	Timestamp string   `json:"timestamp"`
	Message   *Message `json:"message,omitempty"`
}

// Message is the inner message object on user/assistant entries.
type Message struct {
	Role    string      `json:"role"`
	Content interface{} `json:"content"` // string or []ContentBlock
}

// ContentBlock represents one block in a content array.
type ContentBlock struct {
	Type  string                 `json:"type"`
	Text  string                 `json:"text,omitempty"`
	Name  string                 `json:"name,omitempty"`  // tool name
	Input map[string]interface{} `json:"input,omitempty"` // tool input
}

// Kind discriminates the event variants.
type Kind string

const (
	KindUser      Kind = "user"
	KindAssistant Kind = "assistant"
	KindTool      Kind = "tool"
)

// Event is one classified unit of session activity. Text is set for user
// and assistant events, Tool and Details for tool events.
type Event struct {
	Time    string // HH:MM:SS
	Kind    Kind
	Text    string
	Tool    string
	Details map[string]interface{}
}

// Session holds the classified events and aggregates from one transcript.
// Events preserve input line order; they are never re-sorted.
type Session struct {
	Events        []Event
	ToolCounts    map[string]int
	FilesModified map[string]bool
}

// UserMessages counts the user events in the session.
func (s *Session) UserMessages() int {
	n := 0
	for _, e := range s.Events {
		if e.Kind == KindUser {
			n++
		}
	}
	return n
}
