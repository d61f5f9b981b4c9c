package transcript

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/johns/sessmd/internal/sanitize"
)

// progressPrefix marks system-injected progress notices ("X is running…")
// that should not appear in the timeline as user messages.
const progressPrefix = "is running…"

// userTextLimit is the storage truncation applied to user messages.
// Assistant text is truncated at render time instead; the asymmetry is
// deliberate.
const userTextLimit = 100

// ParseFile reads and classifies a Claude Code JSONL transcript file.
func ParseFile(path string, tools ToolTable) (*Session, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open transcript: %w", err)
	}
	defer f.Close()
	return Parse(f, tools)
}

// Parse reads a JSONL transcript from a reader and classifies each entry
// into user, assistant, and tool events while accumulating per-tool usage
// counts and the set of modified files. Lines that fail to decode are
// skipped; a malformed timestamp on an entry that emits an event is an
// error.
func Parse(r io.Reader, tools ToolTable) (*Session, error) {
	s := &Session{
		ToolCounts:    make(map[string]int),
		FilesModified: make(map[string]bool),
	}

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 1024*1024), 10*1024*1024) // 10MB max line

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		var entry Entry
		if err := json.Unmarshal([]byte(line), &entry); err != nil {
			// Skip unparseable lines rather than failing the whole transcript
			continue
		}

		if err := classify(entry, s, tools); err != nil {
			return nil, err
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan transcript: %w", err)
	}

	return s, nil
}

// classify appends the events an entry produces and updates the
// accumulators. Entry types other than user/assistant are ignored.
func classify(e Entry, s *Session, tools ToolTable) error {
	switch e.Type {
	case "user":
		text := userText(e.Message)
		if text == "" || strings.HasPrefix(text, progressPrefix) {
			return nil
		}
		when, err := formatTime(e.Timestamp)
		if err != nil {
			return err
		}
		s.Events = append(s.Events, Event{
			Time: when,
			Kind: KindUser,
			Text: Truncate(text, userTextLimit),
		})

	case "assistant":
		for _, b := range listBlocks(e.Message) {
			switch b.Type {
			case "tool_use":
				s.ToolCounts[b.Name]++
				if tools.Mutating[b.Name] {
					if p, ok := b.Input["file_path"].(string); ok && p != "" {
						s.FilesModified[p] = true
					}
				}
				when, err := formatTime(e.Timestamp)
				if err != nil {
					return err
				}
				input := b.Input
				if input == nil {
					input = map[string]interface{}{}
				}
				s.Events = append(s.Events, Event{
					Time:    when,
					Kind:    KindTool,
					Tool:    b.Name,
					Details: input,
				})

			case "text":
				text := strings.TrimSpace(b.Text)
				if text == "" {
					continue
				}
				when, err := formatTime(e.Timestamp)
				if err != nil {
					return err
				}
				s.Events = append(s.Events, Event{
					Time: when,
					Kind: KindAssistant,
					Text: text,
				})
			}
		}
	}
	return nil
}

// userText extracts display text from a user message. String content has
// command wrapper tags stripped; array content yields the first text
// block. Anything else yields "".
func userText(msg *Message) string {
	if msg == nil {
		return ""
	}
	switch c := msg.Content.(type) {
	case string:
		return sanitize.StripTags(c)
	case []interface{}:
		for _, b := range decodeBlocks(c) {
			if b.Type == "text" {
				return strings.TrimSpace(b.Text)
			}
		}
	}
	return ""
}

// listBlocks returns the content blocks of a message whose content is an
// array. String content yields nothing here: assistant entries only emit
// events from structured blocks.
func listBlocks(msg *Message) []ContentBlock {
	if msg == nil {
		return nil
	}
	c, ok := msg.Content.([]interface{})
	if !ok {
		return nil
	}
	return decodeBlocks(c)
}

func decodeBlocks(items []interface{}) []ContentBlock {
	var blocks []ContentBlock
	for _, item := range items {
		m, ok := item.(map[string]interface{})
		if !ok {
			continue
		}
		raw, err := json.Marshal(m)
		if err != nil {
			continue
		}
		var block ContentBlock
		if err := json.Unmarshal(raw, &block); err != nil {
			continue
		}
		blocks = append(blocks, block)
	}
	return blocks
}

// formatTime renders an ISO-8601 timestamp as HH:MM:SS. A trailing Z is
// the UTC offset; timestamps without any offset are accepted too.
func formatTime(ts string) (string, error) {
	t, err := time.Parse(time.RFC3339, ts)
	if err != nil {
		t, err = time.Parse("2006-01-02T15:04:05", ts)
		if err != nil {
			return "", fmt.Errorf("parse timestamp %q: %w", ts, err)
		}
	}
	return t.Format("15:04:05"), nil
}

// Truncate shortens s to at most max runes, appending "..." when cut.
func Truncate(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max]) + "..."
}
