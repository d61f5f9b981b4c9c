package render

import (
	"strings"
	"testing"

	"github.com/johns/sessmd/internal/transcript"
)

const pipelineTranscript = `{"type":"user","timestamp":"2025-07-27T10:00:00Z","message":{"content":"  hello  "}}
{"type":"assistant","timestamp":"2025-07-27T10:00:05Z","message":{"role":"assistant","content":[{"type":"tool_use","id":"t1","name":"Write","input":{"file_path":"/a/b/c.txt","content":"x"}}]}}
{"type":"user","timestamp":"2025-07-27T10:00:10Z","message":{"content":"is running… foo"}}
{"type":"assistant","timestamp":"2025-07-27T10:00:15Z","message":{"role":"assistant","content":[{"type":"text","text":"Wrote the file."}]}}`

func parsePipeline(t *testing.T) *transcript.Session {
	t.Helper()
	s, err := transcript.Parse(strings.NewReader(pipelineTranscript), transcript.DefaultTools())
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	return s
}

func TestPipeline_Report(t *testing.T) {
	s := parsePipeline(t)

	if !s.FilesModified["/a/b/c.txt"] {
		t.Error("Write input file_path missing from modified set")
	}
	if s.ToolCounts["Write"] != 1 {
		t.Errorf("ToolCounts[Write] = %d, want 1", s.ToolCounts["Write"])
	}

	got := Markdown(s, stockReport(), transcript.DefaultTools())

	checks := []string{
		"**Duration**: 10:00:00 - 10:00:15",
		"\n### [10:00:00] User\n> hello\n",
		"- 📝 Modified: `c.txt`\n",
		"**Claude**: Wrote the file.",
		"- **Total interactions**: 1\n",
		"- **Files modified**: 1\n",
		"- Write: 1 times\n",
		"## Files Modified\n\n- `/a/b/c.txt`\n",
	}
	for _, c := range checks {
		if !strings.Contains(got, c) {
			t.Errorf("missing %q in report", c)
		}
	}

	if strings.Contains(got, "is running…") {
		t.Error("progress notice leaked into the report")
	}
}

func TestPipeline_Idempotent(t *testing.T) {
	first := Markdown(parsePipeline(t), stockReport(), transcript.DefaultTools())
	second := Markdown(parsePipeline(t), stockReport(), transcript.DefaultTools())
	if first != second {
		t.Error("same input produced different reports")
	}
}

func TestPipeline_NoValidLines(t *testing.T) {
	input := "not json\nalso not json\n"
	s, err := transcript.Parse(strings.NewReader(input), transcript.DefaultTools())
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if got := Markdown(s, stockReport(), transcript.DefaultTools()); got != "No events found in session." {
		t.Errorf("report = %q, want the no-events line", got)
	}
}
