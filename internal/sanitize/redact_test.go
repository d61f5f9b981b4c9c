package sanitize

import "testing"

func TestStripTags_NoTags(t *testing.T) {
	input := "Hello, this is plain text with no tags."
	if got := StripTags(input); got != input {
		t.Errorf("StripTags(%q) = %q, want unchanged", input, got)
	}
}

func TestStripTags_CommandTags(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"command-message", "<command-message>commit changes</command-message>", "commit changes"},
		{"command-name", "<command-name>/commit</command-name>", "/commit"},
		{"command-args", "<command-args>-a -m wip</command-args>", "-a -m wip"},
		{"combined", "<command-name>/review</command-name><command-args>HEAD~1</command-args>", "/reviewHEAD~1"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := StripTags(tt.input); got != tt.want {
				t.Errorf("StripTags(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestStripTags_KeepsEnclosedText(t *testing.T) {
	input := "before <command-message>middle</command-message> after"
	want := "before middle after"
	if got := StripTags(input); got != want {
		t.Errorf("StripTags = %q, want %q", got, want)
	}
}

func TestStripTags_NonMatchingTags(t *testing.T) {
	tests := []string{
		"<html>page</html>",
		"<command-output>kept as-is</command-output>",
		"<b>bold</b>",
	}
	for _, input := range tests {
		if got := StripTags(input); got != input {
			t.Errorf("StripTags(%q) = %q, want unchanged", input, got)
		}
	}
}

func TestStripTags_EmptyAndWhitespace(t *testing.T) {
	if got := StripTags(""); got != "" {
		t.Errorf("StripTags empty = %q", got)
	}
	if got := StripTags("   "); got != "" {
		t.Errorf("StripTags whitespace = %q, want empty (trimmed)", got)
	}
	if got := StripTags("  <command-name></command-name>  "); got != "" {
		t.Errorf("StripTags tags+whitespace = %q, want empty", got)
	}
}
