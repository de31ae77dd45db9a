package highlight

import (
	"regexp"
	"strings"
	"testing"
)

var ansiEscapes = regexp.MustCompile("\x1b\\[[0-9;]*m")

func stripANSI(s string) string {
	return ansiEscapes.ReplaceAllString(s, "")
}

func TestExtractCode(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected string
		found    bool
	}{
		{
			"single block",
			"Here:\n```ruby\ndef f # comment\nend\n```",
			"def f # comment\nend",
			true,
		},
		{
			"block with trailing prose",
			"```ruby\nputs 1\n```\nHope that helps!",
			"puts 1",
			true,
		},
		{
			"no fence at all",
			"Just some prose about Ruby.",
			"",
			false,
		},
		{
			"wrong language tag",
			"```python\nprint(1)\n```",
			"",
			false,
		},
		{
			"unclosed fence",
			"```ruby\ndef f",
			"",
			false,
		},
		{
			"empty text",
			"",
			"",
			false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, found := ExtractCode(tt.text)
			if found != tt.found {
				t.Fatalf("ExtractCode(%q) found = %v, want %v", tt.text, found, tt.found)
			}
			if code != tt.expected {
				t.Errorf("ExtractCode(%q) = %q, want %q", tt.text, code, tt.expected)
			}
		})
	}
}

// Multiple fenced blocks collapse into one span from the first ruby fence
// to the last closing fence, including everything in between. This greedy
// behavior is load-bearing for compatibility and must not change silently.
func TestExtractCodeGreedyAcrossBlocks(t *testing.T) {
	text := "First:\n```ruby\na = 1\n```\nand second:\n```ruby\nb = 2\n```"
	expected := "a = 1\n```\nand second:\n```ruby\nb = 2"

	code, found := ExtractCode(text)
	if !found {
		t.Fatal("expected a match across multiple blocks")
	}
	if code != expected {
		t.Errorf("ExtractCode = %q, want %q", code, expected)
	}
}

func TestHighlightPreservesCode(t *testing.T) {
	code := "def f # comment\nend"

	highlighted := Highlight(code)
	if highlighted == "" {
		t.Fatal("Highlight returned empty string")
	}
	if !strings.Contains(highlighted, "\x1b[") {
		t.Error("expected ANSI escape sequences in highlighted output")
	}

	plain := strings.TrimRight(stripANSI(highlighted), "\n")
	if plain != code {
		t.Errorf("stripped highlight = %q, want original code %q", plain, code)
	}
}

func TestHighlightEmptyInput(t *testing.T) {
	out := strings.TrimRight(stripANSI(Highlight("")), "\n")
	if out != "" {
		t.Errorf("Highlight(\"\") stripped = %q, want empty", out)
	}
}
