// Package highlight extracts Ruby fenced code blocks from model answers
// and renders them with terminal syntax coloring.
package highlight

import (
	"regexp"
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/formatters"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"

	"codecomment/internal/prompt"
)

// rubyFence matches from the first ```ruby fence through the LAST closing
// fence in the text. The greedy dot-matches-newline capture is deliberate:
// an answer with several fenced blocks yields one span covering all of
// them, matching the tool's long-standing behavior.
var rubyFence = regexp.MustCompile("(?s)```" + prompt.TargetLanguage + "\n(.*)\n```")

// ExtractCode returns the contents of the Ruby fenced block in text, or
// false when no fence with the exact ruby tag exists.
func ExtractCode(text string) (string, bool) {
	m := rubyFence.FindStringSubmatch(text)
	if m == nil {
		return "", false
	}
	return m[1], true
}

// Highlight renders code with Ruby syntax coloring for a 256-color
// terminal. Returns the input unchanged if highlighting fails.
func Highlight(code string) string {
	lexer := lexers.Get(prompt.TargetLanguage)
	if lexer == nil {
		lexer = lexers.Fallback
	}
	lexer = chroma.Coalesce(lexer)

	style := styles.Get("monokai")
	if style == nil {
		style = styles.Fallback
	}

	formatter := formatters.Get("terminal256")
	if formatter == nil {
		formatter = formatters.Fallback
	}

	iterator, err := lexer.Tokenise(nil, code)
	if err != nil {
		return code
	}

	var buf strings.Builder
	if err := formatter.Format(&buf, style, iterator); err != nil {
		return code
	}

	return buf.String()
}
