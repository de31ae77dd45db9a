// Package prompt turns an instruction verb and a snippet of Ruby code into
// the single natural-language prompt sent to the completion API.
//
// The code is interpolated verbatim between backticks; a snippet that itself
// contains backticks is passed through unescaped. That is a known limitation
// of the prompt format, kept so that prompts stay byte-for-byte predictable.
package prompt

import (
	"fmt"
	"strings"
)

// Mode is the instruction verb embedded in the prompt.
type Mode string

const (
	ModeComment Mode = "comment"
	ModeCheck   Mode = "check"
	ModeFix     Mode = "fix"
)

// TargetLanguage is the source language this tool is specialized for.
const TargetLanguage = "ruby"

// ParseMode validates a user-supplied mode string.
func ParseMode(s string) (Mode, error) {
	switch Mode(strings.ToLower(strings.TrimSpace(s))) {
	case ModeComment:
		return ModeComment, nil
	case ModeCheck:
		return ModeCheck, nil
	case ModeFix:
		return ModeFix, nil
	}
	return "", fmt.Errorf("unknown mode %q (valid modes: comment, check, fix)", s)
}

// Build produces the prompt for the given mode and code. Deterministic:
// the same inputs always yield the same string.
func Build(mode Mode, code string) string {
	return fmt.Sprintf("Can you %s %s code: `%s`?", mode, TargetLanguage, code)
}
