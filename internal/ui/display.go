package ui

import (
	"strings"

	"github.com/fatih/color"
)

// Color scheme for terminal output
var (
	Divider  = color.New(color.FgHiBlack)
	Echo     = color.New(color.FgCyan)
	Success  = color.New(color.FgGreen, color.Bold)
	Error    = color.New(color.FgRed, color.Bold)
	Response = color.New(color.FgYellow)
)

const dividerWidth = 20

// DividerLine returns the block delimiter: a colored line of tildes
// surrounded by newlines.
func DividerLine() string {
	return "\n" + Divider.Sprint(strings.Repeat("~", dividerWidth)) + "\n"
}

// EchoBlock renders the raw clipboard input between delimiter lines.
func EchoBlock(text string) string {
	return DividerLine() + Echo.Sprint(text) + DividerLine()
}

// CodeBlock renders already-highlighted code between delimiter lines.
func CodeBlock(code string) string {
	return DividerLine() + code + DividerLine()
}

// ValidLabel is the indicator shown when the model stopped cleanly.
func ValidLabel() string {
	return Success.Sprint("✔ Valid Response:") + "\n"
}

// ErrorBlock renders a provider error payload.
func ErrorBlock(errType, message string) string {
	return Error.Sprintf("%s: %s", errType, message) + "\n"
}

// NoResponse is shown when the provider returns neither choices nor an
// error payload.
func NoResponse() string {
	return Error.Sprint("No response!!") + "\n"
}

// ResponseText renders a plain (non-code) model answer.
func ResponseText(text string) string {
	return Response.Sprint(text) + "\n"
}
