// Package runner drives one invocation end to end: clipboard read, prompt
// build, completion call, and output assembly.
package runner

import (
	"errors"
	"strings"

	"codecomment/internal/common"
	"codecomment/internal/highlight"
	"codecomment/internal/prompt"
	"codecomment/internal/providers"
	"codecomment/internal/ui"
)

// ErrAPIError is returned when the provider answers with an error payload.
// It is the one failure that maps to a non-zero exit after the input echo
// has already been printed.
var ErrAPIError = errors.New("completion API returned an error")

// Options configures a single run.
type Options struct {
	Mode     prompt.Mode
	ModelKey string
}

// Runner orchestrates one clipboard-to-terminal round trip.
type Runner struct {
	client   *providers.OpenAIClient
	readClip func() (string, error)
}

// New creates a runner backed by the system clipboard.
func New(client *providers.OpenAIClient) *Runner {
	return &Runner{
		client:   client,
		readClip: common.ReadClipboard,
	}
}

// Run performs one clipboard read, one completion call, and returns the
// assembled terminal output. The echo of the input is part of the output
// even when the call afterwards fails.
func (r *Runner) Run(opts Options) (string, error) {
	code, err := r.readClip()
	if err != nil {
		// An unavailable clipboard is treated as empty input.
		code = ""
	}

	var out strings.Builder
	out.WriteString(ui.EchoBlock(code))

	p := prompt.Build(opts.Mode, code)
	maxTokens := providers.ContextTokenBudget - len(p)

	resp, err := r.client.Complete(providers.SelectModel(opts.ModelKey), p, maxTokens)
	if err != nil {
		return out.String(), err
	}

	if resp.HasError() {
		out.WriteString(ui.ErrorBlock(resp.Error.Type, resp.Error.Message))
		return out.String(), ErrAPIError
	}

	if len(resp.Choices) == 0 {
		out.WriteString(ui.NoResponse())
		return out.String(), nil
	}

	choice := resp.Choices[0]
	if choice.IsValid() {
		out.WriteString(ui.ValidLabel())
	}

	if block, ok := highlight.ExtractCode(choice.Text); ok {
		out.WriteString(ui.CodeBlock(highlight.Highlight(block)))
	} else {
		out.WriteString(ui.ResponseText(choice.Text))
	}

	return out.String(), nil
}
