package commands

import (
	"fmt"
	"os"

	"codecomment/internal/config"
	"codecomment/internal/prompt"
	"codecomment/internal/providers"
	"codecomment/internal/runner"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var red = color.New(color.FgRed)

// NewRootCommand creates the root command for codecomment
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "codecomment",
		Short:   "Annotate the Ruby code on your clipboard with an AI completion model",
		Version: "1.0.0",
		Long: `codecomment reads Ruby source code from the system clipboard, asks an
OpenAI completion model to comment (or check, or fix) it, and prints the
answer with syntax highlighting whenever the model replies with a fenced
Ruby code block.

The API credential is read from OPENAI_API_KEY (a .env file works too).`,
		RunE:          runComment,
		SilenceUsage:  true,
		SilenceErrors: true,
		Example: `  codecomment
  codecomment --mode fix
  codecomment --mode check --model davinci`,
	}

	rootCmd.Flags().String("mode", string(prompt.ModeComment), "Instruction verb: comment|check|fix")
	rootCmd.Flags().String("model", providers.DefaultModelKey, "Model key: fast|davinci")
	rootCmd.Flags().Bool("verbose", false, "Enable verbose logging")

	return rootCmd
}

func runComment(cmd *cobra.Command, args []string) error {
	modeFlag, _ := cmd.Flags().GetString("mode")
	modelKey, _ := cmd.Flags().GetString("model")
	verbose, _ := cmd.Flags().GetBool("verbose")

	mode, err := prompt.ParseMode(modeFlag)
	if err != nil {
		return err
	}

	apiKey, err := config.OpenAIAPIKey()
	if err != nil {
		return err
	}

	client, err := providers.NewOpenAIClient(apiKey, config.CompletionsURL(), verbose)
	if err != nil {
		return err
	}

	out, err := runner.New(client).Run(runner.Options{Mode: mode, ModelKey: modelKey})
	fmt.Print(out)
	return err
}

// Execute runs the root command
func Execute() {
	rootCmd := NewRootCommand()

	if err := rootCmd.Execute(); err != nil {
		red.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
