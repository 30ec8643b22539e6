package cli

import (
	"fmt"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	builtindocs "github.com/aidanlsb/sift/docs"
	"github.com/aidanlsb/sift/internal/ui"
)

var docsCmd = &cobra.Command{
	Use:   "docs",
	Short: "Show the criteria language reference",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		content, err := builtindocs.FS.ReadFile("querylang.md")
		if err != nil {
			return fmt.Errorf("reading embedded docs: %w", err)
		}

		if !isatty.IsTerminal(os.Stdout.Fd()) {
			fmt.Print(string(content))
			return nil
		}

		d := ui.NewDisplayContext()
		rendered, err := ui.RenderMarkdown(string(content), d.TermWidth)
		if err != nil {
			// Fall back to the raw markdown rather than failing the command.
			fmt.Print(string(content))
			return nil
		}
		fmt.Print(rendered)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(docsCmd)
}
