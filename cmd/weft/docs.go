package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/weftlabs/weft"
	"github.com/weftlabs/weft/internal/presentation/tui"
)

// docsCmd represents the docs command
var docsCmd = &cobra.Command{
	Use:   "docs",
	Short: "Render the project's token reference in the terminal",
	Long:  `Builds a markdown reference of every token (path, raw value, resolved value) and renders it with terminal styling.`,
	Run: func(cmd *cobra.Command, args []string) {
		dir, _ := cmd.Flags().GetString("dir")
		plain, _ := cmd.Flags().GetBool("plain")

		project, err := weft.New(dir)
		if err != nil {
			fmt.Printf("Error initializing project: %v\n", err)
			os.Exit(1)
		}

		markdown, err := tokensMarkdown(project)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}

		if plain {
			fmt.Print(markdown)
			return
		}

		tui.PrintBanner()
		render := tui.NewRenderer()
		out, err := render(markdown)
		if err != nil {
			// Fall back to the raw markdown when the terminal renderer
			// cannot be set up.
			fmt.Print(markdown)
			return
		}
		fmt.Print(out)
	},
}

func init() {
	rootCmd.AddCommand(docsCmd)

	docsCmd.Flags().Bool("plain", false, "Print raw markdown instead of styled output")
}

// tokensMarkdown builds a markdown table of every resolved token.
func tokensMarkdown(project *weft.Project) (string, error) {
	flat, err := project.Flatten()
	if err != nil {
		return "", err
	}

	var b strings.Builder
	name := project.Name
	if name == "" {
		name = "weft"
	}
	fmt.Fprintf(&b, "# %s tokens\n\n", name)
	b.WriteString("| Token | Raw | Resolved |\n")
	b.WriteString("| --- | --- | --- |\n")
	for _, tok := range flat {
		fmt.Fprintf(&b, "| `%s` | `%s` | %s |\n", tok.Path, tok.Raw, tok.Value)
	}
	return b.String(), nil
}
