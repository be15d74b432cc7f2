package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/weftlabs/weft"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check every token in the project for resolution errors",
	Long:  `Walks the token tree and reports every token whose reference chain is broken: unknown paths, cycles or non-string values.`,
	Run: func(cmd *cobra.Command, args []string) {
		if err := runValidate(cmd, args); err != nil {
			fmt.Printf("Validation failed: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("All tokens resolve! ✅")
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	dir, _ := cmd.Flags().GetString("dir")
	if !cmd.Flags().Changed("dir") && len(args) > 0 {
		dir = args[0]
	}

	project, err := weft.New(dir)
	if err != nil {
		return fmt.Errorf("failed to init project: %w", err)
	}

	problems := project.Lint()
	if len(problems) == 0 {
		return nil
	}

	for _, p := range problems {
		fmt.Printf("  %s: %v\n", p.Path, p.Err)
	}
	return fmt.Errorf("%d token(s) failed to resolve", len(problems))
}
