package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/weftlabs/weft"
	"github.com/weftlabs/weft/internal/presentation/graph"
)

// graphCmd represents the graph command
var graphCmd = &cobra.Command{
	Use:   "graph",
	Short: "Export the token reference graph",
	Long:  `Inspects the token tree and outputs a Mermaid diagram (graph TD) showing which tokens alias which.`,
	Run: func(cmd *cobra.Command, args []string) {
		dir, _ := cmd.Flags().GetString("dir")
		if !cmd.Flags().Changed("dir") && len(args) > 0 {
			dir = args[0]
		}

		project, err := weft.New(dir)
		if err != nil {
			fmt.Printf("Error initializing project: %v\n", err)
			os.Exit(1)
		}

		flat, err := project.Flatten()
		if err != nil {
			fmt.Printf("Error flattening tokens: %v\n", err)
			os.Exit(1)
		}

		// Generate and print Mermaid graph
		output := graph.GenerateMermaid(flat)
		fmt.Print(output)
	},
}

func init() {
	rootCmd.AddCommand(graphCmd)
}
