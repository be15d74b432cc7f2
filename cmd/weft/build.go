package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/weftlabs/weft"
)

// buildCmd represents the build command
var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Render the configured dist artifacts",
	Long: `Resolves every token in the project and writes the outputs declared
in .weft.yaml (CSS custom properties, SCSS variables, JSON).`,
	Run: func(cmd *cobra.Command, args []string) {
		dir, _ := cmd.Flags().GetString("dir")
		force, _ := cmd.Flags().GetBool("force")

		project, err := weft.New(dir)
		if err != nil {
			fmt.Printf("Error initializing project: %v\n", err)
			os.Exit(1)
		}

		var written []string
		if force {
			written, err = project.BuildDist()
		} else {
			written, err = project.EnsureDist()
		}
		if err != nil {
			fmt.Printf("Build failed: %v\n", err)
			os.Exit(1)
		}

		if len(written) == 0 {
			fmt.Println("Dist is up to date.")
			return
		}
		for _, path := range written {
			fmt.Printf("wrote %s\n", path)
		}
	},
}

func init() {
	rootCmd.AddCommand(buildCmd)

	buildCmd.Flags().BoolP("force", "f", false, "Rebuild even when the dist is up to date")
}
