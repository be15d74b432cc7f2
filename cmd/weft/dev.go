package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/weftlabs/weft"
	"github.com/weftlabs/weft/internal/logging"
	"github.com/weftlabs/weft/internal/watch"
)

// devCmd represents the dev command
var devCmd = &cobra.Command{
	Use:   "dev",
	Short: "Watch token documents and rebuild on change",
	Long: `Runs an initial build, then watches the project's token documents
and rebuilds the dist artifacts whenever a document changes. Broken
trees are reported and watching continues, so the next save can fix
them.`,
	Run: func(cmd *cobra.Command, args []string) {
		dir, _ := cmd.Flags().GetString("dir")

		logger := logging.New(slog.LevelInfo)

		project, err := weft.New(dir, weft.WithLogger(logger))
		if err != nil {
			fmt.Printf("Error initializing project: %v\n", err)
			os.Exit(1)
		}

		if written, err := project.BuildDist(); err != nil {
			logger.Error("initial build failed", "error", err)
		} else {
			logger.Info("initial build complete", "artifacts", len(written))
		}

		paths := project.Sources()
		if len(paths) == 0 {
			paths = []string{project.Dir()}
		}

		watcher, err := watch.New(paths, watch.DefaultDebounce, logger)
		if err != nil {
			fmt.Printf("Error starting watcher: %v\n", err)
			os.Exit(1)
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		fmt.Printf("Watching %d path(s). Press Ctrl+C to stop.\n", len(paths))

		err = watcher.Run(ctx, func() error {
			if err := project.Reload(); err != nil {
				return err
			}
			written, err := project.BuildDist()
			if err != nil {
				return err
			}
			logger.Info("rebuilt", "artifacts", len(written))
			return nil
		})
		if err != nil {
			fmt.Printf("Watcher error: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(devCmd)
}
