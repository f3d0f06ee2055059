package main

import (
	"github.com/spf13/cobra"
)

func newRootCommand() *cobra.Command {
	var configFlag string
	var gapFlag float64

	ctx := newCommandContext(&configFlag, &gapFlag)
	runCmd := newRunCommand(ctx)

	rootCmd := &cobra.Command{
		Use:           "mkmovies [directory]",
		Short:         "Assemble burst photos into movies, one per temporal cluster",
		Long: `mkmovies scans a directory for image files, groups them by how close
their modification times are, and runs ffmpeg once per group to produce
movie_001.mp4, movie_002.mp4, and so on.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Bare invocation processes the current directory.
			runCmd.SetContext(cmd.Context())
			return runCmd.RunE(runCmd, args)
		},
	}

	rootCmd.PersistentFlags().StringVarP(&configFlag, "config", "c", "", "Configuration file path")
	rootCmd.PersistentFlags().Float64Var(&gapFlag, "gap", -1, "Override the cluster gap threshold in seconds")

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(newScanCommand(ctx))
	rootCmd.AddCommand(newHistoryCommand(ctx))
	rootCmd.AddCommand(newConfigCommand(ctx))

	return rootCmd
}
