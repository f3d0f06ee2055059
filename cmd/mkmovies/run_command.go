package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"mkmovies/internal/assemble"
)

func newRunCommand(ctx *commandContext) *cobra.Command {
	var failFast bool
	var dryRun bool

	cmd := &cobra.Command{
		Use:   "run [directory]",
		Short: "Scan, cluster, and encode one movie per cluster",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			logger, err := ctx.newLogger(cfg)
			if err != nil {
				return err
			}

			asm, encoder, closer, err := ctx.newAssembler(cfg, logger)
			if err != nil {
				return err
			}
			defer closer()

			if !dryRun {
				if err := encoder.LookPath(); err != nil {
					return err
				}
			}

			result, err := asm.Run(cmd.Context(), targetDirectory(args), assemble.Options{
				FailFast: failFast,
				DryRun:   dryRun,
			})
			if err != nil {
				return err
			}

			printRunSummary(cmd, result, dryRun)
			return nil
		},
	}

	cmd.Flags().BoolVar(&failFast, "fail-fast", false, "Abort the batch on the first encode failure")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Plan groups and output names without encoding")
	return cmd
}

func printRunSummary(cmd *cobra.Command, result *assemble.Result, dryRun bool) {
	if result.Scanned == 0 {
		cmd.Printf("No images found in %s\n", result.Directory)
		return
	}

	rows := make([][]string, 0, len(result.Movies))
	for _, movie := range result.Movies {
		status := "ok"
		switch {
		case dryRun:
			status = "planned"
		case movie.Err != nil:
			status = movie.Err.Error()
		}
		rows = append(rows, []string{
			fmt.Sprintf("%d", movie.Seq),
			fmt.Sprintf("%d", movie.Frames),
			filepath.Base(movie.Output),
			status,
		})
	}
	cmd.Println(renderTable(
		[]string{"Group", "Frames", "Output", "Status"},
		rows,
		[]columnAlignment{alignRight, alignRight, alignLeft, alignLeft},
	))

	if dryRun {
		cmd.Printf("%d images in %d groups (dry run, nothing encoded)\n", result.Scanned, len(result.Movies))
		return
	}
	cmd.Printf("%d images, %d movies encoded, %d failed\n", result.Scanned, result.Encoded(), result.Failed())
}
