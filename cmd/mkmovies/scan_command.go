package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"mkmovies/internal/assemble"
	"mkmovies/internal/cluster"
	"mkmovies/internal/scan"
)

func newScanCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "scan [directory]",
		Short: "Show the clusters a run would encode, without encoding",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			dir := targetDirectory(args)
			images, err := scan.Images(dir, cfg.Scan.Extensions)
			if err != nil {
				return err
			}
			if len(images) == 0 {
				cmd.Printf("No images found in %s\n", dir)
				return nil
			}

			groups := cluster.Cluster(images, cfg.MaxGap())
			rows := make([][]string, 0, len(groups))
			for i, group := range groups {
				rows = append(rows, []string{
					fmt.Sprintf("%d", i+1),
					fmt.Sprintf("%d", len(group.Images)),
					group.Start().Format(time.RFC3339),
					group.Span().Round(10 * time.Millisecond).String(),
					assemble.OutputName(cfg.Encoder.OutputPrefix, cfg.Encoder.Container, i+1),
				})
			}
			cmd.Println(renderTable(
				[]string{"Group", "Frames", "Start", "Span", "Output"},
				rows,
				[]columnAlignment{alignRight, alignRight, alignLeft, alignRight, alignLeft},
			))
			cmd.Printf("%d images in %d groups (gap threshold %s)\n", len(images), len(groups), cfg.MaxGap())
			return nil
		},
	}
}
