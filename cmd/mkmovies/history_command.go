package main

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
)

func newHistoryCommand(ctx *commandContext) *cobra.Command {
	var limit int
	var runID string

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show recorded runs from the journal",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			store, err := ctx.openJournal(cfg)
			if err != nil {
				return err
			}
			defer store.Close()

			if runID != "" {
				movies, err := store.MoviesForRun(cmd.Context(), runID)
				if err != nil {
					return err
				}
				if len(movies) == 0 {
					cmd.Printf("No movies recorded for run %s\n", runID)
					return nil
				}
				rows := make([][]string, 0, len(movies))
				for _, movie := range movies {
					status := "ok"
					if movie.Error != "" {
						status = movie.Error
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
				return nil
			}

			runs, err := store.RecentRuns(cmd.Context(), limit)
			if err != nil {
				return err
			}
			if len(runs) == 0 {
				cmd.Println("No runs recorded yet")
				return nil
			}
			rows := make([][]string, 0, len(runs))
			for _, run := range runs {
				rows = append(rows, []string{
					run.ID,
					run.StartedAt.Local().Format(time.DateTime),
					run.Directory,
					fmt.Sprintf("%d", run.Scanned),
					fmt.Sprintf("%d", run.Groups),
					fmt.Sprintf("%d", run.Encoded),
					fmt.Sprintf("%d", run.Failed),
				})
			}
			cmd.Println(renderTable(
				[]string{"Run", "Started", "Directory", "Images", "Groups", "Encoded", "Failed"},
				rows,
				[]columnAlignment{alignLeft, alignLeft, alignLeft, alignRight, alignRight, alignRight, alignRight},
			))
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 20, "Maximum number of runs to show")
	cmd.Flags().StringVar(&runID, "run", "", "Show the movies recorded for a single run ID")
	return cmd
}
