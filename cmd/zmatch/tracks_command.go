package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"zmatch/internal/sessionlog"
	"zmatch/internal/tracks"
)

func newTracksCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "tracks <recorder-log.csv>",
		Short: "List the track columns discovered in a recorder log",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rec, err := sessionlog.NormalizeFile(args[0], sessionlog.KindRecorder)
			if err != nil {
				return err
			}

			index := tracks.Discover(rec)
			out := cmd.OutOrStdout()
			if len(index.ActiveColumns) == 0 {
				fmt.Fprintln(out, "No track columns found.")
				return nil
			}

			rows := make([][]string, 0, len(index.ActiveColumns))
			for i, column := range index.ActiveColumns {
				values := tracks.Values(rec, column)
				rows = append(rows, []string{
					index.DisplayNames[i],
					column,
					strings.Join(values, ", "),
				})
			}
			fmt.Fprintln(out, renderTable(out, []string{"Track", "Column", "Values"}, rows, nil))
			return nil
		},
	}
}
