package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"zmatch/internal/sessionlog"
)

func newInspectCommand(ctx *commandContext) *cobra.Command {
	var kindFlag string

	cmd := &cobra.Command{
		Use:   "inspect <log.csv>",
		Short: "Normalize a recorder or transmitter log and print its rows",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			table, err := loadLog(args[0], kindFlag)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			kind := sessionlog.DetectKind(table)
			fmt.Fprintf(out, "Kind: %s\n", kind)
			if kind == sessionlog.KindRecorder {
				fmt.Fprintf(out, "Sound roll: %s\n", table.Session)
			}
			fmt.Fprintf(out, "Rows: %d\n\n", table.Len())

			headers, rows := inspectRows(table, kind)
			fmt.Fprintln(out, renderTable(out, headers, rows, []columnAlignment{alignRight}))
			return nil
		},
	}

	cmd.Flags().StringVar(&kindFlag, "kind", "auto", "Log flavor: auto, recorder, or transmitter")
	return cmd
}

// loadLog normalizes a log file, resolving the "auto" kind by parsing as a
// recorder log (which also finds the sound roll when present) and trusting
// the schema for the label.
func loadLog(path, kindFlag string) (*sessionlog.Table, error) {
	switch kindFlag {
	case "auto", "recorder":
		return sessionlog.NormalizeFile(path, sessionlog.KindRecorder)
	case "transmitter":
		return sessionlog.NormalizeFile(path, sessionlog.KindTransmitter)
	default:
		return nil, fmt.Errorf("unknown kind %q (want auto, recorder, or transmitter)", kindFlag)
	}
}

func inspectRows(table *sessionlog.Table, kind sessionlog.Kind) ([]string, [][]string) {
	var headers []string
	if kind == sessionlog.KindTransmitter {
		headers = []string{"#", sessionlog.ColumnTimeCode, sessionlog.ColumnUserBits, sessionlog.ColumnFrameRate, sessionlog.ColumnFileName}
	} else {
		headers = []string{"#", sessionlog.ColumnTimeCode, sessionlog.ColumnUserBits, sessionlog.ColumnFrameRate, sessionlog.ColumnScene, sessionlog.ColumnTake}
	}

	rows := make([][]string, 0, table.Len())
	for i := 0; i < table.Len(); i++ {
		row := []string{fmt.Sprint(i)}
		for _, column := range headers[1:] {
			row = append(row, table.Value(i, column))
		}
		rows = append(rows, row)
	}
	return headers, rows
}
