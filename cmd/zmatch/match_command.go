package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"zmatch/internal/logging"
)

func newMatchCommand(ctx *commandContext) *cobra.Command {
	var (
		recorderPath    string
		transmitterPath string
		track           string
		tolerance       float64
		skipList        string
	)

	cmd := &cobra.Command{
		Use:   "match",
		Short: "Preview recorder/transmitter matches without touching any files",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("tolerance") {
				tolerance = cfg.Matching.Tolerance
			}

			skipped, err := parseSkipList(skipList)
			if err != nil {
				return err
			}

			inputs, err := runMatch(recorderPath, transmitterPath, track, tolerance, cfg.Matching.DefaultFPS, skipped)
			if err != nil {
				return err
			}

			logger := ctx.ensureLogger()
			logger.Info("match preview",
				logging.Int("matches", len(inputs.Matches)),
				logging.Int("fps_mismatches", inputs.Stats.FPSMismatches),
				logging.Float64("tolerance_seconds", tolerance))

			printMatches(cmd, inputs)
			return nil
		},
	}

	cmd.Flags().StringVarP(&recorderPath, "recorder", "r", "", "Recorder take log (CSV)")
	cmd.Flags().StringVarP(&transmitterPath, "transmitter", "t", "", "Transmitter file log (CSV)")
	cmd.Flags().StringVar(&track, "track", "", "Track to rename for (display name or column)")
	cmd.Flags().Float64Var(&tolerance, "tolerance", 0, "Timecode proximity window in seconds")
	cmd.Flags().StringVar(&skipList, "skip", "", "Comma-separated recorder row indices to exclude")
	_ = cmd.MarkFlagRequired("recorder")
	_ = cmd.MarkFlagRequired("transmitter")

	return cmd
}

func printMatches(cmd *cobra.Command, inputs *matchInputs) {
	out := cmd.OutOrStdout()
	if len(inputs.Matches) == 0 {
		fmt.Fprintln(out, "No matches found.")
	} else {
		rows := make([][]string, 0, len(inputs.Matches))
		for _, m := range inputs.Matches {
			fps := formatFPS(m.FPSRecorder)
			if m.FPSMismatch {
				fps = fmt.Sprintf("%s/%s !", formatFPS(m.FPSRecorder), formatFPS(m.FPSTransmitter))
			}
			rows = append(rows, []string{
				m.OriginalFilename,
				m.NewFilename,
				formatOffset(m.OffsetSeconds),
				fps,
			})
		}
		headers := []string{"Original", "New", "Offset", "FPS"}
		aligns := []columnAlignment{alignLeft, alignLeft, alignRight, alignRight}
		fmt.Fprintln(out, renderTable(out, headers, rows, aligns))
	}

	fmt.Fprintf(out, "%d matched of %d recorder rows (tolerance %s)\n",
		len(inputs.Matches), inputs.Recorder.Len(), formatOffset(inputs.Tolerance))
	if inputs.Stats.FPSMismatches > 0 {
		fmt.Fprintf(out, "Warning: %d matches pair logs with different frame rates\n", inputs.Stats.FPSMismatches)
	}
	if inputs.Stats.RecorderUnparsable > 0 || inputs.Stats.TransmitterUnparsable > 0 {
		fmt.Fprintf(out, "Warning: unparsable timecodes treated as 00:00:00:00 (recorder %d, transmitter %d)\n",
			inputs.Stats.RecorderUnparsable, inputs.Stats.TransmitterUnparsable)
	}
}
