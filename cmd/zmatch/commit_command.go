package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"
	"github.com/spf13/cobra"

	"zmatch/internal/logging"
	"zmatch/internal/matching"
	"zmatch/internal/reconcile"
	"zmatch/internal/report"
	"zmatch/internal/sessionlog"
)

func newCommitCommand(ctx *commandContext) *cobra.Command {
	var (
		recorderPath    string
		transmitterPath string
		track           string
		tolerance       float64
		skipList        string
		sourceDir       string
		destParent      string
		noReport        bool
	)

	cmd := &cobra.Command{
		Use:   "commit",
		Short: "Copy matched transmitter files under their new names",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("tolerance") {
				tolerance = cfg.Matching.Tolerance
			}
			if destParent == "" {
				destParent = cfg.Paths.DestDir
			}
			if sourceDir == "" {
				sourceDir = filepath.Dir(transmitterPath)
			}

			skipped, err := parseSkipList(skipList)
			if err != nil {
				return err
			}

			inputs, err := runMatch(recorderPath, transmitterPath, track, tolerance, cfg.Matching.DefaultFPS, skipped)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			printMatches(cmd, inputs)
			if len(inputs.Matches) == 0 {
				return nil
			}

			trackValues := matching.TrackValues(inputs.Recorder, inputs.Matches, inputs.TrackColumn)
			folder := matching.FolderName(inputs.Recorder.Session, trackValues)
			destDir := filepath.Join(destParent, folder)

			logger := ctx.ensureLogger().With(logging.String("component", "commit"))
			logger.Info("committing matches",
				logging.Int("matches", len(inputs.Matches)),
				logging.String("source", sourceDir),
				logging.String("dest", destDir))

			outcome, err := commitMatches(inputs, sourceDir, destParent, destDir, folder, out)
			if err != nil {
				return err
			}

			fmt.Fprintf(out, "Copied %d of %d files to %s\n", len(outcome.Succeeded), len(inputs.Matches), destDir)
			for _, failure := range outcome.Failed {
				fmt.Fprintf(out, "  failed %s: %s\n", failure.Match.OriginalFilename, failure.Reason)
			}

			// The report covers only the files that actually landed; with
			// nothing copied there is nothing to report on.
			if !noReport && cfg.Report.Enabled && len(outcome.Succeeded) > 0 {
				copied := make([]matching.Match, 0, len(outcome.Succeeded))
				for _, c := range outcome.Succeeded {
					copied = append(copied, c.Match)
				}
				sink := report.TextSink{}
				if err := sink.Write(destDir, sessionLabel(inputs.Recorder), copied, inputs.Recorder, inputs.Transmitter); err != nil {
					logger.Warn("report not written", logging.Error(err))
				} else {
					fmt.Fprintf(out, "Report written to %s\n", destDir)
				}
			}

			if len(outcome.Succeeded) == 0 {
				return fmt.Errorf("no files copied (%d failures)", len(outcome.Failed))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&recorderPath, "recorder", "r", "", "Recorder take log (CSV)")
	cmd.Flags().StringVarP(&transmitterPath, "transmitter", "t", "", "Transmitter file log (CSV)")
	cmd.Flags().StringVar(&track, "track", "", "Track to rename for (display name or column)")
	cmd.Flags().Float64Var(&tolerance, "tolerance", 0, "Timecode proximity window in seconds")
	cmd.Flags().StringVar(&skipList, "skip", "", "Comma-separated recorder row indices to exclude")
	cmd.Flags().StringVarP(&sourceDir, "source", "s", "", "Directory holding the transmitter audio files (defaults to the transmitter log's directory)")
	cmd.Flags().StringVarP(&destParent, "dest", "d", "", "Parent directory for the destination folder")
	cmd.Flags().BoolVar(&noReport, "no-report", false, "Skip writing the report file")
	_ = cmd.MarkFlagRequired("recorder")
	_ = cmd.MarkFlagRequired("transmitter")

	return cmd
}

// commitMatches holds the destination folder lock for the duration of the
// copy batch so two invocations cannot interleave writes into one folder.
func commitMatches(inputs *matchInputs, sourceDir, destParent, destDir, folder string, out io.Writer) (*reconcile.Outcome, error) {
	if err := os.MkdirAll(destParent, 0o755); err != nil {
		return nil, fmt.Errorf("create destination parent: %w", err)
	}
	lock := flock.New(filepath.Join(destParent, "."+folder+".lock"))
	locked, err := lock.TryLock()
	if err != nil {
		return nil, fmt.Errorf("acquire destination lock: %w", err)
	}
	if !locked {
		return nil, fmt.Errorf("destination %s is locked by another zmatch run", destDir)
	}
	defer func() {
		_ = lock.Unlock()
	}()

	index, err := reconcile.BuildIndex(sourceDir)
	if err != nil {
		if errors.Is(err, reconcile.ErrSourceDirMissing) {
			return nil, fmt.Errorf("source directory %s does not exist", sourceDir)
		}
		return nil, err
	}

	if missing := reconcile.Missing(inputs.Matches, index); len(missing) > 0 {
		fmt.Fprintf(out, "Warning: %d matched files not found in %s:\n", len(missing), sourceDir)
		for _, m := range missing {
			fmt.Fprintf(out, "  %s\n", m.OriginalFilename)
		}
	}

	return reconcile.ReconcileWithIndex(inputs.Matches, index, sourceDir, destDir)
}

// sessionLabel names the report file after the sound roll, falling back to
// a fixed label when the recorder log carried none.
func sessionLabel(rec *sessionlog.Table) string {
	if rec.Session != "" && rec.Session != sessionlog.SessionPlaceholder {
		return "SR" + rec.Session + " Sound Report"
	}
	return "Sound Report"
}
