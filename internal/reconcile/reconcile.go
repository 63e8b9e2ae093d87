package reconcile

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"zmatch/internal/fileutil"
	"zmatch/internal/matching"
)

// ErrSourceDirMissing reports a reconciliation attempt against a source
// directory that does not exist. It is fatal to the whole run; no copies are
// attempted.
var ErrSourceDirMissing = errors.New("source directory missing")

// FailureKind classifies a per-item failure.
type FailureKind string

const (
	// NotFoundOnDisk means the source directory has no file for the match,
	// even case-insensitively.
	NotFoundOnDisk FailureKind = "not_found_on_disk"
	// CopyFailed means the file was found but could not be copied.
	CopyFailed FailureKind = "copy_failed"
)

// Copied records one successful copy with the resolved on-disk source path.
type Copied struct {
	Match      matching.Match
	SourcePath string
	DestPath   string
}

// Failure records one per-item failure in encounter order.
type Failure struct {
	Match  matching.Match
	Kind   FailureKind
	Reason string
}

// Outcome partitions a batch: Succeeded preserves match order, Failed
// preserves encounter order. Both always reflect the full batch.
type Outcome struct {
	Succeeded []Copied
	Failed    []Failure
}

// Index is a one-shot case-insensitive view of a source directory:
// lowercased entry name to actual on-disk name.
type Index map[string]string

// BuildIndex lists sourceDir once and returns the case-insensitive lookup
// used for the rest of the run. Directory changes after this point are
// deliberately not observed.
func BuildIndex(sourceDir string) (Index, error) {
	entries, err := os.ReadDir(sourceDir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrSourceDirMissing, sourceDir)
		}
		return nil, fmt.Errorf("list source directory: %w", err)
	}
	index := make(Index, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		index[strings.ToLower(entry.Name())] = entry.Name()
	}
	return index, nil
}

// Resolve looks a metadata filename up in the index.
func (ix Index) Resolve(filename string) (string, bool) {
	actual, ok := ix[strings.ToLower(strings.TrimSpace(filename))]
	return actual, ok
}

// Missing returns the matches whose expected files the index cannot resolve,
// in match order. The CLI uses it for a preflight warning before committing.
func Missing(matches []matching.Match, index Index) []matching.Match {
	var missing []matching.Match
	for _, match := range matches {
		if _, ok := index.Resolve(match.OriginalFilename); !ok {
			missing = append(missing, match)
		}
	}
	return missing
}

// Reconcile copies every match's source file into destDir under its new
// name. sourceDir must exist; destDir is created when absent. Copies verify
// content integrity and mirror the source modification time. Per-item
// failures never abort the remaining items.
func Reconcile(matches []matching.Match, sourceDir, destDir string) (*Outcome, error) {
	index, err := BuildIndex(sourceDir)
	if err != nil {
		return nil, err
	}
	return ReconcileWithIndex(matches, index, sourceDir, destDir)
}

// ReconcileWithIndex is Reconcile with a caller-supplied directory index, so
// a preflight Missing check and the copy loop see the same snapshot.
func ReconcileWithIndex(matches []matching.Match, index Index, sourceDir, destDir string) (*Outcome, error) {
	if err := os.MkdirAll(destDir, 0o755); err != nil {
		return nil, fmt.Errorf("create destination directory: %w", err)
	}

	outcome := &Outcome{}
	for _, match := range matches {
		actual, ok := index.Resolve(match.OriginalFilename)
		if !ok {
			outcome.Failed = append(outcome.Failed, Failure{
				Match:  match,
				Kind:   NotFoundOnDisk,
				Reason: fmt.Sprintf("%s not found in %s", match.OriginalFilename, sourceDir),
			})
			continue
		}
		src := filepath.Join(sourceDir, actual)
		dst := filepath.Join(destDir, match.NewFilename)
		if err := copyPreserving(src, dst); err != nil {
			outcome.Failed = append(outcome.Failed, Failure{
				Match:  match,
				Kind:   CopyFailed,
				Reason: err.Error(),
			})
			continue
		}
		outcome.Succeeded = append(outcome.Succeeded, Copied{
			Match:      match,
			SourcePath: src,
			DestPath:   dst,
		})
	}
	return outcome, nil
}

func copyPreserving(src, dst string) error {
	if err := fileutil.CopyFileVerified(src, dst); err != nil {
		return err
	}
	return fileutil.MirrorModTime(src, dst)
}
