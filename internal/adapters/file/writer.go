package file

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// Artifact is one rendered output destined for Path.
type Artifact struct {
	Path string
	Data []byte
}

// Writer persists generated artifacts on the local filesystem.
// A write either replaces every destination or leaves all of them untouched.
type Writer struct {
	Perm os.FileMode
}

// NewWriter creates a Writer producing files with 0644 permissions.
func NewWriter() *Writer {
	return &Writer{Perm: 0644}
}

type staged struct {
	tmpPath    string
	destPath   string
	backupPath string // original destination moved aside during commit, or ""
}

// rename is swapped in tests to simulate a failing filesystem.
var rename = os.Rename

// Write stages every artifact in a temp file next to its destination, syncs it,
// and only moves the temp files into place once all of them were written.
// Existing destinations are moved aside first and restored if any later step
// fails, so a failed write leaves the previous artifacts in place.
func (w *Writer) Write(ctx context.Context, artifacts ...Artifact) error {
	for _, a := range artifacts {
		if a.Path == "" {
			return fmt.Errorf("artifact path cannot be empty")
		}
		info, err := os.Stat(a.Path)
		if err == nil && info.IsDir() {
			return fmt.Errorf("artifact destination %s is a directory", a.Path)
		}
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("failed to stat %s: %w", a.Path, err)
		}
	}

	var pending []staged
	defer func() {
		// Remove whatever was not committed
		for _, s := range pending {
			_ = os.Remove(s.tmpPath)
		}
	}()

	for _, a := range artifacts {
		if err := ctx.Err(); err != nil {
			return err
		}
		tmpPath, err := w.stage(a)
		if err != nil {
			return err
		}
		pending = append(pending, staged{tmpPath: tmpPath, destPath: a.Path})
	}

	if err := commit(pending); err != nil {
		return err
	}
	pending = nil
	return nil
}

// commit moves every staged file into place. On failure each destination
// already touched is put back the way it was.
func commit(pending []staged) error {
	var done []staged
	rollback := func() {
		for i := len(done) - 1; i >= 0; i-- {
			s := done[i]
			_ = os.Remove(s.destPath)
			if s.backupPath != "" {
				_ = rename(s.backupPath, s.destPath)
			}
		}
	}

	for _, s := range pending {
		if _, err := os.Stat(s.destPath); err == nil {
			// Moving the original aside also covers Windows, where rename
			// refuses an existing destination.
			s.backupPath = s.tmpPath + ".orig"
			if err := rename(s.destPath, s.backupPath); err != nil {
				rollback()
				return fmt.Errorf("failed to move aside existing %s: %w", s.destPath, err)
			}
		}
		if err := rename(s.tmpPath, s.destPath); err != nil {
			if s.backupPath != "" {
				_ = rename(s.backupPath, s.destPath)
			}
			rollback()
			return fmt.Errorf("failed to rename temp file to %s: %w", s.destPath, err)
		}
		done = append(done, s)
	}

	for _, s := range done {
		if s.backupPath != "" {
			_ = os.Remove(s.backupPath)
		}
	}
	return nil
}

func (w *Writer) stage(a Artifact) (string, error) {
	dir := filepath.Dir(a.Path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to ensure output directory: %w", err)
	}

	// Same directory keeps the rename on one filesystem
	tmpFile, err := os.CreateTemp(dir, "tmp-"+filepath.Base(a.Path)+"-*")
	if err != nil {
		return "", fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpPath := tmpFile.Name()

	fail := func(format string, err error) (string, error) {
		_ = tmpFile.Close()
		_ = os.Remove(tmpPath)
		return "", fmt.Errorf(format, err)
	}

	if _, err := tmpFile.Write(a.Data); err != nil {
		return fail("failed to write to temp file: %w", err)
	}
	if err := tmpFile.Sync(); err != nil {
		return fail("failed to fsync temp file: %w", err)
	}
	if err := tmpFile.Chmod(w.Perm); err != nil {
		return fail("failed to set permissions on temp file: %w", err)
	}
	if err := tmpFile.Close(); err != nil {
		_ = os.Remove(tmpPath)
		return "", fmt.Errorf("failed to close temp file: %w", err)
	}
	return tmpPath, nil
}
