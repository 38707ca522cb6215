package engine

import (
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"go.uber.org/zap"
)

// Save writes the buffer to its path. An untitled buffer returns
// ErrNoPath.
func (b *Buffer) Save() error {
	if b.path == "" {
		return ErrNoPath
	}
	return b.SaveAs(b.path)
}

// SaveAs writes the buffer to path in its encoding and makes path the
// buffer's path. The file is replaced atomically: readers see either the
// old content or the new, never a partial write. On failure the buffer
// is unchanged.
func (b *Buffer) SaveAs(path string) error {
	var written int64
	err := writeFileAtomic(path, func(w io.Writer) error {
		n, err := encodeTo(w, b.text, b.encoding)
		written = n
		return err
	})
	if err != nil {
		b.logger.Error("buffer save failed", zap.String("path", path), zap.Error(err))
		return &FileError{Op: "save", Path: path, Err: err}
	}

	b.path = path
	b.savedNode = b.history.Current()
	if b.syntax == nil && b.syntaxEnabled && b.language == "" {
		// An untitled buffer picks up its language from the first path.
		b.syntax = b.newSynchronizer()
	}
	b.logger.Info("buffer saved",
		zap.String("path", path),
		zap.Int64("bytes", written),
		zap.Stringer("encoding", b.encoding))
	b.notify(EventSave, nil)
	return nil
}

// writeFileAtomic streams the output of write to a temporary file next to
// path and renames it over path. An existing file keeps its permissions.
func writeFileAtomic(path string, write func(io.Writer) error) (err error) {
	mode := fs.FileMode(0o644)
	if info, statErr := os.Stat(path); statErr == nil {
		mode = info.Mode().Perm()
	} else if !errors.Is(statErr, fs.ErrNotExist) {
		return statErr
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tmp.Close()
			_ = os.Remove(tmp.Name())
		}
	}()

	if err = write(tmp); err != nil {
		return err
	}
	if err = tmp.Sync(); err != nil {
		return err
	}
	if err = tmp.Chmod(mode); err != nil {
		return err
	}
	if err = tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}
