// Package filelock writes exported reports so that a reader never sees a
// half-written file, even when two exports target the same path.
//
// A write takes an advisory lock on a sibling "<path>.lock" file, writes the
// bytes to a temp file in the target directory and renames it into place.
// Exported reports may contain health information, so files are created
// readable by the owner only.
package filelock

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/gofrs/flock"
)

// ReportMode is the permission applied to written reports
const ReportMode os.FileMode = 0600

// retryDelay is how often a blocked writer re-checks the lock
const retryDelay = 50 * time.Millisecond

// ErrLocked is returned when the lock could not be taken before the context
// was done.
var ErrLocked = errors.New("file is locked by another writer")

// Lock is an advisory lock on a single lock file.
type Lock struct {
	flock *flock.Flock
	path  string
}

// NewLock creates a lock backed by the file at path. The file is created on
// first use.
func NewLock(path string) *Lock {
	return &Lock{
		flock: flock.New(path),
		path:  path,
	}
}

// LockPath returns the lock file used when writing target.
func LockPath(target string) string {
	return target + ".lock"
}

// Acquire blocks until the lock is held or ctx is done.
func (l *Lock) Acquire(ctx context.Context) error {
	ok, err := l.flock.TryLockContext(ctx, retryDelay)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return fmt.Errorf("%w: %s: %v", ErrLocked, l.path, ctxErr)
		}
		return fmt.Errorf("failed to acquire lock on %s: %w", l.path, err)
	}
	if !ok {
		return fmt.Errorf("%w: %s", ErrLocked, l.path)
	}
	return nil
}

// TryAcquire takes the lock without blocking and reports whether it did.
func (l *Lock) TryAcquire() (bool, error) {
	ok, err := l.flock.TryLock()
	if err != nil {
		return false, fmt.Errorf("failed to try lock on %s: %w", l.path, err)
	}
	return ok, nil
}

// Release drops the lock.
func (l *Lock) Release() error {
	if err := l.flock.Unlock(); err != nil {
		return fmt.Errorf("failed to release lock on %s: %w", l.path, err)
	}
	return nil
}

// Path returns the lock file path.
func (l *Lock) Path() string {
	return l.path
}

// WriteAtomic writes data to path through a temp file and rename. The parent
// directory is created when missing. On failure the previous file, if any,
// is left untouched.
func WriteAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, ".report-*")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpPath := tmp.Name()

	committed := false
	defer func() {
		if !committed {
			tmp.Close()
			os.Remove(tmpPath)
		}
	}()

	if _, err := tmp.Write(data); err != nil {
		return fmt.Errorf("failed to write temp file: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		return fmt.Errorf("failed to sync temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close temp file: %w", err)
	}
	if err := os.Chmod(tmpPath, ReportMode); err != nil {
		return fmt.Errorf("failed to set permissions: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("failed to rename temp file to %s: %w", path, err)
	}

	committed = true
	return nil
}

// WriteLocked holds LockPath(path) while atomically writing data to path.
// The empty lock file is left in place; removing it would let a waiting
// writer lock an unlinked file.
func WriteLocked(ctx context.Context, path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", filepath.Dir(path), err)
	}

	lock := NewLock(LockPath(path))
	if err := lock.Acquire(ctx); err != nil {
		return err
	}
	defer lock.Release()

	return WriteAtomic(path, data)
}
