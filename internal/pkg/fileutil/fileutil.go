package fileutil

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"wedding-rsvp/internal/pkg/errs"

	"github.com/gofrs/flock"
)

const lockRetryDelay = 10 * time.Millisecond

var ErrLockTimeout = errs.New("timed out waiting for file lock")

// WithExclusiveLock holds an advisory lock on lockPath while fn runs.
// The lock is released on every return path, including a panic in fn.
func WithExclusiveLock(ctx context.Context, lockPath string, timeout time.Duration, fn func() error) error {
	if err := os.MkdirAll(filepath.Dir(lockPath), 0o700); err != nil {
		return errs.Wrap(err, "failed to create lock directory")
	}

	lockCtx := ctx
	if timeout > 0 {
		var cancel context.CancelFunc
		lockCtx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	lock := flock.New(lockPath)
	locked, err := lock.TryLockContext(lockCtx, lockRetryDelay)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return errs.Mark(err, ErrLockTimeout)
		}
		return errs.Wrapf(err, "failed to lock %s", lockPath)
	}
	if !locked {
		return ErrLockTimeout
	}
	defer func() {
		if unlockErr := lock.Unlock(); unlockErr != nil {
			slog.Warn("failed to release file lock", "path", lockPath, "error", unlockErr.Error())
		}
	}()

	return fn()
}

// WriteAtomic replaces path with data via a temp file and rename, so readers
// see either the old or the new content.
func WriteAtomic(path string, data []byte, perm os.FileMode) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return errs.Wrap(err, "failed to create data directory")
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return errs.Wrap(err, "failed to create temp file")
	}
	tmpName := tmp.Name()
	defer func() {
		// no-op after a successful rename
		_ = os.Remove(tmpName)
	}()

	if _, err = tmp.Write(data); err != nil {
		_ = tmp.Close()
		return errs.Wrap(err, "failed to write temp file")
	}
	if err = tmp.Sync(); err != nil {
		_ = tmp.Close()
		return errs.Wrap(err, "failed to sync temp file")
	}
	if err = tmp.Close(); err != nil {
		return errs.Wrap(err, "failed to close temp file")
	}
	if err = os.Chmod(tmpName, perm); err != nil {
		return errs.Wrap(err, "failed to set file mode")
	}
	if err = os.Rename(tmpName, path); err != nil {
		return errs.Wrap(err, "failed to replace file")
	}
	return nil
}

// ReadIfExists returns nil data and no error when path does not exist.
func ReadIfExists(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}
	return data, nil
}
