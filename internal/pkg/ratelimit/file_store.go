package ratelimit

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"wedding-rsvp/internal/pkg/errs"
	"wedding-rsvp/internal/pkg/fileutil"

	"github.com/cespare/xxhash/v2"
)

// FileStore keeps each window in <dir>/<xxhash(key)>.json as a JSON array of
// unix milliseconds. Concurrent writers to one key are serialized by a sibling
// .lock file; the count is best-effort, not a strict distributed limit.
type FileStore struct {
	dir         string
	lockTimeout time.Duration
}

func NewFileStore(dir string, lockTimeout time.Duration) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, errs.Wrapf(err, "failed to create rate limit dir %s", dir)
	}
	return &FileStore{dir: dir, lockTimeout: lockTimeout}, nil
}

func (s *FileStore) Path(key string) string {
	return filepath.Join(s.dir, fmt.Sprintf("%016x.json", xxhash.Sum64String(key)))
}

func (s *FileStore) Update(ctx context.Context, key string, fn func([]time.Time) ([]time.Time, bool)) error {
	path := s.Path(key)

	return fileutil.WithExclusiveLock(ctx, path+".lock", s.lockTimeout, func() error {
		window := s.read(path)

		next, save := fn(window)
		if !save {
			return nil
		}

		millis := make([]int64, len(next))
		for i, ts := range next {
			millis[i] = ts.UnixMilli()
		}
		data, err := json.Marshal(millis)
		if err != nil {
			return errs.Wrap(err, "failed to encode rate limit window")
		}
		return fileutil.WriteAtomic(path, data, 0o600)
	})
}

// An unreadable window is treated as empty rather than blocking the client.
func (s *FileStore) read(path string) []time.Time {
	data, err := fileutil.ReadIfExists(path)
	if err != nil {
		slog.Warn("failed to read rate limit window", "path", path, "error", err.Error())
		return nil
	}
	if len(data) == 0 {
		return nil
	}

	var millis []int64
	if err := json.Unmarshal(data, &millis); err != nil {
		slog.Warn("discarding corrupt rate limit window", "path", path, "error", err.Error())
		return nil
	}

	window := make([]time.Time, len(millis))
	for i, ms := range millis {
		window[i] = time.UnixMilli(ms)
	}
	return window
}
