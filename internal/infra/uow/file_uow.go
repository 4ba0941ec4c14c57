package uow

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"wedding-rsvp/internal/domain/rsvp"
	"wedding-rsvp/internal/infra"
	"wedding-rsvp/internal/infra/converter"
	"wedding-rsvp/internal/infra/readstore"
	"wedding-rsvp/internal/pkg/errs"
	"wedding-rsvp/internal/pkg/fileutil"
	"wedding-rsvp/internal/usecase/shared"
)

// FileUoW serializes writers of the response list with an advisory lock on
// a sibling .lock file. The in-process mutex covers goroutines of this
// process, since flock is per open file description.
type FileUoW struct {
	*readstore.ResponseReadStore

	path        string
	lockPath    string
	lockTimeout time.Duration
	mu          sync.Mutex
}

func NewFileUoW(path string, lockTimeout time.Duration) *FileUoW {
	return &FileUoW{
		ResponseReadStore: readstore.NewResponseReadStore(path),
		path:              path,
		lockPath:          path + ".lock",
		lockTimeout:       lockTimeout,
	}
}

var _ shared.ResponseStore = (*FileUoW)(nil)

func (u *FileUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.ResponseTx) error) error {
	u.mu.Lock()
	defer u.mu.Unlock()

	err := fileutil.WithExclusiveLock(ctx, u.lockPath, u.lockTimeout, func() error {
		current, err := readstore.ReadResponses(u.path)
		if err != nil {
			return err
		}

		tx := &fileTx{current: current}
		if err := fn(ctx, tx); err != nil {
			return err
		}
		if !tx.dirty {
			return nil
		}
		return u.commit(tx.next)
	})
	if errs.Is(err, fileutil.ErrLockTimeout) {
		return infra.WrapRepoErr("timed out waiting for response lock", err, infra.KindLockTimeout)
	}
	return err
}

func (u *FileUoW) commit(list []*rsvp.Response) error {
	data, err := json.MarshalIndent(converter.ResponsesToRecords(list), "", "  ")
	if err != nil {
		return infra.WrapRepoErr("failed to encode responses", err, infra.KindDecodeFailure)
	}
	if err := fileutil.WriteAtomic(u.path, data, 0o600); err != nil {
		return infra.WrapRepoErr("failed to write responses", err)
	}
	return nil
}

type fileTx struct {
	current []*rsvp.Response
	next    []*rsvp.Response
	dirty   bool
}

// Responses returns a copy so fn cannot alias the committed slice.
func (t *fileTx) Responses() []*rsvp.Response {
	out := make([]*rsvp.Response, len(t.current))
	copy(out, t.current)
	return out
}

func (t *fileTx) Save(list []*rsvp.Response) {
	t.next = list
	t.dirty = true
}
