package bootstrap

import (
	"log/slog"

	"wedding-rsvp/internal/infra/readstore"
	"wedding-rsvp/internal/infra/uow"
	"wedding-rsvp/internal/pkg/config"
	"wedding-rsvp/internal/pkg/ratelimit"

	"go.uber.org/fx"
)

var StorageModule = fx.Module("storage",
	fx.Provide(
		NewGuestReadStore,
		NewResponseStore,
		NewWindowStore,
	),
)

func NewGuestReadStore(cfg config.Config) *readstore.GuestReadStore {
	return readstore.NewGuestReadStore(cfg.Storage.GuestsFile)
}

func NewResponseStore(cfg config.Config) *uow.FileUoW {
	return uow.NewFileUoW(cfg.Storage.RSVPsFile, cfg.Storage.LockTimeout)
}

// An empty RATE_LIMIT_DIR keeps windows in memory, which is only correct
// for a single server process.
func NewWindowStore(cfg config.Config) (ratelimit.WindowStore, error) {
	if cfg.RateLimit.Dir == "" {
		slog.Warn("rate limit windows kept in memory")
		return ratelimit.NewMemoryStore(), nil
	}
	return ratelimit.NewFileStore(cfg.RateLimit.Dir, cfg.Storage.LockTimeout)
}
