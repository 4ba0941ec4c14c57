package components

import (
	"wedding-rsvp/internal/infra/readstore"
	"wedding-rsvp/internal/infra/uow"
	"wedding-rsvp/internal/usecase/shared"

	"go.uber.org/fx"
)

// PersistenceModule exposes the file stores through the usecase interfaces.
var PersistenceModule = fx.Module("persistence",
	fx.Provide(
		func(s *readstore.GuestReadStore) shared.GuestReadStore { return s },
		func(s *uow.FileUoW) shared.ResponseStore { return s },
	),
)
