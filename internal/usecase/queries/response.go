package queries

import (
	"context"

	"wedding-rsvp/internal/domain/rsvp"
	"wedding-rsvp/internal/pkg/errs"
	"wedding-rsvp/internal/usecase/shared"

	"github.com/jinzhu/copier"
)

//go:generate mockgen -source=response.go -destination=../../../tests/mock/queries/response_mock.go -package=queries
type ResponseQueries interface {
	// List returns every response in submission order.
	List(ctx context.Context) ([]ResponseView, error)
	Summary(ctx context.Context) (*SummaryView, error)
}

type responseQueriesImpl struct {
	guests    shared.GuestReadStore
	responses shared.ResponseStore
}

func NewResponseQueries(guests shared.GuestReadStore, responses shared.ResponseStore) ResponseQueries {
	return &responseQueriesImpl{
		guests:    guests,
		responses: responses,
	}
}

func (q *responseQueriesImpl) List(ctx context.Context) ([]ResponseView, error) {
	list, err := q.responses.LoadAll(ctx)
	if err != nil {
		return nil, errs.Wrap(err, "failed to load responses")
	}

	views := make([]ResponseView, 0, len(list))
	for _, r := range list {
		var v ResponseView
		if err := copier.Copy(&v, r); err != nil {
			return nil, errs.Wrap(err, "failed to map response view")
		}
		views = append(views, v)
	}
	return views, nil
}

func (q *responseQueriesImpl) Summary(ctx context.Context) (*SummaryView, error) {
	guests, err := shared.LoadGuests(ctx, q.guests)
	if err != nil {
		return nil, err
	}

	list, err := q.responses.LoadAll(ctx)
	if err != nil {
		return nil, errs.Wrap(err, "failed to load responses")
	}

	s := rsvp.Summarize(guests, list)
	view := SummaryView(s)
	return &view, nil
}
