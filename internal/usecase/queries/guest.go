package queries

import (
	"context"

	"wedding-rsvp/internal/domain/guest"
	"wedding-rsvp/internal/domain/rsvp"
	"wedding-rsvp/internal/pkg/errs"
	"wedding-rsvp/internal/usecase/shared"

	"github.com/jinzhu/copier"
)

//go:generate mockgen -source=guest.go -destination=../../../tests/mock/queries/guest_mock.go -package=queries
type GuestQueries interface {
	// LookupByName validates the query and runs the fuzzy match.
	LookupByName(ctx context.Context, name string) (*LookupResult, error)
	// LookupByID resolves a candidate picked by the guest. Unknown ids are ResultNoMatch.
	LookupByID(ctx context.Context, id int) (*LookupResult, error)
}

type guestQueriesImpl struct {
	guests    shared.GuestReadStore
	responses shared.ResponseStore
}

func NewGuestQueries(guests shared.GuestReadStore, responses shared.ResponseStore) GuestQueries {
	return &guestQueriesImpl{
		guests:    guests,
		responses: responses,
	}
}

func (q *guestQueriesImpl) LookupByName(ctx context.Context, name string) (*LookupResult, error) {
	query, err := guest.NewSearchName(name)
	if err != nil {
		return nil, err
	}

	guests, submitted, err := q.load(ctx)
	if err != nil {
		return nil, err
	}

	return toLookupResult(guest.Search(query, guests, submitted))
}

func (q *guestQueriesImpl) LookupByID(ctx context.Context, id int) (*LookupResult, error) {
	guests, submitted, err := q.load(ctx)
	if err != nil {
		return nil, err
	}

	g, _ := guest.FindByID(guests, id)
	return toLookupResult(guest.Resolve(g, submitted))
}

func (q *guestQueriesImpl) load(ctx context.Context) ([]*guest.Guest, guest.SubmittedSet, error) {
	guests, err := shared.LoadGuests(ctx, q.guests)
	if err != nil {
		return nil, nil, err
	}

	responses, err := q.responses.LoadAll(ctx)
	if err != nil {
		return nil, nil, errs.Wrap(err, "failed to load responses")
	}

	return guests, rsvp.SubmittedIDs(responses), nil
}

func toLookupResult(res guest.SearchResult) (*LookupResult, error) {
	out := &LookupResult{Kind: res.Kind}

	if res.Guest != nil {
		view, err := toGuestView(res.Guest)
		if err != nil {
			return nil, err
		}
		out.Guest = view
	}

	for _, c := range res.Candidates {
		out.Candidates = append(out.Candidates, CandidateView{
			ID:               c.Guest.ID(),
			Name:             c.Guest.Name(),
			AlreadySubmitted: c.AlreadySubmitted,
			Score:            c.Score,
		})
	}
	return out, nil
}

func toGuestView(g *guest.Guest) (*GuestView, error) {
	var view GuestView
	if err := copier.Copy(&view, g); err != nil {
		return nil, errs.Wrap(err, "failed to map guest view")
	}
	return &view, nil
}
