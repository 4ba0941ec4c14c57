//go:build unit || e2e

package builder

import (
	"wedding-rsvp/internal/domain/guest"
	"wedding-rsvp/internal/infra/converter"
	"wedding-rsvp/internal/usecase/queries"
)

type GuestBuilder struct {
	ID                int
	Name              string
	PreWeddingInvited bool
	PlusOneAllowed    bool
	Headcount         int
}

func NewGuestBuilder() *GuestBuilder {
	return &GuestBuilder{
		ID:                1,
		Name:              "John Smith",
		PreWeddingInvited: true,
		PlusOneAllowed:    true,
		Headcount:         2,
	}
}

func (b *GuestBuilder) With(mutate func(*GuestBuilder)) *GuestBuilder {
	mutate(b)
	return b
}

func (b *GuestBuilder) WithID(id int) *GuestBuilder {
	b.ID = id
	return b
}

func (b *GuestBuilder) WithName(name string) *GuestBuilder {
	b.Name = name
	return b
}

// Solo drops the plus-one and the pre-wedding invitation.
func (b *GuestBuilder) Solo() *GuestBuilder {
	b.PlusOneAllowed = false
	b.PreWeddingInvited = false
	b.Headcount = 1
	return b
}

func (b *GuestBuilder) BuildDomain() (*guest.Guest, error) {
	return guest.NewGuest(guest.Params{
		ID:                b.ID,
		Name:              b.Name,
		PreWeddingInvited: b.PreWeddingInvited,
		PlusOneAllowed:    b.PlusOneAllowed,
		Headcount:         b.Headcount,
	})
}

// MustBuildDomain panics on invalid builder state; tests set valid defaults.
func (b *GuestBuilder) MustBuildDomain() *guest.Guest {
	g, err := b.BuildDomain()
	if err != nil {
		panic(err)
	}
	return g
}

func (b *GuestBuilder) BuildView() *queries.GuestView {
	g := b.MustBuildDomain()
	return &queries.GuestView{
		ID:                g.ID(),
		Name:              g.Name(),
		NameLower:         g.NameLower(),
		PreWeddingInvited: g.PreWeddingInvited(),
		PlusOneAllowed:    g.PlusOneAllowed(),
		Headcount:         g.Headcount(),
	}
}

func (b *GuestBuilder) BuildRecord() converter.GuestRecord {
	return converter.GuestToRecord(b.MustBuildDomain())
}

// Guests builds the named guests with ids from 1, all with a plus-one and a
// pre-wedding invitation.
func Guests(names ...string) []*guest.Guest {
	out := make([]*guest.Guest, len(names))
	for i, name := range names {
		out[i] = NewGuestBuilder().WithID(i + 1).WithName(name).MustBuildDomain()
	}
	return out
}
