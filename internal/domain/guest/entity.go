package guest

import (
	"strings"

	"wedding-rsvp/internal/pkg/errs"
)

var (
	ErrInvalidGuestID = errs.NewKind("guest id must be positive", errs.ErrInvalidInput)
	ErrEmptyGuestName = errs.NewKind("guest name is empty", errs.ErrInvalidInput)
)

// Guest is an invitee from the dataset. The server never mutates it.
type Guest struct {
	id                int
	name              string
	nameLower         string
	preWeddingInvited bool
	plusOneAllowed    bool
	headcount         int
}

type Params struct {
	ID                int
	Name              string
	NameLower         string // precomputed by the dataset; derived from Name when empty
	PreWeddingInvited bool
	PlusOneAllowed    bool
	Headcount         int // derived from PlusOneAllowed when zero
}

func NewGuest(p Params) (*Guest, error) {
	if p.ID <= 0 {
		return nil, ErrInvalidGuestID
	}

	name := strings.TrimSpace(p.Name)
	if name == "" {
		return nil, ErrEmptyGuestName
	}

	nameLower := p.NameLower
	if nameLower == "" {
		nameLower = strings.ToLower(name)
	}

	headcount := p.Headcount
	if headcount <= 0 {
		headcount = 1
		if p.PlusOneAllowed {
			headcount++
		}
	}

	return &Guest{
		id:                p.ID,
		name:              name,
		nameLower:         nameLower,
		preWeddingInvited: p.PreWeddingInvited,
		plusOneAllowed:    p.PlusOneAllowed,
		headcount:         headcount,
	}, nil
}

func (g *Guest) ID() int                 { return g.id }
func (g *Guest) Name() string            { return g.name }
func (g *Guest) NameLower() string       { return g.nameLower }
func (g *Guest) PreWeddingInvited() bool { return g.preWeddingInvited }
func (g *Guest) PlusOneAllowed() bool    { return g.plusOneAllowed }
func (g *Guest) Headcount() int          { return g.headcount }

func FindByID(guests []*Guest, id int) (*Guest, bool) {
	for _, g := range guests {
		if g.id == id {
			return g, true
		}
	}
	return nil, false
}
