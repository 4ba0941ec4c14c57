package commands

import (
	"context"
	"log/slog"

	"wedding-rsvp/internal/domain/guest"
	"wedding-rsvp/internal/domain/rsvp"
	reqdto "wedding-rsvp/internal/handler/dto/request"
	"wedding-rsvp/internal/pkg/clock"
	"wedding-rsvp/internal/pkg/errs"
	"wedding-rsvp/internal/usecase/shared"
)

var ErrGuestNotFound = errs.NewKind("guest not found", errs.ErrNotFound)

//go:generate mockgen -source=rsvp.go -destination=../../../tests/mock/commands/rsvp_mock.go -package=commands
type RSVPCommands interface {
	// Submit records the guest's response once. A second submission for the
	// same guest fails with rsvp.ErrAlreadySubmitted and changes nothing.
	Submit(ctx context.Context, req reqdto.SubmitRSVPRequest) error
}

type rsvpCommandsImpl struct {
	guests    shared.GuestReadStore
	responses shared.ResponseStore
	clock     clock.Clock
}

func NewRSVPCommands(guests shared.GuestReadStore, responses shared.ResponseStore, clk clock.Clock) RSVPCommands {
	return &rsvpCommandsImpl{
		guests:    guests,
		responses: responses,
		clock:     clk,
	}
}

func (c *rsvpCommandsImpl) Submit(ctx context.Context, req reqdto.SubmitRSVPRequest) error {
	guestID, attendance, err := req.ToDomain()
	if err != nil {
		return err
	}

	g, err := c.findGuest(ctx, guestID)
	if err != nil {
		return err
	}

	response, err := rsvp.NewResponse(g, attendance, c.clock.Now())
	if err != nil {
		return err
	}

	err = c.responses.Within(ctx, func(ctx context.Context, tx shared.ResponseTx) error {
		list, err := rsvp.Append(tx.Responses(), response)
		if err != nil {
			return err
		}
		tx.Save(list)
		return nil
	})
	if err != nil {
		return err
	}

	slog.Info("rsvp recorded",
		"guest_id", response.GuestID(),
		"attending_primary", response.AttendingPrimaryEvent(),
		"attending_secondary", response.AttendingSecondaryEvent(),
		"plus_one", response.PlusOneAttending())
	return nil
}

func (c *rsvpCommandsImpl) findGuest(ctx context.Context, id int) (*guest.Guest, error) {
	guests, err := shared.LoadGuests(ctx, c.guests)
	if err != nil {
		return nil, err
	}

	g, ok := guest.FindByID(guests, id)
	if !ok {
		return nil, ErrGuestNotFound
	}
	return g, nil
}
