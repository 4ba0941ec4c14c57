//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"wedding-rsvp/internal/domain/guest"
	"wedding-rsvp/internal/domain/rsvp"
	reqdto "wedding-rsvp/internal/handler/dto/request"
	"wedding-rsvp/internal/infra"
	"wedding-rsvp/internal/pkg/clock"
	"wedding-rsvp/internal/pkg/errs"
	"wedding-rsvp/internal/usecase/commands"
	"wedding-rsvp/tests/common/builder"
	"wedding-rsvp/tests/common/fake"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)

type submitCase struct {
	name   string
	mutate func(*builder.RSVPBuilder)
	errIs  error
	kind   error
}

func TestRSVPCommands_Submit(t *testing.T) {
	ctx := context.Background()

	t.Run("records the response", func(t *testing.T) {
		responses := fake.NewResponseStore()
		cmds := commands.NewRSVPCommands(fake.NewGuestStore(builder.Guests("John Smith")...), responses, clock.NewMockClock(now))

		require.NoError(t, cmds.Submit(ctx, builder.NewRSVPBuilder().BuildDTO()))

		list, err := responses.LoadAll(ctx)
		require.NoError(t, err)
		require.Len(t, list, 1)
		r := list[0]
		assert.Equal(t, 1, r.GuestID())
		assert.Equal(t, "John Smith", r.GuestName())
		assert.True(t, r.AttendingPrimaryEvent())
		assert.True(t, r.AttendingSecondaryEvent())
		assert.True(t, r.PlusOneAttending())
		assert.Equal(t, "Marie Keyrouz", r.PlusOneName())
		assert.Equal(t, now, r.SubmittedAt())
	})

	t.Run("options the guest was not offered are dropped", func(t *testing.T) {
		responses := fake.NewResponseStore()
		solo := builder.NewGuestBuilder().Solo().MustBuildDomain()
		cmds := commands.NewRSVPCommands(fake.NewGuestStore(solo), responses, clock.NewMockClock(now))

		require.NoError(t, cmds.Submit(ctx, builder.NewRSVPBuilder().BuildDTO()))

		list, err := responses.LoadAll(ctx)
		require.NoError(t, err)
		require.Len(t, list, 1)
		assert.True(t, list[0].AttendingPrimaryEvent())
		assert.False(t, list[0].AttendingSecondaryEvent())
		assert.False(t, list[0].PlusOneAttending())
		assert.Empty(t, list[0].PlusOneName())
	})

	t.Run("second submission is a conflict and changes nothing", func(t *testing.T) {
		responses := fake.NewResponseStore()
		cmds := commands.NewRSVPCommands(fake.NewGuestStore(builder.Guests("John Smith")...), responses, clock.NewMockClock(now))
		req := builder.NewRSVPBuilder().BuildDTO()

		require.NoError(t, cmds.Submit(ctx, req))
		before, err := responses.LoadAll(ctx)
		require.NoError(t, err)

		req.AttendingPrimaryEvent = false
		err = cmds.Submit(ctx, req)
		assert.ErrorIs(t, err, rsvp.ErrAlreadySubmitted)
		assert.True(t, errs.Is(err, errs.ErrConflict))

		after, err := responses.LoadAll(ctx)
		require.NoError(t, err)
		assert.Equal(t, before, after)
	})

	t.Run("validation", func(t *testing.T) {
		runSubmitCases(t, []submitCase{
			{
				name:   "missing guest id",
				mutate: func(b *builder.RSVPBuilder) { b.GuestID = 0 },
				errIs:  reqdto.ErrInvalidSubmission,
				kind:   errs.ErrInvalidInput,
			},
			{
				name:   "negative guest id",
				mutate: func(b *builder.RSVPBuilder) { b.GuestID = -4 },
				errIs:  reqdto.ErrInvalidSubmission,
				kind:   errs.ErrInvalidInput,
			},
			{
				name:   "digits in plus-one name",
				mutate: func(b *builder.RSVPBuilder) { b.PlusOneName = "R2D2" },
				errIs:  rsvp.ErrInvalidPlusOneName,
				kind:   errs.ErrInvalidInput,
			},
			{
				name:   "unknown guest",
				mutate: func(b *builder.RSVPBuilder) { b.GuestID = 42 },
				errIs:  commands.ErrGuestNotFound,
				kind:   errs.ErrNotFound,
			},
			{
				name:   "plus-one name is stripped of markup",
				mutate: func(b *builder.RSVPBuilder) { b.PlusOneName = "<i>Marie</i>" },
			},
			{
				name:   "blank plus-one name is allowed",
				mutate: func(b *builder.RSVPBuilder) { b.PlusOneName = "   " },
			},
		})
	})

	t.Run("body is validated before the dataset is read", func(t *testing.T) {
		guests := fake.NewGuestStore()
		guests.Err = assert.AnError
		cmds := commands.NewRSVPCommands(guests, fake.NewResponseStore(), clock.NewMockClock(now))

		err := cmds.Submit(ctx, builder.NewRSVPBuilder().With(func(b *builder.RSVPBuilder) { b.PlusOneName = "x<>1" }).BuildDTO())
		assert.ErrorIs(t, err, rsvp.ErrInvalidPlusOneName)
	})

	t.Run("store failure is a server fault", func(t *testing.T) {
		responses := fake.NewResponseStore()
		responses.WithinErr = infra.WrapRepoErr("timed out waiting for response lock", assert.AnError, infra.KindLockTimeout)
		cmds := commands.NewRSVPCommands(fake.NewGuestStore(builder.Guests("John Smith")...), responses, clock.NewMockClock(now))

		err := cmds.Submit(ctx, builder.NewRSVPBuilder().BuildDTO())
		assert.True(t, errs.Is(err, errs.ErrServerFault))
		assert.Equal(t, 0, responses.Len())
	})
}

func runSubmitCases(t *testing.T, cases []submitCase) {
	t.Helper()
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			responses := fake.NewResponseStore()
			guests := []*guest.Guest{builder.NewGuestBuilder().MustBuildDomain()}
			cmds := commands.NewRSVPCommands(fake.NewGuestStore(guests...), responses, clock.NewMockClock(now))

			err := cmds.Submit(context.Background(), builder.NewRSVPBuilder().With(tc.mutate).BuildDTO())
			if tc.errIs != nil {
				assert.ErrorIs(t, err, tc.errIs)
				assert.True(t, errs.Is(err, tc.kind))
				assert.Equal(t, 0, responses.Len())
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, 1, responses.Len())
		})
	}
}
