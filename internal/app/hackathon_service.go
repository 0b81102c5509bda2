package app

import (
	"cmp"
	"context"
	"fmt"
	"log/slog"
	"slices"
	"strconv"

	"github.com/jsamuelsen11/marketplace-core/internal/app/lifecycle"
	"github.com/jsamuelsen11/marketplace-core/internal/domain"
	"github.com/jsamuelsen11/marketplace-core/internal/domain/hackathon"
	"github.com/jsamuelsen11/marketplace-core/internal/ports"
)

var _ ports.HackathonService = (*HackathonService)(nil)

// HackathonService implements ports.HackathonService. Organizer and team-lead
// transitions other than declaring a winner go through LifecycleService.
type HackathonService struct {
	core   Core
	logger *slog.Logger
}

// NewHackathonService creates a HackathonService. A nil logger discards output.
func NewHackathonService(core Core, logger *slog.Logger) *HackathonService {
	return &HackathonService{core: core, logger: orDiscard(logger)}
}

// CreateHackathon validates h and stores it with registration open.
func (s *HackathonService) CreateHackathon(ctx context.Context, h *hackathon.Hackathon) (*hackathon.Hackathon, error) {
	s.logger.InfoContext(ctx, "creating hackathon", slog.String("organizer", string(h.Organizer)))

	if err := h.Validate(); err != nil {
		return nil, err
	}
	created, err := s.core.Machine.Create(ctx, h.Organizer, h)
	if err != nil {
		logFailure(ctx, s.logger, "CreateHackathon", domain.KindHackathon, 0, err)
		return nil, err
	}
	return lifecycle.As[*hackathon.Hackathon](created)
}

// GetHackathon returns the hackathon with id.
func (s *HackathonService) GetHackathon(ctx context.Context, id uint64) (*hackathon.Hackathon, error) {
	return lifecycle.Load[*hackathon.Hackathon](ctx, s.core.store(), domain.KindHackathon, id)
}

// ListHackathons returns hackathons selected by filter.
func (s *HackathonService) ListHackathons(ctx context.Context, filter domain.Filter) ([]*hackathon.Hackathon, error) {
	return list[*hackathon.Hackathon](ctx, s.core.store(), hackathon.Graph, filter)
}

// CreateEntry registers a Draft entry while registration is open. The store
// holds one entry per team lead and hackathon.
func (s *HackathonService) CreateEntry(ctx context.Context, e *hackathon.Entry) (*hackathon.Entry, error) {
	s.logger.InfoContext(ctx, "registering hackathon entry",
		slog.Uint64("hackathon_id", e.HackathonID),
		slog.String("team_lead", string(e.TeamLead)),
	)

	if err := e.Validate(); err != nil {
		return nil, err
	}
	h, err := s.GetHackathon(ctx, e.HackathonID)
	if err != nil {
		return nil, err
	}
	if !h.RegistrationOpen(s.core.Machine.Clock().Now()) {
		return nil, fmt.Errorf("%w: hackathon %d is not accepting registrations", domain.ErrInvalidStatus, h.ID)
	}

	created, err := s.core.Machine.Create(ctx, e.TeamLead, e)
	if err != nil {
		logFailure(ctx, s.logger, "CreateEntry", domain.KindEntry, 0, err)
		return nil, err
	}
	return lifecycle.As[*hackathon.Entry](created)
}

// GetEntry returns the entry with id.
func (s *HackathonService) GetEntry(ctx context.Context, id uint64) (*hackathon.Entry, error) {
	return lifecycle.Load[*hackathon.Entry](ctx, s.core.store(), domain.KindEntry, id)
}

// ListEntries returns entries selected by filter.
func (s *HackathonService) ListEntries(ctx context.Context, filter domain.Filter) ([]*hackathon.Entry, error) {
	return list[*hackathon.Entry](ctx, s.core.store(), hackathon.EntryGraph, filter)
}

// DeclareWinner moves a finalist to Winner and completes its hackathon as
// one unit.
func (s *HackathonService) DeclareWinner(ctx context.Context, caller domain.Principal, entryID uint64) (*hackathon.Entry, *hackathon.Hackathon, error) {
	s.logger.InfoContext(ctx, "declaring hackathon winner", slog.Uint64("entry_id", entryID))

	entry, err := s.GetEntry(ctx, entryID)
	if err != nil {
		return nil, nil, err
	}
	h, err := s.GetHackathon(ctx, entry.HackathonID)
	if err != nil {
		return nil, nil, err
	}

	child, parent, err := s.core.Coordinator.Apply(ctx, lifecycle.Pair{
		Operation: "declare_winner",
		Caller:    caller,
		Child:     entry,
		ChildTo:   hackathon.EntryWinner,
		Parent:    h,
		ParentTo:  hackathon.StatusCompleted,
	})
	if err != nil {
		logFailure(ctx, s.logger, "DeclareWinner", domain.KindEntry, entryID, err)
		return nil, nil, err
	}

	winner, err := lifecycle.As[*hackathon.Entry](child)
	if err != nil {
		return nil, nil, err
	}
	completed, err := lifecycle.As[*hackathon.Hackathon](parent)
	if err != nil {
		return nil, nil, err
	}
	return winner, completed, nil
}

// UpcomingHackathons returns hackathons in their registration phase whose
// start is still ahead, ordered by start.
func (s *HackathonService) UpcomingHackathons(ctx context.Context) ([]*hackathon.Hackathon, error) {
	now := s.core.Machine.Clock().Now()

	var out []*hackathon.Hackathon
	for _, status := range []domain.Status{hackathon.StatusRegistrationOpen, hackathon.StatusRegistrationClosed} {
		found, err := s.ListHackathons(ctx, domain.Filter{Index: domain.IndexStatus, Key: string(status)})
		if err != nil {
			return nil, err
		}
		for _, h := range found {
			if h.Upcoming(now) {
				out = append(out, h)
			}
		}
	}
	slices.SortFunc(out, func(a, b *hackathon.Hackathon) int {
		if c := a.Start().Compare(b.Start()); c != 0 {
			return c
		}
		return cmp.Compare(a.ID, b.ID)
	})
	return out, nil
}

// WinningEntries returns the entries of hackathonID that won.
func (s *HackathonService) WinningEntries(ctx context.Context, hackathonID uint64) ([]*hackathon.Entry, error) {
	entries, err := s.entriesOf(ctx, hackathonID)
	if err != nil {
		return nil, err
	}
	return slices.DeleteFunc(entries, func(e *hackathon.Entry) bool {
		return e.Status != hackathon.EntryWinner
	}), nil
}

// IsRegistered reports whether user is on any team entered in hackathonID.
func (s *HackathonService) IsRegistered(ctx context.Context, hackathonID uint64, user domain.Principal) (bool, error) {
	entries, err := s.entriesOf(ctx, hackathonID)
	if err != nil {
		return false, err
	}
	return slices.ContainsFunc(entries, func(e *hackathon.Entry) bool { return e.Includes(user) }), nil
}

func (s *HackathonService) entriesOf(ctx context.Context, hackathonID uint64) ([]*hackathon.Entry, error) {
	if _, err := s.GetHackathon(ctx, hackathonID); err != nil {
		return nil, err
	}
	return s.ListEntries(ctx, domain.Filter{Index: domain.IndexParent, Key: strconv.FormatUint(hackathonID, 10)})
}
