// Package http provides the inbound HTTP adapter including routing and server lifecycle.
package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/marketplace-core/internal/adapters/http/handlers"
)

// Handlers groups the handlers mounted by NewRouter.
type Handlers struct {
	Work      *handlers.WorkHandler
	Bounty    *handlers.BountyHandler
	Hackathon *handlers.HackathonHandler
	Escrow    *handlers.EscrowHandler
	Lifecycle *handlers.LifecycleHandler
	Sweep     *handlers.SweepHandler
	Health    *handlers.HealthHandler
}

// NewRouter creates an HTTP handler with all application routes registered.
// Middleware is applied globally in the order given.
func NewRouter(h Handlers, middlewares ...func(http.Handler) http.Handler) http.Handler {
	r := chi.NewRouter()

	for _, mw := range middlewares {
		r.Use(mw)
	}

	// Health endpoints (outside /api/v1 prefix).
	r.Get("/health/live", h.Health.Liveness)
	r.Get("/health/ready", h.Health.Readiness)

	r.Route("/api/v1", func(r chi.Router) {
		// Projects and proposals.
		r.Get("/projects", h.Work.ListProjects)
		r.Post("/projects", h.Work.CreateProject)
		r.Get("/projects/{id}", h.Work.GetProject)
		r.Get("/projects/{id}/proposals", h.Work.ListProjectProposals)
		r.Post("/projects/{id}/proposals", h.Work.SubmitProposal)
		r.Post("/projects/{id}/proposals/reject-pending", h.Work.RejectPendingProposals)
		r.Get("/proposals", h.Work.ListProposals)
		r.Get("/proposals/{id}", h.Work.GetProposal)
		r.Post("/proposals/{id}/accept", h.Work.AcceptProposal)
		r.Post("/proposals/{id}/reject", h.Work.RejectProposal)
		r.Post("/proposals/{id}/withdraw", h.Work.WithdrawProposal)

		// Bounties and submissions.
		r.Get("/bounties", h.Bounty.ListBounties)
		r.Post("/bounties", h.Bounty.CreateBounty)
		r.Get("/bounties/{id}", h.Bounty.GetBounty)
		r.Post("/bounties/{id}/close", h.Bounty.CloseBounty)
		r.Get("/bounties/{id}/submissions", h.Bounty.ListBountySubmissions)
		r.Post("/bounties/{id}/submissions", h.Bounty.SubmitSolution)
		r.Post("/bounties/{id}/submissions/reject-pending", h.Bounty.RejectPendingSubmissions)
		r.Get("/submissions", h.Bounty.ListSubmissions)
		r.Get("/submissions/{id}", h.Bounty.GetSubmission)
		r.Post("/submissions/{id}/accept", h.Bounty.AcceptSubmission)
		r.Post("/submissions/{id}/reject", h.Bounty.RejectSubmission)

		// Hackathons and entries.
		r.Get("/hackathons", h.Hackathon.ListHackathons)
		r.Post("/hackathons", h.Hackathon.CreateHackathon)
		r.Get("/hackathons/upcoming", h.Hackathon.UpcomingHackathons)
		r.Get("/hackathons/{id}", h.Hackathon.GetHackathon)
		r.Get("/hackathons/{id}/entries", h.Hackathon.ListHackathonEntries)
		r.Post("/hackathons/{id}/entries", h.Hackathon.CreateEntry)
		r.Get("/hackathons/{id}/winners", h.Hackathon.WinningEntries)
		r.Get("/hackathons/{id}/registrations/{principal}", h.Hackathon.IsRegistered)
		r.Get("/entries", h.Hackathon.ListEntries)
		r.Get("/entries/{id}", h.Hackathon.GetEntry)
		r.Post("/entries/{id}/win", h.Hackathon.DeclareWinner)

		// Escrow protocol.
		r.Get("/payments", h.Escrow.ListPayments)
		r.Post("/payments", h.Escrow.CreateEscrow)
		r.Get("/payments/{id}", h.Escrow.GetPayment)
		r.Post("/payments/{id}/deposit", h.Escrow.Deposit)
		r.Post("/payments/{id}/release", h.Escrow.Release)
		r.Post("/payments/{id}/refund", h.Escrow.Refund)
		r.Post("/payments/{id}/dispute", h.Escrow.Dispute)

		// Kind-agnostic reads and single-entity transitions.
		r.Get("/entities/{kind}", h.Lifecycle.List)
		r.Get("/entities/{kind}/{id}", h.Lifecycle.Get)
		r.Post("/entities/{kind}/{id}/transitions", h.Lifecycle.Transition)

		r.Post("/sweeps/{kind}", h.Sweep.Sweep)
	})

	return r
}
