package domain

// Kind identifies an entity kind tracked by the lifecycle core.
type Kind string

const (
	KindProject    Kind = "project"
	KindProposal   Kind = "proposal"
	KindBounty     Kind = "bounty"
	KindSubmission Kind = "bounty_submission"
	KindHackathon  Kind = "hackathon"
	KindEntry      Kind = "hackathon_project"
	KindPayment    Kind = "payment"
)

// IsValid returns true if the kind is one of the defined constants.
func (k Kind) IsValid() bool {
	switch k {
	case KindProject, KindProposal, KindBounty, KindSubmission,
		KindHackathon, KindEntry, KindPayment:
		return true
	default:
		return false
	}
}

// String implements fmt.Stringer.
func (k Kind) String() string {
	return string(k)
}

// Principal is a verified caller identity. Verification happens outside the
// core; an empty Principal is never authorized for anything.
type Principal string

// String implements fmt.Stringer.
func (p Principal) String() string {
	return string(p)
}

// System is the actor recorded for transitions that no caller initiated,
// such as deadline sweeps.
const System Principal = "system"
