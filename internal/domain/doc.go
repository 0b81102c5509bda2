// Package domain contains shared domain types used across entity sub-packages.
// Entity-specific types live in sub-packages (domain/work, domain/bounty,
// domain/hackathon, domain/escrow). This root package holds the entity header
// and kind enumeration, the transition graph type, sentinel errors, events,
// and the Action interface shared by all lifecycle operations.
package domain
