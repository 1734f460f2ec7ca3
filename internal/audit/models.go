// Package audit records credential view and share events. Events are
// append-only facts: never updated, only inserted, and consumed solely for
// dashboard aggregation.
package audit

import (
	"time"

	id "skillpass/pkg/domain"
)

// Kind distinguishes the two event families.
type Kind string

const (
	KindView  Kind = "view"
	KindShare Kind = "share"
)

// Origin captures where a public view came from. The user agent is parsed
// into coarse fields up front so aggregation never re-parses raw strings.
type Origin struct {
	IP        string
	UserAgent string
	Browser   string
	OS        string
	Device    string
}

// Event is a single immutable audit fact about a credential.
type Event struct {
	CredentialID id.CredentialID
	Kind         Kind
	Platform     string    // share events only: "linkedin", "twitter", "email", ...
	ActorID      id.UserID // share events only; nil for anonymous views
	Origin       Origin    // view events only
	OccurredAt   time.Time
}
