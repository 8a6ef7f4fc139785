package statements

import (
	"github.com/google/uuid"
	"github.com/jonathanwoahn/xapi-types/actors"
	"github.com/jonathanwoahn/xapi-types/attachments"
	"github.com/jonathanwoahn/xapi-types/contexts"
	"github.com/jonathanwoahn/xapi-types/internal/utils/cmp"
	"github.com/jonathanwoahn/xapi-types/misc/rfctime"
	"github.com/jonathanwoahn/xapi-types/objects"
	"github.com/jonathanwoahn/xapi-types/results"
	"github.com/jonathanwoahn/xapi-types/verbs"
)

// xAPI version which this data model follows.
const Version = "1.0.3"

// Statement is a record of an experience: "Actor Verb Object", with optional Result and Context.
type Statement struct {
	// UUID assigned by LRS if not set by the Learning Record Provider.
	Id *uuid.UUID `json:"id,omitempty" yaml:"id,omitempty"`

	// Whom the Statement is about, as an Agent or Group.
	Actor actors.Actor `json:"actor" yaml:"actor"`

	// Action taken by the Actor.
	Verb verbs.Verb `json:"verb" yaml:"verb"`

	// Activity, Agent, or another Statement that is the Object of the Statement.
	Object Object `json:"object" yaml:"object"`

	// Further details representing a measured outcome.
	Result *results.Result `json:"result,omitempty" yaml:"result,omitempty"`

	// Context that gives the Statement more meaning.
	Context *contexts.Context `json:"context,omitempty" yaml:"context,omitempty"`

	// When the events described within this Statement occurred.
	// Set by the LRS if not provided.
	Timestamp rfctime.RFC3339 `json:"timestamp" yaml:"timestamp"`

	// When this Statement was recorded. Set by LRS.
	Stored *rfctime.RFC3339 `json:"stored,omitempty" yaml:"stored,omitempty"`

	// Agent who is asserting this Statement is true. Verified by the LRS based on authentication.
	//
	// Set by LRS if not provided or if a strong trust relationship between the Learning Record
	// Provider and LRS has not been established.
	Authority *actors.Agent `json:"authority,omitempty" yaml:"authority,omitempty"`

	// The xAPI version of the Statement, formatted according to Semantic Versioning 1.0.0.
	Version string `json:"version,omitempty" yaml:"version,omitempty"`

	// Headers for Attachments to the Statement.
	Attachments []attachments.Attachment `json:"attachments,omitempty" yaml:"attachments,omitempty"`
}

func (s Statement) Equal(o Statement) bool {
	return cmp.PEqEq(s.Id, o.Id) &&
		s.Actor.Equal(o.Actor) &&
		s.Verb.Equal(o.Verb) &&
		s.Object.Equal(o.Object) &&
		cmp.PEqual(s.Result, o.Result) &&
		cmp.PEqual(s.Context, o.Context) &&
		s.Timestamp.Equal(o.Timestamp) &&
		cmp.PEqual(s.Stored, o.Stored) &&
		cmp.PEqual(s.Authority, o.Authority) &&
		s.Version == o.Version &&
		cmp.SliceEqualUnordered(s.Attachments, o.Attachments)
}

// Voids returns the StatementRef which s voids.
//
// A Statement voids another when its Verb is "voided" and its Object is a StatementRef.
func (s Statement) Voids() (objects.StatementRef, bool) {
	if !s.Verb.IsVoiding() || s.Object.StatementRef == nil {
		return objects.StatementRef{}, false
	}
	return *s.Object.StatementRef, true
}
