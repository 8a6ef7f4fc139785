package contexts

import (
	"bytes"
	"encoding/json"

	"github.com/google/uuid"
	"github.com/jonathanwoahn/xapi-types/activities"
	"github.com/jonathanwoahn/xapi-types/actors"
	"github.com/jonathanwoahn/xapi-types/internal/utils/cmp"
	"github.com/jonathanwoahn/xapi-types/misc/extensions"
	"github.com/jonathanwoahn/xapi-types/objects"
	"gopkg.in/yaml.v3"
)

// Context gives a Statement more meaning.
//
// Examples: a team the Actor is working with, altitude at which a scenario was attempted
// in a flight simulator.
type Context struct {
	// The registration that the Statement is associated with.
	Registration *uuid.UUID `json:"registration,omitempty" yaml:"registration,omitempty"`

	// Instructor that the Statement relates to, if not included as the Actor of the Statement.
	// Agent, or maybe Group.
	Instructor *actors.Actor `json:"instructor,omitempty" yaml:"instructor,omitempty"`

	// Team that this Statement relates to, if not included as the Actor of the Statement.
	Team *actors.Actor `json:"team,omitempty" yaml:"team,omitempty"`

	// The types of learning activity context that this Statement is related to.
	ContextActivities *ContextActivities `json:"contextActivities,omitempty" yaml:"contextActivities,omitempty"`

	// Revision of the learning activity associated with this Statement. Format is free.
	Revision *string `json:"revision,omitempty" yaml:"revision,omitempty"`

	// Platform used in the experience of this learning activity.
	Platform *string `json:"platform,omitempty" yaml:"platform,omitempty"`

	// Code representing the language in which the experience being recorded in this Statement
	// (mainly) occurred in, if applicable and known. RFC 5646.
	Language *string `json:"language,omitempty" yaml:"language,omitempty"`

	// Another Statement to be considered as context for this Statement.
	StatementRef *objects.StatementRef `json:"statementRef,omitempty" yaml:"statementRef,omitempty"`

	// Any other domain-specific context relevant to this Statement.
	//
	// For example, in a flight simulator altitude, airspeed, wind, attitude, GPS coordinates
	// might all be relevant.
	Extensions extensions.Extensions `json:"extensions,omitempty" yaml:"extensions,omitempty"`
}

func (c Context) Equal(o Context) bool {
	return cmp.PEqEq(c.Registration, o.Registration) &&
		cmp.PEqual(c.Instructor, o.Instructor) &&
		cmp.PEqual(c.Team, o.Team) &&
		cmp.PEqual(c.ContextActivities, o.ContextActivities) &&
		cmp.PEqEq(c.Revision, o.Revision) &&
		cmp.PEqEq(c.Platform, o.Platform) &&
		cmp.PEqEq(c.Language, o.Language) &&
		cmp.PEqual(c.StatementRef, o.StatementRef) &&
		c.Extensions.Equal(o.Extensions)
}

// UnmarshalJSON reads StatementRef also from "statement", the property name in xAPI documents.
// "statementRef" takes precedence when both are given.
func (c *Context) UnmarshalJSON(b []byte) error {
	type Fields Context
	w := struct {
		Fields
		Statement *objects.StatementRef `json:"statement"`
	}{}
	if err := json.Unmarshal(b, &w); err != nil {
		return err
	}
	*c = Context(w.Fields)
	if c.StatementRef == nil {
		c.StatementRef = w.Statement
	}
	return nil
}

func (c *Context) UnmarshalYAML(node *yaml.Node) error {
	type Fields Context
	w := struct {
		Fields    `yaml:",inline"`
		Statement *objects.StatementRef `yaml:"statement"`
	}{}
	if err := node.Decode(&w); err != nil {
		return err
	}
	*c = Context(w.Fields)
	if c.StatementRef == nil {
		c.StatementRef = w.Statement
	}
	return nil
}

// ContextActivities maps a context type to the Activities related in that way.
//
// See: https://github.com/adlnet/xAPI-Spec/blob/master/xAPI-Data.md#details-15
type ContextActivities struct {
	// Activities with a direct relation to the Activity of the Statement,
	// e.g. the quiz a question belongs to.
	Parent ActivityList `json:"parent,omitempty" yaml:"parent,omitempty"`

	// Activities with an indirect relation, e.g. the course a quiz belongs to.
	Grouping ActivityList `json:"grouping,omitempty" yaml:"grouping,omitempty"`

	// Activities used to categorize the Statement, e.g. an xAPI profile.
	Category ActivityList `json:"category,omitempty" yaml:"category,omitempty"`

	// Contextual activities which do not fit any other type.
	Other ActivityList `json:"other,omitempty" yaml:"other,omitempty"`
}

func (c ContextActivities) Equal(o ContextActivities) bool {
	return c.Parent.Equal(o.Parent) &&
		c.Grouping.Equal(o.Grouping) &&
		c.Category.Equal(o.Category) &&
		c.Other.Equal(o.Other)
}

// ActivityList is an unordered list of Activities.
//
// It is always marshalled as an array, but it can be unmarshalled also from a single Activity.
type ActivityList []activities.Activity

func (l ActivityList) Equal(o ActivityList) bool {
	return cmp.SliceEqualUnordered(l, o)
}

func (l *ActivityList) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.HasPrefix(b, []byte("{")) {
		a := activities.Activity{}
		if err := json.Unmarshal(b, &a); err != nil {
			return err
		}
		*l = ActivityList{a}
		return nil
	}

	var as []activities.Activity
	if err := json.Unmarshal(b, &as); err != nil {
		return err
	}
	*l = as
	return nil
}

func (l *ActivityList) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.MappingNode {
		a := activities.Activity{}
		if err := node.Decode(&a); err != nil {
			return err
		}
		*l = ActivityList{a}
		return nil
	}

	var as []activities.Activity
	if err := node.Decode(&as); err != nil {
		return err
	}
	*l = as
	return nil
}
