package statements

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/jonathanwoahn/xapi-types/activities"
	"github.com/jonathanwoahn/xapi-types/actors"
	"github.com/jonathanwoahn/xapi-types/internal/utils/cmp"
	"github.com/jonathanwoahn/xapi-types/objects"
	"gopkg.in/yaml.v3"
)

// Object is what the Statement is about: an Activity, an Agent, a Group or another Statement.
//
// Exactly one of the fields should be set. When decoding, an object without "objectType" is an Activity.
type Object struct {
	Activity     *activities.Activity
	Agent        *actors.Agent
	Group        *actors.Group
	StatementRef *objects.StatementRef
}

func OfActivity(a activities.Activity) Object {
	return Object{Activity: &a}
}

func OfAgent(a actors.Agent) Object {
	return Object{Agent: &a}
}

func OfGroup(g actors.Group) Object {
	return Object{Group: &g}
}

func OfStatementRef(r objects.StatementRef) Object {
	return Object{StatementRef: &r}
}

// ObjectType returns the objectType of the set variant, or "" if none is set.
//
// When more than one variant is set, the first in order of
// Activity, Agent, Group and StatementRef wins.
func (o Object) ObjectType() objects.Type {
	switch {
	case o.Activity != nil:
		return objects.TypeActivity
	case o.Agent != nil:
		return objects.TypeAgent
	case o.Group != nil:
		return objects.TypeGroup
	case o.StatementRef != nil:
		return objects.TypeStatementRef
	}
	return ""
}

func (o Object) Equal(other Object) bool {
	return cmp.PEqual(o.Activity, other.Activity) &&
		cmp.PEqual(o.Agent, other.Agent) &&
		cmp.PEqual(o.Group, other.Group) &&
		cmp.PEqual(o.StatementRef, other.StatementRef)
}

func (o Object) variant() (interface{}, error) {
	var v interface{}
	n := 0
	if o.Activity != nil {
		v, n = o.Activity, n+1
	}
	if o.Agent != nil {
		v, n = o.Agent, n+1
	}
	if o.Group != nil {
		v, n = o.Group, n+1
	}
	if o.StatementRef != nil {
		v, n = o.StatementRef, n+1
	}

	switch n {
	case 0:
		return nil, fmt.Errorf("object: %w", objects.ErrNoVariant)
	case 1:
		return v, nil
	default:
		return nil, fmt.Errorf("object: %w", objects.ErrMultipleVariants)
	}
}

func (o Object) MarshalJSON() ([]byte, error) {
	v, err := o.variant()
	if err != nil {
		return nil, err
	}
	return json.Marshal(v)
}

func (o *Object) UnmarshalJSON(b []byte) error {
	if bytes.Equal(bytes.TrimSpace(b), []byte("null")) {
		return nil
	}

	ty, err := objects.PeekJSON(b)
	if err != nil {
		return err
	}

	var v interface{}
	next := Object{}
	switch ty {
	case "", objects.TypeActivity:
		next.Activity = new(activities.Activity)
		v = next.Activity
	case objects.TypeAgent:
		next.Agent = new(actors.Agent)
		v = next.Agent
	case objects.TypeGroup:
		next.Group = new(actors.Group)
		v = next.Group
	case objects.TypeStatementRef:
		next.StatementRef = new(objects.StatementRef)
		v = next.StatementRef
	default:
		return objects.Unknown(
			ty, objects.TypeActivity, objects.TypeAgent, objects.TypeGroup, objects.TypeStatementRef,
		)
	}

	if err := json.Unmarshal(b, v); err != nil {
		return err
	}
	*o = next
	return nil
}

func (o Object) MarshalYAML() (interface{}, error) {
	return o.variant()
}

func (o *Object) UnmarshalYAML(node *yaml.Node) error {
	if node.ShortTag() == "!!null" {
		return nil
	}

	ty, err := objects.PeekYAML(node)
	if err != nil {
		return err
	}

	var v interface{}
	next := Object{}
	switch ty {
	case "", objects.TypeActivity:
		next.Activity = new(activities.Activity)
		v = next.Activity
	case objects.TypeAgent:
		next.Agent = new(actors.Agent)
		v = next.Agent
	case objects.TypeGroup:
		next.Group = new(actors.Group)
		v = next.Group
	case objects.TypeStatementRef:
		next.StatementRef = new(objects.StatementRef)
		v = next.StatementRef
	default:
		return objects.Unknown(
			ty, objects.TypeActivity, objects.TypeAgent, objects.TypeGroup, objects.TypeStatementRef,
		)
	}

	if err := node.Decode(v); err != nil {
		return err
	}
	*o = next
	return nil
}
