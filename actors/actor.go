package actors

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/jonathanwoahn/xapi-types/internal/utils/cmp"
	"github.com/jonathanwoahn/xapi-types/objects"
	"gopkg.in/yaml.v3"
)

// Actor is either an Agent or a Group.
//
// Exactly one of the fields should be set. When decoding, an actor without "objectType" is an Agent.
type Actor struct {
	Agent *Agent
	Group *Group
}

func OfAgent(a Agent) Actor {
	return Actor{Agent: &a}
}

func OfGroup(g Group) Actor {
	return Actor{Group: &g}
}

// ObjectType returns the objectType of the set variant, or "" if none is set.
func (a Actor) ObjectType() objects.Type {
	switch {
	case a.Agent != nil:
		return objects.TypeAgent
	case a.Group != nil:
		return objects.TypeGroup
	}
	return ""
}

// Identity returns the Identity of the set variant.
func (a Actor) Identity() (Identity, bool) {
	switch {
	case a.Agent != nil:
		return a.Agent.Identity, true
	case a.Group != nil:
		return a.Group.Identity, true
	}
	return Identity{}, false
}

func (a Actor) Equal(o Actor) bool {
	return cmp.PEqual(a.Agent, o.Agent) && cmp.PEqual(a.Group, o.Group)
}

func (a Actor) variant() (interface{}, error) {
	switch {
	case a.Agent != nil && a.Group != nil:
		return nil, fmt.Errorf("actor: %w", objects.ErrMultipleVariants)
	case a.Agent != nil:
		return a.Agent, nil
	case a.Group != nil:
		return a.Group, nil
	}
	return nil, fmt.Errorf("actor: %w", objects.ErrNoVariant)
}

func (a Actor) MarshalJSON() ([]byte, error) {
	v, err := a.variant()
	if err != nil {
		return nil, err
	}
	return json.Marshal(v)
}

func (a *Actor) UnmarshalJSON(b []byte) error {
	if bytes.Equal(bytes.TrimSpace(b), []byte("null")) {
		return nil
	}

	ty, err := objects.PeekJSON(b)
	if err != nil {
		return err
	}

	switch ty {
	case "", objects.TypeAgent:
		agent := new(Agent)
		if err := json.Unmarshal(b, agent); err != nil {
			return err
		}
		*a = Actor{Agent: agent}
	case objects.TypeGroup:
		group := new(Group)
		if err := json.Unmarshal(b, group); err != nil {
			return err
		}
		*a = Actor{Group: group}
	default:
		return objects.Unknown(ty, objects.TypeAgent, objects.TypeGroup)
	}
	return nil
}

func (a Actor) MarshalYAML() (interface{}, error) {
	return a.variant()
}

func (a *Actor) UnmarshalYAML(node *yaml.Node) error {
	if node.ShortTag() == "!!null" {
		return nil
	}

	ty, err := objects.PeekYAML(node)
	if err != nil {
		return err
	}

	switch ty {
	case "", objects.TypeAgent:
		agent := new(Agent)
		if err := node.Decode(agent); err != nil {
			return err
		}
		*a = Actor{Agent: agent}
	case objects.TypeGroup:
		group := new(Group)
		if err := node.Decode(group); err != nil {
			return err
		}
		*a = Actor{Group: group}
	default:
		return objects.Unknown(ty, objects.TypeAgent, objects.TypeGroup)
	}
	return nil
}
