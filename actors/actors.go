package actors

import (
	"encoding/json"

	"github.com/jonathanwoahn/xapi-types/internal/utils/cmp"
	"github.com/jonathanwoahn/xapi-types/objects"
	"gopkg.in/yaml.v3"
)

// A user account on an existing system, such as an LMS or intranet.
type Account struct {
	// The canonical home page for the system the account is on.
	// This is based on FOAF's accountServiceHomePage.
	HomePage string `json:"homePage" yaml:"homePage"`

	// The unique id or name used to log in to this account.
	// This is based on FOAF's accountName.
	Name string `json:"name" yaml:"name"`
}

func (a Account) Equal(o Account) bool {
	return a.HomePage == o.HomePage && a.Name == o.Name
}

// Identity is the set of properties shared by Agents and Groups.
//
// mbox, mbox_sha1sum, openid and account are Inverse Functional Identifiers.
type Identity struct {
	// Full name.
	Name string `json:"name,omitempty" yaml:"name,omitempty"`

	// "mailto:" IRI of an email address which has only ever been, and will only ever be,
	// assigned to this Agent.
	Mbox string `json:"mbox,omitempty" yaml:"mbox,omitempty"`

	// Hex-encoded SHA1 hash of a mailto IRI (the value of an mbox property).
	// An LRS may include Agents with a matching hash when a request is based on an mbox.
	MboxSha1Sum string `json:"mbox_sha1sum,omitempty" yaml:"mbox_sha1sum,omitempty"`

	// An OpenID which uniquely identifies the Agent.
	OpenId string `json:"openid,omitempty" yaml:"openid,omitempty"`

	// A user account on an existing system.
	Account *Account `json:"account,omitempty" yaml:"account,omitempty"`

	// Set by tracking libraries when the actor could not be fully identified.
	Degraded bool `json:"degraded,omitempty" yaml:"degraded,omitempty"`
}

func (i Identity) Equal(o Identity) bool {
	return i.Name == o.Name &&
		i.Mbox == o.Mbox &&
		i.MboxSha1Sum == o.MboxSha1Sum &&
		i.OpenId == o.OpenId &&
		cmp.PEqual(i.Account, o.Account) &&
		i.Degraded == o.Degraded
}

// Agent is an individual person or system.
//
// It encodes with "objectType": "Agent".
// The property is optional on input except when the Agent is the object of a Statement.
type Agent struct {
	Identity `yaml:",inline"`
}

func (a Agent) Equal(o Agent) bool {
	return a.Identity.Equal(o.Identity)
}

func (a Agent) MarshalJSON() ([]byte, error) {
	type Fields Agent
	return json.Marshal(struct {
		ObjectType objects.Type `json:"objectType"`
		Fields
	}{ObjectType: objects.TypeAgent, Fields: Fields(a)})
}

func (a *Agent) UnmarshalJSON(b []byte) error {
	type Fields Agent
	w := struct {
		ObjectType objects.Type `json:"objectType"`
		Fields
	}{}
	if err := json.Unmarshal(b, &w); err != nil {
		return err
	}
	if err := objects.Expect(objects.TypeAgent, w.ObjectType); err != nil {
		return err
	}
	*a = Agent(w.Fields)
	return nil
}

func (a Agent) MarshalYAML() (interface{}, error) {
	type Fields Agent
	return struct {
		ObjectType objects.Type `yaml:"objectType"`
		Fields     `yaml:",inline"`
	}{ObjectType: objects.TypeAgent, Fields: Fields(a)}, nil
}

func (a *Agent) UnmarshalYAML(node *yaml.Node) error {
	type Fields Agent
	w := struct {
		ObjectType objects.Type `yaml:"objectType"`
		Fields     `yaml:",inline"`
	}{}
	if err := node.Decode(&w); err != nil {
		return err
	}
	if err := objects.Expect(objects.TypeAgent, w.ObjectType); err != nil {
		return err
	}
	*a = Agent(w.Fields)
	return nil
}

// Group is a collection of Agents.
//
// An identified Group carries an Inverse Functional Identifier in its Identity;
// an anonymous Group is identified by its members only.
//
// It encodes with "objectType": "Group".
type Group struct {
	Identity `yaml:",inline"`

	// The members of this Group. This is an unordered list.
	Member []Agent `json:"member,omitempty" yaml:"member,omitempty"`
}

func (g Group) Equal(o Group) bool {
	return g.Identity.Equal(o.Identity) &&
		cmp.SliceEqualUnordered(g.Member, o.Member)
}

func (g Group) MarshalJSON() ([]byte, error) {
	type Fields Group
	return json.Marshal(struct {
		ObjectType objects.Type `json:"objectType"`
		Fields
	}{ObjectType: objects.TypeGroup, Fields: Fields(g)})
}

func (g *Group) UnmarshalJSON(b []byte) error {
	type Fields Group
	w := struct {
		ObjectType objects.Type `json:"objectType"`
		Fields
	}{}
	if err := json.Unmarshal(b, &w); err != nil {
		return err
	}
	if err := objects.Expect(objects.TypeGroup, w.ObjectType); err != nil {
		return err
	}
	*g = Group(w.Fields)
	return nil
}

func (g Group) MarshalYAML() (interface{}, error) {
	type Fields Group
	return struct {
		ObjectType objects.Type `yaml:"objectType"`
		Fields     `yaml:",inline"`
	}{ObjectType: objects.TypeGroup, Fields: Fields(g)}, nil
}

func (g *Group) UnmarshalYAML(node *yaml.Node) error {
	type Fields Group
	w := struct {
		ObjectType objects.Type `yaml:"objectType"`
		Fields     `yaml:",inline"`
	}{}
	if err := node.Decode(&w); err != nil {
		return err
	}
	if err := objects.Expect(objects.TypeGroup, w.ObjectType); err != nil {
		return err
	}
	*g = Group(w.Fields)
	return nil
}
