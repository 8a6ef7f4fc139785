package objects

import (
	"encoding/json"
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

// Type is the value of the "objectType" property.
type Type string

const (
	TypeActivity     Type = "Activity"
	TypeAgent        Type = "Agent"
	TypeGroup        Type = "Group"
	TypeStatementRef Type = "StatementRef"
)

var (
	// objectType names none of the variants acceptable at that position.
	ErrUnknownObjectType = errors.New("unknown objectType")

	// objectType names a variant other than the type being decoded.
	ErrObjectTypeMismatch = errors.New("objectType mismatch")

	// a union value has none of its variants set.
	ErrNoVariant = errors.New("no variant is set")

	// a union value has more than one of its variants set.
	ErrMultipleVariants = errors.New("more than one variant is set")
)

// Known reports whether t is one of the object types of the xAPI data model.
func (t Type) Known() bool {
	switch t {
	case TypeActivity, TypeAgent, TypeGroup, TypeStatementRef:
		return true
	}
	return false
}

func (t Type) String() string {
	return string(t)
}

// PeekJSON returns the "objectType" of the JSON object b.
//
// When the property is missing or null, it returns "".
func PeekJSON(b []byte) (Type, error) {
	probe := struct {
		ObjectType Type `json:"objectType"`
	}{}
	if err := json.Unmarshal(b, &probe); err != nil {
		return "", err
	}
	return probe.ObjectType, nil
}

// PeekYAML is PeekJSON for a YAML mapping node.
func PeekYAML(node *yaml.Node) (Type, error) {
	probe := struct {
		ObjectType Type `yaml:"objectType"`
	}{}
	if err := node.Decode(&probe); err != nil {
		return "", err
	}
	return probe.ObjectType, nil
}

// Expect returns nil if actual is want or is omitted ("").
//
// Otherwise, it returns an error wrapping ErrObjectTypeMismatch.
func Expect(want Type, actual Type) error {
	if actual == "" || actual == want {
		return nil
	}
	return fmt.Errorf(`%w: expected "%s" but got "%s"`, ErrObjectTypeMismatch, want, actual)
}

// Unknown returns an error wrapping ErrUnknownObjectType, listing acceptable types.
func Unknown(actual Type, acceptable ...Type) error {
	return fmt.Errorf(`%w: "%s" (acceptable: %v)`, ErrUnknownObjectType, actual, acceptable)
}
