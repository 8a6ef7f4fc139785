package objects

import (
	"encoding/json"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
)

// StatementRef points at another Statement by its id.
//
// It encodes with "objectType": "StatementRef".
type StatementRef struct {
	// UUID of the referenced Statement.
	Id uuid.UUID `json:"id" yaml:"id"`
}

func (r StatementRef) Equal(o StatementRef) bool {
	return r.Id == o.Id
}

func (r StatementRef) MarshalJSON() ([]byte, error) {
	type Fields StatementRef
	return json.Marshal(struct {
		ObjectType Type `json:"objectType"`
		Fields
	}{ObjectType: TypeStatementRef, Fields: Fields(r)})
}

func (r *StatementRef) UnmarshalJSON(b []byte) error {
	type Fields StatementRef
	w := struct {
		ObjectType Type `json:"objectType"`
		Fields
	}{}
	if err := json.Unmarshal(b, &w); err != nil {
		return err
	}
	if err := Expect(TypeStatementRef, w.ObjectType); err != nil {
		return err
	}
	*r = StatementRef(w.Fields)
	return nil
}

func (r StatementRef) MarshalYAML() (interface{}, error) {
	type Fields StatementRef
	return struct {
		ObjectType Type `yaml:"objectType"`
		Fields     `yaml:",inline"`
	}{ObjectType: TypeStatementRef, Fields: Fields(r)}, nil
}

func (r *StatementRef) UnmarshalYAML(node *yaml.Node) error {
	type Fields StatementRef
	w := struct {
		ObjectType Type `yaml:"objectType"`
		Fields     `yaml:",inline"`
	}{}
	if err := node.Decode(&w); err != nil {
		return err
	}
	if err := Expect(TypeStatementRef, w.ObjectType); err != nil {
		return err
	}
	*r = StatementRef(w.Fields)
	return nil
}
