package verbs

import "github.com/jonathanwoahn/xapi-types/misc/langmap"

// Verb is the action taken by the Actor.
type Verb struct {
	// IRI corresponding to a Verb definition.
	// Each Verb definition corresponds to the meaning of a Verb, not the word.
	Id string `json:"id" yaml:"id"`

	// The human readable representation of the Verb in one or more languages.
	//
	// It does not have any impact on the meaning of the Statement, but serves to give a
	// human-readable display of the meaning already determined by the chosen Verb.
	Display langmap.LanguageMap `json:"display" yaml:"display"`
}

func (v Verb) Equal(o Verb) bool {
	return v.Id == o.Id && v.Display.Equal(o.Display)
}

// IsVoiding reports whether v is the reserved verb to void a Statement.
func (v Verb) IsVoiding() bool {
	return v.Id == IRIVoided
}
