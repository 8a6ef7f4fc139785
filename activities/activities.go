package activities

import (
	"encoding/json"
	"slices"

	"github.com/jonathanwoahn/xapi-types/internal/utils/cmp"
	"github.com/jonathanwoahn/xapi-types/misc/extensions"
	"github.com/jonathanwoahn/xapi-types/misc/langmap"
	"github.com/jonathanwoahn/xapi-types/objects"
	"gopkg.in/yaml.v3"
)

// IRI of the Activity type for interactions (questions, tasks) in the cmi.interaction sense.
const TypeCMIInteraction = "http://adlnet.gov/expapi/activities/cmi.interaction"

// The type of interaction.
//
// See: https://github.com/adlnet/xAPI-Spec/blob/master/xAPI-Data.md#details-10
type InteractionType string

const (
	TrueFalse   InteractionType = "true-false"
	Choice      InteractionType = "choice"
	FillIn      InteractionType = "fill-in"
	LongFillIn  InteractionType = "long-fill-in"
	Matching    InteractionType = "matching"
	Performance InteractionType = "performance"
	Sequencing  InteractionType = "sequencing"
	Likert      InteractionType = "likert"
	Numeric     InteractionType = "numeric"
	Other       InteractionType = "other"
)

func (i InteractionType) Known() bool {
	switch i {
	case TrueFalse, Choice, FillIn, LongFillIn, Matching,
		Performance, Sequencing, Likert, Numeric, Other:
		return true
	}
	return false
}

// One of the options of an interaction: a choice, a step, a point of a scale, or a source or
// target of matching.
type InteractionComponent struct {
	// Identifies the component within the interaction. Referred from correct response patterns.
	Id string `json:"id" yaml:"id"`

	// A description of the component, e.g. the text of a choice.
	Description langmap.LanguageMap `json:"description,omitempty" yaml:"description,omitempty"`
}

func (c InteractionComponent) Equal(o InteractionComponent) bool {
	return c.Id == o.Id && c.Description.Equal(o.Description)
}

// Definition describes an Activity.
type Definition struct {
	// The human readable/visual name of the Activity.
	Name langmap.LanguageMap `json:"name" yaml:"name"`

	// A description of the Activity.
	Description langmap.LanguageMap `json:"description,omitempty" yaml:"description,omitempty"`

	// IRI. The type of Activity.
	Type string `json:"type,omitempty" yaml:"type,omitempty"`

	// IRL which resolves to a document with human-readable information about the Activity,
	// which could include a way to launch the activity.
	MoreInfo string `json:"moreInfo,omitempty" yaml:"moreInfo,omitempty"`

	// The type of interaction.
	InteractionType InteractionType `json:"interactionType" yaml:"interactionType"`

	// Patterns representing the correct response to the interaction.
	//
	// The structure of a pattern varies depending on InteractionType.
	// See: https://github.com/adlnet/xAPI-Spec/blob/master/xAPI-Data.md#response-patterns
	CorrectResponsePattern []string `json:"correctResponsePattern,omitempty" yaml:"correctResponsePattern,omitempty"`

	// Options of "choice" and "sequencing" interactions.
	Choices []InteractionComponent `json:"choices,omitempty" yaml:"choices,omitempty"`

	// Ordered points of a "likert" interaction.
	Scale []InteractionComponent `json:"scale,omitempty" yaml:"scale,omitempty"`

	// Left hand side of a "matching" interaction.
	Source []InteractionComponent `json:"source,omitempty" yaml:"source,omitempty"`

	// Right hand side of a "matching" interaction.
	Target []InteractionComponent `json:"target,omitempty" yaml:"target,omitempty"`

	// Ordered steps of a "performance" interaction.
	Steps []InteractionComponent `json:"steps,omitempty" yaml:"steps,omitempty"`

	// A map of other properties as needed.
	Extensions extensions.Extensions `json:"extensions,omitempty" yaml:"extensions,omitempty"`
}

func (d Definition) Equal(o Definition) bool {
	return d.Name.Equal(o.Name) &&
		d.Description.Equal(o.Description) &&
		d.Type == o.Type &&
		d.MoreInfo == o.MoreInfo &&
		d.InteractionType == o.InteractionType &&
		sameStrings(d.CorrectResponsePattern, o.CorrectResponsePattern) &&
		cmp.SliceEqualUnordered(d.Choices, o.Choices) &&
		cmp.SliceEqual(d.Scale, o.Scale) &&
		cmp.SliceEqualUnordered(d.Source, o.Source) &&
		cmp.SliceEqualUnordered(d.Target, o.Target) &&
		cmp.SliceEqual(d.Steps, o.Steps) &&
		d.Extensions.Equal(o.Extensions)
}

// UnmarshalJSON reads correct response patterns also from "correctResponsesPattern",
// the spelling in xAPI documents. "correctResponsePattern" takes precedence when both are given.
func (d *Definition) UnmarshalJSON(b []byte) error {
	type Fields Definition
	w := struct {
		Fields
		CorrectResponsesPattern []string `json:"correctResponsesPattern"`
	}{}
	if err := json.Unmarshal(b, &w); err != nil {
		return err
	}
	*d = Definition(w.Fields)
	if d.CorrectResponsePattern == nil {
		d.CorrectResponsePattern = w.CorrectResponsesPattern
	}
	return nil
}

func (d *Definition) UnmarshalYAML(node *yaml.Node) error {
	type Fields Definition
	w := struct {
		Fields                  `yaml:",inline"`
		CorrectResponsesPattern []string `yaml:"correctResponsesPattern"`
	}{}
	if err := node.Decode(&w); err != nil {
		return err
	}
	*d = Definition(w.Fields)
	if d.CorrectResponsePattern == nil {
		d.CorrectResponsePattern = w.CorrectResponsesPattern
	}
	return nil
}

// compare as multisets
func sameStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	return slices.Equal(slices.Sorted(slices.Values(a)), slices.Sorted(slices.Values(b)))
}

// Activity is a unit of instruction, experience or performance which is to be tracked.
//
// It encodes with "objectType": "Activity".
type Activity struct {
	// IRI. An identifier for a single unique Activity.
	Id string `json:"id" yaml:"id"`

	Definition Definition `json:"definition" yaml:"definition"`
}

func (a Activity) Equal(o Activity) bool {
	return a.Id == o.Id && a.Definition.Equal(o.Definition)
}

func (a Activity) MarshalJSON() ([]byte, error) {
	type Fields Activity
	return json.Marshal(struct {
		ObjectType objects.Type `json:"objectType"`
		Fields
	}{ObjectType: objects.TypeActivity, Fields: Fields(a)})
}

func (a *Activity) UnmarshalJSON(b []byte) error {
	type Fields Activity
	w := struct {
		ObjectType objects.Type `json:"objectType"`
		Fields
	}{}
	if err := json.Unmarshal(b, &w); err != nil {
		return err
	}
	if err := objects.Expect(objects.TypeActivity, w.ObjectType); err != nil {
		return err
	}
	*a = Activity(w.Fields)
	return nil
}

func (a Activity) MarshalYAML() (interface{}, error) {
	type Fields Activity
	return struct {
		ObjectType objects.Type `yaml:"objectType"`
		Fields     `yaml:",inline"`
	}{ObjectType: objects.TypeActivity, Fields: Fields(a)}, nil
}

func (a *Activity) UnmarshalYAML(node *yaml.Node) error {
	type Fields Activity
	w := struct {
		ObjectType objects.Type `yaml:"objectType"`
		Fields     `yaml:",inline"`
	}{}
	if err := node.Decode(&w); err != nil {
		return err
	}
	if err := objects.Expect(objects.TypeActivity, w.ObjectType); err != nil {
		return err
	}
	*a = Activity(w.Fields)
	return nil
}
