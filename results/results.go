package results

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/jonathanwoahn/xapi-types/internal/utils/cmp"
	"github.com/jonathanwoahn/xapi-types/internal/utils/pointer"
	"github.com/jonathanwoahn/xapi-types/misc/extensions"
	"gopkg.in/yaml.v3"
)

// Score of the Agent in relation to the success or quality of the experience.
//
// All properties are decimal numbers. They are marshalled as numbers, and unmarshalled
// from numbers or strings of decimal numbers (e.g. "85").
type Score struct {
	// The score related to the experience as modified by scaling and/or normalization.
	// Between -1 and 1, inclusive.
	Scaled *float64 `json:"scaled,omitempty" yaml:"scaled,omitempty"`

	// The score achieved by the Actor in the experience described by the Statement.
	// This is not modified by any scaling or normalization.
	// Between Min and Max (if present, otherwise unrestricted), inclusive.
	Raw *float64 `json:"raw,omitempty" yaml:"raw,omitempty"`

	// The lowest possible score for the experience described by the Statement.
	// Less than Max (if present).
	Min *float64 `json:"min,omitempty" yaml:"min,omitempty"`

	// The highest possible score for the experience described by the Statement.
	// Greater than Min (if present).
	Max *float64 `json:"max,omitempty" yaml:"max,omitempty"`
}

func (s Score) Equal(o Score) bool {
	return cmp.PEqEq(s.Scaled, o.Scaled) &&
		cmp.PEqEq(s.Raw, o.Raw) &&
		cmp.PEqEq(s.Min, o.Min) &&
		cmp.PEqEq(s.Max, o.Max)
}

func (s *Score) UnmarshalJSON(b []byte) error {
	// json.Number accepts also a string holding a valid number.
	w := struct {
		Scaled json.Number `json:"scaled"`
		Raw    json.Number `json:"raw"`
		Min    json.Number `json:"min"`
		Max    json.Number `json:"max"`
	}{}
	if err := json.Unmarshal(b, &w); err != nil {
		return err
	}

	ret := Score{}
	for _, f := range []struct {
		name string
		n    json.Number
		dest **float64
	}{
		{"scaled", w.Scaled, &ret.Scaled},
		{"raw", w.Raw, &ret.Raw},
		{"min", w.Min, &ret.Min},
		{"max", w.Max, &ret.Max},
	} {
		if f.n == "" {
			continue
		}
		v, err := f.n.Float64()
		if err != nil {
			return fmt.Errorf("score %s: %w", f.name, err)
		}
		*f.dest = pointer.Ref(v)
	}
	*s = ret
	return nil
}

func (s *Score) UnmarshalYAML(node *yaml.Node) error {
	w := struct {
		Scaled *string `yaml:"scaled"`
		Raw    *string `yaml:"raw"`
		Min    *string `yaml:"min"`
		Max    *string `yaml:"max"`
	}{}
	if err := node.Decode(&w); err != nil {
		return err
	}

	ret := Score{}
	for _, f := range []struct {
		name string
		expr *string
		dest **float64
	}{
		{"scaled", w.Scaled, &ret.Scaled},
		{"raw", w.Raw, &ret.Raw},
		{"min", w.Min, &ret.Min},
		{"max", w.Max, &ret.Max},
	} {
		if f.expr == nil {
			continue
		}
		v, err := strconv.ParseFloat(*f.expr, 64)
		if err != nil {
			return fmt.Errorf("line %d: score %s: %w", node.Line, f.name, err)
		}
		*f.dest = pointer.Ref(v)
	}
	*s = ret
	return nil
}

// Result is a measured outcome related to the Statement in which it is included.
type Result struct {
	// The score of the Agent in relation to the success or quality of the experience.
	Score *Score `json:"score,omitempty" yaml:"score,omitempty"`

	// Indicates whether or not the attempt on the Activity was successful.
	Success *bool `json:"success,omitempty" yaml:"success,omitempty"`

	// Indicates whether or not the Activity was completed.
	Completion *bool `json:"completion,omitempty" yaml:"completion,omitempty"`

	// A response appropriately formatted for the given Activity.
	Response *string `json:"response,omitempty" yaml:"response,omitempty"`

	// Period of time over which the Statement occurred, as ISO 8601 duration (e.g. "PT1H30M").
	Duration *string `json:"duration,omitempty" yaml:"duration,omitempty"`

	// A map of other properties as needed.
	Extensions extensions.Extensions `json:"extensions,omitempty" yaml:"extensions,omitempty"`
}

func (r Result) Equal(o Result) bool {
	return cmp.PEqual(r.Score, o.Score) &&
		cmp.PEqEq(r.Success, o.Success) &&
		cmp.PEqEq(r.Completion, o.Completion) &&
		cmp.PEqEq(r.Response, o.Response) &&
		cmp.PEqEq(r.Duration, o.Duration) &&
		r.Extensions.Equal(o.Extensions)
}
