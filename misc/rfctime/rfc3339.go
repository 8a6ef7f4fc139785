package rfctime

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"

	"gopkg.in/yaml.v3"
)

// Format string to stringify timestamps.
//
// It is RFC 3339 date-time with millisecond precision. Trailing zeros of the fraction are omitted,
// and UTC is written as "Z".
const RFC3339MilliFormat string = "2006-01-02T15:04:05.999Z07:00"

// Format string to parse timestamps.
//
// It accepts fractions of any length and both "Z" and numeric offsets.
const RFC3339ParseFormat string = time.RFC3339Nano

// date-time in https://www.ietf.org/rfc/rfc3339.txt .
// xAPI timestamps ("timestamp", "stored") are ISO 8601 date-times, and this is the profile of it
// which LRSs interchange.
type RFC3339 time.Time

// Now returns the current time truncated to milliseconds.
func Now() RFC3339 {
	return RFC3339(time.Now().Truncate(time.Millisecond))
}

func (rfctime RFC3339) Time() time.Time {
	return time.Time(rfctime)
}

func (rfctime RFC3339) IsZero() bool {
	return rfctime.Time().IsZero()
}

// Equal reports whether rfctime and other are the same instant at millisecond resolution,
// which is the resolution they are encoded with.
func (rfctime RFC3339) Equal(other RFC3339) bool {
	return rfctime.Time().Truncate(time.Millisecond).Equal(other.Time().Truncate(time.Millisecond))
}

// return true if this and other `.Time()` are equal.
// If other is nil, also return true.
//
// otherwise, return false.
func (rfctime RFC3339) Equiv(other interface{ Time() time.Time }) bool {
	return other == nil || rfctime.Time().Equal(other.Time())
}

// get string expression, formatted by RFC3339MilliFormat.
//
// Sub-millisecond part is truncated.
func (rfctime RFC3339) String() string {
	return rfctime.Time().Format(RFC3339MilliFormat)
}

// Parse string as RFC 3339 date-time.
//
// It truncates resolution to millisecond.
func Parse(s string) (RFC3339, error) {
	t, err := time.Parse(RFC3339ParseFormat, s)
	if err != nil {
		return *new(RFC3339), err
	}
	return RFC3339(t.Truncate(time.Millisecond)), nil
}

// Parse string as RFC 3339 date-time, or panic.
func MustParse(s string) RFC3339 {
	t, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return t
}

// implement encoding/json.Marshaller
func (t RFC3339) MarshalJSON() ([]byte, error) {
	return []byte(fmt.Sprintf(`"%s"`, t)), nil
}

// implement encoding/json.Unmarshaller
func (t *RFC3339) UnmarshalJSON(b []byte) error {
	if bytes.Equal(b, []byte("null")) {
		return nil
	}

	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	ret, err := Parse(s)
	if err != nil {
		return err
	}

	*t = ret

	return nil
}

// implement yaml.Marshaler
func (t RFC3339) MarshalYAML() (interface{}, error) {
	return yaml.Node{
		Kind:  yaml.ScalarNode,
		Value: t.String(),
		Style: yaml.DoubleQuotedStyle,
	}, nil
}

// implement yaml.Unmarshaler
func (t *RFC3339) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: timestamp should be a scalar", node.Line)
	}
	if node.ShortTag() == "!!null" {
		return nil
	}
	ret, err := Parse(node.Value)
	if err != nil {
		return fmt.Errorf("line %d: %w", node.Line, err)
	}
	*t = ret
	return nil
}
