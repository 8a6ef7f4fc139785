package langmap

import (
	"maps"
	"slices"
)

// Primary language tag of xAPI documents.
const EnUS = "en-US"

// LanguageMap holds one string per language, keyed by RFC 5646 language tag.
type LanguageMap map[string]string

// New returns a LanguageMap with a single en-US entry.
func New(enUS string) LanguageMap {
	return LanguageMap{EnUS: enUS}
}

func (m LanguageMap) Equal(o LanguageMap) bool {
	return maps.Equal(m, o)
}

// Get returns the string for the first of langs present in m.
//
// If none of them are present, it falls back to en-US, then to the lexically first tag.
// ok is false only when m is empty.
func (m LanguageMap) Get(langs ...string) (string, bool) {
	for _, l := range langs {
		if s, ok := m[l]; ok {
			return s, true
		}
	}
	if s, ok := m[EnUS]; ok {
		return s, true
	}
	if len(m) == 0 {
		return "", false
	}
	return m[slices.Min(slices.Collect(maps.Keys(m)))], true
}

// Languages returns the language tags in m, sorted.
func (m LanguageMap) Languages() []string {
	return slices.Sorted(maps.Keys(m))
}
