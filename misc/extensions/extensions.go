package extensions

import "reflect"

// Extensions maps IRIs to arbitrary JSON values.
//
// Values decoded from JSON are the types encoding/json produces for interface{}.
type Extensions map[string]interface{}

// Equal compares values deeply.
//
// Numbers of different Go types are not equal: float64(1) differs from int(1).
func (e Extensions) Equal(o Extensions) bool {
	if len(e) != len(o) {
		return false
	}
	for k, v := range e {
		w, ok := o[k]
		if !ok || !reflect.DeepEqual(v, w) {
			return false
		}
	}
	return true
}

// Get returns the value for iri.
func (e Extensions) Get(iri string) (interface{}, bool) {
	v, ok := e[iri]
	return v, ok
}
