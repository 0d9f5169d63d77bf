package fca

import "encoding/json"

type conceptRecord[X comparable, Y comparable] struct {
	Objects    []X `json:"objects"`
	Attributes []Y `json:"attributes"`
}

// MarshalConceptsJSON renders concepts as a JSON array of {objects,
// attributes} records, each sorted the same way Bitset.Members orders them.
func MarshalConceptsJSON[X comparable, Y comparable](concepts []Concept[X, Y]) ([]byte, error) {
	records := make([]conceptRecord[X, Y], len(concepts))
	for i, c := range concepts {
		records[i] = conceptRecord[X, Y]{
			Objects:    c.Objects.Members(),
			Attributes: c.Attributes.Members(),
		}
	}

	return json.MarshalIndent(records, "", "  ")
}
