package models

import (
	"fmt"
	"strings"
)

// FeatureVector is an ordered mapping from feature name to numeric value,
// built fresh per prediction request. Insertion order is preserved; the
// final row handed to the model is produced by Reindex against the model's
// declared feature schema.
type FeatureVector struct {
	names  []string
	values map[string]float64
}

func NewFeatureVector() *FeatureVector {
	return &FeatureVector{values: make(map[string]float64)}
}

// Set assigns a feature value, recording the name on first assignment.
func (v *FeatureVector) Set(name string, value float64) {
	if _, ok := v.values[name]; !ok {
		v.names = append(v.names, name)
	}
	v.values[name] = value
}

// Get returns a feature value by name.
func (v *FeatureVector) Get(name string) (float64, bool) {
	val, ok := v.values[name]
	return val, ok
}

// Names returns the feature names in insertion order.
func (v *FeatureVector) Names() []string {
	out := make([]string, len(v.names))
	copy(out, v.names)
	return out
}

// Len returns the number of features in the vector.
func (v *FeatureVector) Len() int {
	return len(v.names)
}

// Reindex returns the vector's values reordered to the given feature name
// list. The key sets must match exactly: a feature the model declares but
// the vector lacks, or a vector feature the model does not declare, is a
// SchemaMismatchError. Values are never defaulted.
func (v *FeatureVector) Reindex(order []string) ([]float64, error) {
	var mismatch SchemaMismatchError
	row := make([]float64, 0, len(order))
	seen := make(map[string]bool, len(order))
	for _, name := range order {
		seen[name] = true
		val, ok := v.values[name]
		if !ok {
			mismatch.Missing = append(mismatch.Missing, name)
			continue
		}
		row = append(row, val)
	}
	for _, name := range v.names {
		if !seen[name] {
			mismatch.Extra = append(mismatch.Extra, name)
		}
	}
	if len(mismatch.Missing) > 0 || len(mismatch.Extra) > 0 {
		return nil, &mismatch
	}
	return row, nil
}

// SchemaMismatchError reports a mismatch between an assembled feature set
// and a model's declared feature schema.
type SchemaMismatchError struct {
	Missing []string // declared by the model, absent from the vector
	Extra   []string // present in the vector, not declared by the model
}

func (e *SchemaMismatchError) Error() string {
	var parts []string
	if len(e.Missing) > 0 {
		parts = append(parts, fmt.Sprintf("missing features: %s", strings.Join(e.Missing, ", ")))
	}
	if len(e.Extra) > 0 {
		parts = append(parts, fmt.Sprintf("extra features: %s", strings.Join(e.Extra, ", ")))
	}
	return "feature schema mismatch: " + strings.Join(parts, "; ")
}
