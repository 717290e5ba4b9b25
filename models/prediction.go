package models

import (
	"encoding/json"
	"errors"
	"fmt"
	"sort"
)

// Task selects how the inference service interprets the training target.
type Task string

const (
	// TaskClassification asks for class probabilities.
	TaskClassification Task = "classification"
	// TaskRegression asks for a predictive distribution summary.
	TaskRegression Task = "regression"
)

// Well-known prediction fields.
const (
	FieldProbas = "probas"
	FieldMean   = "mean"
	FieldMedian = "median"
	FieldMode   = "mode"
)

// ErrPredictionFieldMissing is returned when a requested field is absent from
// a [Prediction].
var ErrPredictionFieldMissing = errors.New("prediction field missing")

// Prediction is the raw response of the predict endpoint: a JSON object whose
// fields depend on the task. Classification responses carry [FieldProbas];
// regression responses carry at least [FieldMean], [FieldMedian] and
// [FieldMode], possibly with additional distribution fields.
type Prediction map[string]json.RawMessage

// Keys returns the field names of the prediction in sorted order.
func (p Prediction) Keys() []string {
	keys := make([]string, 0, len(p))
	for k := range p {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Vector decodes field key as a one-dimensional array of numbers.
func (p Prediction) Vector(key string) ([]float64, error) {
	raw, ok := p[key]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrPredictionFieldMissing, key)
	}

	var v []float64
	if err := json.Unmarshal(raw, &v); err != nil {
		return nil, fmt.Errorf("decode prediction field %q: %w", key, err)
	}
	return v, nil
}

// Matrix decodes field key as a row-major two-dimensional array of numbers.
func (p Prediction) Matrix(key string) ([][]float64, error) {
	raw, ok := p[key]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrPredictionFieldMissing, key)
	}

	var m [][]float64
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil, fmt.Errorf("decode prediction field %q: %w", key, err)
	}
	return m, nil
}
