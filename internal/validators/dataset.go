package validators

import (
	"context"
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

const (
	FieldRows     = "rows"
	FieldFeatures = "features"
	FieldTarget   = "target"
)

// TrainingSet is a feature matrix with its target vector.
type TrainingSet struct {
	X mat.Matrix
	Y mat.Vector
}

// PredictionSet is a test feature matrix together with the number of
// features the estimator was fitted on. NFeatures <= 0 skips the column check.
type PredictionSet struct {
	X         mat.Matrix
	NFeatures int
}

// DatasetValidator implements [Validator] for [TrainingSet] and
// [PredictionSet].
type DatasetValidator struct{}

// NewDatasetValidator returns a [DatasetValidator] as a [Validator].
func NewDatasetValidator() Validator {
	return &DatasetValidator{}
}

// Validate dispatches on the dynamic type of obj. Both value and pointer forms
// are accepted; anything else yields ErrUnsupportedType.
func (v *DatasetValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case TrainingSet:
		return v.validateTrainingSet(ctx, value, fields...)
	case *TrainingSet:
		return v.validateTrainingSet(ctx, *value, fields...)

	case PredictionSet:
		return v.validatePredictionSet(ctx, value, fields...)
	case *PredictionSet:
		return v.validatePredictionSet(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *DatasetValidator) validateTrainingSet(_ context.Context, set TrainingSet, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldRows, FieldFeatures, FieldTarget}
	}

	rows, cols := dims(set.X)
	for _, f := range fields {
		switch f {
		case FieldRows:
			if rows == 0 {
				return ErrEmptyDataset
			}
		case FieldFeatures:
			if cols == 0 {
				return ErrNoFeatures
			}
		case FieldTarget:
			if set.Y == nil || set.Y.Len() != rows {
				return fmt.Errorf("%w: %d rows, %d targets", ErrLengthMismatch, rows, vecLen(set.Y))
			}
			for i := 0; i < set.Y.Len(); i++ {
				if math.IsInf(set.Y.AtVec(i), 0) {
					return fmt.Errorf("%w at index %d", ErrNonFiniteTarget, i)
				}
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *DatasetValidator) validatePredictionSet(_ context.Context, set PredictionSet, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldRows, FieldFeatures}
	}

	rows, cols := dims(set.X)
	for _, f := range fields {
		switch f {
		case FieldRows:
			if rows == 0 {
				return ErrEmptyDataset
			}
		case FieldFeatures:
			if cols == 0 {
				return ErrNoFeatures
			}
			if set.NFeatures > 0 && cols != set.NFeatures {
				return fmt.Errorf("%w: got %d, want %d", ErrFeatureCountMismatch, cols, set.NFeatures)
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// dims tolerates nil matrices and gonum's empty Dense, whose Dims is 0x0.
func dims(m mat.Matrix) (int, int) {
	if m == nil {
		return 0, 0
	}
	if d, ok := m.(*mat.Dense); ok && d.IsEmpty() {
		return 0, 0
	}
	return m.Dims()
}

func vecLen(v mat.Vector) int {
	if v == nil {
		return 0
	}
	return v.Len()
}
