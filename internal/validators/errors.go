package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyDataset         = errors.New("dataset has no rows")
	ErrNoFeatures           = errors.New("dataset has no feature columns")
	ErrLengthMismatch       = errors.New("number of targets does not match number of rows")
	ErrFeatureCountMismatch = errors.New("number of features does not match the fitted training set")
	ErrNonFiniteTarget      = errors.New("target contains an infinite value")
)
