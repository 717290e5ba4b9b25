package tabpfn

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-tabpfn-client/models"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// ClassifierConfig is the parameter set of a [Classifier]. Start from
// [DefaultClassifierConfig] and override fields.
type ClassifierConfig struct {
	Model                    string
	NEstimators              int
	PreprocessTransforms     []models.PreprocessorConfig
	FeatureShiftDecoder      string
	NormalizeWithTest        bool
	AverageLogits            bool
	OptimizeMetric           string // empty is sent as null
	TransformerPredictKwargs map[string]any
	MulticlassDecoder        string
	SoftmaxTemperature       float64
	UsePolyFeatures          bool
	MaxPolyFeatures          int
	RemoveOutliers           float64
	AddFingerprintFeatures   bool
	SubsampleSamples         int
}

// DefaultClassifierConfig returns the defaults of the hosted classifier.
func DefaultClassifierConfig() ClassifierConfig {
	return ClassifierConfig{
		Model:       HostedModel,
		NEstimators: 4,
		PreprocessTransforms: []models.PreprocessorConfig{
			models.NewPreprocessorConfig("quantile_uni_coarse",
				models.WithAppendOriginal(),
				models.WithCategorical(models.CategoricalOrdinalVeryCommonCategoriesShuffled),
				models.WithGlobalTransformer("svd"),
			),
			models.NewPreprocessorConfig("none",
				models.WithCategorical(models.CategoricalNumeric),
			),
		},
		FeatureShiftDecoder:    "shuffle",
		OptimizeMetric:         "roc",
		MulticlassDecoder:      "shuffle",
		SoftmaxTemperature:     -0.1,
		MaxPolyFeatures:        50,
		RemoveOutliers:         12.0,
		AddFingerprintFeatures: true,
		SubsampleSamples:       -1,
	}
}

// Classifier predicts class labels with the hosted model.
type Classifier struct {
	estimator
	cfg ClassifierConfig
}

// NewClassifier returns a classifier bound to sess. When sess knows the user
// email, the email must be verified.
func NewClassifier(ctx context.Context, sess *Session, cfg ClassifierConfig) (*Classifier, error) {
	est, err := newEstimator(ctx, sess)
	if err != nil {
		return nil, err
	}
	return &Classifier{estimator: est, cfg: cfg}, nil
}

// Config returns the parameters of the classifier.
func (c *Classifier) Config() ClassifierConfig {
	return c.cfg
}

// Params returns the parameters keyed by their wire names.
func (c *Classifier) Params() map[string]any {
	return map[string]any{
		"model":                      c.cfg.Model,
		"n_estimators":               c.cfg.NEstimators,
		"preprocess_transforms":      preprocessParams(c.cfg.PreprocessTransforms),
		"feature_shift_decoder":      c.cfg.FeatureShiftDecoder,
		"normalize_with_test":        c.cfg.NormalizeWithTest,
		"average_logits":             c.cfg.AverageLogits,
		"optimize_metric":            nullable(c.cfg.OptimizeMetric),
		"transformer_predict_kwargs": c.cfg.TransformerPredictKwargs,
		"multiclass_decoder":         c.cfg.MulticlassDecoder,
		"softmax_temperature":        c.cfg.SoftmaxTemperature,
		"use_poly_features":          c.cfg.UsePolyFeatures,
		"max_poly_features":          c.cfg.MaxPolyFeatures,
		"remove_outliers":            c.cfg.RemoveOutliers,
		"add_fingerprint_features":   c.cfg.AddFingerprintFeatures,
		"subsample_samples":          c.cfg.SubsampleSamples,
	}
}

// Fit uploads the training set. y holds the class labels.
func (c *Classifier) Fit(ctx context.Context, X mat.Matrix, y mat.Vector) (*Classifier, error) {
	if err := c.fit(ctx, c.cfg.Model, X, y); err != nil {
		return nil, err
	}
	return c, nil
}

// PredictProba returns one row of class probabilities per row of X.
func (c *Classifier) PredictProba(ctx context.Context, X mat.Matrix) (*mat.Dense, error) {
	prediction, err := c.predict(ctx, X, models.TaskClassification, c.Params())
	if err != nil {
		return nil, err
	}

	rows, err := prediction.Matrix(models.FieldProbas)
	if err != nil {
		return nil, err
	}
	if err = checkRows(X, len(rows)); err != nil {
		return nil, err
	}
	return denseFromRows(rows)
}

// Predict returns the most probable class index for every row of X.
func (c *Classifier) Predict(ctx context.Context, X mat.Matrix) ([]int, error) {
	probas, err := c.PredictProba(ctx, X)
	if err != nil {
		return nil, err
	}
	return argmaxRows(probas), nil
}

func denseFromRows(rows [][]float64) (*mat.Dense, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, fmt.Errorf("%w: empty %s", models.ErrPredictionFieldMissing, models.FieldProbas)
	}

	n, k := len(rows), len(rows[0])
	data := make([]float64, 0, n*k)
	for i, row := range rows {
		if len(row) != k {
			return nil, fmt.Errorf("ragged %s: row %d has %d columns, want %d", models.FieldProbas, i, len(row), k)
		}
		data = append(data, row...)
	}
	return mat.NewDense(n, k, data), nil
}

// argmaxRows returns the column of the largest value of each row. Ties go to
// the lowest index.
func argmaxRows(m *mat.Dense) []int {
	n, _ := m.Dims()
	labels := make([]int, n)
	for i := range n {
		labels[i] = floats.MaxIdx(m.RawRowView(i))
	}
	return labels
}
