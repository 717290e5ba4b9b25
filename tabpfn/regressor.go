package tabpfn

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-tabpfn-client/models"
	"gonum.org/v1/gonum/mat"
)

// RegressorConfig is the parameter set of a [Regressor]. Start from
// [DefaultRegressorConfig] and override fields.
type RegressorConfig struct {
	Model                    string
	NEstimators              int
	PreprocessTransforms     []models.PreprocessorConfig
	FeatureShiftDecoder      string
	NormalizeWithTest        bool
	AverageLogits            bool
	OptimizeMetric           string // empty is sent as null and predicts the mean
	TransformerPredictKwargs map[string]any
	SoftmaxTemperature       float64
	UsePolyFeatures          bool
	MaxPolyFeatures          int
	RemoveOutliers           float64

	// RegressionYPreprocessTransforms lists target transforms; an empty
	// entry means no transform beyond normalization.
	RegressionYPreprocessTransforms []string

	AddFingerprintFeatures bool
	CancelNanBorders       bool
	SuperBarDistAveraging  bool
	SubsampleSamples       int
}

// DefaultRegressorConfig returns the defaults of the hosted regressor.
func DefaultRegressorConfig() RegressorConfig {
	return RegressorConfig{
		Model:       HostedModel,
		NEstimators: 8,
		PreprocessTransforms: []models.PreprocessorConfig{
			models.NewPreprocessorConfig("quantile_uni",
				models.WithAppendOriginal(),
				models.WithCategorical(models.CategoricalOrdinalVeryCommonCategoriesShuffled),
				models.WithGlobalTransformer("svd"),
			),
			models.NewPreprocessorConfig("safepower",
				models.WithCategorical(models.CategoricalOneHot),
			),
		},
		FeatureShiftDecoder:             "shuffle",
		OptimizeMetric:                  "rmse",
		SoftmaxTemperature:              -0.1,
		MaxPolyFeatures:                 50,
		RemoveOutliers:                  -1,
		RegressionYPreprocessTransforms: []string{"", "safepower"},
		AddFingerprintFeatures:          true,
		CancelNanBorders:                true,
		SubsampleSamples:                -1,
	}
}

// metricFields maps an optimize metric to the prediction field it selects.
var metricFields = map[string]string{
	"":            models.FieldMean,
	"mse":         models.FieldMean,
	"rmse":        models.FieldMean,
	"r2":          models.FieldMean,
	"mean":        models.FieldMean,
	"mae":         models.FieldMedian,
	"median":      models.FieldMedian,
	"mode":        models.FieldMode,
	"exact_match": models.FieldMode,
}

// PredictionField returns the prediction field selected by metric.
func PredictionField(metric string) (string, error) {
	field, ok := metricFields[metric]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnsupportedMetric, metric)
	}
	return field, nil
}

// Regressor predicts continuous targets with the hosted model.
type Regressor struct {
	estimator
	cfg RegressorConfig
}

// NewRegressor returns a regressor bound to sess. When sess knows the user
// email, the email must be verified.
func NewRegressor(ctx context.Context, sess *Session, cfg RegressorConfig) (*Regressor, error) {
	est, err := newEstimator(ctx, sess)
	if err != nil {
		return nil, err
	}
	return &Regressor{estimator: est, cfg: cfg}, nil
}

// Config returns the parameters of the regressor.
func (r *Regressor) Config() RegressorConfig {
	return r.cfg
}

// Params returns the parameters keyed by their wire names.
func (r *Regressor) Params() map[string]any {
	yTransforms := make([]any, 0, len(r.cfg.RegressionYPreprocessTransforms))
	for _, t := range r.cfg.RegressionYPreprocessTransforms {
		yTransforms = append(yTransforms, nullable(t))
	}

	return map[string]any{
		"model":                              r.cfg.Model,
		"n_estimators":                       r.cfg.NEstimators,
		"preprocess_transforms":              preprocessParams(r.cfg.PreprocessTransforms),
		"feature_shift_decoder":              r.cfg.FeatureShiftDecoder,
		"normalize_with_test":                r.cfg.NormalizeWithTest,
		"average_logits":                     r.cfg.AverageLogits,
		"optimize_metric":                    nullable(r.cfg.OptimizeMetric),
		"transformer_predict_kwargs":         r.cfg.TransformerPredictKwargs,
		"softmax_temperature":                r.cfg.SoftmaxTemperature,
		"use_poly_features":                  r.cfg.UsePolyFeatures,
		"max_poly_features":                  r.cfg.MaxPolyFeatures,
		"remove_outliers":                    r.cfg.RemoveOutliers,
		"regression_y_preprocess_transforms": yTransforms,
		"add_fingerprint_features":           r.cfg.AddFingerprintFeatures,
		"cancel_nan_borders":                 r.cfg.CancelNanBorders,
		"super_bar_dist_averaging":           r.cfg.SuperBarDistAveraging,
		"subsample_samples":                  r.cfg.SubsampleSamples,
	}
}

// Fit uploads the training set.
func (r *Regressor) Fit(ctx context.Context, X mat.Matrix, y mat.Vector) (*Regressor, error) {
	if err := r.fit(ctx, r.cfg.Model, X, y); err != nil {
		return nil, err
	}
	return r, nil
}

// PredictFull returns every field of the predictive distribution.
func (r *Regressor) PredictFull(ctx context.Context, X mat.Matrix) (models.Prediction, error) {
	return r.predict(ctx, X, models.TaskRegression, r.Params())
}

// Predict returns the point estimate selected by the optimize metric.
func (r *Regressor) Predict(ctx context.Context, X mat.Matrix) ([]float64, error) {
	prediction, err := r.PredictFull(ctx, X)
	if err != nil {
		return nil, err
	}

	field, err := PredictionField(r.cfg.OptimizeMetric)
	if err != nil {
		return nil, err
	}
	values, err := prediction.Vector(field)
	if err != nil {
		return nil, err
	}
	if err = checkRows(X, len(values)); err != nil {
		return nil, err
	}
	return values, nil
}
