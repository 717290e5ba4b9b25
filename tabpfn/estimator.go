// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tabpfn

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-tabpfn-client/internal/validators"
	"github.com/MKhiriev/go-tabpfn-client/models"
	"gonum.org/v1/gonum/mat"
)

// HostedModel is the only model served by the inference service.
const HostedModel = "latest_tabpfn_hosted"

// estimator holds what Classifier and Regressor share: the session and the
// result of the last successful fit.
type estimator struct {
	sess      *Session
	validator validators.Validator

	fitted      bool
	trainSetUID string
	nFeatures   int
	warnings    []error
}

func newEstimator(ctx context.Context, sess *Session) (estimator, error) {
	if sess == nil {
		return estimator{}, ErrNotInitialized
	}

	email := sess.UserEmail()
	auth := sess.AuthHandle()
	if email != "" && auth != nil {
		verified, err := auth.GetUserEmailVerificationStatus(ctx, email)
		if err != nil {
			return estimator{}, fmt.Errorf("error checking email verification status: %w", err)
		}
		if !verified {
			return estimator{}, ErrEmailNotVerified
		}
	}

	return estimator{sess: sess, validator: validators.NewDatasetValidator()}, nil
}

func (e *estimator) fit(ctx context.Context, model string, X mat.Matrix, y mat.Vector) error {
	if !e.sess.Initialized() {
		return ErrNotInitialized
	}
	if !e.sess.UseServer() {
		return ErrServerModeRequired
	}

	e.warnings = nil
	if model != HostedModel {
		e.sess.logger.Warn().Str("model", model).Msg(ErrUnsupportedModel.Error())
		e.warnings = append(e.warnings, fmt.Errorf("%w: got %q", ErrUnsupportedModel, model))
	}

	if err := e.validator.Validate(ctx, validators.TrainingSet{X: X, Y: y}); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	uid, err := e.sess.InferenceHandle().Fit(ctx, X, y)
	if err != nil {
		return fmt.Errorf("error fitting training set: %w", err)
	}

	_, cols := X.Dims()
	e.trainSetUID = uid
	e.nFeatures = cols
	e.fitted = true
	return nil
}

func (e *estimator) predict(ctx context.Context, X mat.Matrix, task models.Task, params map[string]any) (models.Prediction, error) {
	if !e.sess.Initialized() {
		return nil, ErrNotInitialized
	}
	if !e.fitted {
		return nil, ErrNotFitted
	}
	inference := e.sess.InferenceHandle()
	if inference == nil {
		return nil, ErrServerModeRequired
	}

	if err := e.validator.Validate(ctx, validators.PredictionSet{X: X, NFeatures: e.nFeatures}); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	prediction, err := inference.Predict(ctx, e.trainSetUID, X, task, params)
	if err != nil {
		if errors.Is(err, ErrTrainSetExpired) {
			e.fitted = false
		}
		return nil, fmt.Errorf("error predicting %s: %w", task, err)
	}
	return prediction, nil
}

// checkRows reports a prediction whose row count differs from the rows of X.
func checkRows(X mat.Matrix, got int) error {
	if want, _ := X.Dims(); got != want {
		return fmt.Errorf("%w: got %d rows, want %d", ErrPredictionShape, got, want)
	}
	return nil
}

// Warnings returns the non-fatal problems found by the last Fit.
func (e *estimator) Warnings() []error {
	return e.warnings
}

// Fitted reports whether Fit completed successfully.
func (e *estimator) Fitted() bool {
	return e.fitted
}

func preprocessParams(transforms []models.PreprocessorConfig) []map[string]any {
	out := make([]map[string]any, 0, len(transforms))
	for _, t := range transforms {
		out = append(out, t.ToMap())
	}
	return out
}

// nullable renders the empty string as a JSON null.
func nullable(s string) any {
	if s == "" {
		return nil
	}
	return s
}
