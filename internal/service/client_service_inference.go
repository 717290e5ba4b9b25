package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-tabpfn-client/internal/adapter"
	"github.com/MKhiriev/go-tabpfn-client/internal/crypto"
	"github.com/MKhiriev/go-tabpfn-client/internal/logger"
	"github.com/MKhiriev/go-tabpfn-client/internal/store"
	"github.com/MKhiriev/go-tabpfn-client/internal/utils"
	"github.com/MKhiriev/go-tabpfn-client/models"
	"gonum.org/v1/gonum/mat"
)

type clientInferenceService struct {
	adapter     adapter.ServiceClient
	trainSets   store.TrainSetRepository
	fingerprint crypto.Fingerprinter

	logger *logger.Logger
}

// NewClientInferenceService builds an [InferenceService] that caches train set
// UIDs in trainSets keyed by the fingerprint of the uploaded CSV.
func NewClientInferenceService(
	serviceClient adapter.ServiceClient,
	trainSets store.TrainSetRepository,
	fingerprinter crypto.Fingerprinter,
	log *logger.Logger,
) InferenceService {
	return &clientInferenceService{
		adapter:     serviceClient,
		trainSets:   trainSets,
		fingerprint: fingerprinter,
		logger:      log,
	}
}

func (s *clientInferenceService) Fit(ctx context.Context, X mat.Matrix, y mat.Vector) (string, error) {
	xCSV, err := utils.EncodeMatrixCSV(X)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrEncodingDataset, err)
	}
	yCSV, err := utils.EncodeVectorCSV(y)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrEncodingDataset, err)
	}

	fp := s.fingerprint.Fingerprint(xCSV, yCSV)

	uid, err := s.trainSets.GetTrainSetUID(ctx, fp)
	switch {
	case err == nil:
		s.logger.Debug().Str("train_set_uid", uid).Msg("reusing uploaded train set")
		return uid, nil
	case !errors.Is(err, store.ErrTrainSetNotFound):
		// a broken cache only costs an upload
		s.logger.Err(err).
			Str("func", "clientInferenceService.Fit").
			Msg("failed to read train set cache")
	}

	uid, err = s.adapter.Fit(ctx, models.TrainSetUpload{X: xCSV, Y: yCSV})
	if err != nil {
		return "", mapAdapterError(opAuthenticated, err)
	}

	if err = s.trainSets.SaveTrainSetUID(ctx, fp, uid); err != nil {
		s.logger.Err(err).
			Str("func", "clientInferenceService.Fit").
			Str("train_set_uid", uid).
			Msg("failed to cache train set uid")
	}

	return uid, nil
}

func (s *clientInferenceService) Predict(ctx context.Context, trainSetUID string, X mat.Matrix, task models.Task, params map[string]any) (models.Prediction, error) {
	xCSV, err := utils.EncodeMatrixCSV(X)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrEncodingDataset, err)
	}

	cfg, err := json.Marshal(params)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrEncodingParams, err)
	}

	prediction, err := s.adapter.Predict(ctx, models.PredictRequest{
		TrainSetUID: trainSetUID,
		Task:        task,
		Config:      cfg,
		X:           xCSV,
	})
	if err != nil {
		mapped := mapAdapterError(opPredict, err)
		if errors.Is(mapped, ErrTrainSetNotFound) {
			if delErr := s.trainSets.DeleteTrainSetUID(ctx, trainSetUID); delErr != nil {
				s.logger.Err(delErr).
					Str("func", "clientInferenceService.Predict").
					Str("train_set_uid", trainSetUID).
					Msg("failed to drop expired train set from cache")
			}
		}
		return nil, mapped
	}

	return prediction, nil
}
