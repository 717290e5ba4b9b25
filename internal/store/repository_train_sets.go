package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-tabpfn-client/internal/logger"
)

type trainSetRepository struct {
	db     *DB
	logger *logger.Logger
	now    func() time.Time
}

// NewTrainSetRepository returns a SQLite-backed [TrainSetRepository].
func NewTrainSetRepository(db *DB, logger *logger.Logger) TrainSetRepository {
	return &trainSetRepository{db: db, logger: logger, now: time.Now}
}

func (r *trainSetRepository) GetTrainSetUID(ctx context.Context, fingerprint string) (string, error) {
	query, args, err := buildSelectTrainSetQuery(fingerprint)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var uid string
	err = r.db.QueryRowContext(ctx, query, args...).Scan(&uid)
	if errors.Is(err, sql.ErrNoRows) {
		return "", ErrTrainSetNotFound
	}
	if err != nil {
		r.logger.Err(err).
			Str("func", "trainSetRepository.GetTrainSetUID").
			Str("fingerprint", fingerprint).
			Msg("failed to read train set")
		return "", fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return uid, nil
}

func (r *trainSetRepository) SaveTrainSetUID(ctx context.Context, fingerprint, uid string) error {
	query, args, err := buildSaveTrainSetQuery(fingerprint, uid, r.now().UTC())
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.exec(ctx, "trainSetRepository.SaveTrainSetUID", query, args)
}

func (r *trainSetRepository) DeleteTrainSetUID(ctx context.Context, uid string) error {
	query, args, err := buildDeleteTrainSetByUIDQuery(uid)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.exec(ctx, "trainSetRepository.DeleteTrainSetUID", query, args)
}

func (r *trainSetRepository) DeleteAllTrainSets(ctx context.Context) error {
	query, args, err := buildDeleteAllTrainSetsQuery()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.exec(ctx, "trainSetRepository.DeleteAllTrainSets", query, args)
}

func (r *trainSetRepository) exec(ctx context.Context, funcName, query string, args []any) error {
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		r.logger.Err(err).Str("func", funcName).Msg("failed to execute statement")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	return nil
}
