// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-tabpfn-client/internal/logger"
	"github.com/MKhiriev/go-tabpfn-client/models"
)

type credentialRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewCredentialRepository returns a SQLite-backed [CredentialRepository].
func NewCredentialRepository(db *DB, logger *logger.Logger) CredentialRepository {
	return &credentialRepository{db: db, logger: logger}
}

func (r *credentialRepository) SaveCredential(ctx context.Context, cred models.StoredCredential) error {
	query, args, err := buildUpsertCredentialQuery(cred.Email, cred.AccessToken, cred.UpdatedAt)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		r.logger.Err(err).
			Str("func", "credentialRepository.SaveCredential").
			Msg("failed to upsert credential")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (r *credentialRepository) GetCredential(ctx context.Context) (models.StoredCredential, error) {
	query, args, err := buildSelectCredentialQuery()
	if err != nil {
		return models.StoredCredential{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var cred models.StoredCredential
	err = r.db.QueryRowContext(ctx, query, args...).Scan(&cred.Email, &cred.AccessToken, &cred.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return models.StoredCredential{}, ErrCredentialNotFound
	}
	if err != nil {
		r.logger.Err(err).
			Str("func", "credentialRepository.GetCredential").
			Msg("failed to read credential")
		return models.StoredCredential{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return cred, nil
}

func (r *credentialRepository) DeleteCredential(ctx context.Context) error {
	query, args, err := buildDeleteCredentialQuery()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		r.logger.Err(err).
			Str("func", "credentialRepository.DeleteCredential").
			Msg("failed to delete credential")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}
