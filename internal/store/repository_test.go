// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/go-tabpfn-client/internal/logger"
	"github.com/MKhiriev/go-tabpfn-client/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestDB(t *testing.T) (*DB, sqlmock.Sqlmock) {
	t.Helper()
	conn, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	return &DB{DB: conn, logger: logger.Nop()}, mock
}

func quoted(t *testing.T, build func() (string, []any, error)) string {
	t.Helper()
	query, _, err := build()
	require.NoError(t, err)
	return regexp.QuoteMeta(query)
}

// ── credentials ───────────────────────────────────────────────────────────────

func TestSaveCredential_Success(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewCredentialRepository(db, logger.Nop())
	now := time.Now()

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO credentials")).
		WithArgs(credentialRowID, "a@b.c", "tok", now).
		WillReturnResult(sqlmock.NewResult(1, 1))

	err := repo.SaveCredential(context.Background(), models.StoredCredential{Email: "a@b.c", AccessToken: "tok", UpdatedAt: now})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSaveCredential_ExecError(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewCredentialRepository(db, logger.Nop())

	mock.ExpectExec("INSERT INTO credentials").WillReturnError(errors.New("disk full"))

	err := repo.SaveCredential(context.Background(), models.StoredCredential{AccessToken: "tok"})
	assert.ErrorIs(t, err, ErrExecutingStatement)
}

func TestGetCredential_Success(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewCredentialRepository(db, logger.Nop())
	now := time.Now()

	mock.ExpectQuery(quoted(t, buildSelectCredentialQuery)).
		WithArgs(credentialRowID).
		WillReturnRows(sqlmock.NewRows([]string{"email", "access_token", "updated_at"}).AddRow("a@b.c", "tok", now))

	cred, err := repo.GetCredential(context.Background())
	require.NoError(t, err)
	assert.Equal(t, models.StoredCredential{Email: "a@b.c", AccessToken: "tok", UpdatedAt: now}, cred)
}

func TestGetCredential_NotFound(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewCredentialRepository(db, logger.Nop())

	mock.ExpectQuery(quoted(t, buildSelectCredentialQuery)).
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetCredential(context.Background())
	assert.ErrorIs(t, err, ErrCredentialNotFound)
}

func TestGetCredential_QueryError(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewCredentialRepository(db, logger.Nop())

	mock.ExpectQuery(quoted(t, buildSelectCredentialQuery)).
		WillReturnError(errors.New("locked"))

	_, err := repo.GetCredential(context.Background())
	assert.ErrorIs(t, err, ErrScanningRow)
}

func TestDeleteCredential(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewCredentialRepository(db, logger.Nop())

	mock.ExpectExec(quoted(t, buildDeleteCredentialQuery)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, repo.DeleteCredential(context.Background()))
	assert.NoError(t, mock.ExpectationsWereMet())
}

// ── train sets ────────────────────────────────────────────────────────────────

func TestGetTrainSetUID_Success(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewTrainSetRepository(db, logger.Nop())

	mock.ExpectQuery(regexp.QuoteMeta("SELECT train_set_uid FROM train_sets WHERE fingerprint = ?")).
		WithArgs("fp").
		WillReturnRows(sqlmock.NewRows([]string{"train_set_uid"}).AddRow("uid-1"))

	uid, err := repo.GetTrainSetUID(context.Background(), "fp")
	require.NoError(t, err)
	assert.Equal(t, "uid-1", uid)
}

func TestGetTrainSetUID_NotFound(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewTrainSetRepository(db, logger.Nop())

	mock.ExpectQuery("SELECT train_set_uid FROM train_sets").
		WithArgs("fp").
		WillReturnRows(sqlmock.NewRows([]string{"train_set_uid"}))

	_, err := repo.GetTrainSetUID(context.Background(), "fp")
	assert.ErrorIs(t, err, ErrTrainSetNotFound)
}

func TestSaveTrainSetUID(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewTrainSetRepository(db, logger.Nop())

	mock.ExpectExec(regexp.QuoteMeta("INSERT OR REPLACE INTO train_sets")).
		WithArgs("fp", "uid-1", sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(1, 1))

	require.NoError(t, repo.SaveTrainSetUID(context.Background(), "fp", "uid-1"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteTrainSetUID(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewTrainSetRepository(db, logger.Nop())

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM train_sets WHERE train_set_uid = ?")).
		WithArgs("uid-1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.DeleteTrainSetUID(context.Background(), "uid-1"))
}

func TestDeleteAllTrainSets_Error(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewTrainSetRepository(db, logger.Nop())

	mock.ExpectExec(quoted(t, buildDeleteAllTrainSetsQuery)).
		WillReturnError(errors.New("readonly"))

	assert.ErrorIs(t, repo.DeleteAllTrainSets(context.Background()), ErrExecutingStatement)
}

// ── seen messages ─────────────────────────────────────────────────────────────

func TestFilterUnseen_KeepsOrder(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewSeenMessageRepository(db, logger.Nop())

	mock.ExpectQuery(regexp.QuoteMeta("SELECT digest FROM seen_messages WHERE digest IN (?,?,?)")).
		WithArgs("c", "a", "b").
		WillReturnRows(sqlmock.NewRows([]string{"digest"}).AddRow("a"))

	unseen, err := repo.FilterUnseen(context.Background(), "c", "a", "b")
	require.NoError(t, err)
	assert.Equal(t, []string{"c", "b"}, unseen)
}

func TestFilterUnseen_Empty(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewSeenMessageRepository(db, logger.Nop())

	unseen, err := repo.FilterUnseen(context.Background())
	require.NoError(t, err)
	assert.Empty(t, unseen)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFilterUnseen_QueryError(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewSeenMessageRepository(db, logger.Nop())

	mock.ExpectQuery("SELECT digest FROM seen_messages").WillReturnError(errors.New("boom"))

	_, err := repo.FilterUnseen(context.Background(), "a")
	assert.ErrorIs(t, err, ErrExecutingQuery)
}

func TestMarkSeen(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewSeenMessageRepository(db, logger.Nop())

	mock.ExpectExec(regexp.QuoteMeta("INSERT OR IGNORE INTO seen_messages (digest,seen_at) VALUES (?,?),(?,?)")).
		WithArgs("a", sqlmock.AnyArg(), "b", sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(2, 2))

	require.NoError(t, repo.MarkSeen(context.Background(), "a", "b"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMarkSeen_NoDigests(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewSeenMessageRepository(db, logger.Nop())

	require.NoError(t, repo.MarkSeen(context.Background()))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteAllSeenMessages(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewSeenMessageRepository(db, logger.Nop())

	mock.ExpectExec(quoted(t, buildDeleteAllSeenMessagesQuery)).
		WillReturnResult(sqlmock.NewResult(0, 3))

	require.NoError(t, repo.DeleteAllSeenMessages(context.Background()))
}
